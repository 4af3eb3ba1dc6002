package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/m04kA/campus-facility-booking/internal/domain"
	"github.com/m04kA/campus-facility-booking/internal/infra/storage/booking"
	"github.com/m04kA/campus-facility-booking/internal/infra/storage/facility"
	"github.com/m04kA/campus-facility-booking/internal/infra/storage/schema"
	"github.com/m04kA/campus-facility-booking/pkg/dbmetrics"
	"github.com/m04kA/campus-facility-booking/pkg/metrics"
	"github.com/m04kA/campus-facility-booking/pkg/psqlbuilder"
	"github.com/m04kA/campus-facility-booking/pkg/txmanager"
)

// Драйверы хранилища
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// ErrUnsupportedDriver возвращается при неизвестном драйвере хранилища
var ErrUnsupportedDriver = errors.New("storage: unsupported driver")

// BookingRepository полный набор операций над бронированиями
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, at time.Time) error
}

// FacilityRepository каталог помещений (только чтение)
type FacilityRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*domain.Facility, error)
	GetByID(ctx context.Context, id string) (*domain.Facility, error)
}

// TransactionManager выполняет функции атомарно
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Options параметры подключения
type Options struct {
	Driver          string
	DSN             string // для postgres и sqlite
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	SeedCatalog     bool             // заполнить каталог демонстрационными помещениями
	Metrics         *metrics.Metrics // nil - без метрик запросов
	MetricsName     string           // label db в метриках пула
}

// Storage репозитории выбранного хранилища
type Storage struct {
	Bookings   BookingRepository
	Facilities FacilityRepository
	TxManager  TransactionManager
	Driver     string

	db     *sql.DB
	stopCh chan struct{}
}

// Open открывает хранилище, применяет схему и при необходимости заполняет каталог
func Open(ctx context.Context, opts Options) (*Storage, error) {
	if opts.Driver == DriverMemory {
		var catalog []*domain.Facility
		if opts.SeedCatalog {
			catalog = facility.SampleCatalog()
		}
		return &Storage{
			Bookings:   booking.NewMemoryRepository(),
			Facilities: facility.NewMemoryRepository(catalog),
			TxManager:  txmanager.Noop{},
			Driver:     DriverMemory,
		}, nil
	}

	dialect, err := psqlbuilder.ParseDialect(opts.Driver)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, opts.Driver)
	}

	db, err := sql.Open(string(dialect), opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", dialect, err)
	}

	configurePool(db, dialect, opts)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: ping %s: %w", dialect, err)
	}

	s := &Storage{Driver: opts.Driver, db: db, stopCh: make(chan struct{})}

	wrapped := dbmetrics.WrapWithDefault(db, opts.Metrics, opts.MetricsName, s.stopCh)

	if err := schema.Apply(ctx, wrapped, dialect); err != nil {
		_ = s.Close()
		return nil, err
	}

	facilities := facility.NewRepository(wrapped, dialect)
	if opts.SeedCatalog {
		if err := facilities.EnsureSeeded(ctx, facility.SampleCatalog()); err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("storage: seed catalog: %w", err)
		}
	}

	var txOpts []txmanager.Option
	if dialect == psqlbuilder.SQLite {
		txOpts = append(txOpts, txmanager.WithSerializableLevel(sql.LevelDefault))
	}

	s.Bookings = booking.NewRepository(wrapped, dialect)
	s.Facilities = facilities
	s.TxManager = txmanager.NewTransactionManager(wrapped, txOpts...)

	return s, nil
}

// configurePool настраивает пул соединений
// SQLite допускает одного писателя, пул ограничен одним соединением
func configurePool(db *sql.DB, dialect psqlbuilder.Dialect, opts Options) {
	if dialect == psqlbuilder.SQLite {
		db.SetMaxOpenConns(1)
		return
	}

	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		db.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}
}

// Close останавливает сбор метрик пула и закрывает соединения
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	close(s.stopCh)
	err := s.db.Close()
	s.db = nil
	return err
}
