package facility

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/campus-facility-booking/internal/domain"
	"github.com/m04kA/campus-facility-booking/pkg/dbmetrics"
	"github.com/m04kA/campus-facility-booking/pkg/psqlbuilder"
)

const table = "facilities"

var columns = []string{
	"id",
	"name",
	"type",
	"building",
	"floor",
	"capacity",
	"equipment",
	"amenities",
	"hourly_rate",
	"description",
	"is_active",
}

// Repository SQL-каталог помещений
// Ядро сервиса каталог только читает, запись нужна лишь для начального наполнения
type Repository struct {
	db DBExecutor
	sb squirrel.StatementBuilderType
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor, dialect psqlbuilder.Dialect) *Repository {
	return &Repository{
		db: db,
		sb: psqlbuilder.For(dialect),
	}
}

// List возвращает помещения каталога, отсортированные по ID
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.sb.Select(columns...).From(table)
	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	facilities := make([]*domain.Facility, 0)
	for rows.Next() {
		facility, err := scanFacility(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		facilities = append(facilities, facility)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return facilities, nil
}

// GetByID получает помещение по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.sb.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	facility, err := scanFacility(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFacilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan facility: %v", ErrScanRow, err)
	}

	return facility, nil
}

// EnsureSeeded добавляет в каталог отсутствующие помещения, существующие записи не трогает
func (r *Repository) EnsureSeeded(ctx context.Context, facilities []*domain.Facility) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for _, f := range facilities {
		equipment, err := encodeList(f.Equipment)
		if err != nil {
			return fmt.Errorf("%w: EnsureSeeded - equipment: %v", ErrEncode, err)
		}
		amenities, err := encodeList(f.Amenities)
		if err != nil {
			return fmt.Errorf("%w: EnsureSeeded - amenities: %v", ErrEncode, err)
		}

		query, args, err := r.sb.Insert(table).
			Columns(columns...).
			Values(
				f.ID,
				f.Name,
				string(f.Type),
				f.Building,
				f.Floor,
				f.Capacity,
				equipment,
				amenities,
				f.HourlyRate,
				f.Description,
				f.IsActive,
			).
			Suffix("ON CONFLICT (id) DO NOTHING").
			ToSql()

		if err != nil {
			return fmt.Errorf("%w: EnsureSeeded - build insert query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: EnsureSeeded - insert %s: %v", ErrExecQuery, f.ID, err)
		}
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFacility(row rowScanner) (*domain.Facility, error) {
	var (
		facility     domain.Facility
		facilityType string
		equipment    string
		amenities    string
		hourlyRate   sql.NullFloat64
		description  sql.NullString
	)

	err := row.Scan(
		&facility.ID,
		&facility.Name,
		&facilityType,
		&facility.Building,
		&facility.Floor,
		&facility.Capacity,
		&equipment,
		&amenities,
		&hourlyRate,
		&description,
		&facility.IsActive,
	)
	if err != nil {
		return nil, err
	}

	facility.Type = domain.FacilityType(facilityType)
	if facility.Equipment, err = decodeList(equipment); err != nil {
		return nil, err
	}
	if facility.Amenities, err = decodeList(amenities); err != nil {
		return nil, err
	}
	if hourlyRate.Valid {
		rate := hourlyRate.Float64
		facility.HourlyRate = &rate
	}
	if description.Valid {
		d := description.String
		facility.Description = &d
	}

	return &facility, nil
}

func encodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeList(data string) ([]string, error) {
	if data == "" {
		return nil, nil
	}
	var items []string
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items, nil
}
