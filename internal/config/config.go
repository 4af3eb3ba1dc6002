package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/m04kA/campus-facility-booking/internal/domain"
	"github.com/m04kA/campus-facility-booking/internal/scheduling"
)

// EnvPrefix префикс переменных окружения (FACILITY_DATABASE_PASSWORD и т.д.)
const EnvPrefix = "FACILITY"

// Драйверы хранилища
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server" envconfig:"server"`
	Logs       LogsConfig       `toml:"logs" envconfig:"logs"`
	Metrics    MetricsConfig    `toml:"metrics" envconfig:"metrics"`
	Storage    StorageConfig    `toml:"storage" envconfig:"storage"`
	Database   DatabaseConfig   `toml:"database" envconfig:"database"`
	SQLite     SQLiteConfig     `toml:"sqlite" envconfig:"sqlite"`
	Booking    BookingConfig    `toml:"booking" envconfig:"booking"`
	Completion CompletionConfig `toml:"completion" envconfig:"completion"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" envconfig:"http_port"`
	ReadTimeout     int `toml:"read_timeout" envconfig:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout" envconfig:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout" envconfig:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout" envconfig:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file" envconfig:"file"`
	Level string `toml:"level" envconfig:"level"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" envconfig:"enabled"`
	Path        string `toml:"path" envconfig:"path"`
	ServiceName string `toml:"service_name" envconfig:"service_name"`
}

// StorageConfig выбор хранилища: memory, postgres или sqlite
type StorageConfig struct {
	Driver string `toml:"driver" envconfig:"driver"`
	// SeedCatalog - заполнить каталог помещений демонстрационными данными, если их нет
	SeedCatalog bool `toml:"seed_catalog" envconfig:"seed_catalog"`
}

// DatabaseConfig настройки PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host" envconfig:"host"`
	Port            int    `toml:"port" envconfig:"port"`
	User            string `toml:"user" envconfig:"user"`
	Password        string `toml:"password" envconfig:"password"`
	DBName          string `toml:"dbname" envconfig:"dbname"`
	SSLMode         string `toml:"sslmode" envconfig:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns" envconfig:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns" envconfig:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" envconfig:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// SQLiteConfig настройки встроенной базы (modernc.org/sqlite)
type SQLiteConfig struct {
	Path string `toml:"path" envconfig:"path"` // ":memory:" - база в памяти процесса
}

// IsInMemory сообщает, что база живет только в памяти процесса
func (s SQLiteConfig) IsInMemory() bool {
	return s.Path == ":memory:"
}

// DSN строка подключения для modernc.org/sqlite
// Временные метки пишутся в формате, который драйвер читает обратно как time.Time
func (s SQLiteConfig) DSN() string {
	if s.IsInMemory() {
		return "file::memory:?_time_format=sqlite"
	}
	return fmt.Sprintf("file:%s?_time_format=sqlite&_pragma=busy_timeout(5000)", s.Path)
}

// BookingConfig политика бронирования и сетка доступности
type BookingConfig struct {
	RequireApproval bool   `toml:"require_approval" envconfig:"require_approval"`
	MaxSuggestions  int    `toml:"max_suggestions" envconfig:"max_suggestions"`
	OpenHour        int    `toml:"open_hour" envconfig:"open_hour"`
	CloseHour       int    `toml:"close_hour" envconfig:"close_hour"`
	SlotMinutes     int    `toml:"slot_minutes" envconfig:"slot_minutes"`
	Timezone        string `toml:"timezone" envconfig:"timezone"`
}

// Grid собирает конфигурацию сетки доступности
func (b BookingConfig) Grid() (scheduling.GridConfig, error) {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return scheduling.GridConfig{}, fmt.Errorf("%w: timezone %q: %v", ErrInvalidConfig, b.Timezone, err)
	}

	grid := scheduling.GridConfig{
		OpenHour:    b.OpenHour,
		CloseHour:   b.CloseHour,
		SlotMinutes: b.SlotMinutes,
		Location:    loc,
	}
	if err := grid.Validate(); err != nil {
		return scheduling.GridConfig{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return grid, nil
}

// CompletionConfig фоновый перевод завершившихся бронирований в completed
type CompletionConfig struct {
	Enabled  bool `toml:"enabled" envconfig:"enabled"`
	Interval int  `toml:"interval" envconfig:"interval"` // секунды
}

// Default конфигурация по умолчанию: in-memory хранилище, метрики выключены
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 30,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "facility-booking",
		},
		Storage: StorageConfig{
			Driver:      DriverMemory,
			SeedCatalog: true,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		SQLite: SQLiteConfig{
			Path: "facility_booking.db",
		},
		Booking: BookingConfig{
			MaxSuggestions: domain.DefaultMaxSuggestions,
			OpenHour:       domain.DefaultOpenHour,
			CloseHour:      domain.DefaultCloseHour,
			SlotMinutes:    domain.DefaultSlotMinutes,
			Timezone:       domain.DefaultTimezone,
		},
		Completion: CompletionConfig{
			Enabled:  true,
			Interval: 300,
		},
	}
}

// Load читает конфигурацию
// Порядок: значения по умолчанию -> TOML файл -> .env рядом с файлом -> переменные окружения FACILITY_*
// Отсутствующий файл конфигурации не является ошибкой
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}

		envPath := filepath.Join(filepath.Dir(path), ".env")
		if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: load %s: %w", envPath, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch strings.ToLower(c.Logs.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown logs.level %q", ErrInvalidConfig, c.Logs.Level)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path must start with /", ErrInvalidConfig)
	}

	switch c.Storage.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres", ErrInvalidConfig)
		}
	case DriverSQLite:
		if c.SQLite.Path == "" {
			return fmt.Errorf("%w: sqlite.path is required for sqlite", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unsupported storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	if c.Booking.MaxSuggestions < 0 {
		return fmt.Errorf("%w: booking.max_suggestions must not be negative", ErrInvalidConfig)
	}
	if _, err := c.Booking.Grid(); err != nil {
		return err
	}

	if c.Completion.Enabled && c.Completion.Interval <= 0 {
		return fmt.Errorf("%w: completion.interval must be positive", ErrInvalidConfig)
	}

	return nil
}
