package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-FootSpaReservation/internal/domain"
	"github.com/m04kA/SMC-FootSpaReservation/pkg/sqlbuilder"
	"github.com/m04kA/SMC-FootSpaReservation/pkg/types"
)

// EnvPrefix префикс переменных окружения, переопределяющих config.toml
const EnvPrefix = "FOOTSPA_"

// ErrInvalidConfig возвращается, когда конфигурация не проходит валидацию
var ErrInvalidConfig = errors.New("invalid config")

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Venue    VenueConfig    `toml:"venue"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры хранилища.
// driver = "sqlite" использует файл Path, driver = "postgres" - Host/Port/...
type DatabaseConfig struct {
	Driver string `toml:"driver"`

	Path          string `toml:"path"`
	BusyTimeoutMs int    `toml:"busy_timeout_ms"`

	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	DBName   string `toml:"dbname"`
	SSLMode  string `toml:"sslmode"`

	MaxOpenConns    int `toml:"max_open_conns"`
	MaxIdleConns    int `toml:"max_idle_conns"`
	ConnMaxLifetime int `toml:"conn_max_lifetime"` // секунды
}

// LogsConfig параметры логирования
type LogsConfig struct {
	File   string `toml:"file"`
	Level  string `toml:"level"`
	Format string `toml:"format"` // text | json
}

// MetricsConfig параметры prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// VenueConfig расписание заведения для таблицы занятости
type VenueConfig struct {
	OpenTime        string `toml:"open_time"`
	CloseTime       string `toml:"close_time"`
	SlotStepMinutes int    `toml:"slot_step_minutes"`
	Timezone        string `toml:"timezone"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        5000,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Driver:          string(sqlbuilder.SQLite),
			Path:            "reserve.db",
			BusyTimeoutMs:   5000,
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    1,
			MaxIdleConns:    1,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			ServiceName: "footspa_reservation",
			Path:        "/metrics",
		},
		Venue: VenueConfig{
			OpenTime:        domain.DefaultOpenTime,
			CloseTime:       domain.DefaultCloseTime,
			SlotStepMinutes: domain.DefaultSlotStepMinutes,
			Timezone:        "Asia/Seoul",
		},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию,
// применяет переменные окружения FOOTSPA_* и валидирует результат.
// Отсутствующий файл не является ошибкой
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("decode %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	overrides := []struct {
		key   string
		apply func(string) error
	}{
		{"HTTP_PORT", intSetter(&c.Server.HTTPPort)},
		{"DB_DRIVER", stringSetter(&c.Database.Driver)},
		{"DB_PATH", stringSetter(&c.Database.Path)},
		{"DB_HOST", stringSetter(&c.Database.Host)},
		{"DB_PORT", intSetter(&c.Database.Port)},
		{"DB_USER", stringSetter(&c.Database.User)},
		{"DB_PASSWORD", stringSetter(&c.Database.Password)},
		{"DB_NAME", stringSetter(&c.Database.DBName)},
		{"DB_SSLMODE", stringSetter(&c.Database.SSLMode)},
		{"LOG_LEVEL", stringSetter(&c.Logs.Level)},
		{"LOG_FILE", stringSetter(&c.Logs.File)},
		{"METRICS_ENABLED", boolSetter(&c.Metrics.Enabled)},
		{"TIMEZONE", stringSetter(&c.Venue.Timezone)},
	}

	for _, o := range overrides {
		value, ok := os.LookupEnv(EnvPrefix + o.key)
		if !ok || value == "" {
			continue
		}
		if err := o.apply(value); err != nil {
			return fmt.Errorf("%w: %s%s: %v", ErrInvalidConfig, EnvPrefix, o.key, err)
		}
	}

	return nil
}

func stringSetter(dst *string) func(string) error {
	return func(v string) error {
		*dst = v
		return nil
	}
}

func intSetter(dst *int) func(string) error {
	return func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*dst = n
		return nil
	}
}

func boolSetter(dst *bool) func(string) error {
	return func(v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*dst = b
		return nil
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}

	dialect, err := sqlbuilder.ParseDialect(c.Database.Driver)
	if err != nil {
		return fmt.Errorf("%w: database.driver: %v", ErrInvalidConfig, err)
	}
	if dialect == sqlbuilder.SQLite && strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("%w: database.path is required for sqlite", ErrInvalidConfig)
	}
	if dialect == sqlbuilder.Postgres && (c.Database.Host == "" || c.Database.DBName == "") {
		return fmt.Errorf("%w: database.host and database.dbname are required for postgres", ErrInvalidConfig)
	}

	open, err := types.NewTimeStringFromString(c.Venue.OpenTime)
	if err != nil {
		return fmt.Errorf("%w: venue.open_time: %v", ErrInvalidConfig, err)
	}
	closeTime, err := types.NewTimeStringFromString(c.Venue.CloseTime)
	if err != nil {
		return fmt.Errorf("%w: venue.close_time: %v", ErrInvalidConfig, err)
	}
	if !open.IsBefore(closeTime) {
		return fmt.Errorf("%w: venue.open_time must be before venue.close_time", ErrInvalidConfig)
	}
	if c.Venue.SlotStepMinutes <= 0 || c.Venue.SlotStepMinutes > 60 {
		return fmt.Errorf("%w: venue.slot_step_minutes must be in 1..60", ErrInvalidConfig)
	}
	if _, err := c.Venue.Location(); err != nil {
		return fmt.Errorf("%w: venue.timezone: %v", ErrInvalidConfig, err)
	}

	return nil
}

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// SQLiteDSN строка подключения к файлу SQLite.
// _txlock=immediate берет блокировку записи уже на BEGIN
func (d DatabaseConfig) SQLiteDSN() string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)&_txlock=immediate",
		d.Path, d.BusyTimeoutMs)
}

// Location часовой пояс заведения (для даты "сегодня")
func (v VenueConfig) Location() (*time.Location, error) {
	if v.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(v.Timezone)
}

// OpenTimeString время открытия (после Validate всегда корректно)
func (v VenueConfig) OpenTimeString() types.TimeString {
	t, _ := types.NewTimeStringFromString(v.OpenTime)
	return t
}

// CloseTimeString время закрытия (после Validate всегда корректно)
func (v VenueConfig) CloseTimeString() types.TimeString {
	t, _ := types.NewTimeStringFromString(v.CloseTime)
	return t
}
