package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/m04kA/SMC-FootSpaReservation/internal/config"
	"github.com/m04kA/SMC-FootSpaReservation/internal/infra/storage/migrations"
	"github.com/m04kA/SMC-FootSpaReservation/pkg/sqlbuilder"
)

// ErrOpen возвращается, если не удалось подключиться к хранилищу
var ErrOpen = errors.New("database: failed to open")

// Open открывает подключение по конфигурации, настраивает пул,
// проверяет соединение и применяет схему.
// today - текущая дата заведения, ею помечаются старые записи без даты
func Open(ctx context.Context, cfg config.DatabaseConfig, today time.Time) (*sql.DB, sqlbuilder.Dialect, error) {
	dialect, err := sqlbuilder.ParseDialect(cfg.Driver)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrOpen, err)
	}

	var dsn string
	switch dialect {
	case sqlbuilder.SQLite:
		if dir := filepath.Dir(cfg.Path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, "", fmt.Errorf("%w: create dir %s: %v", ErrOpen, dir, err)
			}
		}
		dsn = cfg.SQLiteDSN()
	case sqlbuilder.Postgres:
		dsn = cfg.DSN()
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrOpen, err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, "", fmt.Errorf("%w: ping: %v", ErrOpen, err)
	}

	if err := migrations.Apply(ctx, db, dialect, today); err != nil {
		_ = db.Close()
		return nil, "", err
	}

	return db, dialect, nil
}

// Describe возвращает описание подключения для логов (без пароля)
func Describe(cfg config.DatabaseConfig, dialect sqlbuilder.Dialect) string {
	switch dialect {
	case sqlbuilder.Postgres:
		return fmt.Sprintf("postgres database (host=%s, port=%d, db=%s)", cfg.Host, cfg.Port, cfg.DBName)
	default:
		return fmt.Sprintf("sqlite file %s", cfg.Path)
	}
}
