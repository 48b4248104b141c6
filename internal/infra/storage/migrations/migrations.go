package migrations

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-FootSpaReservation/pkg/sqlbuilder"
)

var (
	//go:embed sqlite.sql
	sqliteSchema string

	//go:embed postgres.sql
	postgresSchema string
)

// ErrMigration возвращается при ошибке применения схемы
var ErrMigration = errors.New("migrations: failed to apply schema")

const createDateIndex = `CREATE INDEX IF NOT EXISTS idx_reservations_date_start ON reservations (reserve_date, start_time)`

// legacyColumn колонка, которой нет в файлах БД ранних версий.
// backfill получает дату миграции единственным параметром
type legacyColumn struct {
	name       string
	definition string
	backfill   string
}

// Файлы ранних версий содержали только id, name, payment, start_time, end_time, seats, people_count.
// Старые записи считаются бронированиями на дату миграции
var sqliteLegacyColumns = []legacyColumn{
	{
		name:       "reserve_date",
		definition: "TEXT NOT NULL DEFAULT ''",
		backfill:   "UPDATE reservations SET reserve_date = ? WHERE reserve_date = ''",
	},
	{name: "note", definition: "TEXT"},
	{name: "created_at", definition: "TEXT NOT NULL DEFAULT ''"},
}

// Apply создает таблицу reservations (если ее нет), дополняет устаревшую схему
// недостающими колонками и создает индексы. Повторный вызов безопасен.
// legacyDate - дата (в часовом поясе заведения), которая проставляется старым записям без даты
func Apply(ctx context.Context, db *sql.DB, dialect sqlbuilder.Dialect, legacyDate time.Time) error {
	switch dialect {
	case sqlbuilder.SQLite:
		return applySQLite(ctx, db, legacyDate.Format(time.DateOnly))
	case sqlbuilder.Postgres:
		return applyPostgres(ctx, db)
	default:
		return fmt.Errorf("%w: unsupported dialect %q", ErrMigration, dialect)
	}
}

func applySQLite(ctx context.Context, db *sql.DB, legacyDate string) error {
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("%w: create table: %v", ErrMigration, err)
	}

	for _, col := range sqliteLegacyColumns {
		exists, err := tableHasColumn(ctx, db, "reservations", col.name)
		if err != nil {
			return fmt.Errorf("%w: inspect column %s: %v", ErrMigration, col.name, err)
		}
		if exists {
			continue
		}

		alter := fmt.Sprintf("ALTER TABLE reservations ADD COLUMN %s %s", col.name, col.definition)
		if _, err := db.ExecContext(ctx, alter); err != nil {
			return fmt.Errorf("%w: add column %s: %v", ErrMigration, col.name, err)
		}
		if col.backfill != "" {
			if _, err := db.ExecContext(ctx, col.backfill, legacyDate); err != nil {
				return fmt.Errorf("%w: backfill column %s: %v", ErrMigration, col.name, err)
			}
		}
	}

	if _, err := db.ExecContext(ctx, createDateIndex); err != nil {
		return fmt.Errorf("%w: create index: %v", ErrMigration, err)
	}

	return nil
}

func applyPostgres(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, postgresSchema); err != nil {
		return fmt.Errorf("%w: create table: %v", ErrMigration, err)
	}
	if _, err := db.ExecContext(ctx, createDateIndex); err != nil {
		return fmt.Errorf("%w: create index: %v", ErrMigration, err)
	}
	return nil
}

func tableHasColumn(ctx context.Context, db *sql.DB, table, column string) (bool, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid        int
			name       string
			colType    string
			notNull    int
			defaultVal sql.NullString
			primaryKey int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &defaultVal, &primaryKey); err != nil {
			return false, err
		}
		if strings.EqualFold(name, column) {
			return true, nil
		}
	}

	return false, rows.Err()
}
