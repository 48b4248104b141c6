package sqlbuilder

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
)

// Dialect SQL-диалект хранилища
type Dialect string

const (
	// SQLite встроенная БД в одном файле (драйвер modernc.org/sqlite)
	SQLite Dialect = "sqlite"

	// Postgres PostgreSQL (драйвер github.com/lib/pq)
	Postgres Dialect = "postgres"
)

// ParseDialect возвращает диалект по имени драйвера из конфигурации
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sqlite", "sqlite3":
		return SQLite, nil
	case "postgres", "postgresql", "pq":
		return Postgres, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", name)
	}
}

// DriverName имя драйвера для sql.Open
func (d Dialect) DriverName() string {
	return string(d)
}

// Builder возвращает squirrel builder с плейсхолдерами диалекта
func (d Dialect) Builder() squirrel.StatementBuilderType {
	if d == Postgres {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

// SupportsRowLocking возвращает true, если диалект поддерживает SELECT ... FOR UPDATE
func (d Dialect) SupportsRowLocking() bool {
	return d == Postgres
}

// SerializableTxOptions параметры сериализуемой транзакции.
// В SQLite запись и так сериализована (BEGIN IMMEDIATE через _txlock), уровни изоляции не передаются
func (d Dialect) SerializableTxOptions() *sql.TxOptions {
	if d == Postgres {
		return &sql.TxOptions{Isolation: sql.LevelSerializable}
	}
	return nil
}
