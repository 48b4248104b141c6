package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-FootSpaReservation/internal/domain"
	"github.com/m04kA/SMC-FootSpaReservation/pkg/dbmetrics"
	"github.com/m04kA/SMC-FootSpaReservation/pkg/sqlbuilder"
)

// Repository репозиторий для работы с бронированиями мест
type Repository struct {
	db      DBExecutor
	dialect sqlbuilder.Dialect
	now     func() time.Time
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor, dialect sqlbuilder.Dialect) *Repository {
	return &Repository{
		db:      db,
		dialect: dialect,
		now:     time.Now,
	}
}

// Create сохраняет бронирование и заполняет ID и CreatedAt.
// Если в контексте есть транзакция, запрос выполняется в ней
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	createdAt := r.now().UTC().Truncate(time.Second)

	query, args, err := r.dialect.Builder().
		Insert(tableName).
		Columns(
			"name",
			"payment",
			"reserve_date",
			"start_time",
			"end_time",
			"seats",
			"people_count",
			"note",
			"created_at",
		).
		Values(
			reservation.Name,
			string(reservation.Payment),
			reservation.ReserveDate.Format(domain.DateFormat),
			reservation.StartTime,
			reservation.EndTime,
			reservation.Seats,
			reservation.PeopleCount,
			nullableString(reservation.Note),
			createdAt.Format(time.RFC3339),
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&reservation.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt

	return reservation, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.dialect.Builder().
		Select(selectColumns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return reservation, nil
}

// List возвращает бронирования, упорядоченные по дате, времени начала и ID.
// Внутри транзакции на PostgreSQL строки блокируются (FOR UPDATE)
func (r *Repository) List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.dialect.Builder().
		Select(selectColumns...).
		From(tableName).
		OrderBy("reserve_date ASC", "start_time ASC", "id ASC")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"reserve_date": filter.Date.Format(domain.DateFormat)})
	}

	if dbmetrics.IsInTransaction(ctx) && r.dialect.SupportsRowLocking() {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan reservation: %v", ErrScanRow, err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// Delete удаляет бронирование по ID.
// Возвращает ErrReservationNotFound, если строка не найдена
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.dialect.Builder().
		Delete(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
