package reservation

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-FootSpaReservation/internal/domain"
	"github.com/m04kA/SMC-FootSpaReservation/pkg/types"
)

const tableName = "reservations"

var selectColumns = []string{
	"id",
	"name",
	"payment",
	"reserve_date",
	"start_time",
	"end_time",
	"seats",
	"people_count",
	"note",
	"created_at",
}

// dateColumn читает reserve_date: TEXT "YYYY-MM-DD" в SQLite, DATE в PostgreSQL
type dateColumn struct {
	time.Time
}

func (d *dateColumn) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = domain.DateOnly(v)
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	default:
		return fmt.Errorf("reserve_date: unsupported scan type %T", src)
	}
}

func (d *dateColumn) parse(raw string) error {
	if len(raw) > len(domain.DateFormat) {
		raw = raw[:len(domain.DateFormat)]
	}
	t, err := domain.ParseDate(raw)
	if err != nil {
		return fmt.Errorf("reserve_date: %w", err)
	}
	d.Time = t
	return nil
}

// timestampColumn читает created_at: TEXT RFC3339 в SQLite, TIMESTAMPTZ в PostgreSQL.
// Пустая строка (записи, перенесенные из старой схемы) дает нулевое время
type timestampColumn struct {
	time.Time
}

func (c *timestampColumn) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		c.Time = time.Time{}
		return nil
	case time.Time:
		c.Time = v.UTC()
		return nil
	case string:
		return c.parse(v)
	case []byte:
		return c.parse(string(v))
	default:
		return fmt.Errorf("created_at: unsupported scan type %T", src)
	}
}

func (c *timestampColumn) parse(raw string) error {
	if raw == "" {
		c.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return fmt.Errorf("created_at: %w", err)
	}
	c.Time = t.UTC()
	return nil
}

// timeColumn читает start_time/end_time.
// Файлы ранних версий допускали NULL и произвольный текст: такое время остается пустым,
// и бронирование не участвует ни в проверке пересечений, ни в сетке
type timeColumn struct {
	types.TimeString
}

func (c *timeColumn) Scan(src any) error {
	err := c.TimeString.Scan(src)
	if errors.Is(err, types.ErrInvalidTimeString) {
		c.TimeString = ""
		return nil
	}
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		r           domain.Reservation
		payment     sql.NullString
		date        dateColumn
		start, end  timeColumn
		peopleCount sql.NullInt64
		createdAt   timestampColumn
	)

	err := row.Scan(
		&r.ID,
		&r.Name,
		&payment,
		&date,
		&start,
		&end,
		&r.Seats,
		&peopleCount,
		&r.Note,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	// ранние версии сохраняли подпись способа оплаты ("카드"), колонка могла быть NULL
	r.Payment = domain.PaymentMethod(payment.String)
	if parsed, err := domain.ParsePaymentMethod(payment.String); err == nil {
		r.Payment = parsed
	}

	r.ReserveDate = date.Time
	r.StartTime = start.TimeString
	r.EndTime = end.TimeString
	r.PeopleCount = int(peopleCount.Int64)
	r.CreatedAt = createdAt.Time

	return &r, nil
}
