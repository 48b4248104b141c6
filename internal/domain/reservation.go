package domain

import (
	"time"

	"github.com/m04kA/SMC-FootSpaReservation/pkg/types"
)

// Reservation бронирование мест на временной интервал [StartTime, EndTime) в дату ReserveDate
type Reservation struct {
	ID          int64
	Name        string
	Payment     PaymentMethod
	ReserveDate time.Time // только дата, время суток обнулено
	StartTime   types.TimeString
	EndTime     types.TimeString
	Seats       SeatSet
	PeopleCount int
	Note        *string

	CreatedAt time.Time
}

// SameDate возвращает true, если бронирования относятся к одной календарной дате
func (r *Reservation) SameDate(other *Reservation) bool {
	y1, m1, d1 := r.ReserveDate.Date()
	y2, m2, d2 := other.ReserveDate.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// HasValidInterval возвращает true, если оба времени корректны и начало раньше конца.
// Записи старых версий могут хранить пустое или произвольное время
func (r *Reservation) HasValidInterval() bool {
	return r.DurationMinutes() > 0
}

// Overlaps проверяет пересечение полуинтервалов времени.
// Граничащие интервалы (10:00-10:30 и 10:30-11:00) не пересекаются.
// Некорректный интервал ни с чем не пересекается
func (r *Reservation) Overlaps(other *Reservation) bool {
	if !r.HasValidInterval() || !other.HasValidInterval() {
		return false
	}
	return r.StartTime.IsBefore(other.EndTime) && other.StartTime.IsBefore(r.EndTime)
}

// ConflictsWith возвращает true, если бронирования в одну дату пересекаются по времени
// и занимают хотя бы одно общее место. Отношение симметрично
func (r *Reservation) ConflictsWith(other *Reservation) bool {
	return r.SameDate(other) && r.Overlaps(other) && r.Seats.Intersects(other.Seats)
}

// Covers возвращает true, если момент t попадает в [StartTime, EndTime)
func (r *Reservation) Covers(t types.TimeString) bool {
	if !r.HasValidInterval() {
		return false
	}
	return !t.IsBefore(r.StartTime) && t.IsBefore(r.EndTime)
}

// DurationMinutes длительность бронирования в минутах (0 для некорректного интервала)
func (r *Reservation) DurationMinutes() int {
	start, err := r.StartTime.Minutes()
	if err != nil {
		return 0
	}
	end, err := r.EndTime.Minutes()
	if err != nil || end < start {
		return 0
	}
	return end - start
}

// ReservationsFilter фильтр списка бронирований
type ReservationsFilter struct {
	Date *time.Time // nil - все даты
}

// DateOnly обнуляет время суток, сохраняя календарную дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate парсит дату в формате YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}
