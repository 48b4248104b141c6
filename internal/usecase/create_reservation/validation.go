package create_reservation

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-FootSpaReservation/internal/domain"
	"github.com/m04kA/SMC-FootSpaReservation/pkg/types"
)

// buildReservation валидирует запрос и собирает из него бронирование.
// today используется, когда дата в запросе не указана
func buildReservation(req *Request, today time.Time, stepMinutes int) (*domain.Reservation, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: is required", ErrInvalidName)
	}
	if utf8.RuneCountInString(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: longer than %d characters", ErrInvalidName, domain.MaxNameLength)
	}

	payment, err := domain.ParsePaymentMethod(req.Payment)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayment, err)
	}

	date := domain.DateOnly(today)
	if raw := strings.TrimSpace(req.Date); raw != "" {
		date, err = domain.ParseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
		}
	}

	start, err := parseSlotTime(req.StartTime, stepMinutes)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	end, err := parseSlotTime(req.EndTime, stepMinutes)
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}
	if !end.IsAfter(start) {
		return nil, fmt.Errorf("%w: %s-%s", ErrInvalidTimeRange, start, end)
	}

	seats, err := domain.ParseSeatSet(req.Seats...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeats, err)
	}

	if req.PeopleCount < domain.MinPeopleCount || req.PeopleCount > domain.MaxPeopleCount {
		return nil, fmt.Errorf("%w: %d not in %d..%d", ErrInvalidPeopleCount,
			req.PeopleCount, domain.MinPeopleCount, domain.MaxPeopleCount)
	}

	var note *string
	if req.Note != nil {
		trimmed := strings.TrimSpace(*req.Note)
		if utf8.RuneCountInString(trimmed) > domain.MaxNoteLength {
			return nil, fmt.Errorf("%w: longer than %d characters", ErrNoteTooLong, domain.MaxNoteLength)
		}
		if trimmed != "" {
			note = &trimmed
		}
	}

	return &domain.Reservation{
		Name:        name,
		Payment:     payment,
		ReserveDate: date,
		StartTime:   start,
		EndTime:     end,
		Seats:       seats,
		PeopleCount: req.PeopleCount,
		Note:        note,
	}, nil
}

// parseSlotTime разбирает HH:MM и проверяет кратность шагу сетки
func parseSlotTime(raw string, stepMinutes int) (types.TimeString, error) {
	t, err := types.NewTimeStringFromString(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTime, raw)
	}
	if !t.IsAligned(stepMinutes) {
		return "", fmt.Errorf("%w: %s is not a multiple of %d minutes", ErrInvalidTime, t, stepMinutes)
	}
	return t, nil
}
