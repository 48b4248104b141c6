package get_schedule

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-FootSpaReservation/internal/domain"
	"github.com/m04kA/SMC-FootSpaReservation/pkg/ptr"
	"github.com/m04kA/SMC-FootSpaReservation/pkg/types"
)

// UseCase use case для получения расписания и занятости мест на дату
type UseCase struct {
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger

	location *time.Location
	labels   []types.TimeString
}

// NewUseCase создает новый экземпляр use case.
// Метки времени строятся один раз: [hours.Open, hours.Close) с шагом hours.StepMinutes
func NewUseCase(
	reservationRepo ReservationRepository,
	logger Logger,
	location *time.Location,
	hours Hours,
) (*UseCase, error) {
	labels, err := types.TimeRange(hours.Open, hours.Close, hours.StepMinutes)
	if err != nil {
		return nil, fmt.Errorf("get_schedule: build time labels: %w", err)
	}
	if location == nil {
		location = time.Local
	}
	return &UseCase{
		reservationRepo: reservationRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
		location:        location,
		labels:          labels,
	}, nil
}

// Today текущая дата в часовом поясе заведения
func (uc *UseCase) Today() time.Time {
	return domain.DateOnly(uc.timeProvider.Now().In(uc.location))
}

// Execute возвращает бронирования на дату и матрицу занятости мест
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	date := uc.Today()
	if raw := strings.TrimSpace(req.Date); raw != "" {
		parsed, err := domain.ParseDate(raw)
		if err != nil {
			uc.logger.Warn("GetSchedule: invalid date %q", req.Date)
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
		}
		date = parsed
	}

	reservations, err := uc.reservationRepo.List(ctx, domain.ReservationsFilter{Date: ptr.Ptr(date)})
	if err != nil {
		uc.logger.Error("GetSchedule: failed to list reservations for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	grid := buildOccupancyGrid(uc.labels, domain.SeatCount, reservations)

	uc.logger.Info("GetSchedule: date=%s, reservations=%d, occupancy=%.1f%%",
		date.Format(domain.DateFormat), len(reservations), grid.OccupancyRate())

	return &Response{
		Date:         date,
		Labels:       uc.labels,
		Grid:         grid,
		Reservations: reservations,
	}, nil
}
