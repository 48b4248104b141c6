package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-FootSpaReservation/internal/domain"
	"github.com/m04kA/SMC-FootSpaReservation/pkg/metrics"
	"github.com/m04kA/SMC-FootSpaReservation/pkg/ptr"
)

// UseCase use case для создания бронирования мест
type UseCase struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	metrics         Metrics
	logger          Logger

	location    *time.Location
	stepMinutes int

	// проверка конфликтов и вставка выполняются строго по одной
	mu sync.Mutex
}

// NewUseCase создает новый экземпляр use case.
// location - часовой пояс заведения (дата "сегодня"), stepMinutes - шаг сетки времени
func NewUseCase(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	m Metrics,
	logger Logger,
	location *time.Location,
	stepMinutes int,
) *UseCase {
	if location == nil {
		location = time.Local
	}
	if stepMinutes <= 0 {
		stepMinutes = domain.DefaultSlotStepMinutes
	}
	return &UseCase{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		metrics:         m,
		logger:          logger,
		location:        location,
		stepMinutes:     stepMinutes,
	}
}

// Execute валидирует запрос, проверяет конфликты мест на ту же дату и сохраняет бронирование.
// Чтение существующих бронирований и вставка выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: name=%q, date=%s, time=%s-%s, seats=%v, people=%d",
		req.Name, req.Date, req.StartTime, req.EndTime, req.Seats, req.PeopleCount)

	// 1. Валидация входных данных
	today := uc.timeProvider.Now().In(uc.location)
	candidate, err := buildReservation(req, today, uc.stepMinutes)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		uc.incOutcome(metrics.OutcomeInvalid)
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	var result *domain.Reservation

	// 2. Проверка конфликтов и вставка в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.reservationRepo.List(txCtx, domain.ReservationsFilter{Date: ptr.Ptr(candidate.ReserveDate)})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to list reservations: %v", err)
			return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
		}

		if err := checkConflicts(candidate, existing); err != nil {
			uc.logger.Warn("CreateReservation: %v", err)
			return err
		}

		created, err := uc.reservationRepo.Create(txCtx, candidate)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSeatConflict) {
			uc.incOutcome(metrics.OutcomeConflict)
			return nil, err
		}
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateReservation: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.incOutcome(metrics.OutcomeCreated)
	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return toResponse(result), nil
}

func (uc *UseCase) incOutcome(outcome string) {
	if uc.metrics != nil {
		uc.metrics.IncReservation(outcome)
	}
}
