package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FootSpaReservation/internal/domain"
	reservationRepo "github.com/m04kA/SMC-FootSpaReservation/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-FootSpaReservation/internal/service/reservations/models"
	"github.com/m04kA/SMC-FootSpaReservation/pkg/metrics"
)

// Service сервис для чтения и удаления бронирований
type Service struct {
	reservationRepo ReservationRepository
	metrics         Metrics
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	m Metrics,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		metrics:         m,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// List получает бронирования на дату или все, если дата не указана
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	var filter domain.ReservationsFilter

	if req != nil && req.Date != nil && *req.Date != "" {
		date, err := domain.ParseDate(*req.Date)
		if err != nil {
			s.logger.Warn("List: invalid date %q", *req.Date)
			return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, *req.Date)
		}
		filter.Date = &date
	}

	list, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservations(list), nil
}

// Delete удаляет бронирование. Удаление несуществующего ID не является ошибкой
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.reservationRepo.Delete(ctx, id)
	if errors.Is(err, reservationRepo.ErrReservationNotFound) {
		s.logger.Info("Delete: reservation id=%d not found, nothing to delete", id)
		return nil
	}
	if err != nil {
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if s.metrics != nil {
		s.metrics.IncReservation(metrics.OutcomeDeleted)
	}
	s.logger.Info("Delete: reservation id=%d deleted", id)

	return nil
}
