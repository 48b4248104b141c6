package list_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FootSpaReservation/internal/api/handlers"
	"github.com/m04kA/SMC-FootSpaReservation/internal/service/reservations"
	"github.com/m04kA/SMC-FootSpaReservation/internal/service/reservations/models"
)

const (
	msgInvalidDate = "날짜 형식이 올바르지 않습니다 (YYYY-MM-DD)"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations?date=YYYY-MM-DD
// Без date возвращаются бронирования на все даты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListReservationsRequest{}
	if date := r.URL.Query().Get("date"); date != "" {
		req.Date = &date
	}

	list, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /reservations - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /reservations - Failed to list reservations: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}
