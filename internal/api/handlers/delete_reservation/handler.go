package delete_reservation

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FootSpaReservation/internal/api/handlers"
	"github.com/m04kA/SMC-FootSpaReservation/internal/domain"
)

const (
	msgInvalidReservationID = "예약 번호가 올바르지 않습니다"
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

// HandleRedirect GET /delete/{id}
// Неизвестный ID тоже приводит к редиректу на расписание
func (h *Handler) HandleRedirect(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /delete/{id} - Invalid reservation ID: %v", err)
		handlers.RespondText(w, http.StatusBadRequest, msgInvalidReservationID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("GET /delete/{id} - Failed to delete reservation: id=%d, error=%v", id, err)
		handlers.RespondTextInternalError(w)
		return
	}

	// дата страницы, с которой пришел запрос
	date := r.URL.Query().Get("date")
	if _, err := domain.ParseDate(date); err != nil {
		date = ""
	}

	h.logger.Info("GET /delete/{id} - Reservation deleted: id=%d", id)
	handlers.RedirectToSchedule(w, r, date)
}

// HandleAPI DELETE /api/v1/reservations/{id}
func (h *Handler) HandleAPI(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("DELETE /reservations/{id} - Failed to delete reservation: id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /reservations/{id} - Reservation deleted: id=%d", id)
	handlers.RespondNoContent(w)
}
