package get_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FootSpaReservation/internal/api/handlers"
	getSchedule "github.com/m04kA/SMC-FootSpaReservation/internal/usecase/get_schedule"
)

const (
	msgInvalidDate = "날짜 형식이 올바르지 않습니다 (YYYY-MM-DD)"
)

type Handler struct {
	useCase GetScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	schedule, err := h.useCase.Execute(r.Context(), &getSchedule.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getSchedule.ErrInvalidDate):
			h.logger.Warn("GET /schedule - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /schedule - Failed to get schedule: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(schedule))
}
