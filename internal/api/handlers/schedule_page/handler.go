package schedule_page

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FootSpaReservation/internal/api/handlers"
	getSchedule "github.com/m04kA/SMC-FootSpaReservation/internal/usecase/get_schedule"
)

const (
	msgInvalidRequestBody = "요청 형식이 올바르지 않습니다"
	msgInvalidDate        = "날짜 형식이 올바르지 않습니다 (YYYY-MM-DD)"
)

type Handler struct {
	useCase     GetScheduleUseCase
	renderer    Renderer
	stepMinutes int
	logger      Logger
}

func NewHandler(useCase GetScheduleUseCase, renderer Renderer, stepMinutes int, logger Logger) *Handler {
	return &Handler{
		useCase:     useCase,
		renderer:    renderer,
		stepMinutes: stepMinutes,
		logger:      logger,
	}
}

// Handle GET / и POST /
// GET берет дату из ?date=, POST - из поля формы date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			h.logger.Warn("POST / - Invalid form: %v", err)
			handlers.RespondText(w, http.StatusBadRequest, msgInvalidRequestBody)
			return
		}
		date = r.PostForm.Get("date")
	}

	schedule, err := h.useCase.Execute(r.Context(), &getSchedule.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getSchedule.ErrInvalidDate):
			h.logger.Warn("%s / - Invalid date: %q", r.Method, date)
			handlers.RespondText(w, http.StatusBadRequest, msgInvalidDate)

		default:
			h.logger.Error("%s / - Failed to get schedule: %v", r.Method, err)
			handlers.RespondTextInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, buildPageData(schedule, h.stepMinutes)); err != nil {
		h.logger.Error("%s / - Failed to render page: %v", r.Method, err)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		handlers.RespondTextInternalError(w)
	}
}
