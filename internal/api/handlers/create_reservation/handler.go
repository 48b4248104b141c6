package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FootSpaReservation/internal/api/handlers"
	"github.com/m04kA/SMC-FootSpaReservation/internal/domain"
	createReservation "github.com/m04kA/SMC-FootSpaReservation/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "요청 형식이 올바르지 않습니다"
	msgSeatConflict       = "선택한 좌석은 해당 시간에 이미 예약되어 있습니다."
	msgInvalidName        = "이름을 입력해 주세요 (최대 100자)"
	msgInvalidPayment     = "결제 방식을 선택해 주세요 (카드, 현금, 계좌이체)"
	msgInvalidDate        = "날짜 형식이 올바르지 않습니다 (YYYY-MM-DD)"
	msgInvalidTime        = "시간 형식이 올바르지 않습니다 (HH:MM, 5분 단위)"
	msgInvalidTimeRange   = "종료 시간은 시작 시간보다 늦어야 합니다"
	msgInvalidSeats       = "좌석을 1개 이상 선택해 주세요 (1~12번)"
	msgInvalidPeopleCount = "인원은 1명 이상이어야 합니다"
	msgNoteTooLong        = "메모는 500자 이하로 입력해 주세요"
	msgInvalidInput       = "입력값이 올바르지 않습니다"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleForm POST /add
// Успех - редирект на расписание даты бронирования, ошибки - 400 text/plain
func (h *Handler) HandleForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /add - Invalid form: %v", err)
		handlers.RespondText(w, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), formToUseCaseRequest(r))
	if err != nil {
		status, message := errorToResponse(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("POST /add - Failed to create reservation: %v", err)
			handlers.RespondTextInternalError(w)
			return
		}
		h.logger.Warn("POST /add - Rejected: %v", err)
		// форма отвечает 400 и на конфликт мест
		handlers.RespondText(w, http.StatusBadRequest, message)
		return
	}

	h.logger.Info("POST /add - Reservation created: id=%d", result.ID)
	handlers.RedirectToSchedule(w, r, result.ReserveDate.Format(domain.DateFormat))
}

// HandleJSON POST /api/v1/reservations
func (h *Handler) HandleJSON(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		status, message := errorToResponse(err)
		switch status {
		case http.StatusInternalServerError:
			h.logger.Error("POST /reservations - Failed to create reservation: %v", err)
			handlers.RespondInternalError(w)
		case http.StatusConflict:
			h.logger.Warn("POST /reservations - Seat conflict: %v", err)
			handlers.RespondConflict(w, message)
		default:
			h.logger.Warn("POST /reservations - Rejected: %v", err)
			handlers.RespondBadRequest(w, message)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func errorToResponse(err error) (int, string) {
	switch {
	case errors.Is(err, createReservation.ErrSeatConflict):
		return http.StatusConflict, msgSeatConflict
	case errors.Is(err, createReservation.ErrInvalidName):
		return http.StatusBadRequest, msgInvalidName
	case errors.Is(err, createReservation.ErrInvalidPayment):
		return http.StatusBadRequest, msgInvalidPayment
	case errors.Is(err, createReservation.ErrInvalidDate):
		return http.StatusBadRequest, msgInvalidDate
	case errors.Is(err, createReservation.ErrInvalidTime):
		return http.StatusBadRequest, msgInvalidTime
	case errors.Is(err, createReservation.ErrInvalidTimeRange):
		return http.StatusBadRequest, msgInvalidTimeRange
	case errors.Is(err, createReservation.ErrInvalidSeats):
		return http.StatusBadRequest, msgInvalidSeats
	case errors.Is(err, createReservation.ErrInvalidPeopleCount):
		return http.StatusBadRequest, msgInvalidPeopleCount
	case errors.Is(err, createReservation.ErrNoteTooLong):
		return http.StatusBadRequest, msgNoteTooLong
	case errors.Is(err, createReservation.ErrInvalidInput):
		return http.StatusBadRequest, msgInvalidInput
	default:
		return http.StatusInternalServerError, ""
	}
}
