package create_reservation

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-FootSpaReservation/internal/domain"
	createReservation "github.com/m04kA/SMC-FootSpaReservation/internal/usecase/create_reservation"
)

// Поля HTML формы
const (
	fieldName        = "name"
	fieldPayment     = "payment"
	fieldDate        = "date"
	fieldStartTime   = "start_time"
	fieldEndTime     = "end_time"
	fieldSeats       = "seats"
	fieldPeopleCount = "people_count"
	fieldNote        = "note"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Name        string  `json:"name"`
	Payment     string  `json:"payment"`        // "card" | "cash" | "bank_transfer" или подпись
	Date        string  `json:"date,omitempty"` // "2024-05-01", по умолчанию сегодня
	StartTime   string  `json:"startTime"`      // "10:00"
	EndTime     string  `json:"endTime"`        // "11:00"
	Seats       []int   `json:"seats"`          // [1, 2]
	PeopleCount int     `json:"peopleCount"`    // >= 1
	Note        *string `json:"note,omitempty"` // заметка
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Payment      string  `json:"payment"`
	PaymentLabel string  `json:"paymentLabel"`
	Date         string  `json:"date"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Seats        []int   `json:"seats"`
	PeopleCount  int     `json:"peopleCount"`
	Note         *string `json:"note,omitempty"`
	CreatedAt    string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует JSON запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() *createReservation.Request {
	seats := make([]string, len(r.Seats))
	for i, seat := range r.Seats {
		seats[i] = strconv.Itoa(seat)
	}

	return &createReservation.Request{
		Name:        r.Name,
		Payment:     r.Payment,
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Seats:       seats,
		PeopleCount: r.PeopleCount,
		Note:        r.Note,
	}
}

// formToUseCaseRequest читает поля HTML формы.
// seats приходит либо несколькими чекбоксами, либо строкой "1,2,3".
// Нечисловое people_count дает 0 и отклоняется валидацией use case
func formToUseCaseRequest(r *http.Request) *createReservation.Request {
	peopleCount, err := strconv.Atoi(strings.TrimSpace(r.PostForm.Get(fieldPeopleCount)))
	if err != nil {
		peopleCount = 0
	}

	var note *string
	if _, ok := r.PostForm[fieldNote]; ok {
		value := r.PostForm.Get(fieldNote)
		note = &value
	}

	return &createReservation.Request{
		Name:        r.PostForm.Get(fieldName),
		Payment:     r.PostForm.Get(fieldPayment),
		Date:        r.PostForm.Get(fieldDate),
		StartTime:   r.PostForm.Get(fieldStartTime),
		EndTime:     r.PostForm.Get(fieldEndTime),
		Seats:       r.PostForm[fieldSeats],
		PeopleCount: peopleCount,
		Note:        note,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	seats := make([]int, len(resp.Seats))
	copy(seats, resp.Seats)

	return &ReservationResponse{
		ID:           resp.ID,
		Name:         resp.Name,
		Payment:      string(resp.Payment),
		PaymentLabel: resp.Payment.Label(),
		Date:         resp.ReserveDate.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		EndTime:      resp.EndTime.String(),
		Seats:        seats,
		PeopleCount:  resp.PeopleCount,
		Note:         resp.Note,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}
