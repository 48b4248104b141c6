package models

import (
	"time"

	"github.com/m04kA/SMC-FootSpaReservation/internal/domain"
)

// ListReservationsRequest запрос списка бронирований
type ListReservationsRequest struct {
	Date *string `json:"date,omitempty"` // YYYY-MM-DD, nil - все даты
}

// ReservationResponse бронирование в ответах API
type ReservationResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Payment      string    `json:"payment"`
	PaymentLabel string    `json:"paymentLabel"`
	Date         string    `json:"date"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	Seats        []int     `json:"seats"`
	PeopleCount  int       `json:"peopleCount"`
	Note         *string   `json:"note,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// FromDomainReservation конвертирует доменную модель в response
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	seats := make([]int, len(r.Seats))
	copy(seats, r.Seats)

	return &ReservationResponse{
		ID:           r.ID,
		Name:         r.Name,
		Payment:      string(r.Payment),
		PaymentLabel: r.Payment.Label(),
		Date:         r.ReserveDate.Format(domain.DateFormat),
		StartTime:    r.StartTime.String(),
		EndTime:      r.EndTime.String(),
		Seats:        seats,
		PeopleCount:  r.PeopleCount,
		Note:         r.Note,
		CreatedAt:    r.CreatedAt,
	}
}

// FromDomainReservations конвертирует список доменных моделей
func FromDomainReservations(list []*domain.Reservation) *ReservationListResponse {
	out := make([]ReservationResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *FromDomainReservation(r))
	}
	return &ReservationListResponse{
		Reservations: out,
		Total:        len(out),
	}
}
