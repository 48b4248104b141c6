package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-FootSpaReservation/internal/domain"
	"github.com/m04kA/SMC-FootSpaReservation/pkg/types"
)

// Request модель запроса на создание бронирования.
// Значения приходят из формы или JSON как есть, разбор и валидация выполняются в usecase
type Request struct {
	Name        string   // Имя клиента
	Payment     string   // Код ("card") или подпись ("카드") способа оплаты
	Date        string   // Дата YYYY-MM-DD, пустая строка - сегодня
	StartTime   string   // Время начала HH:MM
	EndTime     string   // Время окончания HH:MM (не входит в интервал)
	Seats       []string // Номера мест: значения чекбоксов или строка "1,2,3"
	PeopleCount int      // Количество людей
	Note        *string  // Заметка (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	Name        string
	Payment     domain.PaymentMethod
	ReserveDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Seats       domain.SeatSet
	PeopleCount int
	Note        *string
	CreatedAt   time.Time
}

func toResponse(r *domain.Reservation) *Response {
	return &Response{
		ID:          r.ID,
		Name:        r.Name,
		Payment:     r.Payment,
		ReserveDate: r.ReserveDate,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Seats:       r.Seats,
		PeopleCount: r.PeopleCount,
		Note:        r.Note,
		CreatedAt:   r.CreatedAt,
	}
}
