package get_schedule

import (
	"time"

	"github.com/m04kA/SMC-FootSpaReservation/internal/domain"
	"github.com/m04kA/SMC-FootSpaReservation/pkg/types"
)

// Request модель запроса расписания
type Request struct {
	Date string // YYYY-MM-DD, пустая строка - сегодня в часовом поясе заведения
}

// Response расписание на дату: бронирования и матрица занятости мест
type Response struct {
	Date         time.Time
	Labels       []types.TimeString
	Grid         *domain.OccupancyGrid
	Reservations []*domain.Reservation // по времени начала, затем по ID
}

// Hours часы работы заведения и шаг сетки
type Hours struct {
	Open        types.TimeString
	Close       types.TimeString
	StepMinutes int
}

// DefaultHours 10:00-22:00 с шагом 5 минут
func DefaultHours() Hours {
	return Hours{
		Open:        domain.DefaultOpenTime,
		Close:       domain.DefaultCloseTime,
		StepMinutes: domain.DefaultSlotStepMinutes,
	}
}
