package get_schedule

import (
	"github.com/m04kA/SMC-FootSpaReservation/internal/domain"
	getSchedule "github.com/m04kA/SMC-FootSpaReservation/internal/usecase/get_schedule"
)

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	Date          string         `json:"date"`
	Labels        []string       `json:"labels"`
	Seats         []SeatResponse `json:"seats"`
	OccupancyRate float64        `json:"occupancyRate"`
}

// SeatResponse занятость одного места: cells[i] соответствует labels[i], "" - свободно
type SeatResponse struct {
	Seat  int      `json:"seat"`
	Cells []string `json:"cells"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *getSchedule.Response) *ScheduleResponse {
	labels := make([]string, len(resp.Labels))
	for i, l := range resp.Labels {
		labels[i] = l.String()
	}

	seats := make([]SeatResponse, 0, len(resp.Grid.Rows))
	for _, row := range resp.Grid.Rows {
		seats = append(seats, SeatResponse{Seat: row.Seat, Cells: row.Cells})
	}

	return &ScheduleResponse{
		Date:          resp.Date.Format(domain.DateFormat),
		Labels:        labels,
		Seats:         seats,
		OccupancyRate: resp.Grid.OccupancyRate(),
	}
}
