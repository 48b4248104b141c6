package schedule_page

import (
	"fmt"
	"net/url"

	"github.com/m04kA/SMC-FootSpaReservation/internal/api/view"
	"github.com/m04kA/SMC-FootSpaReservation/internal/domain"
	getSchedule "github.com/m04kA/SMC-FootSpaReservation/internal/usecase/get_schedule"
	"github.com/m04kA/SMC-FootSpaReservation/pkg/ptr"
)

const pageTitle = "족욕 예약 시스템"

// варианты длительности для автозаполнения времени окончания, минуты
var durations = []int{30, 40, 50, 60, 90, 120}

// buildPageData собирает модель страницы из расписания
func buildPageData(resp *getSchedule.Response, stepMinutes int) *view.PageData {
	date := resp.Date.Format(domain.DateFormat)

	payments := make([]view.PaymentOption, 0, len(domain.PaymentMethods))
	for _, p := range domain.PaymentMethods {
		payments = append(payments, view.PaymentOption{Value: string(p), Label: p.Label()})
	}

	seatNumbers := make([]int, 0, domain.SeatCount)
	for seat := domain.MinSeatNumber; seat <= domain.MaxSeatNumber; seat++ {
		seatNumbers = append(seatNumbers, seat)
	}

	rows := make([]view.ReservationRow, 0, len(resp.Reservations))
	for _, r := range resp.Reservations {
		rows = append(rows, view.ReservationRow{
			ID:          r.ID,
			Name:        r.Name,
			Payment:     r.Payment.Label(),
			StartTime:   r.StartTime.String(),
			EndTime:     r.EndTime.String(),
			Seats:       r.Seats.String(),
			PeopleCount: r.PeopleCount,
			Note:        ptr.Value(r.Note),
			DeleteURL:   fmt.Sprintf("/delete/%d?%s", r.ID, url.Values{"date": {date}}.Encode()),
		})
	}

	rate := 0.0
	if resp.Grid != nil {
		rate = resp.Grid.OccupancyRate()
	}

	return &view.PageData{
		Title:         pageTitle,
		Date:          date,
		PrevDate:      resp.Date.AddDate(0, 0, -1).Format(domain.DateFormat),
		NextDate:      resp.Date.AddDate(0, 0, 1).Format(domain.DateFormat),
		Payments:      payments,
		SeatNumbers:   seatNumbers,
		Durations:     durations,
		StepSeconds:   stepMinutes * 60,
		Reservations:  rows,
		Grid:          view.NewGridView(resp.Grid),
		OccupancyRate: fmt.Sprintf("%.1f%%", rate),
	}
}
