package get_schedule

import (
	"github.com/m04kA/SMC-FootSpaReservation/internal/domain"
	"github.com/m04kA/SMC-FootSpaReservation/pkg/types"
)

// buildOccupancyGrid заполняет матрицу seat × label именами клиентов.
// Ячейка занята, если метка попадает в [start, end) бронирования.
// Бронирования применяются в переданном порядке, при наложении остается последнее
func buildOccupancyGrid(labels []types.TimeString, seatCount int, reservations []*domain.Reservation) *domain.OccupancyGrid {
	grid := domain.NewOccupancyGrid(labels, seatCount)

	for _, r := range reservations {
		for i, label := range labels {
			if !r.Covers(label) {
				continue
			}
			for _, seat := range r.Seats {
				if row := grid.Row(seat); row != nil {
					row.Cells[i] = r.Name
				}
			}
		}
	}

	return grid
}
