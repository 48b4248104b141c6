package domain

import "github.com/m04kA/SMC-FootSpaReservation/pkg/types"

// OccupancyGrid матрица занятости: место × временная метка -> имя клиента или ""
type OccupancyGrid struct {
	Labels []types.TimeString
	Rows   []SeatRow
}

// SeatRow строка матрицы для одного места
type SeatRow struct {
	Seat  int
	Cells []string // по одной ячейке на каждую метку из Labels
}

// NewOccupancyGrid создает пустую матрицу для мест 1..seatCount
func NewOccupancyGrid(labels []types.TimeString, seatCount int) *OccupancyGrid {
	rows := make([]SeatRow, seatCount)
	for i := range rows {
		rows[i] = SeatRow{
			Seat:  i + 1,
			Cells: make([]string, len(labels)),
		}
	}
	return &OccupancyGrid{Labels: labels, Rows: rows}
}

// Row возвращает строку места или nil, если места нет в матрице
func (g *OccupancyGrid) Row(seat int) *SeatRow {
	if seat < 1 || seat > len(g.Rows) {
		return nil
	}
	return &g.Rows[seat-1]
}

// Cell возвращает значение ячейки (seat, label) или "", если такой ячейки нет
func (g *OccupancyGrid) Cell(seat int, label types.TimeString) string {
	row := g.Row(seat)
	if row == nil {
		return ""
	}
	for i, l := range g.Labels {
		if l == label {
			return row.Cells[i]
		}
	}
	return ""
}

// OccupancyRate доля занятых ячеек в процентах (0-100)
func (g *OccupancyGrid) OccupancyRate() float64 {
	total, occupied := 0, 0
	for _, row := range g.Rows {
		for _, cell := range row.Cells {
			total++
			if cell != "" {
				occupied++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(occupied) / float64(total) * 100
}
