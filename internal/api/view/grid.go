package view

import (
	"strings"

	"github.com/m04kA/SMC-FootSpaReservation/internal/domain"
)

// GridView матрица занятости, подготовленная для таблицы
type GridView struct {
	Hours []HourHeader
	Rows  []GridRow
}

// HourHeader заголовок часа над метками этого часа
type HourHeader struct {
	Label string
	Span  int
}

// GridRow строка места
type GridRow struct {
	Seat  int
	Cells []GridCell
}

// GridCell подряд идущие ячейки с одинаковым значением
type GridCell struct {
	Name  string // "" - свободно
	Start string
	End   string // первая метка после отрезка
	Span  int
}

// Busy возвращает true для занятого отрезка
func (c GridCell) Busy() bool {
	return c.Name != ""
}

// NewGridView схлопывает одинаковые соседние ячейки в отрезки
// и группирует метки по часам для заголовка
func NewGridView(grid *domain.OccupancyGrid) GridView {
	if grid == nil {
		return GridView{}
	}

	labels := make([]string, len(grid.Labels))
	for i, l := range grid.Labels {
		labels[i] = l.String()
	}

	view := GridView{
		Hours: hourHeaders(labels),
		Rows:  make([]GridRow, 0, len(grid.Rows)),
	}
	for _, row := range grid.Rows {
		view.Rows = append(view.Rows, GridRow{
			Seat:  row.Seat,
			Cells: collapse(row.Cells, labels),
		})
	}

	return view
}

func collapse(cells []string, labels []string) []GridCell {
	out := make([]GridCell, 0)
	for i := 0; i < len(cells); {
		j := i + 1
		for j < len(cells) && cells[j] == cells[i] {
			j++
		}

		end := ""
		if j < len(labels) {
			end = labels[j]
		}
		out = append(out, GridCell{
			Name:  cells[i],
			Start: labels[i],
			End:   end,
			Span:  j - i,
		})
		i = j
	}
	return out
}

func hourHeaders(labels []string) []HourHeader {
	out := make([]HourHeader, 0)
	for _, label := range labels {
		hour, _, _ := strings.Cut(label, ":")
		if n := len(out); n > 0 && strings.HasPrefix(out[n-1].Label, hour+":") {
			out[n-1].Span++
			continue
		}
		out = append(out, HourHeader{Label: hour + ":00", Span: 1})
	}
	return out
}
