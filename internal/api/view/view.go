package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templatesFS embed.FS

const pageTemplate = "index.html"

// PageData модель страницы расписания
type PageData struct {
	Title         string
	Date          string // YYYY-MM-DD
	PrevDate      string
	NextDate      string
	Payments      []PaymentOption
	SeatNumbers   []int
	Durations     []int // минуты для автозаполнения времени окончания
	StepSeconds   int   // шаг поля времени
	Reservations  []ReservationRow
	Grid          GridView
	OccupancyRate string
}

// PaymentOption вариант способа оплаты в форме
type PaymentOption struct {
	Value string
	Label string
}

// ReservationRow строка таблицы бронирований
type ReservationRow struct {
	ID          int64
	Name        string
	Payment     string
	StartTime   string
	EndTime     string
	Seats       string
	PeopleCount int
	Note        string
	DeleteURL   string
}

// Renderer рендерит страницу расписания из встроенного шаблона
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer разбирает встроенные шаблоны
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New(pageTemplate).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("view: parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render пишет HTML страницы в w.
// Страница собирается в буфер, чтобы ошибка шаблона не оставляла обрезанный ответ
func (r *Renderer) Render(w io.Writer, data *PageData) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, pageTemplate, data); err != nil {
		return fmt.Errorf("view: render %s: %w", pageTemplate, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
