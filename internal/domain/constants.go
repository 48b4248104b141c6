package domain

// Параметры заведения
const (
	// SeatCount количество фиксированных мест (кресел) в заведении
	SeatCount = 12

	// MinSeatNumber и MaxSeatNumber границы номеров мест
	MinSeatNumber = 1
	MaxSeatNumber = SeatCount
)

// Значения расписания по умолчанию
const (
	DefaultOpenTime        = "10:00"
	DefaultCloseTime       = "22:00"
	DefaultSlotStepMinutes = 5
)

// Константы бизнес-валидации
const (
	MaxNameLength  = 100
	MaxNoteLength  = 500
	MinPeopleCount = 1
	MaxPeopleCount = 100
)

// Форматы времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
