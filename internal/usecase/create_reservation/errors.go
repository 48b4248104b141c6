package create_reservation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInvalidName пустое или слишком длинное имя
	ErrInvalidName = fmt.Errorf("%w: name", ErrInvalidInput)

	// ErrInvalidPayment неизвестный способ оплаты
	ErrInvalidPayment = fmt.Errorf("%w: payment", ErrInvalidInput)

	// ErrInvalidDate дата не в формате YYYY-MM-DD
	ErrInvalidDate = fmt.Errorf("%w: date", ErrInvalidInput)

	// ErrInvalidTime время не в формате HH:MM или не кратно шагу сетки
	ErrInvalidTime = fmt.Errorf("%w: time", ErrInvalidInput)

	// ErrInvalidTimeRange время начала не раньше времени окончания
	ErrInvalidTimeRange = fmt.Errorf("%w: start time must be before end time", ErrInvalidInput)

	// ErrInvalidSeats не выбрано ни одного места или номер места вне диапазона
	ErrInvalidSeats = fmt.Errorf("%w: seats", ErrInvalidInput)

	// ErrInvalidPeopleCount количество людей вне допустимого диапазона
	ErrInvalidPeopleCount = fmt.Errorf("%w: people count", ErrInvalidInput)

	// ErrNoteTooLong слишком длинная заметка
	ErrNoteTooLong = fmt.Errorf("%w: note is too long", ErrInvalidInput)

	// ErrSeatConflict возвращается, когда хотя бы одно место уже занято в пересекающийся интервал
	ErrSeatConflict = errors.New("create_reservation: seat is already reserved for this time")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
