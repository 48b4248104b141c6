package domain

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrEmptySeatSet возвращается, когда не выбрано ни одного места
	ErrEmptySeatSet = errors.New("seat set is empty")

	// ErrInvalidSeat возвращается для номера места вне диапазона 1..SeatCount
	ErrInvalidSeat = errors.New("invalid seat number")
)

// SeatSet отсортированное множество номеров мест без повторов
type SeatSet []int

// NewSeatSet валидирует номера мест и строит множество
func NewSeatSet(seats ...int) (SeatSet, error) {
	if len(seats) == 0 {
		return nil, ErrEmptySeatSet
	}

	unique := make(map[int]struct{}, len(seats))
	for _, seat := range seats {
		if seat < MinSeatNumber || seat > MaxSeatNumber {
			return nil, fmt.Errorf("%w: %d (allowed %d..%d)", ErrInvalidSeat, seat, MinSeatNumber, MaxSeatNumber)
		}
		unique[seat] = struct{}{}
	}

	set := make(SeatSet, 0, len(unique))
	for seat := range unique {
		set = append(set, seat)
	}
	sort.Ints(set)

	return set, nil
}

// ParseSeatSet разбирает значения из формы.
// Каждое значение - либо один номер (чекбокс), либо список через запятую ("1,2,3")
func ParseSeatSet(values ...string) (SeatSet, error) {
	seats := make([]int, 0, len(values))

	for _, value := range values {
		for _, part := range strings.FieldsFunc(value, isSeatSeparator) {
			seat, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidSeat, part)
			}
			seats = append(seats, seat)
		}
	}

	return NewSeatSet(seats...)
}

func isSeatSeparator(r rune) bool {
	return r == ',' || r == ' ' || r == ';'
}

// Contains возвращает true, если место входит в множество
func (s SeatSet) Contains(seat int) bool {
	i := sort.SearchInts(s, seat)
	return i < len(s) && s[i] == seat
}

// Intersection возвращает общие места двух множеств
func (s SeatSet) Intersection(other SeatSet) SeatSet {
	common := make(SeatSet, 0)
	i, j := 0, 0
	for i < len(s) && j < len(other) {
		switch {
		case s[i] < other[j]:
			i++
		case s[i] > other[j]:
			j++
		default:
			common = append(common, s[i])
			i++
			j++
		}
	}
	return common
}

// Intersects возвращает true, если у множеств есть общее место
func (s SeatSet) Intersects(other SeatSet) bool {
	return len(s.Intersection(other)) > 0
}

// String возвращает места через запятую: "1,2,3"
func (s SeatSet) String() string {
	parts := make([]string, len(s))
	for i, seat := range s {
		parts[i] = strconv.Itoa(seat)
	}
	return strings.Join(parts, ",")
}

// Scan реализует sql.Scanner (места хранятся строкой "1,2,3").
// Файлы ранних версий хранят места свободным текстом ("3번", "1, 2"):
// берутся номера в диапазоне MinSeatNumber..MaxSeatNumber, остальное пропускается
func (s *SeatSet) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = SeatSet{}
	case string:
		*s = parseStoredSeats(v)
	case []byte:
		*s = parseStoredSeats(string(v))
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidSeat, src)
	}
	return nil
}

func parseStoredSeats(raw string) SeatSet {
	unique := make(map[int]struct{})
	for _, part := range strings.FieldsFunc(raw, isNotASCIIDigit) {
		seat, err := strconv.Atoi(part)
		if err != nil || seat < MinSeatNumber || seat > MaxSeatNumber {
			continue
		}
		unique[seat] = struct{}{}
	}

	set := make(SeatSet, 0, len(unique))
	for seat := range unique {
		set = append(set, seat)
	}
	sort.Ints(set)

	return set
}

func isNotASCIIDigit(r rune) bool {
	return r < '0' || r > '9'
}

// Value реализует driver.Valuer
func (s SeatSet) Value() (driver.Value, error) {
	return s.String(), nil
}
