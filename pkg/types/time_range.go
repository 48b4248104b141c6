package types

import (
	"errors"
	"fmt"
)

// ErrInvalidStep возвращается при неположительном шаге сетки
var ErrInvalidStep = errors.New("step must be positive")

// TimeRange генерирует метки времени полуинтервала [from, to) с фиксированным шагом.
// Если from не раньше to, возвращается пустой список
func TimeRange(from, to TimeString, stepMinutes int) ([]TimeString, error) {
	if stepMinutes <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStep, stepMinutes)
	}

	start, err := from.Minutes()
	if err != nil {
		return nil, err
	}
	end, err := to.Minutes()
	if err != nil {
		return nil, err
	}

	labels := make([]TimeString, 0, max(0, (end-start+stepMinutes-1)/stepMinutes))
	for current := start; current < end; current += stepMinutes {
		label, err := fromMinutes(current)
		if err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}

	return labels, nil
}
