package create_reservation

import (
	"fmt"

	"github.com/m04kA/SMC-FootSpaReservation/internal/domain"
)

// checkConflicts сравнивает кандидата со всеми существующими бронированиями.
// Конфликт: та же дата, пересечение [start, end) и хотя бы одно общее место
func checkConflicts(candidate *domain.Reservation, existing []*domain.Reservation) error {
	for _, r := range existing {
		if candidate.ConflictsWith(r) {
			return fmt.Errorf("%w: overlaps reservation id=%d on seats %s",
				ErrSeatConflict, r.ID, candidate.Seats.Intersection(r.Seats))
		}
	}
	return nil
}
