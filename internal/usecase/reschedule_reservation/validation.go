package reschedule_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
)

// validateRequest проверяет корректность запроса переноса
func validateRequest(req *Request, now time.Time) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservationId must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userId must be positive", ErrInvalidInput)
	}

	if req.StartAt.IsZero() {
		return fmt.Errorf("%w: startAt is required", ErrInvalidInput)
	}

	if req.StartAt.Minute() != 0 || req.StartAt.Second() != 0 || req.StartAt.Nanosecond() != 0 {
		return fmt.Errorf("%w: startAt must be aligned to the hour", ErrInvalidInput)
	}

	if req.StartAt.Before(now) {
		return fmt.Errorf("%w: startAt must not be in the past", ErrInvalidInput)
	}

	if req.DurationHours < 0 || req.DurationHours > domain.MaxDurationHours {
		return fmt.Errorf("%w: durationHours must be in [0, %d]", ErrInvalidInput, domain.MaxDurationHours)
	}

	return nil
}
