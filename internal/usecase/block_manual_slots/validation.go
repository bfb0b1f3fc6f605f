package block_manual_slots

import (
	"fmt"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
)

// validateRequest проверяет корректность запроса блокировки
func validateRequest(req *Request) error {
	if req.ProviderID <= 0 {
		return fmt.Errorf("%w: providerId must be positive", ErrInvalidInput)
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

	if req.DurationHours < 1 || req.DurationHours > domain.MaxDurationHours {
		return fmt.Errorf("%w: durationHours must be in [1, %d]", ErrInvalidInput, domain.MaxDurationHours)
	}

	if len(req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	if req.ListingID != nil && *req.ListingID <= 0 {
		return fmt.Errorf("%w: listingId must be positive", ErrInvalidInput)
	}

	return nil
}
