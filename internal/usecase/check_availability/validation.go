package check_availability

import "fmt"

// validateRequest проверяет корректность запроса проверки доступности
func validateRequest(req *Request) error {
	if req.ProviderID <= 0 {
		return fmt.Errorf("%w: providerId must be positive", ErrInvalidInput)
	}

	if req.ListingID != nil && *req.ListingID <= 0 {
		return fmt.Errorf("%w: listingId must be positive", ErrInvalidInput)
	}

	if req.StartAt.IsZero() {
		return fmt.Errorf("%w: startAt is required", ErrInvalidInput)
	}

	if req.StartAt.Minute() != 0 || req.StartAt.Second() != 0 || req.StartAt.Nanosecond() != 0 {
		return fmt.Errorf("%w: startAt must be aligned to the hour", ErrInvalidInput)
	}

	if req.DurationHours < 0 {
		return fmt.Errorf("%w: durationHours must not be negative", ErrInvalidInput)
	}

	return nil
}
