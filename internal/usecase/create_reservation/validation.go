package create_reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
)

// validateRequest проверяет корректность запроса создания бронирования
// Время начала сверяется с "сейчас" из TimeProvider: бронирования в прошлом отклоняются
func validateRequest(req *Request, now time.Time) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientId must be positive", ErrInvalidInput)
	}

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

	if req.StartAt.Before(now) {
		return fmt.Errorf("%w: startAt must not be in the past", ErrInvalidInput)
	}

	if req.DurationHours < 0 || req.DurationHours > domain.MaxDurationHours {
		return fmt.Errorf("%w: durationHours must be in [0, %d]", ErrInvalidInput, domain.MaxDurationHours)
	}

	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Location) == "" {
		return fmt.Errorf("%w: location is required", ErrInvalidInput)
	}
	if len(req.Location) > domain.MaxLocationLength {
		return fmt.Errorf("%w: location must not exceed %d characters", ErrInvalidInput, domain.MaxLocationLength)
	}

	if req.PartySize < 1 || req.PartySize > domain.MaxPartySize {
		return fmt.Errorf("%w: partySize must be in [1, %d]", ErrInvalidInput, domain.MaxPartySize)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.QuoteAmount != nil && *req.QuoteAmount <= 0 {
		return fmt.Errorf("%w: quoteAmount must be positive", ErrInvalidInput)
	}

	return nil
}
