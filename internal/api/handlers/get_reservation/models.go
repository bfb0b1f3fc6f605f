package get_reservation

import (
	"time"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
	"github.com/m04kA/PhotoMarket-BookingService/internal/service/reservations/models"
)

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID                 int64    `json:"id"`
	Reference          string   `json:"reference"`
	ProviderID         int64    `json:"providerId"`
	ListingID          *int64   `json:"listingId,omitempty"`
	ClientID           int64    `json:"clientId"`
	Date               string   `json:"date"`
	StartTime          string   `json:"startTime"`
	DurationHours      int      `json:"durationHours"`
	Status             string   `json:"status"`
	Amount             float64  `json:"amount"`
	DepositAmount      float64  `json:"depositAmount"`
	QuoteAmount        *float64 `json:"quoteAmount,omitempty"`
	ClientName         string   `json:"clientName"`
	ClientEmail        *string  `json:"clientEmail,omitempty"`
	ClientPhone        *string  `json:"clientPhone,omitempty"`
	Location           string   `json:"location"`
	PartySize          int      `json:"partySize"`
	Notes              *string  `json:"notes,omitempty"`
	CancellationReason *string  `json:"cancellationReason,omitempty"`
	CancelledAt        *string  `json:"cancelledAt,omitempty"`
	CreatedAt          string   `json:"createdAt"`
	UpdatedAt          string   `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ReservationResponse) *ReservationResponse {
	result := &ReservationResponse{
		ID:                 resp.ID,
		Reference:          resp.Reference,
		ProviderID:         resp.ProviderID,
		ListingID:          resp.ListingID,
		ClientID:           resp.ClientID,
		Date:               resp.StartAt.Format(domain.DateFormat),
		StartTime:          resp.StartAt.Format("15:04"),
		DurationHours:      resp.DurationHours,
		Status:             resp.Status,
		Amount:             resp.Amount,
		DepositAmount:      resp.DepositAmount,
		QuoteAmount:        resp.QuoteAmount,
		ClientName:         resp.ClientName,
		ClientEmail:        resp.ClientEmail,
		ClientPhone:        resp.ClientPhone,
		Location:           resp.Location,
		PartySize:          resp.PartySize,
		Notes:              resp.Notes,
		CancellationReason: resp.CancellationReason,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
	if resp.CancelledAt != nil {
		cancelledAt := resp.CancelledAt.Format(time.RFC3339)
		result.CancelledAt = &cancelledAt
	}
	return result
}
