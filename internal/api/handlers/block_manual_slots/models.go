package block_manual_slots

import (
	"time"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
	blockManualSlots "github.com/m04kA/PhotoMarket-BookingService/internal/usecase/block_manual_slots"
	"github.com/m04kA/PhotoMarket-BookingService/pkg/types"
)

// BlockSlotsRequest HTTP request model
type BlockSlotsRequest struct {
	Date          string `json:"date"`      // "2026-09-15"
	StartTime     string `json:"startTime"` // "10:00"
	DurationHours int    `json:"durationHours"`
	Reason        string `json:"reason,omitempty"`
	ListingID     *int64 `json:"listingId,omitempty"`
}

// BlockSlotsResponse HTTP response model
type BlockSlotsResponse struct {
	ProviderID    int64  `json:"providerId"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	DurationHours int    `json:"durationHours"`
	BlockedCount  int    `json:"blockedCount"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BlockSlotsRequest) ToUseCaseRequest(providerID, userID int64) (*blockManualSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &blockManualSlots.Request{
		ProviderID:    providerID,
		UserID:        userID,
		StartAt:       date.Add(time.Duration(startTime.Minutes()) * time.Minute),
		DurationHours: r.DurationHours,
		Reason:        r.Reason,
		ListingID:     r.ListingID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *blockManualSlots.Response) *BlockSlotsResponse {
	return &BlockSlotsResponse{
		ProviderID:    resp.ProviderID,
		Date:          resp.StartAt.Format(domain.DateFormat),
		StartTime:     resp.StartAt.Format("15:04"),
		DurationHours: resp.DurationHours,
		BlockedCount:  resp.BlockedCount,
	}
}
