package unblock_manual_slots

import (
	"time"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
	unblockManualSlots "github.com/m04kA/PhotoMarket-BookingService/internal/usecase/unblock_manual_slots"
	"github.com/m04kA/PhotoMarket-BookingService/pkg/types"
)

// UnblockSlotsRequest HTTP request model
type UnblockSlotsRequest struct {
	Date          string `json:"date"`      // "2026-09-15"
	StartTime     string `json:"startTime"` // "10:00"
	DurationHours int    `json:"durationHours"`
}

// UnblockSlotsResponse HTTP response model
type UnblockSlotsResponse struct {
	ProviderID    int64  `json:"providerId"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	DurationHours int    `json:"durationHours"`
	ReleasedCount int64  `json:"releasedCount"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UnblockSlotsRequest) ToUseCaseRequest(providerID, userID int64) (*unblockManualSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &unblockManualSlots.Request{
		ProviderID:    providerID,
		UserID:        userID,
		StartAt:       date.Add(time.Duration(startTime.Minutes()) * time.Minute),
		DurationHours: r.DurationHours,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *unblockManualSlots.Response) *UnblockSlotsResponse {
	return &UnblockSlotsResponse{
		ProviderID:    resp.ProviderID,
		Date:          resp.StartAt.Format(domain.DateFormat),
		StartTime:     resp.StartAt.Format("15:04"),
		DurationHours: resp.DurationHours,
		ReleasedCount: resp.ReleasedCount,
	}
}
