package get_provider_config

import (
	"time"

	"github.com/m04kA/PhotoMarket-BookingService/internal/service/config/models"
)

// ScheduleConfigResponse HTTP response model
type ScheduleConfigResponse struct {
	ProviderID      int64   `json:"providerId"`
	OpenHour        int     `json:"openHour"`
	CloseHour       int     `json:"closeHour"`
	SearchDays      int     `json:"searchDays"`
	MaxAlternatives int     `json:"maxAlternatives"`
	DepositPercent  int     `json:"depositPercent"`
	IsDefault       bool    `json:"isDefault"`
	UpdatedAt       *string `json:"updatedAt,omitempty"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ScheduleConfigResponse) *ScheduleConfigResponse {
	result := &ScheduleConfigResponse{
		ProviderID:      resp.ProviderID,
		OpenHour:        resp.OpenHour,
		CloseHour:       resp.CloseHour,
		SearchDays:      resp.SearchDays,
		MaxAlternatives: resp.MaxAlternatives,
		DepositPercent:  resp.DepositPercent,
		IsDefault:       resp.IsDefault,
	}
	if resp.UpdatedAt != nil {
		updatedAt := resp.UpdatedAt.Format(time.RFC3339)
		result.UpdatedAt = &updatedAt
	}
	return result
}
