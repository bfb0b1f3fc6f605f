package update_provider_config

import (
	"time"

	"github.com/m04kA/PhotoMarket-BookingService/internal/service/config/models"
)

// UpdateScheduleConfigRequest HTTP request model
type UpdateScheduleConfigRequest struct {
	OpenHour        int `json:"openHour"`
	CloseHour       int `json:"closeHour"`
	SearchDays      int `json:"searchDays"`
	MaxAlternatives int `json:"maxAlternatives"`
	DepositPercent  int `json:"depositPercent"`
}

// ScheduleConfigResponse HTTP response model
type ScheduleConfigResponse struct {
	ProviderID      int64   `json:"providerId"`
	OpenHour        int     `json:"openHour"`
	CloseHour       int     `json:"closeHour"`
	SearchDays      int     `json:"searchDays"`
	MaxAlternatives int     `json:"maxAlternatives"`
	DepositPercent  int     `json:"depositPercent"`
	UpdatedAt       *string `json:"updatedAt,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateScheduleConfigRequest) ToServiceRequest(providerID, userID int64) *models.UpdateScheduleConfigRequest {
	return &models.UpdateScheduleConfigRequest{
		ProviderID:      providerID,
		UserID:          userID,
		OpenHour:        r.OpenHour,
		CloseHour:       r.CloseHour,
		SearchDays:      r.SearchDays,
		MaxAlternatives: r.MaxAlternatives,
		DepositPercent:  r.DepositPercent,
	}
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
	}
	if resp.UpdatedAt != nil {
		updatedAt := resp.UpdatedAt.Format(time.RFC3339)
		result.UpdatedAt = &updatedAt
	}
	return result
}
