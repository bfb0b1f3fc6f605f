package models

import (
	"time"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
)

// ScheduleConfigResponse модель конфигурации расписания провайдера
type ScheduleConfigResponse struct {
	ProviderID      int64
	OpenHour        int
	CloseHour       int
	SearchDays      int
	MaxAlternatives int
	DepositPercent  int
	IsDefault       bool // true, если провайдер ещё не сохранял свою конфигурацию
	UpdatedAt       *time.Time
}

// UpdateScheduleConfigRequest запрос обновления конфигурации
type UpdateScheduleConfigRequest struct {
	ProviderID      int64
	UserID          int64 // Аутентифицированный пользователь (менеджер)
	OpenHour        int
	CloseHour       int
	SearchDays      int
	MaxAlternatives int
	DepositPercent  int
}

// ToDomain конвертирует запрос в domain модель
func (r *UpdateScheduleConfigRequest) ToDomain() *domain.ProviderScheduleConfig {
	return &domain.ProviderScheduleConfig{
		ProviderID:      r.ProviderID,
		OpenHour:        r.OpenHour,
		CloseHour:       r.CloseHour,
		SearchDays:      r.SearchDays,
		MaxAlternatives: r.MaxAlternatives,
		DepositPercent:  r.DepositPercent,
	}
}

// FromDomainConfig конвертирует domain конфигурацию в response модель
func FromDomainConfig(config *domain.ProviderScheduleConfig, isDefault bool) *ScheduleConfigResponse {
	resp := &ScheduleConfigResponse{
		ProviderID:      config.ProviderID,
		OpenHour:        config.OpenHour,
		CloseHour:       config.CloseHour,
		SearchDays:      config.SearchDays,
		MaxAlternatives: config.MaxAlternatives,
		DepositPercent:  config.DepositPercent,
		IsDefault:       isDefault,
	}
	if !isDefault {
		updatedAt := config.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
