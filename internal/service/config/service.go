package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
	configRepo "github.com/m04kA/PhotoMarket-BookingService/internal/infra/storage/providerconfig"
	providerClient "github.com/m04kA/PhotoMarket-BookingService/internal/integrations/providerservice"
	"github.com/m04kA/PhotoMarket-BookingService/internal/service/config/models"
)

// Service сервис конфигурации расписания провайдера
type Service struct {
	configRepo     ConfigRepository
	providerClient ProviderServiceClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(
	configRepo ConfigRepository,
	providerClient ProviderServiceClient,
	logger Logger,
) *Service {
	return &Service{
		configRepo:     configRepo,
		providerClient: providerClient,
		logger:         logger,
	}
}

// Get получает конфигурацию расписания провайдера
// При отсутствии сохранённой конфигурации возвращает дефолтные значения
func (s *Service) Get(ctx context.Context, providerID int64) (*models.ScheduleConfigResponse, error) {
	s.logger.Info("Get: fetching schedule config for provider=%d", providerID)

	config, err := s.configRepo.GetByProviderID(ctx, providerID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Info("Get: no stored config for provider=%d, using defaults", providerID)
			return models.FromDomainConfig(domain.DefaultProviderScheduleConfig(providerID), true), nil
		}
		s.logger.Error("Get: repository error for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(config, false), nil
}

// Update создает или обновляет конфигурацию расписания провайдера
// Доступно только менеджерам провайдера
func (s *Service) Update(ctx context.Context, req *models.UpdateScheduleConfigRequest) (*models.ScheduleConfigResponse, error) {
	s.logger.Info("Update: updating schedule config for provider=%d by user=%d", req.ProviderID, req.UserID)

	if err := validateConfig(req); err != nil {
		s.logger.Warn("Update: validation failed for provider=%d: %v", req.ProviderID, err)
		return nil, err
	}

	provider, err := s.providerClient.GetProvider(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, providerClient.ErrProviderNotFound) {
			s.logger.Warn("Update: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		s.logger.Error("Update: failed to get provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	if !provider.IsManagedBy(req.UserID) {
		s.logger.Warn("Update: access denied for user=%d to provider=%d", req.UserID, req.ProviderID)
		return nil, ErrAccessDenied
	}

	updated, err := s.configRepo.Upsert(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Update: repository error for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: schedule config updated for provider=%d", req.ProviderID)
	return models.FromDomainConfig(updated, false), nil
}

// validateConfig проверяет бизнес-ограничения конфигурации
func validateConfig(req *models.UpdateScheduleConfigRequest) error {
	if req.OpenHour < domain.MinOpenHour || req.OpenHour >= domain.MaxCloseHour {
		return fmt.Errorf("%w: openHour must be in [%d, %d)", ErrInvalidConfig, domain.MinOpenHour, domain.MaxCloseHour)
	}
	if req.CloseHour <= req.OpenHour || req.CloseHour > domain.MaxCloseHour {
		return fmt.Errorf("%w: closeHour must be in (openHour, %d]", ErrInvalidConfig, domain.MaxCloseHour)
	}
	if req.SearchDays < domain.MinSearchDays || req.SearchDays > domain.MaxSearchDays {
		return fmt.Errorf("%w: searchDays must be in [%d, %d]", ErrInvalidConfig, domain.MinSearchDays, domain.MaxSearchDays)
	}
	if req.MaxAlternatives < domain.MinMaxAlternatives || req.MaxAlternatives > domain.MaxMaxAlternatives {
		return fmt.Errorf("%w: maxAlternatives must be in [%d, %d]", ErrInvalidConfig, domain.MinMaxAlternatives, domain.MaxMaxAlternatives)
	}
	if req.DepositPercent < domain.MinDepositPercent || req.DepositPercent > domain.MaxDepositPercent {
		return fmt.Errorf("%w: depositPercent must be in [%d, %d]", ErrInvalidConfig, domain.MinDepositPercent, domain.MaxDepositPercent)
	}
	return nil
}
