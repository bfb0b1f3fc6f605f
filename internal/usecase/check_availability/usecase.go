package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
	configRepo "github.com/m04kA/PhotoMarket-BookingService/internal/infra/storage/providerconfig"
	providerClient "github.com/m04kA/PhotoMarket-BookingService/internal/integrations/providerservice"
	"github.com/m04kA/PhotoMarket-BookingService/internal/service/availability"
)

// Usecase проверка доступности слота с подбором альтернатив
type Usecase struct {
	checker        AvailabilityChecker
	configRepo     ConfigRepository
	providerClient ProviderServiceClient
	logger         Logger
}

// NewUsecase создает новый экземпляр usecase проверки доступности
func NewUsecase(
	checker AvailabilityChecker,
	configRepo ConfigRepository,
	providerClient ProviderServiceClient,
	logger Logger,
) *Usecase {
	return &Usecase{
		checker:        checker,
		configRepo:     configRepo,
		providerClient: providerClient,
		logger:         logger,
	}
}

// Execute проверяет доступность слота у провайдера
//
// Сценарий:
// 1. Валидация запроса
// 2. Проверка существования провайдера
// 3. Нормализация длительности по тарифу листинга (без листинга - почасовой ввод)
// 4. Загрузка конфигурации расписания (дефолты, если провайдер её не сохранял)
// 5. Проверка конфликтов
// 6. Если занято - подбор альтернативных слотов
func (u *Usecase) Execute(ctx context.Context, req *Request) (*Response, error) {
	u.logger.Info("Execute: checking availability for provider=%d, startAt=%s, rawDuration=%d",
		req.ProviderID, req.StartAt.Format(domain.TimeFormat), req.DurationHours)

	// 1. Валидация запроса
	if err := validateRequest(req); err != nil {
		u.logger.Warn("Execute: validation failed for provider=%d: %v", req.ProviderID, err)
		return nil, err
	}

	// 2. Проверка существования провайдера
	if _, err := u.providerClient.GetProvider(ctx, req.ProviderID); err != nil {
		if errors.Is(err, providerClient.ErrProviderNotFound) {
			u.logger.Warn("Execute: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		u.logger.Error("Execute: failed to get provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	// 3. Нормализация длительности
	durationHours, err := u.resolveDuration(ctx, req)
	if err != nil {
		return nil, err
	}

	// 4. Загрузка конфигурации расписания
	config, err := u.loadConfig(ctx, req.ProviderID)
	if err != nil {
		return nil, err
	}

	// 5. Проверка конфликтов
	candidate := domain.NewInterval(req.StartAt, durationHours)

	conflict, err := u.checker.HasConflict(ctx, req.ProviderID, candidate, nil)
	if err != nil {
		u.logger.Error("Execute: conflict check failed for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
	}

	resp := &Response{
		ProviderID:    req.ProviderID,
		StartAt:       req.StartAt,
		DurationHours: durationHours,
		Available:     !conflict,
	}

	if !conflict {
		u.logger.Info("Execute: slot is available for provider=%d, startAt=%s, duration=%dh",
			req.ProviderID, req.StartAt.Format(domain.TimeFormat), durationHours)
		return resp, nil
	}

	// 6. Подбор альтернативных слотов
	suggestions, err := u.checker.FindAlternatives(
		ctx,
		req.ProviderID,
		req.StartAt,
		durationHours,
		availability.SearchOptionsFromConfig(config),
		nil,
	)
	if err != nil {
		u.logger.Error("Execute: alternatives search failed for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: alternatives search failed: %v", ErrInternal, err)
	}

	resp.Alternatives = toAlternatives(suggestions)

	u.logger.Info("Execute: slot is busy for provider=%d, startAt=%s, offered %d alternatives",
		req.ProviderID, req.StartAt.Format(domain.TimeFormat), len(resp.Alternatives))

	return resp, nil
}

// resolveDuration нормализует длительность по тарифу листинга
// Без листинга запрос трактуется как почасовой: длительность обязана быть положительной
func (u *Usecase) resolveDuration(ctx context.Context, req *Request) (int, error) {
	if req.ListingID == nil {
		duration, err := domain.NormalizeDuration(domain.TariffHour, req.DurationHours, 0)
		if err != nil {
			u.logger.Warn("Execute: invalid duration=%d for provider=%d without listing", req.DurationHours, req.ProviderID)
			return 0, err
		}
		return duration, nil
	}

	listing, err := u.providerClient.GetListing(ctx, req.ProviderID, *req.ListingID)
	if err != nil {
		if errors.Is(err, providerClient.ErrListingNotFound) {
			u.logger.Warn("Execute: listing id=%d not found for provider=%d", *req.ListingID, req.ProviderID)
			return 0, ErrListingNotFound
		}
		u.logger.Error("Execute: failed to get listing id=%d: %v", *req.ListingID, err)
		return 0, fmt.Errorf("%w: failed to get listing: %v", ErrInternal, err)
	}

	duration, err := domain.NormalizeDuration(domain.TariffUnit(listing.TariffUnit), req.DurationHours, listing.UnitHours)
	if err != nil {
		u.logger.Warn("Execute: duration normalization failed for listing=%d (unit=%s, raw=%d): %v",
			*req.ListingID, listing.TariffUnit, req.DurationHours, err)
		return 0, err
	}

	return duration, nil
}

// loadConfig возвращает конфигурацию расписания провайдера или дефолты
func (u *Usecase) loadConfig(ctx context.Context, providerID int64) (*domain.ProviderScheduleConfig, error) {
	config, err := u.configRepo.GetByProviderID(ctx, providerID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			return domain.DefaultProviderScheduleConfig(providerID), nil
		}
		u.logger.Error("Execute: failed to load schedule config for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: failed to load schedule config: %v", ErrInternal, err)
	}
	return config, nil
}

// toAlternatives конвертирует предложения сервиса в response модель
func toAlternatives(suggestions []domain.SlotSuggestion) []Alternative {
	alternatives := make([]Alternative, 0, len(suggestions))
	for _, s := range suggestions {
		alternatives = append(alternatives, Alternative{
			Date:      s.Date,
			StartHour: s.StartHour,
		})
	}
	return alternatives
}
