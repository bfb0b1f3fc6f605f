package unblock_manual_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
	providerClient "github.com/m04kA/PhotoMarket-BookingService/internal/integrations/providerservice"
)

// Usecase снятие ручных блокировок в календаре провайдера
// Слоты, производные от бронирований, этим сценарием не снимаются -
// для них есть отмена бронирования
type Usecase struct {
	ledger         LedgerWriter
	providerClient ProviderServiceClient
	logger         Logger
}

// NewUsecase создает новый экземпляр usecase снятия блокировок
func NewUsecase(
	ledger LedgerWriter,
	providerClient ProviderServiceClient,
	logger Logger,
) *Usecase {
	return &Usecase{
		ledger:         ledger,
		providerClient: providerClient,
		logger:         logger,
	}
}

// Execute снимает ручные блокировки в окне [StartAt, StartAt+DurationHours)
//
// Сценарий:
// 1. Валидация запроса
// 2. Проверка провайдера и прав менеджера
// 3. Удаление ручных блокировок в окне
func (u *Usecase) Execute(ctx context.Context, req *Request) (*Response, error) {
	u.logger.Info("Execute: unblocking %d slots for provider=%d from %s by user=%d",
		req.DurationHours, req.ProviderID, req.StartAt.Format(domain.TimeFormat), req.UserID)

	// 1. Валидация запроса
	if err := validateRequest(req); err != nil {
		u.logger.Warn("Execute: validation failed for provider=%d: %v", req.ProviderID, err)
		return nil, err
	}

	// 2. Проверка провайдера и прав менеджера
	provider, err := u.providerClient.GetProvider(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, providerClient.ErrProviderNotFound) {
			u.logger.Warn("Execute: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		u.logger.Error("Execute: failed to get provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	if !provider.IsManagedBy(req.UserID) {
		u.logger.Warn("Execute: access denied for user=%d to provider=%d", req.UserID, req.ProviderID)
		return nil, ErrAccessDenied
	}

	// 3. Удаление ручных блокировок
	released, err := u.ledger.OnManualUnblock(ctx, req.ProviderID, req.StartAt, req.DurationHours)
	if err != nil {
		u.logger.Error("Execute: failed to unblock slots for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to unblock slots: %v", ErrInternal, err)
	}

	u.logger.Info("Execute: released %d slots for provider=%d from %s",
		released, req.ProviderID, req.StartAt.Format(domain.TimeFormat))

	return &Response{
		ProviderID:    req.ProviderID,
		StartAt:       req.StartAt,
		DurationHours: req.DurationHours,
		ReleasedCount: released,
	}, nil
}
