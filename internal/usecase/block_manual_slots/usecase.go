package block_manual_slots

import (
	"context"
	"errors"
	"fmt"

	blockedslotRepo "github.com/m04kA/PhotoMarket-BookingService/internal/infra/storage/blockedslot"
	providerClient "github.com/m04kA/PhotoMarket-BookingService/internal/integrations/providerservice"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
)

// Usecase ручная блокировка часов в календаре провайдера
type Usecase struct {
	checker        AvailabilityChecker
	ledger         LedgerWriter
	providerClient ProviderServiceClient
	txManager      TxManager
	logger         Logger
}

// NewUsecase создает новый экземпляр usecase ручной блокировки
func NewUsecase(
	checker AvailabilityChecker,
	ledger LedgerWriter,
	providerClient ProviderServiceClient,
	txManager TxManager,
	logger Logger,
) *Usecase {
	return &Usecase{
		checker:        checker,
		ledger:         ledger,
		providerClient: providerClient,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute блокирует часы в календаре провайдера без бронирования
//
// Сценарий:
// 1. Валидация запроса
// 2. Проверка провайдера и прав менеджера
// 3. SERIALIZABLE транзакция: проверка конфликтов + вставка слотов
//
// Блокировка и проверка идут в одной транзакции: нарушение уникального
// индекса (provider_id, slot_at) тоже маппится в конфликт
func (u *Usecase) Execute(ctx context.Context, req *Request) (*Response, error) {
	u.logger.Info("Execute: blocking %d slots for provider=%d from %s by user=%d",
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

	// 3. Транзакция: проверка конфликтов + вставка
	candidate := domain.NewInterval(req.StartAt, req.DurationHours)

	err = u.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		conflict, err := u.checker.HasConflict(txCtx, req.ProviderID, candidate, nil)
		if err != nil {
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}
		if conflict {
			return ErrSlotConflict
		}

		if err := u.ledger.OnManualBlock(txCtx, req.ProviderID, req.StartAt, req.DurationHours, req.Reason, req.ListingID); err != nil {
			if errors.Is(err, blockedslotRepo.ErrSlotTaken) {
				return ErrSlotConflict
			}
			return fmt.Errorf("%w: failed to block slots: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotConflict) {
			u.logger.Info("Execute: slot conflict while blocking for provider=%d from %s",
				req.ProviderID, req.StartAt.Format(domain.TimeFormat))
			return nil, ErrSlotConflict
		}
		u.logger.Error("Execute: transaction failed for provider=%d: %v", req.ProviderID, err)
		return nil, err
	}

	u.logger.Info("Execute: blocked %d slots for provider=%d from %s",
		req.DurationHours, req.ProviderID, req.StartAt.Format(domain.TimeFormat))

	return &Response{
		ProviderID:    req.ProviderID,
		StartAt:       req.StartAt,
		DurationHours: req.DurationHours,
		BlockedCount:  req.DurationHours,
	}, nil
}
