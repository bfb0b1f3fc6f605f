package reschedule_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
	reservationRepo "github.com/m04kA/PhotoMarket-BookingService/internal/infra/storage/reservation"
	"github.com/m04kA/PhotoMarket-BookingService/internal/integrations/notifyservice"
	providerClient "github.com/m04kA/PhotoMarket-BookingService/internal/integrations/providerservice"
	"github.com/m04kA/PhotoMarket-BookingService/internal/service/availability"
)

// Usecase перенос бронирования на другой слот
type Usecase struct {
	reservationRepo ReservationRepository
	configRepo      ConfigRepository
	checker         AvailabilityChecker
	ledger          LedgerWriter
	providerClient  ProviderServiceClient
	notifyClient    NotifyServiceClient
	txManager       TxManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUsecase создает новый экземпляр usecase переноса бронирования
func NewUsecase(
	reservationRepo ReservationRepository,
	configRepo ConfigRepository,
	checker AvailabilityChecker,
	ledger LedgerWriter,
	providerClient ProviderServiceClient,
	notifyClient NotifyServiceClient,
	txManager TxManager,
	timeProvider TimeProvider,
	logger Logger,
) *Usecase {
	return &Usecase{
		reservationRepo: reservationRepo,
		configRepo:      configRepo,
		checker:         checker,
		ledger:          ledger,
		providerClient:  providerClient,
		notifyClient:    notifyClient,
		txManager:       txManager,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute переносит бронирование на новый слот
//
// Сценарий:
// 1. Валидация запроса
// 2. Загрузка бронирования и проверка доступа (клиент или менеджер провайдера)
// 3. Проверка, что бронирование не отменено
// 4. SERIALIZABLE транзакция: проверка конфликтов с исключением собственной
//    записи + обновление расписания
// 5. Перезапись леджера слотов (вне транзакции)
// 6. Уведомление NotifyService
//
// При занятом слоте возвращается ErrSlotConflict вместе с Response,
// содержащим альтернативы, подобранные с тем же исключением
func (u *Usecase) Execute(ctx context.Context, req *Request) (*Response, error) {
	u.logger.Info("Execute: rescheduling reservation id=%d by user=%d to %s",
		req.ReservationID, req.UserID, req.StartAt.Format(domain.TimeFormat))

	// 1. Валидация запроса
	if err := validateRequest(req, u.timeProvider.Now()); err != nil {
		u.logger.Warn("Execute: validation failed for reservation id=%d: %v", req.ReservationID, err)
		return nil, err
	}

	// 2. Загрузка бронирования и проверка доступа
	res, err := u.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			u.logger.Warn("Execute: reservation id=%d not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		u.logger.Error("Execute: failed to get reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	if err := u.checkAccess(ctx, res, req.UserID); err != nil {
		return nil, err
	}

	// 3. Отмененное бронирование не переносится
	if !res.CanBeRescheduled() {
		u.logger.Warn("Execute: reservation id=%d in status=%s cannot be rescheduled", res.ID, res.Status)
		return nil, ErrCannotReschedule
	}

	durationHours := req.DurationHours
	if durationHours == 0 {
		durationHours = res.EffectiveDurationHours()
	}

	// 4. Транзакция: проверка конфликтов + обновление
	// Собственная запись и производные от нее слоты исключаются из проверки,
	// иначе перенос внутри собственного интервала всегда конфликтовал бы
	candidate := domain.NewInterval(req.StartAt, durationHours)
	excludeID := res.ID

	err = u.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		conflict, err := u.checker.HasConflict(txCtx, res.ProviderID, candidate, &excludeID)
		if err != nil {
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}
		if conflict {
			return ErrSlotConflict
		}

		if err := u.reservationRepo.UpdateSchedule(txCtx, res.ID, req.StartAt, durationHours); err != nil {
			return fmt.Errorf("%w: failed to update schedule: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotConflict) {
			return u.conflictResponse(ctx, res, req.StartAt, durationHours, &excludeID)
		}
		u.logger.Error("Execute: transaction failed for reservation id=%d: %v", res.ID, err)
		return nil, err
	}

	res.StartAt = req.StartAt
	res.DurationHours = durationHours
	res.UpdatedAt = u.timeProvider.Now()

	// 5. Перезапись леджера. Рассинхронизация не откатывает перенос
	if err := u.ledger.OnReservationConfirmed(ctx, res); err != nil {
		u.logger.Warn("Execute: ledger desync for reservation id=%d: %v", res.ID, err)
	}

	// 6. Уведомление
	u.notify(ctx, res)

	u.logger.Info("Execute: reservation id=%d rescheduled to %s (%dh)",
		res.ID, res.StartAt.Format(domain.TimeFormat), durationHours)

	return fromDomain(res), nil
}

// checkAccess проверяет, что пользователь - клиент бронирования или менеджер провайдера
func (u *Usecase) checkAccess(ctx context.Context, res *domain.Reservation, userID int64) error {
	if res.ClientID == userID {
		return nil
	}

	provider, err := u.providerClient.GetProvider(ctx, res.ProviderID)
	if err != nil {
		if errors.Is(err, providerClient.ErrProviderNotFound) {
			u.logger.Warn("Execute: provider id=%d not found for reservation id=%d", res.ProviderID, res.ID)
			return ErrAccessDenied
		}
		u.logger.Error("Execute: failed to get provider id=%d: %v", res.ProviderID, err)
		return fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	if !provider.IsManagedBy(userID) {
		u.logger.Warn("Execute: access denied for user=%d to reservation id=%d", userID, res.ID)
		return ErrAccessDenied
	}

	return nil
}

// conflictResponse собирает ответ 409 с альтернативами
// Поиск идет с исключением переносимого бронирования, чтобы его текущие
// часы тоже предлагались как свободные
func (u *Usecase) conflictResponse(
	ctx context.Context,
	res *domain.Reservation,
	startAt time.Time,
	durationHours int,
	excludeID *int64,
) (*Response, error) {
	resp := &Response{
		ProviderID:    res.ProviderID,
		StartAt:       startAt,
		DurationHours: durationHours,
	}

	config, err := u.configRepo.GetByProviderID(ctx, res.ProviderID)
	if err != nil {
		config = domain.DefaultProviderScheduleConfig(res.ProviderID)
	}

	suggestions, err := u.checker.FindAlternatives(
		ctx,
		res.ProviderID,
		startAt,
		durationHours,
		availability.SearchOptionsFromConfig(config),
		excludeID,
	)
	if err != nil {
		u.logger.Warn("Execute: alternatives search failed for provider=%d: %v", res.ProviderID, err)
	} else {
		resp.Alternatives = toAlternatives(suggestions)
	}

	u.logger.Info("Execute: slot conflict while rescheduling reservation id=%d to %s, offered %d alternatives",
		res.ID, startAt.Format(domain.TimeFormat), len(resp.Alternatives))

	return resp, ErrSlotConflict
}

// notify отправляет событие переноса в NotifyService
func (u *Usecase) notify(ctx context.Context, res *domain.Reservation) {
	event := &notifyservice.ReservationEvent{
		Type:          notifyservice.EventReservationRescheduled,
		ReservationID: res.ID,
		Reference:     res.Reference,
		ProviderID:    res.ProviderID,
		ClientID:      res.ClientID,
		StartAt:       res.StartAt,
		DurationHours: res.DurationHours,
		Status:        string(res.Status),
		OccurredAt:    u.timeProvider.Now(),
	}

	if err := u.notifyClient.PostReservationEvent(ctx, event); err != nil {
		u.logger.Warn("Execute: failed to notify about reservation id=%d: %v", res.ID, err)
	}
}
