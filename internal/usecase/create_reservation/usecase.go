package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
	configRepo "github.com/m04kA/PhotoMarket-BookingService/internal/infra/storage/providerconfig"
	identityClient "github.com/m04kA/PhotoMarket-BookingService/internal/integrations/identityservice"
	"github.com/m04kA/PhotoMarket-BookingService/internal/integrations/notifyservice"
	providerClient "github.com/m04kA/PhotoMarket-BookingService/internal/integrations/providerservice"
	"github.com/m04kA/PhotoMarket-BookingService/internal/service/availability"
)

// Usecase создание бронирования
//
// Запись бронирования и проверка конфликтов идут в одной SERIALIZABLE
// транзакции, поэтому два конкурентных запроса на один слот не могут пройти
// оба: проигравший получает конфликт сериализации или нарушение уникального
// индекса леджера. Леджер и уведомления пишутся уже после коммита - их отказ
// бронирование не откатывает
type Usecase struct {
	reservationRepo ReservationRepository
	configRepo      ConfigRepository
	checker         AvailabilityChecker
	ledger          LedgerWriter
	providerClient  ProviderServiceClient
	identityClient  IdentityServiceClient
	notifyClient    NotifyServiceClient
	txManager       TxManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUsecase создает новый экземпляр usecase создания бронирования
func NewUsecase(
	reservationRepo ReservationRepository,
	configRepo ConfigRepository,
	checker AvailabilityChecker,
	ledger LedgerWriter,
	providerClient ProviderServiceClient,
	identityClient IdentityServiceClient,
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
		identityClient:  identityClient,
		notifyClient:    notifyClient,
		txManager:       txManager,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute создает бронирование слота у провайдера
//
// Сценарий:
// 1. Валидация запроса
// 2. Проверка провайдера и листинга в каталоге
// 3. Нормализация длительности по тарифу
// 4. Обогащение контактами из IdentityService (graceful degradation)
// 5. Расчет суммы и предоплаты; при нулевой предоплате статус сразу confirmed
// 6. SERIALIZABLE транзакция: проверка конфликтов + запись бронирования
// 7. Разворачивание бронирования в леджер слотов (вне транзакции)
// 8. Уведомление NotifyService (fire-and-forget)
//
// При занятом слоте возвращается ErrSlotConflict вместе с Response,
// содержащим альтернативные слоты
func (u *Usecase) Execute(ctx context.Context, req *Request) (*Response, error) {
	u.logger.Info("Execute: creating reservation for client=%d, provider=%d, startAt=%s",
		req.ClientID, req.ProviderID, req.StartAt.Format(domain.TimeFormat))

	// 1. Валидация запроса
	if err := validateRequest(req, u.timeProvider.Now()); err != nil {
		u.logger.Warn("Execute: validation failed for client=%d: %v", req.ClientID, err)
		return nil, err
	}

	// 2. Проверка провайдера и листинга
	if _, err := u.providerClient.GetProvider(ctx, req.ProviderID); err != nil {
		if errors.Is(err, providerClient.ErrProviderNotFound) {
			u.logger.Warn("Execute: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		u.logger.Error("Execute: failed to get provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	var listing *providerClient.Listing
	if req.ListingID != nil {
		var err error
		listing, err = u.providerClient.GetListing(ctx, req.ProviderID, *req.ListingID)
		if err != nil {
			if errors.Is(err, providerClient.ErrListingNotFound) {
				u.logger.Warn("Execute: listing id=%d not found for provider=%d", *req.ListingID, req.ProviderID)
				return nil, ErrListingNotFound
			}
			u.logger.Error("Execute: failed to get listing id=%d: %v", *req.ListingID, err)
			return nil, fmt.Errorf("%w: failed to get listing: %v", ErrInternal, err)
		}
	}

	// 3. Нормализация длительности
	durationHours, err := u.resolveDuration(req, listing)
	if err != nil {
		return nil, err
	}

	// 4. Обогащение контактами клиента
	clientEmail, clientPhone := u.resolveContacts(ctx, req)

	// 5. Расчет суммы и предоплаты
	amount, err := u.resolveAmount(req, listing, durationHours)
	if err != nil {
		return nil, err
	}

	depositPercent := u.resolveDepositPercent(ctx, req.ProviderID, listing)
	depositAmount := math.Round(amount * float64(depositPercent) / 100)

	status := domain.StatusPending
	if depositAmount == 0 {
		// Нечего оплачивать - подтверждаем сразу
		status = domain.StatusConfirmed
	}

	candidate := &domain.Reservation{
		Reference:     uuid.NewString(),
		ProviderID:    req.ProviderID,
		ListingID:     req.ListingID,
		ClientID:      req.ClientID,
		StartAt:       req.StartAt,
		DurationHours: durationHours,
		Status:        status,
		Amount:        amount,
		DepositAmount: depositAmount,
		QuoteAmount:   req.QuoteAmount,
		ClientName:    req.ClientName,
		ClientEmail:   clientEmail,
		ClientPhone:   clientPhone,
		Location:      req.Location,
		PartySize:     req.PartySize,
		Notes:         req.Notes,
	}

	// 6. Транзакция: проверка конфликтов + запись
	var created *domain.Reservation

	err = u.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		conflict, err := u.checker.HasConflict(txCtx, req.ProviderID, candidate.Interval(), nil)
		if err != nil {
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}
		if conflict {
			return ErrSlotConflict
		}

		created, err = u.reservationRepo.Create(txCtx, candidate)
		if err != nil {
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotConflict) {
			return u.conflictResponse(ctx, req, durationHours)
		}
		u.logger.Error("Execute: transaction failed for client=%d, provider=%d: %v", req.ClientID, req.ProviderID, err)
		return nil, err
	}

	// 7. Леджер слотов. Рассинхронизация не откатывает бронирование:
	// следующее подтверждение или отмена выверят леджер заново
	if err := u.ledger.OnReservationConfirmed(ctx, created); err != nil {
		u.logger.Warn("Execute: ledger desync for reservation id=%d: %v", created.ID, err)
	}

	// 8. Уведомление
	u.notify(ctx, notifyservice.EventReservationCreated, created)

	u.logger.Info("Execute: reservation id=%d (ref=%s) created for client=%d, provider=%d, status=%s",
		created.ID, created.Reference, created.ClientID, created.ProviderID, created.Status)

	return fromDomain(created), nil
}

// resolveDuration нормализует длительность по тарифу листинга
// Без листинга запрос трактуется как почасовой
func (u *Usecase) resolveDuration(req *Request, listing *providerClient.Listing) (int, error) {
	if listing == nil {
		duration, err := domain.NormalizeDuration(domain.TariffHour, req.DurationHours, 0)
		if err != nil {
			u.logger.Warn("Execute: invalid duration=%d for direct reservation (client=%d)", req.DurationHours, req.ClientID)
			return 0, err
		}
		return duration, nil
	}

	duration, err := domain.NormalizeDuration(domain.TariffUnit(listing.TariffUnit), req.DurationHours, listing.UnitHours)
	if err != nil {
		u.logger.Warn("Execute: duration normalization failed for listing=%d (unit=%s, raw=%d): %v",
			listing.ID, listing.TariffUnit, req.DurationHours, err)
		return 0, err
	}
	return duration, nil
}

// resolveContacts возвращает email и телефон клиента
// Профиль из IdentityService имеет приоритет; при недоступности сервиса
// бронирование создается с контактами из тела запроса
func (u *Usecase) resolveContacts(ctx context.Context, req *Request) (*string, *string) {
	user, err := u.identityClient.GetUserWithGracefulDegradation(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, identityClient.ErrServiceDegraded) {
			u.logger.Warn("Execute: identity degraded, using request contacts for client=%d", req.ClientID)
		}
		return req.ClientEmail, req.ClientPhone
	}

	email := req.ClientEmail
	if user.Email != nil {
		email = user.Email
	}
	phone := req.ClientPhone
	if user.Phone != nil {
		phone = user.Phone
	}
	return email, phone
}

// resolveAmount считает полную сумму бронирования
// Согласованная цена по заявке перекрывает тариф листинга
func (u *Usecase) resolveAmount(req *Request, listing *providerClient.Listing, durationHours int) (float64, error) {
	if req.QuoteAmount != nil {
		return *req.QuoteAmount, nil
	}

	if listing == nil || !listing.HasFixedPricing() {
		u.logger.Warn("Execute: price unresolved for client=%d, provider=%d (no quote, no fixed tariff)",
			req.ClientID, req.ProviderID)
		return 0, ErrPriceUnresolved
	}

	// Почасовой тариф умножается на длительность, остальные единицы - цена за штуку
	if domain.TariffUnit(listing.TariffUnit) == domain.TariffHour {
		return *listing.UnitPrice * float64(durationHours), nil
	}
	return *listing.UnitPrice, nil
}

// resolveDepositPercent возвращает процент предоплаты
// Приоритет: листинг -> конфигурация провайдера -> дефолт
func (u *Usecase) resolveDepositPercent(ctx context.Context, providerID int64, listing *providerClient.Listing) int {
	if listing != nil && listing.DepositPercent != nil {
		return *listing.DepositPercent
	}

	config, err := u.configRepo.GetByProviderID(ctx, providerID)
	if err != nil {
		if !errors.Is(err, configRepo.ErrConfigNotFound) {
			u.logger.Warn("Execute: failed to load schedule config for provider=%d, using default deposit: %v", providerID, err)
		}
		return domain.DefaultDepositPercent
	}
	return config.DepositPercent
}

// conflictResponse собирает ответ 409 с альтернативными слотами
// Подбор альтернатив best-effort: его отказ не прячет сам конфликт
func (u *Usecase) conflictResponse(ctx context.Context, req *Request, durationHours int) (*Response, error) {
	resp := &Response{
		ProviderID:    req.ProviderID,
		StartAt:       req.StartAt,
		DurationHours: durationHours,
	}

	config, err := u.configRepo.GetByProviderID(ctx, req.ProviderID)
	if err != nil {
		config = domain.DefaultProviderScheduleConfig(req.ProviderID)
	}

	suggestions, err := u.checker.FindAlternatives(
		ctx,
		req.ProviderID,
		req.StartAt,
		durationHours,
		availability.SearchOptionsFromConfig(config),
		nil,
	)
	if err != nil {
		u.logger.Warn("Execute: alternatives search failed for provider=%d: %v", req.ProviderID, err)
	} else {
		resp.Alternatives = toAlternatives(suggestions)
	}

	u.logger.Info("Execute: slot conflict for client=%d, provider=%d, startAt=%s, offered %d alternatives",
		req.ClientID, req.ProviderID, req.StartAt.Format(domain.TimeFormat), len(resp.Alternatives))

	return resp, ErrSlotConflict
}

// notify отправляет событие в NotifyService
// Отказ уведомления не влияет на результат бронирования
func (u *Usecase) notify(ctx context.Context, eventType string, res *domain.Reservation) {
	event := &notifyservice.ReservationEvent{
		Type:          eventType,
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
