package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
	reservationRepo "github.com/m04kA/PhotoMarket-BookingService/internal/infra/storage/reservation"
	"github.com/m04kA/PhotoMarket-BookingService/internal/integrations/notifyservice"
	providerClient "github.com/m04kA/PhotoMarket-BookingService/internal/integrations/providerservice"
	"github.com/m04kA/PhotoMarket-BookingService/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями
// Покрывает чтение, отмену и подтверждение оплаты; создание и перенос живут
// в отдельных usecases, так как требуют проверки конфликтов в транзакции
type Service struct {
	reservationRepo ReservationRepository
	ledger          LedgerWriter
	providerClient  ProviderServiceClient
	notifyClient    NotifyServiceClient
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	ledger LedgerWriter,
	providerClient ProviderServiceClient,
	notifyClient NotifyServiceClient,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		ledger:          ledger,
		providerClient:  providerClient,
		notifyClient:    notifyClient,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только своё бронирование или бронирования провайдера,
// которым он управляет
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, userID)

	res, err := s.getReservation(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	if err := s.checkUserAccess(ctx, res, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", userID, id)
		return nil, err
	}

	return models.FromDomainReservation(res), nil
}

// GetClientReservations получает историю бронирований клиента
// Опционально фильтрует по статусу
func (s *Service) GetClientReservations(ctx context.Context, req *models.GetClientReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetClientReservations: fetching reservations for client=%d, status=%v", req.ClientID, req.Status)

	// Клиент видит только свою историю
	if req.ClientID != req.UserID {
		s.logger.Warn("GetClientReservations: user=%d requested history of client=%d", req.UserID, req.ClientID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.ReservationStatus
	if req.Status != nil {
		status, err := models.ToDomainReservationStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetClientReservations: invalid status=%s for client=%d", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	reservations, err := s.reservationRepo.GetByClientID(ctx, req.ClientID, domainStatus)
	if err != nil {
		s.logger.Error("GetClientReservations: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientReservations: fetched %d reservations for client=%d", len(reservations), req.ClientID)
	return models.FromDomainReservationList(reservations), nil
}

// GetProviderReservations получает бронирования провайдера с фильтрацией
// Доступно только менеджерам провайдера
func (s *Service) GetProviderReservations(ctx context.Context, req *models.GetProviderReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetProviderReservations: fetching reservations for provider=%d, user=%d", req.ProviderID, req.UserID)

	if err := s.checkManagerAccess(ctx, req.ProviderID, req.UserID); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetProviderReservations: invalid filter for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetByProviderWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetProviderReservations: repository error for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: GetProviderReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetProviderReservations: fetched %d reservations for provider=%d", len(reservations), req.ProviderID)
	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет бронирование
// Отмена - это перевод статуса, запись остаётся в истории. Слоты леджера
// снимаются сразу; ошибка леджера не откатывает отмену, а логируется как
// рассинхронизация (следующая операция по бронированию её выверит)
func (s *Service) Cancel(ctx context.Context, reservationID int64, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%d", reservationID, req.UserID)

	res, err := s.getReservation(ctx, reservationID, "Cancel")
	if err != nil {
		return err
	}

	if !res.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", reservationID, res.Status)
		return ErrCannotCancel
	}

	// Отменить может клиент-владелец или менеджер провайдера
	if res.ClientID != req.UserID {
		if err := s.checkManagerAccess(ctx, res.ProviderID, req.UserID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to cancel reservation id=%d", req.UserID, reservationID)
			return ErrAccessDenied
		}
	}

	if err := s.reservationRepo.Cancel(ctx, reservationID, req.CancellationReason); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	res.Status = domain.StatusCancelled

	// Бронирование уже отменено - рассинхронизация леджера не отменяет отмену
	if err := s.ledger.OnReservationCancelled(ctx, res); err != nil {
		s.logger.Warn("Cancel: ledger desync for reservation id=%d: %v", reservationID, err)
	}

	s.notify(ctx, res, notifyservice.EventReservationCancelled)

	s.logger.Info("Cancel: reservation id=%d cancelled by user=%d", reservationID, req.UserID)
	return nil
}

// Confirm переводит бронирование pending -> confirmed
// Вызывается после подтверждения оплаты внешним платёжным сервисом
// Повторный вызов для уже подтверждённого бронирования безопасен и заодно
// выверяет леджер
func (s *Service) Confirm(ctx context.Context, reservationID int64, req *models.ConfirmReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Confirm: confirming reservation id=%d by user=%d", reservationID, req.UserID)

	res, err := s.getReservation(ctx, reservationID, "Confirm")
	if err != nil {
		return nil, err
	}

	if res.IsCancelled() {
		s.logger.Warn("Confirm: reservation id=%d is cancelled", reservationID)
		return nil, ErrCannotConfirm
	}

	if res.ClientID != req.UserID {
		if err := s.checkManagerAccess(ctx, res.ProviderID, req.UserID); err != nil {
			s.logger.Warn("Confirm: access denied for user=%d to confirm reservation id=%d", req.UserID, reservationID)
			return nil, ErrAccessDenied
		}
	}

	if res.CanBeConfirmed() {
		if err := s.reservationRepo.UpdateStatus(ctx, reservationID, domain.StatusConfirmed); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return nil, ErrReservationNotFound
			}
			s.logger.Error("Confirm: repository error for reservation id=%d: %v", reservationID, err)
			return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
		}
		res.Status = domain.StatusConfirmed
		s.notify(ctx, res, notifyservice.EventReservationConfirmed)
	}

	// Повторная развёртка идемпотентна и выверяет возможную рассинхронизацию
	if err := s.ledger.OnReservationConfirmed(ctx, res); err != nil {
		s.logger.Warn("Confirm: ledger desync for reservation id=%d: %v", reservationID, err)
	}

	s.logger.Info("Confirm: reservation id=%d is confirmed", reservationID)
	return models.FromDomainReservation(res), nil
}

// getReservation получает бронирование с маппингом ошибок репозитория
func (s *Service) getReservation(ctx context.Context, id int64, op string) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return res, nil
}

// checkUserAccess проверяет, что пользователь - клиент бронирования
// или менеджер провайдера
func (s *Service) checkUserAccess(ctx context.Context, res *domain.Reservation, userID int64) error {
	if res.ClientID == userID {
		return nil
	}
	return s.checkManagerAccess(ctx, res.ProviderID, userID)
}

// checkManagerAccess проверяет, что пользователь управляет провайдером
func (s *Service) checkManagerAccess(ctx context.Context, providerID, userID int64) error {
	provider, err := s.providerClient.GetProvider(ctx, providerID)
	if err != nil {
		if errors.Is(err, providerClient.ErrProviderNotFound) {
			return ErrProviderNotFound
		}
		s.logger.Error("checkManagerAccess: failed to get provider id=%d: %v", providerID, err)
		return fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	if !provider.IsManagedBy(userID) {
		return ErrAccessDenied
	}

	return nil
}

// notify отправляет событие изменения бронирования
// Fire-and-forget: ошибка логируется и не влияет на результат операции
func (s *Service) notify(ctx context.Context, res *domain.Reservation, eventType string) {
	event := &notifyservice.ReservationEvent{
		Type:          eventType,
		ReservationID: res.ID,
		Reference:     res.Reference,
		ProviderID:    res.ProviderID,
		ClientID:      res.ClientID,
		StartAt:       res.StartAt,
		DurationHours: res.EffectiveDurationHours(),
		Status:        string(res.Status),
	}

	if err := s.notifyClient.PostReservationEvent(ctx, event); err != nil {
		s.logger.Warn("notify: failed to deliver %s event for reservation id=%d: %v", eventType, res.ID, err)
	}
}
