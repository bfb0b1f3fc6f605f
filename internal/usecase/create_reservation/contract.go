package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
	"github.com/m04kA/PhotoMarket-BookingService/internal/integrations/identityservice"
	"github.com/m04kA/PhotoMarket-BookingService/internal/integrations/notifyservice"
	"github.com/m04kA/PhotoMarket-BookingService/internal/integrations/providerservice"
	"github.com/m04kA/PhotoMarket-BookingService/internal/service/availability"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// ConfigRepository интерфейс репозитория конфигурации расписания
type ConfigRepository interface {
	GetByProviderID(ctx context.Context, providerID int64) (*domain.ProviderScheduleConfig, error)
}

// AvailabilityChecker интерфейс сервиса проверки доступности
type AvailabilityChecker interface {
	HasConflict(ctx context.Context, providerID int64, candidate domain.Interval, excludeReservationID *int64) (bool, error)
	FindAlternatives(ctx context.Context, providerID int64, seedDate time.Time, durationHours int, opts availability.SearchOptions, excludeReservationID *int64) ([]domain.SlotSuggestion, error)
}

// LedgerWriter интерфейс писателя леджера заблокированных слотов
type LedgerWriter interface {
	OnReservationConfirmed(ctx context.Context, res *domain.Reservation) error
}

// ProviderServiceClient интерфейс клиента каталога маркетплейса
type ProviderServiceClient interface {
	GetProvider(ctx context.Context, providerID int64) (*providerservice.Provider, error)
	GetListing(ctx context.Context, providerID, listingID int64) (*providerservice.Listing, error)
}

// IdentityServiceClient интерфейс клиента сервиса пользователей
type IdentityServiceClient interface {
	GetUserWithGracefulDegradation(ctx context.Context, userID int64) (*identityservice.User, error)
}

// NotifyServiceClient интерфейс клиента сервиса уведомлений
type NotifyServiceClient interface {
	PostReservationEvent(ctx context.Context, event *notifyservice.ReservationEvent) error
}

// TxManager интерфейс менеджера сериализуемых транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс источника текущего времени
// Выделен в интерфейс, чтобы в тестах фиксировать "сейчас"
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
