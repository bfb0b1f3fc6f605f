package reservations

import (
	"context"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
	"github.com/m04kA/PhotoMarket-BookingService/internal/integrations/notifyservice"
	"github.com/m04kA/PhotoMarket-BookingService/internal/integrations/providerservice"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByClientID(ctx context.Context, clientID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	GetByProviderWithFilter(ctx context.Context, filter domain.ProviderReservationsFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// LedgerWriter интерфейс писателя леджера заблокированных слотов
type LedgerWriter interface {
	OnReservationConfirmed(ctx context.Context, res *domain.Reservation) error
	OnReservationCancelled(ctx context.Context, res *domain.Reservation) error
}

// ProviderServiceClient интерфейс клиента каталога маркетплейса
type ProviderServiceClient interface {
	GetProvider(ctx context.Context, providerID int64) (*providerservice.Provider, error)
}

// NotifyServiceClient интерфейс клиента уведомлений
type NotifyServiceClient interface {
	PostReservationEvent(ctx context.Context, event *notifyservice.ReservationEvent) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
