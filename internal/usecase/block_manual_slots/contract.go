package block_manual_slots

import (
	"context"
	"time"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
	"github.com/m04kA/PhotoMarket-BookingService/internal/integrations/providerservice"
)

// AvailabilityChecker интерфейс сервиса проверки доступности
type AvailabilityChecker interface {
	HasConflict(ctx context.Context, providerID int64, candidate domain.Interval, excludeReservationID *int64) (bool, error)
}

// LedgerWriter интерфейс писателя леджера заблокированных слотов
type LedgerWriter interface {
	OnManualBlock(ctx context.Context, providerID int64, start time.Time, durationHours int, reason string, listingID *int64) error
}

// ProviderServiceClient интерфейс клиента каталога маркетплейса
type ProviderServiceClient interface {
	GetProvider(ctx context.Context, providerID int64) (*providerservice.Provider, error)
}

// TxManager интерфейс менеджера сериализуемых транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
