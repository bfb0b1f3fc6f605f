package unblock_manual_slots

import (
	"context"
	"time"

	"github.com/m04kA/PhotoMarket-BookingService/internal/integrations/providerservice"
)

// LedgerWriter интерфейс писателя леджера заблокированных слотов
type LedgerWriter interface {
	OnManualUnblock(ctx context.Context, providerID int64, start time.Time, durationHours int) (int64, error)
}

// ProviderServiceClient интерфейс клиента каталога маркетплейса
type ProviderServiceClient interface {
	GetProvider(ctx context.Context, providerID int64) (*providerservice.Provider, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
