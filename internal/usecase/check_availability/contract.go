package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
	"github.com/m04kA/PhotoMarket-BookingService/internal/integrations/providerservice"
	"github.com/m04kA/PhotoMarket-BookingService/internal/service/availability"
)

// AvailabilityChecker интерфейс сервиса проверки доступности
type AvailabilityChecker interface {
	HasConflict(ctx context.Context, providerID int64, candidate domain.Interval, excludeReservationID *int64) (bool, error)
	FindAlternatives(ctx context.Context, providerID int64, seedDate time.Time, durationHours int, opts availability.SearchOptions, excludeReservationID *int64) ([]domain.SlotSuggestion, error)
}

// ConfigRepository интерфейс репозитория конфигурации расписания
type ConfigRepository interface {
	GetByProviderID(ctx context.Context, providerID int64) (*domain.ProviderScheduleConfig, error)
}

// ProviderServiceClient интерфейс клиента каталога маркетплейса
type ProviderServiceClient interface {
	GetProvider(ctx context.Context, providerID int64) (*providerservice.Provider, error)
	GetListing(ctx context.Context, providerID, listingID int64) (*providerservice.Listing, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
