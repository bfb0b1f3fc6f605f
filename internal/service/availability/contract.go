package availability

import (
	"context"
	"time"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// GetByProviderAndRange получает активные бронирования провайдера в окне [from, to)
	GetByProviderAndRange(ctx context.Context, providerID int64, from, to time.Time, excludeReservationID *int64) ([]*domain.Reservation, error)
}

// BlockedSlotRepository интерфейс репозитория заблокированных слотов
type BlockedSlotRepository interface {
	// GetByProviderAndRange получает слоты провайдера в окне [from, to)
	GetByProviderAndRange(ctx context.Context, providerID int64, from, to time.Time, excludeReservationID *int64) ([]*domain.BlockedSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
