package ledger

import (
	"context"
	"time"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
)

// BlockedSlotRepository интерфейс репозитория заблокированных слотов
type BlockedSlotRepository interface {
	InsertBatch(ctx context.Context, slots []*domain.BlockedSlot) error
	DeleteByReservationID(ctx context.Context, providerID, reservationID int64) (int64, error)
	DeleteManualByRange(ctx context.Context, providerID int64, from, to time.Time) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
