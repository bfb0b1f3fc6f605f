package block_manual_slots

import (
	"context"

	blockManualSlots "github.com/m04kA/PhotoMarket-BookingService/internal/usecase/block_manual_slots"
)

type BlockManualSlotsUseCase interface {
	Execute(ctx context.Context, req *blockManualSlots.Request) (*blockManualSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
