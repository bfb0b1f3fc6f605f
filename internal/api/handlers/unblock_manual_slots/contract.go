package unblock_manual_slots

import (
	"context"

	unblockManualSlots "github.com/m04kA/PhotoMarket-BookingService/internal/usecase/unblock_manual_slots"
)

type UnblockManualSlotsUseCase interface {
	Execute(ctx context.Context, req *unblockManualSlots.Request) (*unblockManualSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
