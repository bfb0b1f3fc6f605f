package get_provider_config

import (
	"context"

	"github.com/m04kA/PhotoMarket-BookingService/internal/service/config/models"
)

type ConfigService interface {
	Get(ctx context.Context, providerID int64) (*models.ScheduleConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
