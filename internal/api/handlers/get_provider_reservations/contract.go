package get_provider_reservations

import (
	"context"

	"github.com/m04kA/PhotoMarket-BookingService/internal/service/reservations/models"
)

type ReservationService interface {
	GetProviderReservations(ctx context.Context, req *models.GetProviderReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
