package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/PhotoMarket-BookingService/internal/api/handlers"
	"github.com/m04kA/PhotoMarket-BookingService/internal/api/middleware"
	createReservation "github.com/m04kA/PhotoMarket-BookingService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректные дата или время начала, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSlotConflict       = "выбранный слот недоступен"
	msgProviderNotFound   = "провайдер не найден"
	msgListingNotFound    = "листинг не найден"
	msgInvalidDuration    = "некорректная длительность"
	msgPriceUnresolved    = "для договорного листинга требуется согласованная цена"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotConflict):
			// Вместе с 409 отдаем альтернативные слоты из частичного результата
			h.logger.Warn("POST /reservations - Slot conflict: client_id=%d, provider_id=%d", clientID, req.ProviderID)
			handlers.RespondJSON(w, http.StatusConflict, ToConflictResponse(msgSlotConflict, result))

		case errors.Is(err, createReservation.ErrProviderNotFound):
			h.logger.Warn("POST /reservations - Provider not found: provider_id=%d", req.ProviderID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, createReservation.ErrListingNotFound):
			h.logger.Warn("POST /reservations - Listing not found: provider_id=%d", req.ProviderID)
			handlers.RespondNotFound(w, msgListingNotFound)

		case errors.Is(err, createReservation.ErrInvalidDuration):
			h.logger.Warn("POST /reservations - Invalid duration: client_id=%d, provider_id=%d", clientID, req.ProviderID)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createReservation.ErrPriceUnresolved):
			h.logger.Warn("POST /reservations - Price unresolved: client_id=%d, provider_id=%d", clientID, req.ProviderID)
			handlers.RespondBadRequest(w, msgPriceUnresolved)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: client_id=%d, error=%v", clientID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: client_id=%d, provider_id=%d, error=%v",
				clientID, req.ProviderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%d, ref=%s, client_id=%d, provider_id=%d",
		result.ID, result.Reference, clientID, req.ProviderID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
