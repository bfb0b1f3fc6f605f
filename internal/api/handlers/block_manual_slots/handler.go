package block_manual_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PhotoMarket-BookingService/internal/api/handlers"
	"github.com/m04kA/PhotoMarket-BookingService/internal/api/middleware"
	blockManualSlots "github.com/m04kA/PhotoMarket-BookingService/internal/usecase/block_manual_slots"
)

const (
	msgInvalidProviderID  = "некорректный ID провайдера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректные дата или время начала, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgProviderNotFound   = "провайдер не найден"
	msgForbidden          = "доступ запрещен"
	msgSlotConflict       = "часть часов уже занята"
	msgInvalidInput       = "некорректные параметры блокировки"
)

type Handler struct {
	useCase BlockManualSlotsUseCase
	logger  Logger
}

func NewHandler(useCase BlockManualSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/providers/{providerId}/blocked-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /providers/{id}/blocked-slots - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /providers/{id}/blocked-slots - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req BlockSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /providers/{id}/blocked-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(providerID, userID)
	if err != nil {
		h.logger.Warn("POST /providers/{id}/blocked-slots - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, blockManualSlots.ErrSlotConflict):
			h.logger.Warn("POST /providers/{id}/blocked-slots - Slot conflict: provider_id=%d", providerID)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, blockManualSlots.ErrProviderNotFound):
			h.logger.Warn("POST /providers/{id}/blocked-slots - Provider not found: provider_id=%d", providerID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, blockManualSlots.ErrAccessDenied):
			h.logger.Warn("POST /providers/{id}/blocked-slots - Access denied: provider_id=%d, user_id=%d",
				providerID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, blockManualSlots.ErrInvalidInput):
			h.logger.Warn("POST /providers/{id}/blocked-slots - Invalid input: provider_id=%d, error=%v", providerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /providers/{id}/blocked-slots - Failed to block slots: provider_id=%d, error=%v",
				providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /providers/{id}/blocked-slots - Blocked %d slots: provider_id=%d, user_id=%d",
		result.BlockedCount, providerID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
