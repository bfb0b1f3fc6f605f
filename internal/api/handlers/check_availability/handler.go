package check_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/PhotoMarket-BookingService/internal/api/handlers"
	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
	checkAvailability "github.com/m04kA/PhotoMarket-BookingService/internal/usecase/check_availability"
	"github.com/m04kA/PhotoMarket-BookingService/pkg/types"
)

const (
	msgInvalidProviderID = "некорректный ID провайдера"
	msgInvalidListingID  = "некорректный ID листинга"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime       = "некорректный формат времени начала, ожидается HH:MM"
	msgInvalidDuration   = "некорректная длительность"
	msgProviderNotFound  = "провайдер не найден"
	msgListingNotFound   = "листинг не найден"
	msgInvalidInput      = "некорректные параметры запроса"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/availability
//
// Query параметры:
//   - date (обязательный, YYYY-MM-DD)
//   - startTime (обязательный, HH:MM)
//   - durationHours (для почасового тарифа)
//   - listingId (опциональный)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/availability - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /providers/{id}/availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startTime, err := types.NewTimeStringFromString(query.Get("startTime"))
	if err != nil {
		h.logger.Warn("GET /providers/{id}/availability - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	durationHours := 0
	if raw := query.Get("durationHours"); raw != "" {
		durationHours, err = strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /providers/{id}/availability - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	var listingID *int64
	if raw := query.Get("listingId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /providers/{id}/availability - Invalid listing ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidListingID)
			return
		}
		listingID = &id
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		ProviderID:    providerID,
		ListingID:     listingID,
		StartAt:       buildStartAt(date, startTime),
		DurationHours: durationHours,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrProviderNotFound):
			h.logger.Warn("GET /providers/{id}/availability - Provider not found: provider_id=%d", providerID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, checkAvailability.ErrListingNotFound):
			h.logger.Warn("GET /providers/{id}/availability - Listing not found: provider_id=%d", providerID)
			handlers.RespondNotFound(w, msgListingNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidDuration):
			h.logger.Warn("GET /providers/{id}/availability - Invalid duration: provider_id=%d", providerID)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /providers/{id}/availability - Invalid input: provider_id=%d, error=%v", providerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /providers/{id}/availability - Failed to check availability: provider_id=%d, error=%v",
				providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /providers/{id}/availability - Availability checked: provider_id=%d, available=%t",
		providerID, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
