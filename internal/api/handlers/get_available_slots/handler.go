package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/estudioluz/booking-service/internal/api/handlers"
	"github.com/estudioluz/booking-service/internal/schedule"
	"github.com/estudioluz/booking-service/internal/service/availability"
	getAvailableSlots "github.com/estudioluz/booking-service/internal/usecase/get_available_slots"
)

const (
	msgMissingDate        = "data obrigatória"
	msgInvalidDate        = "formato de data inválido, use AAAA-MM-DD"
	msgDatePast           = "não é possível agendar em datas passadas"
	msgDateSunday         = "o estúdio não abre aos domingos"
	msgDateBlocked        = "o estúdio está fechado nesta data"
	msgBackendUnavailable = "agenda temporariamente indisponível, tente novamente"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /schedule/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr)
	if err != nil {
		h.logger.Warn("GET /schedule/slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrDatePast):
			handlers.RespondBadRequest(w, msgDatePast)

		case errors.Is(err, schedule.ErrDateSunday):
			handlers.RespondBadRequest(w, msgDateSunday)

		case errors.Is(err, schedule.ErrDateBlocked):
			handlers.RespondBadRequest(w, msgDateBlocked)

		case errors.Is(err, availability.ErrBackendUnavailable):
			h.logger.Error("GET /schedule/slots - Backend unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgBackendUnavailable)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /schedule/slots - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/slots - Slots retrieved: date=%s, slots=%d", dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
