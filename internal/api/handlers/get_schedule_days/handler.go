package get_schedule_days

import (
	"errors"
	"net/http"

	"github.com/estudioluz/booking-service/internal/api/handlers"
	"github.com/estudioluz/booking-service/internal/service/availability"
	getScheduleDays "github.com/estudioluz/booking-service/internal/usecase/get_schedule_days"
)

const (
	msgMissingRange       = "parâmetros start e end obrigatórios"
	msgInvalidDate        = "formato de data inválido, use AAAA-MM-DD"
	msgInvalidRange       = "intervalo de datas inválido"
	msgBackendUnavailable = "agenda temporariamente indisponível, tente novamente"
)

type Handler struct {
	useCase GetScheduleDaysUseCase
	logger  Logger
}

func NewHandler(useCase GetScheduleDaysUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/days
// Query params: start, end (required, YYYY-MM-DD, inclusive)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /schedule/days - Missing range")
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	useCaseReq, err := ToUseCaseRequest(startStr, endStr)
	if err != nil {
		h.logger.Warn("GET /schedule/days - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getScheduleDays.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, availability.ErrBackendUnavailable):
			h.logger.Error("GET /schedule/days - Backend unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgBackendUnavailable)

		default:
			h.logger.Error("GET /schedule/days - Failed: start=%s, end=%s, error=%v", startStr, endStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/days - Days retrieved: start=%s, end=%s, days=%d",
		startStr, endStr, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
