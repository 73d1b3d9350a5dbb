package list_windows

import (
	"errors"
	"net/http"
	"time"

	"github.com/estudioluz/booking-service/internal/api/handlers"
	"github.com/estudioluz/booking-service/internal/domain"
	"github.com/estudioluz/booking-service/internal/service/windows"
	"github.com/estudioluz/booking-service/internal/service/windows/models"
)

const (
	msgMissingRange = "parâmetros start e end obrigatórios"
	msgInvalidDate  = "formato de data inválido, use AAAA-MM-DD"
	msgInvalidInput = "parâmetros de busca inválidos"
)

type Handler struct {
	service WindowService
	logger  Logger
}

func NewHandler(service WindowService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/windows
// Query params: start, end (required, YYYY-MM-DD); status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	startStr := q.Get("start")
	endStr := q.Get("end")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /windows - Missing range")
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	start, err := time.Parse(domain.DateFormat, startStr)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	end, err := time.Parse(domain.DateFormat, endStr)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &models.ListWindowsRequest{StartDate: start, EndDate: end}
	if statusStr := q.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, windows.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /windows - Failed: start=%s, end=%s, error=%v", startStr, endStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /windows - Listed %d windows", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
