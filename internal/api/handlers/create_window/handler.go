package create_window

import (
	"errors"
	"net/http"
	"time"

	"github.com/estudioluz/booking-service/internal/api/handlers"
	"github.com/estudioluz/booking-service/internal/domain"
	"github.com/estudioluz/booking-service/internal/service/windows"
	"github.com/estudioluz/booking-service/internal/service/windows/models"
	"github.com/estudioluz/booking-service/pkg/types"
)

const (
	msgInvalidBody   = "corpo da requisição inválido"
	msgInvalidWindow = "janela de horário inválida"
)

// CreateWindowRequest is the HTTP request body
type CreateWindowRequest struct {
	Date      string `json:"date"`      // YYYY-MM-DD
	StartTime string `json:"startTime"` // HH:MM
	EndTime   string `json:"endTime"`   // HH:MM
}

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

// Handle POST /api/v1/windows
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateWindowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /windows - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /windows - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Create(r.Context(), &models.CreateWindowRequest{
		Date:      date,
		StartTime: types.TimeString(req.StartTime),
		EndTime:   types.TimeString(req.EndTime),
	})
	if err != nil {
		switch {
		case errors.Is(err, windows.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("POST /windows - Failed: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /windows - Window created: id=%s, date=%s %s-%s",
		result.ID, result.Date, result.StartTime, result.EndTime)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
