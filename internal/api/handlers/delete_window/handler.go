package delete_window

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/estudioluz/booking-service/internal/api/handlers"
	"github.com/estudioluz/booking-service/internal/service/windows"
)

const (
	msgInvalidWindowID = "ID de janela inválido"
	msgWindowNotFound  = "janela não encontrada"
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

// Handle DELETE /api/v1/windows/{windowId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	windowID, err := uuid.Parse(mux.Vars(r)["windowId"])
	if err != nil {
		h.logger.Warn("DELETE /windows/{id} - Invalid window ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindowID)
		return
	}

	if err := h.service.Delete(r.Context(), windowID); err != nil {
		switch {
		case errors.Is(err, windows.ErrWindowNotFound):
			handlers.RespondNotFound(w, msgWindowNotFound)

		default:
			h.logger.Error("DELETE /windows/{id} - Failed: id=%s, error=%v", windowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /windows/{id} - Window %s removed", windowID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
