package login

import (
	"errors"
	"net/http"

	"github.com/estudioluz/booking-service/internal/api/handlers"
	"github.com/estudioluz/booking-service/internal/service/auth"
)

const (
	msgInvalidBody        = "corpo da requisição inválido"
	msgMissingCredentials = "telefone e senha obrigatórios"
	msgInvalidCredentials = "telefone ou senha incorretos"
)

// LoginRequest is the HTTP request body
type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if req.Phone == "" || req.Password == "" {
		handlers.RespondBadRequest(w, msgMissingCredentials)
		return
	}

	result, err := h.service.Login(r.Context(), req.Phone, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /auth/login - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - Operator signed in")
	handlers.RespondJSON(w, http.StatusOK, result)
}
