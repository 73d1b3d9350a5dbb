package booking_session

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/estudioluz/booking-service/internal/api/handlers"
	"github.com/estudioluz/booking-service/internal/domain"
	"github.com/estudioluz/booking-service/internal/schedule"
	"github.com/estudioluz/booking-service/internal/service/availability"
	createBooking "github.com/estudioluz/booking-service/internal/usecase/create_booking"
	"github.com/estudioluz/booking-service/internal/workflow"
	"github.com/estudioluz/booking-service/pkg/brphone"
	"github.com/estudioluz/booking-service/pkg/types"
)

const (
	msgInvalidSessionID   = "ID de sessão inválido"
	msgSessionNotFound    = "sessão não encontrada ou expirada"
	msgInvalidBody        = "corpo da requisição inválido"
	msgInvalidDate        = "formato de data inválido, use AAAA-MM-DD"
	msgInvalidTime        = "formato de horário inválido, use HH:MM"
	msgDatePast           = "não é possível agendar em datas passadas"
	msgDateSunday         = "o estúdio não abre aos domingos"
	msgDateBlocked        = "o estúdio está fechado nesta data"
	msgWrongStep          = "ação não permitida nesta etapa"
	msgSlotNotSelectable  = "este horário não está disponível"
	msgSlotNotFound       = "horário fora do expediente"
	msgBackNotAllowed     = "não é possível voltar desta etapa"
	msgFormIncomplete     = "preencha todos os campos obrigatórios"
	msgEmailInvalid       = "e-mail inválido"
	msgPhoneTooShort      = "telefone incompleto"
	msgPhoneTooLong       = "telefone com dígitos a mais"
	msgPhoneBadAreaCode   = "DDD inválido"
	msgPhoneNotMobile     = "informe um número de celular (9 na frente)"
	msgPhoneInvalid       = "telefone inválido"
	msgServiceTypeInvalid = "tipo de serviço inválido"
	msgSlotUnavailable    = "este horário acabou de ser reservado, escolha outro"
	msgSubmitFailed       = "não foi possível concluir o agendamento, tente novamente ou fale conosco pelo WhatsApp"
)

type Handler struct {
	manager WorkflowManager
	logger  Logger
}

func NewHandler(manager WorkflowManager, logger Logger) *Handler {
	return &Handler{
		manager: manager,
		logger:  logger,
	}
}

// HandleStart POST /api/v1/schedule/sessions
func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	snap := h.manager.Start(r.Context())
	h.logger.Info("POST /schedule/sessions - Session %s started", snap.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromSnapshot(snap))
}

// HandleGet GET /api/v1/schedule/sessions/{sessionId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	snap, err := h.manager.Get(id)
	if err != nil {
		h.respondError(w, id, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(snap))
}

// HandleSelectDate POST /api/v1/schedule/sessions/{sessionId}/date
func (h *Handler) HandleSelectDate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	snap, err := h.manager.SelectDate(r.Context(), id, date)
	if err != nil {
		h.respondError(w, id, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(snap))
}

// HandleSelectSlot POST /api/v1/schedule/sessions/{sessionId}/time
func (h *Handler) HandleSelectSlot(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req SelectSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}
	hour, err := types.TimeString(req.StartTime).Hour()
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	snap, err := h.manager.SelectSlot(r.Context(), id, hour)
	if err != nil {
		h.respondError(w, id, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(snap))
}

// HandleSubmitDetails POST /api/v1/schedule/sessions/{sessionId}/details
func (h *Handler) HandleSubmitDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req DetailsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	snap, err := h.manager.SubmitDetails(r.Context(), id,
		req.ClientName, req.ClientEmail, req.ClientPhone, req.ServiceType, req.Message)
	if err != nil {
		h.respondError(w, id, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(snap))
}

// HandleConfirm POST /api/v1/schedule/sessions/{sessionId}/confirm
func (h *Handler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	snap, err := h.manager.Confirm(r.Context(), id)
	if err != nil {
		h.respondError(w, id, err)
		return
	}

	status := http.StatusOK
	if snap.State == workflow.StateSubmitted && snap.Result != nil {
		h.logger.Info("POST /schedule/sessions/{id}/confirm - Session %s submitted booking %s",
			id, snap.Result.BookingID)
		status = http.StatusCreated
	}
	handlers.RespondJSON(w, status, FromSnapshot(snap))
}

// HandleBack POST /api/v1/schedule/sessions/{sessionId}/back
func (h *Handler) HandleBack(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	snap, err := h.manager.Back(r.Context(), id)
	if err != nil {
		h.respondError(w, id, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(snap))
}

func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["sessionId"])
	if err != nil {
		h.logger.Warn("schedule/sessions - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps workflow, validation, and submission failures onto
// specific client messages
func (h *Handler) respondError(w http.ResponseWriter, id uuid.UUID, err error) {
	switch {
	case errors.Is(err, workflow.ErrSessionNotFound):
		handlers.RespondNotFound(w, msgSessionNotFound)

	case errors.Is(err, workflow.ErrInvalidState):
		handlers.RespondConflict(w, msgWrongStep)

	case errors.Is(err, workflow.ErrSlotNotSelectable):
		handlers.RespondConflict(w, msgSlotNotSelectable)

	case errors.Is(err, workflow.ErrSlotNotFound):
		handlers.RespondBadRequest(w, msgSlotNotFound)

	case errors.Is(err, workflow.ErrBackNotAllowed):
		handlers.RespondConflict(w, msgBackNotAllowed)

	case errors.Is(err, schedule.ErrDatePast):
		handlers.RespondBadRequest(w, msgDatePast)

	case errors.Is(err, schedule.ErrDateSunday):
		handlers.RespondBadRequest(w, msgDateSunday)

	case errors.Is(err, schedule.ErrDateBlocked):
		handlers.RespondBadRequest(w, msgDateBlocked)

	case errors.Is(err, createBooking.ErrFormIncomplete):
		handlers.RespondBadRequest(w, msgFormIncomplete)

	case errors.Is(err, createBooking.ErrEmailInvalid):
		handlers.RespondBadRequest(w, msgEmailInvalid)

	case errors.Is(err, brphone.ErrTooShort):
		handlers.RespondBadRequest(w, msgPhoneTooShort)

	case errors.Is(err, brphone.ErrTooLong):
		handlers.RespondBadRequest(w, msgPhoneTooLong)

	case errors.Is(err, brphone.ErrInvalidAreaCode):
		handlers.RespondBadRequest(w, msgPhoneBadAreaCode)

	case errors.Is(err, brphone.ErrNotMobile):
		handlers.RespondBadRequest(w, msgPhoneNotMobile)

	case errors.Is(err, createBooking.ErrPhoneInvalid):
		handlers.RespondBadRequest(w, msgPhoneInvalid)

	case errors.Is(err, createBooking.ErrServiceTypeInvalid):
		handlers.RespondBadRequest(w, msgServiceTypeInvalid)

	case errors.Is(err, createBooking.ErrSlotUnavailable),
		errors.Is(err, availability.ErrWindowNotClaimable):
		handlers.RespondConflict(w, msgSlotUnavailable)

	case errors.Is(err, availability.ErrBackendUnavailable):
		h.logger.Error("schedule/sessions - Backend unavailable: session=%s, error=%v", id, err)
		handlers.RespondServiceUnavailable(w, msgSubmitFailed)

	default:
		h.logger.Error("schedule/sessions - Failed: session=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
	}
}
