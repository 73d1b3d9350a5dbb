package create_booking

import (
	"errors"
	"net/http"

	"github.com/estudioluz/booking-service/internal/api/handlers"
	"github.com/estudioluz/booking-service/internal/schedule"
	"github.com/estudioluz/booking-service/internal/service/availability"
	createBooking "github.com/estudioluz/booking-service/internal/usecase/create_booking"
	"github.com/estudioluz/booking-service/pkg/brphone"
)

const (
	msgInvalidBody        = "corpo da requisição inválido"
	msgFormIncomplete     = "preencha todos os campos obrigatórios"
	msgEmailInvalid       = "e-mail inválido"
	msgPhoneTooShort      = "telefone incompleto"
	msgPhoneTooLong       = "telefone com dígitos a mais"
	msgPhoneBadAreaCode   = "DDD inválido"
	msgPhoneNotMobile     = "informe um número de celular (9 na frente)"
	msgPhoneInvalid       = "telefone inválido"
	msgServiceTypeInvalid = "tipo de serviço inválido"
	msgDatePast           = "não é possível agendar em datas passadas"
	msgDateSunday         = "o estúdio não abre aos domingos"
	msgDateBlocked        = "o estúdio está fechado nesta data"
	msgWindowNotFound     = "horário não encontrado para esta data"
	msgSlotUnavailable    = "este horário acabou de ser reservado, escolha outro"
	msgBackendUnavailable = "não foi possível concluir o agendamento, tente novamente ou fale conosco pelo WhatsApp"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid window id or date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.respondError(w, req, err)
		return
	}

	h.logger.Info("POST /bookings - Booking created: id=%s, window=%s", result.ID, result.WindowID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// respondError maps every usecase failure onto a specific client message;
// nothing leaves this handler as an unclassified error
func (h *Handler) respondError(w http.ResponseWriter, req CreateBookingRequest, err error) {
	switch {
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

	case errors.Is(err, schedule.ErrDatePast):
		handlers.RespondBadRequest(w, msgDatePast)

	case errors.Is(err, schedule.ErrDateSunday):
		handlers.RespondBadRequest(w, msgDateSunday)

	case errors.Is(err, schedule.ErrDateBlocked):
		handlers.RespondBadRequest(w, msgDateBlocked)

	case errors.Is(err, createBooking.ErrWindowNotFound):
		handlers.RespondNotFound(w, msgWindowNotFound)

	case errors.Is(err, createBooking.ErrSlotUnavailable),
		errors.Is(err, availability.ErrWindowNotClaimable):
		h.logger.Warn("POST /bookings - Slot unavailable: window=%s, date=%s", req.WindowID, req.Date)
		handlers.RespondConflict(w, msgSlotUnavailable)

	case errors.Is(err, availability.ErrBackendUnavailable):
		h.logger.Error("POST /bookings - Backend unavailable: %v", err)
		handlers.RespondServiceUnavailable(w, msgBackendUnavailable)

	case errors.Is(err, createBooking.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidBody)

	default:
		h.logger.Error("POST /bookings - Failed: window=%s, date=%s, error=%v", req.WindowID, req.Date, err)
		handlers.RespondInternalError(w)
	}
}
