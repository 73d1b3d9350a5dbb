// Package whatsapp builds wa.me deep links with pre-filled message bodies.
//
// The service never calls the WhatsApp API: it hands the link to the browser,
// which opens the chat. No response is awaited or parsed.
package whatsapp

import (
	"fmt"
	"net/url"

	"github.com/estudioluz/booking-service/pkg/brphone"
)

// chatHost is the official click-to-chat host
const chatHost = "https://wa.me"

// BuildChatLink builds a click-to-chat URL targeting the given phone with the
// given pre-filled text. The phone is normalized to international form first;
// brphone.ErrInvalidPhone is returned when that fails.
func BuildChatLink(phoneDigits, text string) (string, error) {
	intl, err := brphone.ToInternational(phoneDigits)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s?text=%s", chatHost, intl, url.QueryEscape(text)), nil
}

// NewBookingMessage is the notification sent to the studio operator when a
// client submits a booking.
type NewBookingMessage struct {
	ClientName   string
	ServiceLabel string
	Phone        string
	Date         string // "02/01/2006"
	Time         string // "15:04"
	Message      string
}

// Body renders the Portuguese message text
func (m NewBookingMessage) Body() string {
	return fmt.Sprintf(
		"Novo agendamento recebido!\n\n"+
			"Cliente: %s\n"+
			"Serviço: %s\n"+
			"Telefone: %s\n"+
			"Data: %s às %s\n\n"+
			"Mensagem: %s",
		m.ClientName, m.ServiceLabel, brphone.Mask(m.Phone), m.Date, m.Time, m.Message,
	)
}

// StatusUpdateMessage is the message sent to a client when the studio
// confirms or cancels the booking.
type StatusUpdateMessage struct {
	ClientName   string
	ServiceLabel string
	Date         string
	Time         string
	Confirmed    bool
}

// Body renders the Portuguese message text
func (m StatusUpdateMessage) Body() string {
	if m.Confirmed {
		return fmt.Sprintf(
			"Olá, %s! Seu agendamento de %s no dia %s às %s foi confirmado. "+
				"Estamos ansiosos para te receber no estúdio!",
			m.ClientName, m.ServiceLabel, m.Date, m.Time,
		)
	}
	return fmt.Sprintf(
		"Olá, %s. Infelizmente seu agendamento de %s no dia %s às %s precisou ser cancelado. "+
			"Responda esta mensagem para remarcarmos em outra data.",
		m.ClientName, m.ServiceLabel, m.Date, m.Time,
	)
}
