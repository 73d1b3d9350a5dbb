package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estudioluz/booking-service/pkg/brphone"
)

func TestBuildChatLink(t *testing.T) {
	link, err := BuildChatLink("11998765432", "Olá, estúdio!")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/5511998765432?text="))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Olá, estúdio!", parsed.Query().Get("text"))
}

func TestBuildChatLink_InvalidPhone(t *testing.T) {
	_, err := BuildChatLink("12345", "texto")
	assert.ErrorIs(t, err, brphone.ErrInvalidPhone)
}

func TestNewBookingMessageBody(t *testing.T) {
	body := NewBookingMessage{
		ClientName:   "Maria Silva",
		ServiceLabel: "Ensaio fotográfico",
		Phone:        "11998765432",
		Date:         "15/10/2026",
		Time:         "10:00",
		Message:      "Ensaio para a família toda.",
	}.Body()

	assert.Contains(t, body, "Novo agendamento recebido!")
	assert.Contains(t, body, "Cliente: Maria Silva")
	assert.Contains(t, body, "Serviço: Ensaio fotográfico")
	assert.Contains(t, body, "Telefone: (11) 99876-5432")
	assert.Contains(t, body, "Data: 15/10/2026 às 10:00")
	assert.Contains(t, body, "Mensagem: Ensaio para a família toda.")
}

func TestStatusUpdateMessageBody(t *testing.T) {
	msg := StatusUpdateMessage{
		ClientName:   "Maria Silva",
		ServiceLabel: "Ensaio fotográfico",
		Date:         "15/10/2026",
		Time:         "10:00",
	}

	msg.Confirmed = true
	confirmed := msg.Body()
	assert.Contains(t, confirmed, "foi confirmado")
	assert.Contains(t, confirmed, "Maria Silva")

	msg.Confirmed = false
	cancelled := msg.Body()
	assert.Contains(t, cancelled, "precisou ser cancelado")
	assert.Contains(t, cancelled, "remarcarmos")
}
