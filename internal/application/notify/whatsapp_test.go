package notify_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vanshit011/nandan-bottling/internal/application/dto"
	"github.com/Vanshit011/nandan-bottling/internal/application/notify"
	"github.com/Vanshit011/nandan-bottling/internal/domain"
)

func newBuilder() *notify.WhatsAppBuilder {
	return notify.NewWhatsAppBuilder("91", "Nandan Bottling", "Pay via UPI.")
}

func summaryRow() dto.SummaryRow {
	return dto.SummaryRow{
		CustomerID:      "c-1",
		CustomerName:    "Asha",
		Phone:           "9876543210",
		RatePerBottle:   decimal.NewFromInt(20),
		Month:           "Mar 2025",
		TotalDeliveries: 2,
		TotalBottles:    8,
		TotalAmount:     decimal.NewFromInt(160),
	}
}

func TestBuildSummary_DireccionYEnlace(t *testing.T) {
	msg, err := newBuilder().BuildSummary(summaryRow())
	require.NoError(t, err)

	assert.Equal(t, "919876543210", msg.TargetAddress,
		"destino = prefijo de país + teléfono nacional")
	assert.True(t, strings.HasPrefix(msg.Link, "https://wa.me/919876543210?text="),
		"el deep link apunta al destino con el texto codificado")
}

func TestBuildSummary_CuerpoDelMensaje(t *testing.T) {
	msg, err := newBuilder().BuildSummary(summaryRow())
	require.NoError(t, err)

	assert.Contains(t, msg.Body, "Dear Asha")
	assert.Contains(t, msg.Body, "Mar 2025")
	assert.Contains(t, msg.Body, "Deliveries: 2")
	assert.Contains(t, msg.Body, "Bottles: 8")
	assert.Contains(t, msg.Body, "₹160")
	assert.Contains(t, msg.Body, "Pay via UPI.")
	assert.Contains(t, msg.Body, "Nandan Bottling")
}

// Los espacios del cuerpo van como %20 (estilo encodeURIComponent), nunca
// como '+': WhatsApp no decodifica '+' como espacio.
func TestBuildSummary_CodificacionDeEspacios(t *testing.T) {
	msg, err := newBuilder().BuildSummary(summaryRow())
	require.NoError(t, err)

	encoded := strings.TrimPrefix(msg.Link, "https://wa.me/919876543210?text=")
	assert.NotContains(t, encoded, "+")
	assert.Contains(t, encoded, "%20")
}

func TestBuildSummary_SinTelefono(t *testing.T) {
	row := summaryRow()
	row.Phone = ""
	_, err := newBuilder().BuildSummary(row)
	assert.ErrorIs(t, err, domain.ErrMissingPhone,
		"sin teléfono se reporta error, no se omite en silencio")
}

func TestBuildSummary_PrefijoDePaisConfigurable(t *testing.T) {
	otro := notify.NewWhatsAppBuilder("34", "Aguas del Sur", "")
	msg, err := otro.BuildSummary(summaryRow())
	require.NoError(t, err)
	assert.Equal(t, "349876543210", msg.TargetAddress)
}

func TestBuildReminder_PlantillaHistorica(t *testing.T) {
	msg, err := newBuilder().BuildReminder("Asha", "9876543210", 8, decimal.NewFromInt(160))
	require.NoError(t, err)

	assert.Contains(t, msg.Body, "Hello Asha")
	assert.Contains(t, msg.Body, "8 bottles")
	assert.Contains(t, msg.Body, "₹160")
	assert.True(t, strings.HasPrefix(msg.Link, "https://wa.me/919876543210?text="))
}

func TestBuildReminder_SinTelefono(t *testing.T) {
	_, err := newBuilder().BuildReminder("Asha", "", 8, decimal.NewFromInt(160))
	assert.ErrorIs(t, err, domain.ErrMissingPhone)
}
