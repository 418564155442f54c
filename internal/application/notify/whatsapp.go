// Package notify arma mensajes salientes prellenados para el cliente final.
// Solo construye el enlace/texto; el envío real lo hace el dispositivo del
// usuario (deep link de WhatsApp) o la pasarela SMS (ver infrastructure/sms).
package notify

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Vanshit011/nandan-bottling/internal/application/dto"
	"github.com/Vanshit011/nandan-bottling/internal/domain"
)

// Message mensaje saliente listo para despachar.
type Message struct {
	TargetAddress string // <prefijo de país><teléfono nacional>, ej. 919876543210
	Body          string
	Link          string // deep link https://wa.me/<target>?text=<body codificado>
}

// WhatsAppBuilder arma deep links wa.me con la plantilla del negocio.
// El prefijo de país y el pie de pago vienen de configuración, no del código.
type WhatsAppBuilder struct {
	countryCode  string
	businessName string
	paymentNote  string
}

// NewWhatsAppBuilder construye el builder.
func NewWhatsAppBuilder(countryCode, businessName, paymentNote string) *WhatsAppBuilder {
	return &WhatsAppBuilder{
		countryCode:  countryCode,
		businessName: businessName,
		paymentNote:  paymentNote,
	}
}

// BuildSummary arma el mensaje de resumen mensual para una fila del
// agregador. El teléfono es obligatorio: sin él se reporta error de
// validación en vez de omitir al cliente en silencio.
func (b *WhatsAppBuilder) BuildSummary(row dto.SummaryRow) (*Message, error) {
	if row.Phone == "" {
		return nil, domain.ErrMissingPhone
	}
	body := fmt.Sprintf(`Dear %s,

🧾 *%s - Monthly Summary*

Here is your delivery summary for *%s*:

• Deliveries: %d
• Bottles: %d
• 💰 *Total Amount: ₹%s*

%s
If already paid, kindly ignore this message.

🙏 Thank you,
*%s*`,
		row.CustomerName, b.businessName, row.Month,
		row.TotalDeliveries, row.TotalBottles, row.TotalAmount.String(),
		b.paymentNote, b.businessName,
	)
	return b.build(row.Phone, body), nil
}

// BuildReminder arma el recordatorio corto que acompaña cada fila de la
// vista de facturación (plantilla histórica).
func (b *WhatsAppBuilder) BuildReminder(name, phone string, totalBottles int, amount decimal.Decimal) (*Message, error) {
	if phone == "" {
		return nil, domain.ErrMissingPhone
	}
	body := fmt.Sprintf(
		"Hello %s, this is a reminder from %s. Your total delivery for this month is %d bottles. Total bill: ₹%s. %s",
		name, b.businessName, totalBottles, amount.String(), b.paymentNote,
	)
	return b.build(phone, body), nil
}

func (b *WhatsAppBuilder) build(phone, body string) *Message {
	target := b.countryCode + phone
	return &Message{
		TargetAddress: target,
		Body:          body,
		Link:          "https://wa.me/" + target + "?text=" + encodeComponent(body),
	}
}

// encodeComponent codifica como encodeURIComponent de JS: espacios como %20,
// no como '+', para que WhatsApp muestre el texto íntegro.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
