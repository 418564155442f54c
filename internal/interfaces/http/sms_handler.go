package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Vanshit011/nandan-bottling/internal/application/dto"
	"github.com/Vanshit011/nandan-bottling/internal/application/notify"
)

// SMSHandler envía mensajes puntuales a través de la pasarela SMS.
type SMSHandler struct {
	sender notify.SMSSender
}

// NewSMSHandler construye el handler.
func NewSMSHandler(sender notify.SMSSender) *SMSHandler {
	return &SMSHandler{sender: sender}
}

// Send POST /api/sms {phone, message}
func (h *SMSHandler) Send(c *fiber.Ctx) error {
	var req dto.SendSMSRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cuerpo inválido"})
	}
	if strings.TrimSpace(req.Phone) == "" || strings.TrimSpace(req.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "phone y message son requeridos"})
	}
	if err := h.sender.Send(c.Context(), req.Phone, req.Message); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "SMS_GATEWAY", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "SMS enviado"})
}
