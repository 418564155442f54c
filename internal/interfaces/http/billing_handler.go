package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Vanshit011/nandan-bottling/internal/application/billing"
	"github.com/Vanshit011/nandan-bottling/internal/application/dto"
	"github.com/Vanshit011/nandan-bottling/internal/domain"
)

// BillingHandler expone el agregador mensual: resumen por cliente, vista de
// facturación con detalle y estado de cuenta en PDF (protegido).
type BillingHandler struct {
	agg       *billing.Aggregator
	statement *billing.StatementUseCase
}

// NewBillingHandler construye el handler.
func NewBillingHandler(agg *billing.Aggregator, statement *billing.StatementUseCase) *BillingHandler {
	return &BillingHandler{agg: agg, statement: statement}
}

// MonthSummary GET /api/deliveries/month-on-month-summary?month=M&year=Y
func (h *BillingHandler) MonthSummary(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	month, year, ok := parseMonthYear(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "month y year son requeridos"})
	}
	rows, err := h.agg.MonthSummary(c.Context(), companyID, month, year)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "month debe estar entre 1 y 12"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(rows)
}

// BillingView GET /api/billing?month=M&year=Y
// Vista histórica con detalle de entregas, estado y deep link por cliente.
func (h *BillingHandler) BillingView(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	month, year, ok := parseMonthYear(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "month y year son requeridos"})
	}
	resp, err := h.agg.BillingView(c.Context(), companyID, month, year)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "month debe estar entre 1 y 12"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// SummaryMessages GET /api/billing/messages?month=M&year=Y
// Mensajes de resumen mensual prearmados (texto + deep link) por cliente.
func (h *BillingHandler) SummaryMessages(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	month, year, ok := parseMonthYear(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "month y year son requeridos"})
	}
	msgs, err := h.agg.SummaryMessages(c.Context(), companyID, month, year)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "month debe estar entre 1 y 12"})
		}
		if err == domain.ErrMissingPhone {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "MISSING_PHONE", Message: "un cliente del período no tiene teléfono"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(msgs)
}

// StatementPDF GET /api/billing/statement/pdf?month=M&year=Y
func (h *BillingHandler) StatementPDF(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	month, year, ok := parseMonthYear(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "month y year son requeridos"})
	}
	pdfBytes, filename, err := h.statement.DownloadStatementPDF(c.Context(), companyID, month, year)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "month debe estar entre 1 y 12"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
