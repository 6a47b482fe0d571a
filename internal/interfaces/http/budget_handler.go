package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/securetrack/securetrack-api/internal/application/dto"
	"github.com/securetrack/securetrack-api/internal/application/usecase"
	"github.com/securetrack/securetrack-api/internal/domain/filter"
)

// BudgetHandler trata as rotas de propostas comerciais.
type BudgetHandler struct {
	uc *usecase.BudgetUseCase
}

// NewBudgetHandler constrói o handler.
func NewBudgetHandler(uc *usecase.BudgetUseCase) *BudgetHandler {
	return &BudgetHandler{uc: uc}
}

// Create registra uma nova proposta.
func (h *BudgetHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveBudgetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List devolve as propostas filtradas com as estatísticas do período.
// O limite superior do intervalo de datas é estendido até o fim do dia.
func (h *BudgetHandler) List(c *fiber.Ctx) error {
	f := filter.BudgetFilter{
		Query:  c.Query("q"),
		Status: c.Query("status"),
		From:   parseDateQuery(c.Query("from"), false),
		To:     parseDateQuery(c.Query("to"), true),
	}
	out, err := h.uc.List(f)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByID devolve a proposta com status de exibição calculado.
func (h *BudgetHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update edita uma proposta existente.
func (h *BudgetHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveBudgetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// SetStatus troca manualmente o status persistido da proposta.
func (h *BudgetHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.BudgetStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.SetStatus(c.Params("id"), in.Status)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Convert transforma a proposta em serviço do cliente vinculado.
func (h *BudgetHandler) Convert(c *fiber.Ctx) error {
	out, err := h.uc.Convert(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// WhatsAppLink monta o deep link wa.me com o resumo da proposta.
func (h *BudgetHandler) WhatsAppLink(c *fiber.Ctx) error {
	out, err := h.uc.WhatsAppLink(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// SendEmail dispara o envio (simulado) da proposta por e-mail.
func (h *BudgetHandler) SendEmail(c *fiber.Ctx) error {
	out, err := h.uc.SendEmail(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ExportPDF gera a proposta em PDF para download.
func (h *BudgetHandler) ExportPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.ExportPDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="proposta-`+c.Params("id")+`.pdf"`)
	return c.Send(pdfBytes)
}

// parseDateQuery converte um query param AAAA-MM-DD em instante. endOfDay
// empurra o corte para 23:59:59 do mesmo dia, mantendo o intervalo inclusivo.
func parseDateQuery(s string, endOfDay bool) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		return nil
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t
}
