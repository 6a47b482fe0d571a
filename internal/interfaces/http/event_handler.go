package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/securetrack/securetrack-api/internal/application/dto"
	"github.com/securetrack/securetrack-api/internal/application/usecase"
	"github.com/securetrack/securetrack-api/internal/domain/filter"
)

// EventHandler trata as rotas do histórico de eventos.
type EventHandler struct {
	uc *usecase.EventUseCase
}

// NewEventHandler constrói o handler.
func NewEventHandler(uc *usecase.EventUseCase) *EventHandler {
	return &EventHandler{uc: uc}
}

// Append registra um novo evento no histórico. Sem campo user no corpo, o
// autor é o operador autenticado.
func (h *EventHandler) Append(c *fiber.Ctx) error {
	var in dto.AppendEventRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Append(in, GetUserName(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List devolve o histórico filtrado com as estatísticas do log completo.
func (h *EventHandler) List(c *fiber.Ctx) error {
	f := filter.EventFilter{
		Query:    c.Query("q"),
		Type:     c.Query("type"),
		Severity: c.Query("severity"),
		From:     parseDateQuery(c.Query("from"), false),
		To:       parseDateQuery(c.Query("to"), true),
	}
	out, err := h.uc.List(f)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
