package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/securetrack/securetrack-api/internal/application/usecase"
)

// InsightsHandler trata a geração de insights de negócio do painel.
type InsightsHandler struct {
	uc *usecase.InsightsUseCase
}

// NewInsightsHandler constrói o handler.
func NewInsightsHandler(uc *usecase.InsightsUseCase) *InsightsHandler {
	return &InsightsHandler{uc: uc}
}

// Generate devolve o relatório de insights. A falha do provedor vira o texto
// de fallback, nunca 5xx.
func (h *InsightsHandler) Generate(c *fiber.Ctx) error {
	out, err := h.uc.Generate(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
