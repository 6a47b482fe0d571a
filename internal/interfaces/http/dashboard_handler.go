package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/securetrack/securetrack-api/internal/application/dto"
	"github.com/securetrack/securetrack-api/internal/application/usecase"
	"github.com/securetrack/securetrack-api/internal/domain/entity"
)

// DashboardHandler trata as rotas read-only do painel: resumo, relatório de
// garantias e catálogo de equipamentos.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary devolve os contadores do topo e a distribuição por tipo de serviço.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// WarrantyReport devolve a prévia do relatório de garantias.
func (h *DashboardHandler) WarrantyReport(c *fiber.Ctx) error {
	out, err := h.uc.GetWarrantyReport()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Catalog devolve o catálogo estático de equipamentos.
func (h *DashboardHandler) Catalog(c *fiber.Ctx) error {
	items := make([]dto.CatalogItemDTO, 0, len(entity.EquipmentCatalog))
	for _, it := range entity.EquipmentCatalog {
		items = append(items, dto.CatalogItemDTO{
			Name:      it.Name,
			Brand:     it.Brand,
			Model:     it.Model,
			BasePrice: it.BasePrice,
		})
	}
	return c.JSON(items)
}
