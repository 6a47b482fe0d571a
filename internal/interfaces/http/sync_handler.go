package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/securetrack/securetrack-api/internal/infrastructure/heartbeat"
)

// SyncHandler expõe o indicador de sincronização do topo do painel.
type SyncHandler struct {
	indicator *heartbeat.Indicator
}

// NewSyncHandler constrói o handler.
func NewSyncHandler(indicator *heartbeat.Indicator) *SyncHandler {
	return &SyncHandler{indicator: indicator}
}

// Status devolve a fotografia atual do indicador.
func (h *SyncHandler) Status(c *fiber.Ctx) error {
	return c.JSON(h.indicator.Snapshot())
}
