package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmoraesdev/lotemap-api/internal/application/usecase"
)

// DashboardHandler trata o resumo do painel administrativo.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Resumo contagens por status e valores agregados de reservas e vendas.
// GET /api/dashboard
func (h *DashboardHandler) Resumo(c *fiber.Ctx) error {
	resp, err := h.uc.GetResumo(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}
