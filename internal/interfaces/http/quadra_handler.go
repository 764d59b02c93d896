package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmoraesdev/lotemap-api/internal/application/dto"
	"github.com/jmoraesdev/lotemap-api/internal/application/usecase"
)

// QuadraHandler trata as quadras de um mapa.
type QuadraHandler struct {
	uc *usecase.QuadraUseCase
}

// NewQuadraHandler constrói o handler.
func NewQuadraHandler(uc *usecase.QuadraUseCase) *QuadraHandler {
	return &QuadraHandler{uc: uc}
}

// Create cria uma quadra num mapa existente.
// POST /api/quadras
func (h *QuadraHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuadraRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	quadra, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(quadra)
}

// ListByMapa lista as quadras de um mapa.
// GET /api/mapas/:id/quadras
func (h *QuadraHandler) ListByMapa(c *fiber.Ctx) error {
	mapaID := c.Params("id")
	if mapaID == "" {
		return missingParam(c, "id")
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.ListByMapa(c.Context(), mapaID, page)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}

// GetByID obtém uma quadra.
// GET /api/quadras/:id
func (h *QuadraHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingParam(c, "id")
	}
	quadra, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(quadra)
}

// Update atualiza uma quadra.
// PUT /api/quadras/:id
func (h *QuadraHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingParam(c, "id")
	}
	var in dto.UpdateQuadraRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	quadra, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(quadra)
}

// Delete remove uma quadra sem lotes reservados ou vendidos.
// DELETE /api/quadras/:id
func (h *QuadraHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingParam(c, "id")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "quadra removida"})
}
