package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmoraesdev/lotemap-api/internal/application/dto"
	"github.com/jmoraesdev/lotemap-api/internal/application/usecase"
)

// LoteHandler trata os lotes e o check público de disponibilidade.
type LoteHandler struct {
	uc *usecase.LoteUseCase
}

// NewLoteHandler constrói o handler.
func NewLoteHandler(uc *usecase.LoteUseCase) *LoteHandler {
	return &LoteHandler{uc: uc}
}

// Create cria um lote num mapa (e opcionalmente numa quadra).
// POST /api/lotes
func (h *LoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLoteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	lote, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(lote)
}

// VerificarDisponibilidade check público consumido pela vitrine antes de
// abrir o formulário de reserva. O cliente web legado envia idLote.
// GET /api/mapas/lotes/valido?idLote=<loteId>
func (h *LoteHandler) VerificarDisponibilidade(c *fiber.Ctx) error {
	id := c.Query("idLote")
	if id == "" {
		id = c.Query("id")
	}
	if id == "" {
		return missingParam(c, "idLote")
	}
	resp, err := h.uc.VerificarDisponibilidade(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}

// ListDisponiveis vitrine pública de lotes available, com filtro por mapa.
// GET /api/mapas/lotes/disponiveis?mapa_id=
func (h *LoteHandler) ListDisponiveis(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.ListDisponiveis(c.Context(), c.Query("mapa_id"), page)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}

// ListByMapa lista todos os lotes de um mapa, em qualquer status.
// GET /api/mapas/:id/lotes
func (h *LoteHandler) ListByMapa(c *fiber.Ctx) error {
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

// ListByQuadra lista os lotes de uma quadra.
// GET /api/quadras/:id/lotes
func (h *LoteHandler) ListByQuadra(c *fiber.Ctx) error {
	quadraID := c.Params("id")
	if quadraID == "" {
		return missingParam(c, "id")
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.ListByQuadra(c.Context(), quadraID, page)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}

// GetByID obtém um lote.
// GET /api/lotes/:id
func (h *LoteHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingParam(c, "id")
	}
	lote, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(lote)
}

// Update atualiza um lote; status preenchido é override administrativo.
// PUT /api/lotes/:id
func (h *LoteHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingParam(c, "id")
	}
	var in dto.UpdateLoteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	lote, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(lote)
}

// Delete remove um lote que não esteja reservado nem vendido.
// DELETE /api/lotes/:id
func (h *LoteHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingParam(c, "id")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "lote removido"})
}
