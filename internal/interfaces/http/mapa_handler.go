package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmoraesdev/lotemap-api/internal/application/dto"
	"github.com/jmoraesdev/lotemap-api/internal/application/usecase"
)

// maxImagemBytes limite do upload de imagem de fundo (10 MiB).
const maxImagemBytes = 10 << 20

// MapaHandler trata os mapas (plantas de loteamento).
type MapaHandler struct {
	uc *usecase.MapaUseCase
}

// NewMapaHandler constrói o handler.
func NewMapaHandler(uc *usecase.MapaUseCase) *MapaHandler {
	return &MapaHandler{uc: uc}
}

// Create cria um mapa.
// POST /api/mapas
func (h *MapaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMapaRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	mapa, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(mapa)
}

// List lista os mapas.
// GET /api/mapas
func (h *MapaHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.List(c.Context(), page)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}

// GetByID obtém um mapa com a URL temporária da imagem.
// GET /api/mapas/:id
func (h *MapaHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingParam(c, "id")
	}
	mapa, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(mapa)
}

// Update atualiza os dados de um mapa.
// PUT /api/mapas/:id
func (h *MapaHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingParam(c, "id")
	}
	var in dto.UpdateMapaRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	mapa, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(mapa)
}

// UploadImagem recebe a imagem de fundo via multipart (campo "imagem").
// POST /api/mapas/:id/imagem
func (h *MapaHandler) UploadImagem(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingParam(c, "id")
	}
	fileHeader, err := c.FormFile("imagem")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campo de arquivo 'imagem' requerido"})
	}
	if fileHeader.Size > maxImagemBytes {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "imagem acima de 10MB"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "não foi possível ler o arquivo"})
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	mapa, err := h.uc.UploadImagem(c.Context(), id, fileHeader.Filename, contentType, file, fileHeader.Size)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(mapa)
}

// Delete remove um mapa sem lotes reservados ou vendidos.
// DELETE /api/mapas/:id
func (h *MapaHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingParam(c, "id")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "mapa removido"})
}
