package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmoraesdev/lotemap-api/internal/application/auth"
	"github.com/jmoraesdev/lotemap-api/internal/application/dto"
	"github.com/jmoraesdev/lotemap-api/internal/application/usecase"
	"github.com/jmoraesdev/lotemap-api/internal/domain/entity"
)

// UsuarioHandler trata cadastro, login e gestão de usuários.
type UsuarioHandler struct {
	authUC *auth.UseCase
	uc     *usecase.UsuarioUseCase
}

// NewUsuarioHandler constrói o handler.
func NewUsuarioHandler(authUC *auth.UseCase, uc *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{authUC: authUC, uc: uc}
}

// Register auto-cadastro de vendedor; entra como pending até aprovação.
// POST /api/usuarios/register
func (h *UsuarioHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	usuario, err := h.authUC.Register(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usuario)
}

// Login autentica por CPF e senha via query string.
// O cliente web legado envia as credenciais como parâmetros de query.
// GET /api/usuarios/login?cpf=...&password=...
func (h *UsuarioHandler) Login(c *fiber.Ctx) error {
	cpfIn := c.Query("cpf")
	password := c.Query("password")
	if cpfIn == "" || password == "" {
		return missingParam(c, "cpf e password")
	}
	resp, err := h.authUC.Login(c.Context(), cpfIn, password)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}

// Create criação administrativa de usuário (role e status livres).
// POST /api/usuarios
func (h *UsuarioHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	usuario, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usuario)
}

// List lista usuários, opcionalmente filtrados por status de aprovação.
// GET /api/usuarios?status=pending
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.List(c.Context(), c.Query("status"), page)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}

// GetByID obtém um usuário.
// GET /api/usuarios/:id
func (h *UsuarioHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingParam(c, "id")
	}
	usuario, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(usuario)
}

// Update atualiza o perfil. Vendedor só edita o próprio cadastro.
// PUT /api/usuarios/:id
func (h *UsuarioHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingParam(c, "id")
	}
	role := GetRole(c)
	if role != entity.RoleAdmin && role != entity.RoleDev && GetUserID(c) != id {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "só é possível editar o próprio cadastro"})
	}
	var in dto.UpdateUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	usuario, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(usuario)
}

// Aprovar aprova ou rejeita um cadastro pendente.
// PUT /api/usuarios/:id/aprovacao
func (h *UsuarioHandler) Aprovar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingParam(c, "id")
	}
	var in dto.AprovacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	usuario, err := h.uc.Aprovar(c.Context(), id, in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(usuario)
}

// Delete remove um usuário. Contas dev não podem ser removidas.
// DELETE /api/usuarios/:id
func (h *UsuarioHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingParam(c, "id")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "usuário removido"})
}
