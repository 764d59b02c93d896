package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jmoraesdev/lotemap-api/internal/application/dto"
	"github.com/jmoraesdev/lotemap-api/internal/application/reservation"
)

// ReservaHandler trata a transação de reserva e o ciclo de vida das reservas.
type ReservaHandler struct {
	uc *reservation.UseCase
}

// NewReservaHandler constrói o handler.
func NewReservaHandler(uc *reservation.UseCase) *ReservaHandler {
	return &ReservaHandler{uc: uc}
}

// Reservar cria a reserva de um conjunto de lotes, tudo-ou-nada.
// Endpoint público: o comprador reserva pela vitrine sem login; quando um
// vendedor autenticado reserva, o usuário fica associado à reserva.
// POST /api/mapas/lotes/reservar
func (h *ReservaHandler) Reservar(c *fiber.Ctx) error {
	var in dto.ReservarLotesRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.ReservarLotes(c.Context(), GetUserID(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Confirmar fecha uma reserva pendente ou contatada: completed vende os
// lotes, cancelled devolve-os à vitrine. Repetir o mesmo desfecho é no-op.
// PUT /api/reserva/confirmacao
func (h *ReservaHandler) Confirmar(c *fiber.Ctx) error {
	var in dto.ConfirmacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.ConfirmarReserva(c.Context(), in); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "reserva atualizada"})
}

// List lista reservas; ?minimal=true devolve a forma reduzida que o painel
// usa para a listagem, sem as linhas de lote.
// GET /api/reservas?status=&minimal=
func (h *ReservaHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	status := c.Query("status")
	usuarioID := c.Query("usuario_id")
	if usuarioID == "" {
		usuarioID = c.Query("userId") // nome usado pelo cliente web legado
	}

	if c.QueryBool("minimal") {
		resp, err := h.uc.ListarMinimal(c.Context(), status, usuarioID, page)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(resp)
	}
	resp, err := h.uc.Listar(c.Context(), status, usuarioID, page)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}

// GetByID obtém uma reserva com as linhas de lote e o valor total.
// GET /api/reservas/:id
func (h *ReservaHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingParam(c, "id")
	}
	reserva, err := h.uc.BuscarPorID(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(reserva)
}

// MarcarContatada registra que o cliente já foi contatado.
// PUT /api/reservas/:id/contatada
func (h *ReservaHandler) MarcarContatada(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingParam(c, "id")
	}
	if err := h.uc.MarcarContatada(c.Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "reserva marcada como contatada"})
}

// Comprovante gera e devolve o comprovante da reserva em PDF.
// GET /api/reservas/:id/comprovante
func (h *ReservaHandler) Comprovante(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingParam(c, "id")
	}
	pdf, err := h.uc.GerarComprovante(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="reserva-%s.pdf"`, id))
	return c.Send(pdf)
}
