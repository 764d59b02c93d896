package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jmoraesdev/lotemap-api/internal/application/dto"
	"github.com/jmoraesdev/lotemap-api/internal/application/reservation"
	"github.com/jmoraesdev/lotemap-api/internal/domain"
)

// errorJSON traduz os erros sentinela do domínio para status HTTP.
// Erros não mapeados viram 500 sem expor a mensagem interna.
func errorJSON(c *fiber.Ctx, err error) error {
	var indisponiveis *reservation.LotesIndisponiveisError
	if errors.As(err, &indisponiveis) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "LOTES_INDISPONIVEIS",
			Message: "um ou mais lotes não estão disponíveis para reserva",
			Lotes:   indisponiveis.LoteIDs,
		})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciais inválidas"})
	case errors.Is(err, domain.ErrUsuarioNaoAprovado):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "PENDING_APPROVAL", Message: "cadastro aguardando aprovação"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acesso negado"})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrCPFAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CPF_EXISTS", Message: "o CPF já está cadastrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrLoteIndisponivel):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "LOTES_INDISPONIVEIS", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro interno"})
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
}

func missingParam(c *fiber.Ctx, name string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: name + " requerido"})
}
