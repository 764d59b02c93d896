package reservation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmoraesdev/lotemap-api/internal/application/dto"
	"github.com/jmoraesdev/lotemap-api/internal/domain"
	"github.com/jmoraesdev/lotemap-api/internal/domain/entity"
)

// reservaPendente cria uma reserva via ReservarLotes e devolve o id.
func reservaPendente(t *testing.T, uc *UseCase, ids ...string) string {
	t.Helper()
	resp, err := uc.ReservarLotes(context.Background(), "", pedidoValido(ids...))
	require.NoError(t, err)
	return resp.PurchaseRequestID
}

func TestConfirmarReserva_Concluida(t *testing.T) {
	uc, loteRepo, reservaRepo, _, cache := novoUseCase(
		novoLote("l1", entity.LoteDisponivel, 80000),
		novoLote("l2", entity.LoteDisponivel, 95000),
	)
	id := reservaPendente(t, uc, "l1", "l2")
	cache.deleted = nil

	err := uc.ConfirmarReserva(context.Background(), dto.ConfirmacaoRequest{
		ReservationID: id,
		Status:        entity.ReservaConcluida,
		LotStatus:     entity.LoteVendido,
	})
	require.NoError(t, err)

	reserva, _ := reservaRepo.GetByID(context.Background(), id)
	assert.Equal(t, entity.ReservaConcluida, reserva.Status)
	for _, loteID := range []string{"l1", "l2"} {
		lote, _ := loteRepo.GetByID(context.Background(), loteID)
		assert.Equal(t, entity.LoteVendido, lote.Status)
	}
	assert.Contains(t, cache.deleted, CacheKeyLotesDisponiveis)
}

func TestConfirmarReserva_CanceladaLiberaLotes(t *testing.T) {
	uc, loteRepo, reservaRepo, _, _ := novoUseCase(
		novoLote("l1", entity.LoteDisponivel, 80000),
	)
	id := reservaPendente(t, uc, "l1")

	err := uc.ConfirmarReserva(context.Background(), dto.ConfirmacaoRequest{
		ReservationID: id,
		Status:        entity.ReservaCancelada,
		LotStatus:     entity.LoteDisponivel,
	})
	require.NoError(t, err)

	reserva, _ := reservaRepo.GetByID(context.Background(), id)
	assert.Equal(t, entity.ReservaCancelada, reserva.Status)
	lote, _ := loteRepo.GetByID(context.Background(), "l1")
	assert.Equal(t, entity.LoteDisponivel, lote.Status)

	// Lote liberado pode ser reservado de novo.
	_, err = uc.ReservarLotes(context.Background(), "", pedidoValido("l1"))
	assert.NoError(t, err)
}

func TestConfirmarReserva_ParStatusInvalido(t *testing.T) {
	casos := []struct {
		nome      string
		status    string
		lotStatus string
	}{
		{"desfecho desconhecido", "pending", entity.LoteVendido},
		{"completed com available", entity.ReservaConcluida, entity.LoteDisponivel},
		{"cancelled com sold", entity.ReservaCancelada, entity.LoteVendido},
		{"lotStatus vazio", entity.ReservaConcluida, ""},
	}
	for _, tc := range casos {
		t.Run(tc.nome, func(t *testing.T) {
			uc, _, _, tx, _ := novoUseCase(novoLote("l1", entity.LoteDisponivel, 80000))
			id := reservaPendente(t, uc, "l1")
			runsAntes := tx.runs

			err := uc.ConfirmarReserva(context.Background(), dto.ConfirmacaoRequest{
				ReservationID: id,
				Status:        tc.status,
				LotStatus:     tc.lotStatus,
			})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, runsAntes, tx.runs, "par inválido não deve abrir transação")
		})
	}
}

func TestConfirmarReserva_NaoEncontrada(t *testing.T) {
	uc, _, _, _, _ := novoUseCase()
	err := uc.ConfirmarReserva(context.Background(), dto.ConfirmacaoRequest{
		ReservationID: "nao-existe",
		Status:        entity.ReservaConcluida,
		LotStatus:     entity.LoteVendido,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConfirmarReserva_MesmoDesfechoEhNoOp(t *testing.T) {
	uc, loteRepo, _, _, _ := novoUseCase(novoLote("l1", entity.LoteDisponivel, 80000))
	id := reservaPendente(t, uc, "l1")

	req := dto.ConfirmacaoRequest{
		ReservationID: id,
		Status:        entity.ReservaConcluida,
		LotStatus:     entity.LoteVendido,
	}
	require.NoError(t, uc.ConfirmarReserva(context.Background(), req))
	require.NoError(t, uc.ConfirmarReserva(context.Background(), req))

	lote, _ := loteRepo.GetByID(context.Background(), "l1")
	assert.Equal(t, entity.LoteVendido, lote.Status)
}

func TestConfirmarReserva_DesfechoDiferenteDepoisDeFechadaConflita(t *testing.T) {
	uc, loteRepo, _, _, _ := novoUseCase(novoLote("l1", entity.LoteDisponivel, 80000))
	id := reservaPendente(t, uc, "l1")

	require.NoError(t, uc.ConfirmarReserva(context.Background(), dto.ConfirmacaoRequest{
		ReservationID: id,
		Status:        entity.ReservaConcluida,
		LotStatus:     entity.LoteVendido,
	}))

	err := uc.ConfirmarReserva(context.Background(), dto.ConfirmacaoRequest{
		ReservationID: id,
		Status:        entity.ReservaCancelada,
		LotStatus:     entity.LoteDisponivel,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	// O lote permanece vendido.
	lote, _ := loteRepo.GetByID(context.Background(), "l1")
	assert.Equal(t, entity.LoteVendido, lote.Status)
}

func TestConfirmarReserva_ContatadaAindaPodeSerConfirmada(t *testing.T) {
	uc, loteRepo, reservaRepo, _, _ := novoUseCase(novoLote("l1", entity.LoteDisponivel, 80000))
	id := reservaPendente(t, uc, "l1")

	require.NoError(t, uc.MarcarContatada(context.Background(), id))
	reserva, _ := reservaRepo.GetByID(context.Background(), id)
	assert.Equal(t, entity.ReservaContatada, reserva.Status)

	require.NoError(t, uc.ConfirmarReserva(context.Background(), dto.ConfirmacaoRequest{
		ReservationID: id,
		Status:        entity.ReservaConcluida,
		LotStatus:     entity.LoteVendido,
	}))
	lote, _ := loteRepo.GetByID(context.Background(), "l1")
	assert.Equal(t, entity.LoteVendido, lote.Status)
}

func TestMarcarContatada_SoDePendente(t *testing.T) {
	uc, _, _, _, _ := novoUseCase(novoLote("l1", entity.LoteDisponivel, 80000))
	id := reservaPendente(t, uc, "l1")

	require.NoError(t, uc.ConfirmarReserva(context.Background(), dto.ConfirmacaoRequest{
		ReservationID: id,
		Status:        entity.ReservaCancelada,
		LotStatus:     entity.LoteDisponivel,
	}))

	err := uc.MarcarContatada(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestMarcarContatada_NaoEncontrada(t *testing.T) {
	uc, _, _, _, _ := novoUseCase()
	assert.ErrorIs(t, uc.MarcarContatada(context.Background(), "x"), domain.ErrNotFound)
}
