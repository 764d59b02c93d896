package reservation

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmoraesdev/lotemap-api/internal/application/dto"
	"github.com/jmoraesdev/lotemap-api/internal/domain"
	"github.com/jmoraesdev/lotemap-api/internal/domain/entity"
)

func TestBuscarPorID_ComLinhasEValorTotal(t *testing.T) {
	uc, _, _, _, _ := novoUseCase(
		novoLote("l1", entity.LoteDisponivel, 80000),
		novoLote("l2", entity.LoteDisponivel, 95000),
	)
	id := reservaPendente(t, uc, "l1", "l2")

	resp, err := uc.BuscarPorID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, resp.ID)
	assert.Equal(t, entity.ReservaPendente, resp.Status)
	require.Len(t, resp.Lotes, 2)
	assert.True(t, resp.ValorTotal.Equal(decimal.NewFromInt(175000)),
		"valor total deve somar o preço acordado das linhas, obteve %s", resp.ValorTotal)
}

func TestBuscarPorID_NaoEncontrada(t *testing.T) {
	uc, _, _, _, _ := novoUseCase()
	_, err := uc.BuscarPorID(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.BuscarPorID(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListar_FiltraPorStatus(t *testing.T) {
	uc, _, _, _, _ := novoUseCase(
		novoLote("l1", entity.LoteDisponivel, 80000),
		novoLote("l2", entity.LoteDisponivel, 95000),
	)
	id1 := reservaPendente(t, uc, "l1")
	_ = reservaPendente(t, uc, "l2")

	require.NoError(t, uc.ConfirmarReserva(context.Background(), dto.ConfirmacaoRequest{
		ReservationID: id1,
		Status:        entity.ReservaConcluida,
		LotStatus:     entity.LoteVendido,
	}))

	out, err := uc.Listar(context.Background(), entity.ReservaConcluida, "", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Reservas, 1)
	assert.Equal(t, id1, out.Reservas[0].ID)
	assert.Equal(t, 1, out.Meta.Total)

	_, err = uc.Listar(context.Background(), "invalido", "", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListarMinimal_FormaReduzida(t *testing.T) {
	uc, _, _, _, _ := novoUseCase(
		novoLote("l1", entity.LoteDisponivel, 80000),
		novoLote("l2", entity.LoteDisponivel, 95000),
	)
	_ = reservaPendente(t, uc, "l1", "l2")

	out, err := uc.ListarMinimal(context.Background(), "", "", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Reservas, 1)
	assert.Equal(t, "Maria Souza", out.Reservas[0].ClienteNome)
	assert.Equal(t, 2, out.Reservas[0].TotalLotes)
}
