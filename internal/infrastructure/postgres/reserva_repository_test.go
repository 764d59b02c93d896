package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmoraesdev/lotemap-api/internal/domain"
	"github.com/jmoraesdev/lotemap-api/internal/domain/entity"
	"github.com/jmoraesdev/lotemap-api/internal/domain/repository"
)

var reservaColsList = []string{
	"id", "usuario_id", "cliente_nome", "cliente_email", "cliente_telefone", "cliente_cpf",
	"vendedor_nome", "vendedor_email", "vendedor_telefone", "vendedor_cpf",
	"forma_pagamento", "mensagem", "status", "created_at", "updated_at",
}

func reservaRow(id, status string) []any {
	now := time.Now()
	return []any{
		id, nil, "Maria Souza", "maria@example.com", "+55 11 99999-0001", "52998224725",
		"Carlos Lima", "", "", "",
		"financiamento", "", status, now, now,
	}
}

func TestReservaRepo_CreateComLinhas(t *testing.T) {
	mock := novoMock(t)
	repo := NewReservaRepository(mock)

	now := time.Now()
	reserva := &entity.Reserva{
		ID:              "r1",
		ClienteNome:     "Maria Souza",
		ClienteEmail:    "maria@example.com",
		ClienteTelefone: "+55 11 99999-0001",
		ClienteCPF:      "52998224725",
		VendedorNome:    "Carlos Lima",
		FormaPagamento:  "financiamento",
		Status:          entity.ReservaPendente,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	mock.ExpectExec(`INSERT INTO reservas`).
		WithArgs(reserva.ID, reserva.UsuarioID,
			reserva.ClienteNome, reserva.ClienteEmail, reserva.ClienteTelefone, reserva.ClienteCPF,
			reserva.VendedorNome, reserva.VendedorEmail, reserva.VendedorTelefone, reserva.VendedorCPF,
			reserva.FormaPagamento, reserva.Mensagem, reserva.Status,
			reserva.CreatedAt, reserva.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), reserva))

	linha := &entity.ReservaLote{
		ID:            "rl1",
		ReservaID:     "r1",
		LoteID:        "l1",
		PrecoAcordado: decimal.NewFromInt(75000),
		Entrada:       decimal.NewFromInt(15000),
		Parcelas:      48,
	}
	mock.ExpectExec(`INSERT INTO reserva_lotes`).
		WithArgs(linha.ID, linha.ReservaID, linha.LoteID,
			linha.PrecoAcordado, linha.Entrada, linha.Parcelas).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.CreateLote(context.Background(), linha))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservaRepo_GetByIDForUpdate(t *testing.T) {
	mock := novoMock(t)
	repo := NewReservaRepository(mock)

	mock.ExpectQuery(`SELECT .+ FROM reservas WHERE id = \$1 FOR UPDATE`).
		WithArgs("r1").
		WillReturnRows(pgxmock.NewRows(reservaColsList).AddRow(reservaRow("r1", entity.ReservaPendente)...))

	reserva, err := repo.GetByIDForUpdate(context.Background(), "r1")
	require.NoError(t, err)
	require.NotNil(t, reserva)
	assert.Equal(t, entity.ReservaPendente, reserva.Status)
	assert.Nil(t, reserva.UsuarioID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservaRepo_UpdateStatus_NaoEncontrada(t *testing.T) {
	mock := novoMock(t)
	repo := NewReservaRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE reservas SET status = $2, updated_at = now() WHERE id = $1`)).
		WithArgs("nao-existe", entity.ReservaConcluida).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateStatus(context.Background(), "nao-existe", entity.ReservaConcluida)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservaRepo_List_FiltroETotal(t *testing.T) {
	mock := novoMock(t)
	repo := NewReservaRepository(mock)

	f := repository.ReservaFilter{Status: entity.ReservaPendente, Limit: 20, Offset: 0}

	mock.ExpectQuery(`SELECT count\(\*\) FROM reservas`).
		WithArgs(f.Status, f.UsuarioID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))

	mock.ExpectQuery(`SELECT .+ FROM reservas\s+WHERE .+ ORDER BY created_at DESC\s+LIMIT \$3 OFFSET \$4`).
		WithArgs(f.Status, f.UsuarioID, f.Limit, f.Offset).
		WillReturnRows(pgxmock.NewRows(reservaColsList).
			AddRow(reservaRow("r1", entity.ReservaPendente)...).
			AddRow(reservaRow("r2", entity.ReservaPendente)...))

	list, total, err := repo.List(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, 7, total)
	require.Len(t, list, 2)
	assert.Equal(t, "r2", list[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservaRepo_GetLotes(t *testing.T) {
	mock := novoMock(t)
	repo := NewReservaRepository(mock)

	mock.ExpectQuery(`SELECT id, reserva_id, lote_id, preco_acordado, entrada, parcelas\s+FROM reserva_lotes`).
		WithArgs("r1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "reserva_id", "lote_id", "preco_acordado", "entrada", "parcelas"}).
			AddRow("rl1", "r1", "l1", decimal.NewFromInt(75000), decimal.NewFromInt(15000), 48))

	linhas, err := repo.GetLotes(context.Background(), "r1")
	require.NoError(t, err)
	require.Len(t, linhas, 1)
	assert.Equal(t, 48, linhas[0].Parcelas)
	assert.True(t, linhas[0].PrecoAcordado.Equal(decimal.NewFromInt(75000)))
	assert.NoError(t, mock.ExpectationsWereMet())
}
