package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jmoraesdev/lotemap-api/internal/domain"
	"github.com/jmoraesdev/lotemap-api/internal/domain/entity"
	"github.com/jmoraesdev/lotemap-api/internal/domain/repository"
)

var _ repository.ReservaRepository = (*ReservaRepo)(nil)

const reservaCols = `id, usuario_id, cliente_nome, cliente_email, cliente_telefone, cliente_cpf,
	vendedor_nome, vendedor_email, vendedor_telefone, vendedor_cpf,
	forma_pagamento, mensagem, status, created_at, updated_at`

// ReservaRepo implementação de ReservaRepository (usável com pool ou tx).
type ReservaRepo struct {
	q Querier
}

// NewReservaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewReservaRepository(q Querier) *ReservaRepo {
	return &ReservaRepo{q: q}
}

// Create insere a cabeça da reserva; as linhas vão por CreateLote.
func (r *ReservaRepo) Create(ctx context.Context, reserva *entity.Reserva) error {
	query := `
		INSERT INTO reservas (id, usuario_id, cliente_nome, cliente_email, cliente_telefone, cliente_cpf,
			vendedor_nome, vendedor_email, vendedor_telefone, vendedor_cpf,
			forma_pagamento, mensagem, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		reserva.ID, reserva.UsuarioID,
		reserva.ClienteNome, reserva.ClienteEmail, reserva.ClienteTelefone, reserva.ClienteCPF,
		reserva.VendedorNome, reserva.VendedorEmail, reserva.VendedorTelefone, reserva.VendedorCPF,
		reserva.FormaPagamento, reserva.Mensagem, reserva.Status,
		reserva.CreatedAt, reserva.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reserva: %w", err)
	}
	return nil
}

// CreateLote insere uma linha da reserva.
func (r *ReservaRepo) CreateLote(ctx context.Context, linha *entity.ReservaLote) error {
	query := `
		INSERT INTO reserva_lotes (id, reserva_id, lote_id, preco_acordado, entrada, parcelas)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		linha.ID, linha.ReservaID, linha.LoteID,
		linha.PrecoAcordado, linha.Entrada, linha.Parcelas,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: lote %s repetido na reserva", domain.ErrDuplicate, linha.LoteID)
		}
		return fmt.Errorf("insert reserva_lote: %w", err)
	}
	return nil
}

// GetByID busca uma reserva (sem as linhas); nil sem erro quando não existe.
func (r *ReservaRepo) GetByID(ctx context.Context, id string) (*entity.Reserva, error) {
	query := `SELECT ` + reservaCols + ` FROM reservas WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByIDForUpdate busca a reserva bloqueando a linha (SELECT FOR UPDATE).
func (r *ReservaRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Reserva, error) {
	query := `SELECT ` + reservaCols + ` FROM reservas WHERE id = $1 FOR UPDATE`
	return r.getOne(ctx, query, id)
}

func (r *ReservaRepo) getOne(ctx context.Context, query, id string) (*entity.Reserva, error) {
	reserva, err := scanReserva(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reserva: %w", err)
	}
	return reserva, nil
}

// GetLotes devolve as linhas de uma reserva.
func (r *ReservaRepo) GetLotes(ctx context.Context, reservaID string) ([]*entity.ReservaLote, error) {
	query := `
		SELECT id, reserva_id, lote_id, preco_acordado, entrada, parcelas
		FROM reserva_lotes
		WHERE reserva_id = $1
		ORDER BY lote_id`
	rows, err := r.q.Query(ctx, query, reservaID)
	if err != nil {
		return nil, fmt.Errorf("list reserva_lotes: %w", err)
	}
	defer rows.Close()
	var list []*entity.ReservaLote
	for rows.Next() {
		var l entity.ReservaLote
		if err := rows.Scan(&l.ID, &l.ReservaID, &l.LoteID, &l.PrecoAcordado, &l.Entrada, &l.Parcelas); err != nil {
			return nil, fmt.Errorf("scan reserva_lote: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// List lista reservas com filtros opcionais e devolve também o total.
func (r *ReservaRepo) List(ctx context.Context, f repository.ReservaFilter) ([]*entity.Reserva, int, error) {
	var total int
	countQuery := `
		SELECT count(*) FROM reservas
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR usuario_id = $2)`
	if err := r.q.QueryRow(ctx, countQuery, f.Status, f.UsuarioID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count reservas: %w", err)
	}

	query := `
		SELECT ` + reservaCols + `
		FROM reservas
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR usuario_id = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, f.Status, f.UsuarioID, f.Limit, f.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list reservas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Reserva
	for rows.Next() {
		reserva, err := scanReserva(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan reserva: %w", err)
		}
		list = append(list, reserva)
	}
	return list, total, rows.Err()
}

// UpdateStatus muda o status da reserva.
func (r *ReservaRepo) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE reservas SET status = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update status reserva: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanReserva(row pgx.Row) (*entity.Reserva, error) {
	var res entity.Reserva
	err := row.Scan(
		&res.ID, &res.UsuarioID,
		&res.ClienteNome, &res.ClienteEmail, &res.ClienteTelefone, &res.ClienteCPF,
		&res.VendedorNome, &res.VendedorEmail, &res.VendedorTelefone, &res.VendedorCPF,
		&res.FormaPagamento, &res.Mensagem, &res.Status,
		&res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
