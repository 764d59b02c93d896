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

var _ repository.QuadraRepository = (*QuadraRepo)(nil)

// QuadraRepo implementação de QuadraRepository (usável com pool ou tx).
type QuadraRepo struct {
	q Querier
}

// NewQuadraRepository constrói o adaptador.
func NewQuadraRepository(q Querier) *QuadraRepo {
	return &QuadraRepo{q: q}
}

// Create insere uma quadra.
func (r *QuadraRepo) Create(ctx context.Context, quadra *entity.Quadra) error {
	query := `
		INSERT INTO quadras (id, mapa_id, nome, descricao, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		quadra.ID, quadra.MapaID, quadra.Nome, quadra.Descricao,
		quadra.CreatedAt, quadra.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: mapa %s", domain.ErrNotFound, quadra.MapaID)
		}
		return fmt.Errorf("insert quadra: %w", err)
	}
	return nil
}

// GetByID busca uma quadra; nil sem erro quando não existe.
func (r *QuadraRepo) GetByID(ctx context.Context, id string) (*entity.Quadra, error) {
	query := `SELECT id, mapa_id, nome, descricao, created_at, updated_at FROM quadras WHERE id = $1`
	var q entity.Quadra
	err := r.q.QueryRow(ctx, query, id).Scan(
		&q.ID, &q.MapaID, &q.Nome, &q.Descricao, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quadra: %w", err)
	}
	return &q, nil
}

// ListByMapa lista as quadras de um mapa.
func (r *QuadraRepo) ListByMapa(ctx context.Context, mapaID string, limit, offset int) ([]*entity.Quadra, error) {
	query := `
		SELECT id, mapa_id, nome, descricao, created_at, updated_at
		FROM quadras
		WHERE mapa_id = $1
		ORDER BY nome
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, mapaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list quadras: %w", err)
	}
	defer rows.Close()
	var list []*entity.Quadra
	for rows.Next() {
		var q entity.Quadra
		if err := rows.Scan(&q.ID, &q.MapaID, &q.Nome, &q.Descricao, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan quadra: %w", err)
		}
		list = append(list, &q)
	}
	return list, rows.Err()
}

// Update atualiza nome e descrição.
func (r *QuadraRepo) Update(ctx context.Context, quadra *entity.Quadra) error {
	query := `UPDATE quadras SET nome = $2, descricao = $3, updated_at = $4 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, quadra.ID, quadra.Nome, quadra.Descricao, quadra.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update quadra: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete exclui uma quadra; os lotes dela ficam com quadra_id nulo.
func (r *QuadraRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM quadras WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quadra: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountLotesComprometidos conta lotes reservados ou vendidos da quadra.
func (r *QuadraRepo) CountLotesComprometidos(ctx context.Context, quadraID string) (int, error) {
	query := `SELECT count(*) FROM lotes WHERE quadra_id = $1 AND status IN ('reserved', 'sold')`
	var n int
	if err := r.q.QueryRow(ctx, query, quadraID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count lotes comprometidos: %w", err)
	}
	return n, nil
}
