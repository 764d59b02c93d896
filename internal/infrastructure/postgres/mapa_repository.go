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

var _ repository.MapaRepository = (*MapaRepo)(nil)

const mapaCols = `id, nome, descricao, imagem_objeto, largura_px, altura_px, created_at, updated_at`

// MapaRepo implementação de MapaRepository (usável com pool ou tx).
type MapaRepo struct {
	q Querier
}

// NewMapaRepository constrói o adaptador.
func NewMapaRepository(q Querier) *MapaRepo {
	return &MapaRepo{q: q}
}

// Create insere um mapa.
func (r *MapaRepo) Create(ctx context.Context, mapa *entity.Mapa) error {
	query := `
		INSERT INTO mapas (id, nome, descricao, imagem_objeto, largura_px, altura_px, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		mapa.ID, mapa.Nome, mapa.Descricao, mapa.ImagemObjeto,
		mapa.LarguraPx, mapa.AlturaPx, mapa.CreatedAt, mapa.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert mapa: %w", err)
	}
	return nil
}

// GetByID busca um mapa; nil sem erro quando não existe.
func (r *MapaRepo) GetByID(ctx context.Context, id string) (*entity.Mapa, error) {
	query := `SELECT ` + mapaCols + ` FROM mapas WHERE id = $1`
	var m entity.Mapa
	err := r.q.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Nome, &m.Descricao, &m.ImagemObjeto,
		&m.LarguraPx, &m.AlturaPx, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mapa: %w", err)
	}
	return &m, nil
}

// List lista mapas com paginação.
func (r *MapaRepo) List(ctx context.Context, limit, offset int) ([]*entity.Mapa, error) {
	query := `SELECT ` + mapaCols + ` FROM mapas ORDER BY nome LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list mapas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Mapa
	for rows.Next() {
		var m entity.Mapa
		if err := rows.Scan(
			&m.ID, &m.Nome, &m.Descricao, &m.ImagemObjeto,
			&m.LarguraPx, &m.AlturaPx, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan mapa: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update atualiza os campos do mapa.
func (r *MapaRepo) Update(ctx context.Context, mapa *entity.Mapa) error {
	query := `
		UPDATE mapas
		SET nome = $2,
		    descricao = $3,
		    imagem_objeto = $4,
		    largura_px = $5,
		    altura_px = $6,
		    updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		mapa.ID, mapa.Nome, mapa.Descricao, mapa.ImagemObjeto,
		mapa.LarguraPx, mapa.AlturaPx, mapa.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update mapa: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete exclui um mapa; lotes e quadras caem por cascade.
func (r *MapaRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM mapas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete mapa: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountLotesComprometidos conta lotes reservados ou vendidos do mapa.
func (r *MapaRepo) CountLotesComprometidos(ctx context.Context, mapaID string) (int, error) {
	query := `SELECT count(*) FROM lotes WHERE mapa_id = $1 AND status IN ('reserved', 'sold')`
	var n int
	if err := r.q.QueryRow(ctx, query, mapaID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count lotes comprometidos: %w", err)
	}
	return n, nil
}
