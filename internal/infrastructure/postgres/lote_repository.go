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

var _ repository.LoteRepository = (*LoteRepo)(nil)

const loteCols = `id, mapa_id, quadra_id, numero, status, preco, area_m2, descricao, caracteristicas, created_at, updated_at`

// LoteRepo implementação de LoteRepository (usável com pool ou tx).
type LoteRepo struct {
	q Querier
}

// NewLoteRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewLoteRepository(q Querier) *LoteRepo {
	return &LoteRepo{q: q}
}

// Create insere um lote. Número duplicado na quadra (ou no mapa, para lotes
// sem quadra) devolve domain.ErrDuplicate.
func (r *LoteRepo) Create(ctx context.Context, lote *entity.Lote) error {
	query := `
		INSERT INTO lotes (id, mapa_id, quadra_id, numero, status, preco, area_m2, descricao, caracteristicas, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		lote.ID, lote.MapaID, lote.QuadraID, lote.Numero, lote.Status,
		lote.Preco, lote.AreaM2, lote.Descricao, lote.Caracteristicas,
		lote.CreatedAt, lote.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: numero %s", domain.ErrDuplicate, lote.Numero)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: mapa ou quadra inexistente", domain.ErrNotFound)
		}
		return fmt.Errorf("insert lote: %w", err)
	}
	return nil
}

// GetByID busca um lote; nil sem erro quando não existe.
func (r *LoteRepo) GetByID(ctx context.Context, id string) (*entity.Lote, error) {
	query := `SELECT ` + loteCols + ` FROM lotes WHERE id = $1`
	lote, err := scanLote(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lote: %w", err)
	}
	return lote, nil
}

// GetByIDsForUpdate busca e bloqueia os lotes informados (SELECT FOR UPDATE).
// IDs inexistentes são simplesmente omitidos do resultado.
func (r *LoteRepo) GetByIDsForUpdate(ctx context.Context, ids []string) ([]*entity.Lote, error) {
	query := `
		SELECT ` + loteCols + `
		FROM lotes
		WHERE id = ANY($1)
		ORDER BY array_position($1, id)
		FOR UPDATE`
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("lock lotes: %w", err)
	}
	defer rows.Close()
	return collectLotes(rows)
}

// ListByMapa lista os lotes de um mapa.
func (r *LoteRepo) ListByMapa(ctx context.Context, mapaID string, limit, offset int) ([]*entity.Lote, error) {
	query := `
		SELECT ` + loteCols + `
		FROM lotes
		WHERE mapa_id = $1
		ORDER BY numero
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, mapaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list lotes por mapa: %w", err)
	}
	defer rows.Close()
	return collectLotes(rows)
}

// ListByQuadra lista os lotes de uma quadra.
func (r *LoteRepo) ListByQuadra(ctx context.Context, quadraID string, limit, offset int) ([]*entity.Lote, error) {
	query := `
		SELECT ` + loteCols + `
		FROM lotes
		WHERE quadra_id = $1
		ORDER BY numero
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, quadraID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list lotes por quadra: %w", err)
	}
	defer rows.Close()
	return collectLotes(rows)
}

// ListDisponiveis lista lotes available; mapaID vazio lista de todos os mapas.
func (r *LoteRepo) ListDisponiveis(ctx context.Context, mapaID string, limit, offset int) ([]*entity.Lote, error) {
	query := `
		SELECT ` + loteCols + `
		FROM lotes
		WHERE status = 'available' AND ($1 = '' OR mapa_id = $1)
		ORDER BY mapa_id, numero
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, mapaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list lotes disponiveis: %w", err)
	}
	defer rows.Close()
	return collectLotes(rows)
}

// Update atualiza os campos editáveis do lote.
func (r *LoteRepo) Update(ctx context.Context, lote *entity.Lote) error {
	query := `
		UPDATE lotes
		SET numero = $2,
		    status = $3,
		    preco = $4,
		    area_m2 = $5,
		    descricao = $6,
		    caracteristicas = $7,
		    updated_at = $8
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		lote.ID, lote.Numero, lote.Status, lote.Preco, lote.AreaM2,
		lote.Descricao, lote.Caracteristicas, lote.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: numero %s", domain.ErrDuplicate, lote.Numero)
		}
		return fmt.Errorf("update lote: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatusBatch muda o status de todos os lotes informados e devolve o
// número de linhas afetadas.
func (r *LoteRepo) UpdateStatusBatch(ctx context.Context, ids []string, status string) (int, error) {
	query := `UPDATE lotes SET status = $2, updated_at = now() WHERE id = ANY($1)`
	tag, err := r.q.Exec(ctx, query, ids, status)
	if err != nil {
		return 0, fmt.Errorf("update status lotes: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// Delete exclui um lote.
func (r *LoteRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM lotes WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: lote referenciado por reservas", domain.ErrConflict)
		}
		return fmt.Errorf("delete lote: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanLote(row pgx.Row) (*entity.Lote, error) {
	var l entity.Lote
	err := row.Scan(
		&l.ID, &l.MapaID, &l.QuadraID, &l.Numero, &l.Status,
		&l.Preco, &l.AreaM2, &l.Descricao, &l.Caracteristicas,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func collectLotes(rows pgx.Rows) ([]*entity.Lote, error) {
	var list []*entity.Lote
	for rows.Next() {
		l, err := scanLote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lote: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}
