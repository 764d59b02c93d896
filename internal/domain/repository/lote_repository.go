package repository

import (
	"context"

	"github.com/jmoraesdev/lotemap-api/internal/domain/entity"
)

// LoteRepository define o porto de persistência para Lote.
type LoteRepository interface {
	Create(ctx context.Context, lote *entity.Lote) error
	GetByID(ctx context.Context, id string) (*entity.Lote, error)
	// GetByIDsForUpdate busca os lotes informados bloqueando as linhas
	// (SELECT ... FOR UPDATE). Usar somente dentro de uma transação; a ordem
	// do resultado segue a ordem de ids. IDs inexistentes são omitidos.
	GetByIDsForUpdate(ctx context.Context, ids []string) ([]*entity.Lote, error)
	ListByMapa(ctx context.Context, mapaID string, limit, offset int) ([]*entity.Lote, error)
	ListByQuadra(ctx context.Context, quadraID string, limit, offset int) ([]*entity.Lote, error)
	// ListDisponiveis lista lotes com status available (vitrine pública).
	ListDisponiveis(ctx context.Context, mapaID string, limit, offset int) ([]*entity.Lote, error)
	Update(ctx context.Context, lote *entity.Lote) error
	// UpdateStatusBatch muda o status de todos os lotes informados.
	// Devolve o número de linhas afetadas.
	UpdateStatusBatch(ctx context.Context, ids []string, status string) (int, error)
	Delete(ctx context.Context, id string) error
}
