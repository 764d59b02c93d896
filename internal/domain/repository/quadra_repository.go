package repository

import (
	"context"

	"github.com/jmoraesdev/lotemap-api/internal/domain/entity"
)

// QuadraRepository define o porto de persistência para Quadra.
type QuadraRepository interface {
	Create(ctx context.Context, quadra *entity.Quadra) error
	GetByID(ctx context.Context, id string) (*entity.Quadra, error)
	ListByMapa(ctx context.Context, mapaID string, limit, offset int) ([]*entity.Quadra, error)
	Update(ctx context.Context, quadra *entity.Quadra) error
	Delete(ctx context.Context, id string) error
	// CountLotesComprometidos conta lotes reservados ou vendidos da quadra.
	CountLotesComprometidos(ctx context.Context, quadraID string) (int, error)
}
