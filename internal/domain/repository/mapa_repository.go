package repository

import (
	"context"

	"github.com/jmoraesdev/lotemap-api/internal/domain/entity"
)

// MapaRepository define o porto de persistência para Mapa (loteamento).
type MapaRepository interface {
	Create(ctx context.Context, mapa *entity.Mapa) error
	GetByID(ctx context.Context, id string) (*entity.Mapa, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Mapa, error)
	Update(ctx context.Context, mapa *entity.Mapa) error
	Delete(ctx context.Context, id string) error
	// CountLotesComprometidos conta lotes reservados ou vendidos do mapa.
	// Usado para impedir a exclusão de mapas com vendas em andamento.
	CountLotesComprometidos(ctx context.Context, mapaID string) (int, error)
}
