package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jmoraesdev/lotemap-api/internal/application/dto"
	"github.com/jmoraesdev/lotemap-api/internal/domain"
	"github.com/jmoraesdev/lotemap-api/internal/domain/entity"
	"github.com/jmoraesdev/lotemap-api/internal/domain/repository"
)

// QuadraUseCase CRUD de quadras dentro de um mapa.
type QuadraUseCase struct {
	repo     repository.QuadraRepository
	mapaRepo repository.MapaRepository
}

// NewQuadraUseCase constrói o caso de uso.
func NewQuadraUseCase(repo repository.QuadraRepository, mapaRepo repository.MapaRepository) *QuadraUseCase {
	return &QuadraUseCase{repo: repo, mapaRepo: mapaRepo}
}

// Create cria uma quadra; o mapa precisa existir.
func (uc *QuadraUseCase) Create(ctx context.Context, in dto.CreateQuadraRequest) (*dto.QuadraResponse, error) {
	if in.MapaID == "" || in.Nome == "" {
		return nil, domain.ErrInvalidInput
	}
	mapa, err := uc.mapaRepo.GetByID(ctx, in.MapaID)
	if err != nil {
		return nil, err
	}
	if mapa == nil {
		return nil, fmt.Errorf("%w: mapa %s", domain.ErrNotFound, in.MapaID)
	}
	now := time.Now()
	quadra := &entity.Quadra{
		ID:        uuid.New().String(),
		MapaID:    in.MapaID,
		Nome:      in.Nome,
		Descricao: in.Descricao,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, quadra); err != nil {
		return nil, err
	}
	return toQuadraResponse(quadra), nil
}

// GetByID busca uma quadra.
func (uc *QuadraUseCase) GetByID(ctx context.Context, id string) (*dto.QuadraResponse, error) {
	quadra, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quadra == nil {
		return nil, domain.ErrNotFound
	}
	return toQuadraResponse(quadra), nil
}

// ListByMapa lista as quadras de um mapa.
func (uc *QuadraUseCase) ListByMapa(ctx context.Context, mapaID string, page dto.PageRequest) (*dto.QuadraListResponse, error) {
	if mapaID == "" {
		return nil, domain.ErrInvalidInput
	}
	limit, offset := page.DefaultPage()
	quadras, err := uc.repo.ListByMapa(ctx, mapaID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.QuadraListResponse{
		Quadras: make([]dto.QuadraResponse, 0, len(quadras)),
		Meta:    dto.PageResponse{Page: page.Page, Limit: limit, Total: len(quadras)},
	}
	for _, q := range quadras {
		out.Quadras = append(out.Quadras, *toQuadraResponse(q))
	}
	return out, nil
}

// Update atualiza nome e descrição da quadra.
func (uc *QuadraUseCase) Update(ctx context.Context, id string, in dto.UpdateQuadraRequest) (*dto.QuadraResponse, error) {
	quadra, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quadra == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nome != "" {
		quadra.Nome = in.Nome
	}
	quadra.Descricao = in.Descricao
	quadra.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, quadra); err != nil {
		return nil, err
	}
	return toQuadraResponse(quadra), nil
}

// Delete exclui uma quadra sem lotes reservados ou vendidos.
func (uc *QuadraUseCase) Delete(ctx context.Context, id string) error {
	quadra, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quadra == nil {
		return domain.ErrNotFound
	}
	n, err := uc.repo.CountLotesComprometidos(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: quadra com %d lotes reservados ou vendidos", domain.ErrConflict, n)
	}
	return uc.repo.Delete(ctx, id)
}

func toQuadraResponse(q *entity.Quadra) *dto.QuadraResponse {
	return &dto.QuadraResponse{
		ID:        q.ID,
		MapaID:    q.MapaID,
		Nome:      q.Nome,
		Descricao: q.Descricao,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}
