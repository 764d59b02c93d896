package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jmoraesdev/lotemap-api/internal/application/dto"
	"github.com/jmoraesdev/lotemap-api/internal/application/reservation"
	"github.com/jmoraesdev/lotemap-api/internal/domain"
	"github.com/jmoraesdev/lotemap-api/internal/domain/entity"
	"github.com/jmoraesdev/lotemap-api/internal/domain/repository"
)

// TTL do cache da vitrine de lotes disponíveis. Curto de propósito: a
// invalidação nas transações de reserva já cobre o caso comum.
const lotesDisponiveisTTL = 30 * time.Second

// LoteUseCase CRUD de lotes e o check público de disponibilidade.
type LoteUseCase struct {
	repo       repository.LoteRepository
	mapaRepo   repository.MapaRepository
	quadraRepo repository.QuadraRepository
	cache      Cache // opcional (nil desativa)
}

// NewLoteUseCase constrói o caso de uso.
func NewLoteUseCase(
	repo repository.LoteRepository,
	mapaRepo repository.MapaRepository,
	quadraRepo repository.QuadraRepository,
	cache Cache,
) *LoteUseCase {
	return &LoteUseCase{repo: repo, mapaRepo: mapaRepo, quadraRepo: quadraRepo, cache: cache}
}

// Create cria um lote available. A quadra, quando informada, precisa existir e
// pertencer ao mapa. Número duplicado na quadra devolve ErrDuplicate.
func (uc *LoteUseCase) Create(ctx context.Context, in dto.CreateLoteRequest) (*dto.LoteResponse, error) {
	if in.MapaID == "" || in.Numero == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Preco.IsNegative() || in.AreaM2.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	mapa, err := uc.mapaRepo.GetByID(ctx, in.MapaID)
	if err != nil {
		return nil, err
	}
	if mapa == nil {
		return nil, fmt.Errorf("%w: mapa %s", domain.ErrNotFound, in.MapaID)
	}
	var quadraID *string
	if in.QuadraID != "" {
		quadra, err := uc.quadraRepo.GetByID(ctx, in.QuadraID)
		if err != nil {
			return nil, err
		}
		if quadra == nil {
			return nil, fmt.Errorf("%w: quadra %s", domain.ErrNotFound, in.QuadraID)
		}
		if quadra.MapaID != in.MapaID {
			return nil, fmt.Errorf("%w: quadra %s não pertence ao mapa %s", domain.ErrInvalidInput, in.QuadraID, in.MapaID)
		}
		q := in.QuadraID
		quadraID = &q
	}
	now := time.Now()
	lote := &entity.Lote{
		ID:              uuid.New().String(),
		MapaID:          in.MapaID,
		QuadraID:        quadraID,
		Numero:          in.Numero,
		Status:          entity.LoteDisponivel,
		Preco:           in.Preco,
		AreaM2:          in.AreaM2,
		Descricao:       in.Descricao,
		Caracteristicas: in.Caracteristicas,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, lote); err != nil {
		return nil, err
	}
	uc.invalidateCache(ctx)
	return toLoteResponse(lote), nil
}

// GetByID busca um lote.
func (uc *LoteUseCase) GetByID(ctx context.Context, id string) (*dto.LoteResponse, error) {
	lote, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lote == nil {
		return nil, domain.ErrNotFound
	}
	return toLoteResponse(lote), nil
}

// VerificarDisponibilidade é o check público consumido pelo widget do mapa.
// Lote inexistente devolve ErrNotFound em vez de valid=false, para o cliente
// distinguir id errado de lote ocupado.
func (uc *LoteUseCase) VerificarDisponibilidade(ctx context.Context, id string) (*dto.LoteValidoResponse, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	lote, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lote == nil {
		return nil, domain.ErrNotFound
	}
	out := &dto.LoteValidoResponse{}
	if lote.Status == entity.LoteDisponivel {
		out.IsAvailable = 1
		out.Valid = true
	}
	return out, nil
}

// ListByMapa lista os lotes de um mapa.
func (uc *LoteUseCase) ListByMapa(ctx context.Context, mapaID string, page dto.PageRequest) (*dto.LoteListResponse, error) {
	if mapaID == "" {
		return nil, domain.ErrInvalidInput
	}
	limit, offset := page.DefaultPage()
	lotes, err := uc.repo.ListByMapa(ctx, mapaID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toLoteListResponse(lotes, page.Page, limit), nil
}

// ListByQuadra lista os lotes de uma quadra.
func (uc *LoteUseCase) ListByQuadra(ctx context.Context, quadraID string, page dto.PageRequest) (*dto.LoteListResponse, error) {
	if quadraID == "" {
		return nil, domain.ErrInvalidInput
	}
	limit, offset := page.DefaultPage()
	lotes, err := uc.repo.ListByQuadra(ctx, quadraID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toLoteListResponse(lotes, page.Page, limit), nil
}

// ListDisponiveis lista a vitrine pública de lotes available. A primeira
// página sem filtro de mapa é servida do cache quando possível.
func (uc *LoteUseCase) ListDisponiveis(ctx context.Context, mapaID string, page dto.PageRequest) (*dto.LoteListResponse, error) {
	limit, offset := page.DefaultPage()
	cacheable := uc.cache != nil && mapaID == "" && offset == 0

	if cacheable {
		var cached dto.LoteListResponse
		if hit, err := uc.cache.GetJSON(ctx, reservation.CacheKeyLotesDisponiveis, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	lotes, err := uc.repo.ListDisponiveis(ctx, mapaID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := toLoteListResponse(lotes, page.Page, limit)

	if cacheable {
		_ = uc.cache.SetJSON(ctx, reservation.CacheKeyLotesDisponiveis, out, lotesDisponiveisTTL)
	}
	return out, nil
}

// Update atualiza um lote. Status preenchido é um override administrativo e
// precisa ser um status reconhecido.
func (uc *LoteUseCase) Update(ctx context.Context, id string, in dto.UpdateLoteRequest) (*dto.LoteResponse, error) {
	lote, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lote == nil {
		return nil, domain.ErrNotFound
	}
	if in.Numero != "" {
		lote.Numero = in.Numero
	}
	if in.Status != "" {
		if !entity.ValidLoteStatus(in.Status) {
			return nil, fmt.Errorf("%w: status %q", domain.ErrInvalidInput, in.Status)
		}
		lote.Status = in.Status
	}
	if !in.Preco.IsZero() {
		if in.Preco.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		lote.Preco = in.Preco
	}
	if !in.AreaM2.IsZero() {
		if in.AreaM2.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		lote.AreaM2 = in.AreaM2
	}
	lote.Descricao = in.Descricao
	if in.Caracteristicas != nil {
		lote.Caracteristicas = in.Caracteristicas
	}
	lote.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, lote); err != nil {
		return nil, err
	}
	uc.invalidateCache(ctx)
	return toLoteResponse(lote), nil
}

// Delete exclui um lote que não esteja reservado nem vendido.
func (uc *LoteUseCase) Delete(ctx context.Context, id string) error {
	lote, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lote == nil {
		return domain.ErrNotFound
	}
	if lote.Status == entity.LoteReservado || lote.Status == entity.LoteVendido {
		return fmt.Errorf("%w: lote %s está %s", domain.ErrConflict, id, lote.Status)
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidateCache(ctx)
	return nil
}

func (uc *LoteUseCase) invalidateCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	_ = uc.cache.Delete(ctx, reservation.CacheKeyLotesDisponiveis, reservation.CacheKeyDashboard)
}

func toLoteResponse(l *entity.Lote) *dto.LoteResponse {
	out := &dto.LoteResponse{
		ID:              l.ID,
		MapaID:          l.MapaID,
		Numero:          l.Numero,
		Status:          l.Status,
		Preco:           l.Preco,
		AreaM2:          l.AreaM2,
		Descricao:       l.Descricao,
		Caracteristicas: l.Caracteristicas,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
	if l.QuadraID != nil {
		out.QuadraID = *l.QuadraID
	}
	return out
}

func toLoteListResponse(lotes []*entity.Lote, page, limit int) *dto.LoteListResponse {
	out := &dto.LoteListResponse{
		Lotes: make([]dto.LoteResponse, 0, len(lotes)),
		Meta:  dto.PageResponse{Page: page, Limit: limit, Total: len(lotes)},
	}
	for _, l := range lotes {
		out.Lotes = append(out.Lotes, *toLoteResponse(l))
	}
	return out
}
