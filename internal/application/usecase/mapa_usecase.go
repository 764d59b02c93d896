package usecase

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jmoraesdev/lotemap-api/internal/application/dto"
	"github.com/jmoraesdev/lotemap-api/internal/domain"
	"github.com/jmoraesdev/lotemap-api/internal/domain/entity"
	"github.com/jmoraesdev/lotemap-api/internal/domain/repository"
)

// Validade das URLs presigned das imagens de mapa.
const imagemURLExpiry = 15 * time.Minute

// MapaUseCase CRUD de mapas (loteamentos) e gestão da imagem de fundo.
// O imageStore é opcional: sem ele os mapas funcionam sem imagem.
type MapaUseCase struct {
	repo       repository.MapaRepository
	imageStore ImageStore
}

// NewMapaUseCase constrói o caso de uso.
func NewMapaUseCase(repo repository.MapaRepository, imageStore ImageStore) *MapaUseCase {
	return &MapaUseCase{repo: repo, imageStore: imageStore}
}

// Create cria um mapa.
func (uc *MapaUseCase) Create(ctx context.Context, in dto.CreateMapaRequest) (*dto.MapaResponse, error) {
	if in.Nome == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.LarguraPx < 0 || in.AlturaPx < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	mapa := &entity.Mapa{
		ID:        uuid.New().String(),
		Nome:      in.Nome,
		Descricao: in.Descricao,
		LarguraPx: in.LarguraPx,
		AlturaPx:  in.AlturaPx,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, mapa); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, mapa), nil
}

// GetByID busca um mapa; a resposta traz URL presigned da imagem, se houver.
func (uc *MapaUseCase) GetByID(ctx context.Context, id string) (*dto.MapaResponse, error) {
	mapa, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mapa == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(ctx, mapa), nil
}

// List lista mapas com paginação.
func (uc *MapaUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.MapaListResponse, error) {
	limit, offset := page.DefaultPage()
	mapas, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.MapaListResponse{
		Mapas: make([]dto.MapaResponse, 0, len(mapas)),
		Meta:  dto.PageResponse{Page: page.Page, Limit: limit, Total: len(mapas)},
	}
	for _, m := range mapas {
		out.Mapas = append(out.Mapas, *uc.toResponse(ctx, m))
	}
	return out, nil
}

// Update atualiza nome, descrição e dimensões do mapa.
func (uc *MapaUseCase) Update(ctx context.Context, id string, in dto.UpdateMapaRequest) (*dto.MapaResponse, error) {
	mapa, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mapa == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nome != "" {
		mapa.Nome = in.Nome
	}
	mapa.Descricao = in.Descricao
	if in.LarguraPx > 0 {
		mapa.LarguraPx = in.LarguraPx
	}
	if in.AlturaPx > 0 {
		mapa.AlturaPx = in.AlturaPx
	}
	mapa.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, mapa); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, mapa), nil
}

// UploadImagem substitui a imagem de fundo do mapa. A imagem anterior é
// removida do bucket depois que a nova fica persistida.
func (uc *MapaUseCase) UploadImagem(ctx context.Context, id, filename, contentType string, r io.Reader, size int64) (*dto.MapaResponse, error) {
	if uc.imageStore == nil {
		return nil, fmt.Errorf("%w: armazenamento de imagens desativado", domain.ErrInvalidInput)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: content-type %q não é imagem", domain.ErrInvalidInput, contentType)
	}
	mapa, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mapa == nil {
		return nil, domain.ErrNotFound
	}

	objectName := fmt.Sprintf("mapas/%s/%s%s", mapa.ID, uuid.New().String(), strings.ToLower(path.Ext(filename)))
	if err := uc.imageStore.Upload(ctx, objectName, r, size, contentType); err != nil {
		return nil, err
	}

	anterior := mapa.ImagemObjeto
	mapa.ImagemObjeto = objectName
	mapa.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, mapa); err != nil {
		return nil, err
	}
	if anterior != "" {
		// Best effort: um objeto órfão no bucket não é erro para o cliente.
		_ = uc.imageStore.Remove(ctx, anterior)
	}
	return uc.toResponse(ctx, mapa), nil
}

// Delete exclui um mapa sem lotes reservados ou vendidos.
func (uc *MapaUseCase) Delete(ctx context.Context, id string) error {
	mapa, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if mapa == nil {
		return domain.ErrNotFound
	}
	n, err := uc.repo.CountLotesComprometidos(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: mapa com %d lotes reservados ou vendidos", domain.ErrConflict, n)
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	if mapa.ImagemObjeto != "" && uc.imageStore != nil {
		_ = uc.imageStore.Remove(ctx, mapa.ImagemObjeto)
	}
	return nil
}

func (uc *MapaUseCase) toResponse(ctx context.Context, m *entity.Mapa) *dto.MapaResponse {
	out := &dto.MapaResponse{
		ID:        m.ID,
		Nome:      m.Nome,
		Descricao: m.Descricao,
		LarguraPx: m.LarguraPx,
		AlturaPx:  m.AlturaPx,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.ImagemObjeto != "" && uc.imageStore != nil {
		if url, err := uc.imageStore.PresignedURL(ctx, m.ImagemObjeto, imagemURLExpiry); err == nil {
			out.ImagemURL = url
		}
	}
	return out
}
