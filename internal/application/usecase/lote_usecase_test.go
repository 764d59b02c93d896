package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmoraesdev/lotemap-api/internal/application/dto"
	"github.com/jmoraesdev/lotemap-api/internal/domain"
	"github.com/jmoraesdev/lotemap-api/internal/domain/entity"
)

type memMapaRepo struct {
	mapas         map[string]*entity.Mapa
	comprometidos map[string]int
}

func (r *memMapaRepo) Create(_ context.Context, m *entity.Mapa) error {
	r.mapas[m.ID] = m
	return nil
}

func (r *memMapaRepo) GetByID(_ context.Context, id string) (*entity.Mapa, error) {
	return r.mapas[id], nil
}

func (r *memMapaRepo) List(_ context.Context, _, _ int) ([]*entity.Mapa, error) {
	var out []*entity.Mapa
	for _, m := range r.mapas {
		out = append(out, m)
	}
	return out, nil
}

func (r *memMapaRepo) Update(_ context.Context, m *entity.Mapa) error {
	r.mapas[m.ID] = m
	return nil
}

func (r *memMapaRepo) Delete(_ context.Context, id string) error {
	delete(r.mapas, id)
	return nil
}

func (r *memMapaRepo) CountLotesComprometidos(_ context.Context, mapaID string) (int, error) {
	return r.comprometidos[mapaID], nil
}

type memQuadraRepo struct {
	quadras map[string]*entity.Quadra
}

func (r *memQuadraRepo) Create(_ context.Context, q *entity.Quadra) error {
	r.quadras[q.ID] = q
	return nil
}

func (r *memQuadraRepo) GetByID(_ context.Context, id string) (*entity.Quadra, error) {
	return r.quadras[id], nil
}

func (r *memQuadraRepo) ListByMapa(_ context.Context, mapaID string, _, _ int) ([]*entity.Quadra, error) {
	var out []*entity.Quadra
	for _, q := range r.quadras {
		if q.MapaID == mapaID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *memQuadraRepo) Update(_ context.Context, q *entity.Quadra) error {
	r.quadras[q.ID] = q
	return nil
}

func (r *memQuadraRepo) Delete(_ context.Context, id string) error {
	delete(r.quadras, id)
	return nil
}

func (r *memQuadraRepo) CountLotesComprometidos(_ context.Context, _ string) (int, error) {
	return 0, nil
}

type memLoteRepo struct {
	lotes map[string]*entity.Lote
}

func (r *memLoteRepo) Create(_ context.Context, l *entity.Lote) error {
	for _, existing := range r.lotes {
		mesmaQuadra := existing.QuadraID == nil && l.QuadraID == nil ||
			existing.QuadraID != nil && l.QuadraID != nil && *existing.QuadraID == *l.QuadraID
		if existing.MapaID == l.MapaID && mesmaQuadra && existing.Numero == l.Numero {
			return domain.ErrDuplicate
		}
	}
	r.lotes[l.ID] = l
	return nil
}

func (r *memLoteRepo) GetByID(_ context.Context, id string) (*entity.Lote, error) {
	return r.lotes[id], nil
}

func (r *memLoteRepo) GetByIDsForUpdate(_ context.Context, ids []string) ([]*entity.Lote, error) {
	var out []*entity.Lote
	for _, id := range ids {
		if l, ok := r.lotes[id]; ok {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *memLoteRepo) ListByMapa(_ context.Context, mapaID string, _, _ int) ([]*entity.Lote, error) {
	var out []*entity.Lote
	for _, l := range r.lotes {
		if l.MapaID == mapaID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *memLoteRepo) ListByQuadra(_ context.Context, quadraID string, _, _ int) ([]*entity.Lote, error) {
	var out []*entity.Lote
	for _, l := range r.lotes {
		if l.QuadraID != nil && *l.QuadraID == quadraID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *memLoteRepo) ListDisponiveis(_ context.Context, mapaID string, _, _ int) ([]*entity.Lote, error) {
	var out []*entity.Lote
	for _, l := range r.lotes {
		if l.Status == entity.LoteDisponivel && (mapaID == "" || l.MapaID == mapaID) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *memLoteRepo) Update(_ context.Context, l *entity.Lote) error {
	r.lotes[l.ID] = l
	return nil
}

func (r *memLoteRepo) UpdateStatusBatch(_ context.Context, ids []string, status string) (int, error) {
	n := 0
	for _, id := range ids {
		if l, ok := r.lotes[id]; ok {
			l.Status = status
			n++
		}
	}
	return n, nil
}

func (r *memLoteRepo) Delete(_ context.Context, id string) error {
	delete(r.lotes, id)
	return nil
}

func novoAmbiente() (*LoteUseCase, *MapaUseCase, *QuadraUseCase, *memLoteRepo, *memMapaRepo) {
	mapaRepo := &memMapaRepo{mapas: map[string]*entity.Mapa{}, comprometidos: map[string]int{}}
	quadraRepo := &memQuadraRepo{quadras: map[string]*entity.Quadra{}}
	loteRepo := &memLoteRepo{lotes: map[string]*entity.Lote{}}
	return NewLoteUseCase(loteRepo, mapaRepo, quadraRepo, nil),
		NewMapaUseCase(mapaRepo, nil),
		NewQuadraUseCase(quadraRepo, mapaRepo),
		loteRepo, mapaRepo
}

func criaMapa(t *testing.T, uc *MapaUseCase) string {
	t.Helper()
	m, err := uc.Create(context.Background(), dto.CreateMapaRequest{Nome: "Residencial Sol", LarguraPx: 1920, AlturaPx: 1080})
	require.NoError(t, err)
	return m.ID
}

func TestLoteCreate_NumeroDuplicadoNaQuadra(t *testing.T) {
	loteUC, mapaUC, quadraUC, _, _ := novoAmbiente()
	mapaID := criaMapa(t, mapaUC)
	q, err := quadraUC.Create(context.Background(), dto.CreateQuadraRequest{MapaID: mapaID, Nome: "Quadra A"})
	require.NoError(t, err)

	in := dto.CreateLoteRequest{
		MapaID:   mapaID,
		QuadraID: q.ID,
		Numero:   "12",
		Preco:    decimal.NewFromInt(80000),
		AreaM2:   decimal.NewFromInt(250),
	}
	_, err = loteUC.Create(context.Background(), in)
	require.NoError(t, err)

	_, err = loteUC.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestLoteCreate_QuadraDeOutroMapa(t *testing.T) {
	loteUC, mapaUC, quadraUC, _, _ := novoAmbiente()
	mapaA := criaMapa(t, mapaUC)
	mapaB := criaMapa(t, mapaUC)
	q, err := quadraUC.Create(context.Background(), dto.CreateQuadraRequest{MapaID: mapaA, Nome: "Quadra A"})
	require.NoError(t, err)

	_, err = loteUC.Create(context.Background(), dto.CreateLoteRequest{
		MapaID:   mapaB,
		QuadraID: q.ID,
		Numero:   "1",
		Preco:    decimal.NewFromInt(50000),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVerificarDisponibilidade(t *testing.T) {
	loteUC, mapaUC, _, loteRepo, _ := novoAmbiente()
	mapaID := criaMapa(t, mapaUC)

	lote, err := loteUC.Create(context.Background(), dto.CreateLoteRequest{
		MapaID: mapaID,
		Numero: "7",
		Preco:  decimal.NewFromInt(60000),
	})
	require.NoError(t, err)

	resp, err := loteUC.VerificarDisponibilidade(context.Background(), lote.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.IsAvailable)
	assert.True(t, resp.Valid)

	loteRepo.lotes[lote.ID].Status = entity.LoteReservado
	resp, err = loteUC.VerificarDisponibilidade(context.Background(), lote.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.IsAvailable)
	assert.False(t, resp.Valid)

	_, err = loteUC.VerificarDisponibilidade(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLoteDelete_ReservadoOuVendidoBloqueia(t *testing.T) {
	for _, status := range []string{entity.LoteReservado, entity.LoteVendido} {
		t.Run(status, func(t *testing.T) {
			loteUC, mapaUC, _, loteRepo, _ := novoAmbiente()
			mapaID := criaMapa(t, mapaUC)
			lote, err := loteUC.Create(context.Background(), dto.CreateLoteRequest{
				MapaID: mapaID,
				Numero: "3",
				Preco:  decimal.NewFromInt(70000),
			})
			require.NoError(t, err)
			loteRepo.lotes[lote.ID].Status = status

			assert.ErrorIs(t, loteUC.Delete(context.Background(), lote.ID), domain.ErrConflict)
		})
	}
}

func TestLoteUpdate_OverrideDeStatus(t *testing.T) {
	loteUC, mapaUC, _, _, _ := novoAmbiente()
	mapaID := criaMapa(t, mapaUC)
	lote, err := loteUC.Create(context.Background(), dto.CreateLoteRequest{
		MapaID: mapaID,
		Numero: "9",
		Preco:  decimal.NewFromInt(40000),
	})
	require.NoError(t, err)

	atualizado, err := loteUC.Update(context.Background(), lote.ID, dto.UpdateLoteRequest{Status: entity.LoteBloqueado})
	require.NoError(t, err)
	assert.Equal(t, entity.LoteBloqueado, atualizado.Status)

	_, err = loteUC.Update(context.Background(), lote.ID, dto.UpdateLoteRequest{Status: "quantico"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMapaDelete_ComLotesComprometidos(t *testing.T) {
	_, mapaUC, _, _, mapaRepo := novoAmbiente()
	mapaID := criaMapa(t, mapaUC)
	mapaRepo.comprometidos[mapaID] = 2

	err := mapaUC.Delete(context.Background(), mapaID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	mapaRepo.comprometidos[mapaID] = 0
	assert.NoError(t, mapaUC.Delete(context.Background(), mapaID))
	_, err = mapaUC.GetByID(context.Background(), mapaID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMapaUpdate_Campos(t *testing.T) {
	_, mapaUC, _, _, _ := novoAmbiente()
	mapaID := criaMapa(t, mapaUC)

	antes := time.Now()
	atualizado, err := mapaUC.Update(context.Background(), mapaID, dto.UpdateMapaRequest{Nome: "Residencial Lua", LarguraPx: 2048})
	require.NoError(t, err)
	assert.Equal(t, "Residencial Lua", atualizado.Nome)
	assert.Equal(t, 2048, atualizado.LarguraPx)
	assert.Equal(t, 1080, atualizado.AlturaPx)
	assert.False(t, atualizado.UpdatedAt.Before(antes))
}
