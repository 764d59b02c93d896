package reservation

import (
	"context"

	"github.com/jmoraesdev/lotemap-api/internal/domain/entity"
	"github.com/jmoraesdev/lotemap-api/internal/domain/repository"
)

// Fakes em memória para exercitar os casos de uso sem Postgres. O fakeTxRunner
// tira um snapshot do estado antes do callback e restaura no erro, imitando o
// rollback da transação real.

type fakeLoteRepo struct {
	lotes map[string]*entity.Lote
}

func newFakeLoteRepo(lotes ...*entity.Lote) *fakeLoteRepo {
	r := &fakeLoteRepo{lotes: make(map[string]*entity.Lote)}
	for _, l := range lotes {
		c := *l
		r.lotes[l.ID] = &c
	}
	return r
}

func (r *fakeLoteRepo) Create(_ context.Context, lote *entity.Lote) error {
	c := *lote
	r.lotes[lote.ID] = &c
	return nil
}

func (r *fakeLoteRepo) GetByID(_ context.Context, id string) (*entity.Lote, error) {
	l, ok := r.lotes[id]
	if !ok {
		return nil, nil
	}
	c := *l
	return &c, nil
}

func (r *fakeLoteRepo) GetByIDsForUpdate(_ context.Context, ids []string) ([]*entity.Lote, error) {
	var out []*entity.Lote
	for _, id := range ids {
		if l, ok := r.lotes[id]; ok {
			c := *l
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeLoteRepo) ListByMapa(_ context.Context, mapaID string, _, _ int) ([]*entity.Lote, error) {
	var out []*entity.Lote
	for _, l := range r.lotes {
		if l.MapaID == mapaID {
			c := *l
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeLoteRepo) ListByQuadra(_ context.Context, quadraID string, _, _ int) ([]*entity.Lote, error) {
	var out []*entity.Lote
	for _, l := range r.lotes {
		if l.QuadraID != nil && *l.QuadraID == quadraID {
			c := *l
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeLoteRepo) ListDisponiveis(_ context.Context, mapaID string, _, _ int) ([]*entity.Lote, error) {
	var out []*entity.Lote
	for _, l := range r.lotes {
		if l.Status == entity.LoteDisponivel && (mapaID == "" || l.MapaID == mapaID) {
			c := *l
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeLoteRepo) Update(_ context.Context, lote *entity.Lote) error {
	c := *lote
	r.lotes[lote.ID] = &c
	return nil
}

func (r *fakeLoteRepo) UpdateStatusBatch(_ context.Context, ids []string, status string) (int, error) {
	n := 0
	for _, id := range ids {
		if l, ok := r.lotes[id]; ok {
			l.Status = status
			n++
		}
	}
	return n, nil
}

func (r *fakeLoteRepo) Delete(_ context.Context, id string) error {
	delete(r.lotes, id)
	return nil
}

func (r *fakeLoteRepo) snapshot() map[string]*entity.Lote {
	s := make(map[string]*entity.Lote, len(r.lotes))
	for id, l := range r.lotes {
		c := *l
		s[id] = &c
	}
	return s
}

type fakeReservaRepo struct {
	reservas map[string]*entity.Reserva
	linhas   map[string][]*entity.ReservaLote
}

func newFakeReservaRepo() *fakeReservaRepo {
	return &fakeReservaRepo{
		reservas: make(map[string]*entity.Reserva),
		linhas:   make(map[string][]*entity.ReservaLote),
	}
}

func (r *fakeReservaRepo) Create(_ context.Context, reserva *entity.Reserva) error {
	c := *reserva
	c.Lotes = nil
	r.reservas[reserva.ID] = &c
	return nil
}

func (r *fakeReservaRepo) CreateLote(_ context.Context, linha *entity.ReservaLote) error {
	c := *linha
	r.linhas[linha.ReservaID] = append(r.linhas[linha.ReservaID], &c)
	return nil
}

func (r *fakeReservaRepo) GetByID(_ context.Context, id string) (*entity.Reserva, error) {
	res, ok := r.reservas[id]
	if !ok {
		return nil, nil
	}
	c := *res
	return &c, nil
}

func (r *fakeReservaRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Reserva, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeReservaRepo) GetLotes(_ context.Context, reservaID string) ([]*entity.ReservaLote, error) {
	out := make([]*entity.ReservaLote, 0, len(r.linhas[reservaID]))
	for _, l := range r.linhas[reservaID] {
		c := *l
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeReservaRepo) List(_ context.Context, f repository.ReservaFilter) ([]*entity.Reserva, int, error) {
	var out []*entity.Reserva
	for _, res := range r.reservas {
		if f.Status != "" && res.Status != f.Status {
			continue
		}
		if f.UsuarioID != "" && (res.UsuarioID == nil || *res.UsuarioID != f.UsuarioID) {
			continue
		}
		c := *res
		out = append(out, &c)
	}
	return out, len(out), nil
}

func (r *fakeReservaRepo) UpdateStatus(_ context.Context, id, status string) error {
	if res, ok := r.reservas[id]; ok {
		res.Status = status
	}
	return nil
}

func (r *fakeReservaRepo) snapshot() (map[string]*entity.Reserva, map[string][]*entity.ReservaLote) {
	rs := make(map[string]*entity.Reserva, len(r.reservas))
	for id, res := range r.reservas {
		c := *res
		rs[id] = &c
	}
	ls := make(map[string][]*entity.ReservaLote, len(r.linhas))
	for id, linhas := range r.linhas {
		cp := make([]*entity.ReservaLote, 0, len(linhas))
		for _, l := range linhas {
			c := *l
			cp = append(cp, &c)
		}
		ls[id] = cp
	}
	return rs, ls
}

type fakeTxRunner struct {
	loteRepo    *fakeLoteRepo
	reservaRepo *fakeReservaRepo
	runs        int
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(repository.LoteRepository, repository.ReservaRepository) error) error {
	t.runs++
	lotesSnap := t.loteRepo.snapshot()
	reservasSnap, linhasSnap := t.reservaRepo.snapshot()
	if err := fn(t.loteRepo, t.reservaRepo); err != nil {
		t.loteRepo.lotes = lotesSnap
		t.reservaRepo.reservas = reservasSnap
		t.reservaRepo.linhas = linhasSnap
		return err
	}
	return nil
}

type fakeCache struct {
	deleted []string
}

func (c *fakeCache) Delete(_ context.Context, keys ...string) error {
	c.deleted = append(c.deleted, keys...)
	return nil
}
