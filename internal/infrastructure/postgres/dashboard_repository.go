package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jmoraesdev/lotemap-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas read-only para o painel administrativo.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository constrói o adaptador.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// CountLotesPorStatus conta os lotes agrupados por status.
func (r *DashboardRepo) CountLotesPorStatus(ctx context.Context) (map[string]int, error) {
	return r.countPorStatus(ctx, `SELECT status, count(*) FROM lotes GROUP BY status`)
}

// CountReservasPorStatus conta as reservas agrupadas por status.
func (r *DashboardRepo) CountReservasPorStatus(ctx context.Context) (map[string]int, error) {
	return r.countPorStatus(ctx, `SELECT status, count(*) FROM reservas GROUP BY status`)
}

func (r *DashboardRepo) countPorStatus(ctx context.Context, query string) (map[string]int, error) {
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("count por status: %w", err)
	}
	defer rows.Close()
	out := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan contagem: %w", err)
		}
		out[status] = n
	}
	return out, rows.Err()
}

// CountMapas conta os mapas cadastrados.
func (r *DashboardRepo) CountMapas(ctx context.Context) (int, error) {
	return r.countTabela(ctx, `SELECT count(*) FROM mapas`)
}

// CountQuadras conta as quadras cadastradas.
func (r *DashboardRepo) CountQuadras(ctx context.Context) (int, error) {
	return r.countTabela(ctx, `SELECT count(*) FROM quadras`)
}

// CountUsuarios conta os usuários cadastrados.
func (r *DashboardRepo) CountUsuarios(ctx context.Context) (int, error) {
	return r.countTabela(ctx, `SELECT count(*) FROM usuarios`)
}

func (r *DashboardRepo) countTabela(ctx context.Context, query string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

// ValoresAgregados soma o preço acordado das linhas: reservado para reservas
// pendentes/contatadas, vendido para reservas concluídas.
func (r *DashboardRepo) ValoresAgregados(ctx context.Context) (reservado, vendido decimal.Decimal, err error) {
	query := `
		SELECT
			COALESCE(sum(rl.preco_acordado) FILTER (WHERE r.status IN ('pending', 'contacted')), 0),
			COALESCE(sum(rl.preco_acordado) FILTER (WHERE r.status = 'completed'), 0)
		FROM reserva_lotes rl
		JOIN reservas r ON r.id = rl.reserva_id`
	if err = r.q.QueryRow(ctx, query).Scan(&reservado, &vendido); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("valores agregados: %w", err)
	}
	return reservado, vendido, nil
}
