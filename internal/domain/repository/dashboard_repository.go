package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// DashboardRepository consultas agregadas read-only para o painel.
type DashboardRepository interface {
	CountLotesPorStatus(ctx context.Context) (map[string]int, error)
	CountReservasPorStatus(ctx context.Context) (map[string]int, error)
	CountMapas(ctx context.Context) (int, error)
	CountQuadras(ctx context.Context) (int, error)
	CountUsuarios(ctx context.Context) (int, error)
	// ValoresAgregados soma o preço acordado das linhas de reservas não
	// canceladas: reservado para reservas pendentes/contatadas, vendido
	// para reservas concluídas.
	ValoresAgregados(ctx context.Context) (reservado, vendido decimal.Decimal, err error)
}
