package dto

import "github.com/shopspring/decimal"

// DashboardResponse contagens agregadas para o painel administrativo.
type DashboardResponse struct {
	LotesPorStatus    map[string]int  `json:"lotes_por_status"`
	ReservasPorStatus map[string]int  `json:"reservas_por_status"`
	TotalMapas        int             `json:"total_mapas"`
	TotalQuadras      int             `json:"total_quadras"`
	TotalUsuarios     int             `json:"total_usuarios"`
	ValorReservado    decimal.Decimal `json:"valor_reservado"`
	ValorVendido      decimal.Decimal `json:"valor_vendido"`
}
