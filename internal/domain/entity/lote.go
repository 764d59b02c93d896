package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status válidos para Lote. Os valores seguem o contrato da API pública.
const (
	LoteDisponivel = "available"
	LoteReservado  = "reserved"
	LoteVendido    = "sold"
	LoteBloqueado  = "blocked"
)

// ValidLoteStatus informa se s é um status de lote reconhecido.
func ValidLoteStatus(s string) bool {
	switch s {
	case LoteDisponivel, LoteReservado, LoteVendido, LoteBloqueado:
		return true
	}
	return false
}

// Lote representa uma parcela vendável de terra dentro de uma quadra.
// O status só muda pelas transações de reserva/confirmação ou por edição
// administrativa; lotes reservados ou vendidos não podem ser excluídos nem
// trocar de quadra/mapa.
type Lote struct {
	ID              string
	MapaID          string
	QuadraID        *string // nulo enquanto o lote não for atribuído a uma quadra
	Numero          string  // único dentro da quadra
	Status          string
	Preco           decimal.Decimal
	AreaM2          decimal.Decimal
	Descricao       string
	Caracteristicas []string // tags ordenadas (ex.: "esquina", "vista lago")
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
