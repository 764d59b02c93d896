package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status válidos para Reserva (pedido de compra).
const (
	ReservaPendente  = "pending"
	ReservaContatada = "contacted"
	ReservaConcluida = "completed"
	ReservaCancelada = "cancelled"
)

// ValidReservaStatus informa se s é um status de reserva reconhecido.
func ValidReservaStatus(s string) bool {
	switch s {
	case ReservaPendente, ReservaContatada, ReservaConcluida, ReservaCancelada:
		return true
	}
	return false
}

// Reserva representa um pedido de compra: vincula um cliente e um vendedor a
// um ou mais lotes. Nunca é excluída, apenas transiciona de status.
type Reserva struct {
	ID               string
	UsuarioID        *string // usuário autenticado que criou a reserva, se houver
	ClienteNome      string
	ClienteEmail     string
	ClienteTelefone  string
	ClienteCPF       string
	VendedorNome     string
	VendedorEmail    string
	VendedorTelefone string
	VendedorCPF      string
	FormaPagamento   string
	Mensagem         string
	Status           string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Lotes []*ReservaLote // linhas da reserva, uma por lote
}

// ReservaLote é a linha que liga uma Reserva a um Lote com as condições
// negociadas para aquele lote específico.
type ReservaLote struct {
	ID            string
	ReservaID     string
	LoteID        string
	PrecoAcordado decimal.Decimal
	Entrada       decimal.Decimal // valor da primeira parcela
	Parcelas      int
}
