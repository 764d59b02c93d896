package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoteDetail condições negociadas para um lote dentro do pedido de reserva.
// Os nomes de campo seguem o contrato do cliente web legado.
type LoteDetail struct {
	LoteID   string          `json:"loteId"`
	Preco    decimal.Decimal `json:"preco"`
	Entrada  decimal.Decimal `json:"entrada"`
	Parcelas int             `json:"parcelas"`
}

// ReservarLotesRequest corpo do POST /mapas/lotes/reservar.
type ReservarLotesRequest struct {
	LotIDs           []string     `json:"lotIds"`
	LotDetails       []LoteDetail `json:"lotDetails"`
	ClienteNome      string       `json:"clienteNome"`
	ClienteEmail     string       `json:"clienteEmail"`
	ClienteTelefone  string       `json:"clienteTelefone"`
	ClienteCPF       string       `json:"clienteCpf"`
	VendedorNome     string       `json:"vendedorNome"`
	VendedorEmail    string       `json:"vendedorEmail"`
	VendedorTelefone string       `json:"vendedorTelefone"`
	VendedorCPF      string       `json:"vendedorCpf"`
	FormaPagamento   string       `json:"formaPagamento"`
	Mensagem         string       `json:"mensagem"`
}

// ReservarLotesResponse resposta da reserva criada.
type ReservarLotesResponse struct {
	PurchaseRequestID string   `json:"purchaseRequestId"`
	LotIDs            []string `json:"lotIds"`
}

// ConfirmacaoRequest corpo do PUT /reserva/confirmacao.
// Status completed exige lotStatus sold; cancelled exige available.
type ConfirmacaoRequest struct {
	ReservationID string `json:"reservationId"`
	Status        string `json:"status"`    // completed | cancelled
	LotStatus     string `json:"lotStatus"` // sold | available
}

// ReservaLoteResponse linha de uma reserva.
type ReservaLoteResponse struct {
	LoteID        string          `json:"lote_id"`
	PrecoAcordado decimal.Decimal `json:"preco_acordado"`
	Entrada       decimal.Decimal `json:"entrada"`
	Parcelas      int             `json:"parcelas"`
}

// ReservaResponse representação completa de uma reserva.
type ReservaResponse struct {
	ID               string                `json:"id"`
	UsuarioID        string                `json:"usuario_id,omitempty"`
	ClienteNome      string                `json:"cliente_nome"`
	ClienteEmail     string                `json:"cliente_email"`
	ClienteTelefone  string                `json:"cliente_telefone"`
	ClienteCPF       string                `json:"cliente_cpf"`
	VendedorNome     string                `json:"vendedor_nome"`
	VendedorEmail    string                `json:"vendedor_email"`
	VendedorTelefone string                `json:"vendedor_telefone"`
	VendedorCPF      string                `json:"vendedor_cpf"`
	FormaPagamento   string                `json:"forma_pagamento"`
	Mensagem         string                `json:"mensagem,omitempty"`
	Status           string                `json:"status"`
	Lotes            []ReservaLoteResponse `json:"lotes"`
	ValorTotal       decimal.Decimal       `json:"valor_total"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

// ReservaMinimalResponse forma reduzida para o flag minimal da listagem.
type ReservaMinimalResponse struct {
	ID          string    `json:"id"`
	ClienteNome string    `json:"cliente_nome"`
	Status      string    `json:"status"`
	TotalLotes  int       `json:"total_lotes"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReservaListResponse listagem paginada de reservas.
type ReservaListResponse struct {
	Reservas []ReservaResponse `json:"reservas"`
	Meta     PageResponse      `json:"meta"`
}

// ReservaMinimalListResponse listagem paginada reduzida.
type ReservaMinimalListResponse struct {
	Reservas []ReservaMinimalResponse `json:"reservas"`
	Meta     PageResponse             `json:"meta"`
}
