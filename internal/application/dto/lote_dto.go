package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLoteRequest dados para criar um lote.
type CreateLoteRequest struct {
	MapaID          string          `json:"mapa_id"`
	QuadraID        string          `json:"quadra_id"`
	Numero          string          `json:"numero"`
	Preco           decimal.Decimal `json:"preco"`
	AreaM2          decimal.Decimal `json:"area_m2"`
	Descricao       string          `json:"descricao"`
	Caracteristicas []string        `json:"caracteristicas"`
}

// UpdateLoteRequest dados para atualizar um lote. Status vazio mantém o atual;
// preenchido é um override administrativo.
type UpdateLoteRequest struct {
	Numero          string          `json:"numero"`
	Status          string          `json:"status"`
	Preco           decimal.Decimal `json:"preco"`
	AreaM2          decimal.Decimal `json:"area_m2"`
	Descricao       string          `json:"descricao"`
	Caracteristicas []string        `json:"caracteristicas"`
}

// LoteResponse representação de um lote na API.
type LoteResponse struct {
	ID              string          `json:"id"`
	MapaID          string          `json:"mapa_id"`
	QuadraID        string          `json:"quadra_id,omitempty"`
	Numero          string          `json:"numero"`
	Status          string          `json:"status"`
	Preco           decimal.Decimal `json:"preco"`
	AreaM2          decimal.Decimal `json:"area_m2"`
	Descricao       string          `json:"descricao"`
	Caracteristicas []string        `json:"caracteristicas"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// LoteListResponse listagem paginada de lotes.
type LoteListResponse struct {
	Lotes []LoteResponse `json:"lotes"`
	Meta  PageResponse   `json:"meta"`
}

// LoteValidoResponse resposta do check de disponibilidade.
// Os clientes legados leem isAvailable (0|1); os novos leem valid.
type LoteValidoResponse struct {
	IsAvailable int  `json:"isAvailable"`
	Valid       bool `json:"valid"`
}
