package dto

import "time"

// CreateMapaRequest dados para criar um mapa (loteamento).
type CreateMapaRequest struct {
	Nome      string `json:"nome"`
	Descricao string `json:"descricao"`
	LarguraPx int    `json:"largura_px"`
	AlturaPx  int    `json:"altura_px"`
}

// UpdateMapaRequest dados para atualizar um mapa.
type UpdateMapaRequest struct {
	Nome      string `json:"nome"`
	Descricao string `json:"descricao"`
	LarguraPx int    `json:"largura_px"`
	AlturaPx  int    `json:"altura_px"`
}

// MapaResponse representação de um mapa na API.
// ImagemURL é uma URL temporária (presigned) para a imagem de fundo.
type MapaResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Descricao string    `json:"descricao"`
	ImagemURL string    `json:"imagem_url,omitempty"`
	LarguraPx int       `json:"largura_px"`
	AlturaPx  int       `json:"altura_px"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MapaListResponse listagem paginada de mapas.
type MapaListResponse struct {
	Mapas []MapaResponse `json:"mapas"`
	Meta  PageResponse   `json:"meta"`
}
