package dto

import "time"

// CreateQuadraRequest dados para criar uma quadra.
type CreateQuadraRequest struct {
	MapaID    string `json:"mapa_id"`
	Nome      string `json:"nome"`
	Descricao string `json:"descricao"`
}

// UpdateQuadraRequest dados para atualizar uma quadra.
type UpdateQuadraRequest struct {
	Nome      string `json:"nome"`
	Descricao string `json:"descricao"`
}

// QuadraResponse representação de uma quadra na API.
type QuadraResponse struct {
	ID        string    `json:"id"`
	MapaID    string    `json:"mapa_id"`
	Nome      string    `json:"nome"`
	Descricao string    `json:"descricao"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// QuadraListResponse listagem de quadras de um mapa.
type QuadraListResponse struct {
	Quadras []QuadraResponse `json:"quadras"`
	Meta    PageResponse     `json:"meta"`
}
