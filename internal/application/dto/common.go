package dto

// PageRequest paginação para listagens.
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// DefaultPage aplica valores por defeito e devolve limit/offset prontos para SQL.
func (p *PageRequest) DefaultPage() (limit, offset int) {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Page <= 0 {
		p.Page = 1
	}
	return p.Limit, (p.Page - 1) * p.Limit
}

// PageResponse metadados de página nas respostas.
type PageResponse struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// ErrorResponse corpo de erro HTTP. Lotes só aparece quando a reserva falha
// por indisponibilidade, com os IDs que causaram o conflito.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Lotes   []string `json:"lotes,omitempty"`
}

// MessageResponse corpo de sucesso simples.
type MessageResponse struct {
	Message string `json:"message"`
}
