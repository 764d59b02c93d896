package dto

import "time"

// RegisterUsuarioRequest auto-cadastro de vendedor (entra como pending).
type RegisterUsuarioRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	CPF      string `json:"cpf"`
	Telefone string `json:"telefone"`
	CRECI    string `json:"creci"`
	Password string `json:"password"`
}

// CreateUsuarioRequest criação administrativa (role e status livres).
type CreateUsuarioRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	CPF      string `json:"cpf"`
	Telefone string `json:"telefone"`
	CRECI    string `json:"creci"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// UpdateUsuarioRequest atualização de perfil; Password vazio mantém a senha.
type UpdateUsuarioRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	CRECI    string `json:"creci"`
	Tema     string `json:"tema"`
	Password string `json:"password"`
}

// AprovacaoRequest aprovação ou rejeição de cadastro pendente.
type AprovacaoRequest struct {
	Status string `json:"status"` // approved | rejected
}

// UsuarioResponse representação de um usuário na API (nunca inclui a senha).
type UsuarioResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	CPF       string    `json:"cpf"`
	Telefone  string    `json:"telefone"`
	CRECI     string    `json:"creci,omitempty"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	Tema      string    `json:"tema"`
	Ativo     bool      `json:"ativo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse resposta do login: token + usuário.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

// UsuarioListResponse listagem paginada de usuários.
type UsuarioListResponse struct {
	Usuarios []UsuarioResponse `json:"usuarios"`
	Meta     PageResponse      `json:"meta"`
}
