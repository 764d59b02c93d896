package entity

import "time"

// Roles válidos para Usuario.
const (
	RoleDev      = "dev"
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
)

// Status de aprovação da conta.
const (
	UsuarioPendente  = "pending"
	UsuarioAprovado  = "approved"
	UsuarioRejeitado = "rejected"
)

// Usuario representa um usuário do sistema. Contas "dev" não podem ser
// excluídas; um vendedor só faz login quando o status é approved.
type Usuario struct {
	ID           string
	Nome         string
	Email        string
	CPF          string // 11 dígitos, sem pontuação
	Telefone     string
	CRECI        *string // licença de corretor, nula para não-corretores
	Role         string  // dev, admin, vendedor
	Status       string  // pending, approved, rejected
	PasswordHash string  // bcrypt, nunca plano no domínio após persistir
	Tema         string  // preferência de tema da interface
	Ativo        bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
