package repository

import (
	"context"

	"github.com/jmoraesdev/lotemap-api/internal/domain/entity"
)

// UsuarioRepository define o porto de persistência para Usuario.
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *entity.Usuario) error
	GetByID(ctx context.Context, id string) (*entity.Usuario, error)
	GetByCPF(ctx context.Context, cpf string) (*entity.Usuario, error)
	List(ctx context.Context, status string, limit, offset int) ([]*entity.Usuario, error)
	Update(ctx context.Context, usuario *entity.Usuario) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}
