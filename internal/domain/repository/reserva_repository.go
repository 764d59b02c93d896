package repository

import (
	"context"

	"github.com/jmoraesdev/lotemap-api/internal/domain/entity"
)

// ReservaFilter filtros para listagem de reservas.
type ReservaFilter struct {
	Status    string // vazio = todos
	UsuarioID string // vazio = todos
	Limit     int
	Offset    int
}

// ReservaRepository define o porto de persistência para Reserva e suas linhas.
type ReservaRepository interface {
	Create(ctx context.Context, reserva *entity.Reserva) error
	CreateLote(ctx context.Context, linha *entity.ReservaLote) error
	GetByID(ctx context.Context, id string) (*entity.Reserva, error)
	// GetByIDForUpdate busca a reserva bloqueando a linha (SELECT ... FOR UPDATE).
	// Usar somente dentro de uma transação.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Reserva, error)
	GetLotes(ctx context.Context, reservaID string) ([]*entity.ReservaLote, error)
	List(ctx context.Context, f ReservaFilter) ([]*entity.Reserva, int, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
