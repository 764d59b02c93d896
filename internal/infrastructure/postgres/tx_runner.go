package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jmoraesdev/lotemap-api/internal/application/reservation"
	"github.com/jmoraesdev/lotemap-api/internal/domain/repository"
)

var _ reservation.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL, com os
// repositórios de lote e reserva atados à tx. É o que dá atomicidade
// tudo-ou-nada às operações de reservar e confirmar.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner sobre o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn e faz Commit ou Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	loteRepo repository.LoteRepository,
	reservaRepo repository.ReservaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	loteRepo := NewLoteRepository(tx)
	reservaRepo := NewReservaRepository(tx)

	if err := fn(loteRepo, reservaRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
