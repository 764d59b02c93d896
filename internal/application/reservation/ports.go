package reservation

import (
	"context"

	"github.com/jmoraesdev/lotemap-api/internal/domain/entity"
	"github.com/jmoraesdev/lotemap-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante a atomicidade tudo-ou-nada das
// transações de reserva e confirmação.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		loteRepo repository.LoteRepository,
		reservaRepo repository.ReservaRepository,
	) error) error
}

// Cache porto de invalidação: após reservar/confirmar, as chaves de
// disponibilidade e do dashboard são descartadas para que os clientes que
// fazem polling observem a mudança dentro do TTL.
type Cache interface {
	Delete(ctx context.Context, keys ...string) error
}

// ComprovanteGenerator gera o comprovante de reserva em PDF.
type ComprovanteGenerator interface {
	GerarComprovante(ctx context.Context, reserva *entity.Reserva, lotes []*entity.Lote) ([]byte, error)
}
