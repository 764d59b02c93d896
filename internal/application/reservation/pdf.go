package reservation

import (
	"context"

	"github.com/jmoraesdev/lotemap-api/internal/domain"
	"github.com/jmoraesdev/lotemap-api/internal/domain/entity"
)

// GerarComprovante gera o comprovante de reserva em PDF, com os dados do
// cliente e do vendedor, a tabela de lotes com as condições negociadas e o
// valor total. Retorna ErrNotFound se a reserva não existir.
func (uc *UseCase) GerarComprovante(ctx context.Context, reservaID string) ([]byte, error) {
	if uc.comprovante == nil {
		return nil, domain.ErrNotFound
	}
	reserva, err := uc.reservaRepo.GetByID(ctx, reservaID)
	if err != nil {
		return nil, err
	}
	if reserva == nil {
		return nil, domain.ErrNotFound
	}
	linhas, err := uc.reservaRepo.GetLotes(ctx, reservaID)
	if err != nil {
		return nil, err
	}
	reserva.Lotes = linhas

	lotes := make([]*entity.Lote, 0, len(linhas))
	for _, linha := range linhas {
		lote, err := uc.loteRepo.GetByID(ctx, linha.LoteID)
		if err != nil {
			return nil, err
		}
		if lote != nil {
			lotes = append(lotes, lote)
		}
	}
	return uc.comprovante.GerarComprovante(ctx, reserva, lotes)
}
