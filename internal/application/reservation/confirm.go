package reservation

import (
	"context"

	"github.com/jmoraesdev/lotemap-api/internal/application/dto"
	"github.com/jmoraesdev/lotemap-api/internal/domain"
	"github.com/jmoraesdev/lotemap-api/internal/domain/entity"
	"github.com/jmoraesdev/lotemap-api/internal/domain/repository"
)

// loteStatusPorDesfecho mapeia o desfecho da reserva para o status final dos lotes.
var loteStatusPorDesfecho = map[string]string{
	entity.ReservaConcluida: entity.LoteVendido,
	entity.ReservaCancelada: entity.LoteDisponivel,
}

// ConfirmarReserva conclui ou cancela uma reserva pendente, atualizando o
// status da reserva e de todos os lotes vinculados na mesma transação.
//
// Só completed e cancelled são desfechos válidos, e lotStatus deve ser o par
// correspondente (sold ou available); a validação acontece antes de abrir a
// transação. Uma segunda confirmação com o mesmo desfecho é um no-op: não
// gera nova transição de status nos lotes.
func (uc *UseCase) ConfirmarReserva(ctx context.Context, in dto.ConfirmacaoRequest) error {
	if in.ReservationID == "" {
		return domain.ErrInvalidInput
	}
	esperado, ok := loteStatusPorDesfecho[in.Status]
	if !ok || in.LotStatus != esperado {
		return domain.ErrInvalidInput
	}

	err := uc.txRunner.Run(ctx, func(
		loteRepo repository.LoteRepository,
		reservaRepo repository.ReservaRepository,
	) error {
		reserva, err := reservaRepo.GetByIDForUpdate(ctx, in.ReservationID)
		if err != nil {
			return err
		}
		if reserva == nil {
			return domain.ErrNotFound
		}
		if reserva.Status == in.Status {
			// Já está no desfecho pedido; nada a transicionar.
			return nil
		}
		if reserva.Status != entity.ReservaPendente && reserva.Status != entity.ReservaContatada {
			return domain.ErrConflict
		}

		if err := reservaRepo.UpdateStatus(ctx, reserva.ID, in.Status); err != nil {
			return err
		}

		linhas, err := reservaRepo.GetLotes(ctx, reserva.ID)
		if err != nil {
			return err
		}
		ids := make([]string, 0, len(linhas))
		for _, l := range linhas {
			ids = append(ids, l.LoteID)
		}
		if len(ids) == 0 {
			return nil
		}
		_, err = loteRepo.UpdateStatusBatch(ctx, ids, in.LotStatus)
		return err
	})
	if err != nil {
		return err
	}

	uc.invalidateCache(ctx)
	return nil
}

// MarcarContatada registra que o cliente da reserva pendente já foi contatado.
// É uma atualização simples de status, fora das transações de confirmação.
func (uc *UseCase) MarcarContatada(ctx context.Context, reservaID string) error {
	if reservaID == "" {
		return domain.ErrInvalidInput
	}
	reserva, err := uc.reservaRepo.GetByID(ctx, reservaID)
	if err != nil {
		return err
	}
	if reserva == nil {
		return domain.ErrNotFound
	}
	if reserva.Status != entity.ReservaPendente {
		return domain.ErrConflict
	}
	return uc.reservaRepo.UpdateStatus(ctx, reservaID, entity.ReservaContatada)
}
