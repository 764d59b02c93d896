package reservation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jmoraesdev/lotemap-api/internal/application/dto"
	"github.com/jmoraesdev/lotemap-api/internal/domain"
	"github.com/jmoraesdev/lotemap-api/internal/domain/entity"
	"github.com/jmoraesdev/lotemap-api/internal/domain/repository"
	"github.com/jmoraesdev/lotemap-api/pkg/cpf"
)

// Chaves de cache invalidadas quando o status de lotes muda.
const (
	CacheKeyLotesDisponiveis = "lotemap:lotes:disponiveis"
	CacheKeyDashboard        = "lotemap:dashboard"
)

// LotesIndisponiveisError indica quais lotes impediram a reserva.
// Envolve domain.ErrLoteIndisponivel para o mapeamento HTTP 409; não distingue
// lote inexistente de lote perdido numa corrida de reservas concorrentes.
type LotesIndisponiveisError struct {
	LoteIDs []string
}

func (e *LotesIndisponiveisError) Error() string {
	return fmt.Sprintf("lotes indisponíveis: %s", strings.Join(e.LoteIDs, ", "))
}

func (e *LotesIndisponiveisError) Unwrap() error { return domain.ErrLoteIndisponivel }

// UseCase transações de reserva e confirmação de lotes.
//
// A reserva é tudo-ou-nada: verifica disponibilidade com bloqueio de linha
// (SELECT FOR UPDATE), insere a reserva com suas linhas e muda os lotes para
// reserved dentro de uma única transação. Commit/Rollback ficam a cargo do
// TxRunner.
type UseCase struct {
	txRunner    TxRunner
	reservaRepo repository.ReservaRepository
	loteRepo    repository.LoteRepository
	cache       Cache                // opcional (nil desativa)
	comprovante ComprovanteGenerator // opcional (nil desativa o PDF)
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	txRunner TxRunner,
	reservaRepo repository.ReservaRepository,
	loteRepo repository.LoteRepository,
	cache Cache,
	comprovante ComprovanteGenerator,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		reservaRepo: reservaRepo,
		loteRepo:    loteRepo,
		cache:       cache,
		comprovante: comprovante,
	}
}

// ReservarLotes reserva todos os lotes pedidos ou nenhum deles.
//
// Validações (antes de abrir a transação): conjunto de lotes não vazio,
// identidade do cliente completa e CPFs com dígito verificador válido.
// Dentro da transação: busca os lotes com FOR UPDATE; se o conjunto retornado
// for vazio falha com ErrNotFound; se qualquer lote não estiver available
// (inclusive os inexistentes) falha com LotesIndisponiveisError e faz
// rollback; senão insere a reserva pendente, uma linha por lote com as
// condições negociadas, e muda todos os lotes para reserved.
func (uc *UseCase) ReservarLotes(ctx context.Context, usuarioID string, in dto.ReservarLotesRequest) (*dto.ReservarLotesResponse, error) {
	ids := dedupe(in.LotIDs)
	if len(ids) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.ClienteNome == "" || in.ClienteEmail == "" || in.ClienteTelefone == "" || in.ClienteCPF == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.VendedorNome == "" || in.FormaPagamento == "" {
		return nil, domain.ErrInvalidInput
	}
	clienteCPF, err := cpf.Normalize(in.ClienteCPF)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	vendedorCPF := ""
	if in.VendedorCPF != "" {
		vendedorCPF, err = cpf.Normalize(in.VendedorCPF)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
		}
	}

	detalhes := make(map[string]dto.LoteDetail, len(in.LotDetails))
	for _, d := range in.LotDetails {
		detalhes[d.LoteID] = d
	}

	now := time.Now()
	reserva := &entity.Reserva{
		ID:               uuid.New().String(),
		ClienteNome:      in.ClienteNome,
		ClienteEmail:     in.ClienteEmail,
		ClienteTelefone:  in.ClienteTelefone,
		ClienteCPF:       clienteCPF,
		VendedorNome:     in.VendedorNome,
		VendedorEmail:    in.VendedorEmail,
		VendedorTelefone: in.VendedorTelefone,
		VendedorCPF:      vendedorCPF,
		FormaPagamento:   in.FormaPagamento,
		Mensagem:         in.Mensagem,
		Status:           entity.ReservaPendente,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if usuarioID != "" {
		reserva.UsuarioID = &usuarioID
	}

	err = uc.txRunner.Run(ctx, func(
		loteRepo repository.LoteRepository,
		reservaRepo repository.ReservaRepository,
	) error {
		lotes, err := loteRepo.GetByIDsForUpdate(ctx, ids)
		if err != nil {
			return err
		}
		if len(lotes) == 0 {
			return domain.ErrNotFound
		}

		encontrados := make(map[string]*entity.Lote, len(lotes))
		for _, l := range lotes {
			encontrados[l.ID] = l
		}
		var indisponiveis []string
		for _, id := range ids {
			l, ok := encontrados[id]
			if !ok || l.Status != entity.LoteDisponivel {
				indisponiveis = append(indisponiveis, id)
			}
		}
		if len(indisponiveis) > 0 {
			return &LotesIndisponiveisError{LoteIDs: indisponiveis}
		}

		if err := reservaRepo.Create(ctx, reserva); err != nil {
			return err
		}
		for _, id := range ids {
			linha := &entity.ReservaLote{
				ID:        uuid.New().String(),
				ReservaID: reserva.ID,
				LoteID:    id,
			}
			if d, ok := detalhes[id]; ok {
				linha.PrecoAcordado = d.Preco
				linha.Entrada = d.Entrada
				linha.Parcelas = d.Parcelas
			}
			// Sem condições negociadas, vale o preço de tabela do lote.
			if linha.PrecoAcordado.IsZero() {
				linha.PrecoAcordado = encontrados[id].Preco
			}
			if linha.Parcelas <= 0 {
				linha.Parcelas = 1
			}
			if err := reservaRepo.CreateLote(ctx, linha); err != nil {
				return err
			}
		}

		n, err := loteRepo.UpdateStatusBatch(ctx, ids, entity.LoteReservado)
		if err != nil {
			return err
		}
		if n != len(ids) {
			return fmt.Errorf("reserva: esperava atualizar %d lotes, atualizou %d", len(ids), n)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateCache(ctx)

	return &dto.ReservarLotesResponse{
		PurchaseRequestID: reserva.ID,
		LotIDs:            ids,
	}, nil
}

// invalidateCache descarta chaves derivadas do status dos lotes. Best effort:
// um cache indisponível não pode falhar uma reserva já commitada.
func (uc *UseCase) invalidateCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	_ = uc.cache.Delete(ctx, CacheKeyLotesDisponiveis, CacheKeyDashboard)
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	var out []string
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// precoTotal soma o preço acordado das linhas (usado no comprovante e na listagem).
func precoTotal(linhas []*entity.ReservaLote) decimal.Decimal {
	total := decimal.Zero
	for _, l := range linhas {
		total = total.Add(l.PrecoAcordado)
	}
	return total
}
