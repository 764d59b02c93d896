package reservation

import (
	"context"

	"github.com/jmoraesdev/lotemap-api/internal/application/dto"
	"github.com/jmoraesdev/lotemap-api/internal/domain"
	"github.com/jmoraesdev/lotemap-api/internal/domain/entity"
	"github.com/jmoraesdev/lotemap-api/internal/domain/repository"
)

// Listar devolve reservas paginadas com as linhas de lote embutidas.
func (uc *UseCase) Listar(ctx context.Context, status, usuarioID string, page dto.PageRequest) (*dto.ReservaListResponse, error) {
	if status != "" && !entity.ValidReservaStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	limit, offset := page.DefaultPage()
	reservas, total, err := uc.reservaRepo.List(ctx, repository.ReservaFilter{
		Status:    status,
		UsuarioID: usuarioID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return nil, err
	}

	out := &dto.ReservaListResponse{
		Reservas: make([]dto.ReservaResponse, 0, len(reservas)),
		Meta:     dto.PageResponse{Page: page.Page, Limit: limit, Total: total},
	}
	for _, r := range reservas {
		if r.Lotes == nil {
			linhas, err := uc.reservaRepo.GetLotes(ctx, r.ID)
			if err != nil {
				return nil, err
			}
			r.Lotes = linhas
		}
		out.Reservas = append(out.Reservas, *toReservaResponse(r))
	}
	return out, nil
}

// ListarMinimal devolve a forma reduzida usada pelo flag minimal da listagem.
func (uc *UseCase) ListarMinimal(ctx context.Context, status, usuarioID string, page dto.PageRequest) (*dto.ReservaMinimalListResponse, error) {
	full, err := uc.Listar(ctx, status, usuarioID, page)
	if err != nil {
		return nil, err
	}
	out := &dto.ReservaMinimalListResponse{
		Reservas: make([]dto.ReservaMinimalResponse, 0, len(full.Reservas)),
		Meta:     full.Meta,
	}
	for _, r := range full.Reservas {
		out.Reservas = append(out.Reservas, dto.ReservaMinimalResponse{
			ID:          r.ID,
			ClienteNome: r.ClienteNome,
			Status:      r.Status,
			TotalLotes:  len(r.Lotes),
			CreatedAt:   r.CreatedAt,
		})
	}
	return out, nil
}

// BuscarPorID devolve uma reserva completa com suas linhas.
func (uc *UseCase) BuscarPorID(ctx context.Context, id string) (*dto.ReservaResponse, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	reserva, err := uc.reservaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reserva == nil {
		return nil, domain.ErrNotFound
	}
	linhas, err := uc.reservaRepo.GetLotes(ctx, id)
	if err != nil {
		return nil, err
	}
	reserva.Lotes = linhas
	return toReservaResponse(reserva), nil
}

func toReservaResponse(r *entity.Reserva) *dto.ReservaResponse {
	out := &dto.ReservaResponse{
		ID:               r.ID,
		ClienteNome:      r.ClienteNome,
		ClienteEmail:     r.ClienteEmail,
		ClienteTelefone:  r.ClienteTelefone,
		ClienteCPF:       r.ClienteCPF,
		VendedorNome:     r.VendedorNome,
		VendedorEmail:    r.VendedorEmail,
		VendedorTelefone: r.VendedorTelefone,
		VendedorCPF:      r.VendedorCPF,
		FormaPagamento:   r.FormaPagamento,
		Mensagem:         r.Mensagem,
		Status:           r.Status,
		Lotes:            make([]dto.ReservaLoteResponse, 0, len(r.Lotes)),
		ValorTotal:       precoTotal(r.Lotes),
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
	if r.UsuarioID != nil {
		out.UsuarioID = *r.UsuarioID
	}
	for _, l := range r.Lotes {
		out.Lotes = append(out.Lotes, dto.ReservaLoteResponse{
			LoteID:        l.LoteID,
			PrecoAcordado: l.PrecoAcordado,
			Entrada:       l.Entrada,
			Parcelas:      l.Parcelas,
		})
	}
	return out
}
