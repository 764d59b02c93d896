package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jmoraesdev/lotemap-api/internal/application/dto"
	"github.com/jmoraesdev/lotemap-api/internal/application/reservation"
	"github.com/jmoraesdev/lotemap-api/internal/domain/repository"
)

// TTL do cache do dashboard; invalidado nas transações de reserva.
const dashboardTTL = time.Minute

// DashboardUseCase monta o resumo agregado do painel administrativo.
// Delega todas as consultas no DashboardRepository (read-only).
type DashboardUseCase struct {
	repo  repository.DashboardRepository
	cache Cache // opcional (nil desativa)
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository, cache Cache) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, cache: cache}
}

// GetResumo devolve o resumo do painel.
//
// Quatro consultas em paralelo:
//  1. CountLotesPorStatus
//  2. CountReservasPorStatus
//  3. CountMapas + CountQuadras + CountUsuarios
//  4. ValoresAgregados
func (uc *DashboardUseCase) GetResumo(ctx context.Context) (*dto.DashboardResponse, error) {
	if uc.cache != nil {
		var cached dto.DashboardResponse
		if hit, err := uc.cache.GetJSON(ctx, reservation.CacheKeyDashboard, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	type contagemResult struct {
		m   map[string]int
		err error
	}
	type totaisResult struct {
		mapas, quadras, usuarios int
		err                      error
	}
	type valoresResult struct {
		reservado, vendido decimal.Decimal
		err                error
	}

	lotesCh := make(chan contagemResult, 1)
	reservasCh := make(chan contagemResult, 1)
	totaisCh := make(chan totaisResult, 1)
	valoresCh := make(chan valoresResult, 1)

	go func() {
		m, err := uc.repo.CountLotesPorStatus(ctx)
		lotesCh <- contagemResult{m, err}
	}()
	go func() {
		m, err := uc.repo.CountReservasPorStatus(ctx)
		reservasCh <- contagemResult{m, err}
	}()
	go func() {
		var r totaisResult
		r.mapas, r.err = uc.repo.CountMapas(ctx)
		if r.err == nil {
			r.quadras, r.err = uc.repo.CountQuadras(ctx)
		}
		if r.err == nil {
			r.usuarios, r.err = uc.repo.CountUsuarios(ctx)
		}
		totaisCh <- r
	}()
	go func() {
		reservado, vendido, err := uc.repo.ValoresAgregados(ctx)
		valoresCh <- valoresResult{reservado, vendido, err}
	}()

	lotes := <-lotesCh
	reservas := <-reservasCh
	totais := <-totaisCh
	valores := <-valoresCh

	if lotes.err != nil {
		return nil, fmt.Errorf("dashboard: lotes por status: %w", lotes.err)
	}
	if reservas.err != nil {
		return nil, fmt.Errorf("dashboard: reservas por status: %w", reservas.err)
	}
	if totais.err != nil {
		return nil, fmt.Errorf("dashboard: totais: %w", totais.err)
	}
	if valores.err != nil {
		return nil, fmt.Errorf("dashboard: valores agregados: %w", valores.err)
	}

	out := &dto.DashboardResponse{
		LotesPorStatus:    lotes.m,
		ReservasPorStatus: reservas.m,
		TotalMapas:        totais.mapas,
		TotalQuadras:      totais.quadras,
		TotalUsuarios:     totais.usuarios,
		ValorReservado:    valores.reservado.Round(2),
		ValorVendido:      valores.vendido.Round(2),
	}
	if uc.cache != nil {
		_ = uc.cache.SetJSON(ctx, reservation.CacheKeyDashboard, out, dashboardTTL)
	}
	return out, nil
}
