package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cloudcollect/cobranza-api/internal/application/dto"
	"github.com/cloudcollect/cobranza-api/internal/domain/entity"
	"github.com/cloudcollect/cobranza-api/internal/domain/repository"
)

// DashboardUseCase KPIs de la cartera del tenant.
type DashboardUseCase struct {
	stats repository.StatsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(stats repository.StatsRepository) *DashboardUseCase {
	return &DashboardUseCase{stats: stats}
}

// GetStats arma los indicadores del tablero. Las cuatro consultas son
// independientes y se lanzan en paralelo. Con cartera vacía todo es cero,
// incluida la tasa de éxito (sin división por cero).
func (uc *DashboardUseCase) GetStats(ctx context.Context, companyID string) (*dto.DashboardStatsResponse, error) {
	if err := requireCompany(companyID); err != nil {
		return nil, err
	}

	type countResult struct {
		n   int64
		err error
	}
	type sumResult struct {
		total decimal.Decimal
		err   error
	}

	totalCh := make(chan countResult, 1)
	activeCh := make(chan countResult, 1)
	debtCh := make(chan sumResult, 1)
	monthCh := make(chan sumResult, 1)

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	go func() {
		n, err := uc.stats.CountDebtors(ctx, companyID)
		totalCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.stats.CountDebtorsByStatus(ctx, companyID, entity.DebtorStatusActive)
		activeCh <- countResult{n, err}
	}()
	go func() {
		total, err := uc.stats.SumCurrentBalances(ctx, companyID)
		debtCh <- sumResult{total, err}
	}()
	go func() {
		total, err := uc.stats.SumPaymentsSince(ctx, companyID, monthStart)
		monthCh <- sumResult{total, err}
	}()

	totalRes := <-totalCh
	activeRes := <-activeCh
	debtRes := <-debtCh
	monthRes := <-monthCh

	if totalRes.err != nil {
		return nil, fmt.Errorf("dashboard: total de cuentas: %w", totalRes.err)
	}
	if activeRes.err != nil {
		return nil, fmt.Errorf("dashboard: cuentas activas: %w", activeRes.err)
	}
	if debtRes.err != nil {
		return nil, fmt.Errorf("dashboard: deuda total: %w", debtRes.err)
	}
	if monthRes.err != nil {
		return nil, fmt.Errorf("dashboard: recaudo del mes: %w", monthRes.err)
	}

	successRate := 0
	if totalRes.n > 0 {
		successRate = int(math.Round(float64(activeRes.n) / float64(totalRes.n) * 100))
	}

	return &dto.DashboardStatsResponse{
		TotalAccounts:     totalRes.n,
		ActiveAccounts:    activeRes.n,
		TotalDebt:         debtRes.total,
		CollectedDebt:     monthRes.total,
		MonthlyCollection: monthRes.total,
		SuccessRate:       successRate,
	}, nil
}
