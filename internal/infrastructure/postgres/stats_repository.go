package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cloudcollect/cobranza-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas agregadas para el tablero.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// CountDebtors cuenta todas las cuentas del tenant.
func (r *StatsRepo) CountDebtors(ctx context.Context, companyID string) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM debtors WHERE company_id = $1`, companyID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count debtors: %w", err)
	}
	return n, nil
}

// CountDebtorsByStatus cuenta las cuentas en un estado dado.
func (r *StatsRepo) CountDebtorsByStatus(ctx context.Context, companyID, status string) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM debtors WHERE company_id = $1 AND status = $2`, companyID, status,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count debtors by status: %w", err)
	}
	return n, nil
}

// SumCurrentBalances suma el saldo vigente de toda la cartera.
func (r *StatsRepo) SumCurrentBalances(ctx context.Context, companyID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(current_balance), 0) FROM debtors WHERE company_id = $1`, companyID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum current balances: %w", err)
	}
	return total, nil
}

// SumPaymentsSince suma los pagos desde la fecha dada (inclusive).
func (r *StatsRepo) SumPaymentsSince(ctx context.Context, companyID string, since time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0)
		 FROM payments
		 WHERE company_id = $1 AND payment_date >= $2`,
		companyID, since,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum payments since: %w", err)
	}
	return total, nil
}
