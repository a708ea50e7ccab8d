package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StatsRepository agrupa las consultas de solo lectura del dashboard.
type StatsRepository interface {
	CountDebtors(ctx context.Context, companyID string) (int64, error)
	CountDebtorsByStatus(ctx context.Context, companyID, status string) (int64, error)
	// SumCurrentBalances devuelve cero (no NULL) cuando no hay cuentas.
	SumCurrentBalances(ctx context.Context, companyID string) (decimal.Decimal, error)
	// SumPaymentsSince suma los pagos con payment_date >= since.
	SumPaymentsSince(ctx context.Context, companyID string, since time.Time) (decimal.Decimal, error)
}
