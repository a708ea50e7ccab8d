package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cloudcollect/cobranza-api/internal/domain/repository"
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos de deudores y teléfonos
// atados a la tx y hace Commit o Rollback. Cubre el alta de cuenta con sus
// teléfonos y el reemplazo total de teléfonos en la actualización.
func (r *TxRunner) Run(ctx context.Context, fn func(
	debtorRepo repository.DebtorRepository,
	phoneRepo repository.PhoneRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	debtorRepo := NewDebtorRepository(tx)
	phoneRepo := NewPhoneRepository(tx)

	if err := fn(debtorRepo, phoneRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
