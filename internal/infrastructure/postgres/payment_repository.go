package postgres

import (
	"context"
	"fmt"

	"github.com/cloudcollect/cobranza-api/internal/domain"
	"github.com/cloudcollect/cobranza-api/internal/domain/entity"
	"github.com/cloudcollect/cobranza-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)
var _ repository.ScheduledPaymentRepository = (*ScheduledPaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste un pago.
func (r *PaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	query := `
		INSERT INTO payments (id, company_id, debtor_id, amount, payment_date, method,
			status, reference, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.CompanyID, p.DebtorID, p.Amount, p.PaymentDate, p.Method,
		p.Status, p.Reference, p.Notes, p.CreatedBy, p.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// ListByDebtor devuelve los pagos del deudor, más recientes primero.
func (r *PaymentRepo) ListByDebtor(ctx context.Context, companyID, debtorID string) ([]*entity.Payment, error) {
	query := `
		SELECT id, company_id, debtor_id, amount, payment_date, method,
			status, reference, notes, created_by, created_at
		FROM payments
		WHERE company_id = $1 AND debtor_id = $2
		ORDER BY payment_date DESC`
	rows, err := r.q.Query(ctx, query, companyID, debtorID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.DebtorID, &p.Amount, &p.PaymentDate,
			&p.Method, &p.Status, &p.Reference, &p.Notes, &p.CreatedBy, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ScheduledPaymentRepo implementación de ScheduledPaymentRepository.
type ScheduledPaymentRepo struct {
	q Querier
}

// NewScheduledPaymentRepository construye el adaptador.
func NewScheduledPaymentRepository(q Querier) *ScheduledPaymentRepo {
	return &ScheduledPaymentRepo{q: q}
}

// Create persiste un pago programado.
func (r *ScheduledPaymentRepo) Create(ctx context.Context, p *entity.ScheduledPayment) error {
	query := `
		INSERT INTO scheduled_payments (id, company_id, debtor_id, amount, scheduled_date,
			method, status, reference, notes, created_by, created_at, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.CompanyID, p.DebtorID, p.Amount, p.ScheduledDate,
		p.Method, p.Status, p.Reference, p.Notes, p.CreatedBy, p.CreatedAt, p.LastUpdated,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert scheduled payment: %w", err)
	}
	return nil
}

// ListByDebtor devuelve los pagos programados, próximos primero.
func (r *ScheduledPaymentRepo) ListByDebtor(ctx context.Context, companyID, debtorID string) ([]*entity.ScheduledPayment, error) {
	query := `
		SELECT id, company_id, debtor_id, amount, scheduled_date,
			method, status, reference, notes, created_by, created_at, last_updated
		FROM scheduled_payments
		WHERE company_id = $1 AND debtor_id = $2
		ORDER BY scheduled_date ASC`
	rows, err := r.q.Query(ctx, query, companyID, debtorID)
	if err != nil {
		return nil, fmt.Errorf("list scheduled payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.ScheduledPayment
	for rows.Next() {
		var p entity.ScheduledPayment
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.DebtorID, &p.Amount, &p.ScheduledDate,
			&p.Method, &p.Status, &p.Reference, &p.Notes, &p.CreatedBy, &p.CreatedAt, &p.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan scheduled payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
