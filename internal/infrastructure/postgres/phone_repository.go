package postgres

import (
	"context"
	"fmt"

	"github.com/cloudcollect/cobranza-api/internal/domain"
	"github.com/cloudcollect/cobranza-api/internal/domain/entity"
	"github.com/cloudcollect/cobranza-api/internal/domain/repository"
)

var _ repository.PhoneRepository = (*PhoneRepo)(nil)

const phoneColumns = `id, company_id, debtor_id, type, number, is_primary, created_at`

// PhoneRepo implementación de PhoneRepository (usable con pool o tx).
type PhoneRepo struct {
	q Querier
}

// NewPhoneRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPhoneRepository(q Querier) *PhoneRepo {
	return &PhoneRepo{q: q}
}

// Create persiste un teléfono del deudor.
func (r *PhoneRepo) Create(ctx context.Context, p *entity.PhoneNumber) error {
	query := `
		INSERT INTO phone_numbers (` + phoneColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.CompanyID, p.DebtorID, p.Type, p.Number, p.IsPrimary, p.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert phone: %w", err)
	}
	return nil
}

// ListByDebtor devuelve los teléfonos: primarios primero, luego por antigüedad.
func (r *PhoneRepo) ListByDebtor(ctx context.Context, companyID, debtorID string) ([]*entity.PhoneNumber, error) {
	query := `
		SELECT ` + phoneColumns + `
		FROM phone_numbers
		WHERE company_id = $1 AND debtor_id = $2
		ORDER BY is_primary DESC, created_at ASC`
	rows, err := r.q.Query(ctx, query, companyID, debtorID)
	if err != nil {
		return nil, fmt.Errorf("list phones: %w", err)
	}
	defer rows.Close()
	var list []*entity.PhoneNumber
	for rows.Next() {
		var p entity.PhoneNumber
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.DebtorID, &p.Type, &p.Number, &p.IsPrimary, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan phone: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListByDebtors trae los teléfonos de toda la página en una sola consulta.
func (r *PhoneRepo) ListByDebtors(ctx context.Context, companyID string, debtorIDs []string) (map[string][]*entity.PhoneNumber, error) {
	out := make(map[string][]*entity.PhoneNumber, len(debtorIDs))
	if len(debtorIDs) == 0 {
		return out, nil
	}
	query := `
		SELECT ` + phoneColumns + `
		FROM phone_numbers
		WHERE company_id = $1 AND debtor_id = ANY($2)
		ORDER BY is_primary DESC, created_at ASC`
	rows, err := r.q.Query(ctx, query, companyID, debtorIDs)
	if err != nil {
		return nil, fmt.Errorf("list phones by debtors: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p entity.PhoneNumber
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.DebtorID, &p.Type, &p.Number, &p.IsPrimary, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan phone: %w", err)
		}
		out[p.DebtorID] = append(out[p.DebtorID], &p)
	}
	return out, rows.Err()
}

// DeleteByDebtor borra todos los teléfonos del deudor (reemplazo total).
func (r *PhoneRepo) DeleteByDebtor(ctx context.Context, companyID, debtorID string) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM phone_numbers WHERE company_id = $1 AND debtor_id = $2`,
		companyID, debtorID,
	)
	if err != nil {
		return fmt.Errorf("delete phones: %w", err)
	}
	return nil
}
