package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/cloudcollect/cobranza-api/internal/domain"
	"github.com/cloudcollect/cobranza-api/internal/domain/entity"
	"github.com/cloudcollect/cobranza-api/internal/domain/repository"
)

var _ repository.DebtorRepository = (*DebtorRepo)(nil)

const debtorColumns = `id, company_id, first_name, last_name, email, address, city, state, zip,
	ssn, dob, employer, account_number, original_balance, current_balance, status,
	last_payment_date, last_payment_amount, creditor_id, creditor_name, client_name,
	portfolio_id, case_file_number, client_claim_number, date_loaded, origination_date,
	charged_off_date, purchase_date, assigned_collector, created_at, updated_at`

// debtorUpdatableColumns es la lista blanca del UPDATE dinámico: cualquier
// columna fuera de esta lista se rechaza antes de tocar SQL.
var debtorUpdatableColumns = map[string]bool{
	"first_name":          true,
	"last_name":           true,
	"email":               true,
	"address":             true,
	"city":                true,
	"state":               true,
	"zip":                 true,
	"ssn":                 true,
	"dob":                 true,
	"employer":            true,
	"account_number":      true,
	"original_balance":    true,
	"current_balance":     true,
	"status":              true,
	"last_payment_date":   true,
	"last_payment_amount": true,
	"creditor_id":         true,
	"creditor_name":       true,
	"client_name":         true,
	"portfolio_id":        true,
	"case_file_number":    true,
	"client_claim_number": true,
	"date_loaded":         true,
	"origination_date":    true,
	"charged_off_date":    true,
	"purchase_date":       true,
	"assigned_collector":  true,
}

// DebtorRepo implementación de DebtorRepository (usable con pool o tx).
type DebtorRepo struct {
	q Querier
}

// NewDebtorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDebtorRepository(q Querier) *DebtorRepo {
	return &DebtorRepo{q: q}
}

// Create persiste una nueva cuenta. domain.ErrDuplicate si el número de
// cuenta ya existe en la empresa.
func (r *DebtorRepo) Create(ctx context.Context, d *entity.Debtor) error {
	query := `
		INSERT INTO debtors (` + debtorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.CompanyID, d.FirstName, d.LastName, d.Email, d.Address, d.City, d.State, d.Zip,
		d.SSN, d.DOB, d.Employer, d.AccountNumber, d.OriginalBalance, d.CurrentBalance, d.Status,
		d.LastPaymentDate, d.LastPaymentAmount, d.CreditorID, d.CreditorName, d.ClientName,
		d.PortfolioID, d.CaseFileNumber, d.ClientClaimNumber, d.DateLoaded, d.OriginationDate,
		d.ChargedOffDate, d.PurchaseDate, d.AssignedCollector, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert debtor: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta del tenant. nil si no existe.
func (r *DebtorRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Debtor, error) {
	query := `SELECT ` + debtorColumns + ` FROM debtors WHERE company_id = $1 AND id = $2`
	row := r.q.QueryRow(ctx, query, companyID, id)
	d, err := scanDebtor(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get debtor: %w", err)
	}
	return d, nil
}

// ListByCompany devuelve una página de cuentas, más recientes primero.
func (r *DebtorRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Debtor, error) {
	query := `
		SELECT ` + debtorColumns + `
		FROM debtors WHERE company_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list debtors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Debtor
	for rows.Next() {
		d, err := scanDebtor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan debtor: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Update aplica solo los campos provistos y estampa updated_at. Las columnas
// llegan ya con nombre de columna; aquí se validan contra la lista blanca.
func (r *DebtorRepo) Update(ctx context.Context, companyID, id string, fields map[string]any) error {
	clause, args, err := buildDebtorUpdate(fields)
	if err != nil {
		return err
	}
	if clause == "" {
		// Nada que actualizar aparte del timestamp.
		clause = "updated_at = now()"
	}
	args = append(args, companyID, id)
	query := fmt.Sprintf(
		"UPDATE debtors SET %s WHERE company_id = $%d AND id = $%d",
		clause, len(args)-1, len(args),
	)
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update debtor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// buildDebtorUpdate arma la cláusula SET a partir de columna -> valor nuevo.
// Orden determinista para que la consulta sea estable y testeable.
func buildDebtorUpdate(fields map[string]any) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, nil
	}
	cols := make([]string, 0, len(fields))
	for col := range fields {
		if !debtorUpdatableColumns[col] {
			return "", nil, fmt.Errorf("%w: columna no actualizable %q", domain.ErrInvalidInput, col)
		}
		cols = append(cols, col)
	}
	sort.Strings(cols)

	parts := make([]string, 0, len(cols)+1)
	args := make([]any, 0, len(cols))
	for i, col := range cols {
		parts = append(parts, fmt.Sprintf("%s = $%d", col, i+1))
		args = append(args, fields[col])
	}
	parts = append(parts, "updated_at = now()")
	return strings.Join(parts, ", "), args, nil
}

// Delete borra físicamente la cuenta; los hijos caen por cascada.
func (r *DebtorRepo) Delete(ctx context.Context, companyID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM debtors WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete debtor: %w", err)
	}
	return nil
}

// Search busca por subcadena (ILIKE) en nombre, apellido, número de cuenta,
// SSN y teléfonos. Agrupa por deudor para que una cuenta con varios teléfonos
// coincidentes aparezca una sola vez, con los números concatenados.
func (r *DebtorRepo) Search(ctx context.Context, companyID, term string, limit int) ([]*entity.SearchHit, error) {
	pattern := "%" + term + "%"
	query := `
		SELECT d.id, d.company_id, d.first_name, d.last_name, d.email, d.address, d.city, d.state, d.zip,
			d.ssn, d.dob, d.employer, d.account_number, d.original_balance, d.current_balance, d.status,
			d.last_payment_date, d.last_payment_amount, d.creditor_id, d.creditor_name, d.client_name,
			d.portfolio_id, d.case_file_number, d.client_claim_number, d.date_loaded, d.origination_date,
			d.charged_off_date, d.purchase_date, d.assigned_collector, d.created_at, d.updated_at,
			COALESCE(string_agg(p.number, ','), '') AS phone_numbers
		FROM debtors d
		LEFT JOIN phone_numbers p ON p.debtor_id = d.id AND p.company_id = d.company_id
		WHERE d.company_id = $1 AND (
			d.first_name ILIKE $2
			OR d.last_name ILIKE $2
			OR d.account_number ILIKE $2
			OR d.ssn ILIKE $2
			OR p.number ILIKE $2
		)
		GROUP BY d.id
		ORDER BY d.last_name, d.first_name
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, companyID, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("search debtors: %w", err)
	}
	defer rows.Close()
	var hits []*entity.SearchHit
	for rows.Next() {
		var h entity.SearchHit
		if err := scanDebtorInto(rows, &h.Debtor, &h.PhoneNumbers); err != nil {
			return nil, fmt.Errorf("scan search hit: %w", err)
		}
		hits = append(hits, &h)
	}
	return hits, rows.Err()
}

func scanDebtor(row pgx.Row) (*entity.Debtor, error) {
	var d entity.Debtor
	if err := scanDebtorInto(row, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// scanDebtorInto escanea las columnas de debtorColumns más cualquier columna
// extra indicada (p. ej. el agregado de teléfonos del buscador).
func scanDebtorInto(row pgx.Row, d *entity.Debtor, extra ...any) error {
	dest := []any{
		&d.ID, &d.CompanyID, &d.FirstName, &d.LastName, &d.Email, &d.Address, &d.City, &d.State, &d.Zip,
		&d.SSN, &d.DOB, &d.Employer, &d.AccountNumber, &d.OriginalBalance, &d.CurrentBalance, &d.Status,
		&d.LastPaymentDate, &d.LastPaymentAmount, &d.CreditorID, &d.CreditorName, &d.ClientName,
		&d.PortfolioID, &d.CaseFileNumber, &d.ClientClaimNumber, &d.DateLoaded, &d.OriginationDate,
		&d.ChargedOffDate, &d.PurchaseDate, &d.AssignedCollector, &d.CreatedAt, &d.UpdatedAt,
	}
	dest = append(dest, extra...)
	return row.Scan(dest...)
}
