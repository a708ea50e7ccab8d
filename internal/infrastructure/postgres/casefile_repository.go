package postgres

import (
	"context"
	"fmt"

	"github.com/cloudcollect/cobranza-api/internal/domain"
	"github.com/cloudcollect/cobranza-api/internal/domain/entity"
	"github.com/cloudcollect/cobranza-api/internal/domain/repository"
)

var _ repository.NoteRepository = (*NoteRepo)(nil)
var _ repository.DocumentRepository = (*DocumentRepo)(nil)
var _ repository.ActionRepository = (*ActionRepo)(nil)
var _ repository.CoDebtorRepository = (*CoDebtorRepo)(nil)

// NoteRepo implementación de NoteRepository (usable con pool o tx).
type NoteRepo struct {
	q Querier
}

// NewNoteRepository construye el adaptador.
func NewNoteRepository(q Querier) *NoteRepo {
	return &NoteRepo{q: q}
}

// Create persiste una nota.
func (r *NoteRepo) Create(ctx context.Context, n *entity.Note) error {
	query := `
		INSERT INTO notes (id, company_id, debtor_id, content, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, n.ID, n.CompanyID, n.DebtorID, n.Content, n.CreatedBy, n.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

// ListByDebtor devuelve las notas, más recientes primero.
func (r *NoteRepo) ListByDebtor(ctx context.Context, companyID, debtorID string) ([]*entity.Note, error) {
	query := `
		SELECT id, company_id, debtor_id, content, created_by, created_at
		FROM notes
		WHERE company_id = $1 AND debtor_id = $2
		ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, companyID, debtorID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Note
	for rows.Next() {
		var n entity.Note
		if err := rows.Scan(&n.ID, &n.CompanyID, &n.DebtorID, &n.Content, &n.CreatedBy, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// DocumentRepo implementación de DocumentRepository.
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador.
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

// Create persiste los metadatos de un documento.
func (r *DocumentRepo) Create(ctx context.Context, d *entity.Document) error {
	query := `
		INSERT INTO documents (id, company_id, debtor_id, name, type, url, uploaded_by, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query, d.ID, d.CompanyID, d.DebtorID, d.Name, d.Type, d.URL, d.UploadedBy, d.UploadedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// ListByDebtor devuelve los documentos, más recientes primero.
func (r *DocumentRepo) ListByDebtor(ctx context.Context, companyID, debtorID string) ([]*entity.Document, error) {
	query := `
		SELECT id, company_id, debtor_id, name, type, url, uploaded_by, uploaded_at
		FROM documents
		WHERE company_id = $1 AND debtor_id = $2
		ORDER BY uploaded_at DESC`
	rows, err := r.q.Query(ctx, query, companyID, debtorID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	var list []*entity.Document
	for rows.Next() {
		var d entity.Document
		if err := rows.Scan(&d.ID, &d.CompanyID, &d.DebtorID, &d.Name, &d.Type, &d.URL, &d.UploadedBy, &d.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// ActionRepo implementación de ActionRepository.
type ActionRepo struct {
	q Querier
}

// NewActionRepository construye el adaptador.
func NewActionRepository(q Querier) *ActionRepo {
	return &ActionRepo{q: q}
}

// Create persiste una acción.
func (r *ActionRepo) Create(ctx context.Context, a *entity.Action) error {
	query := `
		INSERT INTO actions (id, company_id, debtor_id, type, description, due_date,
			completed_at, completed_by, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query, a.ID, a.CompanyID, a.DebtorID, a.Type, a.Description,
		a.DueDate, a.CompletedAt, a.CompletedBy, a.Status, a.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert action: %w", err)
	}
	return nil
}

// ListByDebtor devuelve las acciones, más recientes primero.
func (r *ActionRepo) ListByDebtor(ctx context.Context, companyID, debtorID string) ([]*entity.Action, error) {
	query := `
		SELECT id, company_id, debtor_id, type, description, due_date,
			completed_at, completed_by, status, created_at
		FROM actions
		WHERE company_id = $1 AND debtor_id = $2
		ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, companyID, debtorID)
	if err != nil {
		return nil, fmt.Errorf("list actions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Action
	for rows.Next() {
		var a entity.Action
		if err := rows.Scan(&a.ID, &a.CompanyID, &a.DebtorID, &a.Type, &a.Description,
			&a.DueDate, &a.CompletedAt, &a.CompletedBy, &a.Status, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan action: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// CoDebtorRepo implementación de CoDebtorRepository.
type CoDebtorRepo struct {
	q Querier
}

// NewCoDebtorRepository construye el adaptador.
func NewCoDebtorRepository(q Querier) *CoDebtorRepo {
	return &CoDebtorRepo{q: q}
}

// Create persiste un codeudor.
func (r *CoDebtorRepo) Create(ctx context.Context, c *entity.CoDebtor) error {
	query := `
		INSERT INTO co_debtors (id, company_id, debtor_id, first_name, last_name, email,
			address, city, state, zip, ssn, dob, employer, relationship, date_added)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query, c.ID, c.CompanyID, c.DebtorID, c.FirstName, c.LastName, c.Email,
		c.Address, c.City, c.State, c.Zip, c.SSN, c.DOB, c.Employer, c.Relationship, c.DateAdded)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert co-debtor: %w", err)
	}
	return nil
}

// ListByDebtor devuelve los codeudores de la cuenta.
func (r *CoDebtorRepo) ListByDebtor(ctx context.Context, companyID, debtorID string) ([]*entity.CoDebtor, error) {
	query := `
		SELECT id, company_id, debtor_id, first_name, last_name, email,
			address, city, state, zip, ssn, dob, employer, relationship, date_added
		FROM co_debtors
		WHERE company_id = $1 AND debtor_id = $2
		ORDER BY date_added ASC`
	rows, err := r.q.Query(ctx, query, companyID, debtorID)
	if err != nil {
		return nil, fmt.Errorf("list co-debtors: %w", err)
	}
	defer rows.Close()
	var list []*entity.CoDebtor
	for rows.Next() {
		var c entity.CoDebtor
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.DebtorID, &c.FirstName, &c.LastName, &c.Email,
			&c.Address, &c.City, &c.State, &c.Zip, &c.SSN, &c.DOB, &c.Employer, &c.Relationship, &c.DateAdded); err != nil {
			return nil, fmt.Errorf("scan co-debtor: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
