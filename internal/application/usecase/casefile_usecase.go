package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cloudcollect/cobranza-api/internal/application/dto"
	"github.com/cloudcollect/cobranza-api/internal/domain"
	"github.com/cloudcollect/cobranza-api/internal/domain/entity"
	"github.com/cloudcollect/cobranza-api/internal/domain/repository"
)

var actionStatuses = map[string]bool{
	"pending":   true,
	"completed": true,
	"overdue":   true,
}

// CaseFileUseCase casos de uso del expediente: notas, documentos, acciones
// y codeudores de una cuenta.
type CaseFileUseCase struct {
	notes     repository.NoteRepository
	documents repository.DocumentRepository
	actions   repository.ActionRepository
	coDebtors repository.CoDebtorRepository
}

// NewCaseFileUseCase construye el caso de uso.
func NewCaseFileUseCase(
	notes repository.NoteRepository,
	documents repository.DocumentRepository,
	actions repository.ActionRepository,
	coDebtors repository.CoDebtorRepository,
) *CaseFileUseCase {
	return &CaseFileUseCase{notes: notes, documents: documents, actions: actions, coDebtors: coDebtors}
}

// CreateNote anota la cuenta. Las notas son inmutables.
func (uc *CaseFileUseCase) CreateNote(ctx context.Context, companyID string, in dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	if err := requireCompany(companyID); err != nil {
		return nil, err
	}
	if in.DebtorID == "" {
		return nil, fmt.Errorf("%w: debtorId es obligatorio", domain.ErrInvalidInput)
	}
	if in.Content == "" {
		return nil, fmt.Errorf("%w: content es obligatorio", domain.ErrInvalidInput)
	}
	id := in.ID
	if id == "" {
		id = uuid.New().String()
	}
	note := &entity.Note{
		ID:        id,
		CompanyID: companyID,
		DebtorID:  in.DebtorID,
		Content:   in.Content,
		CreatedBy: in.CreatedBy,
		CreatedAt: time.Now(),
	}
	if err := uc.notes.Create(ctx, note); err != nil {
		return nil, err
	}
	return toNoteResponse(note), nil
}

// ListNotes devuelve las notas de la cuenta, más recientes primero.
func (uc *CaseFileUseCase) ListNotes(ctx context.Context, companyID, debtorID string) ([]dto.NoteResponse, error) {
	if err := requireCompany(companyID); err != nil {
		return nil, err
	}
	rows, err := uc.notes.ListByDebtor(ctx, companyID, debtorID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NoteResponse, 0, len(rows))
	for _, n := range rows {
		items = append(items, *toNoteResponse(n))
	}
	return items, nil
}

// CreateDocument registra los metadatos de un documento; el binario vive fuera.
func (uc *CaseFileUseCase) CreateDocument(ctx context.Context, companyID string, in dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	if err := requireCompany(companyID); err != nil {
		return nil, err
	}
	if in.DebtorID == "" {
		return nil, fmt.Errorf("%w: debtorId es obligatorio", domain.ErrInvalidInput)
	}
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	}
	id := in.ID
	if id == "" {
		id = uuid.New().String()
	}
	doc := &entity.Document{
		ID:         id,
		CompanyID:  companyID,
		DebtorID:   in.DebtorID,
		Name:       in.Name,
		Type:       in.Type,
		URL:        in.URL,
		UploadedBy: in.UploadedBy,
		UploadedAt: time.Now(),
	}
	if err := uc.documents.Create(ctx, doc); err != nil {
		return nil, err
	}
	return toDocumentResponse(doc), nil
}

// ListDocuments devuelve los documentos de la cuenta, más recientes primero.
func (uc *CaseFileUseCase) ListDocuments(ctx context.Context, companyID, debtorID string) ([]dto.DocumentResponse, error) {
	if err := requireCompany(companyID); err != nil {
		return nil, err
	}
	rows, err := uc.documents.ListByDebtor(ctx, companyID, debtorID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocumentResponse, 0, len(rows))
	for _, d := range rows {
		items = append(items, *toDocumentResponse(d))
	}
	return items, nil
}

// CreateAction crea una tarea o recordatorio sobre la cuenta.
func (uc *CaseFileUseCase) CreateAction(ctx context.Context, companyID string, in dto.CreateActionRequest) (*dto.ActionResponse, error) {
	if err := requireCompany(companyID); err != nil {
		return nil, err
	}
	if in.DebtorID == "" {
		return nil, fmt.Errorf("%w: debtorId es obligatorio", domain.ErrInvalidInput)
	}
	if in.Type == "" {
		return nil, fmt.Errorf("%w: type es obligatorio", domain.ErrInvalidInput)
	}
	status := in.Status
	if status == "" {
		status = "pending"
	}
	if !actionStatuses[status] {
		return nil, fmt.Errorf("%w: status %q desconocido", domain.ErrInvalidInput, status)
	}
	dueDate, err := parseDatePtr("dueDate", in.DueDate)
	if err != nil {
		return nil, err
	}
	id := in.ID
	if id == "" {
		id = uuid.New().String()
	}
	action := &entity.Action{
		ID:          id,
		CompanyID:   companyID,
		DebtorID:    in.DebtorID,
		Type:        in.Type,
		Description: in.Description,
		DueDate:     dueDate,
		Status:      status,
		CreatedAt:   time.Now(),
	}
	if err := uc.actions.Create(ctx, action); err != nil {
		return nil, err
	}
	return toActionResponse(action), nil
}

// ListActions devuelve las acciones de la cuenta, más recientes primero.
func (uc *CaseFileUseCase) ListActions(ctx context.Context, companyID, debtorID string) ([]dto.ActionResponse, error) {
	if err := requireCompany(companyID); err != nil {
		return nil, err
	}
	rows, err := uc.actions.ListByDebtor(ctx, companyID, debtorID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ActionResponse, 0, len(rows))
	for _, a := range rows {
		items = append(items, *toActionResponse(a))
	}
	return items, nil
}

// CreateCoDebtor asocia un obligado solidario a la cuenta.
func (uc *CaseFileUseCase) CreateCoDebtor(ctx context.Context, companyID string, in dto.CreateCoDebtorRequest) (*dto.CoDebtorResponse, error) {
	if err := requireCompany(companyID); err != nil {
		return nil, err
	}
	if in.DebtorID == "" {
		return nil, fmt.Errorf("%w: debtorId es obligatorio", domain.ErrInvalidInput)
	}
	if in.FirstName == "" || in.LastName == "" {
		return nil, fmt.Errorf("%w: firstName y lastName son obligatorios", domain.ErrInvalidInput)
	}
	id := in.ID
	if id == "" {
		id = uuid.New().String()
	}
	co := &entity.CoDebtor{
		ID:           id,
		CompanyID:    companyID,
		DebtorID:     in.DebtorID,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Address:      in.Address,
		City:         in.City,
		State:        in.State,
		Zip:          in.Zip,
		SSN:          in.SSN,
		DOB:          in.DOB,
		Employer:     in.Employer,
		Relationship: in.Relationship,
		DateAdded:    time.Now(),
	}
	if err := uc.coDebtors.Create(ctx, co); err != nil {
		return nil, err
	}
	return toCoDebtorResponse(co), nil
}

// ListCoDebtors devuelve los codeudores de la cuenta.
func (uc *CaseFileUseCase) ListCoDebtors(ctx context.Context, companyID, debtorID string) ([]dto.CoDebtorResponse, error) {
	if err := requireCompany(companyID); err != nil {
		return nil, err
	}
	rows, err := uc.coDebtors.ListByDebtor(ctx, companyID, debtorID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CoDebtorResponse, 0, len(rows))
	for _, c := range rows {
		items = append(items, *toCoDebtorResponse(c))
	}
	return items, nil
}

func toNoteResponse(n *entity.Note) *dto.NoteResponse {
	if n == nil {
		return nil
	}
	return &dto.NoteResponse{
		ID:        n.ID,
		CompanyID: n.CompanyID,
		DebtorID:  n.DebtorID,
		Content:   n.Content,
		CreatedBy: n.CreatedBy,
		CreatedAt: n.CreatedAt,
	}
}

func toDocumentResponse(d *entity.Document) *dto.DocumentResponse {
	if d == nil {
		return nil
	}
	return &dto.DocumentResponse{
		ID:         d.ID,
		CompanyID:  d.CompanyID,
		DebtorID:   d.DebtorID,
		Name:       d.Name,
		Type:       d.Type,
		URL:        d.URL,
		UploadedBy: d.UploadedBy,
		UploadedAt: d.UploadedAt,
	}
}

func toActionResponse(a *entity.Action) *dto.ActionResponse {
	if a == nil {
		return nil
	}
	return &dto.ActionResponse{
		ID:          a.ID,
		CompanyID:   a.CompanyID,
		DebtorID:    a.DebtorID,
		Type:        a.Type,
		Description: a.Description,
		DueDate:     a.DueDate,
		CompletedAt: a.CompletedAt,
		CompletedBy: a.CompletedBy,
		Status:      a.Status,
		CreatedAt:   a.CreatedAt,
	}
}

func toCoDebtorResponse(c *entity.CoDebtor) *dto.CoDebtorResponse {
	if c == nil {
		return nil
	}
	return &dto.CoDebtorResponse{
		ID:           c.ID,
		CompanyID:    c.CompanyID,
		DebtorID:     c.DebtorID,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Email:        c.Email,
		Address:      c.Address,
		City:         c.City,
		State:        c.State,
		Zip:          c.Zip,
		SSN:          c.SSN,
		DOB:          c.DOB,
		Employer:     c.Employer,
		Relationship: c.Relationship,
		DateAdded:    c.DateAdded,
	}
}
