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
	"github.com/cloudcollect/cobranza-api/pkg/search"
)

// TxRunner ejecuta un callback con repos de deudores y teléfonos atados a una
// transacción. Lo implementa la infraestructura postgres.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		debtorRepo repository.DebtorRepository,
		phoneRepo repository.PhoneRepository,
	) error) error
}

// Límites por defecto de listados y búsqueda.
const (
	defaultSearchLimit = 20
)

var validDebtorStatuses = map[string]bool{
	entity.DebtorStatusActive:   true,
	entity.DebtorStatusPaid:     true,
	entity.DebtorStatusInactive: true,
	entity.DebtorStatusDisputed: true,
}

// DebtorUseCase casos de uso del agregado cuenta: CRUD, listado con filtro,
// búsqueda y detalle con colecciones hijas.
type DebtorUseCase struct {
	debtors   repository.DebtorRepository
	phones    repository.PhoneRepository
	payments  repository.PaymentRepository
	notes     repository.NoteRepository
	documents repository.DocumentRepository
	actions   repository.ActionRepository
	tx        TxRunner
}

// NewDebtorUseCase construye el caso de uso.
func NewDebtorUseCase(
	debtors repository.DebtorRepository,
	phones repository.PhoneRepository,
	payments repository.PaymentRepository,
	notes repository.NoteRepository,
	documents repository.DocumentRepository,
	actions repository.ActionRepository,
	tx TxRunner,
) *DebtorUseCase {
	return &DebtorUseCase{
		debtors:   debtors,
		phones:    phones,
		payments:  payments,
		notes:     notes,
		documents: documents,
		actions:   actions,
		tx:        tx,
	}
}

// Create inserta la cuenta y sus teléfonos en una sola transacción: o queda
// todo o no queda nada.
func (uc *DebtorUseCase) Create(ctx context.Context, companyID string, in dto.CreateDebtorRequest) (*dto.DebtorListItem, error) {
	if err := requireCompany(companyID); err != nil {
		return nil, err
	}
	if in.FirstName == "" || in.LastName == "" {
		return nil, fmt.Errorf("%w: firstName y lastName son obligatorios", domain.ErrInvalidInput)
	}
	if in.AccountNumber == "" {
		return nil, fmt.Errorf("%w: accountNumber es obligatorio", domain.ErrInvalidInput)
	}
	status := in.Status
	if status == "" {
		status = entity.DebtorStatusActive
	}
	if !validDebtorStatuses[status] {
		return nil, fmt.Errorf("%w: status %q desconocido", domain.ErrInvalidInput, status)
	}
	lastPayment, err := parseDatePtr("lastPaymentDate", in.LastPaymentDate)
	if err != nil {
		return nil, err
	}
	id := in.ID
	if id == "" {
		id = uuid.New().String()
	}
	now := time.Now()
	debtor := &entity.Debtor{
		ID:                id,
		CompanyID:         companyID,
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		Email:             in.Email,
		Address:           in.Address,
		City:              in.City,
		State:             in.State,
		Zip:               in.Zip,
		SSN:               in.SSN,
		DOB:               in.DOB,
		Employer:          in.Employer,
		AccountNumber:     in.AccountNumber,
		OriginalBalance:   in.OriginalBalance,
		CurrentBalance:    in.CurrentBalance,
		Status:            status,
		LastPaymentDate:   lastPayment,
		LastPaymentAmount: in.LastPaymentAmount,
		CreditorID:        in.CreditorID,
		CreditorName:      in.CreditorName,
		ClientName:        in.ClientName,
		PortfolioID:       in.PortfolioID,
		CaseFileNumber:    in.CaseFileNumber,
		ClientClaimNumber: in.ClientClaimNumber,
		DateLoaded:        in.DateLoaded,
		OriginationDate:   in.OriginationDate,
		ChargedOffDate:    in.ChargedOffDate,
		PurchaseDate:      in.PurchaseDate,
		AssignedCollector: in.AssignedCollector,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	err = uc.tx.Run(ctx, func(debtorRepo repository.DebtorRepository, phoneRepo repository.PhoneRepository) error {
		if err := debtorRepo.Create(ctx, debtor); err != nil {
			return err
		}
		for _, ph := range in.Phones {
			phone := &entity.PhoneNumber{
				ID:        uuid.New().String(),
				CompanyID: companyID,
				DebtorID:  debtor.ID,
				Type:      ph.Type,
				Number:    ph.Number,
				IsPrimary: ph.Primary,
				CreatedAt: now,
			}
			if err := phoneRepo.Create(ctx, phone); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	item := &dto.DebtorListItem{
		DebtorResponse: *toDebtorResponse(debtor),
		Phones:         make([]dto.PhoneSummary, 0, len(in.Phones)),
	}
	for _, ph := range in.Phones {
		item.Phones = append(item.Phones, dto.PhoneSummary{Type: ph.Type, Number: ph.Number, Primary: ph.Primary})
	}
	return item, nil
}

// GetByID devuelve la cuenta con sus cinco colecciones hijas. Los hijos se
// consultan en paralelo: son lecturas independientes sin orden entre sí.
// nil si la cuenta no existe.
func (uc *DebtorUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.DebtorDetailResponse, error) {
	if err := requireCompany(companyID); err != nil {
		return nil, err
	}
	debtor, err := uc.debtors.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if debtor == nil {
		return nil, nil
	}

	type phonesResult struct {
		rows []*entity.PhoneNumber
		err  error
	}
	type paymentsResult struct {
		rows []*entity.Payment
		err  error
	}
	type notesResult struct {
		rows []*entity.Note
		err  error
	}
	type documentsResult struct {
		rows []*entity.Document
		err  error
	}
	type actionsResult struct {
		rows []*entity.Action
		err  error
	}

	phonesCh := make(chan phonesResult, 1)
	paymentsCh := make(chan paymentsResult, 1)
	notesCh := make(chan notesResult, 1)
	documentsCh := make(chan documentsResult, 1)
	actionsCh := make(chan actionsResult, 1)

	go func() {
		rows, err := uc.phones.ListByDebtor(ctx, companyID, id)
		phonesCh <- phonesResult{rows, err}
	}()
	go func() {
		rows, err := uc.payments.ListByDebtor(ctx, companyID, id)
		paymentsCh <- paymentsResult{rows, err}
	}()
	go func() {
		rows, err := uc.notes.ListByDebtor(ctx, companyID, id)
		notesCh <- notesResult{rows, err}
	}()
	go func() {
		rows, err := uc.documents.ListByDebtor(ctx, companyID, id)
		documentsCh <- documentsResult{rows, err}
	}()
	go func() {
		rows, err := uc.actions.ListByDebtor(ctx, companyID, id)
		actionsCh <- actionsResult{rows, err}
	}()

	phonesRes := <-phonesCh
	paymentsRes := <-paymentsCh
	notesRes := <-notesCh
	documentsRes := <-documentsCh
	actionsRes := <-actionsCh

	if phonesRes.err != nil {
		return nil, fmt.Errorf("detalle: teléfonos: %w", phonesRes.err)
	}
	if paymentsRes.err != nil {
		return nil, fmt.Errorf("detalle: pagos: %w", paymentsRes.err)
	}
	if notesRes.err != nil {
		return nil, fmt.Errorf("detalle: notas: %w", notesRes.err)
	}
	if documentsRes.err != nil {
		return nil, fmt.Errorf("detalle: documentos: %w", documentsRes.err)
	}
	if actionsRes.err != nil {
		return nil, fmt.Errorf("detalle: acciones: %w", actionsRes.err)
	}

	detail := &dto.DebtorDetailResponse{
		DebtorResponse: *toDebtorResponse(debtor),
		Phones:         make([]dto.PhoneResponse, 0, len(phonesRes.rows)),
		Payments:       make([]dto.PaymentResponse, 0, len(paymentsRes.rows)),
		Notes:          make([]dto.NoteResponse, 0, len(notesRes.rows)),
		Documents:      make([]dto.DocumentResponse, 0, len(documentsRes.rows)),
		Actions:        make([]dto.ActionResponse, 0, len(actionsRes.rows)),
	}
	for _, p := range phonesRes.rows {
		detail.Phones = append(detail.Phones, toPhoneResponse(p))
	}
	for _, p := range paymentsRes.rows {
		detail.Payments = append(detail.Payments, *toPaymentResponse(p))
	}
	for _, n := range notesRes.rows {
		detail.Notes = append(detail.Notes, *toNoteResponse(n))
	}
	for _, d := range documentsRes.rows {
		detail.Documents = append(detail.Documents, *toDocumentResponse(d))
	}
	for _, a := range actionsRes.rows {
		detail.Actions = append(detail.Actions, *toActionResponse(a))
	}
	return detail, nil
}

// Update aplica solo los campos presentes y estampa updated_at. Si el cliente
// envió phones, el juego completo de teléfonos se reemplaza en la misma
// transacción (borrar y reinsertar, no diff).
func (uc *DebtorUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateDebtorRequest) error {
	if err := requireCompany(companyID); err != nil {
		return err
	}
	fields, err := buildDebtorFieldMap(in)
	if err != nil {
		return err
	}
	return uc.tx.Run(ctx, func(debtorRepo repository.DebtorRepository, phoneRepo repository.PhoneRepository) error {
		if err := debtorRepo.Update(ctx, companyID, id, fields); err != nil {
			return err
		}
		if in.Phones == nil {
			return nil
		}
		if err := phoneRepo.DeleteByDebtor(ctx, companyID, id); err != nil {
			return err
		}
		now := time.Now()
		for _, ph := range *in.Phones {
			phone := &entity.PhoneNumber{
				ID:        uuid.New().String(),
				CompanyID: companyID,
				DebtorID:  id,
				Type:      ph.Type,
				Number:    ph.Number,
				IsPrimary: ph.Primary,
				CreatedAt: now,
			}
			if err := phoneRepo.Create(ctx, phone); err != nil {
				return err
			}
		}
		return nil
	})
}

// buildDebtorFieldMap traduce el request parcial a columna -> valor.
func buildDebtorFieldMap(in dto.UpdateDebtorRequest) (map[string]any, error) {
	fields := make(map[string]any)
	setStr := func(col string, v *string) {
		if v != nil {
			fields[col] = *v
		}
	}
	setStr("first_name", in.FirstName)
	setStr("last_name", in.LastName)
	setStr("email", in.Email)
	setStr("address", in.Address)
	setStr("city", in.City)
	setStr("state", in.State)
	setStr("zip", in.Zip)
	setStr("ssn", in.SSN)
	setStr("dob", in.DOB)
	setStr("employer", in.Employer)
	setStr("account_number", in.AccountNumber)
	setStr("creditor_id", in.CreditorID)
	setStr("creditor_name", in.CreditorName)
	setStr("client_name", in.ClientName)
	setStr("portfolio_id", in.PortfolioID)
	setStr("case_file_number", in.CaseFileNumber)
	setStr("client_claim_number", in.ClientClaimNumber)
	setStr("date_loaded", in.DateLoaded)
	setStr("origination_date", in.OriginationDate)
	setStr("charged_off_date", in.ChargedOffDate)
	setStr("purchase_date", in.PurchaseDate)
	setStr("assigned_collector", in.AssignedCollector)

	if in.OriginalBalance != nil {
		fields["original_balance"] = *in.OriginalBalance
	}
	if in.CurrentBalance != nil {
		fields["current_balance"] = *in.CurrentBalance
	}
	if in.Status != nil {
		if !validDebtorStatuses[*in.Status] {
			return nil, fmt.Errorf("%w: status %q desconocido", domain.ErrInvalidInput, *in.Status)
		}
		fields["status"] = *in.Status
	}
	if in.LastPaymentDate != nil {
		t, err := parseDatePtr("lastPaymentDate", in.LastPaymentDate)
		if err != nil {
			return nil, err
		}
		fields["last_payment_date"] = t
	}
	if in.LastPaymentAmount != nil {
		fields["last_payment_amount"] = *in.LastPaymentAmount
	}
	return fields, nil
}

// Delete borra la cuenta; teléfonos, pagos, notas, documentos y acciones caen
// por cascada. Borrar una cuenta inexistente no es error.
func (uc *DebtorUseCase) Delete(ctx context.Context, companyID, id string) error {
	if err := requireCompany(companyID); err != nil {
		return err
	}
	return uc.debtors.Delete(ctx, companyID, id)
}

// List devuelve una página de cuentas con sus teléfonos. El filtro q aplica
// la coincidencia por tokens (cada término debe coincidir con algún campo),
// distinta a la búsqueda por subcadena de Search.
func (uc *DebtorUseCase) List(ctx context.Context, companyID string, page dto.PageRequest, q, status string) ([]dto.DebtorListItem, error) {
	if err := requireCompany(companyID); err != nil {
		return nil, err
	}
	page.DefaultPage()
	debtors, err := uc.debtors.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(debtors))
	for _, d := range debtors {
		ids = append(ids, d.ID)
	}
	phonesByDebtor, err := uc.phones.ListByDebtors(ctx, companyID, ids)
	if err != nil {
		return nil, err
	}

	matcher := search.NewMatcher(q)
	items := make([]dto.DebtorListItem, 0, len(debtors))
	for _, d := range debtors {
		if status != "" && d.Status != status {
			continue
		}
		if !matcher.Empty() && !matcher.Matches(d.FirstName+" "+d.LastName, d.AccountNumber) {
			continue
		}
		item := dto.DebtorListItem{
			DebtorResponse: *toDebtorResponse(d),
			Phones:         make([]dto.PhoneSummary, 0, len(phonesByDebtor[d.ID])),
		}
		for _, p := range phonesByDebtor[d.ID] {
			item.Phones = append(item.Phones, dto.PhoneSummary{Type: p.Type, Number: p.Number, Primary: p.IsPrimary})
		}
		items = append(items, item)
	}
	return items, nil
}

// Search es la búsqueda del servidor: subcadena, sin distinción de mayúsculas,
// sobre nombre, apellido, número de cuenta, SSN y teléfonos.
func (uc *DebtorUseCase) Search(ctx context.Context, companyID, term string) ([]dto.SearchResultItem, error) {
	if err := requireCompany(companyID); err != nil {
		return nil, err
	}
	hits, err := uc.debtors.Search(ctx, companyID, term, defaultSearchLimit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SearchResultItem, 0, len(hits))
	for _, h := range hits {
		items = append(items, dto.SearchResultItem{
			DebtorResponse: *toDebtorResponse(&h.Debtor),
			PhoneNumbers:   h.PhoneNumbers,
		})
	}
	return items, nil
}

func toDebtorResponse(d *entity.Debtor) *dto.DebtorResponse {
	if d == nil {
		return nil
	}
	var lastPayment *string
	if d.LastPaymentDate != nil {
		s := d.LastPaymentDate.Format(dateLayout)
		lastPayment = &s
	}
	return &dto.DebtorResponse{
		ID:                d.ID,
		CompanyID:         d.CompanyID,
		FirstName:         d.FirstName,
		LastName:          d.LastName,
		Email:             d.Email,
		Address:           d.Address,
		City:              d.City,
		State:             d.State,
		Zip:               d.Zip,
		SSN:               d.SSN,
		DOB:               d.DOB,
		Employer:          d.Employer,
		AccountNumber:     d.AccountNumber,
		OriginalBalance:   d.OriginalBalance,
		CurrentBalance:    d.CurrentBalance,
		Status:            d.Status,
		LastPaymentDate:   lastPayment,
		LastPaymentAmount: d.LastPaymentAmount,
		CreditorID:        d.CreditorID,
		CreditorName:      d.CreditorName,
		ClientName:        d.ClientName,
		PortfolioID:       d.PortfolioID,
		CaseFileNumber:    d.CaseFileNumber,
		ClientClaimNumber: d.ClientClaimNumber,
		DateLoaded:        d.DateLoaded,
		OriginationDate:   d.OriginationDate,
		ChargedOffDate:    d.ChargedOffDate,
		PurchaseDate:      d.PurchaseDate,
		AssignedCollector: d.AssignedCollector,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func toPhoneResponse(p *entity.PhoneNumber) dto.PhoneResponse {
	return dto.PhoneResponse{
		ID:        p.ID,
		CompanyID: p.CompanyID,
		DebtorID:  p.DebtorID,
		Type:      p.Type,
		Number:    p.Number,
		IsPrimary: p.IsPrimary,
		CreatedAt: p.CreatedAt,
	}
}
