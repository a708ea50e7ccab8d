package usecase_test

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cloudcollect/cobranza-api/internal/domain"
	"github.com/cloudcollect/cobranza-api/internal/domain/entity"
	"github.com/cloudcollect/cobranza-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Respetan el contrato de los
// adaptadores reales: acotados por company_id, nil sin error cuando no existe
// la fila, ErrNotFound en UPDATE sin filas afectadas.
// ──────────────────────────────────────────────────────────────────────────────

var (
	_ repository.DebtorRepository           = (*fakeDebtorRepo)(nil)
	_ repository.PhoneRepository            = (*fakePhoneRepo)(nil)
	_ repository.PaymentRepository          = (*fakePaymentRepo)(nil)
	_ repository.ScheduledPaymentRepository = (*fakeScheduledPaymentRepo)(nil)
	_ repository.NoteRepository             = (*fakeNoteRepo)(nil)
	_ repository.DocumentRepository         = (*fakeDocumentRepo)(nil)
	_ repository.ActionRepository           = (*fakeActionRepo)(nil)
	_ repository.CoDebtorRepository         = (*fakeCoDebtorRepo)(nil)
	_ repository.StatsRepository            = (*fakeStatsRepo)(nil)
	_ repository.CompanyRepository          = (*fakeCompanyRepo)(nil)
)

type fakeDebtorRepo struct {
	debtors map[string]*entity.Debtor // por id
	hits    []*entity.SearchHit       // respuesta fija del buscador
	updates []map[string]any          // fields recibidos por Update, en orden
	failOn  string                    // método que debe fallar (Create, Update, ...)
}

var errFakeRepo = errors.New("fallo inyectado en el repositorio")

func newFakeDebtorRepo() *fakeDebtorRepo {
	return &fakeDebtorRepo{debtors: make(map[string]*entity.Debtor)}
}

func (f *fakeDebtorRepo) Create(_ context.Context, d *entity.Debtor) error {
	if f.failOn == "Create" {
		return errFakeRepo
	}
	for _, existing := range f.debtors {
		if existing.CompanyID == d.CompanyID && existing.AccountNumber == d.AccountNumber {
			return domain.ErrDuplicate
		}
	}
	copied := *d
	f.debtors[d.ID] = &copied
	return nil
}

func (f *fakeDebtorRepo) GetByID(_ context.Context, companyID, id string) (*entity.Debtor, error) {
	d, ok := f.debtors[id]
	if !ok || d.CompanyID != companyID {
		return nil, nil
	}
	copied := *d
	return &copied, nil
}

func (f *fakeDebtorRepo) ListByCompany(_ context.Context, companyID string, limit, offset int) ([]*entity.Debtor, error) {
	var list []*entity.Debtor
	for _, d := range f.debtors {
		if d.CompanyID == companyID {
			copied := *d
			list = append(list, &copied)
		}
	}
	if offset >= len(list) {
		return nil, nil
	}
	list = list[offset:]
	if limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

func (f *fakeDebtorRepo) Update(_ context.Context, companyID, id string, fields map[string]any) error {
	if f.failOn == "Update" {
		return errFakeRepo
	}
	f.updates = append(f.updates, fields)
	d, ok := f.debtors[id]
	if !ok || d.CompanyID != companyID {
		return domain.ErrNotFound
	}
	if v, ok := fields["status"]; ok {
		d.Status = v.(string)
	}
	if v, ok := fields["first_name"]; ok {
		d.FirstName = v.(string)
	}
	d.UpdatedAt = time.Now()
	return nil
}

func (f *fakeDebtorRepo) Delete(_ context.Context, companyID, id string) error {
	if d, ok := f.debtors[id]; ok && d.CompanyID == companyID {
		delete(f.debtors, id)
	}
	return nil
}

func (f *fakeDebtorRepo) Search(_ context.Context, companyID, term string, limit int) ([]*entity.SearchHit, error) {
	var hits []*entity.SearchHit
	for _, h := range f.hits {
		if h.CompanyID != companyID {
			continue
		}
		if strings.Contains(strings.ToLower(h.FirstName+" "+h.LastName+" "+h.AccountNumber), strings.ToLower(term)) {
			hits = append(hits, h)
		}
		if len(hits) == limit {
			break
		}
	}
	return hits, nil
}

type fakePhoneRepo struct {
	phones []*entity.PhoneNumber
	failOn string
}

func (f *fakePhoneRepo) Create(_ context.Context, p *entity.PhoneNumber) error {
	if f.failOn == "Create" {
		return errFakeRepo
	}
	copied := *p
	f.phones = append(f.phones, &copied)
	return nil
}

func (f *fakePhoneRepo) ListByDebtor(_ context.Context, companyID, debtorID string) ([]*entity.PhoneNumber, error) {
	var list []*entity.PhoneNumber
	for _, p := range f.phones {
		if p.CompanyID == companyID && p.DebtorID == debtorID {
			list = append(list, p)
		}
	}
	return list, nil
}

func (f *fakePhoneRepo) ListByDebtors(_ context.Context, companyID string, debtorIDs []string) (map[string][]*entity.PhoneNumber, error) {
	out := make(map[string][]*entity.PhoneNumber)
	for _, id := range debtorIDs {
		rows, _ := f.ListByDebtor(context.Background(), companyID, id)
		if len(rows) > 0 {
			out[id] = rows
		}
	}
	return out, nil
}

func (f *fakePhoneRepo) DeleteByDebtor(_ context.Context, companyID, debtorID string) error {
	kept := f.phones[:0]
	for _, p := range f.phones {
		if !(p.CompanyID == companyID && p.DebtorID == debtorID) {
			kept = append(kept, p)
		}
	}
	f.phones = kept
	return nil
}

type fakePaymentRepo struct {
	payments []*entity.Payment
}

func (f *fakePaymentRepo) Create(_ context.Context, p *entity.Payment) error {
	copied := *p
	f.payments = append(f.payments, &copied)
	return nil
}

func (f *fakePaymentRepo) ListByDebtor(_ context.Context, companyID, debtorID string) ([]*entity.Payment, error) {
	var list []*entity.Payment
	for _, p := range f.payments {
		if p.CompanyID == companyID && p.DebtorID == debtorID {
			list = append(list, p)
		}
	}
	return list, nil
}

type fakeScheduledPaymentRepo struct {
	payments []*entity.ScheduledPayment
}

func (f *fakeScheduledPaymentRepo) Create(_ context.Context, p *entity.ScheduledPayment) error {
	copied := *p
	f.payments = append(f.payments, &copied)
	return nil
}

func (f *fakeScheduledPaymentRepo) ListByDebtor(_ context.Context, companyID, debtorID string) ([]*entity.ScheduledPayment, error) {
	var list []*entity.ScheduledPayment
	for _, p := range f.payments {
		if p.CompanyID == companyID && p.DebtorID == debtorID {
			list = append(list, p)
		}
	}
	return list, nil
}

type fakeNoteRepo struct{ notes []*entity.Note }

func (f *fakeNoteRepo) Create(_ context.Context, n *entity.Note) error {
	copied := *n
	f.notes = append(f.notes, &copied)
	return nil
}

func (f *fakeNoteRepo) ListByDebtor(_ context.Context, companyID, debtorID string) ([]*entity.Note, error) {
	var list []*entity.Note
	for _, n := range f.notes {
		if n.CompanyID == companyID && n.DebtorID == debtorID {
			list = append(list, n)
		}
	}
	return list, nil
}

type fakeDocumentRepo struct{ docs []*entity.Document }

func (f *fakeDocumentRepo) Create(_ context.Context, d *entity.Document) error {
	copied := *d
	f.docs = append(f.docs, &copied)
	return nil
}

func (f *fakeDocumentRepo) ListByDebtor(_ context.Context, companyID, debtorID string) ([]*entity.Document, error) {
	var list []*entity.Document
	for _, d := range f.docs {
		if d.CompanyID == companyID && d.DebtorID == debtorID {
			list = append(list, d)
		}
	}
	return list, nil
}

type fakeActionRepo struct{ actions []*entity.Action }

func (f *fakeActionRepo) Create(_ context.Context, a *entity.Action) error {
	copied := *a
	f.actions = append(f.actions, &copied)
	return nil
}

func (f *fakeActionRepo) ListByDebtor(_ context.Context, companyID, debtorID string) ([]*entity.Action, error) {
	var list []*entity.Action
	for _, a := range f.actions {
		if a.CompanyID == companyID && a.DebtorID == debtorID {
			list = append(list, a)
		}
	}
	return list, nil
}

type fakeCoDebtorRepo struct{ coDebtors []*entity.CoDebtor }

func (f *fakeCoDebtorRepo) Create(_ context.Context, cd *entity.CoDebtor) error {
	copied := *cd
	f.coDebtors = append(f.coDebtors, &copied)
	return nil
}

func (f *fakeCoDebtorRepo) ListByDebtor(_ context.Context, companyID, debtorID string) ([]*entity.CoDebtor, error) {
	var list []*entity.CoDebtor
	for _, cd := range f.coDebtors {
		if cd.CompanyID == companyID && cd.DebtorID == debtorID {
			list = append(list, cd)
		}
	}
	return list, nil
}

// fakeTxRunner pasa los mismos fakes al callback. No hay rollback real: los
// tests que verifican atomicidad inyectan el fallo ANTES de la escritura que
// no debe quedar.
type fakeTxRunner struct {
	debtors repository.DebtorRepository
	phones  repository.PhoneRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.DebtorRepository, repository.PhoneRepository) error) error {
	return fn(f.debtors, f.phones)
}

type fakeStatsRepo struct {
	total    int64
	active   int64
	debt     decimal.Decimal
	monthSum decimal.Decimal

	gotSince time.Time
}

func (f *fakeStatsRepo) CountDebtors(_ context.Context, _ string) (int64, error) {
	return f.total, nil
}

func (f *fakeStatsRepo) CountDebtorsByStatus(_ context.Context, _, _ string) (int64, error) {
	return f.active, nil
}

func (f *fakeStatsRepo) SumCurrentBalances(_ context.Context, _ string) (decimal.Decimal, error) {
	return f.debt, nil
}

func (f *fakeStatsRepo) SumPaymentsSince(_ context.Context, _ string, since time.Time) (decimal.Decimal, error) {
	f.gotSince = since
	return f.monthSum, nil
}

type fakeCompanyRepo struct {
	companies map[string]*entity.Company // por id
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[string]*entity.Company)}
}

func (f *fakeCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	copied := *c
	f.companies[c.ID] = &copied
	return nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCompanyRepo) GetByCode(_ context.Context, code string) (*entity.Company, error) {
	for _, c := range f.companies {
		if c.Code == code {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}
