package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudcollect/cobranza-api/internal/application/dto"
	"github.com/cloudcollect/cobranza-api/internal/application/usecase"
	"github.com/cloudcollect/cobranza-api/internal/domain"
	"github.com/cloudcollect/cobranza-api/internal/domain/entity"
)

var _ usecase.TxRunner = (*fakeTxRunner)(nil)

const (
	testCompanyID  = "00000000-0000-0000-0000-000000000002"
	otherCompanyID = "00000000-0000-0000-0000-000000000099"
)

type debtorFixture struct {
	uc       *usecase.DebtorUseCase
	debtors  *fakeDebtorRepo
	phones   *fakePhoneRepo
	payments *fakePaymentRepo
	notes    *fakeNoteRepo
	docs     *fakeDocumentRepo
	actions  *fakeActionRepo
}

func newDebtorFixture() *debtorFixture {
	f := &debtorFixture{
		debtors:  newFakeDebtorRepo(),
		phones:   &fakePhoneRepo{},
		payments: &fakePaymentRepo{},
		notes:    &fakeNoteRepo{},
		docs:     &fakeDocumentRepo{},
		actions:  &fakeActionRepo{},
	}
	tx := &fakeTxRunner{debtors: f.debtors, phones: f.phones}
	f.uc = usecase.NewDebtorUseCase(f.debtors, f.phones, f.payments, f.notes, f.docs, f.actions, tx)
	return f
}

func createRequest() dto.CreateDebtorRequest {
	return dto.CreateDebtorRequest{
		FirstName:       "John",
		LastName:        "Smith",
		AccountNumber:   "ACC-100",
		OriginalBalance: decimal.NewFromInt(5000),
		CurrentBalance:  decimal.NewFromInt(3200),
		Phones: []dto.PhoneInput{
			{Number: "555-0001", Type: "cell", Primary: true},
			{Number: "555-0002", Type: "work"},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Guarda multi-tenant
// ──────────────────────────────────────────────────────────────────────────────

// Toda operación sin company_id debe fallar de inmediato, sin tocar el repo.
func TestDebtor_SinCompanyID_FallaInmediato(t *testing.T) {
	f := newDebtorFixture()
	ctx := context.Background()

	_, err := f.uc.Create(ctx, "", createRequest())
	assert.ErrorIs(t, err, domain.ErrCompanyIDRequired)

	_, err = f.uc.GetByID(ctx, "", "cualquier-id")
	assert.ErrorIs(t, err, domain.ErrCompanyIDRequired)

	_, err = f.uc.List(ctx, "", dto.PageRequest{}, "", "")
	assert.ErrorIs(t, err, domain.ErrCompanyIDRequired)

	_, err = f.uc.Search(ctx, "", "smith")
	assert.ErrorIs(t, err, domain.ErrCompanyIDRequired)

	err = f.uc.Update(ctx, "", "cualquier-id", dto.UpdateDebtorRequest{})
	assert.ErrorIs(t, err, domain.ErrCompanyIDRequired)

	err = f.uc.Delete(ctx, "", "cualquier-id")
	assert.ErrorIs(t, err, domain.ErrCompanyIDRequired)

	assert.Empty(t, f.debtors.debtors, "la guarda debe cortar antes de llegar al repositorio")
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestDebtorCreate_ConTelefonos(t *testing.T) {
	f := newDebtorFixture()

	item, err := f.uc.Create(context.Background(), testCompanyID, createRequest())
	require.NoError(t, err)
	require.NotNil(t, item)

	assert.NotEmpty(t, item.ID, "sin id del cliente se genera uno")
	assert.Equal(t, testCompanyID, item.CompanyID)
	assert.Equal(t, entity.DebtorStatusActive, item.Status, "status por defecto es active")
	require.Len(t, item.Phones, 2)
	assert.Equal(t, "555-0001", item.Phones[0].Number)
	assert.True(t, item.Phones[0].Primary)

	assert.Len(t, f.debtors.debtors, 1)
	assert.Len(t, f.phones.phones, 2, "los teléfonos se insertan junto con la cuenta")
}

func TestDebtorCreate_CamposObligatorios(t *testing.T) {
	f := newDebtorFixture()
	ctx := context.Background()

	req := createRequest()
	req.FirstName = ""
	_, err := f.uc.Create(ctx, testCompanyID, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req = createRequest()
	req.AccountNumber = ""
	_, err = f.uc.Create(ctx, testCompanyID, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req = createRequest()
	req.Status = "zombie"
	_, err = f.uc.Create(ctx, testCompanyID, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "status fuera del catálogo se rechaza")
}

func TestDebtorCreate_NumeroDeCuentaDuplicado(t *testing.T) {
	f := newDebtorFixture()
	ctx := context.Background()

	_, err := f.uc.Create(ctx, testCompanyID, createRequest())
	require.NoError(t, err)

	_, err = f.uc.Create(ctx, testCompanyID, createRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestDebtorCreate_FechaDeUltimoPagoInvalida(t *testing.T) {
	f := newDebtorFixture()
	bad := "15/01/2026" // formato equivocado
	req := createRequest()
	req.LastPaymentDate = &bad

	_, err := f.uc.Create(context.Background(), testCompanyID, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Si falla el alta de un teléfono, la cuenta no debe responderse como creada.
func TestDebtorCreate_FalloEnTelefono_PropagaError(t *testing.T) {
	f := newDebtorFixture()
	f.phones.failOn = "Create"

	_, err := f.uc.Create(context.Background(), testCompanyID, createRequest())
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID: detalle con colecciones hijas
// ──────────────────────────────────────────────────────────────────────────────

func TestDebtorGetByID_DetalleCompleto(t *testing.T) {
	f := newDebtorFixture()
	ctx := context.Background()

	item, err := f.uc.Create(ctx, testCompanyID, createRequest())
	require.NoError(t, err)

	f.payments.payments = append(f.payments.payments, &entity.Payment{
		ID: "p1", CompanyID: testCompanyID, DebtorID: item.ID,
		Amount: decimal.NewFromInt(100), PaymentDate: time.Now(), Method: "cash", Status: "completed",
	})
	f.notes.notes = append(f.notes.notes, &entity.Note{
		ID: "n1", CompanyID: testCompanyID, DebtorID: item.ID, Content: "llamó el deudor",
	})

	detail, err := f.uc.GetByID(ctx, testCompanyID, item.ID)
	require.NoError(t, err)
	require.NotNil(t, detail)

	assert.Equal(t, item.ID, detail.ID)
	assert.Len(t, detail.Phones, 2)
	assert.Len(t, detail.Payments, 1)
	assert.Len(t, detail.Notes, 1)
	assert.NotNil(t, detail.Documents, "las colecciones vacías deben ser listas, nunca null")
	assert.NotNil(t, detail.Actions)
	assert.Empty(t, detail.Documents)
	assert.Empty(t, detail.Actions)
}

func TestDebtorGetByID_NoExiste_DevuelveNil(t *testing.T) {
	f := newDebtorFixture()

	detail, err := f.uc.GetByID(context.Background(), testCompanyID, "no-existe")
	require.NoError(t, err)
	assert.Nil(t, detail)
}

// Una cuenta de otro tenant es invisible, igual que si no existiera.
func TestDebtorGetByID_OtroTenant_DevuelveNil(t *testing.T) {
	f := newDebtorFixture()
	ctx := context.Background()

	item, err := f.uc.Create(ctx, testCompanyID, createRequest())
	require.NoError(t, err)

	detail, err := f.uc.GetByID(ctx, otherCompanyID, item.ID)
	require.NoError(t, err)
	assert.Nil(t, detail)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update: parcial y reemplazo de teléfonos
// ──────────────────────────────────────────────────────────────────────────────

func TestDebtorUpdate_SoloCamposPresentes(t *testing.T) {
	f := newDebtorFixture()
	ctx := context.Background()

	item, err := f.uc.Create(ctx, testCompanyID, createRequest())
	require.NoError(t, err)

	status := entity.DebtorStatusPaid
	err = f.uc.Update(ctx, testCompanyID, item.ID, dto.UpdateDebtorRequest{Status: &status})
	require.NoError(t, err)

	require.Len(t, f.debtors.updates, 1)
	fields := f.debtors.updates[0]
	assert.Equal(t, "paid", fields["status"])
	assert.Len(t, fields, 1, "solo el campo enviado debe viajar al repositorio")

	assert.Len(t, f.phones.phones, 2, "sin phones en el request los teléfonos no se tocan")
}

func TestDebtorUpdate_ReemplazaTelefonos(t *testing.T) {
	f := newDebtorFixture()
	ctx := context.Background()

	item, err := f.uc.Create(ctx, testCompanyID, createRequest())
	require.NoError(t, err)
	require.Len(t, f.phones.phones, 2)

	newPhones := []dto.PhoneInput{{Number: "555-9999", Type: "home", Primary: true}}
	err = f.uc.Update(ctx, testCompanyID, item.ID, dto.UpdateDebtorRequest{Phones: &newPhones})
	require.NoError(t, err)

	require.Len(t, f.phones.phones, 1, "phones presente reemplaza el juego completo")
	assert.Equal(t, "555-9999", f.phones.phones[0].Number)
}

func TestDebtorUpdate_PhonesVacio_BorraTodos(t *testing.T) {
	f := newDebtorFixture()
	ctx := context.Background()

	item, err := f.uc.Create(ctx, testCompanyID, createRequest())
	require.NoError(t, err)

	empty := []dto.PhoneInput{}
	err = f.uc.Update(ctx, testCompanyID, item.ID, dto.UpdateDebtorRequest{Phones: &empty})
	require.NoError(t, err)

	assert.Empty(t, f.phones.phones, "lista vacía explícita deja la cuenta sin teléfonos")
}

func TestDebtorUpdate_CuentaInexistente(t *testing.T) {
	f := newDebtorFixture()

	status := entity.DebtorStatusPaid
	err := f.uc.Update(context.Background(), testCompanyID, "no-existe", dto.UpdateDebtorRequest{Status: &status})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDebtorUpdate_StatusInvalido(t *testing.T) {
	f := newDebtorFixture()

	status := "zombie"
	err := f.uc.Update(context.Background(), testCompanyID, "cualquiera", dto.UpdateDebtorRequest{Status: &status})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.debtors.updates, "la validación corta antes de la transacción")
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDebtorDelete_Idempotente(t *testing.T) {
	f := newDebtorFixture()
	ctx := context.Background()

	item, err := f.uc.Create(ctx, testCompanyID, createRequest())
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(ctx, testCompanyID, item.ID))
	assert.Empty(t, f.debtors.debtors)

	// Borrar lo ya borrado no es error.
	assert.NoError(t, f.uc.Delete(ctx, testCompanyID, item.ID))
}

// ──────────────────────────────────────────────────────────────────────────────
// List: filtro por tokens y por status
// ──────────────────────────────────────────────────────────────────────────────

func TestDebtorList_FiltraPorTokens(t *testing.T) {
	f := newDebtorFixture()
	ctx := context.Background()

	_, err := f.uc.Create(ctx, testCompanyID, createRequest())
	require.NoError(t, err)

	other := createRequest()
	other.FirstName = "Ana"
	other.LastName = "Muñoz"
	other.AccountNumber = "ACC-200"
	_, err = f.uc.Create(ctx, testCompanyID, other)
	require.NoError(t, err)

	items, err := f.uc.List(ctx, testCompanyID, dto.PageRequest{}, "munoz", "")
	require.NoError(t, err)
	require.Len(t, items, 1, "la consulta sin tilde debe encontrar a Muñoz")
	assert.Equal(t, "Ana", items[0].FirstName)

	// Dos tokens: ambos deben coincidir.
	items, err = f.uc.List(ctx, testCompanyID, dto.PageRequest{}, "ana 200", "")
	require.NoError(t, err)
	assert.Len(t, items, 1)

	items, err = f.uc.List(ctx, testCompanyID, dto.PageRequest{}, "ana 100", "")
	require.NoError(t, err)
	assert.Empty(t, items, "un token sin coincidencia descarta el registro")
}

func TestDebtorList_FiltraPorStatus(t *testing.T) {
	f := newDebtorFixture()
	ctx := context.Background()

	item, err := f.uc.Create(ctx, testCompanyID, createRequest())
	require.NoError(t, err)

	other := createRequest()
	other.AccountNumber = "ACC-200"
	other.Status = entity.DebtorStatusPaid
	_, err = f.uc.Create(ctx, testCompanyID, other)
	require.NoError(t, err)

	items, err := f.uc.List(ctx, testCompanyID, dto.PageRequest{}, "", entity.DebtorStatusActive)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)
}

func TestDebtorList_IncluyeTelefonos(t *testing.T) {
	f := newDebtorFixture()
	ctx := context.Background()

	_, err := f.uc.Create(ctx, testCompanyID, createRequest())
	require.NoError(t, err)

	items, err := f.uc.List(ctx, testCompanyID, dto.PageRequest{}, "", "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Len(t, items[0].Phones, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Search: buscador del servidor
// ──────────────────────────────────────────────────────────────────────────────

func TestDebtorSearch_DevuelveTelefonosConcatenados(t *testing.T) {
	f := newDebtorFixture()
	f.debtors.hits = []*entity.SearchHit{
		{
			Debtor: entity.Debtor{
				ID: "d1", CompanyID: testCompanyID,
				FirstName: "John", LastName: "Smith", AccountNumber: "ACC-100",
			},
			PhoneNumbers: "555-0001,555-0002",
		},
	}

	items, err := f.uc.Search(context.Background(), testCompanyID, "smith")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "d1", items[0].ID)
	assert.Equal(t, "555-0001,555-0002", items[0].PhoneNumbers)
}

func TestDebtorSearch_SinResultados_ListaVacia(t *testing.T) {
	f := newDebtorFixture()

	items, err := f.uc.Search(context.Background(), testCompanyID, "nadie")
	require.NoError(t, err)
	assert.NotNil(t, items, "sin resultados la respuesta es lista vacía, no null")
	assert.Empty(t, items)
}
