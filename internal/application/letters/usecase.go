package letters

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudcollect/cobranza-api/internal/domain"
	"github.com/cloudcollect/cobranza-api/internal/domain/entity"
	"github.com/cloudcollect/cobranza-api/internal/domain/repository"
)

// Tipos de carta que el expediente puede generar.
const (
	KindDemand    = "demand"
	KindStatement = "statement"
	KindAgreement = "agreement"
)

// Generator produce el PDF de cada tipo de carta. Lo implementa la
// infraestructura (Maroto).
type Generator interface {
	DemandLetter(ctx context.Context, debtor *entity.Debtor, company *entity.Company) ([]byte, error)
	AccountStatement(ctx context.Context, debtor *entity.Debtor, company *entity.Company, phones []*entity.PhoneNumber, payments []*entity.Payment) ([]byte, error)
	PaymentAgreement(ctx context.Context, debtor *entity.Debtor, company *entity.Company) ([]byte, error)
}

// UseCase genera cartas de cobranza para una cuenta.
type UseCase struct {
	debtors   repository.DebtorRepository
	companies repository.CompanyRepository
	phones    repository.PhoneRepository
	payments  repository.PaymentRepository
	generator Generator
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	debtors repository.DebtorRepository,
	companies repository.CompanyRepository,
	phones repository.PhoneRepository,
	payments repository.PaymentRepository,
	generator Generator,
) *UseCase {
	return &UseCase{debtors: debtors, companies: companies, phones: phones, payments: payments, generator: generator}
}

// Generate produce el PDF del tipo pedido y el nombre de archivo sugerido.
// domain.ErrNotFound si la cuenta no existe; domain.ErrInvalidInput si el
// tipo de carta es desconocido.
func (uc *UseCase) Generate(ctx context.Context, companyID, debtorID, kind string) ([]byte, string, error) {
	if companyID == "" {
		return nil, "", domain.ErrCompanyIDRequired
	}
	debtor, err := uc.debtors.GetByID(ctx, companyID, debtorID)
	if err != nil {
		return nil, "", err
	}
	if debtor == nil {
		return nil, "", domain.ErrNotFound
	}
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, "", err
	}
	if company == nil {
		return nil, "", domain.ErrNotFound
	}

	date := time.Now().Format("2006-01-02")
	switch kind {
	case KindDemand:
		pdf, err := uc.generator.DemandLetter(ctx, debtor, company)
		if err != nil {
			return nil, "", err
		}
		return pdf, fmt.Sprintf("Demand_Letter_%s_%s.pdf", debtor.AccountNumber, date), nil
	case KindStatement:
		phones, err := uc.phones.ListByDebtor(ctx, companyID, debtorID)
		if err != nil {
			return nil, "", err
		}
		payments, err := uc.payments.ListByDebtor(ctx, companyID, debtorID)
		if err != nil {
			return nil, "", err
		}
		pdf, err := uc.generator.AccountStatement(ctx, debtor, company, phones, payments)
		if err != nil {
			return nil, "", err
		}
		return pdf, fmt.Sprintf("Account_Statement_%s_%s.pdf", debtor.AccountNumber, date), nil
	case KindAgreement:
		pdf, err := uc.generator.PaymentAgreement(ctx, debtor, company)
		if err != nil {
			return nil, "", err
		}
		return pdf, fmt.Sprintf("Payment_Agreement_%s_%s.pdf", debtor.AccountNumber, date), nil
	default:
		return nil, "", fmt.Errorf("%w: tipo de carta %q desconocido", domain.ErrInvalidInput, kind)
	}
}
