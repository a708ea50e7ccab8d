package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PhoneInput teléfono dentro de un alta o actualización de cuenta.
type PhoneInput struct {
	Number  string `json:"number" validate:"required"`
	Type    string `json:"type"`
	Primary bool   `json:"primary"`
}

// CreateDebtorRequest entrada para crear una cuenta. Las claves llegan en
// camelCase, como las envía el cliente.
type CreateDebtorRequest struct {
	ID                string           `json:"id"`
	FirstName         string           `json:"firstName" validate:"required"`
	LastName          string           `json:"lastName" validate:"required"`
	Email             string           `json:"email"`
	Address           string           `json:"address"`
	City              string           `json:"city"`
	State             string           `json:"state"`
	Zip               string           `json:"zip"`
	SSN               string           `json:"ssn"`
	DOB               string           `json:"dob"`
	Employer          string           `json:"employer"`
	AccountNumber     string           `json:"accountNumber" validate:"required"`
	OriginalBalance   decimal.Decimal  `json:"originalBalance"`
	CurrentBalance    decimal.Decimal  `json:"currentBalance"`
	Status            string           `json:"status"`
	LastPaymentDate   *string          `json:"lastPaymentDate"`
	LastPaymentAmount *decimal.Decimal `json:"lastPaymentAmount"`
	CreditorID        string           `json:"creditorId"`
	CreditorName      string           `json:"creditorName"`
	ClientName        string           `json:"clientName"`
	PortfolioID       string           `json:"portfolioId"`
	CaseFileNumber    string           `json:"caseFileNumber"`
	ClientClaimNumber string           `json:"clientClaimNumber"`
	DateLoaded        string           `json:"dateLoaded"`
	OriginationDate   string           `json:"originationDate"`
	ChargedOffDate    string           `json:"chargedOffDate"`
	PurchaseDate      string           `json:"purchaseDate"`
	AssignedCollector string           `json:"assignedCollector"`
	Phones            []PhoneInput     `json:"phones"`
}

// UpdateDebtorRequest entrada parcial: solo los campos presentes se aplican.
// Phones distingue ausente (nil, no tocar) de presente (reemplazo total).
type UpdateDebtorRequest struct {
	FirstName         *string          `json:"firstName"`
	LastName          *string          `json:"lastName"`
	Email             *string          `json:"email"`
	Address           *string          `json:"address"`
	City              *string          `json:"city"`
	State             *string          `json:"state"`
	Zip               *string          `json:"zip"`
	SSN               *string          `json:"ssn"`
	DOB               *string          `json:"dob"`
	Employer          *string          `json:"employer"`
	AccountNumber     *string          `json:"accountNumber"`
	OriginalBalance   *decimal.Decimal `json:"originalBalance"`
	CurrentBalance    *decimal.Decimal `json:"currentBalance"`
	Status            *string          `json:"status"`
	LastPaymentDate   *string          `json:"lastPaymentDate"`
	LastPaymentAmount *decimal.Decimal `json:"lastPaymentAmount"`
	CreditorID        *string          `json:"creditorId"`
	CreditorName      *string          `json:"creditorName"`
	ClientName        *string          `json:"clientName"`
	PortfolioID       *string          `json:"portfolioId"`
	CaseFileNumber    *string          `json:"caseFileNumber"`
	ClientClaimNumber *string          `json:"clientClaimNumber"`
	DateLoaded        *string          `json:"dateLoaded"`
	OriginationDate   *string          `json:"originationDate"`
	ChargedOffDate    *string          `json:"chargedOffDate"`
	PurchaseDate      *string          `json:"purchaseDate"`
	AssignedCollector *string          `json:"assignedCollector"`
	Phones            *[]PhoneInput    `json:"phones"`
}

// DebtorResponse salida de una cuenta, con la forma de la fila almacenada.
type DebtorResponse struct {
	ID                string           `json:"id"`
	CompanyID         string           `json:"company_id"`
	FirstName         string           `json:"first_name"`
	LastName          string           `json:"last_name"`
	Email             string           `json:"email"`
	Address           string           `json:"address"`
	City              string           `json:"city"`
	State             string           `json:"state"`
	Zip               string           `json:"zip"`
	SSN               string           `json:"ssn"`
	DOB               string           `json:"dob"`
	Employer          string           `json:"employer"`
	AccountNumber     string           `json:"account_number"`
	OriginalBalance   decimal.Decimal  `json:"original_balance"`
	CurrentBalance    decimal.Decimal  `json:"current_balance"`
	Status            string           `json:"status"`
	LastPaymentDate   *string          `json:"last_payment_date"`
	LastPaymentAmount *decimal.Decimal `json:"last_payment_amount"`
	CreditorID        string           `json:"creditor_id"`
	CreditorName      string           `json:"creditor_name"`
	ClientName        string           `json:"client_name"`
	PortfolioID       string           `json:"portfolio_id"`
	CaseFileNumber    string           `json:"case_file_number"`
	ClientClaimNumber string           `json:"client_claim_number"`
	DateLoaded        string           `json:"date_loaded"`
	OriginationDate   string           `json:"origination_date"`
	ChargedOffDate    string           `json:"charged_off_date"`
	PurchaseDate      string           `json:"purchase_date"`
	AssignedCollector string           `json:"assigned_collector"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// PhoneSummary teléfono abreviado en el listado de cuentas.
type PhoneSummary struct {
	Type    string `json:"type"`
	Number  string `json:"number"`
	Primary bool   `json:"primary"`
}

// PhoneResponse fila completa de teléfono en el detalle de la cuenta.
type PhoneResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	DebtorID  string    `json:"debtor_id"`
	Type      string    `json:"type"`
	Number    string    `json:"number"`
	IsPrimary bool      `json:"is_primary"`
	CreatedAt time.Time `json:"created_at"`
}

// DebtorListItem elemento de GET /api/debtors. Phones nunca es null.
type DebtorListItem struct {
	DebtorResponse
	Phones []PhoneSummary `json:"phones"`
}

// DebtorDetailResponse detalle de GET /api/debtors/:id con las cinco
// colecciones hijas. Ninguna colección es null.
type DebtorDetailResponse struct {
	DebtorResponse
	Phones    []PhoneResponse    `json:"phones"`
	Payments  []PaymentResponse  `json:"payments"`
	Notes     []NoteResponse     `json:"notes"`
	Documents []DocumentResponse `json:"documents"`
	Actions   []ActionResponse   `json:"actions"`
}

// SearchResultItem resultado del buscador del servidor: la cuenta más los
// teléfonos concatenados por coma.
type SearchResultItem struct {
	DebtorResponse
	PhoneNumbers string `json:"phone_numbers"`
}
