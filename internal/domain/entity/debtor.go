package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Debtor representa una cuenta en cobranza (caso). Es el agregado central:
// posee teléfonos, pagos, notas, documentos, acciones y codeudores.
// Invariante: (company_id, account_number) es único.
type Debtor struct {
	ID        string
	CompanyID string
	FirstName string
	LastName  string
	Email     string
	Address   string
	City      string
	State     string
	Zip       string
	SSN       string
	DOB       string // fecha en texto, tal como llega del origen
	Employer  string

	AccountNumber   string
	OriginalBalance decimal.Decimal
	CurrentBalance  decimal.Decimal
	Status          string // active, paid, inactive, disputed

	// Snapshot desnormalizado del último pago.
	LastPaymentDate   *time.Time
	LastPaymentAmount *decimal.Decimal

	// Procedencia del caso.
	CreditorID        string
	CreditorName      string
	ClientName        string
	PortfolioID       string
	CaseFileNumber    string
	ClientClaimNumber string
	DateLoaded        string
	OriginationDate   string
	ChargedOffDate    string
	PurchaseDate      string
	AssignedCollector string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Estados de una cuenta en cobranza.
const (
	DebtorStatusActive   = "active"
	DebtorStatusPaid     = "paid"
	DebtorStatusInactive = "inactive"
	DebtorStatusDisputed = "disputed"
)

// SearchHit es el resultado del buscador del servidor: la fila del deudor más
// sus teléfonos concatenados (un deudor con varios teléfonos coincidentes
// aparece una sola vez).
type SearchHit struct {
	Debtor
	PhoneNumbers string // números separados por coma, puede ser vacío
}

// PhoneNumber pertenece a exactamente un deudor. La marca IsPrimary es
// indicativa: se tolera más de un primario por deudor.
type PhoneNumber struct {
	ID        string
	CompanyID string
	DebtorID  string
	Type      string // cell, work, home, custom1..custom5
	Number    string
	IsPrimary bool
	CreatedAt time.Time
}

// CoDebtor es un obligado solidario asociado a la cuenta.
type CoDebtor struct {
	ID           string
	CompanyID    string
	DebtorID     string
	FirstName    string
	LastName     string
	Email        string
	Address      string
	City         string
	State        string
	Zip          string
	SSN          string
	DOB          string
	Employer     string
	Relationship string
	DateAdded    time.Time
}
