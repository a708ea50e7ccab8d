package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment es un pago aplicado a una cuenta. Inmutable una vez creado:
// no existe operación de actualización en este dominio.
type Payment struct {
	ID          string
	CompanyID   string
	DebtorID    string
	Amount      decimal.Decimal // siempre positivo
	PaymentDate time.Time
	Method      string // cash, check, credit, debit, ach
	Status      string // completed, pending, failed
	Reference   string
	Notes       string
	CreatedBy   string
	CreatedAt   time.Time
}

// ScheduledPayment es una intención de pago con fecha futura.
type ScheduledPayment struct {
	ID            string
	CompanyID     string
	DebtorID      string
	Amount        decimal.Decimal
	ScheduledDate time.Time
	Method        string // credit, debit, ach
	Status        string // scheduled, processing, completed, failed, cancelled
	Reference     string
	Notes         string
	CreatedBy     string
	CreatedAt     time.Time
	LastUpdated   time.Time
}
