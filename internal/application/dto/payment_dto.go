package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentRequest entrada para registrar un pago.
type CreatePaymentRequest struct {
	ID        string          `json:"id"`
	DebtorID  string          `json:"debtorId" validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date" validate:"required"`
	Method    string          `json:"method" validate:"required"`
	Status    string          `json:"status"`
	Reference string          `json:"reference"`
	Notes     string          `json:"notes"`
	CreatedBy string          `json:"createdBy"`
}

// PaymentResponse salida de un pago. La fecha viaja como YYYY-MM-DD.
type PaymentResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	DebtorID    string          `json:"debtor_id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate string          `json:"payment_date"`
	Method      string          `json:"method"`
	Status      string          `json:"status"`
	Reference   string          `json:"reference"`
	Notes       string          `json:"notes"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CreateScheduledPaymentRequest entrada para programar un pago futuro.
type CreateScheduledPaymentRequest struct {
	ID        string          `json:"id"`
	DebtorID  string          `json:"debtorId" validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date" validate:"required"`
	Method    string          `json:"method" validate:"required"`
	Status    string          `json:"status"`
	Reference string          `json:"reference"`
	Notes     string          `json:"notes"`
	CreatedBy string          `json:"createdBy"`
}

// ScheduledPaymentResponse salida de un pago programado.
type ScheduledPaymentResponse struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"company_id"`
	DebtorID      string          `json:"debtor_id"`
	Amount        decimal.Decimal `json:"amount"`
	ScheduledDate string          `json:"scheduled_date"`
	Method        string          `json:"method"`
	Status        string          `json:"status"`
	Reference     string          `json:"reference"`
	Notes         string          `json:"notes"`
	CreatedBy     string          `json:"created_by"`
	CreatedAt     time.Time       `json:"created_at"`
	LastUpdated   time.Time       `json:"last_updated"`
}
