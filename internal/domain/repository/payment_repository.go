package repository

import (
	"context"

	"github.com/cloudcollect/cobranza-api/internal/domain/entity"
)

// PaymentRepository define el puerto de persistencia para pagos.
// Los pagos no se actualizan ni se borran individualmente: solo alta y lectura.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	// ListByDebtor devuelve los pagos ordenados por payment_date descendente.
	ListByDebtor(ctx context.Context, companyID, debtorID string) ([]*entity.Payment, error)
}

// ScheduledPaymentRepository define el puerto para pagos programados.
type ScheduledPaymentRepository interface {
	Create(ctx context.Context, payment *entity.ScheduledPayment) error
	ListByDebtor(ctx context.Context, companyID, debtorID string) ([]*entity.ScheduledPayment, error)
}
