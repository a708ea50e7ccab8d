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

var paymentMethods = map[string]bool{
	"cash":   true,
	"check":  true,
	"credit": true,
	"debit":  true,
	"ach":    true,
}

var paymentStatuses = map[string]bool{
	"completed": true,
	"pending":   true,
	"failed":    true,
}

var scheduledMethods = map[string]bool{
	"credit": true,
	"debit":  true,
	"ach":    true,
}

var scheduledStatuses = map[string]bool{
	"scheduled":  true,
	"processing": true,
	"completed":  true,
	"failed":     true,
	"cancelled":  true,
}

// PaymentUseCase casos de uso de pagos aplicados y programados.
type PaymentUseCase struct {
	payments  repository.PaymentRepository
	scheduled repository.ScheduledPaymentRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(payments repository.PaymentRepository, scheduled repository.ScheduledPaymentRepository) *PaymentUseCase {
	return &PaymentUseCase{payments: payments, scheduled: scheduled}
}

// Create registra un pago sobre una cuenta del tenant.
func (uc *PaymentUseCase) Create(ctx context.Context, companyID string, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if err := requireCompany(companyID); err != nil {
		return nil, err
	}
	if in.DebtorID == "" {
		return nil, fmt.Errorf("%w: debtorId es obligatorio", domain.ErrInvalidInput)
	}
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if !paymentMethods[in.Method] {
		return nil, fmt.Errorf("%w: method %q desconocido", domain.ErrInvalidInput, in.Method)
	}
	status := in.Status
	if status == "" {
		status = "completed"
	}
	if !paymentStatuses[status] {
		return nil, fmt.Errorf("%w: status %q desconocido", domain.ErrInvalidInput, status)
	}
	date, err := parseDate("date", in.Date)
	if err != nil {
		return nil, err
	}
	id := in.ID
	if id == "" {
		id = uuid.New().String()
	}
	payment := &entity.Payment{
		ID:          id,
		CompanyID:   companyID,
		DebtorID:    in.DebtorID,
		Amount:      in.Amount,
		PaymentDate: date,
		Method:      in.Method,
		Status:      status,
		Reference:   in.Reference,
		Notes:       in.Notes,
		CreatedBy:   in.CreatedBy,
		CreatedAt:   time.Now(),
	}
	if err := uc.payments.Create(ctx, payment); err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// ListByDebtor devuelve los pagos de una cuenta, más recientes primero.
// La lista nunca es null.
func (uc *PaymentUseCase) ListByDebtor(ctx context.Context, companyID, debtorID string) ([]dto.PaymentResponse, error) {
	if err := requireCompany(companyID); err != nil {
		return nil, err
	}
	rows, err := uc.payments.ListByDebtor(ctx, companyID, debtorID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentResponse, 0, len(rows))
	for _, p := range rows {
		items = append(items, *toPaymentResponse(p))
	}
	return items, nil
}

// CreateScheduled programa un pago futuro.
func (uc *PaymentUseCase) CreateScheduled(ctx context.Context, companyID string, in dto.CreateScheduledPaymentRequest) (*dto.ScheduledPaymentResponse, error) {
	if err := requireCompany(companyID); err != nil {
		return nil, err
	}
	if in.DebtorID == "" {
		return nil, fmt.Errorf("%w: debtorId es obligatorio", domain.ErrInvalidInput)
	}
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if !scheduledMethods[in.Method] {
		return nil, fmt.Errorf("%w: method %q desconocido", domain.ErrInvalidInput, in.Method)
	}
	status := in.Status
	if status == "" {
		status = "scheduled"
	}
	if !scheduledStatuses[status] {
		return nil, fmt.Errorf("%w: status %q desconocido", domain.ErrInvalidInput, status)
	}
	date, err := parseDate("date", in.Date)
	if err != nil {
		return nil, err
	}
	id := in.ID
	if id == "" {
		id = uuid.New().String()
	}
	now := time.Now()
	sp := &entity.ScheduledPayment{
		ID:            id,
		CompanyID:     companyID,
		DebtorID:      in.DebtorID,
		Amount:        in.Amount,
		ScheduledDate: date,
		Method:        in.Method,
		Status:        status,
		Reference:     in.Reference,
		Notes:         in.Notes,
		CreatedBy:     in.CreatedBy,
		CreatedAt:     now,
		LastUpdated:   now,
	}
	if err := uc.scheduled.Create(ctx, sp); err != nil {
		return nil, err
	}
	return toScheduledPaymentResponse(sp), nil
}

// ListScheduledByDebtor devuelve los pagos programados, próximos primero.
func (uc *PaymentUseCase) ListScheduledByDebtor(ctx context.Context, companyID, debtorID string) ([]dto.ScheduledPaymentResponse, error) {
	if err := requireCompany(companyID); err != nil {
		return nil, err
	}
	rows, err := uc.scheduled.ListByDebtor(ctx, companyID, debtorID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ScheduledPaymentResponse, 0, len(rows))
	for _, p := range rows {
		items = append(items, *toScheduledPaymentResponse(p))
	}
	return items, nil
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	if p == nil {
		return nil
	}
	return &dto.PaymentResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		DebtorID:    p.DebtorID,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate.Format(dateLayout),
		Method:      p.Method,
		Status:      p.Status,
		Reference:   p.Reference,
		Notes:       p.Notes,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt,
	}
}

func toScheduledPaymentResponse(p *entity.ScheduledPayment) *dto.ScheduledPaymentResponse {
	if p == nil {
		return nil
	}
	return &dto.ScheduledPaymentResponse{
		ID:            p.ID,
		CompanyID:     p.CompanyID,
		DebtorID:      p.DebtorID,
		Amount:        p.Amount,
		ScheduledDate: p.ScheduledDate.Format(dateLayout),
		Method:        p.Method,
		Status:        p.Status,
		Reference:     p.Reference,
		Notes:         p.Notes,
		CreatedBy:     p.CreatedBy,
		CreatedAt:     p.CreatedAt,
		LastUpdated:   p.LastUpdated,
	}
}
