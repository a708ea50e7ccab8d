package repository

import (
	"context"

	"github.com/cloudcollect/cobranza-api/internal/domain/entity"
)

// DebtorRepository define el puerto de persistencia para cuentas en cobranza.
// Todos los métodos están acotados por company_id: ninguna consulta sale del
// tenant indicado.
type DebtorRepository interface {
	Create(ctx context.Context, debtor *entity.Debtor) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Debtor, error)
	// ListByCompany devuelve una página ordenada por created_at descendente.
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Debtor, error)
	// Update aplica solo los campos provistos (columna → valor nuevo). Las
	// columnas se validan contra una lista blanca; updated_at se estampa siempre.
	Update(ctx context.Context, companyID, id string, fields map[string]any) error
	Delete(ctx context.Context, companyID, id string) error
	// Search hace match por subcadena, insensible a mayúsculas, sobre nombre,
	// apellido, número de cuenta, SSN y teléfonos asociados; agrupa por deudor.
	Search(ctx context.Context, companyID, term string, limit int) ([]*entity.SearchHit, error)
}

// PhoneRepository maneja los teléfonos de un deudor.
type PhoneRepository interface {
	Create(ctx context.Context, phone *entity.PhoneNumber) error
	// ListByDebtor devuelve los teléfonos ordenados primario-primero y luego
	// por fecha de creación ascendente.
	ListByDebtor(ctx context.Context, companyID, debtorID string) ([]*entity.PhoneNumber, error)
	// ListByDebtors trae los teléfonos de varios deudores en una sola consulta,
	// agrupados por debtor_id (para la página de listado).
	ListByDebtors(ctx context.Context, companyID string, debtorIDs []string) (map[string][]*entity.PhoneNumber, error)
	DeleteByDebtor(ctx context.Context, companyID, debtorID string) error
}

// CoDebtorRepository maneja los codeudores de una cuenta.
type CoDebtorRepository interface {
	Create(ctx context.Context, coDebtor *entity.CoDebtor) error
	ListByDebtor(ctx context.Context, companyID, debtorID string) ([]*entity.CoDebtor, error)
}
