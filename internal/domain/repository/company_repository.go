package repository

import (
	"context"

	"github.com/cloudcollect/cobranza-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (tenant raíz).
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	// GetByID devuelve nil (sin error) si no existe empresa activa con ese id.
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	// GetByCode devuelve nil si no existe empresa activa con ese código de 4 dígitos.
	GetByCode(ctx context.Context, code string) (*entity.Company, error)
}
