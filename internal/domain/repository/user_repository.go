package repository

import (
	"context"

	"github.com/cloudcollect/cobranza-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para usuarios.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// GetByEmail resuelve el usuario activo de la empresa junto con el nombre
	// del rol y sus permisos (join contra roles). nil si no existe.
	GetByEmail(ctx context.Context, companyID, email string) (*entity.UserWithRole, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.User, error)
}

// RoleRepository define el puerto de persistencia para roles.
type RoleRepository interface {
	Create(ctx context.Context, role *entity.Role) error
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Role, error)
}
