package repository

import (
	"context"

	"github.com/cloudcollect/cobranza-api/internal/domain/entity"
)

// SessionRepository define el puerto para sesiones de usuario.
// El lookup por token es deliberadamente cross-tenant: el token es el que
// determina la empresa, no al revés.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	// GetByToken devuelve la sesión no expirada con usuario y empresa
	// desnormalizados; nil si el token no existe o ya venció.
	GetByToken(ctx context.Context, token string) (*entity.SessionContext, error)
	DeleteByToken(ctx context.Context, token string) error
}
