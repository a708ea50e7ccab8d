package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cloudcollect/cobranza-api/internal/domain"
	"github.com/cloudcollect/cobranza-api/internal/domain/entity"
	"github.com/cloudcollect/cobranza-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo implementación de SessionRepository.
type SessionRepo struct {
	q Querier
}

// NewSessionRepository construye el adaptador.
func NewSessionRepository(q Querier) *SessionRepo {
	return &SessionRepo{q: q}
}

// Create registra una sesión activa.
func (r *SessionRepo) Create(ctx context.Context, s *entity.Session) error {
	query := `
		INSERT INTO user_sessions (id, user_id, company_id, token, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, s.ID, s.UserID, s.CompanyID, s.Token, s.ExpiresAt, s.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// GetByToken resuelve una sesión vigente con los datos del usuario y la
// empresa. nil si el token no existe o ya expiró.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*entity.SessionContext, error) {
	query := `
		SELECT s.id, s.user_id, s.company_id, s.token, s.expires_at, s.created_at,
			u.first_name, u.last_name, u.email,
			c.code, c.name
		FROM user_sessions s
		JOIN users u ON u.id = s.user_id
		JOIN companies c ON c.id = s.company_id
		WHERE s.token = $1 AND s.expires_at > now()`
	var sc entity.SessionContext
	err := r.q.QueryRow(ctx, query, token).Scan(
		&sc.ID, &sc.UserID, &sc.CompanyID, &sc.Token, &sc.ExpiresAt, &sc.CreatedAt,
		&sc.FirstName, &sc.LastName, &sc.Email,
		&sc.CompanyCode, &sc.CompanyName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session by token: %w", err)
	}
	return &sc, nil
}

// DeleteByToken invalida la sesión (logout).
func (r *SessionRepo) DeleteByToken(ctx context.Context, token string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM user_sessions WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
