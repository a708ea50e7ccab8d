package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/cloudcollect/cobranza-api/internal/application/dto"
	"github.com/cloudcollect/cobranza-api/internal/domain"
	"github.com/cloudcollect/cobranza-api/internal/domain/entity"
	"github.com/cloudcollect/cobranza-api/internal/domain/repository"
	"github.com/cloudcollect/cobranza-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase autenticación por sesión: el JWT emitido se guarda tal cual en
// user_sessions y solo vale mientras esa fila exista y no haya expirado, así
// el logout invalida el token de inmediato.
type AuthUseCase struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
	sessions  repository.SessionRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	users repository.UserRepository,
	companies repository.CompanyRepository,
	sessions repository.SessionRepository,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{users: users, companies: companies, sessions: sessions, jwtCfg: jwtCfg}
}

// Login resuelve la empresa por su código corto, verifica las credenciales y
// emite una sesión. Código desconocido y credenciales malas responden igual
// para no filtrar qué existe.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	company, err := uc.companies.GetByCode(ctx, in.CompanyCode)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.users.GetByEmail(ctx, company.ID, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	sessionID := uuid.New().String()
	token, err := jwt.Generate(uc.jwtCfg.Secret, sessionID, user.ID, company.ID, user.RoleName, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	expiresAt := now.Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute)
	session := &entity.Session{
		ID:        sessionID,
		UserID:    user.ID,
		CompanyID: company.ID,
		Token:     token,
		ExpiresAt: expiresAt,
		CreatedAt: now,
	}
	if err := uc.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User: dto.SessionUser{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			Role:      user.RoleName,
		},
		Company: dto.SessionCompany{
			ID:   company.ID,
			Code: company.Code,
			Name: company.Name,
		},
	}, nil
}

// Logout invalida la sesión del token. Idempotente: cerrar una sesión ya
// cerrada no es error.
func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	return uc.sessions.DeleteByToken(ctx, token)
}

// Me devuelve la identidad de la sesión vigente del token.
// domain.ErrSessionExpired si la fila no existe o ya venció.
func (uc *AuthUseCase) Me(ctx context.Context, token string) (*dto.MeResponse, error) {
	sc, err := uc.sessions.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if sc == nil {
		return nil, domain.ErrSessionExpired
	}
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	return &dto.MeResponse{
		User: dto.SessionUser{
			ID:        sc.UserID,
			FirstName: sc.FirstName,
			LastName:  sc.LastName,
			Email:     sc.Email,
			Role:      claims.Role,
		},
		Company: dto.SessionCompany{
			ID:   sc.CompanyID,
			Code: sc.CompanyCode,
			Name: sc.CompanyName,
		},
		ExpiresAt: sc.ExpiresAt,
	}, nil
}

// Validate verifica firma y vigencia de la sesión; es lo que usa el
// middleware HTTP para atar el tenant a la petición.
func (uc *AuthUseCase) Validate(ctx context.Context, token string) (*jwt.Claims, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	sc, err := uc.sessions.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if sc == nil {
		return nil, domain.ErrSessionExpired
	}
	return claims, nil
}
