package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/cloudcollect/cobranza-api/internal/application/auth"
	"github.com/cloudcollect/cobranza-api/internal/application/dto"
	"github.com/cloudcollect/cobranza-api/internal/domain"
	"github.com/cloudcollect/cobranza-api/internal/domain/entity"
	"github.com/cloudcollect/cobranza-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

var (
	_ repository.UserRepository    = (*fakeUserRepo)(nil)
	_ repository.CompanyRepository = (*fakeCompanyRepo)(nil)
	_ repository.SessionRepository = (*fakeSessionRepo)(nil)
)

type fakeUserRepo struct {
	byEmail map[string]*entity.UserWithRole // companyID + "|" + email
}

func (f *fakeUserRepo) Create(_ context.Context, _ *entity.User) error { return nil }

func (f *fakeUserRepo) GetByEmail(_ context.Context, companyID, email string) (*entity.UserWithRole, error) {
	u, ok := f.byEmail[companyID+"|"+email]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (f *fakeUserRepo) ListByCompany(_ context.Context, _ string, _, _ int) ([]*entity.User, error) {
	return nil, nil
}

type fakeCompanyRepo struct {
	byCode map[string]*entity.Company
}

func (f *fakeCompanyRepo) Create(_ context.Context, _ *entity.Company) error { return nil }

func (f *fakeCompanyRepo) GetByID(_ context.Context, _ string) (*entity.Company, error) {
	return nil, nil
}

func (f *fakeCompanyRepo) GetByCode(_ context.Context, code string) (*entity.Company, error) {
	c, ok := f.byCode[code]
	if !ok {
		return nil, nil
	}
	return c, nil
}

type fakeSessionRepo struct {
	byToken map[string]*entity.SessionContext
}

func (f *fakeSessionRepo) Create(_ context.Context, s *entity.Session) error {
	f.byToken[s.Token] = &entity.SessionContext{
		Session:     *s,
		FirstName:   "John",
		LastName:    "Operator",
		Email:       testEmail,
		CompanyCode: testCompanyCode,
		CompanyName: "Recuperadora Andina",
	}
	return nil
}

func (f *fakeSessionRepo) GetByToken(_ context.Context, token string) (*entity.SessionContext, error) {
	s, ok := f.byToken[token]
	if !ok || time.Now().After(s.ExpiresAt) {
		return nil, nil
	}
	return s, nil
}

func (f *fakeSessionRepo) DeleteByToken(_ context.Context, token string) error {
	delete(f.byToken, token)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	testCompanyID   = "00000000-0000-0000-0000-000000000002"
	testUserID      = "00000000-0000-0000-0000-000000000001"
	testCompanyCode = "1234"
	testEmail       = "john@agency.test"
	testPassword    = "hunter2-pero-largo"
)

func newAuthFixture(t *testing.T) (*auth.AuthUseCase, *fakeSessionRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	users := &fakeUserRepo{byEmail: map[string]*entity.UserWithRole{
		testCompanyID + "|" + testEmail: {
			User: entity.User{
				ID:           testUserID,
				CompanyID:    testCompanyID,
				FirstName:    "John",
				LastName:     "Operator",
				Email:        testEmail,
				PasswordHash: string(hash),
				Status:       "active",
			},
			RoleName: "manager",
		},
	}}
	companies := &fakeCompanyRepo{byCode: map[string]*entity.Company{
		testCompanyCode: {ID: testCompanyID, Code: testCompanyCode, Name: "Recuperadora Andina", Status: "active"},
	}}
	sessions := &fakeSessionRepo{byToken: make(map[string]*entity.SessionContext)}

	uc := auth.NewAuthUseCase(users, companies, sessions, auth.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		ExpMinutes: 60,
		Issuer:     "cloudcollect-test",
	})
	return uc, sessions
}

func loginRequest() dto.LoginRequest {
	return dto.LoginRequest{CompanyCode: testCompanyCode, Email: testEmail, Password: testPassword}
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_OK(t *testing.T) {
	uc, sessions := newAuthFixture(t)

	out, err := uc.Login(context.Background(), loginRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, testUserID, out.User.ID)
	assert.Equal(t, "manager", out.User.Role)
	assert.Equal(t, testCompanyCode, out.Company.Code)
	assert.True(t, out.ExpiresAt.After(time.Now()))

	_, ok := sessions.byToken[out.Token]
	assert.True(t, ok, "el token emitido debe quedar guardado como sesión")
}

// Código desconocido, usuario desconocido y contraseña mala responden con el
// mismo error: no se filtra qué parte falló.
func TestLogin_CredencialesMalas_RespuestaUniforme(t *testing.T) {
	uc, _ := newAuthFixture(t)
	ctx := context.Background()

	req := loginRequest()
	req.CompanyCode = "9999"
	_, err := uc.Login(ctx, req)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	req = loginRequest()
	req.Email = "nadie@agency.test"
	_, err = uc.Login(ctx, req)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	req = loginRequest()
	req.Password = "incorrecta"
	_, err = uc.Login(ctx, req)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validate / Me / Logout: el ciclo de vida de la sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_SesionViva(t *testing.T) {
	uc, _ := newAuthFixture(t)
	ctx := context.Background()

	out, err := uc.Login(ctx, loginRequest())
	require.NoError(t, err)

	claims, err := uc.Validate(ctx, out.Token)
	require.NoError(t, err)
	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, testCompanyID, claims.CompanyID)
	assert.Equal(t, "manager", claims.Role)
}

func TestValidate_FirmaInvalida(t *testing.T) {
	uc, _ := newAuthFixture(t)

	_, err := uc.Validate(context.Background(), "token.invalido.aqui")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Tras el logout el token sigue firmado correctamente, pero la sesión ya no
// existe: debe rechazarse.
func TestLogout_InvalidaElToken(t *testing.T) {
	uc, _ := newAuthFixture(t)
	ctx := context.Background()

	out, err := uc.Login(ctx, loginRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx, out.Token))

	_, err = uc.Validate(ctx, out.Token)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)

	// Idempotente: repetir el logout no es error.
	assert.NoError(t, uc.Logout(ctx, out.Token))
}

func TestMe_SesionViva(t *testing.T) {
	uc, _ := newAuthFixture(t)
	ctx := context.Background()

	out, err := uc.Login(ctx, loginRequest())
	require.NoError(t, err)

	me, err := uc.Me(ctx, out.Token)
	require.NoError(t, err)
	assert.Equal(t, testUserID, me.User.ID)
	assert.Equal(t, "manager", me.User.Role)
	assert.Equal(t, testCompanyCode, me.Company.Code)
}

func TestMe_SesionInexistente(t *testing.T) {
	uc, _ := newAuthFixture(t)

	_, err := uc.Me(context.Background(), "token-que-nunca-existio")
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}
