package usecase

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/cloudcollect/cobranza-api/internal/application/dto"
	"github.com/cloudcollect/cobranza-api/internal/domain"
	"github.com/cloudcollect/cobranza-api/internal/domain/entity"
	"github.com/cloudcollect/cobranza-api/internal/domain/repository"
)

// Los usuarios escriben este código al iniciar sesión; siempre cuatro dígitos.
var companyCodePattern = regexp.MustCompile(`^[0-9]{4}$`)

// CompanyUseCase casos de uso de empresas de cobranza.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create registra una empresa. domain.ErrInvalidCompanyCode si el código no
// son cuatro dígitos; domain.ErrDuplicate si el código ya está tomado.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if !companyCodePattern.MatchString(in.Code) {
		return nil, domain.ErrInvalidCompanyCode
	}
	existing, err := uc.repo.GetByCode(ctx, in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	id := in.ID
	if id == "" {
		id = uuid.New().String()
	}
	settings := in.Settings
	if settings == "" {
		settings = "{}"
	}
	now := time.Now()
	company := &entity.Company{
		ID:        id,
		Code:      in.Code,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		City:      in.City,
		State:     in.State,
		Zip:       in.Zip,
		Website:   in.Website,
		TaxID:     in.TaxID,
		LogoURL:   in.LogoURL,
		Settings:  settings,
		Status:    entity.CompanyStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa activa. nil si no existe.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByCode obtiene una empresa activa por su código corto. nil si no existe.
func (uc *CompanyUseCase) GetByCode(ctx context.Context, code string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Code:      c.Code,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		City:      c.City,
		State:     c.State,
		Zip:       c.Zip,
		Website:   c.Website,
		TaxID:     c.TaxID,
		LogoURL:   c.LogoURL,
		Settings:  c.Settings,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
