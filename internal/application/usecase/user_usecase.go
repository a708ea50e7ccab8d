package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/cloudcollect/cobranza-api/internal/application/dto"
	"github.com/cloudcollect/cobranza-api/internal/domain"
	"github.com/cloudcollect/cobranza-api/internal/domain/entity"
	"github.com/cloudcollect/cobranza-api/internal/domain/repository"
)

// UserUseCase gestión de usuarios y roles de la empresa.
type UserUseCase struct {
	users repository.UserRepository
	roles repository.RoleRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users repository.UserRepository, roles repository.RoleRepository) *UserUseCase {
	return &UserUseCase{users: users, roles: roles}
}

// CreateUser crea un usuario: hashea la contraseña con bcrypt y persiste.
// domain.ErrDuplicate si el email ya existe en la empresa.
func (uc *UserUseCase) CreateUser(ctx context.Context, companyID string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := requireCompany(companyID); err != nil {
		return nil, err
	}
	if in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email y password son obligatorios", domain.ErrInvalidInput)
	}
	existing, err := uc.users.GetByEmail(ctx, companyID, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	id := in.ID
	if id == "" {
		id = uuid.New().String()
	}
	now := time.Now()
	user := &entity.User{
		ID:           id,
		CompanyID:    companyID,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
		RoleID:       in.RoleID,
		Status:       "active",
		Department:   in.Department,
		Position:     in.Position,
		Phone:        in.Phone,
		Supervisor:   in.Supervisor,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ListUsers devuelve los usuarios de la empresa.
func (uc *UserUseCase) ListUsers(ctx context.Context, companyID string, page dto.PageRequest) ([]dto.UserResponse, error) {
	if err := requireCompany(companyID); err != nil {
		return nil, err
	}
	page.DefaultPage()
	rows, err := uc.users.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(rows))
	for _, u := range rows {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

// CreateRole crea un rol con su lista de permisos.
func (uc *UserUseCase) CreateRole(ctx context.Context, companyID string, in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	if err := requireCompany(companyID); err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	}
	id := in.ID
	if id == "" {
		id = uuid.New().String()
	}
	permissions := in.Permissions
	if permissions == nil {
		permissions = []string{}
	}
	now := time.Now()
	role := &entity.Role{
		ID:          id,
		CompanyID:   companyID,
		Name:        in.Name,
		Description: in.Description,
		Permissions: permissions,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.roles.Create(ctx, role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// ListRoles devuelve los roles de la empresa.
func (uc *UserUseCase) ListRoles(ctx context.Context, companyID string) ([]dto.RoleResponse, error) {
	if err := requireCompany(companyID); err != nil {
		return nil, err
	}
	rows, err := uc.roles.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RoleResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, *toRoleResponse(r))
	}
	return items, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		CompanyID:  u.CompanyID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		RoleID:     u.RoleID,
		Status:     u.Status,
		LastLogin:  u.LastLogin,
		Department: u.Department,
		Position:   u.Position,
		Phone:      u.Phone,
		Supervisor: u.Supervisor,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func toRoleResponse(r *entity.Role) *dto.RoleResponse {
	if r == nil {
		return nil
	}
	return &dto.RoleResponse{
		ID:          r.ID,
		CompanyID:   r.CompanyID,
		Name:        r.Name,
		Description: r.Description,
		Permissions: r.Permissions,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
