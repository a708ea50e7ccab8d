package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cloudcollect/cobranza-api/internal/domain"
	"github.com/cloudcollect/cobranza-api/internal/domain/entity"
	"github.com/cloudcollect/cobranza-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)
var _ repository.RoleRepository = (*RoleRepo)(nil)

const userColumns = `id, company_id, first_name, last_name, email, password_hash, role_id,
	status, last_login, department, position, phone, supervisor, created_at, updated_at`

// UserRepo implementación de UserRepository (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un usuario. domain.ErrDuplicate si el email ya existe en la empresa.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		u.ID, u.CompanyID, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.RoleID,
		u.Status, u.LastLogin, u.Department, u.Position, u.Phone, u.Supervisor, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByEmail resuelve el usuario activo con su rol y permisos (LEFT JOIN roles).
// nil si no existe.
func (r *UserRepo) GetByEmail(ctx context.Context, companyID, email string) (*entity.UserWithRole, error) {
	query := `
		SELECT u.id, u.company_id, u.first_name, u.last_name, u.email, u.password_hash, u.role_id,
			u.status, u.last_login, u.department, u.position, u.phone, u.supervisor,
			u.created_at, u.updated_at,
			COALESCE(r.name, '') AS role_name,
			COALESCE(r.permissions, '[]') AS permissions
		FROM users u
		LEFT JOIN roles r ON r.id = u.role_id
		WHERE u.company_id = $1 AND u.email = $2 AND u.status = 'active'`
	var u entity.UserWithRole
	var permsJSON string
	err := r.q.QueryRow(ctx, query, companyID, email).Scan(
		&u.ID, &u.CompanyID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.RoleID,
		&u.Status, &u.LastLogin, &u.Department, &u.Position, &u.Phone, &u.Supervisor,
		&u.CreatedAt, &u.UpdatedAt, &u.RoleName, &permsJSON,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	if err := json.Unmarshal([]byte(permsJSON), &u.Permissions); err != nil {
		return nil, fmt.Errorf("decode permissions: %w", err)
	}
	return &u, nil
}

// ListByCompany lista usuarios de la empresa con paginación.
func (r *UserRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users WHERE company_id = $1
		ORDER BY last_name, first_name
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.CompanyID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash,
			&u.RoleID, &u.Status, &u.LastLogin, &u.Department, &u.Position, &u.Phone, &u.Supervisor,
			&u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// RoleRepo implementación de RoleRepository.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador.
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// Create persiste un rol; los permisos se guardan como arreglo JSON en texto.
func (r *RoleRepo) Create(ctx context.Context, role *entity.Role) error {
	perms, err := json.Marshal(role.Permissions)
	if err != nil {
		return fmt.Errorf("encode permissions: %w", err)
	}
	query := `
		INSERT INTO roles (id, company_id, name, description, permissions, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.q.Exec(ctx, query,
		role.ID, role.CompanyID, role.Name, role.Description, string(perms), role.CreatedAt, role.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// ListByCompany lista los roles de la empresa.
func (r *RoleRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Role, error) {
	query := `
		SELECT id, company_id, name, description, permissions, created_at, updated_at
		FROM roles WHERE company_id = $1
		ORDER BY name`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		var permsJSON string
		if err := rows.Scan(&role.ID, &role.CompanyID, &role.Name, &role.Description,
			&permsJSON, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		if err := json.Unmarshal([]byte(permsJSON), &role.Permissions); err != nil {
			return nil, fmt.Errorf("decode permissions: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}
