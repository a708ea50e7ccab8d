package dto

import "time"

// CreateUserRequest entrada para crear un usuario de la empresa.
type CreateUserRequest struct {
	ID         string `json:"id"`
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	RoleID     string `json:"roleId"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Phone      string `json:"phone"`
	Supervisor string `json:"supervisor"`
}

// UserResponse salida de un usuario. Nunca incluye el hash de contraseña.
type UserResponse struct {
	ID         string     `json:"id"`
	CompanyID  string     `json:"company_id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Email      string     `json:"email"`
	RoleID     string     `json:"role_id"`
	Status     string     `json:"status"`
	LastLogin  *time.Time `json:"last_login"`
	Department string     `json:"department"`
	Position   string     `json:"position"`
	Phone      string     `json:"phone"`
	Supervisor string     `json:"supervisor"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// CreateRoleRequest entrada para crear un rol.
type CreateRoleRequest struct {
	ID          string   `json:"id"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

// RoleResponse salida de un rol con sus permisos.
type RoleResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
