package entity

import "time"

// User es un operador de la agencia. Pertenece a una empresa y referencia un
// rol de esa misma empresa.
type User struct {
	ID           string
	CompanyID    string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	RoleID       string
	Status       string // active, inactive, suspended
	LastLogin    *time.Time
	Department   string
	Position     string
	Phone        string
	Supervisor   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserWithRole es el usuario con el nombre del rol y sus permisos resueltos
// (join contra roles; los permisos son códigos libres, no llaves foráneas).
type UserWithRole struct {
	User
	RoleName    string
	Permissions []string
}

// Role agrupa permisos dentro de una empresa. (company_id, name) es único.
type Role struct {
	ID          string
	CompanyID   string
	Name        string
	Description string
	Permissions []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
