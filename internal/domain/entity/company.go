package entity

import "time"

// Company representa una agencia de cobranza: el tenant raíz del sistema.
// Toda entidad hija lleva su CompanyID y el borrado cascadea a los hijos.
type Company struct {
	ID        string
	Code      string // código numérico de 4 dígitos, único global (^\d{4}$)
	Name      string
	Email     string
	Phone     string
	Address   string
	City      string
	State     string
	Zip       string
	Website   string
	TaxID     string
	LogoURL   string
	Settings  string // blob JSON de configuración libre
	Status    string // active, inactive, suspended
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Estados de ciclo de vida de una empresa.
const (
	CompanyStatusActive    = "active"
	CompanyStatusInactive  = "inactive"
	CompanyStatusSuspended = "suspended"
)
