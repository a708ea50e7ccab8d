package dto

import "time"

// CreateCompanyRequest entrada para registrar una empresa de cobranza.
// El código es el identificador corto de cuatro dígitos que los usuarios
// escriben al iniciar sesión.
type CreateCompanyRequest struct {
	ID       string `json:"id"`
	Code     string `json:"code" validate:"required,len=4"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
	Website  string `json:"website"`
	TaxID    string `json:"taxId"`
	LogoURL  string `json:"logoUrl"`
	Settings string `json:"settings"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Zip       string    `json:"zip"`
	Website   string    `json:"website"`
	TaxID     string    `json:"tax_id"`
	LogoURL   string    `json:"logo_url"`
	Settings  string    `json:"settings"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
