package dto

import "time"

// LoginRequest credenciales de inicio de sesión. El usuario escribe el
// código de cuatro dígitos de su empresa además de email y contraseña.
type LoginRequest struct {
	CompanyCode string `json:"companyCode" validate:"required,len=4"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
}

// LoginResponse sesión emitida tras autenticar.
type LoginResponse struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expires_at"`
	User      SessionUser    `json:"user"`
	Company   SessionCompany `json:"company"`
}

// SessionUser identidad del usuario autenticado.
type SessionUser struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// SessionCompany empresa a la que quedó atada la sesión.
type SessionCompany struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// MeResponse respuesta de GET /api/auth/me.
type MeResponse struct {
	User      SessionUser    `json:"user"`
	Company   SessionCompany `json:"company"`
	ExpiresAt time.Time      `json:"expires_at"`
}
