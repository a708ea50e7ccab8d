package entity

import "time"

// Session es una sesión de usuario respaldada por un token opaco firmado.
// El token se valida contra la fila en cada petición: borrar la fila
// (logout) invalida el token aunque la firma siga siendo correcta.
type Session struct {
	ID        string
	UserID    string
	CompanyID string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// SessionContext es la sesión con los campos desnormalizados de usuario y
// empresa que necesita el middleware (evita dos lookups extra por petición).
type SessionContext struct {
	Session
	FirstName   string
	LastName    string
	Email       string
	CompanyCode string
	CompanyName string
}
