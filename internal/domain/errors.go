package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCompanyCode = errors.New("el código de empresa debe tener exactamente 4 dígitos")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrSessionExpired     = errors.New("sesión expirada o inexistente")

	// ErrCompanyIDRequired indica que un caso de uso tenant-scoped fue invocado
	// sin company_id. Es un error de programación en la capa de adaptadores,
	// nunca una condición que dependa del cliente.
	ErrCompanyIDRequired = errors.New("Company ID required")
)
