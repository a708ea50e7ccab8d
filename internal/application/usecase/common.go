package usecase

import (
	"fmt"
	"time"

	"github.com/cloudcollect/cobranza-api/internal/domain"
)

const dateLayout = "2006-01-02"

// requireCompany es la guarda multi-tenant: toda operación de datos exige un
// tenant atado antes de tocar el almacén.
func requireCompany(companyID string) error {
	if companyID == "" {
		return domain.ErrCompanyIDRequired
	}
	return nil
}

// parseDate interpreta una fecha YYYY-MM-DD del cliente.
func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s debe ser YYYY-MM-DD", domain.ErrInvalidInput, field)
	}
	return t, nil
}

// parseDatePtr igual que parseDate pero tolera nil.
func parseDatePtr(field string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := parseDate(field, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
