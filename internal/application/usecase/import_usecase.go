package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cloudcollect/cobranza-api/internal/application/dto"
	"github.com/cloudcollect/cobranza-api/internal/domain"
)

// ImportUseCase carga masiva de cuentas desde CSV. Cada fila se inserta con
// el mismo camino transaccional del alta individual; una fila mala no detiene
// el resto, solo queda reportada.
type ImportUseCase struct {
	debtors *DebtorUseCase
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(debtors *DebtorUseCase) *ImportUseCase {
	return &ImportUseCase{debtors: debtors}
}

// Columnas reconocidas en el encabezado del CSV. El orden es libre; las
// columnas desconocidas se ignoran.
var importColumns = map[string]bool{
	"firstName":         true,
	"lastName":          true,
	"email":             true,
	"address":           true,
	"city":              true,
	"state":             true,
	"zip":               true,
	"ssn":               true,
	"dob":               true,
	"employer":          true,
	"accountNumber":     true,
	"originalBalance":   true,
	"currentBalance":    true,
	"status":            true,
	"creditorName":      true,
	"clientName":        true,
	"portfolioId":       true,
	"assignedCollector": true,
	"phone":             true,
	"phoneType":         true,
}

// Import lee el CSV y crea una cuenta por fila. Devuelve el conteo de filas
// cargadas y los errores fila a fila.
func (uc *ImportUseCase) Import(ctx context.Context, companyID string, r io.Reader) (*dto.ImportSummaryResponse, error) {
	if err := requireCompany(companyID); err != nil {
		return nil, err
	}
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: el CSV no tiene encabezado", domain.ErrInvalidInput)
	}
	idx := make(map[string]int, len(header))
	for i, col := range header {
		col = strings.TrimSpace(col)
		if importColumns[col] {
			idx[col] = i
		}
	}
	for _, required := range []string{"firstName", "lastName", "accountNumber"} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("%w: falta la columna %s", domain.ErrInvalidInput, required)
		}
	}

	summary := &dto.ImportSummaryResponse{Errors: []dto.ImportRowError{}}
	rowNum := 1 // el encabezado es la fila 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNum++
		if err != nil {
			summary.Failed++
			summary.Errors = append(summary.Errors, dto.ImportRowError{Row: rowNum, Message: err.Error()})
			continue
		}
		req, err := buildImportRequest(idx, record)
		if err != nil {
			summary.Failed++
			summary.Errors = append(summary.Errors, dto.ImportRowError{Row: rowNum, Message: err.Error()})
			continue
		}
		if _, err := uc.debtors.Create(ctx, companyID, req); err != nil {
			summary.Failed++
			summary.Errors = append(summary.Errors, dto.ImportRowError{Row: rowNum, Message: err.Error()})
			continue
		}
		summary.Imported++
	}
	return summary, nil
}

func buildImportRequest(idx map[string]int, record []string) (dto.CreateDebtorRequest, error) {
	get := func(col string) string {
		i, ok := idx[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}
	parseAmount := func(col string) (decimal.Decimal, error) {
		raw := get(col)
		if raw == "" {
			return decimal.Zero, nil
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %s inválido: %q", domain.ErrInvalidInput, col, raw)
		}
		return d, nil
	}

	original, err := parseAmount("originalBalance")
	if err != nil {
		return dto.CreateDebtorRequest{}, err
	}
	current, err := parseAmount("currentBalance")
	if err != nil {
		return dto.CreateDebtorRequest{}, err
	}

	req := dto.CreateDebtorRequest{
		FirstName:         get("firstName"),
		LastName:          get("lastName"),
		Email:             get("email"),
		Address:           get("address"),
		City:              get("city"),
		State:             get("state"),
		Zip:               get("zip"),
		SSN:               get("ssn"),
		DOB:               get("dob"),
		Employer:          get("employer"),
		AccountNumber:     get("accountNumber"),
		OriginalBalance:   original,
		CurrentBalance:    current,
		Status:            get("status"),
		CreditorName:      get("creditorName"),
		ClientName:        get("clientName"),
		PortfolioID:       get("portfolioId"),
		AssignedCollector: get("assignedCollector"),
	}
	if number := get("phone"); number != "" {
		phoneType := get("phoneType")
		if phoneType == "" {
			phoneType = "cell"
		}
		req.Phones = []dto.PhoneInput{{Number: number, Type: phoneType, Primary: true}}
	}
	return req, nil
}
