package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudcollect/cobranza-api/internal/domain"
)

// Test en el mismo paquete: buildDebtorUpdate es interno al adaptador pero es
// la pieza que decide qué SQL se ejecuta en el UPDATE parcial, así que se
// verifica sin base de datos.

func TestBuildDebtorUpdate_MapaVacio(t *testing.T) {
	clause, args, err := buildDebtorUpdate(nil)
	require.NoError(t, err)
	assert.Empty(t, clause)
	assert.Empty(t, args)
}

func TestBuildDebtorUpdate_OrdenDeterminista(t *testing.T) {
	fields := map[string]any{
		"status":     "paid",
		"first_name": "John",
		"city":       "Miami",
	}
	clause, args, err := buildDebtorUpdate(fields)
	require.NoError(t, err)

	// Las columnas salen ordenadas alfabéticamente y updated_at siempre al final.
	assert.Equal(t, "city = $1, first_name = $2, status = $3, updated_at = now()", clause)
	assert.Equal(t, []any{"Miami", "John", "paid"}, args)
}

func TestBuildDebtorUpdate_ColumnaFueraDeListaBlanca(t *testing.T) {
	fields := map[string]any{
		"company_id": "otro-tenant", // cambiar de tenant vía UPDATE está prohibido
	}
	_, _, err := buildDebtorUpdate(fields)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBuildDebtorUpdate_InyeccionPorNombreDeColumna(t *testing.T) {
	fields := map[string]any{
		"status = 'paid'; DROP TABLE debtors; --": "x",
	}
	_, _, err := buildDebtorUpdate(fields)
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"un nombre de columna arbitrario nunca debe llegar al SQL")
}
