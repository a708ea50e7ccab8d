package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cloudcollect/cobranza-api/pkg/search"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de Normalize: minúsculas y diacríticos
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalize_QuitaDiacriticos(t *testing.T) {
	assert.Equal(t, "munoz", search.Normalize("Muñoz"))
	assert.Equal(t, "jose maria", search.Normalize("José María"))
	assert.Equal(t, "perez", search.Normalize("PÉREZ"))
}

func TestNormalize_TextoSinDiacriticos_QuedaIgual(t *testing.T) {
	assert.Equal(t, "smith", search.Normalize("Smith"))
	assert.Equal(t, "acc-12345", search.Normalize("ACC-12345"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de Matcher: regla de todos-los-tokens del listado
// ──────────────────────────────────────────────────────────────────────────────

func TestMatcher_ConsultaVacia_AceptaTodo(t *testing.T) {
	m := search.NewMatcher("")
	assert.True(t, m.Empty(), "consulta vacía no debe producir tokens")
	assert.True(t, m.Matches("John Smith", "ACC-100"))

	m = search.NewMatcher("   ")
	assert.True(t, m.Empty(), "solo espacios tampoco produce tokens")
}

func TestMatcher_UnToken_CoincideEnNombre(t *testing.T) {
	m := search.NewMatcher("smith")
	assert.True(t, m.Matches("John Smith", "ACC-100"))
	assert.False(t, m.Matches("Jane Doe", "ACC-100"))
}

// Cada token debe coincidir por su cuenta; basta uno que falle para descartar
// el registro.
func TestMatcher_VariosTokens_TodosDebenCoincidir(t *testing.T) {
	m := search.NewMatcher("john smith")
	assert.True(t, m.Matches("John Smith", "ACC-100"))
	assert.False(t, m.Matches("John Doe", "ACC-100"),
		"smith no aparece, el registro debe descartarse")
}

func TestMatcher_TokensRepartidosEntreCampos(t *testing.T) {
	// Un token coincide en el nombre y el otro en el número de cuenta.
	m := search.NewMatcher("smith 100")
	assert.True(t, m.Matches("John Smith", "ACC-100"))
}

func TestMatcher_InsensibleADiacriticos(t *testing.T) {
	m := search.NewMatcher("munoz")
	assert.True(t, m.Matches("Ana Muñoz", "ACC-200"),
		"la consulta sin tilde debe encontrar el nombre con tilde")

	m = search.NewMatcher("muñoz")
	assert.True(t, m.Matches("Ana Munoz", "ACC-200"),
		"la consulta con tilde debe encontrar el nombre sin tilde")
}

func TestMatcher_NumeroDeCuenta_AceptaTokenCrudo(t *testing.T) {
	// El token con guion se acepta tal cual contra el número de cuenta.
	m := search.NewMatcher("acc-12345")
	assert.True(t, m.Matches("John Smith", "ACC-12345"))
}

func TestMatcher_NumeroDeCuenta_SoloDigitos(t *testing.T) {
	// "12345" debe encontrar "ACC-123-45" vía la versión solo-dígitos.
	m := search.NewMatcher("12345")
	assert.True(t, m.Matches("John Smith", "ACC-123-45"))
}

func TestMatcher_SinCoincidencia(t *testing.T) {
	m := search.NewMatcher("garcia")
	assert.False(t, m.Matches("John Smith", "ACC-100"))
}
