// Package search implementa el filtro tokenizado del listado de cuentas: la
// consulta se parte por espacios y TODOS los tokens deben coincidir con algún
// campo del registro. Es deliberadamente más estricto que el buscador del
// servidor (subcadena simple); ambas semánticas conviven en la API.
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks elimina los diacríticos (NFD -> quitar marcas -> NFC).
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize pasa a minúsculas y elimina diacríticos ("Muñoz" -> "munoz").
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

func stripNonAlnum(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

type token struct {
	norm string // minúsculas, sin diacríticos ni signos
	raw  string // minúsculas, tal cual lo tecleó el usuario
}

// Matcher evalúa una consulta tokenizada contra los campos de una cuenta.
type Matcher struct {
	tokens []token
}

// NewMatcher tokeniza la consulta. Una consulta vacía produce un matcher que
// acepta todo.
func NewMatcher(query string) *Matcher {
	m := &Matcher{}
	for _, raw := range strings.Fields(strings.ToLower(strings.TrimSpace(query))) {
		m.tokens = append(m.tokens, token{norm: stripNonAlnum(Normalize(raw)), raw: raw})
	}
	return m
}

// Empty informa si la consulta no tenía tokens.
func (m *Matcher) Empty() bool { return len(m.tokens) == 0 }

// Matches aplica la regla del listado: cada token debe aparecer en el nombre
// completo, en el número de cuenta o en su versión solo-dígitos. Para el
// número de cuenta también se acepta el token sin normalizar, de modo que
// "acc-12345" encuentre la cuenta "ACC-12345".
func (m *Matcher) Matches(fullName, accountNumber string) bool {
	if m.Empty() {
		return true
	}
	account := strings.ToLower(accountNumber)
	fields := []string{Normalize(fullName), account, digitsOnly(account)}
	for _, tok := range m.tokens {
		ok := false
		for _, f := range fields {
			if tok.norm != "" && strings.Contains(f, tok.norm) {
				ok = true
				break
			}
		}
		if !ok && strings.Contains(account, tok.raw) {
			ok = true
		}
		if !ok {
			return false
		}
	}
	return true
}
