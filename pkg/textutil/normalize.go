// Package textutil normalización de texto para búsquedas.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizer descompone (NFD), elimina marcas diacríticas y recompone (NFC).
var normalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeSearchTerm deja el término en minúsculas, sin acentos y sin
// espacios sobrantes, para comparar contra la forma normalizada en SQL.
func NormalizeSearchTerm(s string) string {
	out, _, err := transform.String(normalizer, s)
	if err != nil {
		out = s // entrada no transformable: comparar tal cual
	}
	return strings.ToLower(strings.TrimSpace(out))
}
