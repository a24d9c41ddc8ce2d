package store

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents descompone (NFD), elimina las marcas diacríticas y recompone.
// "Crème Hydratante" y "creme hydratante" deben coincidir en la búsqueda.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldAccents(s string) string {
	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

func containsFolded(haystack, foldedNeedle string) bool {
	return strings.Contains(foldAccents(haystack), foldedNeedle)
}
