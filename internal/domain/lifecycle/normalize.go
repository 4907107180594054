package lifecycle

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks descompone (NFD), elimina marcas combinantes y recompone (NFC):
// "Añejo" y "Anejo" comparan igual.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize produce la clave canónica de comparación para una clave natural:
// minúsculas, sin diacríticos, espacios colapsados. Determinista, total y pura.
// Para claves numéricas (número de mesa, código de producto) la entidad emite
// la representación base-10 canónica, sobre la que Normalize es identidad.
func Normalize(raw string) string {
	s, _, err := transform.String(stripMarks, raw)
	if err != nil {
		s = raw
	}
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
