// Package phone normaliza números telefónicos al formato nacional de 10
// dígitos con el que se guardan en la base y se arman los enlaces wa.me.
package phone

import (
	"fmt"
	"strings"
	"unicode"
)

// nationalDigits longitud del número nacional sin prefijo de país.
const nationalDigits = 10

// Normalize limpia un teléfono ingresado por el usuario y devuelve los 10
// dígitos nacionales. Acepta "+91 98765 43210", "098765-43210",
// "919876543210" o "9876543210"; quita todo lo que no sea dígito, los ceros
// a la izquierda y el prefijo de país indicado (countryCode, ej. "91").
func Normalize(raw, countryCode string) (string, error) {
	digits := extractDigits(raw)
	if digits == "" {
		return "", fmt.Errorf("phone: no contiene dígitos: %q", raw)
	}
	digits = strings.TrimLeft(digits, "0")
	if countryCode != "" && len(digits) == nationalDigits+len(countryCode) && strings.HasPrefix(digits, countryCode) {
		digits = digits[len(countryCode):]
	}
	if len(digits) != nationalDigits {
		return "", fmt.Errorf("phone: se esperaban %d dígitos nacionales, quedaron %d (%q)", nationalDigits, len(digits), raw)
	}
	return digits, nil
}

func extractDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
