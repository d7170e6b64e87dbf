// Package format renders activity values for display. The unit is implied by
// the activity tipo and never coerced: kilograms for food drives, Brazilian
// reais for everything else.
package format

import (
	"strconv"
	"strings"

	"donation-dashboard-service/internal/domain"
)

// Valor renders an activity value with its unit.
func Valor(tipo string, valor float64) string {
	if tipo == domain.TipoAlimentos {
		return strconv.FormatFloat(valor, 'f', -1, 64) + " kg"
	}
	return "R$ " + Number(valor, 2)
}

// Number renders a float in pt-BR notation: '.' thousand separators and a
// ',' decimal separator.
func Number(value float64, decimals int) string {
	s := strconv.FormatFloat(value, 'f', decimals, 64)

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(intPart[i])
	}

	out := b.String()
	if fracPart != "" {
		out += "," + fracPart
	}
	if negative {
		out = "-" + out
	}
	return out
}
