// Package inventory contiene reglas de dominio del catálogo: generación de
// códigos de barras y lectura de los valores numéricos que llegan como texto.
package inventory

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Contable-pos/internal/domain"
)

// ParseNonNegativeDecimal interpreta raw como decimal >= 0. Registra el error en verr.
func ParseNonNegativeDecimal(verr *domain.ValidationError, field, raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		verr.Add(field, "requerido")
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		verr.Add(field, "no es un número válido")
		return decimal.Zero
	}
	if d.IsNegative() {
		verr.Add(field, "debe ser mayor o igual a 0")
		return decimal.Zero
	}
	return d
}

// ParseInt interpreta raw como entero >= min. Registra el error en verr.
func ParseInt(verr *domain.ValidationError, field, raw string, min int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		verr.Add(field, "requerido")
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		verr.Add(field, "debe ser un número entero")
		return 0
	}
	if n < min {
		if min == 1 {
			verr.Add(field, "debe ser mayor que 0")
		} else {
			verr.Add(field, "debe ser mayor o igual a 0")
		}
		return 0
	}
	return n
}

// RequireText devuelve raw sin espacios extremos; vacío se registra como requerido.
func RequireText(verr *domain.ValidationError, field, raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		verr.Add(field, "requerido")
	}
	return s
}
