package billing

import (
	"fmt"
	"strconv"

	"github.com/jhoicas/Contable-pos/internal/domain/entity"
)

// NextInvoiceNumber devuelve "%03d" de 1 + el mayor número puramente numérico
// del libro (0 si no hay ninguno). Los números no numéricos se ignoran.
func NextInvoiceNumber(invoices []entity.SavedInvoice) string {
	highest := 0
	for _, inv := range invoices {
		if n, ok := numericInvoiceNumber(inv.InvoiceNumber); ok && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%03d", highest+1)
}

func numericInvoiceNumber(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
