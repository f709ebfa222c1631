package inventory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/Contable-pos/internal/domain/entity"
)

// BarcodePrefix prefijo de los códigos generados por el sistema.
const BarcodePrefix = "AUTOGEN-"

// FormatBarcode genera el código para la secuencia n (AUTOGEN-0001).
func FormatBarcode(n int) string {
	return fmt.Sprintf("%s%04d", BarcodePrefix, n)
}

// MaxBarcodeSequence devuelve el mayor sufijo numérico AUTOGEN-NNNN del catálogo.
// Los códigos con otro formato no cuentan.
func MaxBarcodeSequence(products []entity.Product) int {
	highest := 0
	for _, p := range products {
		if !strings.HasPrefix(p.Barcode, BarcodePrefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(p.Barcode, BarcodePrefix))
		if err != nil || n < 0 {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return highest
}
