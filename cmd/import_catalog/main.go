// import_catalog carga productos desde un CSV al catálogo configurado (STORAGE_DRIVER).
//
// Uso: go run ./cmd/import_catalog [-latin1] [-dry-run] [-quiet] ruta/productos.csv
// Columnas esperadas (con encabezado): name,purchase_price,selling_price,quantity,tax_percent
// Cada fila recibe el siguiente barcode AUTOGEN-NNNN; las filas inválidas se reportan y se omiten.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Contable-pos/internal/application/dto"
	"github.com/jhoicas/Contable-pos/internal/application/inventory"
	"github.com/jhoicas/Contable-pos/internal/domain"
	"github.com/jhoicas/Contable-pos/internal/infrastructure/storage"
	"github.com/jhoicas/Contable-pos/pkg/config"
	"github.com/jhoicas/Contable-pos/pkg/logger"
)

var columns = []string{"name", "purchase_price", "selling_price", "quantity", "tax_percent"}

// row fila del CSV ya mapeada a la entrada del catálogo.
type row struct {
	line  int
	input dto.ProductInput
}

func main() {
	os.Exit(run())
}

func run() int {
	latin1 := flag.Bool("latin1", false, "el CSV está en ISO-8859-1 (exportaciones de hojas de cálculo antiguas)")
	dryRun := flag.Bool("dry-run", false, "valida cada fila como el catálogo, sin guardar")
	quiet := flag.Bool("quiet", false, "no emitir logs, solo el resumen")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Uso: import_catalog [-latin1] [-dry-run] [-quiet] productos.csv")
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		return 1
	}
	// Los logs van a stderr; stdout queda para el resumen.
	log := logger.Nop()
	if !*quiet {
		log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: os.Stderr})
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		return 1
	}
	defer f.Close()

	var input io.Reader = f
	if *latin1 {
		input = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}
	rows, err := readRows(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		return 1
	}
	if *dryRun {
		valid, invalid := validateRows(rows)
		fmt.Printf("%d filas válidas, %d inválidas (sin guardar)\n", valid, invalid)
		if invalid > 0 {
			return 1
		}
		return 0
	}

	ctx := context.Background()
	stores, err := storage.Open(ctx, cfg, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Almacenamiento: %v\n", err)
		return 1
	}
	defer stores.Close()

	catalog := inventory.NewCatalog(ctx, stores.Products, log.Component("import"))
	if err := catalog.LoadWarning(); err != nil {
		// Importar sobre un inventario ilegible lo sobrescribiría.
		fmt.Fprintf(os.Stderr, "Inventario existente ilegible, se aborta: %v\n", err)
		return 1
	}

	added, skipped := importRows(ctx, catalog, rows)
	fmt.Printf("Importados %d productos, %d filas omitidas\n", added, skipped)
	if added == 0 && skipped > 0 {
		return 1
	}
	return 0
}

// readRows valida el encabezado y devuelve las filas de datos.
func readRows(r io.Reader) ([]row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = len(columns)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("encabezado: %w", err)
	}
	for i, col := range columns {
		if !strings.EqualFold(strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff")), col) {
			return nil, fmt.Errorf("columna %d: se esperaba %q y llegó %q", i+1, col, header[i])
		}
	}

	var rows []row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		rows = append(rows, row{
			line: line,
			input: dto.ProductInput{
				Name:          rec[0],
				PurchasePrice: dto.NumericText(rec[1]),
				SellingPrice:  dto.NumericText(rec[2]),
				Quantity:      dto.NumericText(rec[3]),
				TaxPercent:    dto.NumericText(rec[4]),
			},
		})
	}
	return rows, nil
}

// validateRows aplica a cada fila la misma validación que AddProduct.
func validateRows(rows []row) (valid, invalid int) {
	for _, r := range rows {
		if _, err := inventory.ParseProductInput(r.input); err != nil {
			invalid++
			fmt.Fprintf(os.Stderr, "Línea %d inválida: %v\n", r.line, err)
			continue
		}
		valid++
	}
	return valid, invalid
}

// importRows agrega cada fila válida; un fallo de guardado detiene la importación.
func importRows(ctx context.Context, catalog *inventory.Catalog, rows []row) (added, skipped int) {
	for _, r := range rows {
		p, err := catalog.AddProduct(ctx, r.input)
		var verr *domain.ValidationError
		switch {
		case err == nil:
			added++
		case errors.As(err, &verr):
			skipped++
			fmt.Fprintf(os.Stderr, "Línea %d omitida: %v\n", r.line, verr)
		default:
			fmt.Fprintf(os.Stderr, "Guardar %s: %v\n", p.Barcode, err)
			return added, len(rows) - added
		}
	}
	return added, skipped
}
