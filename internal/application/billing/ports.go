package billing

import (
	"context"

	"github.com/jhoicas/Contable-pos/internal/domain/entity"
)

// ProductLookup consulta del catálogo que necesita el constructor de facturas.
type ProductLookup interface {
	GetProduct(barcode string) (entity.Product, error)
}

// InvoicePDFGenerator contrato para generar la representación gráfica de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, inv entity.SavedInvoice) ([]byte, error)
}

// InvoiceXMLBuilder contrato para generar el documento UBL de una factura.
type InvoiceXMLBuilder interface {
	BuildInvoiceXML(inv entity.SavedInvoice) ([]byte, error)
}

// ArchiveFile entrada de un paquete exportado.
type ArchiveFile struct {
	Name    string
	Content []byte
}

// Archiver empaqueta varios documentos en un único archivo descargable.
type Archiver interface {
	Pack(files []ArchiveFile) ([]byte, error)
}
