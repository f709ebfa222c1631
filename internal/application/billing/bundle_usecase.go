package billing

import (
	"context"
	"fmt"
)

// BundleUseCase exporta PDF y UBL de una factura en un solo ZIP.
type BundleUseCase struct {
	pdf      *PDFUseCase
	xml      *XMLUseCase
	archiver Archiver
}

// NewBundleUseCase construye el caso de uso.
func NewBundleUseCase(pdf *PDFUseCase, xml *XMLUseCase, archiver Archiver) *BundleUseCase {
	return &BundleUseCase{pdf: pdf, xml: xml, archiver: archiver}
}

// DownloadInvoiceBundle devuelve el ZIP y su nombre sugerido (factura_<número>.zip).
func (uc *BundleUseCase) DownloadInvoiceBundle(ctx context.Context, number string) ([]byte, string, error) {
	pdfBytes, pdfName, err := uc.pdf.DownloadInvoicePDF(ctx, number)
	if err != nil {
		return nil, "", err
	}
	xmlBytes, xmlName, err := uc.xml.DownloadInvoiceXML(number)
	if err != nil {
		return nil, "", err
	}
	out, err := uc.archiver.Pack([]ArchiveFile{
		{Name: pdfName, Content: pdfBytes},
		{Name: xmlName, Content: xmlBytes},
	})
	if err != nil {
		return nil, "", fmt.Errorf("zip: empaquetado fallido: %w", err)
	}
	return out, fmt.Sprintf("factura_%s.zip", number), nil
}
