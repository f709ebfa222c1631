package billing

import (
	"context"
	"fmt"
)

// PDFUseCase genera la representación gráfica (PDF) de una factura guardada.
type PDFUseCase struct {
	ledger    *Ledger
	generator InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(ledger *Ledger, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{ledger: ledger, generator: generator}
}

// DownloadInvoicePDF busca la factura en el libro y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la factura no existe.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, number string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.ledger.Get(number)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("factura_%s.pdf", inv.InvoiceNumber), nil
}
