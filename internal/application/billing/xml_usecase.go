package billing

import "fmt"

// XMLUseCase exporta una factura guardada como documento UBL 2.1.
type XMLUseCase struct {
	ledger  *Ledger
	builder InvoiceXMLBuilder
}

// NewXMLUseCase construye el caso de uso.
func NewXMLUseCase(ledger *Ledger, builder InvoiceXMLBuilder) *XMLUseCase {
	return &XMLUseCase{ledger: ledger, builder: builder}
}

// DownloadInvoiceXML devuelve el XML y el nombre de archivo sugerido.
func (uc *XMLUseCase) DownloadInvoiceXML(number string) ([]byte, string, error) {
	inv, err := uc.ledger.Get(number)
	if err != nil {
		return nil, "", err
	}
	xml, err := uc.builder.BuildInvoiceXML(inv)
	if err != nil {
		return nil, "", fmt.Errorf("xml: generación fallida: %w", err)
	}
	return xml, fmt.Sprintf("factura_%s.xml", inv.InvoiceNumber), nil
}
