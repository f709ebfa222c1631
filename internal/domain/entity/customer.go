package entity

// Customer representa un cliente. No tiene identificador: se compara solo por
// sus campos y se permiten duplicados.
type Customer struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	TaxNumber string `json:"tax_number"`
}
