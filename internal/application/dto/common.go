package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/Contable-pos/internal/domain"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

// PersistenceWarningResponse respuesta de una mutación aplicada en memoria cuyo guardado falló.
type PersistenceWarningResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Applied any    `json:"applied,omitempty"`
}

// NumericText valor que el cliente puede enviar como número JSON o como texto.
// Se conserva el texto para que la validación informe el campo exacto.
type NumericText string

// UnmarshalJSON acepta 12, 12.5, "12", "abc" y null.
func (n *NumericText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*n = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumericText(s)
		return nil
	case len(b) > 0 && (b[0] == '-' || (b[0] >= '0' && b[0] <= '9')):
		*n = NumericText(b)
		return nil
	default:
		return fmt.Errorf("valor numérico inválido: %s", string(b))
	}
}

// String texto crudo.
func (n NumericText) String() string { return string(n) }

// Ptr devuelve un puntero al texto (útil en parches).
func (n NumericText) Ptr() *string {
	s := string(n)
	return &s
}

// HealthResponse estado del servicio.
type HealthResponse struct {
	Status       string           `json:"status"` // ok | degraded
	Service      string           `json:"service"`
	Storage      string           `json:"storage"`
	LoadWarnings []LoadWarningDTO `json:"load_warnings,omitempty"`
}

// LoadWarningDTO colección que no pudo cargarse al arrancar.
type LoadWarningDTO struct {
	Collection string `json:"collection"`
	Message    string `json:"message"`
}
