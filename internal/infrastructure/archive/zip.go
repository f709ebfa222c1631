// Package archive empaqueta documentos exportados en un ZIP en memoria.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"time"

	"github.com/jhoicas/Contable-pos/internal/application/billing"
)

// ZipPacker implementa billing.Archiver.
type ZipPacker struct {
	now func() time.Time
}

// NewZipPacker crea el empaquetador; las entradas llevan la fecha de empaquetado.
func NewZipPacker() *ZipPacker {
	return &ZipPacker{now: time.Now}
}

// Pack escribe cada archivo como una entrada deflate, en el orden recibido.
func (p *ZipPacker) Pack(files []billing.ArchiveFile) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, f := range files {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     f.Name,
			Method:   zip.Deflate,
			Modified: p.now(),
		})
		if err != nil {
			return nil, fmt.Errorf("zip: crear entrada %s: %w", f.Name, err)
		}
		if _, err := fw.Write(f.Content); err != nil {
			return nil, fmt.Errorf("zip: escribir %s: %w", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zip: cerrar archivo: %w", err)
	}
	return buf.Bytes(), nil
}
