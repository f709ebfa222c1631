// Package jsonstore implementa el almacén de colecciones como documentos JSON
// en disco: un archivo por colección, reemplazo completo en cada guardado.
package jsonstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/jhoicas/Contable-pos/internal/domain"
	"github.com/jhoicas/Contable-pos/internal/domain/entity"
	"github.com/jhoicas/Contable-pos/internal/domain/repository"
)

var (
	_ repository.ProductRepository  = (*Collection[entity.Product])(nil)
	_ repository.CustomerRepository = (*Collection[entity.Customer])(nil)
	_ repository.InvoiceRepository  = (*Collection[entity.SavedInvoice])(nil)
)

// Collection adaptador de persistencia de una colección sobre un archivo JSON.
type Collection[T any] struct {
	fs   afero.Fs
	name string
	path string
}

// NewCollection construye el adaptador. name identifica la colección en errores y logs.
func NewCollection[T any](fs afero.Fs, name, path string) *Collection[T] {
	return &Collection[T]{fs: fs, name: name, path: path}
}

// Path ruta del documento.
func (c *Collection[T]) Path() string { return c.path }

// Load lee el documento completo. Archivo inexistente: colección vacía sin error.
// Documento ilegible (incluido un archivo vacío): colección vacía y error con
// domain.ErrCorruptData; el archivo no se toca.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return []T{}, c.fail("load", err)
	}
	data, err := afero.ReadFile(c.fs, c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []T{}, nil
		}
		return []T{}, c.fail("load", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []T{}, c.fail("load", fmt.Errorf("%w: documento vacío", domain.ErrCorruptData))
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return []T{}, c.fail("load", fmt.Errorf("%w: %v", domain.ErrCorruptData, err))
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Save reemplaza el documento: escribe en un temporal del mismo directorio y lo renombra.
// Si algo falla el documento anterior queda intacto.
func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	if err := ctx.Err(); err != nil {
		return c.fail("save", err)
	}
	if records == nil {
		records = []T{}
	}
	data, err := encode(records)
	if err != nil {
		return c.fail("save", err)
	}

	dir := filepath.Dir(c.path)
	if err := c.fs.MkdirAll(dir, 0o755); err != nil {
		return c.fail("save", fmt.Errorf("crear directorio: %w", err))
	}
	tmp, err := afero.TempFile(c.fs, dir, "."+filepath.Base(c.path)+".*.tmp")
	if err != nil {
		return c.fail("save", fmt.Errorf("crear temporal: %w", err))
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = c.fs.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return c.fail("save", fmt.Errorf("escribir temporal: %w", err))
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return c.fail("save", fmt.Errorf("sync temporal: %w", err))
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return c.fail("save", fmt.Errorf("cerrar temporal: %w", err))
	}
	if err := c.fs.Rename(tmpName, c.path); err != nil {
		cleanup()
		return c.fail("save", fmt.Errorf("reemplazar documento: %w", err))
	}
	return nil
}

func (c *Collection[T]) fail(op string, err error) error {
	return &domain.PersistenceError{Op: op, Collection: c.name, Err: err}
}

// encode serializa con sangría de 4 espacios y sin escapar HTML (texto no ASCII tal cual).
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
