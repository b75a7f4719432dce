package registry

import (
	"encoding/json"
	"io"
	"os"

	"github.com/invopop/jsonschema"

	"github.com/Swissbit92/MCP-CryptoResearch/internal/types"
	"github.com/Swissbit92/MCP-CryptoResearch/pkg/errors"
)

// ExportJSON writes the full catalog as a JSON array to the given path, one
// Describe snapshot per indicator in List order. Concepts, labels, NLP
// hints, and formulas only; no market data.
func (r *Registry) ExportJSON(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeExportFailed, err, "failed to create %s", path)
	}
	defer f.Close()

	if err := r.WriteJSON(f); err != nil {
		return err
	}

	if err := f.Close(); err != nil {
		return errors.Wrapf(errors.ErrCodeExportFailed, err, "failed to write %s", path)
	}

	return nil
}

// WriteJSON writes the catalog export to an arbitrary writer.
func (r *Registry) WriteJSON(w io.Writer) error {
	catalog := make([]types.IndicatorDefinition, 0, len(r.List()))
	for _, name := range r.List() {
		def, err := r.Describe(name)
		if err != nil {
			return err
		}
		catalog = append(catalog, def)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(catalog); err != nil {
		return errors.Wrap(errors.ErrCodeExportFailed, "failed to encode catalog", err)
	}

	return nil
}

// CatalogSchema returns the JSON schema of one catalog entry, for consumers
// that validate the export before ingesting it.
func CatalogSchema() (string, error) {
	reflector := new(jsonschema.Reflector)
	reflector.DoNotReference = true
	schema := reflector.Reflect(types.IndicatorDefinition{})

	data, err := json.Marshal(schema)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeExportFailed, "failed to marshal catalog schema", err)
	}

	return string(data), nil
}
