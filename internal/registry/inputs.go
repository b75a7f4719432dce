package registry

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Swissbit92/MCP-CryptoResearch/internal/table"
	"github.com/Swissbit92/MCP-CryptoResearch/pkg/errors"
)

// DefaultInputAliases returns the default table of column aliases for each
// logical OHLCV input. The first alias present in a table wins.
func DefaultInputAliases() map[string][]string {
	return map[string][]string{
		"open":   {"open", "Open", "OPEN", "o", "O"},
		"high":   {"high", "High", "HIGH", "h", "H"},
		"low":    {"low", "Low", "LOW", "l", "L"},
		"close":  {"close", "Close", "CLOSE", "c", "C", "price", "Price", "adj_close", "Adj Close"},
		"volume": {"volume", "Volume", "VOLUME", "vol", "Vol", "VOL"},
	}
}

// inputAliasConfig is the YAML shape of an input-alias override file:
//
//	input_aliases:
//	  close: [close, last, px]
//	  volume: [volume, qty]
type inputAliasConfig struct {
	InputAliases map[string][]string `yaml:"input_aliases"`
}

// LoadInputAliases reads an input-alias table from a YAML file. Logical
// inputs absent from the file keep their defaults.
func LoadInputAliases(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg inputAliasConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	aliases := DefaultInputAliases()
	for logical, names := range cfg.InputAliases {
		aliases[logical] = names
	}

	return aliases, nil
}

// findColumn resolves a logical input to an actual table column using the
// registry's alias table, falling back to the literal logical name.
func (r *Registry) findColumn(tbl *table.Table, logical string) (string, error) {
	for _, name := range r.inputAliases[logical] {
		if tbl.HasColumn(name) {
			return name, nil
		}
	}
	if tbl.HasColumn(logical) {
		return logical, nil
	}

	return "", errors.Newf(errors.ErrCodeMissingInput,
		"required input %q not found in table columns: %v", logical, tbl.Columns())
}
