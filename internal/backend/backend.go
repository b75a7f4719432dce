// Package backend defines the adapter protocol between the indicator
// registry and pluggable numeric backends, plus the built-in techan adapter.
package backend

import (
	"github.com/Swissbit92/MCP-CryptoResearch/internal/table"
)

// Adapter is the narrow contract the registry uses to invoke a numeric
// backend. Call executes the named backend function against the shared
// table and attaches its result columns in place; it returns nothing on
// success. Input arguments arrive as resolved column names, parameter
// arguments as already-coerced values. Errors raised here propagate to
// the compute caller unmodified.
type Adapter interface {
	ID() string
	Call(tbl *table.Table, function string, args map[string]any) error
}
