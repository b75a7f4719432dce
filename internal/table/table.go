// Package table provides the caller-owned tabular time series the
// computation engine operates on. A Table is a set of named float64
// columns of equal length in insertion order, with optional row
// timestamps.
//
// Compute follows a shared-ownership contract: backends attach their
// result columns onto the same Table in place, so one Table accumulates
// columns across multiple compute calls. Callers must not run concurrent
// computes against the same Table.
package table

import (
	"fmt"
	"time"
)

// Table is an ordered collection of equally sized float64 columns.
type Table struct {
	order []string
	cols  map[string][]float64
	times []time.Time
}

// New creates an empty table.
func New() *Table {
	return &Table{
		order: make([]string, 0),
		cols:  make(map[string][]float64),
	}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if len(t.order) == 0 {
		return len(t.times)
	}

	return len(t.cols[t.order[0]])
}

// Columns returns the column names in insertion order.
func (t *Table) Columns() []string {
	names := make([]string, len(t.order))
	copy(names, t.order)

	return names
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.cols[name]

	return ok
}

// Column returns the values of the named column. The returned slice is the
// table's backing storage; treat it as read-only.
func (t *Table) Column(name string) ([]float64, bool) {
	col, ok := t.cols[name]

	return col, ok
}

// AddColumn appends a new column. The column length must match the table's
// row count unless the table is empty.
func (t *Table) AddColumn(name string, values []float64) error {
	if _, exists := t.cols[name]; exists {
		return fmt.Errorf("AddColumn: column %q already exists", name)
	}
	if len(t.order) > 0 && len(values) != t.Len() {
		return fmt.Errorf("AddColumn: column %q has %d rows, table has %d", name, len(values), t.Len())
	}

	t.order = append(t.order, name)
	t.cols[name] = values

	return nil
}

// SetColumn adds the column if absent, or overwrites its values if present.
// Overwriting does not change the column's position in the order.
func (t *Table) SetColumn(name string, values []float64) error {
	if _, exists := t.cols[name]; !exists {
		return t.AddColumn(name, values)
	}
	if len(values) != t.Len() {
		return fmt.Errorf("SetColumn: column %q has %d rows, table has %d", name, len(values), t.Len())
	}

	t.cols[name] = values

	return nil
}

// SetTimes attaches row timestamps. The length must match the row count
// unless the table has no columns yet.
func (t *Table) SetTimes(times []time.Time) error {
	if len(t.order) > 0 && len(times) != t.Len() {
		return fmt.Errorf("SetTimes: got %d timestamps, table has %d rows", len(times), t.Len())
	}

	t.times = times

	return nil
}

// Times returns the row timestamps, or nil when none are attached.
func (t *Table) Times() []time.Time {
	return t.times
}
