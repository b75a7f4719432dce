package registry

import (
	"sort"

	"github.com/Swissbit92/MCP-CryptoResearch/internal/table"
	"github.com/Swissbit92/MCP-CryptoResearch/pkg/errors"
)

// ComputeSpec records what a compute call resolved to.
type ComputeSpec struct {
	Name    string         `json:"name"`
	Params  map[string]any `json:"params"`
	Backend string         `json:"backend_id"`
	Func    string         `json:"target_function"`
	Inputs  []string       `json:"required_inputs"`
}

// ComputeResult reports the columns a backend call attached to the table,
// in the table's post-call column order.
type ComputeResult struct {
	NewColumns []string    `json:"new_columns"`
	Spec       ComputeSpec `json:"spec"`
}

// Compute validates parameters, translates them through the indicator's
// binding for the given backend, resolves the required logical inputs to
// table columns, and invokes the backend adapter against the caller-owned
// table. The adapter mutates the table in place; the new columns are
// attributed by diffing the column set before and after the call, never by
// matching the documented output schema.
//
// Validation failures surface before the backend is invoked, so a failed
// call leaves the table untouched. An error raised by the backend itself
// propagates unmodified.
func (r *Registry) Compute(tbl *table.Table, nameOrAlias string, overrides map[string]any, backendID string) (ComputeResult, error) {
	def, err := r.Resolve(nameOrAlias)
	if err != nil {
		return ComputeResult{}, err
	}

	binding, ok := def.Binding(backendID)
	if !ok {
		return ComputeResult{}, errors.Newf(errors.ErrCodeUnsupportedBackend,
			"%s has no binding for backend %q", def.Name, backendID)
	}

	r.mu.RLock()
	adapter, ok := r.backends[backendID]
	r.mu.RUnlock()
	if !ok {
		return ComputeResult{}, errors.Newf(errors.ErrCodeUnsupportedBackend,
			"backend %q is not registered", backendID)
	}

	params, err := r.ValidateParams(def.Name, overrides)
	if err != nil {
		return ComputeResult{}, err
	}

	args := make(map[string]any, len(params)+len(binding.InputMap))

	logicals := make([]string, 0, len(binding.InputMap))
	for logical := range binding.InputMap {
		logicals = append(logicals, logical)
	}
	sort.Strings(logicals)
	for _, logical := range logicals {
		column, err := r.findColumn(tbl, logical)
		if err != nil {
			return ComputeResult{}, err
		}
		args[binding.InputMap[logical]] = column
	}

	// translated parameters win over input arguments on name collision
	for name, value := range params {
		argName := name
		if mapped, ok := binding.ParamMap[name]; ok {
			argName = mapped
		}
		args[argName] = value
	}

	before := make(map[string]struct{}, len(tbl.Columns()))
	for _, name := range tbl.Columns() {
		before[name] = struct{}{}
	}

	if err := adapter.Call(tbl, binding.Func, args); err != nil {
		return ComputeResult{}, err
	}

	newColumns := make([]string, 0)
	for _, name := range tbl.Columns() {
		if _, existed := before[name]; !existed {
			newColumns = append(newColumns, name)
		}
	}

	return ComputeResult{
		NewColumns: newColumns,
		Spec: ComputeSpec{
			Name:    def.Name,
			Params:  params,
			Backend: backendID,
			Func:    binding.Func,
			Inputs:  def.Inputs,
		},
	}, nil
}
