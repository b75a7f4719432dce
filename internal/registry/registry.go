// Package registry implements the indicator registry and computation engine:
// the catalog of indicator definitions, the alias resolution index, parameter
// validation and coercion, backend dispatch with diff-based output-column
// attribution, and the regex/NLP detector synthesizer.
package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/Swissbit92/MCP-CryptoResearch/internal/backend"
	"github.com/Swissbit92/MCP-CryptoResearch/internal/types"
	"github.com/Swissbit92/MCP-CryptoResearch/pkg/errors"
)

// Registry owns the indicator catalog and the alias index. It is built once
// at startup and read-mostly thereafter; registration during bootstrap is
// serialized by the internal lock.
type Registry struct {
	mu           sync.RWMutex
	defs         map[string]types.IndicatorDefinition
	canonical    map[string]string // lower(name) -> canonical name
	aliases      map[string]string // lower(alias) -> canonical name
	backends     map[string]backend.Adapter
	inputAliases map[string][]string
	validate     *validator.Validate
}

// Option configures a Registry under construction.
type Option func(*Registry)

// WithoutBuiltins skips registration of the built-in catalog. Mainly useful
// for tests that assemble their own definitions.
func WithoutBuiltins() Option {
	return func(r *Registry) {
		r.defs = nil
	}
}

// WithBackend registers an additional backend adapter.
func WithBackend(adapter backend.Adapter) Option {
	return func(r *Registry) {
		r.backends[adapter.ID()] = adapter
	}
}

// WithInputAliases replaces the table of column aliases used to resolve
// logical inputs (open/high/low/close/volume) against table columns.
func WithInputAliases(aliases map[string][]string) Option {
	return func(r *Registry) {
		r.inputAliases = aliases
	}
}

// New creates a registry with the built-in catalog registered and the techan
// backend adapter installed.
func New(opts ...Option) (*Registry, error) {
	r := &Registry{
		defs:         make(map[string]types.IndicatorDefinition),
		canonical:    make(map[string]string),
		aliases:      make(map[string]string),
		backends:     make(map[string]backend.Adapter),
		inputAliases: DefaultInputAliases(),
		validate:     validator.New(),
	}
	r.backends["techan"] = backend.NewTechanAdapter()

	loadBuiltins := true
	for _, opt := range opts {
		opt(r)
		if r.defs == nil {
			loadBuiltins = false
			r.defs = make(map[string]types.IndicatorDefinition)
		}
	}

	if loadBuiltins {
		for _, def := range builtins() {
			if err := r.Register(def); err != nil {
				return nil, err
			}
		}
	}

	return r, nil
}

// Register inserts a definition into the catalog and indexes all of its
// aliases. Registering a canonical name twice fails and leaves the existing
// registration intact. Alias collisions across indicators are resolved
// last-write-wins, matching the original system.
func (r *Registry) Register(def types.IndicatorDefinition) error {
	if err := r.validate.Struct(def); err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidDefinition, err, "definition %q failed validation", def.Name)
	}

	// a parameter default must satisfy the parameter's own constraints
	for _, p := range def.Params {
		if _, err := coerceParam(p, p.Default); err != nil {
			return errors.Wrapf(errors.ErrCodeInvalidDefinition, err, "definition %q: default of param %q violates its own spec", def.Name, p.Name)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.defs[def.Name]; exists {
		return errors.Newf(errors.ErrCodeDuplicateDefinition, "indicator %q already registered", def.Name)
	}

	r.defs[def.Name] = def
	r.canonical[strings.ToLower(def.Name)] = def.Name
	for _, alias := range def.Aliases() {
		r.aliases[alias] = def.Name
	}

	return nil
}

// RegisterBackend installs a backend adapter, replacing any adapter already
// registered under the same id.
func (r *Registry) RegisterBackend(adapter backend.Adapter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.backends[adapter.ID()] = adapter
}

// List returns all canonical names, lexicographically sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.listLocked()
}

func (r *Registry) listLocked() []string {
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Resolve looks a definition up by canonical name or alias. Lookup order:
// case-insensitive canonical name, case-insensitive alias, then exact
// case-sensitive canonical name.
func (r *Registry) Resolve(nameOrAlias string) (types.IndicatorDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.resolveLocked(nameOrAlias)
}

func (r *Registry) resolveLocked(nameOrAlias string) (types.IndicatorDefinition, error) {
	key := strings.ToLower(strings.TrimSpace(nameOrAlias))
	if name, ok := r.canonical[key]; ok {
		return r.defs[name], nil
	}
	if name, ok := r.aliases[key]; ok {
		return r.defs[name], nil
	}
	if def, ok := r.defs[nameOrAlias]; ok {
		return def, nil
	}

	return types.IndicatorDefinition{}, errors.Newf(errors.ErrCodeUnknownIndicator,
		"unknown indicator %q; known: %v", nameOrAlias, r.listLocked())
}

// Describe resolves a definition and returns its JSON-serializable snapshot.
// The snapshot shares nested slices and maps with the catalog; callers must
// treat it as read-only.
func (r *Registry) Describe(nameOrAlias string) (types.IndicatorDefinition, error) {
	return r.Resolve(nameOrAlias)
}
