package types

import (
	"strings"

	"github.com/moznion/go-optional"
)

// ParamType is the declared type of an indicator parameter.
type ParamType string

const (
	ParamTypeInt    ParamType = "int"
	ParamTypeFloat  ParamType = "float"
	ParamTypeBool   ParamType = "bool"
	ParamTypeString ParamType = "string"
)

// Group is the taxonomy group an indicator belongs to.
type Group string

const (
	GroupTrend      Group = "trend"
	GroupMomentum   Group = "momentum"
	GroupVolatility Group = "volatility"
	GroupVolume     Group = "volume"
	GroupPrice      Group = "price"
)

// ColumnRole describes what an output column represents.
type ColumnRole string

const (
	ColumnRoleMain   ColumnRole = "main"
	ColumnRoleSignal ColumnRole = "signal"
	ColumnRoleHist   ColumnRole = "hist"
	ColumnRoleUpper  ColumnRole = "upper"
	ColumnRoleLower  ColumnRole = "lower"
	ColumnRoleMiddle ColumnRole = "middle"
	ColumnRoleOther  ColumnRole = "other"
)

// ParamSpec describes one indicator parameter: its type, default, and
// the constraints the default itself must satisfy.
type ParamSpec struct {
	Name        string                   `json:"name"        validate:"required"`
	Type        ParamType                `json:"type"        validate:"required,oneof=int float bool string"`
	Default     any                      `json:"default"`
	Min         optional.Option[float64] `json:"min,omitempty"`
	Max         optional.Option[float64] `json:"max,omitempty"`
	Choices     []any                    `json:"choices,omitempty"`
	Description string                   `json:"description,omitempty"`
}

// BackendBinding maps an indicator's canonical parameter and input names to
// the argument names of one numeric backend's target function.
type BackendBinding struct {
	Backend  string            `json:"backend_id"      validate:"required"`
	Func     string            `json:"target_function" validate:"required"`
	ParamMap map[string]string `json:"param_map,omitempty"`
	InputMap map[string]string `json:"input_map,omitempty"`
}

// OutputColumnSpec documents an output column for downstream mapping.
// The engine never uses these patterns to discover real columns; discovery
// is diff-based in Compute.
type OutputColumnSpec struct {
	NamePattern string     `json:"name_pattern"`
	Description string     `json:"description,omitempty"`
	Role        ColumnRole `json:"role,omitempty"`
}

// NLPHints carries the AI/regex metadata used by text-extraction consumers.
type NLPHints struct {
	Keywords         []string            `json:"keywords,omitempty"`
	NegativeKeywords []string            `json:"negative_keywords,omitempty"`
	SynonymsByLang   map[string][]string `json:"synonyms_by_lang,omitempty"`
	RegexTemplates   []string            `json:"regex_templates,omitempty"`
	Examples         []string            `json:"examples,omitempty"`
}

// FormulaSpec is the mathematical definition of an indicator, kept purely
// for documentation and export.
type FormulaSpec struct {
	Notation        string   `json:"notation,omitempty"`
	DerivationSteps []string `json:"derivation_steps,omitempty"`
	Notes           string   `json:"notes,omitempty"`
}

// Reference is a documentation pointer attached to a definition.
type Reference struct {
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}

// IndicatorDefinition is the aggregate root describing one indicator:
// concept, parameters, aliases, backend bindings, NLP hints, and formula.
// Definitions are immutable by convention once registered.
type IndicatorDefinition struct {
	Name              string                       `json:"name"  validate:"required"`
	Group             Group                        `json:"group" validate:"required,oneof=trend momentum volatility volume price"`
	Description       string                       `json:"description"`
	Inputs            []string                     `json:"required_logical_inputs" validate:"dive,oneof=open high low close volume"`
	Params            []ParamSpec                  `json:"params" validate:"dive"`
	Synonyms          []string                     `json:"synonyms,omitempty"`
	SourceLabels      map[string]string            `json:"source_labels,omitempty"`
	DefaultThresholds map[string]float64           `json:"default_thresholds,omitempty"`
	OutputSchema      []OutputColumnSpec           `json:"output_schema,omitempty"`
	Bindings          []BackendBinding             `json:"bindings,omitempty" validate:"dive"`
	NLP               NLPHints                     `json:"nlp"`
	Formula           optional.Option[FormulaSpec] `json:"formula,omitempty"`
	Tags              []string                     `json:"tags,omitempty"`
	References        []Reference                  `json:"references,omitempty"`
}

// ParamDefaults returns the default value of every parameter.
func (d IndicatorDefinition) ParamDefaults() map[string]any {
	defaults := make(map[string]any, len(d.Params))
	for _, p := range d.Params {
		defaults[p.Name] = p.Default
	}

	return defaults
}

// ParamTypes returns the declared type of every parameter.
func (d IndicatorDefinition) ParamTypes() map[string]ParamType {
	paramTypes := make(map[string]ParamType, len(d.Params))
	for _, p := range d.Params {
		paramTypes[p.Name] = p.Type
	}

	return paramTypes
}

// Param returns the spec of the named parameter, if declared.
func (d IndicatorDefinition) Param(name string) (ParamSpec, bool) {
	for _, p := range d.Params {
		if p.Name == name {
			return p, true
		}
	}

	return ParamSpec{}, false
}

// Binding returns the first binding matching the given backend id.
func (d IndicatorDefinition) Binding(backendID string) (BackendBinding, bool) {
	for _, b := range d.Bindings {
		if b.Backend == backendID {
			return b, true
		}
	}

	return BackendBinding{}, false
}

// Aliases returns every alias of the definition, lower-cased:
// the canonical name, the plain synonyms, every per-language synonym,
// and every non-empty source label.
func (d IndicatorDefinition) Aliases() []string {
	seen := make(map[string]struct{})
	aliases := make([]string, 0, 1+len(d.Synonyms))

	add := func(s string) {
		if s == "" {
			return
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		aliases = append(aliases, key)
	}

	add(d.Name)
	for _, s := range d.Synonyms {
		add(s)
	}
	for _, list := range d.NLP.SynonymsByLang {
		for _, s := range list {
			add(s)
		}
	}
	for _, label := range d.SourceLabels {
		add(label)
	}

	return aliases
}
