package registry

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/Swissbit92/MCP-CryptoResearch/internal/types"
	"github.com/Swissbit92/MCP-CryptoResearch/pkg/errors"
)

// ValidateParams fills the indicator's parameter defaults, applies the given
// overrides, coerces every value to its declared type, and enforces
// min/max/choices constraints. The returned mapping is fully coerced;
// validating an already-valid mapping returns it unchanged.
func (r *Registry) ValidateParams(nameOrAlias string, overrides map[string]any) (map[string]any, error) {
	def, err := r.Resolve(nameOrAlias)
	if err != nil {
		return nil, err
	}

	out := def.ParamDefaults()

	overrideKeys := make([]string, 0, len(overrides))
	for k := range overrides {
		overrideKeys = append(overrideKeys, k)
	}
	sort.Strings(overrideKeys)

	for _, k := range overrideKeys {
		if _, declared := def.Param(k); !declared {
			return nil, errors.Newf(errors.ErrCodeUnknownParameter,
				"unknown param %q for %s; known params: %v", k, def.Name, paramNames(def))
		}
		out[k] = overrides[k]
	}

	for _, p := range def.Params {
		coerced, err := coerceParam(p, out[p.Name])
		if err != nil {
			return nil, err
		}
		out[p.Name] = coerced
	}

	return out, nil
}

// coerceParam converts a raw value to the parameter's declared type and
// checks it against the parameter's min/max/choices constraints.
func coerceParam(spec types.ParamSpec, raw any) (any, error) {
	var (
		value any
		err   error
	)

	switch spec.Type {
	case types.ParamTypeInt:
		value, err = coerceInt(raw)
	case types.ParamTypeFloat:
		value, err = coerceFloat(raw)
	case types.ParamTypeBool:
		value, err = coerceBool(raw)
	case types.ParamTypeString:
		value = coerceString(raw)
	default:
		err = fmt.Errorf("unsupported type %q", spec.Type)
	}
	if err != nil {
		return nil, errors.Newf(errors.ErrCodeInvalidParameterValue,
			"param %q=%v expects %s: %v", spec.Name, raw, spec.Type, err)
	}

	if numeric, ok := asFloat(value); ok {
		if spec.Min.IsSome() && numeric < spec.Min.Unwrap() {
			return nil, errors.Newf(errors.ErrCodeInvalidParameterValue,
				"param %q=%v < min %v", spec.Name, value, spec.Min.Unwrap())
		}
		if spec.Max.IsSome() && numeric > spec.Max.Unwrap() {
			return nil, errors.Newf(errors.ErrCodeInvalidParameterValue,
				"param %q=%v > max %v", spec.Name, value, spec.Max.Unwrap())
		}
	}

	if len(spec.Choices) > 0 {
		found := false
		for _, choice := range spec.Choices {
			if valuesEqual(choice, value) {
				found = true

				break
			}
		}
		if !found {
			return nil, errors.Newf(errors.ErrCodeInvalidParameterValue,
				"param %q=%v not in %v", spec.Name, value, spec.Choices)
		}
	}

	return value, nil
}

func coerceInt(raw any) (int, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float32:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to int", v)
		}

		return n, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to int", raw)
	}
}

func coerceFloat(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to float", v)
		}

		return f, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to float", raw)
	}
}

func coerceBool(raw any) (bool, error) {
	if b, ok := raw.(bool); ok {
		return b, nil
	}

	switch strings.ToLower(fmt.Sprint(raw)) {
	case "1", "true", "yes", "y":
		return true, nil
	case "0", "false", "no", "n":
		return false, nil
	default:
		return false, fmt.Errorf("cannot convert %v to bool", raw)
	}
}

func coerceString(raw any) string {
	if s, ok := raw.(string); ok {
		return s
	}

	return fmt.Sprint(raw)
}

// asFloat reports the numeric value of a coerced int or float.
func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

// valuesEqual compares a declared choice against a coerced value, treating
// numeric types as equal when their values match.
func valuesEqual(choice, value any) bool {
	cf, cok := asFloat(choice)
	vf, vok := asFloat(value)
	if cok && vok {
		return cf == vf
	}

	return reflect.DeepEqual(choice, value)
}

func paramNames(def types.IndicatorDefinition) []string {
	names := make([]string, 0, len(def.Params))
	for _, p := range def.Params {
		names = append(names, p.Name)
	}

	return names
}
