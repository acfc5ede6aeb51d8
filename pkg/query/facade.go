// Package query exposes reconciled gene sets through a named-projection
// facade. Callers register projection definitions once, then run them by
// name with loosely typed parameter maps; the facade validates and coerces
// parameters against each definition before invoking it. A facade is
// immutable after construction and safe for concurrent use.
package query

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/neurocrista/genemap/pkg/errors"
	"github.com/neurocrista/genemap/pkg/merge"
	"github.com/neurocrista/genemap/pkg/projections"
)

// Report is a projection result: a map of plain primitives, slices, and
// nested maps that serializes as-is.
type Report = projections.Report

// ParamType enumerates the value types a projection parameter may declare.
type ParamType string

// Supported parameter types.
const (
	TypeString ParamType = "string"
	TypeInt    ParamType = "int"
	TypeFloat  ParamType = "float"
	TypeBool   ParamType = "bool"
)

// IsValid reports whether the parameter type is one of the supported types.
func (t ParamType) IsValid() bool {
	switch t {
	case TypeString, TypeInt, TypeFloat, TypeBool:
		return true
	}
	return false
}

// ParamSpec declares one parameter a projection accepts. Enum restricts
// string parameters to a fixed value set. Default is applied when an
// optional parameter is absent; it must coerce to the declared type.
type ParamSpec struct {
	Name        string
	Type        ParamType
	Required    bool
	Default     any
	Enum        []string
	Description string
}

// Definition names a projection and binds it to a run function. Run
// receives the facade's entity set and the validated, coerced parameters.
type Definition struct {
	Name        string
	Description string
	Params      []ParamSpec
	Run         func(set *merge.Set, params map[string]any) (Report, error)
}

// Facade runs registered projections against one reconciled entity set.
type Facade struct {
	set   *merge.Set
	defs  map[string]Definition
	names []string
}

// New builds a facade over the given set. Definitions are validated up
// front: an unnamed definition, a nil run function, a malformed parameter
// spec, or a duplicate projection name is a configuration error.
func New(set *merge.Set, defs ...Definition) (*Facade, error) {
	if set == nil {
		return nil, &errors.ConfigError{
			Component: "query facade",
			Message:   "entity set is required",
		}
	}

	f := &Facade{
		set:  set,
		defs: make(map[string]Definition, len(defs)),
	}
	for _, def := range defs {
		validated, err := validateDefinition(def)
		if err != nil {
			return nil, err
		}
		if _, dup := f.defs[validated.Name]; dup {
			return nil, &errors.ConfigError{
				Component: "query facade",
				Message:   fmt.Sprintf("duplicate projection %q", validated.Name),
			}
		}
		f.defs[validated.Name] = validated
		f.names = append(f.names, validated.Name)
	}
	sort.Strings(f.names)
	return f, nil
}

// Definitions returns the registered definitions sorted by name.
func (f *Facade) Definitions() []Definition {
	out := make([]Definition, 0, len(f.names))
	for _, name := range f.names {
		out = append(out, f.defs[name])
	}
	return out
}

// Has reports whether a projection with the given name is registered.
func (f *Facade) Has(name string) bool {
	_, ok := f.defs[name]
	return ok
}

// Query runs the named projection. An unregistered name is a not-found
// error. Parameter problems (missing required values, type mismatches,
// enum violations, undeclared names) are collected into one validation
// error listing every problem sorted by parameter name. Defaults fill in
// absent optional parameters before the projection runs.
func (f *Facade) Query(name string, params map[string]any) (Report, error) {
	def, ok := f.defs[name]
	if !ok {
		return nil, errors.NewNotFoundError("projection", name)
	}

	cleaned, problems := validateParams(def.Params, params)
	if len(problems) > 0 {
		return nil, &errors.ValidationError{
			Field:   name,
			Message: joinProblems(problems),
		}
	}
	return def.Run(f.set, cleaned)
}

// validateDefinition checks structural validity and pre-coerces parameter
// defaults so a bad default fails at registration, not at query time.
func validateDefinition(def Definition) (Definition, error) {
	if strings.TrimSpace(def.Name) == "" {
		return Definition{}, &errors.ConfigError{
			Component: "query facade",
			Message:   "projection name is required",
		}
	}
	if def.Run == nil {
		return Definition{}, &errors.ConfigError{
			Component: "query facade",
			Message:   fmt.Sprintf("projection %q has no run function", def.Name),
		}
	}

	seen := make(map[string]bool, len(def.Params))
	params := make([]ParamSpec, len(def.Params))
	copy(params, def.Params)
	for i, p := range params {
		switch {
		case strings.TrimSpace(p.Name) == "":
			return Definition{}, &errors.ConfigError{
				Component: "query facade",
				Message:   fmt.Sprintf("projection %q declares an unnamed parameter", def.Name),
			}
		case !p.Type.IsValid():
			return Definition{}, &errors.ConfigError{
				Component: "query facade",
				Message:   fmt.Sprintf("projection %q parameter %q has unsupported type %q", def.Name, p.Name, p.Type),
			}
		case seen[p.Name]:
			return Definition{}, &errors.ConfigError{
				Component: "query facade",
				Message:   fmt.Sprintf("projection %q declares parameter %q twice", def.Name, p.Name),
			}
		case len(p.Enum) > 0 && p.Type != TypeString:
			return Definition{}, &errors.ConfigError{
				Component: "query facade",
				Message:   fmt.Sprintf("projection %q parameter %q restricts values but is not a string", def.Name, p.Name),
			}
		}
		seen[p.Name] = true

		if p.Default != nil {
			coerced, problem := coerceParam(p, p.Default)
			if problem != "" {
				return Definition{}, &errors.ConfigError{
					Component: "query facade",
					Message:   fmt.Sprintf("projection %q parameter %q default: %s", def.Name, p.Name, problem),
				}
			}
			params[i].Default = coerced
		}
	}
	def.Params = params
	return def, nil
}

// paramProblem pairs a parameter name with a human-readable issue.
type paramProblem struct {
	name    string
	message string
}

func validateParams(specs []ParamSpec, supplied map[string]any) (map[string]any, []paramProblem) {
	cleaned := make(map[string]any, len(specs))
	var problems []paramProblem

	leftover := make(map[string]bool, len(supplied))
	for k := range supplied {
		leftover[k] = true
	}

	for _, spec := range specs {
		raw, ok := supplied[spec.Name]
		if !ok {
			if spec.Required {
				problems = append(problems, paramProblem{spec.Name, "required parameter missing"})
				continue
			}
			if spec.Default != nil {
				cleaned[spec.Name] = spec.Default
			}
			continue
		}
		delete(leftover, spec.Name)

		coerced, problem := coerceParam(spec, raw)
		if problem != "" {
			problems = append(problems, paramProblem{spec.Name, problem})
			continue
		}
		cleaned[spec.Name] = coerced
	}

	for name := range leftover {
		problems = append(problems, paramProblem{name, "parameter not declared"})
	}

	sort.Slice(problems, func(i, j int) bool { return problems[i].name < problems[j].name })
	return cleaned, problems
}

// coerceParam converts a supplied value to the declared parameter type,
// returning a problem description instead of an error so callers can
// batch the failures.
func coerceParam(spec ParamSpec, raw any) (any, string) {
	if raw == nil {
		return nil, "value must not be null"
	}
	switch spec.Type {
	case TypeString:
		s, ok := raw.(string)
		if !ok {
			return nil, "expects a string"
		}
		if len(spec.Enum) > 0 && !containsString(spec.Enum, s) {
			return nil, "value must be one of: " + strings.Join(spec.Enum, ", ")
		}
		return s, ""
	case TypeInt:
		switch v := raw.(type) {
		case int:
			return v, ""
		case int64:
			return int(v), ""
		case float64:
			if v != float64(int(v)) {
				return nil, "expects an integer"
			}
			return int(v), ""
		case string:
			parsed, err := strconv.Atoi(v)
			if err != nil {
				return nil, "expects an integer"
			}
			return parsed, ""
		default:
			return nil, "expects an integer"
		}
	case TypeFloat:
		switch v := raw.(type) {
		case float64:
			return v, ""
		case float32:
			return float64(v), ""
		case int:
			return float64(v), ""
		case int64:
			return float64(v), ""
		case string:
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, "expects a number"
			}
			return parsed, ""
		default:
			return nil, "expects a number"
		}
	case TypeBool:
		switch v := raw.(type) {
		case bool:
			return v, ""
		case string:
			parsed, err := strconv.ParseBool(v)
			if err != nil {
				return nil, "expects a boolean"
			}
			return parsed, ""
		default:
			return nil, "expects a boolean"
		}
	}
	return nil, fmt.Sprintf("unsupported type %q", spec.Type)
}

func joinProblems(problems []paramProblem) string {
	parts := make([]string, len(problems))
	for i, p := range problems {
		parts[i] = p.name + ": " + p.message
	}
	return strings.Join(parts, "; ")
}

func containsString(list []string, target string) bool {
	for _, candidate := range list {
		if candidate == target {
			return true
		}
	}
	return false
}
