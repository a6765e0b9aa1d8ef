package description

import (
	"slices"

	"matprop-generator/internal/common"
	"matprop-generator/internal/scalar"
)

// BoundKind is the shape of a bound.
type BoundKind string

const (
	// BoundNone means neither limit is set; such a bound is invalid.
	BoundNone BoundKind = ""
	// BoundLower only has a lower limit.
	BoundLower BoundKind = "lower"
	// BoundUpper only has an upper limit.
	BoundUpper BoundKind = "upper"
	// BoundRange has both limits.
	BoundRange BoundKind = "range"
)

// Bounds is a lower limit, an upper limit, or both.
type Bounds struct {
	Lower *float64 `yaml:"lower,omitempty"`
	Upper *float64 `yaml:"upper,omitempty"`
}

// Kind derives the bound shape from the limits present.
func (b Bounds) Kind() BoundKind {
	switch {
	case b.Lower != nil && b.Upper != nil:
		return BoundRange
	case b.Lower != nil:
		return BoundLower
	case b.Upper != nil:
		return BoundUpper
	default:
		return BoundNone
	}
}

// LowerBound returns a lower-only bound.
func LowerBound(v float64) *Bounds {
	return &Bounds{Lower: &v}
}

// UpperBound returns an upper-only bound.
func UpperBound(v float64) *Bounds {
	return &Bounds{Upper: &v}
}

// RangeBound returns a bound with both limits.
func RangeBound(lower, upper float64) *Bounds {
	return &Bounds{Lower: &lower, Upper: &upper}
}

// Variable describes the output or one input of a material property.
type Variable struct {
	Name string `yaml:"name" validate:"required"`
	// Type is a scalar type alias (see package scalar); defaults to "real".
	Type string `yaml:"type,omitempty"`
	// ExternalName is the glossary name published in the symbol block.
	ExternalName string `yaml:"external_name,omitempty"`
	// Bounds is the standard (configurable) validity range.
	Bounds *Bounds `yaml:"bounds,omitempty"`
	// PhysicalBounds is the hard domain limit.
	PhysicalBounds *Bounds `yaml:"physical_bounds,omitempty"`
}

// HasBounds reports whether a standard bound is declared.
func (v Variable) HasBounds() bool {
	return v.Bounds != nil
}

// HasPhysicalBounds reports whether a physical bound is declared.
func (v Variable) HasPhysicalBounds() bool {
	return v.PhysicalBounds != nil
}

// GetExternalName returns the external name, or the name if none is set.
func (v Variable) GetExternalName() string {
	if v.ExternalName != "" {
		return v.ExternalName
	}

	return v.Name
}

// Parameter is a named constant materialized in each generated body.
type Parameter struct {
	Name string `yaml:"name" validate:"required"`
	Type string `yaml:"type,omitempty"`
	// Default is the literal value, spliced verbatim.
	Default *string `yaml:"default,omitempty"`
}

// HasDefault reports whether a default literal is given.
func (p Parameter) HasDefault() bool {
	return p.Default != nil && *p.Default != ""
}

// MaterialProperty is the declarative description of a scalar material
// property: one output computed from ordered inputs and parameters.
type MaterialProperty struct {
	Material string `yaml:"material,omitempty"`
	Law      string `yaml:"law" validate:"required"`

	Output     Variable    `yaml:"output"`
	Inputs     []Variable  `yaml:"inputs,omitempty" validate:"dive"`
	Parameters []Parameter `yaml:"parameters,omitempty" validate:"dive"`

	// Body is target-language code computing the output; never inspected.
	Body string `yaml:"body"`
	// Includes is spliced verbatim after the standard includes.
	Includes string `yaml:"includes,omitempty"`

	UseQuantities             bool `yaml:"use_quantities,omitempty"`
	RuntimeChecksDisabled     bool `yaml:"disable_runtime_checks,omitempty"`
	GenerateQuantityOverloads bool `yaml:"quantity_overloads,omitempty"`

	// UnitSystem is published as-is in the unit system symbol (e.g. "SI").
	UnitSystem string `yaml:"unit_system,omitempty"`
	// BuildIdentifier is published as-is in the build id symbol.
	BuildIdentifier string `yaml:"build_id,omitempty"`
}

// HasBounds reports whether any input declares a standard bound.
func (mp *MaterialProperty) HasBounds() bool {
	return common.AnyOf(mp.Inputs, Variable.HasBounds)
}

// HasPhysicalBounds reports whether any input declares a physical bound.
func (mp *MaterialProperty) HasPhysicalBounds() bool {
	return common.AnyOf(mp.Inputs, Variable.HasPhysicalBounds)
}

// InputNames returns input names in declaration order.
func (mp *MaterialProperty) InputNames() []string {
	names := make([]string, 0, len(mp.Inputs))
	for _, in := range mp.Inputs {
		names = append(names, in.Name)
	}

	return names
}

// FileDescription is provenance only; it never changes generated logic.
type FileDescription struct {
	Author      string `yaml:"author,omitempty"`
	Date        string `yaml:"date,omitempty"`
	Description string `yaml:"description,omitempty"`
	// Source is the name of the file the description was read from.
	Source string `yaml:"source,omitempty"`
}

// Document is the on-disk form: a material property plus its provenance.
type Document struct {
	MaterialProperty `yaml:",inline"`

	File FileDescription `yaml:"file,omitempty"`
}

// WithDefaults returns a copy of mp with every missing type set to the
// default one. mp itself is left untouched.
func WithDefaults(mp *MaterialProperty) *MaterialProperty {
	if mp == nil {
		return nil
	}

	out := *mp
	out.Inputs = slices.Clone(mp.Inputs)
	out.Parameters = slices.Clone(mp.Parameters)
	applyDefaults(&out)

	return &out
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(mp *MaterialProperty) {
	if mp.Output.Type == "" {
		mp.Output.Type = scalar.DefaultType
	}

	for i := range mp.Inputs {
		if mp.Inputs[i].Type == "" {
			mp.Inputs[i].Type = scalar.DefaultType
		}
	}

	for i := range mp.Parameters {
		if mp.Parameters[i].Type == "" {
			mp.Parameters[i].Type = scalar.DefaultType
		}
	}
}
