package gen

import (
	"strconv"

	"matprop-generator/internal/description"
)

//go:generate go tool stringer -type=Category -trimprefix=Category -output=category_string.go

// Category separates hard domain limits from configurable validity ranges.
type Category int

const (
	CategoryPhysical Category = iota
	CategoryStandard
)

// Fragment is one compiled bound test.
type Fragment struct {
	Variable string
	// Type is the declared type, used to wrap literals in quantity code.
	Type string
	// Position is the 1-based declaration position among all inputs; 0 for
	// the output.
	Position int
	Category Category
	Kind     description.BoundKind
	Lower    float64
	Upper    float64
	// Code is -Position for physical bounds and +Position for standard
	// bounds. It is 0 for output fragments, which return the invalid value.
	Code int
}

// CompileInputBounds compiles the bounds of the inputs. All physical bounds
// come first, then all standard bounds, each block in declaration order.
// The evaluation order matters when several inputs are out of bounds at once:
// the first matching fragment wins.
func CompileInputBounds(inputs []description.Variable) []Fragment {
	var frags []Fragment

	for i, in := range inputs {
		if in.HasPhysicalBounds() {
			frags = append(frags, newFragment(in, *in.PhysicalBounds, i+1, CategoryPhysical, -(i + 1)))
		}
	}

	for i, in := range inputs {
		if in.HasBounds() {
			frags = append(frags, newFragment(in, *in.Bounds, i+1, CategoryStandard, i+1))
		}
	}

	return frags
}

// CompileOutputBounds compiles the checks applied to the output right after
// the body. Only physical bounds are checked; standard output bounds are
// published in the symbol block but never enforced.
func CompileOutputBounds(output description.Variable) []Fragment {
	if !output.HasPhysicalBounds() {
		return nil
	}

	return []Fragment{newFragment(output, *output.PhysicalBounds, 0, CategoryPhysical, 0)}
}

func newFragment(v description.Variable, b description.Bounds, pos int, cat Category, code int) Fragment {
	f := Fragment{
		Variable: v.Name,
		Type:     v.Type,
		Position: pos,
		Category: cat,
		Kind:     b.Kind(),
		Code:     code,
	}

	if b.Lower != nil {
		f.Lower = *b.Lower
	}

	if b.Upper != nil {
		f.Upper = *b.Upper
	}

	return f
}

// Violated reports whether value fails the test, with the same comparisons
// as the generated code.
func (f Fragment) Violated(value float64) bool {
	switch f.Kind {
	case description.BoundLower:
		return value < f.Lower
	case description.BoundUpper:
		return value > f.Upper
	case description.BoundRange:
		return value < f.Lower || value > f.Upper
	default:
		return false
	}
}

// Condition renders the test as a target-language expression. With
// quantities, literals are wrapped in the variable's type.
func (f Fragment) Condition(useQuantities bool) string {
	lower := literal(f.Lower, f.Type, useQuantities)
	upper := literal(f.Upper, f.Type, useQuantities)

	switch f.Kind {
	case description.BoundLower:
		return f.Variable + " < " + lower
	case description.BoundUpper:
		return f.Variable + " > " + upper
	default:
		return "(" + f.Variable + " < " + lower + ")||(" + f.Variable + " > " + upper + ")"
	}
}

// FirstViolation evaluates fragments in order against values, indexed by
// 1-based position minus one, and returns the code of the first violated
// fragment, or 0. It mirrors the generated check-bounds function.
func FirstViolation(frags []Fragment, values []float64) int {
	for _, f := range frags {
		if f.Position < 1 || f.Position > len(values) {
			continue
		}

		if f.Violated(values[f.Position-1]) {
			return f.Code
		}
	}

	return 0
}

// FormatLiteral renders a bound value as a target-language literal.
func FormatLiteral(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func literal(v float64, typ string, useQuantities bool) string {
	if useQuantities {
		return typ + "(" + FormatLiteral(v) + ")"
	}

	return FormatLiteral(v)
}

// writeFragments writes one early return per fragment.
func writeFragments(w *codeWriter, frags []Fragment, useQuantities bool, onViolation func(Fragment)) {
	for _, f := range frags {
		w.line("if(" + f.Condition(useQuantities) + "){")
		onViolation(f)
		w.line("}")
	}
}
