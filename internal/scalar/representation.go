package scalar

import (
	"slices"

	"matprop-generator/internal/common"
)

// Floating point representations of the target language.
const (
	Float      = "float"
	Double     = "double"
	LongDouble = "long double"
)

var representations = []string{Float, Double, LongDouble}

// Representations returns the supported representations in canonical order.
func Representations() []string {
	return slices.Clone(representations)
}

// IsRepresentation reports whether r is a supported representation.
func IsRepresentation(r string) bool {
	return slices.Contains(representations, r)
}

// DefaultRepresentation picks the representation used as the default template
// argument: double if available, then long double, then the first one.
// It returns "" for an empty list.
func DefaultRepresentation(reps []string) string {
	if slices.Contains(reps, Double) {
		return Double
	}

	if slices.Contains(reps, LongDouble) {
		return LongDouble
	}

	first, _ := common.First(reps)

	return first
}
