package gen

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"matprop-generator/internal/description"
)

// scenarioBInputs declares T with a standard range at position 1 and P with a
// physical lower bound at position 2.
func scenarioBInputs() []description.Variable {
	return []description.Variable{
		{Name: "T", Type: "temperature", Bounds: description.RangeBound(0, 1000)},
		{Name: "P", Type: "stress", PhysicalBounds: description.LowerBound(0)},
	}
}

func TestCompileInputBounds_PhysicalBlockFirst(t *testing.T) {
	frags := CompileInputBounds(scenarioBInputs())

	want := []Fragment{
		{Variable: "P", Type: "stress", Position: 2, Category: CategoryPhysical, Kind: description.BoundLower, Code: -2},
		{Variable: "T", Type: "temperature", Position: 1, Category: CategoryStandard, Kind: description.BoundRange,
			Upper: 1000, Code: 1},
	}

	if diff := cmp.Diff(want, frags); diff != "" {
		t.Errorf("fragments mismatch (-want +got):\n%s", diff)
	}
}

func TestCompileInputBounds_PositionCountsUnboundedInputs(t *testing.T) {
	inputs := []description.Variable{
		{Name: "a"},
		{Name: "b"},
		{Name: "c", Bounds: description.UpperBound(1), PhysicalBounds: description.LowerBound(0)},
		{Name: "d"},
		{Name: "e", Bounds: description.LowerBound(2)},
	}

	frags := CompileInputBounds(inputs)
	codes := make([]int, 0, len(frags))

	for _, f := range frags {
		codes = append(codes, f.Code)
		assert.GreaterOrEqual(t, f.Position, 1)
		assert.LessOrEqual(t, f.Position, len(inputs))

		if f.Category == CategoryPhysical {
			assert.Equal(t, -f.Position, f.Code)
		} else {
			assert.Equal(t, f.Position, f.Code)
		}
	}

	assert.Equal(t, []int{-3, 3, 5}, codes)
}

func TestCompileInputBounds_InterleavedCategories(t *testing.T) {
	inputs := []description.Variable{
		{Name: "x", Bounds: description.RangeBound(0, 1)},
		{Name: "y", PhysicalBounds: description.RangeBound(0, 1)},
		{Name: "z", Bounds: description.RangeBound(0, 1), PhysicalBounds: description.RangeBound(-1, 2)},
	}

	frags := CompileInputBounds(inputs)
	seenStandard := false

	for _, f := range frags {
		if f.Category == CategoryStandard {
			seenStandard = true
		} else {
			assert.False(t, seenStandard, "physical fragment %s after a standard one", f.Variable)
		}
	}

	// every input out of both ranges: the first physical check wins
	assert.Equal(t, -2, FirstViolation(frags, []float64{5, 5, 5}))
	// only standard ranges violated: the first standard check wins
	assert.Equal(t, 1, FirstViolation(frags, []float64{1.5, 0.5, 1.5}))
}

func TestFirstViolation_SignConvention(t *testing.T) {
	frags := CompileInputBounds(scenarioBInputs())

	tests := []struct {
		name   string
		values []float64
		want   int
	}{
		{name: "valid", values: []float64{300, 1}, want: 0},
		{name: "physical", values: []float64{300, -1}, want: -2},
		{name: "standard", values: []float64{2000, 1}, want: 1},
		{name: "both", values: []float64{2000, -1}, want: -2},
		{name: "range lower edge", values: []float64{0, 0}, want: 0},
		{name: "range upper edge", values: []float64{1000, 0}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FirstViolation(frags, tt.values))
		})
	}
}

func TestCompileOutputBounds_PhysicalOnly(t *testing.T) {
	out := description.Variable{
		Name:           "E",
		Type:           "stress",
		Bounds:         description.RangeBound(1e9, 1e12),
		PhysicalBounds: description.LowerBound(0),
	}

	frags := CompileOutputBounds(out)
	assert.Len(t, frags, 1)
	assert.Equal(t, CategoryPhysical, frags[0].Category)
	assert.Equal(t, 0, frags[0].Code)

	out.PhysicalBounds = nil
	assert.Empty(t, CompileOutputBounds(out), "standard output bounds are never checked")
}

func TestFragment_Condition(t *testing.T) {
	frags := CompileInputBounds([]description.Variable{
		{Name: "T", Type: "temperature", PhysicalBounds: description.LowerBound(0)},
		{Name: "p", Type: "stress", PhysicalBounds: description.UpperBound(1.5e8)},
		{Name: "f", Type: "real", PhysicalBounds: description.RangeBound(0, 1)},
	})

	assert.Equal(t, "T < 0", frags[0].Condition(false))
	assert.Equal(t, "p > 1.5e+08", frags[1].Condition(false))
	assert.Equal(t, "(f < 0)||(f > 1)", frags[2].Condition(false))
	assert.Equal(t, "T < temperature(0)", frags[0].Condition(true))
	assert.Equal(t, "(f < real(0))||(f > real(1))", frags[2].Condition(true))
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "Physical", CategoryPhysical.String())
	assert.Equal(t, "Standard", CategoryStandard.String())
	assert.Equal(t, "Category(7)", Category(7).String())
}

func TestFormatLiteral(t *testing.T) {
	assert.Equal(t, "273.15", FormatLiteral(273.15))
	assert.Equal(t, "-1", FormatLiteral(-1))
	assert.Equal(t, "1e-06", FormatLiteral(1e-6))
}
