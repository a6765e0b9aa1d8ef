package gen

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matprop-generator/internal/description"
	"matprop-generator/internal/scalar"
)

func TestPlanSignatures_Table(t *testing.T) {
	tests := []struct {
		name        string
		req         SignatureRequest
		functions   []Signature
		checkBounds []Signature
	}{
		{
			name:      "niladic single representation",
			req:       SignatureRequest{Representations: []string{"double"}, UseQuantities: true, QuantityOverloads: true},
			functions: []Signature{{Representation: "double"}},
		},
		{
			name: "niladic several representations",
			req:  SignatureRequest{Representations: []string{"float", "double"}},
			functions: []Signature{
				{Representation: "double", Generic: true},
				{Representation: "float"},
				{Representation: "double"},
			},
		},
		{
			name: "niladic several representations with overloads",
			req: SignatureRequest{
				Representations:   []string{"float", "long double"},
				UseQuantities:     true,
				QuantityOverloads: true,
				ForceCheckBounds:  true,
			},
			functions: []Signature{
				{Representation: "long double", Quantity: true, Generic: true},
				{Representation: "float"},
				{Representation: "float", Quantity: true},
				{Representation: "long double"},
				{Representation: "long double", Quantity: true},
			},
			checkBounds: []Signature{{Representation: "long double"}},
		},
		{
			name: "inputs without bounds",
			req:  SignatureRequest{Inputs: 2, Representations: []string{"double", "float"}},
			functions: []Signature{
				{Representation: "double"},
				{Representation: "float"},
			},
		},
		{
			name: "inputs with bounds and overloads",
			req: SignatureRequest{
				Inputs:            1,
				Representations:   []string{"double", "float"},
				UseQuantities:     true,
				QuantityOverloads: true,
				HasBounds:         true,
			},
			functions: []Signature{
				{Representation: "double"},
				{Representation: "double", Quantity: true},
				{Representation: "float"},
				{Representation: "float", Quantity: true},
			},
			checkBounds: []Signature{{Representation: "double"}, {Representation: "float"}},
		},
		{
			name: "overloads need quantities",
			req: SignatureRequest{
				Inputs:            1,
				Representations:   []string{"double"},
				QuantityOverloads: true,
				HasPhysicalBounds: true,
			},
			functions:   []Signature{{Representation: "double"}},
			checkBounds: []Signature{{Representation: "double"}},
		},
		{
			name: "forced check bounds",
			req: SignatureRequest{
				Inputs:           1,
				Representations:  []string{"double"},
				ForceCheckBounds: true,
			},
			functions:   []Signature{{Representation: "double"}},
			checkBounds: []Signature{{Representation: "double"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := PlanSignatures(tt.req)
			require.NoError(t, err)

			if diff := cmp.Diff(tt.functions, plan.Functions); diff != "" {
				t.Errorf("functions mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(tt.checkBounds, plan.CheckBounds); diff != "" {
				t.Errorf("check bounds mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPlanSignatures_EmptyRepresentations(t *testing.T) {
	_, err := PlanSignatures(SignatureRequest{Inputs: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestPlanSignatures_NiladicSingleNeverQuantity(t *testing.T) {
	for _, r := range scalar.Representations() {
		plan, err := PlanSignatures(SignatureRequest{
			Representations:   []string{r},
			UseQuantities:     true,
			QuantityOverloads: true,
		})
		require.NoError(t, err)
		require.Len(t, plan.Functions, 1)
		assert.False(t, plan.Functions[0].Quantity)
		assert.False(t, plan.HasQuantityVariants())
		assert.Empty(t, plan.CheckBounds)
	}
}

func TestPlanSignatures_CallableCount(t *testing.T) {
	reps := scalar.Representations()

	for n := 1; n <= len(reps); n++ {
		for _, overloads := range []bool{false, true} {
			plan, err := PlanSignatures(SignatureRequest{
				Inputs:            3,
				Representations:   reps[:n],
				UseQuantities:     true,
				QuantityOverloads: overloads,
			})
			require.NoError(t, err)

			want := n
			if overloads {
				want = 2 * n
			}

			assert.Len(t, plan.Callable(), want, "representations=%v overloads=%v", reps[:n], overloads)
		}
	}
}

func TestRequestFor_OverloadsNeedBothSides(t *testing.T) {
	mp := &description.MaterialProperty{Law: "k", UseQuantities: true, GenerateQuantityOverloads: false}
	assert.False(t, requestFor(mp, CxxInterface()).QuantityOverloads)

	mp.GenerateQuantityOverloads = true
	assert.True(t, requestFor(mp, CxxInterface()).QuantityOverloads)
	assert.False(t, requestFor(mp, CInterface()).QuantityOverloads)
}

func TestCheckQuantityTypes(t *testing.T) {
	mp := &description.MaterialProperty{
		Law:    "k",
		Output: description.Variable{Name: "k", Type: "thermalconductivity"},
		Inputs: []description.Variable{{Name: "T", Type: "temperature"}},
	}
	withQuantities := SignaturePlan{Functions: []Signature{{Representation: "double", Quantity: true}}}

	require.NoError(t, checkQuantityTypes(mp, withQuantities, "c++"))

	mp.Inputs[0].Type = "kelvin"
	err := checkQuantityTypes(mp, withQuantities, "c++")
	require.Error(t, err)

	var ce *ConfigurationError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "c++", ce.Interface)
	assert.Contains(t, ce.Reason, "kelvin")

	// plain plans never need the whitelist
	assert.NoError(t, checkQuantityTypes(mp, SignaturePlan{Functions: []Signature{{Representation: "double"}}}, "c++"))
}
