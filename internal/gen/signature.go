package gen

import (
	"slices"

	"matprop-generator/internal/common"
	"matprop-generator/internal/description"
	"matprop-generator/internal/scalar"
)

// SignatureRequest holds the facts the signature decision table depends on.
type SignatureRequest struct {
	// Inputs is the number of declared inputs.
	Inputs          int
	Representations []string
	UseQuantities   bool
	// QuantityOverloads is true when both the interface and the description
	// ask for unit-checked overloads.
	QuantityOverloads bool
	HasBounds         bool
	HasPhysicalBounds bool
	ForceCheckBounds  bool
}

// Signature is one declared and defined function variant.
type Signature struct {
	Representation string
	// Quantity marks the unit-checked variant.
	Quantity bool
	// Generic marks the representation-parameterized template of a law
	// without inputs. It is declared, never defined.
	Generic bool
}

// SignaturePlan is the ordered set of entry points of one artifact pair.
type SignaturePlan struct {
	// Functions are the evaluation entry points, in declaration order.
	Functions []Signature
	// CheckBounds are the boundary-validation entry points, one per
	// representation (or a single one for laws without inputs).
	CheckBounds []Signature
	// Default is the default template argument of the generic signature.
	Default string
	// Niladic is true for laws without inputs.
	Niladic bool
}

// requestFor builds the signature request for a description under config.
func requestFor(mp *description.MaterialProperty, cfg InterfaceConfig) SignatureRequest {
	return SignatureRequest{
		Inputs:            len(mp.Inputs),
		Representations:   cfg.Representations,
		UseQuantities:     mp.UseQuantities,
		QuantityOverloads: cfg.QuantityOverloads && mp.GenerateQuantityOverloads,
		HasBounds:         mp.HasBounds(),
		HasPhysicalBounds: mp.HasPhysicalBounds(),
		ForceCheckBounds:  cfg.ForceCheckBounds,
	}
}

// PlanSignatures applies the signature decision table.
//
// Without inputs and with a single representation there is exactly one
// function. Without inputs and several representations there is a generic
// template followed by one specialization per representation, each followed
// by its quantity specialization when quantity overloads apply. With inputs,
// each representation gets a plain function followed by its quantity
// overload when they apply.
func PlanSignatures(req SignatureRequest) (SignaturePlan, error) {
	if common.IsEmpty(req.Representations) {
		return SignaturePlan{}, configErrorf("", "no floating point representation given")
	}

	reps := slices.Clone(req.Representations)
	overloads := req.UseQuantities && req.QuantityOverloads
	plan := SignaturePlan{
		Default: scalar.DefaultRepresentation(reps),
		Niladic: req.Inputs == 0,
	}

	if plan.Niladic {
		if common.IsSingle(reps) {
			plan.Functions = []Signature{{Representation: reps[0]}}
		} else {
			plan.Functions = append(plan.Functions, Signature{
				Representation: plan.Default,
				Quantity:       overloads,
				Generic:        true,
			})

			for _, r := range reps {
				plan.Functions = append(plan.Functions, Signature{Representation: r})
				if overloads {
					plan.Functions = append(plan.Functions, Signature{Representation: r, Quantity: true})
				}
			}
		}

		if req.ForceCheckBounds {
			plan.CheckBounds = []Signature{{Representation: plan.Default}}
		}

		return plan, nil
	}

	needsCheckBounds := req.HasBounds || req.HasPhysicalBounds || req.ForceCheckBounds

	for _, r := range reps {
		plan.Functions = append(plan.Functions, Signature{Representation: r})
		if overloads {
			plan.Functions = append(plan.Functions, Signature{Representation: r, Quantity: true})
		}

		if needsCheckBounds {
			plan.CheckBounds = append(plan.CheckBounds, Signature{Representation: r})
		}
	}

	return plan, nil
}

// Callable returns the functions that are actually defined, i.e. all but
// the generic template.
func (p SignaturePlan) Callable() []Signature {
	out := make([]Signature, 0, len(p.Functions))
	for _, s := range p.Functions {
		if !s.Generic {
			out = append(out, s)
		}
	}

	return out
}

// HasQuantityVariants reports whether any function is unit-checked.
func (p SignaturePlan) HasQuantityVariants() bool {
	return slices.ContainsFunc(p.Functions, func(s Signature) bool { return s.Quantity })
}

// checkQuantityTypes fails when a quantity variant would need the
// unit-checked counterpart of a type outside the recognized aliases.
func checkQuantityTypes(mp *description.MaterialProperty, plan SignaturePlan, iface string) error {
	if !plan.HasQuantityVariants() {
		return nil
	}

	if !scalar.IsAlias(mp.Output.Type) {
		return configErrorf(iface, "unsupported output type %q for %q: no unit-checked counterpart",
			mp.Output.Type, mp.Output.Name)
	}

	if plan.Niladic {
		return nil
	}

	for _, in := range mp.Inputs {
		if !scalar.IsAlias(in.Type) {
			return configErrorf(iface, "unsupported type for argument %q (%s): no unit-checked counterpart %q",
				in.GetExternalName(), in.Name, in.Type)
		}
	}

	return nil
}
