package description

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"matprop-generator/internal/diagnostic"
	"matprop-generator/internal/match"
	"matprop-generator/internal/scalar"
)

// descriptionValidate checks the struct tags of a MaterialProperty.
var descriptionValidate = validator.New()

// Validate runs structural checks on a material property description.
// Type aliases are only checked when quantities are used, because plain
// generation treats every type as the floating point representation.
// An unknown alias is a warning: whether it blocks generation depends on
// the interface, which reports it as a configuration error.
func Validate(mp *MaterialProperty) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if mp == nil {
		res.AddError("description_is_nil", "description is nil", "", "")
		return res
	}

	validateTags(res, mp)

	seen := map[string]string{mp.Output.Name: "output"}

	for _, in := range mp.Inputs {
		if prev, dup := seen[in.Name]; dup && in.Name != "" {
			res.AddError("duplicate_variable",
				fmt.Sprintf("input %q is already declared as %s", in.Name, prev), mp.Law, in.Name)

			continue
		}

		seen[in.Name] = "input"
	}

	for _, p := range mp.Parameters {
		if prev, dup := seen[p.Name]; dup && p.Name != "" {
			res.AddError("duplicate_variable",
				fmt.Sprintf("parameter %q is already declared as %s", p.Name, prev), mp.Law, p.Name)
		}

		seen[p.Name] = "parameter"

		if !p.HasDefault() {
			res.AddError("missing_parameter_default",
				fmt.Sprintf("parameter %q has no default value", p.Name), mp.Law, p.Name)
		}
	}

	validateExternalNames(res, mp)

	validateVariable(res, mp, mp.Output)

	for _, in := range mp.Inputs {
		validateVariable(res, mp, in)
	}

	if mp.Output.HasBounds() {
		res.AddInfo("output_bounds_unchecked",
			"standard bounds of the output are published but not checked at run time", mp.Law, mp.Output.Name)
	}

	if mp.Body == "" {
		res.AddWarning("empty_body", "body is empty, the output keeps its default value", mp.Law, "")
	}

	return res
}

func validateTags(res *diagnostic.Diagnostics, mp *MaterialProperty) {
	err := descriptionValidate.Struct(mp)
	if err == nil {
		return
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		res.AddError("invalid_description", err.Error(), mp.Law, "")
		return
	}

	for _, fe := range verrs {
		res.AddError("missing_field",
			fmt.Sprintf("field %s failed on the %q rule", fe.Namespace(), fe.Tag()), mp.Law, "")
	}
}

func validateVariable(res *diagnostic.Diagnostics, mp *MaterialProperty, v Variable) {
	if v.HasBounds() {
		validateBounds(res, mp.Law, v.Name, "bounds", *v.Bounds)
	}

	if v.HasPhysicalBounds() {
		validateBounds(res, mp.Law, v.Name, "physical bounds", *v.PhysicalBounds)
	}

	if mp.UseQuantities && !scalar.IsAlias(v.Type) {
		res.AddWarning("unknown_scalar_alias",
			fmt.Sprintf("type %q of %q has no unit-checked counterpart", v.Type, v.Name),
			mp.Law, v.Name, match.Suggest(v.Type, scalar.Aliases(), maxSuggestions)...)
	}
}

// validateExternalNames rejects variables sharing an external name, since
// the bound symbols of the shared object are named after it.
func validateExternalNames(res *diagnostic.Diagnostics, mp *MaterialProperty) {
	owners := map[string]string{mp.Output.GetExternalName(): mp.Output.Name}

	for _, in := range mp.Inputs {
		ext := in.GetExternalName()
		if ext == "" {
			continue
		}

		owner, dup := owners[ext]
		if !dup {
			owners[ext] = in.Name
			continue
		}

		if owner != in.Name {
			res.AddError("duplicate_external_name",
				fmt.Sprintf("external name %q of %q is already used by %q", ext, in.Name, owner), mp.Law, in.Name)
		}
	}
}

func validateBounds(res *diagnostic.Diagnostics, law, name, what string, b Bounds) {
	if b.Kind() == BoundNone {
		res.AddError("empty_bounds", fmt.Sprintf("%s of %q declare no limit", what, name), law, name)
		return
	}

	for _, v := range []*float64{b.Lower, b.Upper} {
		if v != nil && (math.IsNaN(*v) || math.IsInf(*v, 0)) {
			res.AddError("non_finite_bound", fmt.Sprintf("%s of %q are not finite", what, name), law, name)
			return
		}
	}

	if b.Kind() == BoundRange && *b.Lower > *b.Upper {
		res.AddError("inverted_bounds",
			fmt.Sprintf("%s of %q have lower %g above upper %g", what, name, *b.Lower, *b.Upper), law, name)
	}
}
