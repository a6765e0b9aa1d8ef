package gen

import (
	"fmt"
	"slices"

	"matprop-generator/internal/description"
	"matprop-generator/internal/scalar"
)

const (
	errnoGuardBegin = "#ifndef MFRONT_NOERRNO_HANDLING"
	errnoGuardEnd   = "#endif /* MFRONT_NOERRNO_HANDLING */"
)

// errnoHandled reports whether the body captures and restores errno. Laws
// without inputs are constants and skip it.
func errnoHandled(mp *description.MaterialProperty) bool {
	return !mp.RuntimeChecksDisabled && len(mp.Inputs) > 0
}

// nanFunction picks the quiet NaN builder matching rep, so that brace
// initialization of quantity types never narrows.
func nanFunction(rep string) string {
	switch rep {
	case scalar.Float:
		return "std::nanf"
	case scalar.LongDouble:
		return "std::nanl"
	default:
		return "std::nan"
	}
}

// invalidValue is the failure sentinel of a function variant.
func invalidValue(mp *description.MaterialProperty, sig Signature) string {
	nan := nanFunction(sig.Representation) + `("")`
	if sig.Quantity {
		return outputType(mp, sig) + "{" + nan + "}"
	}

	return nan
}

func writeReturnInvalid(w *codeWriter, mp *description.MaterialProperty, sig Signature, restoreErrno bool) {
	if restoreErrno {
		w.line(errnoGuardBegin)
		w.line("errno = mfront_errno_old;")
		w.line(errnoGuardEnd)
	}

	w.line("return " + invalidValue(mp, sig) + ";")
}

// writeMaterialPropertyBody writes the body of an evaluation function.
//
// Every way out of the user code that is not a normal completion (an
// exception, an output outside its physical bounds, errno set, a non-finite
// result) returns the invalid value. Once errno has been captured it is
// restored on every return path.
func writeMaterialPropertyBody(w *codeWriter, mp *description.MaterialProperty, sig Signature) error {
	writeScalarTypedefs(w, mp, sig.Representation)

	if err := writeParameters(w, mp); err != nil {
		return err
	}

	writeInterfaceSpecificVariables(w, mp)

	guarded := errnoHandled(mp)
	if guarded {
		w.line(errnoGuardBegin)
		w.line("const auto mfront_errno_old = errno;")
		w.line("errno = 0;")
		w.line(errnoGuardEnd)
	}

	out := mp.Output.Name
	w.line("auto " + out + " = " + mp.Output.Type + "{};")
	w.line("try{")
	w.raw(mp.Body)

	if !mp.RuntimeChecksDisabled {
		writeFragments(w, CompileOutputBounds(mp.Output), mp.UseQuantities, func(Fragment) {
			writeReturnInvalid(w, mp, sig, guarded)
		})
	}

	w.line("} catch(std::exception&){")
	writeReturnInvalid(w, mp, sig, guarded)
	w.line("} catch(...){")
	writeReturnInvalid(w, mp, sig, guarded)
	w.line("}")

	value := out
	if mp.UseQuantities {
		value = out + ".getValue()"
	}

	if guarded {
		w.line(errnoGuardBegin)
		w.line("const auto mfront_errno = errno;")
		w.line("errno = mfront_errno_old;")
		w.line("if((mfront_errno != 0)||(!tfel::math::ieee754::isfinite(" + value + "))){")
		w.line("return " + invalidValue(mp, sig) + ";")
		w.line("}")
		w.line(errnoGuardEnd)
	}

	if sig.Quantity {
		w.line("return " + out + ";")
	} else {
		w.line("return " + value + ";")
	}

	return nil
}

// writeCheckBoundsBody writes the body of a boundary-validation function:
// physical bounds first, returning the negated position, then standard
// bounds, returning the position.
func writeCheckBoundsBody(w *codeWriter, mp *description.MaterialProperty, sig Signature) {
	writeScalarTypedefs(w, mp, sig.Representation)
	writeInterfaceSpecificVariables(w, mp)

	for _, in := range mp.Inputs {
		w.line("static_cast<void>(" + in.Name + ");")
	}

	if !mp.RuntimeChecksDisabled {
		var physical, standard []Fragment

		for _, f := range CompileInputBounds(mp.Inputs) {
			if f.Category == CategoryPhysical {
				physical = append(physical, f)
			} else {
				standard = append(standard, f)
			}
		}

		onViolation := func(f Fragment) { w.linef("return %d;", f.Code) }

		if len(physical) > 0 {
			w.line("/* treating physical bounds */")
			writeFragments(w, physical, mp.UseQuantities, onViolation)
		}

		if len(standard) > 0 {
			w.line("/* treating standard bounds */")
			writeFragments(w, standard, mp.UseQuantities, onViolation)
		}
	}

	w.line("return 0;")
}

// referencedAliases lists, sorted and without duplicates, the recognized
// aliases used by the output, the inputs and the parameters.
func referencedAliases(mp *description.MaterialProperty) []string {
	var out []string

	add := func(t string) {
		if scalar.IsAlias(t) {
			out = append(out, t)
		}
	}

	add(mp.Output.Type)

	for _, in := range mp.Inputs {
		add(in.Type)
	}

	for _, p := range mp.Parameters {
		add(p.Type)
	}

	slices.Sort(out)

	return slices.Compact(out)
}

func writeScalarTypedefs(w *codeWriter, mp *description.MaterialProperty, rep string) {
	for _, a := range referencedAliases(mp) {
		w.line("using " + a + " = " + scalar.AliasType(rep, a, mp.UseQuantities) + ";")
	}
}

func writeParameters(w *codeWriter, mp *description.MaterialProperty) error {
	for _, p := range mp.Parameters {
		if !p.HasDefault() {
			return fmt.Errorf("can't find value of parameter %q", p.Name)
		}

		w.line("static constexpr auto " + p.Name + " = " + p.Type + "(" + *p.Default + ");")
	}

	return nil
}

// writeInterfaceSpecificVariables rebinds raw arguments to typed locals when
// the law is written with quantities.
func writeInterfaceSpecificVariables(w *codeWriter, mp *description.MaterialProperty) {
	if !mp.UseQuantities {
		return
	}

	for _, in := range mp.Inputs {
		w.line("const auto " + in.Name + " = " + in.Type + "(" + argumentName(mp, in) + ");")
	}
}
