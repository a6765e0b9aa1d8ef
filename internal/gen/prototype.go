package gen

import (
	"strings"

	"matprop-generator/internal/common"
	"matprop-generator/internal/description"
	"matprop-generator/internal/scalar"
)

const (
	exportMacro     = "MFRONT_SHAREDOBJ"
	argumentPrefix  = "mfront_"
	templateParam   = "mfront_ValueType"
	checkBoundsType = "int"
)

// prototype is a function signature split into the parts both emitters
// print. Declaration and definition are built from the same prototype so
// they cannot drift apart.
type prototype struct {
	// Template is the template line, if any.
	Template   string
	ReturnType string
	Name       string
	Args       string
	// Exported is false for the generic template, which has no symbol.
	Exported bool
}

// functionPrototype builds the prototype of an evaluation entry point.
func functionPrototype(cfg InterfaceConfig, mp *description.MaterialProperty, plan SignaturePlan, sig Signature) prototype {
	p := prototype{
		ReturnType: outputType(mp, sig),
		Name:       cfg.FunctionName(mp),
		Exported:   true,
	}

	if plan.Niladic {
		if common.IsMultiple(plan.Functions) {
			if sig.Generic {
				p.Template = "template <typename " + templateParam + " = " + p.ReturnType + ">"
				p.ReturnType = templateParam
				p.Exported = false
			} else {
				p.Template = "template <>"
				p.Name += "<" + p.ReturnType + ">"
			}
		}

		return p
	}

	p.Args = argumentList(mp, sig.Representation, sig.Quantity)

	return p
}

// checkBoundsPrototype builds the prototype of a boundary-validation entry
// point. It always takes the plain argument list.
func checkBoundsPrototype(cfg InterfaceConfig, mp *description.MaterialProperty, sig Signature) prototype {
	return prototype{
		ReturnType: checkBoundsType,
		Name:       cfg.CheckBoundsFunctionName(mp),
		Args:       argumentList(mp, sig.Representation, false),
		Exported:   true,
	}
}

// head is the return type followed by the calling convention, if any.
func (p prototype) head(cfg InterfaceConfig) string {
	if cfg.CallingConvention == "" {
		return p.ReturnType
	}

	return p.ReturnType + " " + cfg.CallingConvention
}

// exportedHead prefixes head with the export macro for exported symbols.
func (p prototype) exportedHead(cfg InterfaceConfig) string {
	if !p.Exported {
		return p.head(cfg)
	}

	return exportMacro + " " + p.head(cfg)
}

func (p prototype) declaration(cfg InterfaceConfig) string {
	var w codeWriter

	if p.Template != "" {
		w.line(p.Template)
	}

	w.line(p.exportedHead(cfg))
	w.line(p.Name + "(" + p.Args + ");")

	return w.String()
}

// definition wraps body, which must end with a newline, in the prototype.
func (p prototype) definition(cfg InterfaceConfig, body string) string {
	var w codeWriter

	if p.Template != "" {
		w.line(p.Template)
	}

	w.line(p.exportedHead(cfg))
	w.line(p.Name + "(" + p.Args + ")")
	w.line("{")
	w.raw(body)
	w.line("} /* end of " + p.Name + " */")

	return w.String()
}

// outputType spells the return type of a function variant.
func outputType(mp *description.MaterialProperty, sig Signature) string {
	if sig.Quantity {
		return scalar.QuantityType(sig.Representation, mp.Output.Type)
	}

	return sig.Representation
}

// argumentName is the name an input has in the argument list. With
// quantities, raw arguments are prefixed and rebound to typed locals.
func argumentName(mp *description.MaterialProperty, in description.Variable) string {
	if mp.UseQuantities {
		return argumentPrefix + in.Name
	}

	return in.Name
}

func argumentList(mp *description.MaterialProperty, rep string, quantity bool) string {
	args := make([]string, 0, len(mp.Inputs))

	for _, in := range mp.Inputs {
		typ := rep
		if quantity {
			typ = scalar.QuantityType(rep, in.Type)
		}

		args = append(args, "const "+typ+" "+argumentName(mp, in))
	}

	return strings.Join(args, ", ")
}
