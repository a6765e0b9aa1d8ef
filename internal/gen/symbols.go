package gen

import (
	"strconv"
	"strings"

	"matprop-generator/internal/description"
	"matprop-generator/internal/stamp"
)

// Symbol is one named metadata value published by the generated library.
type Symbol struct {
	Name  string
	CType string
	// Extent is the array extent, e.g. "[2]", or empty.
	Extent string
	// Value is the initializer, already a target-language literal.
	Value string
}

// Declaration renders s as an exported definition.
func (s Symbol) Declaration() string {
	return exportMacro + " " + s.CType + " " + s.Name + s.Extent + " = " + s.Value + ";"
}

const (
	cStringType = "const char *"
	countType   = "unsigned short"
	boundType   = "long double"
)

// MetadataSymbols returns the introspection symbols of a law, in the order
// they are emitted. Names are derived from the law's symbol name; variables
// are published under their external names.
func MetadataSymbols(cfg InterfaceConfig, mp *description.MaterialProperty, fd description.FileDescription) []Symbol {
	name := cfg.FunctionName(mp)
	str := func(suffix, v string) Symbol {
		return Symbol{Name: name + "_" + suffix, CType: cStringType, Value: quoteC(v)}
	}

	syms := []Symbol{
		str("src", fd.Source),
		str("author", fd.Author),
		str("date", fd.Date),
		str("description", fd.Description),
		{Name: name + "_nargs", CType: countType, Value: strconv.Itoa(len(mp.Inputs)) + "u"},
	}

	if len(mp.Inputs) == 0 {
		syms = append(syms, Symbol{Name: name + "_args", CType: "const char * const *", Value: "nullptr"})
	} else {
		args := make([]string, 0, len(mp.Inputs))
		for _, in := range mp.Inputs {
			args = append(args, quoteC(in.GetExternalName()))
		}

		syms = append(syms, Symbol{
			Name:   name + "_args",
			CType:  cStringType,
			Extent: "[" + strconv.Itoa(len(mp.Inputs)) + "]",
			Value:  "{" + strings.Join(args, ",") + "}",
		})
	}

	syms = append(syms, str("output", mp.Output.GetExternalName()))

	for _, v := range append([]description.Variable{mp.Output}, mp.Inputs...) {
		syms = append(syms, boundSymbols(name+"_"+v.GetExternalName(), v)...)
	}

	return append(syms,
		str("build_id", mp.BuildIdentifier),
		str("mfront_ept", name),
		str("tfel_version", stamp.VersionNumber),
		str("unit_system", mp.UnitSystem),
		str("mfront_interface", cfg.Name),
		str("mfront_law", mp.Law),
		str("mfront_material", mp.Material),
		// material knowledge type: 0 is a material property
		Symbol{Name: name + "_mfront_mkt", CType: countType, Value: "0u"},
	)
}

func boundSymbols(prefix string, v description.Variable) []Symbol {
	var syms []Symbol

	add := func(b *description.Bounds, lower, upper string) {
		if b == nil {
			return
		}

		if b.Lower != nil {
			syms = append(syms, Symbol{Name: prefix + lower, CType: boundType, Value: FormatLiteral(*b.Lower) + "L"})
		}

		if b.Upper != nil {
			syms = append(syms, Symbol{Name: prefix + upper, CType: boundType, Value: FormatLiteral(*b.Upper) + "L"})
		}
	}

	add(v.Bounds, "_LowerBound", "_UpperBound")
	add(v.PhysicalBounds, "_LowerPhysicalBound", "_UpperPhysicalBound")

	return syms
}

// writeSymbols writes the symbol block with C linkage.
func writeSymbols(w *codeWriter, syms []Symbol) {
	w.line("#ifdef __cplusplus")
	w.line(`extern "C" {`)
	w.line("#endif /* __cplusplus */")
	w.blank()

	for _, s := range syms {
		w.line(s.Declaration())
		w.blank()
	}

	w.line("#ifdef __cplusplus")
	w.line("} // end of extern \"C\"")
	w.line("#endif /* __cplusplus */")
	w.blank()
}

var cStringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func quoteC(s string) string {
	return `"` + cStringEscaper.Replace(s) + `"`
}
