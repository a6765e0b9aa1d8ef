package gen

import (
	"slices"
	"sort"

	"matprop-generator/internal/scalar"
)

// InterfaceConfig selects how a material property is exposed. Every axis the
// generator varies on is a field here; the emitters are plain functions of
// (description, provenance, config).
type InterfaceConfig struct {
	// Name is published in the interface symbol and used by LookupInterface.
	Name string
	// CallingConvention is written between return type and function name.
	CallingConvention string
	// Representations are the floating point types to instantiate, in order.
	Representations []string
	// QuantityOverloads enables unit-checked overloads for descriptions that
	// use quantities and ask for them.
	QuantityOverloads bool
	// ForceCheckBounds emits the check-bounds function even without bounds.
	ForceCheckBounds bool
	// ExternC wraps declarations and definitions in extern "C".
	ExternC bool
	// Namespace wraps declarations and definitions in a C++ namespace.
	Namespace string
	// FileSuffix is appended to the symbol name to build file names.
	FileSuffix string
	HeaderDir  string
	SourceDir  string
	HeaderExt  string
	SourceExt  string
}

// CInterface returns the configuration of the flat C interface: one double
// precision entry point with C linkage.
func CInterface() InterfaceConfig {
	return InterfaceConfig{
		Name:            "c",
		Representations: []string{scalar.Double},
		ExternC:         true,
		HeaderDir:       "include",
		SourceDir:       "src",
		HeaderExt:       ".h",
		SourceExt:       ".cxx",
	}
}

// CxxInterface returns the configuration of the C++ interface: overloads for
// every floating point type, plus quantity overloads, in namespace mfront.
func CxxInterface() InterfaceConfig {
	return InterfaceConfig{
		Name:              "c++",
		Representations:   scalar.Representations(),
		QuantityOverloads: true,
		Namespace:         "mfront",
		FileSuffix:        "-cxx",
		HeaderDir:         "include",
		SourceDir:         "src",
		HeaderExt:         ".hxx",
		SourceExt:         ".cxx",
	}
}

var interfaces = map[string]func() InterfaceConfig{
	"c":   CInterface,
	"c++": CxxInterface,
	"cxx": CxxInterface,
}

// LookupInterface returns the predefined configuration registered as name.
func LookupInterface(name string) (InterfaceConfig, error) {
	mk, ok := interfaces[name]
	if !ok {
		return InterfaceConfig{}, configErrorf(name, "unknown interface, expected one of %v", InterfaceNames())
	}

	return mk(), nil
}

// InterfaceNames returns the registered interface names, sorted.
func InterfaceNames() []string {
	names := make([]string, 0, len(interfaces))
	for n := range interfaces {
		names = append(names, n)
	}

	sort.Strings(names)

	return names
}

// Validate reports a *ConfigurationError for configurations no artifact can
// be generated from.
func (c InterfaceConfig) Validate() error {
	if len(c.Representations) == 0 {
		return configErrorf(c.Name, "no floating point representation given")
	}

	for i, r := range c.Representations {
		if !scalar.IsRepresentation(r) {
			return configErrorf(c.Name, "unsupported floating point representation %q", r)
		}

		if slices.Contains(c.Representations[:i], r) {
			return configErrorf(c.Name, "duplicate floating point representation %q", r)
		}
	}

	if c.ExternC {
		if c.Namespace != "" {
			return configErrorf(c.Name, "extern \"C\" linkage cannot be combined with namespace %q", c.Namespace)
		}

		if len(c.Representations) > 1 {
			return configErrorf(c.Name, "extern \"C\" linkage cannot overload on %d representations", len(c.Representations))
		}

		if c.QuantityOverloads {
			return configErrorf(c.Name, "extern \"C\" linkage cannot overload on quantities")
		}
	}

	return nil
}
