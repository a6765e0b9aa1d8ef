package scalar

import (
	"slices"
)

// DefaultType is the type given to variables declared without one.
const DefaultType = "real"

// aliases lists the scalar type aliases exposed by tfel::config::ScalarTypes.
var aliases = []string{
	"real",
	"frequency",
	"stress",
	"length",
	"inv_length",
	"displacement",
	"strain",
	"strainrate",
	"stressrate",
	"temperature",
	"thermalexpansion",
	"thermalconductivity",
	"massdensity",
	"energydensity",
	"speed",
	"time",
	"mass",
	"area",
	"volume",
	"energy",
	"power",
	"force",
	"heatflux",
	"heatcapacity",
	"specificheat",
}

// Aliases returns the recognized scalar type aliases.
func Aliases() []string {
	return slices.Clone(aliases)
}

// IsAlias reports whether t has a unit-checked counterpart.
func IsAlias(t string) bool {
	return slices.Contains(aliases, t)
}

// QuantityType spells the unit-checked type for alias t at representation rep.
func QuantityType(rep, t string) string {
	return "typename tfel::config::ScalarTypes<" + rep + ", true>::" + t
}

// AliasType spells the alias t at representation rep, unit-checked or not.
func AliasType(rep, t string, useQuantities bool) string {
	qt := "false"
	if useQuantities {
		qt = "true"
	}

	return "typename tfel::config::ScalarTypes<" + rep + ", " + qt + ">::" + t
}
