package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"matprop-generator/internal/description"
)

func TestMetadataSymbols_Order(t *testing.T) {
	mp := &description.MaterialProperty{
		Material: "UO2",
		Law:      "YoungModulus",
		Output:   description.Variable{Name: "E", ExternalName: "YoungModulus", PhysicalBounds: description.LowerBound(0)},
		Inputs: []description.Variable{
			{Name: "T", ExternalName: "Temperature", Bounds: description.RangeBound(273.15, 3000)},
			{Name: "f", ExternalName: "Porosity"},
		},
		UnitSystem:      "SI",
		BuildIdentifier: "b42",
	}

	syms := MetadataSymbols(CxxInterface(), mp, testFile)

	names := make([]string, 0, len(syms))
	for _, s := range syms {
		names = append(names, s.Name)
	}

	assert.Equal(t, []string{
		"UO2_YoungModulus_src",
		"UO2_YoungModulus_author",
		"UO2_YoungModulus_date",
		"UO2_YoungModulus_description",
		"UO2_YoungModulus_nargs",
		"UO2_YoungModulus_args",
		"UO2_YoungModulus_output",
		"UO2_YoungModulus_YoungModulus_LowerPhysicalBound",
		"UO2_YoungModulus_Temperature_LowerBound",
		"UO2_YoungModulus_Temperature_UpperBound",
		"UO2_YoungModulus_build_id",
		"UO2_YoungModulus_mfront_ept",
		"UO2_YoungModulus_tfel_version",
		"UO2_YoungModulus_unit_system",
		"UO2_YoungModulus_mfront_interface",
		"UO2_YoungModulus_mfront_law",
		"UO2_YoungModulus_mfront_material",
		"UO2_YoungModulus_mfront_mkt",
	}, names)

	decl := make(map[string]string, len(syms))
	for _, s := range syms {
		decl[s.Name] = s.Declaration()
	}

	assert.Equal(t, `MFRONT_SHAREDOBJ unsigned short UO2_YoungModulus_nargs = 2u;`, decl["UO2_YoungModulus_nargs"])
	assert.Equal(t, `MFRONT_SHAREDOBJ const char * UO2_YoungModulus_args[2] = {"Temperature","Porosity"};`,
		decl["UO2_YoungModulus_args"])
	assert.Equal(t, `MFRONT_SHAREDOBJ long double UO2_YoungModulus_Temperature_LowerBound = 273.15L;`,
		decl["UO2_YoungModulus_Temperature_LowerBound"])
	assert.Equal(t, `MFRONT_SHAREDOBJ const char * UO2_YoungModulus_mfront_interface = "c++";`,
		decl["UO2_YoungModulus_mfront_interface"])
	assert.Equal(t, `MFRONT_SHAREDOBJ const char * UO2_YoungModulus_unit_system = "SI";`,
		decl["UO2_YoungModulus_unit_system"])
	assert.Equal(t, `MFRONT_SHAREDOBJ unsigned short UO2_YoungModulus_mfront_mkt = 0u;`,
		decl["UO2_YoungModulus_mfront_mkt"])
}

func TestMetadataSymbols_OncePerArtifact(t *testing.T) {
	mp := &description.MaterialProperty{
		Law:                       "k",
		Output:                    description.Variable{Name: "k", Type: "thermalconductivity"},
		Inputs:                    []description.Variable{{Name: "T", Type: "temperature"}},
		Body:                      "k = thermalconductivity(2);",
		UseQuantities:             true,
		GenerateQuantityOverloads: true,
	}

	_, source := emitBoth(t, mp, CxxInterface())

	assert.Equal(t, 1, strings.Count(source, "MFRONT_SHAREDOBJ const char * k_src"))
	assert.Equal(t, 1, strings.Count(source, "MFRONT_SHAREDOBJ unsigned short k_nargs"))
}

func TestQuoteC(t *testing.T) {
	assert.Equal(t, `"a\"b\\c\nd"`, quoteC("a\"b\\c\nd"))
	assert.Equal(t, `""`, quoteC(""))
}
