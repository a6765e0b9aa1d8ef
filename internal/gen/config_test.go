package gen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matprop-generator/internal/description"
)

func TestInterfaceConfig_Validate(t *testing.T) {
	require.NoError(t, CInterface().Validate())
	require.NoError(t, CxxInterface().Validate())

	tests := []struct {
		name   string
		mutate func(*InterfaceConfig)
		reason string
	}{
		{
			name:   "no representation",
			mutate: func(c *InterfaceConfig) { c.Representations = nil },
			reason: "no floating point representation",
		},
		{
			name:   "unknown representation",
			mutate: func(c *InterfaceConfig) { c.Representations = []string{"half"} },
			reason: `unsupported floating point representation "half"`,
		},
		{
			name:   "duplicate representation",
			mutate: func(c *InterfaceConfig) { c.Representations = []string{"double", "float", "double"} },
			reason: "duplicate",
		},
		{
			name:   "extern C with namespace",
			mutate: func(c *InterfaceConfig) { c.Namespace = "mfront" },
			reason: "namespace",
		},
		{
			name:   "extern C with several representations",
			mutate: func(c *InterfaceConfig) { c.Representations = []string{"double", "float"} },
			reason: "2 representations",
		},
		{
			name:   "extern C with quantity overloads",
			mutate: func(c *InterfaceConfig) { c.QuantityOverloads = true },
			reason: "quantities",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := CInterface()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfiguration))

			var ce *ConfigurationError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, "c", ce.Interface)
			assert.Contains(t, ce.Reason, tt.reason)
		})
	}
}

func TestLookupInterface(t *testing.T) {
	for _, name := range []string{"c", "c++", "cxx"} {
		cfg, err := LookupInterface(name)
		require.NoError(t, err, name)
		require.NoError(t, cfg.Validate(), name)
	}

	cxx, err := LookupInterface("cxx")
	require.NoError(t, err)
	assert.Equal(t, "c++", cxx.Name)

	_, err = LookupInterface("fortran")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))
	assert.Contains(t, err.Error(), `interface "fortran"`)

	assert.Equal(t, []string{"c", "c++", "cxx"}, InterfaceNames())
}

func TestConfigurationError_Error(t *testing.T) {
	assert.Equal(t, "configuration error: boom", (&ConfigurationError{Reason: "boom"}).Error())
	assert.Equal(t, `configuration error for interface "c": boom`,
		(&ConfigurationError{Interface: "c", Reason: "boom"}).Error())
}

func TestNaming(t *testing.T) {
	mp := &description.MaterialProperty{Material: "UO2", Law: "YoungModulus"}

	assert.Equal(t, "UO2_YoungModulus", SymbolName("UO2", "YoungModulus"))
	assert.Equal(t, "YoungModulus", SymbolName("", "YoungModulus"))

	c := CInterface()
	assert.Equal(t, "UO2_YoungModulus", c.FunctionName(mp))
	assert.Equal(t, "UO2_YoungModulus_checkBounds", c.CheckBoundsFunctionName(mp))
	assert.Equal(t, "include/UO2_YoungModulus.h", c.HeaderPath(mp))
	assert.Equal(t, "src/UO2_YoungModulus.cxx", c.SourcePath(mp))

	cxx := CxxInterface()
	assert.Equal(t, "include/UO2_YoungModulus-cxx.hxx", cxx.HeaderPath(mp))
	assert.Equal(t, "src/UO2_YoungModulus-cxx.cxx", cxx.SourcePath(mp))

	cxx.HeaderDir = ""
	assert.Equal(t, "UO2_YoungModulus-cxx.hxx", cxx.HeaderPath(mp))
}
