package scalar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRepresentation(t *testing.T) {
	assert.Equal(t, Double, DefaultRepresentation([]string{Float, Double, LongDouble}))
	assert.Equal(t, LongDouble, DefaultRepresentation([]string{Float, LongDouble}))
	assert.Equal(t, Float, DefaultRepresentation([]string{Float}))
	assert.Empty(t, DefaultRepresentation(nil))
}

func TestIsRepresentation(t *testing.T) {
	assert.True(t, IsRepresentation("long double"))
	assert.False(t, IsRepresentation("half"))
}

func TestAliases(t *testing.T) {
	assert.True(t, IsAlias("temperature"))
	assert.True(t, IsAlias(DefaultType))
	assert.False(t, IsAlias("double"))

	// callers must not be able to mutate the whitelist
	a := Aliases()
	a[0] = "double"
	assert.False(t, IsAlias("double"))
}

func TestQuantityType(t *testing.T) {
	assert.Equal(t, "typename tfel::config::ScalarTypes<float, true>::stress", QuantityType(Float, "stress"))
	assert.Equal(t, "typename tfel::config::ScalarTypes<double, false>::real", AliasType(Double, "real", false))
}
