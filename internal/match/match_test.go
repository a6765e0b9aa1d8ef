package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"T", "T", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"a", "ab", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"Temperature", "temperature", 1},
		{"température", "temperature", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a), "symmetry")
		})
	}
}

func TestNormalizeIdent(t *testing.T) {
	assert.Equal(t, "temperature", NormalizeIdent("mfront_Temperature"))
	assert.Equal(t, "temperature", NormalizeIdent("Tempe_rature"))
	assert.Equal(t, "youngmodulus", NormalizeIdent("Young-Modulus"))
	assert.Empty(t, NormalizeIdent(""))
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("mfront_T", "T"), 1e-12)
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-12)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-12)
}

func TestSuggest(t *testing.T) {
	candidates := []string{"Temperature", "Porosity", "BurnUp", "temperature"}

	got := Suggest("Temperatur", candidates, 3)
	assert.Equal(t, []string{"Temperature", "temperature"}, got)

	assert.Empty(t, Suggest("zzz", candidates, 3))
	assert.Len(t, Suggest("Porosity", candidates, 1), 1)
}

func TestRank_Dedup(t *testing.T) {
	ranked := Rank("stress", []string{"stress", "stress", "strain"}, 0)
	assert.Len(t, ranked, 2)
	assert.Equal(t, "stress", ranked[0].Name)
}
