package match

import (
	"sort"
)

// DefaultMinSimilarity is the score under which a candidate is not worth
// suggesting.
const DefaultMinSimilarity = 0.5

// Candidate is a known name scored against an unknown one.
type Candidate struct {
	Name  string
	Score float64
}

// Rank scores every candidate against name and returns those at or above
// minScore, best first. Ties keep the order of candidates.
func Rank(name string, candidates []string, minScore float64) []Candidate {
	var ranked []Candidate

	seen := make(map[string]struct{}, len(candidates))

	for _, c := range candidates {
		if _, dup := seen[c]; dup {
			continue
		}

		seen[c] = struct{}{}

		score := Similarity(name, c)
		if score < minScore {
			continue
		}

		ranked = append(ranked, Candidate{Name: c, Score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

// Suggest returns at most limit candidate names close to name.
func Suggest(name string, candidates []string, limit int) []string {
	ranked := Rank(name, candidates, DefaultMinSimilarity)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, 0, len(ranked))
	for _, c := range ranked {
		out = append(out, c.Name)
	}

	return out
}
