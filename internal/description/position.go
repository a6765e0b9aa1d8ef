package description

import (
	"errors"
	"fmt"
	"strings"

	"matprop-generator/internal/match"
)

// maxSuggestions bounds the "did you mean" list of a LookupError.
const maxSuggestions = 3

// ErrLookup is matched by every *LookupError.
var ErrLookup = errors.New("unknown variable")

// LookupError reports a reference to a variable that is not an input.
type LookupError struct {
	Law         string
	Name        string
	Suggestions []string
}

func (e *LookupError) Error() string {
	msg := fmt.Sprintf("%s: no input named %q", e.Law, e.Name)
	if len(e.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(e.Suggestions, ", ") + "?)"
	}

	return msg
}

// Is makes errors.Is(err, ErrLookup) hold.
func (e *LookupError) Is(target error) bool {
	return target == ErrLookup
}

// ResolveDeclarationPosition returns the 1-based position of the input
// called name among all inputs, bounded or not.
func ResolveDeclarationPosition(mp *MaterialProperty, name string) (int, error) {
	for i, in := range mp.Inputs {
		if in.Name == name {
			return i + 1, nil
		}
	}

	return 0, &LookupError{
		Law:         mp.Law,
		Name:        name,
		Suggestions: match.Suggest(name, mp.InputNames(), maxSuggestions),
	}
}
