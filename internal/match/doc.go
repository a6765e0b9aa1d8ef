// Package match provides identifier normalization and edit-distance scoring
// used to produce "did you mean" suggestions in diagnostics.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names against an unknown one
package match
