// Package diagnostic provides structured errors, warnings and notes
// produced while validating material property descriptions.
//
// Key capabilities:
//   - Stable diagnostic codes for tooling
//   - Per-variable attribution
//   - "did you mean" suggestions for unknown names
package diagnostic
