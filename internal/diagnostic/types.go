package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"matprop-generator/internal/common"
)

// Diagnostics holds all diagnostic information from validation.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Law identifies which material property this relates to (if any).
	Law string
	// Variable identifies which variable this relates to (if any).
	Variable string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, law, variable string, suggestions ...string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:    DiagnosticError,
		Code:        code,
		Message:     message,
		Law:         law,
		Variable:    variable,
		Suggestions: suggestions,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, law, variable string, suggestions ...string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:    DiagnosticWarning,
		Code:        code,
		Message:     message,
		Law:         law,
		Variable:    variable,
		Suggestions: suggestions,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, law, variable string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: DiagnosticInfo,
		Code:     code,
		Message:  message,
		Law:      law,
		Variable: variable,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// All returns errors, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// ErrInvalid is wrapped by the error returned from Diagnostics.Error.
var ErrInvalid = errors.New("invalid description")

// Error joins every error diagnostic into one error wrapping ErrInvalid,
// or returns nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	lines := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		lines = append(lines, e.String())
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(lines, "; "))
}

// String renders d as "law: variable: message (code)". Law and variable
// are omitted when unset.
func (d Diagnostic) String() string {
	var b strings.Builder

	for _, scope := range []string{d.Law, d.Variable} {
		if scope != "" {
			b.WriteString(scope)
			b.WriteString(": ")
		}
	}

	b.WriteString(d.Message)

	switch {
	case d.Code != "" && len(d.Suggestions) > 0:
		fmt.Fprintf(&b, " (%s, did you mean %s?)", d.Code, strings.Join(d.Suggestions, " or "))
	case d.Code != "":
		fmt.Fprintf(&b, " (%s)", d.Code)
	case len(d.Suggestions) > 0:
		fmt.Fprintf(&b, " (did you mean %s?)", strings.Join(d.Suggestions, " or "))
	}

	return b.String()
}
