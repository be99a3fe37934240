package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostics holds everything reported by one check run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic is a single finding.
type Diagnostic struct {
	Severity Severity
	// Code is a stable identifier of the kind of problem, e.g. "unknown_seed_key".
	Code    string
	Message string
	// Board names the board the finding belongs to, if any.
	Board string
	// ItemID names the key or value involved, if any.
	ItemID string
	// Suggestions are ids or names that were probably meant.
	Suggestions []string
}

// Severity of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// AddError records an error.
func (d *Diagnostics) AddError(code, message, board, itemID string, suggestions ...string) {
	d.Errors = append(d.Errors, newDiagnostic(SeverityError, code, message, board, itemID, suggestions))
}

// AddWarning records a warning.
func (d *Diagnostics) AddWarning(code, message, board, itemID string, suggestions ...string) {
	d.Warnings = append(d.Warnings, newDiagnostic(SeverityWarning, code, message, board, itemID, suggestions))
}

// AddInfo records a note.
func (d *Diagnostics) AddInfo(code, message, board, itemID string) {
	d.Infos = append(d.Infos, newDiagnostic(SeverityInfo, code, message, board, itemID, nil))
}

func newDiagnostic(sev Severity, code, message, board, itemID string, suggestions []string) Diagnostic {
	return Diagnostic{
		Severity:    sev,
		Code:        code,
		Message:     message,
		Board:       board,
		ItemID:      itemID,
		Suggestions: suggestions,
	}
}

// HasErrors reports whether any error was recorded.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge appends everything from other.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns errors, then warnings, then notes.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Codes returns the codes of all diagnostics in All order.
func (d *Diagnostics) Codes() []string {
	var codes []string
	for _, diag := range d.All() {
		codes = append(codes, diag.Code)
	}

	return codes
}

// Error returns the errors joined into one error, or nil if there are none.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String formats the diagnostic as "[board] item: [code] message (did you mean ...?)".
func (d Diagnostic) String() string {
	var prefix []string
	if d.Board != "" {
		prefix = append(prefix, "["+d.Board+"]")
	}

	if d.ItemID != "" {
		prefix = append(prefix, d.ItemID)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(d.Suggestions, ", "))
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
