package types

import (
	"errors"
	"fmt"
	"strings"
)

// Severity levels for diagnostics. Lower numbers are more severe.
type Severity int

const (
	SeverityError   Severity = 0 // Input rejected
	SeverityWarning Severity = 1 // Input accepted, likely a mistake
	SeverityInfo    Severity = 2 // Informational notice
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return fmt.Sprintf("Severity(%d)", s)
	}
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name produced by MarshalText.
func (s *Severity) UnmarshalText(text []byte) error {
	for _, v := range []Severity{SeverityError, SeverityWarning, SeverityInfo} {
		if v.String() == string(text) {
			*s = v
			return nil
		}
	}
	return fmt.Errorf("unknown severity %q", text)
}

// Diagnostic represents an issue found while parsing or sorting formulas.
type Diagnostic struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Code     string   `json:"code,omitempty" yaml:"code,omitempty"` // e.g., "unknown-character", "dependency-cycle"
	Message  string   `json:"message" yaml:"message"`
	Source   string   `json:"source,omitempty" yaml:"source,omitempty"` // input name, empty for stdin
	Line     int      `json:"line,omitempty" yaml:"line,omitempty"`     // 1-based line number, 0 if not applicable
	Column   int      `json:"column,omitempty" yaml:"column,omitempty"` // 1-based column, 0 if not applicable
}

// String returns a human-readable representation of the diagnostic.
// Format: "[severity] source:line:col: message" with location parts omitted when zero.
func (d Diagnostic) String() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(d.Severity.String())
	b.WriteByte(']')
	b.WriteByte(' ')
	if d.Source != "" || d.Line > 0 {
		b.WriteString(d.Source)
		if d.Line > 0 {
			if d.Source != "" {
				b.WriteByte(':')
			}
			fmt.Fprintf(&b, "%d", d.Line)
			if d.Column > 0 {
				fmt.Fprintf(&b, ":%d", d.Column)
			}
		}
		b.WriteString(": ")
	}
	b.WriteString(d.Message)
	return b.String()
}

// DiagnosticFromError converts a SyntaxError or CycleError into a
// diagnostic. Other errors become a code-less error diagnostic.
func DiagnosticFromError(err error) Diagnostic {
	var se *SyntaxError
	if errors.As(err, &se) {
		return Diagnostic{
			Severity: SeverityError,
			Code:     se.Code,
			Message:  se.Message,
			Line:     se.Pos.Row,
			Column:   se.Pos.Column,
		}
	}
	var ce *CycleError
	if errors.As(err, &ce) {
		return Diagnostic{
			Severity: SeverityError,
			Code:     ce.Code,
			Message:  ce.Error(),
			Line:     ce.Line,
		}
	}
	return Diagnostic{Severity: SeverityError, Message: err.Error()}
}
