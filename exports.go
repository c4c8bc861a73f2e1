package formulaorder

import "github.com/golangsnmp/formulaorder/internal/types"

// Type aliases for public API - error and diagnostic types come from
// internal/types.

// SyntaxError reports a lexical, grammar, or name-resolution failure at a
// position in the input.
type SyntaxError = types.SyntaxError

// CycleError reports formulas that depend on each other.
type CycleError = types.CycleError

// Position is a 1-based row and column in the input.
type Position = types.Position

// Diagnostic is a problem reported by Check.
type Diagnostic = types.Diagnostic

// Severity ranks a Diagnostic.
type Severity = types.Severity

const (
	SeverityError   = types.SeverityError
	SeverityWarning = types.SeverityWarning
	SeverityInfo    = types.SeverityInfo
)

// Sentinel errors for errors.Is.
var (
	ErrSyntax = types.ErrSyntax
	ErrCycle  = types.ErrCycle
)

// DiagCodes lists every diagnostic code with the phase that raises it.
func DiagCodes() []types.DiagCodeInfo {
	return types.AllDiagnosticCodes()
}

// DiagnosticOf converts an error returned by Order into a Diagnostic.
func DiagnosticOf(err error) Diagnostic {
	return types.DiagnosticFromError(err)
}
