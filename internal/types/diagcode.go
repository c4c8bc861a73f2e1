package types

// Diagnostic codes emitted by the lexer, parser, and graph phases.
// Centralizing these prevents silent breakage from typos in string literals.

// Lexer diagnostic codes.
const (
	DiagUnknownCharacter   = "unknown-character"
	DiagLettersAfterDigits = "letters-after-digits"
)

// Parser diagnostic codes.
const (
	DiagUnexpectedToken     = "unexpected-token"
	DiagBadDeclaration      = "bad-declaration"
	DiagDuplicateDefinition = "duplicate-definition"
	DiagUndefinedFormula    = "undefined-formula"
	DiagNestingTooDeep      = "nesting-too-deep"
	DiagSameLineCycle       = "same-line-cycle"
	DiagGrammarMismatch     = "grammar-mismatch"
)

// Graph diagnostic codes.
const (
	DiagDependencyCycle = "dependency-cycle"
)

// AllDiagnosticCodes returns all known diagnostic codes grouped by phase.
func AllDiagnosticCodes() []DiagCodeInfo {
	return []DiagCodeInfo{
		// Lexer
		{Code: DiagUnknownCharacter, Phase: "lexer"},
		{Code: DiagLettersAfterDigits, Phase: "lexer"},
		// Parser
		{Code: DiagUnexpectedToken, Phase: "parser"},
		{Code: DiagBadDeclaration, Phase: "parser"},
		{Code: DiagDuplicateDefinition, Phase: "parser"},
		{Code: DiagUndefinedFormula, Phase: "parser"},
		{Code: DiagNestingTooDeep, Phase: "parser"},
		{Code: DiagSameLineCycle, Phase: "parser"},
		{Code: DiagGrammarMismatch, Phase: "parser"},
		// Graph
		{Code: DiagDependencyCycle, Phase: "graph"},
	}
}

// DiagCodeInfo describes a diagnostic code and the phase that emits it.
type DiagCodeInfo struct {
	Code  string
	Phase string
}
