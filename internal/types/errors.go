package types

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors matched with errors.Is.
var (
	ErrSyntax = errors.New("syntax error")
	ErrCycle  = errors.New("cycle")
)

// SyntaxError reports a lexical, grammar, or name-resolution failure.
type SyntaxError struct {
	Code    string
	Pos     Position
	Message string
}

// NewSyntaxError returns a SyntaxError at pos.
func NewSyntaxError(code string, pos Position, format string, args ...any) *SyntaxError {
	return &SyntaxError{Code: code, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

func (e *SyntaxError) Error() string {
	if e.Pos.IsZero() {
		return e.Message
	}
	return "error at " + e.Pos.String() + ": " + e.Message
}

// Is makes errors.Is(err, ErrSyntax) succeed.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// CycleError reports a circular dependency between formulas.
type CycleError struct {
	Code    string
	Line    int      // line of the declaration where the cycle was detected
	Members []string // names or labels along the cycle, in dependency order
}

func (e *CycleError) Error() string {
	if len(e.Members) == 0 {
		return "cycle detected"
	}
	return "cycle detected: " + strings.Join(e.Members, " -> ")
}

// Is makes errors.Is(err, ErrCycle) succeed.
func (e *CycleError) Is(target error) bool {
	return target == ErrCycle
}
