package formulaorder

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/golangsnmp/formulaorder/internal/graph"
	"github.com/golangsnmp/formulaorder/internal/parser"
	"github.com/golangsnmp/formulaorder/internal/refgrammar"
	"github.com/golangsnmp/formulaorder/internal/types"
)

// Report is the outcome of Check.
type Report struct {
	// Result is the ordering, nil when any error diagnostic was raised.
	Result      *Result      `json:"result,omitempty" yaml:"result,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics" yaml:"diagnostics"`
}

// HasErrors reports whether any diagnostic is an error.
func (r Report) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Err returns the first error diagnostic as an error, or nil.
func (r Report) Err() error {
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityError {
			return &DiagnosticError{Diagnostic: d}
		}
	}
	return nil
}

// DiagnosticError carries an error diagnostic from a Report.
type DiagnosticError struct {
	Diagnostic Diagnostic
}

func (e *DiagnosticError) Error() string {
	return e.Diagnostic.String()
}

// Is matches ErrCycle for cycle codes and ErrSyntax for the rest.
func (e *DiagnosticError) Is(target error) bool {
	switch e.Diagnostic.Code {
	case types.DiagDependencyCycle, types.DiagSameLineCycle:
		return target == ErrCycle
	}
	return target == ErrSyntax
}

// Check parses and sorts src like Order but collects problems as
// diagnostics instead of stopping at the first one. A dependency cycle
// yields one diagnostic per cycle group.
func Check(src []byte, opts ...Option) Report {
	cfg := newConfig(opts)
	logger := types.Logger{L: cfg.logger}
	text := trimLineTerminator(string(src))

	var report Report
	if cfg.crossCheck {
		for _, d := range crossCheck(text) {
			report.add(cfg, d)
		}
	}

	res, err := parse(text, cfg)
	if err != nil {
		report.add(cfg, types.DiagnosticFromError(err))
		return report
	}

	if err := res.Graph.Sort(res.Formulas); err != nil {
		cycles := res.Graph.FindCycles(res.Formulas)
		for _, cyc := range cycles {
			report.add(cfg, cycleDiagnostic(res.Graph, cyc))
		}
		if len(cycles) == 0 {
			report.add(cfg, types.DiagnosticFromError(err))
		}
		logger.Log(slog.LevelDebug, "cycle groups found", slog.Int("groups", len(cycles)))
		return report
	}

	report.Result = buildResult(res.Graph, res.Graph.Ordered(res.Formulas))
	return report
}

func (r *Report) add(cfg config, d Diagnostic) {
	d.Source = cfg.source
	r.Diagnostics = append(r.Diagnostics, d)
}

// cycleDiagnostic describes one strongly connected group of formulas.
// The reported line is the earliest declaration in the group.
func cycleDiagnostic(g *graph.Graph, cyc []graph.Handle) Diagnostic {
	line := 0
	for _, h := range cyc {
		if l := g.Vertex(h).Line; line == 0 || l < line {
			line = l
		}
	}
	members := g.Names(cyc)
	if len(cyc) == 1 {
		members = append(members, members[0])
	}
	return Diagnostic{
		Severity: SeverityError,
		Code:     types.DiagDependencyCycle,
		Message:  fmt.Sprintf("formulas depend on each other: %s", strings.Join(members, " | ")),
		Line:     line,
	}
}

// crossCheck flags lines that the parser and the reference grammar do not
// agree on. Name rules are not part of either check.
func crossCheck(text string) []Diagnostic {
	var diags []Diagnostic
	for i, line := range strings.Split(text, "\n") {
		own := parser.CheckLine(line)
		ref := refgrammar.Validate(line)
		if (own == nil) == (ref == nil) {
			continue
		}
		msg := "accepted by the parser, rejected by the reference grammar"
		if own != nil {
			msg = "rejected by the parser, accepted by the reference grammar"
		}
		diags = append(diags, Diagnostic{
			Severity: SeverityWarning,
			Code:     types.DiagGrammarMismatch,
			Message:  msg,
			Line:     i + 1,
		})
	}
	return diags
}
