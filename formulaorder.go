// Package formulaorder orders formula declarations so that every formula
// comes after the formulas it depends on.
//
// Each input line declares one or more names and the same number of
// arithmetic formulas:
//
//	x, y = a * (b + a), -c / 2
//	a, b, c = 1, 2, 3
//
// Order returns the lines in dependency order, or an error that Message
// maps to "syntax error" or "cycle".
package formulaorder

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/golangsnmp/formulaorder/internal/graph"
	"github.com/golangsnmp/formulaorder/internal/parser"
	"github.com/golangsnmp/formulaorder/internal/types"
)

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-item iteration logging (tokens, DFS visits).
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = types.LevelTrace

// Option configures Order and Check.
type Option func(*config)

type config struct {
	logger     *slog.Logger
	maxNesting int
	crossCheck bool
	source     string
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs (zero overhead).
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithMaxNesting bounds the depth of parentheses and unary signs in a
// single expression. Zero, the default, means unlimited.
func WithMaxNesting(n int) Option {
	return func(c *config) { c.maxNesting = n }
}

// WithCrossCheck makes Check compare each line against an independent
// grammar and report lines the two disagree on.
func WithCrossCheck(on bool) Option {
	return func(c *config) { c.crossCheck = on }
}

// WithSourceName sets the input name recorded in diagnostics.
func WithSourceName(name string) Option {
	return func(c *config) { c.source = name }
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Order parses src and returns its formulas in dependency order. The
// error, if any, satisfies errors.Is with ErrSyntax or ErrCycle.
//
// One trailing line terminator is ignored; any other empty line,
// including an empty src, is a syntax error.
func Order(src []byte, opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	logger := types.Logger{L: cfg.logger}

	res, err := parse(trimLineTerminator(string(src)), cfg)
	if err != nil {
		return nil, err
	}
	if err := res.Graph.Sort(res.Formulas); err != nil {
		return nil, err
	}

	out := buildResult(res.Graph, res.Graph.Ordered(res.Formulas))
	logger.Log(slog.LevelInfo, "formulas ordered", slog.Int("formulas", len(out.Formulas)))
	return out, nil
}

func parse(text string, cfg config) (*parser.Result, error) {
	p := parser.New(cfg.logger, parser.Options{MaxNesting: cfg.maxNesting})
	return p.Parse(text)
}

// trimLineTerminator drops one final "\r\n", "\n", or "\r".
func trimLineTerminator(s string) string {
	switch {
	case strings.HasSuffix(s, "\r\n"):
		return s[:len(s)-2]
	case strings.HasSuffix(s, "\n"), strings.HasSuffix(s, "\r"):
		return s[:len(s)-1]
	}
	return s
}

// Message returns the single-line outcome for err: "syntax error",
// "cycle", or the error text for anything else.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrSyntax):
		return ErrSyntax.Error()
	case errors.Is(err, ErrCycle):
		return ErrCycle.Error()
	case err == nil:
		return ""
	}
	return err.Error()
}

func buildResult(g *graph.Graph, ordered []graph.Handle) *Result {
	out := &Result{Formulas: make([]Formula, len(ordered))}
	for i, h := range ordered {
		v := g.Vertex(h)
		out.Formulas[i] = Formula{
			Label:     v.Name,
			Line:      v.Line,
			Declares:  g.Names(v.Declared),
			Calls:     g.Names(v.Called),
			DependsOn: g.Names(g.Dependencies(h)),
			Rank:      v.ExitRank,
		}
	}
	return out
}
