// Package parser turns formula declaration text into a dependency graph.
//
// Each input line is one declaration and is lexed as its own token
// stream:
//
//	DeclLine := Names '=' Formulas END_OF_TEXT
//	Names    := IDENT [ ',' Names ]
//	Formulas := Sum [ ',' Formulas ]
//	Sum      := Mul [ ('+'|'-') Sum ]
//	Mul      := Var [ ('*'|'/') Mul ]
//	Var      := NUMBER | IDENT | '(' Sum ')' | ('+'|'-') Var
//
// Parsing stops at the first error. Lexical, grammar, and name
// resolution failures are *types.SyntaxError; a name that depends on a
// sibling declared on the same line is a *types.CycleError.
package parser

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/golangsnmp/formulaorder/internal/graph"
	"github.com/golangsnmp/formulaorder/internal/lexer"
	"github.com/golangsnmp/formulaorder/internal/types"
)

// Options controls parser limits.
type Options struct {
	// MaxNesting bounds the depth of parentheses and unary signs in one
	// expression. Zero means unlimited.
	MaxNesting int
}

// Result is the outcome of a successful Parse.
type Result struct {
	Graph *graph.Graph
	// Formulas holds one vertex per declaration line, in input order,
	// already linked to the formulas they depend on.
	Formulas []graph.Handle
}

// Parser converts declaration lines into graph vertices.
type Parser struct {
	g         *graph.Graph
	lex       *lexer.Lexer
	lexLogger *slog.Logger
	opts      Options

	defined   *linkedhashset.Set // declared names (string)
	called    *linkedhashset.Set // called names (string), first-call order
	firstCall map[string]types.Position

	decls    []graph.Handle
	calls    []*linkedhashset.Set // one bucket of graph.Handle per sub-formula
	formulas []graph.Handle
	depth    int

	syntaxOnly bool
	types.Logger
}

// New returns a Parser. Pass nil for logger to disable logging.
func New(logger *slog.Logger, opts Options) *Parser {
	return &Parser{
		g:         graph.New(types.ComponentLogger(logger, "graph")),
		lexLogger: types.ComponentLogger(logger, "lexer"),
		opts:      opts,
		defined:   linkedhashset.New(),
		called:    linkedhashset.New(),
		firstCall: make(map[string]types.Position),
		Logger:    types.Logger{L: logger},
	}
}

// Parse parses every line of text, checks that all called names are
// declared, and links the formula vertices. A Parser is single use.
func (p *Parser) Parse(text string) (*Result, error) {
	// A text ending in "\n" has a final empty line, which is rejected.
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		if err := p.parseLine(line, i+1); err != nil {
			p.Log(slog.LevelDebug, "parse failed", slog.Int("line", i+1), slog.String("error", err.Error()))
			return nil, err
		}
	}

	if err := p.checkUndefined(); err != nil {
		return nil, err
	}

	p.g.Link(p.formulas)

	p.Log(slog.LevelDebug, "parse complete",
		slog.Int("lines", len(lines)),
		slog.Int("formulas", len(p.formulas)),
		slog.Int("names", p.defined.Size()))

	return &Result{Graph: p.g, Formulas: p.formulas}, nil
}

// CheckLine reports whether line is lexically and grammatically a
// declaration, ignoring name rules (duplicates, arity, cycles).
func CheckLine(line string) error {
	p := New(nil, Options{})
	p.syntaxOnly = true
	return p.parseLine(line, 1)
}

func (p *Parser) parseLine(line string, row int) error {
	lex, err := lexer.New(line, row, p.lexLogger)
	if err != nil {
		return err
	}
	p.lex = lex
	start := p.tok().Start

	p.decls = p.decls[:0]
	p.calls = p.calls[:0]

	if err := p.parseNames(); err != nil {
		return err
	}
	if err := p.expect(lexer.TokEqual); err != nil {
		return err
	}
	if err := p.parseFormulas(); err != nil {
		return err
	}
	if p.syntaxOnly {
		return p.expect(lexer.TokEOF)
	}

	if len(p.decls) != len(p.calls) {
		return types.NewSyntaxError(types.DiagBadDeclaration, p.tok().Start.Position(),
			"Bad declaration: %d names for %d formulas", len(p.decls), len(p.calls))
	}

	calledInLine := linkedhashset.New()
	for i, decl := range p.decls {
		for _, v := range p.calls[i].Values() {
			callee := v.(graph.Handle)
			p.g.AddEdge(decl, callee)
			if slices.Contains(p.decls, callee) {
				return &types.CycleError{
					Code:    types.DiagSameLineCycle,
					Line:    row,
					Members: []string{p.g.Name(decl), p.g.Name(callee)},
				}
			}
			calledInLine.Add(callee)
		}
	}

	finish := p.tok().Start
	label := start.Substring(finish.Index() - start.Index())
	label = strings.ReplaceAll(label, "\r", "")

	called := make([]graph.Handle, 0, calledInLine.Size())
	for _, v := range calledInLine.Values() {
		called = append(called, v.(graph.Handle))
	}
	f := p.g.AddFormula(label, row, p.decls, called)
	p.formulas = append(p.formulas, f)

	p.Log(slog.LevelDebug, "declaration parsed",
		slog.Int("line", row),
		slog.Any("declares", p.g.Names(p.decls)),
		slog.Any("calls", p.g.Names(called)))

	return p.expect(lexer.TokEOF)
}

func (p *Parser) parseNames() error {
	for {
		tok := p.tok()
		if !tok.Is(lexer.TokIdent) {
			return p.expect(lexer.TokIdent)
		}

		name := tok.Text()
		if !p.syntaxOnly {
			if p.defined.Contains(name) {
				return types.NewSyntaxError(types.DiagDuplicateDefinition, tok.Start.Position(),
					"formula %q was already defined", name)
			}
			p.defined.Add(name)
			p.decls = append(p.decls, p.g.Intern(name))
		}

		if err := p.advance(); err != nil {
			return err
		}
		if !p.tok().Is(lexer.TokComma) {
			return nil
		}
		if err := p.advance(); err != nil {
			return err
		}
	}
}

func (p *Parser) parseFormulas() error {
	for {
		p.calls = append(p.calls, linkedhashset.New())
		if err := p.parseSum(); err != nil {
			return err
		}
		if !p.tok().Is(lexer.TokComma) {
			return nil
		}
		if err := p.advance(); err != nil {
			return err
		}
	}
}

func (p *Parser) parseSum() error {
	for {
		if err := p.parseMul(); err != nil {
			return err
		}
		if !p.tok().Is(lexer.TokSumSign) {
			return nil
		}
		if err := p.advance(); err != nil {
			return err
		}
	}
}

func (p *Parser) parseMul() error {
	for {
		if err := p.parseVar(); err != nil {
			return err
		}
		if !p.tok().Is(lexer.TokMulSign) {
			return nil
		}
		if err := p.advance(); err != nil {
			return err
		}
	}
}

func (p *Parser) parseVar() error {
	tok := p.tok()
	switch tok.Kind {
	case lexer.TokNumber:
		return p.advance()

	case lexer.TokIdent:
		p.recordCall(tok)
		return p.advance()

	case lexer.TokLParen:
		if err := p.enter(tok); err != nil {
			return err
		}
		defer p.leave()
		if err := p.advance(); err != nil {
			return err
		}
		if err := p.parseSum(); err != nil {
			return err
		}
		return p.expect(lexer.TokRParen)

	case lexer.TokSumSign:
		if err := p.enter(tok); err != nil {
			return err
		}
		defer p.leave()
		if err := p.advance(); err != nil {
			return err
		}
		return p.parseVar()
	}

	return types.NewSyntaxError(types.DiagUnexpectedToken, tok.Start.Position(),
		"UNKNOWN TOKEN %s", tok.Kind)
}

func (p *Parser) recordCall(tok lexer.Token) {
	if p.syntaxOnly {
		return
	}
	name := tok.Text()
	p.calls[len(p.calls)-1].Add(p.g.Intern(name))
	if !p.called.Contains(name) {
		p.called.Add(name)
		p.firstCall[name] = tok.Start.Position()
	}
}

func (p *Parser) enter(tok lexer.Token) error {
	p.depth++
	if p.opts.MaxNesting > 0 && p.depth > p.opts.MaxNesting {
		p.depth--
		return types.NewSyntaxError(types.DiagNestingTooDeep, tok.Start.Position(),
			"expression nesting exceeds %d", p.opts.MaxNesting)
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// checkUndefined rejects names that are called but never declared. The
// error points at the first call of the first such name.
func (p *Parser) checkUndefined() error {
	var undefined []string
	for _, v := range p.called.Values() {
		if name := v.(string); !p.defined.Contains(name) {
			undefined = append(undefined, name)
		}
	}
	if len(undefined) == 0 {
		return nil
	}
	return types.NewSyntaxError(types.DiagUndefinedFormula, p.firstCall[undefined[0]],
		"Some of the formulas remained undefined: %s", strings.Join(undefined, ", "))
}

func (p *Parser) tok() lexer.Token {
	return p.lex.Token()
}

func (p *Parser) advance() error {
	_, err := p.lex.Advance()
	return err
}

func (p *Parser) expect(kind lexer.TokenKind) error {
	tok := p.tok()
	if tok.Kind != kind {
		return types.NewSyntaxError(types.DiagUnexpectedToken, tok.Start.Position(),
			"Expected %s. Got %s", kind, tok.Kind)
	}
	return p.advance()
}
