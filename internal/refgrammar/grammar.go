// Package refgrammar is a declarative grammar for formula declaration
// lines, built with participle. It is an independent implementation of
// the language accepted by the parser package and is used to cross-check
// it.
package refgrammar

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// Declaration is one parsed line: Names '=' Formulas.
type Declaration struct {
	Names    []string `@Ident ( "," @Ident )*`
	Formulas []*Sum   `"=" @@ ( "," @@ )*`
}

// Sum is Mul [ ('+'|'-') Sum ].
type Sum struct {
	Left  *Mul   `@@`
	Op    string `( @( "+" | "-" )`
	Right *Sum   `  @@ )?`
}

// Mul is Var [ ('*'|'/') Mul ].
type Mul struct {
	Left  *Var   `@@`
	Op    string `( @( "*" | "/" )`
	Right *Mul   `  @@ )?`
}

// Var is NUMBER | IDENT | '(' Sum ')' | ('+'|'-') Var.
type Var struct {
	Number *string `  @Number`
	Ident  *string `| @Ident`
	Group  *Sum    `| "(" @@ ")"`
	Signed *Signed `| @@`
}

// Signed is a unary sign applied to a Var.
type Signed struct {
	Op      string `@( "+" | "-" )`
	Operand *Var   `@@`
}

var declLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `\p{L}[\p{L}\p{Nd}]*`},
	{Name: "Number", Pattern: `\p{Nd}+`},
	{Name: "Punct", Pattern: `[-+*/(),=;]`},
	{Name: "Whitespace", Pattern: `[\s\v\x{85}\p{Z}]+`},
})

var declParser = participle.MustBuild[Declaration](
	participle.Lexer(declLexer),
	participle.Elide("Whitespace"),
)

// Parse parses a single declaration line.
func Parse(line string) (*Declaration, error) {
	decl, err := declParser.ParseString("", line)
	if err != nil {
		return nil, errors.Wrap(err, "reference grammar")
	}
	return decl, nil
}

// Validate reports whether line is a declaration.
func Validate(line string) error {
	_, err := Parse(line)
	return err
}

// Calls returns, for each formula, the identifiers it references in
// first-reference order without duplicates.
func (d *Declaration) Calls() [][]string {
	calls := make([][]string, len(d.Formulas))
	for i, f := range d.Formulas {
		seen := make(map[string]bool)
		f.walk(func(name string) {
			if !seen[name] {
				seen[name] = true
				calls[i] = append(calls[i], name)
			}
		})
	}
	return calls
}

func (s *Sum) walk(fn func(string)) {
	for ; s != nil; s = s.Right {
		s.Left.walk(fn)
	}
}

func (m *Mul) walk(fn func(string)) {
	for ; m != nil; m = m.Right {
		m.Left.walk(fn)
	}
}

func (v *Var) walk(fn func(string)) {
	switch {
	case v.Ident != nil:
		fn(*v.Ident)
	case v.Group != nil:
		v.Group.walk(fn)
	case v.Signed != nil:
		v.Signed.Operand.walk(fn)
	}
}
