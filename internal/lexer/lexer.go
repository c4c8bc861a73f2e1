package lexer

import (
	"log/slog"
	"unicode"

	"github.com/golangsnmp/formulaorder/internal/types"
)

// Scan skips whitespace at start and classifies the token that begins
// there. Lexical failures are returned as *types.SyntaxError.
func Scan(start Cursor) (Token, error) {
	start = start.SkipWhile(unicode.IsSpace)
	tok := Token{Start: start, Follow: start.Advance()}

	switch r := start.Peek(); r {
	case EOF:
		tok.Kind = TokEOF
	case ';':
		tok.Kind = TokSemicolon
	case '(':
		tok.Kind = TokLParen
	case ')':
		tok.Kind = TokRParen
	case '=':
		tok.Kind = TokEqual
	case '+', '-':
		tok.Kind = TokSumSign
	case '*', '/':
		tok.Kind = TokMulSign
	case ',':
		tok.Kind = TokComma
	default:
		switch {
		case unicode.IsLetter(r):
			tok.Follow = tok.Follow.SkipWhile(isLetterOrDigit)
			tok.Kind = TokIdent
		case unicode.IsDigit(r):
			tok.Follow = tok.Follow.SkipWhile(unicode.IsDigit)
			if tok.Follow.Satisfies(unicode.IsLetter) {
				return tok, types.NewSyntaxError(types.DiagLettersAfterDigits,
					tok.Follow.Position(), "letters after series of digits")
			}
			tok.Kind = TokNumber
		default:
			return tok, types.NewSyntaxError(types.DiagUnknownCharacter,
				start.Position(), "unknown character %q", r)
		}
	}
	return tok, nil
}

func isLetterOrDigit(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Lexer produces a forward-only token stream over one text, logging each
// token at trace level.
type Lexer struct {
	tok Token
	types.Logger
}

// New returns a Lexer positioned on the first token of text. Rows are
// numbered from row.
func New(text string, row int, logger *slog.Logger) (*Lexer, error) {
	l := &Lexer{Logger: types.Logger{L: logger}}
	tok, err := Scan(NewCursorAt(text, row))
	if err != nil {
		return nil, err
	}
	l.set(tok)
	return l, nil
}

// Token returns the current token.
func (l *Lexer) Token() Token {
	return l.tok
}

// Advance moves to the next token and returns it. At end of text the
// END OF TEXT token repeats.
func (l *Lexer) Advance() (Token, error) {
	tok, err := l.tok.Next()
	if err != nil {
		return Token{}, err
	}
	l.set(tok)
	return tok, nil
}

func (l *Lexer) set(tok Token) {
	l.tok = tok
	if l.TraceEnabled() {
		pos := tok.Start.Position()
		l.Trace("token",
			slog.String("kind", tok.Kind.String()),
			slog.String("text", tok.Text()),
			slog.Int("row", pos.Row),
			slog.Int("column", pos.Column))
	}
}

// Tokenize lexes all of text and returns the tokens, including the final
// END OF TEXT token.
func Tokenize(text string) ([]Token, error) {
	tok, err := Scan(NewCursor(text))
	if err != nil {
		return nil, err
	}
	tokens := []Token{tok}
	for tok.Kind != TokEOF {
		if tok, err = tok.Next(); err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
