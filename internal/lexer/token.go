// Package lexer provides tokenization for formula declaration lines.
package lexer

// TokenKind identifies a token type.
type TokenKind int

const (
	// TokEOF is end of text.
	TokEOF TokenKind = iota
	// TokSemicolon is ';'.
	TokSemicolon
	// TokLParen is '('.
	TokLParen
	// TokRParen is ')'.
	TokRParen
	// TokEqual is '='.
	TokEqual
	// TokSumSign is '+' or '-'.
	TokSumSign
	// TokMulSign is '*' or '/'.
	TokMulSign
	// TokComma is ','.
	TokComma
	// TokIdent is a letter followed by letters or digits.
	TokIdent
	// TokNumber is a run of digits.
	TokNumber
)

// String returns the name used in parser error messages.
func (k TokenKind) String() string {
	switch k {
	case TokEOF:
		return "END OF TEXT"
	case TokSemicolon:
		return ";"
	case TokLParen:
		return "("
	case TokRParen:
		return ")"
	case TokEqual:
		return "="
	case TokSumSign:
		return "+ or -"
	case TokMulSign:
		return "* or /"
	case TokComma:
		return ","
	case TokIdent:
		return "IDENT"
	case TokNumber:
		return "NUMBER"
	default:
		return "UNKNOWN"
	}
}

// Token is a classified span [Start, Follow) of the text.
type Token struct {
	Kind   TokenKind
	Start  Cursor
	Follow Cursor
}

// Text returns the source text of the token.
func (t Token) Text() string {
	return t.Start.Slice(t.Follow)
}

// Is reports whether the token has one of the given kinds.
func (t Token) Is(kinds ...TokenKind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}

// Next lexes the token that follows t.
func (t Token) Next() (Token, error) {
	return Scan(t.Follow)
}
