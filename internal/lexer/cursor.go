package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/golangsnmp/formulaorder/internal/types"
)

// EOF is returned by Cursor.Peek at the end of the text.
const EOF rune = -1

// Cursor is an immutable position in a text. Advancing returns a new
// Cursor; the zero-cost copy makes cursors safe to share.
type Cursor struct {
	text   string
	offset int // byte offset into text
	index  int // rune index into text
	row    int
	col    int
}

// NewCursor returns a cursor at the start of text, at row 1, column 1.
func NewCursor(text string) Cursor {
	return NewCursorAt(text, 1)
}

// NewCursorAt returns a cursor at the start of text whose rows are
// numbered from row. Used when each input line is lexed on its own.
func NewCursorAt(text string, row int) Cursor {
	return Cursor{text: text, row: row, col: 1}
}

// Peek returns the rune at the cursor, or EOF.
func (c Cursor) Peek() rune {
	if c.offset >= len(c.text) {
		return EOF
	}
	r, _ := utf8.DecodeRuneInString(c.text[c.offset:])
	return r
}

// Advance returns the cursor one rune ahead. A newline moves to the next
// row. Advancing at the end of the text returns c unchanged.
func (c Cursor) Advance() Cursor {
	if c.offset >= len(c.text) {
		return c
	}
	r, size := utf8.DecodeRuneInString(c.text[c.offset:])
	next := c
	next.offset += size
	next.index++
	if r == '\n' {
		next.row++
		next.col = 1
	} else {
		next.col++
	}
	return next
}

// Satisfies reports whether pred holds for the rune at the cursor.
func (c Cursor) Satisfies(pred func(rune) bool) bool {
	return pred(c.Peek())
}

// SkipWhile advances while pred holds for the current rune.
func (c Cursor) SkipWhile(pred func(rune) bool) Cursor {
	for c.offset < len(c.text) && c.Satisfies(pred) {
		c = c.Advance()
	}
	return c
}

// Substring returns up to n runes starting at the cursor.
func (c Cursor) Substring(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		r := c.Peek()
		if r == EOF {
			break
		}
		b.WriteRune(r)
		c = c.Advance()
	}
	return b.String()
}

// Slice returns the text between c and end.
func (c Cursor) Slice(end Cursor) string {
	if end.offset < c.offset {
		return ""
	}
	return c.text[c.offset:end.offset]
}

// Index returns the rune index of the cursor.
func (c Cursor) Index() int { return c.index }

// Offset returns the byte offset of the cursor.
func (c Cursor) Offset() int { return c.offset }

// AtEOF reports whether the cursor is at the end of the text.
func (c Cursor) AtEOF() bool { return c.offset >= len(c.text) }

// Position returns the row/column location of the cursor.
func (c Cursor) Position() types.Position {
	return types.Position{Index: c.index, Row: c.row, Column: c.col}
}

// String returns "row: R; column: C".
func (c Cursor) String() string {
	return c.Position().String()
}
