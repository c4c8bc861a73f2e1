package lexer

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestCursorAdvance(t *testing.T) {
	c := NewCursor("ab\nc")
	assert.Equal(t, 'a', c.Peek())

	c = c.Advance().Advance()
	assert.Equal(t, '\n', c.Peek())
	assert.Equal(t, 1, c.Position().Row)
	assert.Equal(t, 3, c.Position().Column)

	c = c.Advance()
	assert.Equal(t, 'c', c.Peek())
	assert.Equal(t, 2, c.Position().Row)
	assert.Equal(t, 1, c.Position().Column)
	assert.Equal(t, 3, c.Index())
}

func TestCursorAdvanceAtEOFIsNoop(t *testing.T) {
	c := NewCursor("x").Advance()
	assert.True(t, c.AtEOF())
	assert.Equal(t, EOF, c.Peek())
	assert.Equal(t, c, c.Advance())
}

func TestCursorMultibyte(t *testing.T) {
	c := NewCursor("éa")
	c = c.Advance()
	assert.Equal(t, 'a', c.Peek())
	assert.Equal(t, 1, c.Index())
	assert.Equal(t, 2, c.Offset())
	assert.Equal(t, 2, c.Position().Column)
}

func TestCursorSkipWhile(t *testing.T) {
	c := NewCursor("   x").SkipWhile(unicode.IsSpace)
	assert.Equal(t, 'x', c.Peek())
	assert.Equal(t, 3, c.Index())

	end := NewCursor("   ").SkipWhile(unicode.IsSpace)
	assert.True(t, end.AtEOF())
}

func TestCursorSubstring(t *testing.T) {
	c := NewCursor("héllo").Advance()
	assert.Equal(t, "él", c.Substring(2))
	assert.Equal(t, "éllo", c.Substring(10))
	assert.Equal(t, "", c.Substring(0))
}

func TestCursorSlice(t *testing.T) {
	start := NewCursor("a = b")
	end := start.Advance().Advance().Advance()
	assert.Equal(t, "a =", start.Slice(end))
	assert.Equal(t, "", end.Slice(start))
}

func TestCursorString(t *testing.T) {
	assert.Equal(t, "row: 4; column: 1", NewCursorAt("x", 4).String())
}
