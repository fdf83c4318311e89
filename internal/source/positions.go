package source

import (
	"fmt"
	"unicode/utf8"
)

// Position represents a specific location in the source code with line, column, and index information.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column, counted in runes
	Index  int // byte offset into the source
}

// Start returns the position of the first byte of a source text.
func Start() Position {
	return Position{Line: 1, Column: 1, Index: 0}
}

// Advance moves the position past every rune of toSkip.
// Newlines bump the line and reset the column; Index advances by the bytes
// actually consumed, so an invalid byte counts as one byte and one column.
func (p *Position) Advance(toSkip string) *Position {
	for len(toSkip) > 0 {
		char, size := utf8.DecodeRuneInString(toSkip)
		if char == '\n' {
			p.Line++
			p.Column = 1
		} else {
			p.Column++
		}
		p.Index += size
		toSkip = toSkip[size:]
	}
	return p
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
