package diagnostics

import (
	"fmt"
	"io"
	"strings"

	"minic/colors"
	"minic/internal/tokens"
)

// SyntaxHighlighter colors source snippets quoted in diagnostics
type SyntaxHighlighter struct {
	enabled bool
}

func NewSyntaxHighlighter(enabled bool) *SyntaxHighlighter {
	return &SyntaxHighlighter{enabled: enabled}
}

// Span is a run of source text with the color it is printed in
type Span struct {
	Text  string
	Color colors.COLOR
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// Highlight splits a line into colored spans. Concatenating the span texts
// always yields the input line.
func (sh *SyntaxHighlighter) Highlight(line string) []Span {
	if !sh.enabled {
		return []Span{{Text: line, Color: colors.WHITE}}
	}

	var spans []Span
	i := 0
	for i < len(line) {
		start := i
		switch {
		case isDigit(line[i]):
			for i < len(line) && isDigit(line[i]) {
				i++
			}
			spans = append(spans, Span{Text: line[start:i], Color: colors.LIGHT_YELLOW})
		case isIdentStart(line[i]):
			for i < len(line) && (isIdentStart(line[i]) || isDigit(line[i])) {
				i++
			}
			word := line[start:i]
			color := colors.WHITE
			if tokens.IsKeyword(word) {
				color = colors.PURPLE
			}
			spans = append(spans, Span{Text: word, Color: color})
		default:
			i++
			spans = append(spans, Span{Text: line[start:i], Color: colors.WHITE})
		}
	}
	return spans
}

// HighlightLine returns a highlighted line as a string ready for printing
func (sh *SyntaxHighlighter) HighlightLine(line string) string {
	if !sh.enabled {
		return line
	}
	var result strings.Builder
	sh.HighlightWithColor(line, &result)
	return result.String()
}

// HighlightWithColor writes the highlighted line to writer
func (sh *SyntaxHighlighter) HighlightWithColor(line string, writer io.Writer) {
	if !sh.enabled {
		fmt.Fprint(writer, line)
		return
	}
	for _, span := range sh.Highlight(line) {
		span.Color.Fprint(writer, span.Text)
	}
}
