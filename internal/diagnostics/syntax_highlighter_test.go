package diagnostics

import (
	"strings"
	"testing"

	"minic/colors"
)

func TestSyntaxHighlighter_RoundTrip(t *testing.T) {
	sh := NewSyntaxHighlighter(true)
	line := "function main() { return 1 + 22; }"

	var joined strings.Builder
	for _, span := range sh.Highlight(line) {
		joined.WriteString(span.Text)
	}
	if joined.String() != line {
		t.Errorf("spans do not rebuild the line: %q", joined.String())
	}
	if colors.StripANSI(sh.HighlightLine(line)) != line {
		t.Error("stripping colors should give back the line")
	}
}

func TestSyntaxHighlighter_Colors(t *testing.T) {
	sh := NewSyntaxHighlighter(true)
	spans := sh.Highlight("return 42 x")

	want := map[string]colors.COLOR{
		"return": colors.PURPLE,
		"42":     colors.LIGHT_YELLOW,
		"x":      colors.WHITE,
	}
	for _, span := range spans {
		if color, ok := want[span.Text]; ok && span.Color != color {
			t.Errorf("span %q colored %q, want %q", span.Text, span.Color, color)
		}
	}
}

func TestSyntaxHighlighter_Disabled(t *testing.T) {
	sh := NewSyntaxHighlighter(false)
	if got := sh.HighlightLine("return 1"); got != "return 1" {
		t.Errorf("disabled highlighter changed the line: %q", got)
	}
}
