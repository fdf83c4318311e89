package colors

import (
	"fmt"
	"io"
	"strings"
)

func (c COLOR) Printf(format string, args ...any) {
	fmt.Printf(string(c)+format+string(RESET), args...)
}

func (c COLOR) Println(args ...any) {
	fmt.Print(string(c))
	fmt.Println(args...)
	fmt.Print(string(RESET))
}

func (c COLOR) Fprintf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, string(c)+format+string(RESET), args...)
}

func (c COLOR) Fprintln(w io.Writer, args ...any) {
	fmt.Fprint(w, string(c))
	fmt.Fprintln(w, args...)
	fmt.Fprint(w, string(RESET))
}

func (c COLOR) Fprint(w io.Writer, args ...any) {
	fmt.Fprint(w, string(c))
	fmt.Fprint(w, args...)
	fmt.Fprint(w, string(RESET))
}

func (c COLOR) Sprintf(format string, args ...any) string {
	return string(c) + fmt.Sprintf(format, args...) + string(RESET)
}

// StripANSI removes ANSI color codes from a string
func StripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			inEscape = true
			i++
			continue
		}
		if inEscape {
			if (s[i] >= 'A' && s[i] <= 'Z') || (s[i] >= 'a' && s[i] <= 'z') {
				inEscape = false
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

var ansiToHTML = []struct {
	ansi COLOR
	html string
}{
	{ORANGE, `<span style="color: #ff8700">`},
	{LIGHT_ORANGE, `<span style="color: #d19a66">`},
	{BOLD_RED, `<span style="color: #ef4444; font-weight: bold">`},
	{BOLD_GREEN, `<span style="color: #10b981; font-weight: bold">`},
	{BOLD_YELLOW, `<span style="color: #f59e0b; font-weight: bold">`},
	{BOLD_BLUE, `<span style="color: #3b82f6; font-weight: bold">`},
	{BOLD_PURPLE, `<span style="color: #a855f7; font-weight: bold">`},
	{BOLD_CYAN, `<span style="color: #56b6c2; font-weight: bold">`},
	{RED, `<span style="color: #ef4444">`},
	{GREEN, `<span style="color: #10b981">`},
	{YELLOW, `<span style="color: #f59e0b">`},
	{BLUE, `<span style="color: #3b82f6">`},
	{PURPLE, `<span style="color: #c678dd; font-weight: bold">`},
	{CYAN, `<span style="color: #56b6c2">`},
	{WHITE, `<span style="color: #f3f4f6">`},
	{GREY, `<span style="color: #5c6370">`},
	{LIGHT_YELLOW, `<span style="color: #ffffaf">`},
	{BOLD, `<span style="font-weight: bold">`},
	{RESET, `</span>`},
}

// ConvertANSIToHTML converts ANSI color codes to HTML span tags
func ConvertANSIToHTML(text string) string {
	result := strings.ReplaceAll(text, "&", "&amp;")
	result = strings.ReplaceAll(result, "<", "&lt;")
	result = strings.ReplaceAll(result, ">", "&gt;")

	for _, pair := range ansiToHTML {
		result = strings.ReplaceAll(result, string(pair.ansi), pair.html)
	}

	result = strings.ReplaceAll(result, "\n", "<br>")
	result = strings.ReplaceAll(result, "  ", "&nbsp;&nbsp;")

	return result
}
