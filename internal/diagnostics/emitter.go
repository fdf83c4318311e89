package diagnostics

import (
	"fmt"
	"io"
	"os"
	"strings"

	"minic/colors"
	"minic/internal/source"
)

const (
	STR_MULTIPLIER = "%*d | "
	LINE_POS       = "%s--> %s:%d:%d\n"
)

// SourceCache caches source file contents for error reporting
type SourceCache struct {
	files map[string][]string
}

func NewSourceCache() *SourceCache {
	return &SourceCache{
		files: make(map[string][]string),
	}
}

// AddSource stores in-memory content for filepath
func (sc *SourceCache) AddSource(filepath, content string) {
	sc.files[filepath] = source.SplitLines(content)
}

// GetLine retrieves a specific 1-based line, reading the file on first use
func (sc *SourceCache) GetLine(filepath string, line int) (string, error) {
	lines, ok := sc.files[filepath]
	if !ok {
		content, err := os.ReadFile(filepath)
		if err != nil {
			return "", err
		}
		lines = source.SplitLines(string(content))
		sc.files[filepath] = lines
	}
	if line > 0 && line <= len(lines) {
		return lines[line-1], nil
	}
	return "", fmt.Errorf("line %d out of range", line)
}

// Emitter handles the rendering and output of diagnostics
type Emitter struct {
	cache       *SourceCache
	writer      io.Writer
	highlighter *SyntaxHighlighter
	// line number width for the diagnostic being printed
	gutter int
}

// NewEmitter creates an emitter that writes to a specific writer
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{
		cache:       NewSourceCache(),
		writer:      w,
		highlighter: NewSyntaxHighlighter(true),
	}
}

func (e *Emitter) gutterWidth(diag *Diagnostic) int {
	maxLine := 0
	for _, label := range diag.Labels {
		if label.Location == nil || label.Location.Start == nil {
			continue
		}
		if label.Location.Start.Line > maxLine {
			maxLine = label.Location.Start.Line
		}
	}
	if maxLine == 0 {
		return 1
	}
	return len(fmt.Sprintf("%d", maxLine))
}

func (e *Emitter) Emit(diag *Diagnostic) {
	e.gutter = e.gutterWidth(diag)

	e.printHeader(diag)

	// primary first, then context labels
	for _, style := range []LabelStyle{Primary, Secondary} {
		for _, label := range diag.Labels {
			if label.Style == style {
				e.printLabel(diag.FilePath, label, diag.Severity)
			}
		}
	}

	for _, note := range diag.Notes {
		e.printNote(note)
	}

	if diag.Help != "" {
		e.printHelp(diag.Help)
	}

	fmt.Fprintln(e.writer)
}

func (e *Emitter) printHeader(diag *Diagnostic) {
	var color colors.COLOR
	switch diag.Severity {
	case Error:
		color = colors.BOLD_RED
	case Warning:
		color = colors.BOLD_YELLOW
	default:
		color = colors.BOLD_PURPLE
	}

	if diag.Severity == Error {
		color.Fprint(e.writer, diag.Kind.String())
	} else {
		color.Fprint(e.writer, diag.Severity.String())
	}
	if diag.Code != "" {
		fmt.Fprintf(e.writer, "[%s]", diag.Code)
	}
	fmt.Fprint(e.writer, ": ")
	color.Fprintln(e.writer, diag.Message)
}

func (e *Emitter) printLabel(filepath string, label Label, severity Severity) {
	if label.Location == nil || label.Location.Start == nil {
		return
	}

	start := label.Location.Start
	end := label.Location.End
	if end == nil || end.Line != start.Line {
		end = start
	}
	if f := label.Location.File(); f != "" {
		filepath = f
	}

	colors.BLUE.Fprintf(e.writer, LINE_POS, strings.Repeat(" ", e.gutter), filepath, start.Line, start.Column)
	fmt.Fprint(e.writer, strings.Repeat(" ", e.gutter))
	colors.GREY.Fprintln(e.writer, " |")

	if start.Line > 1 {
		prev, err := e.cache.GetLine(filepath, start.Line-1)
		if err == nil && strings.TrimSpace(prev) != "" {
			colors.GREY.Fprintf(e.writer, STR_MULTIPLIER, e.gutter, start.Line-1)
			colors.GREY.Fprintln(e.writer, prev)
		}
	}

	line, err := e.cache.GetLine(filepath, start.Line)
	if err != nil {
		return
	}
	colors.GREY.Fprintf(e.writer, STR_MULTIPLIER, e.gutter, start.Line)
	e.highlighter.HighlightWithColor(line, e.writer)
	fmt.Fprintln(e.writer)

	length := end.Column - start.Column
	if length <= 0 {
		length = 1
	}

	underlineColor := colors.BLUE
	underlineChar := "-"
	if label.Style == Primary {
		underlineChar = "~"
		if length == 1 {
			underlineChar = "^"
		}
		switch severity {
		case Error:
			underlineColor = colors.RED
		case Warning:
			underlineColor = colors.YELLOW
		default:
			underlineColor = colors.CYAN
		}
	}

	fmt.Fprint(e.writer, strings.Repeat(" ", e.gutter))
	colors.GREY.Fprint(e.writer, " | ")
	fmt.Fprint(e.writer, strings.Repeat(" ", start.Column-1))
	underlineColor.Fprint(e.writer, strings.Repeat(underlineChar, length))
	if label.Message != "" {
		underlineColor.Fprintf(e.writer, " %s", label.Message)
	}
	fmt.Fprintln(e.writer)
}

func (e *Emitter) printNote(note Note) {
	fmt.Fprint(e.writer, strings.Repeat(" ", e.gutter+1))
	colors.CYAN.Fprint(e.writer, "= note: ")
	fmt.Fprintln(e.writer, note.Message)
}

func (e *Emitter) printHelp(help string) {
	fmt.Fprint(e.writer, strings.Repeat(" ", e.gutter+1))
	colors.GREEN.Fprint(e.writer, "= help: ")
	fmt.Fprintln(e.writer, help)
}
