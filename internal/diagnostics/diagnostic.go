package diagnostics

import (
	"fmt"
	"strings"

	"minic/internal/source"
)

// Severity represents the severity level of a diagnostic
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// Label represents a labeled section of code in a diagnostic
type Label struct {
	Location *source.Location
	Message  string
	Style    LabelStyle
}

type LabelStyle int

const (
	Primary   LabelStyle = iota // The main error location (uses ^^^)
	Secondary                   // Additional context (uses ---)
)

// Note represents additional information attached to a diagnostic
type Note struct {
	Message string
}

// Diagnostic is a compiler diagnostic. Error diagnostics double as Go errors
// so the lexer, parser and lowering can return them directly.
type Diagnostic struct {
	Kind     Kind
	Severity Severity
	Message  string
	Code     string // Error code like "P0001"
	FilePath string // Source file for this diagnostic
	Labels   []Label
	Notes    []Note
	Help     string // Suggestion for fixing the error
}

var _ error = (*Diagnostic)(nil)

// NewError creates a new error diagnostic of the given kind
func NewError(kind Kind, message string) *Diagnostic {
	return &Diagnostic{
		Kind:     kind,
		Severity: Error,
		Message:  message,
		Code:     kind.defaultCode(),
		Labels:   make([]Label, 0),
		Notes:    make([]Note, 0),
	}
}

// NewWarning creates a new warning diagnostic
func NewWarning(message string) *Diagnostic {
	return &Diagnostic{
		Severity: Warning,
		Message:  message,
		Labels:   make([]Label, 0),
		Notes:    make([]Note, 0),
	}
}

// WithCode sets the error code
func (d *Diagnostic) WithCode(code string) *Diagnostic {
	d.Code = code
	return d
}

func (d *Diagnostic) withLabel(loc *source.Location, message string, style LabelStyle) *Diagnostic {
	if d.FilePath == "" {
		d.FilePath = loc.File()
	}
	d.Labels = append(d.Labels, Label{
		Location: loc,
		Message:  message,
		Style:    style,
	})
	return d
}

// WithPrimaryLabel adds the primary labeled location.
// A second primary label is ignored.
func (d *Diagnostic) WithPrimaryLabel(loc *source.Location, message string) *Diagnostic {
	if d.primary() != nil {
		return d
	}
	if len(d.Labels) > 0 {
		d.Labels = append([]Label{{Location: loc, Message: message, Style: Primary}}, d.Labels...)
		if d.FilePath == "" {
			d.FilePath = loc.File()
		}
		return d
	}
	return d.withLabel(loc, message, Primary)
}

// WithSecondaryLabel adds a context label. The primary label must exist first.
func (d *Diagnostic) WithSecondaryLabel(loc *source.Location, message string) *Diagnostic {
	if d.primary() == nil {
		panic("Cannot add secondary label without primary label. Call WithPrimaryLabel first.")
	}
	return d.withLabel(loc, message, Secondary)
}

// WithNote adds a note to the diagnostic
func (d *Diagnostic) WithNote(message string) *Diagnostic {
	d.Notes = append(d.Notes, Note{Message: message})
	return d
}

// WithHelp sets helpful suggestion for fixing the error
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}

func (d *Diagnostic) primary() *Label {
	for i := range d.Labels {
		if d.Labels[i].Style == Primary {
			return &d.Labels[i]
		}
	}
	return nil
}

// Location returns the primary label's location, or nil.
func (d *Diagnostic) Location() *source.Location {
	if label := d.primary(); label != nil {
		return label.Location
	}
	return nil
}

// Error renders the diagnostic on one line: "syntax error[P0002]: msg (file:1:5)".
func (d *Diagnostic) Error() string {
	var b strings.Builder
	if d.Severity == Error {
		b.WriteString(d.Kind.String())
	} else {
		b.WriteString(d.Severity.String())
	}
	if d.Code != "" {
		fmt.Fprintf(&b, "[%s]", d.Code)
	}
	b.WriteString(": ")
	b.WriteString(d.Message)
	if loc := d.Location(); loc != nil && loc.Start != nil {
		if d.FilePath != "" {
			fmt.Fprintf(&b, " (%s:%d:%d)", d.FilePath, loc.Start.Line, loc.Start.Column)
		} else {
			fmt.Fprintf(&b, " (%d:%d)", loc.Start.Line, loc.Start.Column)
		}
	}
	return b.String()
}
