package diagnostics

import (
	"fmt"

	"minic/internal/source"
)

// Common diagnostic builders for the lexer, parser and lowering

// UnrecognizedCharacter reports a character no token can start with.
// text is the character as it should be shown, e.g. "#" or `\xff`.
func UnrecognizedCharacter(loc *source.Location, text string, offset int) *Diagnostic {
	return NewError(LexicalError, fmt.Sprintf("unrecognized character '%s' at offset %d", text, offset)).
		WithPrimaryLabel(loc, "not valid here")
}

// InvalidNumber reports an integer literal that cannot be represented.
func InvalidNumber(loc *source.Location, text string) *Diagnostic {
	return NewError(LexicalError, fmt.Sprintf("integer literal %s is out of range", text)).
		WithCode(ErrInvalidNumber).
		WithPrimaryLabel(loc, "too large").
		WithHelp("integer literals must fit in i32 (at most 2147483647)")
}

// UnreachableCode warns about a statement that follows a return in the
// same block.
func UnreachableCode(loc, returnLoc *source.Location) *Diagnostic {
	return NewWarning("unreachable statement").
		WithCode(WarnUnreachableCode).
		WithPrimaryLabel(loc, "this statement never runs").
		WithSecondaryLabel(returnLoc, "the function already returns here")
}

// ExpectedToken reports a token kind mismatch: "expected X, saw Y".
func ExpectedToken(loc *source.Location, expected, saw string) *Diagnostic {
	return NewError(SyntaxError, fmt.Sprintf("expected '%s', saw %s", expected, saw)).
		WithCode(ErrExpectedToken).
		WithPrimaryLabel(loc, "expected '"+expected+"'")
}

// UnexpectedToken reports a token that has no place at its position.
func UnexpectedToken(loc *source.Location, saw string) *Diagnostic {
	return NewError(SyntaxError, "unexpected token "+saw).
		WithPrimaryLabel(loc, "unexpected token")
}

// TypeMismatch reports two types that must agree but do not.
func TypeMismatch(loc *source.Location, message, left, right string) *Diagnostic {
	return NewError(TypeError, fmt.Sprintf("%s: %s vs %s", message, left, right)).
		WithPrimaryLabel(loc, left+" vs "+right)
}

// Internal reports a coverage gap in the compiler itself.
func Internal(loc *source.Location, code, message string) *Diagnostic {
	d := NewError(InternalError, message).WithCode(code)
	if loc != nil {
		d.WithPrimaryLabel(loc, "")
	}
	return d.WithNote("this is a bug in the compiler")
}
