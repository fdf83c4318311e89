package diagnostics

import "errors"

// Kind classifies an error diagnostic. Every kind is fatal for a compilation.
type Kind int

const (
	// LexicalError is an unrecognized character or malformed literal.
	LexicalError Kind = iota
	// SyntaxError is a token that does not fit the grammar at its position.
	SyntaxError
	// TypeError is a disagreement between two types.
	TypeError
	// InternalError is a lowering or backend coverage gap.
	InternalError
	// IOError is a source or output file that cannot be read or written.
	IOError
)

func (k Kind) String() string {
	switch k {
	case LexicalError:
		return "lexical error"
	case SyntaxError:
		return "syntax error"
	case TypeError:
		return "type error"
	case InternalError:
		return "internal compiler error"
	case IOError:
		return "i/o error"
	default:
		return "error"
	}
}

func (k Kind) defaultCode() string {
	switch k {
	case LexicalError:
		return ErrUnexpectedCharacter
	case SyntaxError:
		return ErrUnexpectedToken
	case TypeError:
		return ErrTypeMismatch
	case InternalError:
		return ErrInternal
	case IOError:
		return ErrIO
	default:
		return ""
	}
}

// KindOf reports the kind of the first Diagnostic in err's chain.
func KindOf(err error) (Kind, bool) {
	var diag *Diagnostic
	if errors.As(err, &diag) && diag.Severity == Error {
		return diag.Kind, true
	}
	return 0, false
}

// Is reports whether err carries a diagnostic of the given kind.
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
