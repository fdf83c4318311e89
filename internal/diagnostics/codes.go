package diagnostics

// Error codes for the compiler
const (
	// Lexer errors (L prefix)
	ErrUnexpectedCharacter = "L0001"
	ErrInvalidNumber       = "L0003"

	// Parser errors (P prefix)
	ErrUnexpectedToken   = "P0001"
	ErrExpectedToken     = "P0002"
	ErrInvalidExpression = "P0003"
	ErrInvalidStatement  = "P0004"
	ErrEmptyBlock        = "P0010"

	// Type checker errors (T prefix)
	ErrTypeMismatch  = "T0001"
	ErrRedeclared    = "T0003"
	ErrInvalidReturn = "T0016"

	// Warnings (W prefix)
	WarnUnreachableCode = "W0001"

	// Internal errors (I prefix)
	ErrInternal          = "I0001"
	ErrUnhandledNode     = "I0002"
	ErrUnhandledOperator = "I0003"
	ErrInvalidModule     = "I0004"

	// Input and output errors (E prefix)
	ErrIO = "E0001"
)
