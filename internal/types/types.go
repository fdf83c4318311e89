package types

// TYPE_NAME names a primitive type as it is spelled in diagnostics.
type TYPE_NAME string

const (
	TYPE_I32     TYPE_NAME = "i32"
	TYPE_I64     TYPE_NAME = "i64"
	TYPE_VOID    TYPE_NAME = "void"
	TYPE_UNKNOWN TYPE_NAME = "unknown"
)

// SemType is the semantic representation of types in the language.
//
// Types are immutable after creation and compare structurally.
type SemType interface {
	// String returns a human-readable representation of the type
	String() string

	// Equals checks structural equality with another type
	Equals(other SemType) bool

	// Size returns the size in bytes, or -1 when unknown
	Size() int

	isType()
}

// PrimitiveType represents a built-in scalar type
type PrimitiveType struct {
	name TYPE_NAME
	size int
}

func NewPrimitive(name TYPE_NAME) *PrimitiveType {
	return &PrimitiveType{name: name, size: primitiveSize(name)}
}

func (p *PrimitiveType) String() string { return string(p.name) }
func (p *PrimitiveType) Size() int      { return p.size }
func (p *PrimitiveType) isType()        {}
func (p *PrimitiveType) Equals(other SemType) bool {
	if o, ok := other.(*PrimitiveType); ok {
		return p.name == o.name
	}
	return false
}

// GetName returns the primitive type name
func (p *PrimitiveType) GetName() TYPE_NAME {
	return p.name
}

func primitiveSize(name TYPE_NAME) int {
	switch name {
	case TYPE_I32:
		return 4
	case TYPE_I64:
		return 8
	case TYPE_VOID:
		return 0
	default:
		return -1
	}
}

// Int is the single numeric type integer literals and additions carry.
var Int SemType = NewPrimitive(TYPE_I32)

// Equal reports whether a and b are the same type. Two nil types are equal.
func Equal(a, b SemType) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equals(b)
}

// Name returns the printable name of t, or "unknown" when t is nil.
func Name(t SemType) string {
	if t == nil {
		return string(TYPE_UNKNOWN)
	}
	return t.String()
}

// IsInt reports whether t is the numeric type.
func IsInt(t SemType) bool {
	return Equal(t, Int)
}
