package ast

import (
	"minic/internal/diagnostics"
	"minic/internal/source"
	"minic/internal/tokens"
	"minic/internal/types"
)

// BinaryExpr represents a binary expression
type BinaryExpr struct {
	X    Expression    // left operand
	Op   tokens.Token  // operator
	Y    Expression    // right operand
	Type types.SemType // equal to both operand types
	source.Location
}

func (b *BinaryExpr) INode()                 {} // Implements Node interface
func (b *BinaryExpr) Expr()                  {} // Expr is a marker interface for all expressions
func (b *BinaryExpr) Loc() *source.Location  { return &b.Location }
func (b *BinaryExpr) SemType() types.SemType { return b.Type }
func (b *BinaryExpr) node()                  {}

// NewBinaryExpr builds x op y. The operands must have the same type, which
// becomes the type of the expression.
func NewBinaryExpr(x Expression, op tokens.Token, y Expression) (*BinaryExpr, error) {
	loc := source.Location{
		Start:    x.Loc().Start,
		End:      y.Loc().End,
		Filename: x.Loc().Filename,
	}
	if !types.Equal(x.SemType(), y.SemType()) {
		opStart, opEnd := op.Start, op.End
		return nil, diagnostics.TypeMismatch(
			source.NewLocation(loc.Filename, &opStart, &opEnd),
			"operands of '"+string(op.Kind)+"' have different types",
			types.Name(x.SemType()),
			types.Name(y.SemType()),
		).WithSecondaryLabel(x.Loc(), types.Name(x.SemType())).
			WithSecondaryLabel(y.Loc(), types.Name(y.SemType()))
	}
	return &BinaryExpr{
		X:        x,
		Op:       op,
		Y:        y,
		Type:     x.SemType(),
		Location: loc,
	}, nil
}

// IdentifierExpr represents an identifier
type IdentifierExpr struct {
	Name string
	source.Location
}

func (i *IdentifierExpr) INode()                {} // Implements Node interface
func (i *IdentifierExpr) Loc() *source.Location { return &i.Location }
func (i *IdentifierExpr) node()                 {}
