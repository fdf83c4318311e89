package ast

import (
	"minic/internal/source"
	"minic/internal/types"
)

// BasicLit represents an integer literal
type BasicLit struct {
	Value int64
	Raw   string // the literal as written
	Type  types.SemType
	source.Location
}

func (b *BasicLit) INode()                 {} // Implements Node interface
func (b *BasicLit) Expr()                  {} // Expr is a marker interface for all expressions
func (b *BasicLit) Loc() *source.Location  { return &b.Location }
func (b *BasicLit) SemType() types.SemType { return b.Type }
func (b *BasicLit) node()                  {}
