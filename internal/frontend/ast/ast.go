package ast

import (
	"minic/internal/source"
	"minic/internal/types"
)

// Node is the base interface for all AST nodes. The unexported marker keeps
// the node set closed to this package, so lowering can switch over it.
type Node interface {
	INode()
	Loc() *source.Location
	node()
}

// Expression represents any node that produces a value
type Expression interface {
	Node
	Expr()
	SemType() types.SemType
}

// Statement represents any node that performs an action
type Statement interface {
	Node
	Stmt()
}

// Decl represents a declaration
type Decl interface {
	Node
	Decl()
}
