package ast

import (
	"minic/internal/source"
	"minic/internal/types"
)

// Script is a whole source file: top-level function declarations in source order.
type Script struct {
	FullPath string
	Nodes    []Node
	source.Location
}

func (s *Script) INode()                {} // Implements Node interface
func (s *Script) Loc() *source.Location { return &s.Location }
func (s *Script) node()                 {}

// Functions returns the top-level function declarations.
func (s *Script) Functions() []*FuncDecl {
	funcs := make([]*FuncDecl, 0, len(s.Nodes))
	for _, n := range s.Nodes {
		if fn, ok := n.(*FuncDecl); ok {
			funcs = append(funcs, fn)
		}
	}
	return funcs
}

// FuncDecl represents a zero-parameter function declaration.
type FuncDecl struct {
	Name       *IdentifierExpr
	Body       *Block
	ReturnType types.SemType // fixed by the first return statement, nil if none
	source.Location
}

func (f *FuncDecl) INode()                {} // Implements Node interface
func (f *FuncDecl) Stmt()                 {} // Stmt is a marker interface for all statements
func (f *FuncDecl) Decl()                 {} // Decl is a marker interface for all declarations
func (f *FuncDecl) Loc() *source.Location { return &f.Location }
func (f *FuncDecl) node()                 {}

// Block represents a brace-delimited statement list
type Block struct {
	Nodes []Node
	source.Location
}

func (b *Block) INode()                {} // Implements Node interface
func (b *Block) Stmt()                 {} // Stmt is a marker interface for all statements
func (b *Block) Loc() *source.Location { return &b.Location }
func (b *Block) node()                 {}

// ReturnStmt represents a return statement
type ReturnStmt struct {
	Result Expression
	source.Location
}

func (r *ReturnStmt) INode()                {} // Implements Node interface
func (r *ReturnStmt) Stmt()                 {} // Stmt is a marker interface for all statements
func (r *ReturnStmt) Loc() *source.Location { return &r.Location }
func (r *ReturnStmt) node()                 {}
