package ast

import (
	"fmt"
	"strings"

	"minic/internal/types"
)

// String renders a node as compact source with every binary expression
// parenthesized, e.g. "((1 + 2) + 3)".
func String(n Node) string {
	var b strings.Builder
	write(&b, n)
	return b.String()
}

func write(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Script:
		for i, child := range n.Nodes {
			if i > 0 {
				b.WriteString("\n")
			}
			write(b, child)
		}
	case *FuncDecl:
		fmt.Fprintf(b, "function %s(): %s ", n.Name.Name, types.Name(n.ReturnType))
		write(b, n.Body)
	case *Block:
		b.WriteString("{ ")
		for _, child := range n.Nodes {
			write(b, child)
			b.WriteString(" ")
		}
		b.WriteString("}")
	case *ReturnStmt:
		b.WriteString("return ")
		write(b, n.Result)
		b.WriteString(";")
	case *BinaryExpr:
		b.WriteString("(")
		write(b, n.X)
		fmt.Fprintf(b, " %s ", n.Op.Kind)
		write(b, n.Y)
		b.WriteString(")")
	case *BasicLit:
		fmt.Fprintf(b, "%d", n.Value)
	case *IdentifierExpr:
		b.WriteString(n.Name)
	case nil:
		b.WriteString("<nil>")
	}
}
