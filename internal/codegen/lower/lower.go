// Package lower turns a parsed script into a WebAssembly module.
package lower

import (
	"fmt"

	"minic/internal/codegen/wasm"
	"minic/internal/diagnostics"
	"minic/internal/frontend/ast"
	"minic/internal/source"
	"minic/internal/tokens"
	"minic/internal/types"
)

// Lowerer walks the AST and adds functions and exports to its target
// module. It performs no I/O.
type Lowerer struct {
	mod *wasm.Module
}

func New(mod *wasm.Module) *Lowerer {
	return &Lowerer{mod: mod}
}

// Lower adds every function of script to mod, exports each under its own
// name and validates the result. The returned module is mod.
func Lower(script *ast.Script, mod *wasm.Module) (*wasm.Module, error) {
	if _, err := New(mod).visit(script); err != nil {
		return nil, err
	}
	return mod, nil
}

// visit lowers one node. Expressions and statements return their
// instruction; declarations and the script return nil.
func (l *Lowerer) visit(node ast.Node) (wasm.Instr, error) {
	switch n := node.(type) {
	case *ast.Script:
		return nil, l.script(n)
	case *ast.FuncDecl:
		return nil, l.funcDecl(n)
	case *ast.Block:
		return l.block(n)
	case *ast.ReturnStmt:
		value, err := l.visit(n.Result)
		if err != nil {
			return nil, err
		}
		return wasm.Return(value), nil
	case *ast.BinaryExpr:
		return l.binaryExpr(n)
	case *ast.BasicLit:
		return wasm.Const(n.Value), nil
	default:
		return nil, diagnostics.Internal(locOf(node), diagnostics.ErrUnhandledNode,
			fmt.Sprintf("cannot lower %T", node))
	}
}

func (l *Lowerer) script(s *ast.Script) error {
	for _, node := range s.Nodes {
		if _, err := l.visit(node); err != nil {
			return err
		}
	}
	if err := l.mod.Validate(); err != nil {
		return diagnostics.Internal(&s.Location, diagnostics.ErrInvalidModule, "generated module is invalid").
			WithNote(err.Error())
	}
	return nil
}

func (l *Lowerer) funcDecl(fn *ast.FuncDecl) error {
	name := fn.Name.Name
	if l.mod.Function(name) != nil {
		return diagnostics.NewError(diagnostics.TypeError, fmt.Sprintf("function '%s' is already declared", name)).
			WithCode(diagnostics.ErrRedeclared).
			WithPrimaryLabel(&fn.Name.Location, "declared again here").
			WithHelp("give each function a unique name")
	}

	body, err := l.visit(fn.Body)
	if err != nil {
		return err
	}

	if err := l.mod.AddFunction(name, nil, resultType(fn.ReturnType), nil, body); err != nil {
		return diagnostics.Internal(&fn.Location, diagnostics.ErrInvalidModule, err.Error())
	}
	if err := l.mod.AddExport(name, name); err != nil {
		return diagnostics.Internal(&fn.Location, diagnostics.ErrInvalidModule, err.Error())
	}
	return nil
}

func (l *Lowerer) block(b *ast.Block) (wasm.Instr, error) {
	instrs := make([]wasm.Instr, 0, len(b.Nodes))
	for _, node := range b.Nodes {
		in, err := l.visit(node)
		if err != nil {
			return nil, err
		}
		instrs = append(instrs, in)
	}
	return wasm.BlockOf("", instrs...), nil
}

func (l *Lowerer) binaryExpr(b *ast.BinaryExpr) (wasm.Instr, error) {
	if b.Op.Kind != tokens.PLUS_TOKEN {
		return nil, diagnostics.Internal(&b.Location, diagnostics.ErrUnhandledOperator,
			fmt.Sprintf("cannot lower operator '%s'", b.Op.Value))
	}
	x, err := l.visit(b.X)
	if err != nil {
		return nil, err
	}
	y, err := l.visit(b.Y)
	if err != nil {
		return nil, err
	}
	return wasm.Add(x, y), nil
}

// resultType maps a function's inferred return type to a wasm result.
// Only i32 has a mapping.
func resultType(t types.SemType) wasm.ValType {
	if types.IsInt(t) {
		return wasm.I32
	}
	return wasm.None
}

func locOf(node ast.Node) *source.Location {
	if node == nil {
		return nil
	}
	return node.Loc()
}
