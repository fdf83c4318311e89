package wasm

import (
	"fmt"
	"strings"
)

// Text disassembles the module into the WebAssembly text format, one
// folded s-expression per top-level instruction:
//
//	(module
//	  (type (;0;) (func (result i32)))
//	  (func $main (type 0) (result i32)
//	    (return (i32.add (i32.const 1) (i32.const 2))))
//	  (export "main" (func $main)))
func (m *Module) Text() string {
	b := &builder{}
	typeIdx := m.typeIndices(b)

	var sb strings.Builder
	sb.WriteString("(module")
	for i, t := range b.types {
		fmt.Fprintf(&sb, "\n  (type (;%d;) (func%s%s))", i, valList("param", t.params), valList("result", t.results))
	}
	for i, fn := range m.functions {
		fmt.Fprintf(&sb, "\n  (func $%s (type %d)%s%s", fn.Name, typeIdx[i], valList("param", fn.Params), valList("result", fn.results()))
		if len(fn.Locals) > 0 {
			fmt.Fprintf(&sb, "\n    %s", strings.TrimPrefix(valList("local", fn.Locals), " "))
		}
		if fn.Body != nil {
			for _, in := range bodyInstrs(fn.Body) {
				sb.WriteString("\n    ")
				writeInstr(&sb, in)
			}
		}
		sb.WriteString(")")
	}
	for _, exp := range m.exports {
		fmt.Fprintf(&sb, "\n  (export %q (func $%s))", exp.External, exp.Internal)
	}
	sb.WriteString(")\n")
	return sb.String()
}

// InstrText renders a single instruction tree as a folded s-expression.
func InstrText(in Instr) string {
	var sb strings.Builder
	writeInstr(&sb, in)
	return sb.String()
}

func valList(keyword string, vals []ValType) string {
	if len(vals) == 0 {
		return ""
	}
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = v.String()
	}
	return " (" + keyword + " " + strings.Join(parts, " ") + ")"
}

func writeInstr(sb *strings.Builder, in Instr) {
	switch in := in.(type) {
	case *ConstInstr:
		fmt.Fprintf(sb, "(i32.const %d)", in.Value)
	case *AddInstr:
		typ := I32
		if in.X != nil {
			typ = in.X.Type()
		}
		fmt.Fprintf(sb, "(%s.add", typ)
		for _, operand := range []Instr{in.X, in.Y} {
			sb.WriteString(" ")
			writeInstr(sb, operand)
		}
		sb.WriteString(")")
	case *ReturnInstr:
		sb.WriteString("(return")
		if in.Value != nil {
			sb.WriteString(" ")
			writeInstr(sb, in.Value)
		}
		sb.WriteString(")")
	case *Block:
		sb.WriteString("(block")
		if in.Label != "" {
			sb.WriteString(" $" + in.Label)
		}
		if t := in.Type(); t != None {
			fmt.Fprintf(sb, " (result %s)", t)
		}
		for _, child := range in.Instrs {
			sb.WriteString(" ")
			writeInstr(sb, child)
		}
		sb.WriteString(")")
	case nil:
		sb.WriteString("(;missing;)")
	default:
		fmt.Fprintf(sb, "(;%T;)", in)
	}
}
