package ast

import (
	"strings"
	"testing"

	"minic/internal/diagnostics"
	"minic/internal/source"
	"minic/internal/tokens"
	"minic/internal/types"
)

func lit(v int64, typ types.SemType) *BasicLit {
	start := source.Position{Line: 1, Column: 1}
	end := source.Position{Line: 1, Column: 2}
	return &BasicLit{Value: v, Type: typ, Location: source.Location{Start: &start, End: &end}}
}

var plus = tokens.NewToken(tokens.PLUS_TOKEN, "+", source.Start(), source.Start())

func TestNewBinaryExpr_TypeFromOperands(t *testing.T) {
	expr, err := NewBinaryExpr(lit(1, types.Int), plus, lit(2, types.Int))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !types.Equal(expr.SemType(), types.Int) {
		t.Errorf("SemType() = %v, want i32", expr.SemType())
	}
	if String(expr) != "(1 + 2)" {
		t.Errorf("String() = %q", String(expr))
	}
}

func TestNewBinaryExpr_Mismatch(t *testing.T) {
	wide := types.NewPrimitive(types.TYPE_I64)
	_, err := NewBinaryExpr(lit(1, types.Int), plus, lit(2, wide))
	if !diagnostics.Is(err, diagnostics.TypeError) {
		t.Fatalf("expected type error, got %v", err)
	}
	if !strings.Contains(err.Error(), "i32") || !strings.Contains(err.Error(), "i64") {
		t.Errorf("error should name both types: %v", err)
	}
}

func TestString_Script(t *testing.T) {
	sum, err := NewBinaryExpr(lit(1, types.Int), plus, lit(2, types.Int))
	if err != nil {
		t.Fatal(err)
	}
	fn := &FuncDecl{
		Name:       &IdentifierExpr{Name: "main"},
		Body:       &Block{Nodes: []Node{&ReturnStmt{Result: sum}}},
		ReturnType: types.Int,
	}
	script := &Script{Nodes: []Node{fn}}

	want := "function main(): i32 { return (1 + 2); }"
	if got := String(script); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if len(script.Functions()) != 1 {
		t.Errorf("Functions() = %d entries", len(script.Functions()))
	}
}
