package lower

import (
	"context"
	"strings"
	"testing"

	"minic/internal/codegen/wasm"
	"minic/internal/diagnostics"
	"minic/internal/frontend/ast"
	"minic/internal/frontend/parser"
	"minic/internal/source"
	"minic/internal/tokens"
	"minic/internal/types"
)

func lowerSource(t *testing.T, src string) *wasm.Module {
	t.Helper()
	script, err := parser.ParseString("test.mc", src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	mod, err := Lower(script, wasm.NewModule())
	if err != nil {
		t.Fatalf("lower: %v", err)
	}
	return mod
}

func TestLower_FunctionIsExported(t *testing.T) {
	mod := lowerSource(t, "function main() { return 1 + 2; }")

	fn := mod.Function("main")
	if fn == nil {
		t.Fatal("function main was not added")
	}
	if fn.Result != wasm.I32 || len(fn.Params) != 0 {
		t.Errorf("signature = %v -> %s, want () -> i32", fn.Params, fn.Result)
	}
	exports := mod.Exports()
	if len(exports) != 1 || exports[0] != (wasm.Export{Internal: "main", External: "main"}) {
		t.Errorf("exports = %v", exports)
	}

	want := "(block (return (i32.add (i32.const 1) (i32.const 2))))"
	if got := wasm.InstrText(fn.Body); got != want {
		t.Errorf("body = %s, want %s", got, want)
	}
}

func TestLower_AddsNestLeft(t *testing.T) {
	mod := lowerSource(t, "function f() { return 1 + 2 + 3 + 4; }")
	want := "(block (return (i32.add (i32.add (i32.add (i32.const 1) (i32.const 2)) (i32.const 3)) (i32.const 4))))"
	if got := wasm.InstrText(mod.Function("f").Body); got != want {
		t.Errorf("body =\n%s\nwant\n%s", got, want)
	}
}

func TestLower_Sums(t *testing.T) {
	tests := []struct {
		src  string
		want int32
	}{
		{"function f() { return 0; }", 0},
		{"function f() { return 7 }", 7},
		{"function f() { return 1 + 2; }", 3},
		{"function f() { return 100 + 200 + 300; }", 600},
		{"function f() { return 2147483647 + 1; }", -2147483648},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			bin, err := lowerSource(t, tt.src).Emit()
			if err != nil {
				t.Fatalf("Emit: %v", err)
			}
			got, err := wasm.Run(context.Background(), bin, "f")
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if got != tt.want {
				t.Errorf("f() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLower_MultipleFunctions(t *testing.T) {
	mod := lowerSource(t, "function a() { return 1; }\nfunction b() { return 2; }")
	var names []string
	for _, fn := range mod.Functions() {
		names = append(names, fn.Name)
	}
	if strings.Join(names, ",") != "a,b" {
		t.Errorf("functions = %v, want source order a,b", names)
	}
	if len(mod.Exports()) != 2 {
		t.Errorf("exports = %v", mod.Exports())
	}
}

func TestLower_DuplicateFunction(t *testing.T) {
	script, err := parser.ParseString("test.mc", "function f() { return 1; }\nfunction f() { return 2; }")
	if err != nil {
		t.Fatal(err)
	}
	_, err = Lower(script, wasm.NewModule())
	if !diagnostics.Is(err, diagnostics.TypeError) {
		t.Fatalf("expected type error, got %v", err)
	}
	diag := err.(*diagnostics.Diagnostic)
	if diag.Code != diagnostics.ErrRedeclared || diag.Location().Start.Line != 2 {
		t.Errorf("got %v", diag)
	}
}

func pos(col int) *source.Position {
	return &source.Position{Line: 1, Column: col, Index: col - 1}
}

func TestLower_UnmappedReturnType(t *testing.T) {
	wide := types.NewPrimitive(types.TYPE_I64)
	fn := &ast.FuncDecl{
		Name:       &ast.IdentifierExpr{Name: "g"},
		Body:       &ast.Block{Nodes: []ast.Node{}},
		ReturnType: wide,
	}
	mod := wasm.NewModule()
	if err := New(mod).funcDecl(fn); err != nil {
		t.Fatalf("funcDecl: %v", err)
	}
	if got := mod.Function("g").Result; got != wasm.None {
		t.Errorf("result = %s, want none for an unmapped type", got)
	}
}

func TestLower_UnhandledOperator(t *testing.T) {
	one := &ast.BasicLit{Value: 1, Type: types.Int, Location: source.Location{Start: pos(1), End: pos(2)}}
	two := &ast.BasicLit{Value: 2, Type: types.Int, Location: source.Location{Start: pos(5), End: pos(6)}}
	minus := tokens.NewToken(tokens.TOKEN("-"), "-", *pos(3), *pos(4))
	expr := &ast.BinaryExpr{X: one, Op: minus, Y: two, Type: types.Int, Location: source.Location{Start: pos(1), End: pos(6)}}

	_, err := New(wasm.NewModule()).visit(expr)
	if !diagnostics.Is(err, diagnostics.InternalError) {
		t.Fatalf("expected internal error, got %v", err)
	}
	if diag := err.(*diagnostics.Diagnostic); diag.Code != diagnostics.ErrUnhandledOperator {
		t.Errorf("code = %s", diag.Code)
	}
}

func TestLower_UnhandledNode(t *testing.T) {
	_, err := New(wasm.NewModule()).visit(&ast.IdentifierExpr{Name: "x"})
	if !diagnostics.Is(err, diagnostics.InternalError) {
		t.Fatalf("expected internal error, got %v", err)
	}
	if !strings.Contains(err.Error(), "IdentifierExpr") {
		t.Errorf("error should name the node type: %v", err)
	}
}

func TestLower_InvalidModuleIsInternal(t *testing.T) {
	// a function with no return has no result type, and an i32 constant
	// left at the end of a void body does not validate
	script := &ast.Script{Nodes: []ast.Node{
		&ast.FuncDecl{
			Name: &ast.IdentifierExpr{Name: "h"},
			Body: &ast.Block{Nodes: []ast.Node{
				&ast.BasicLit{Value: 1, Type: types.Int},
			}},
		},
	}}
	_, err := Lower(script, wasm.NewModule())
	if !diagnostics.Is(err, diagnostics.InternalError) {
		t.Fatalf("expected internal error, got %v", err)
	}
	if diag := err.(*diagnostics.Diagnostic); diag.Code != diagnostics.ErrInvalidModule {
		t.Errorf("code = %s", diag.Code)
	}
}
