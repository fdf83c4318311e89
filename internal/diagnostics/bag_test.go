package diagnostics

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"minic/colors"
)

func TestNewDiagnosticBag(t *testing.T) {
	bag := NewDiagnosticBag()

	if bag.ErrorCount() != 0 || bag.WarningCount() != 0 {
		t.Errorf("expected empty bag, got %d errors %d warnings", bag.ErrorCount(), bag.WarningCount())
	}
	if bag.HasErrors() {
		t.Error("Expected HasErrors() to be false for empty bag")
	}
}

func TestDiagnosticBag_Counts(t *testing.T) {
	bag := NewDiagnosticBag()

	bag.Add(NewError(SyntaxError, "error 1"))
	bag.Add(NewWarning("warning 1"))
	bag.Add(NewError(TypeError, "error 2"))

	if bag.ErrorCount() != 2 {
		t.Errorf("Expected 2 errors, got %d", bag.ErrorCount())
	}
	if bag.WarningCount() != 1 {
		t.Errorf("Expected 1 warning, got %d", bag.WarningCount())
	}
	if len(bag.Diagnostics()) != 3 {
		t.Errorf("Expected 3 diagnostics, got %d", len(bag.Diagnostics()))
	}

	bag.Clear()
	if bag.HasErrors() || len(bag.Diagnostics()) != 0 {
		t.Error("Clear() should empty the bag")
	}
}

func TestDiagnosticBag_AddError(t *testing.T) {
	bag := NewDiagnosticBag()
	bag.AddError(nil)
	bag.AddError(NewError(SyntaxError, "direct"))
	bag.AddError(errors.Join(errors.New("context"), NewError(TypeError, "joined")))
	bag.AddError(errors.New("wasm: broken module"))

	diags := bag.Diagnostics()
	if len(diags) != 3 {
		t.Fatalf("expected 3 diagnostics, got %d", len(diags))
	}
	if diags[1].Kind != TypeError {
		t.Errorf("wrapped diagnostic kind = %v", diags[1].Kind)
	}
	if diags[2].Kind != InternalError || diags[2].Message != "wasm: broken module" {
		t.Errorf("plain error should become internal error, got %+v", diags[2])
	}
}

func TestDiagnosticBag_ConcurrentAdd(t *testing.T) {
	bag := NewDiagnosticBag()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bag.Add(NewError(SyntaxError, "concurrent"))
		}()
	}
	wg.Wait()
	if bag.ErrorCount() != 50 {
		t.Errorf("Expected 50 errors, got %d", bag.ErrorCount())
	}
}

func TestDiagnosticBag_EmitAllToString(t *testing.T) {
	bag := NewDiagnosticBag()
	bag.AddSourceContent("main.mc", "function main() {\n  return 1 + ;\n}\n")
	bag.Add(UnexpectedToken(testLocation("main.mc", 2, 14, 1), "';'"))

	out := colors.StripANSI(bag.EmitAllToString())

	for _, want := range []string{
		"syntax error[P0001]: unexpected token ';'",
		"--> main.mc:2:14",
		"1 | function main() {",
		"2 |   return 1 + ;",
		"^ unexpected token",
		"Compilation failed with 1 error(s)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDiagnosticBag_EmitAllToHTML(t *testing.T) {
	bag := NewDiagnosticBag()
	bag.Add(NewError(LexicalError, "unrecognized character '#' at offset 0"))
	html := bag.EmitAllToHTML()
	if !strings.Contains(html, "<span") || strings.Contains(html, "\033") {
		t.Errorf("expected HTML output without escapes, got %q", html)
	}
}
