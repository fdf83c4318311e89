package wasm

import "testing"

func TestText(t *testing.T) {
	m := sumModule(t, "main", 1, 2)
	want := `(module
  (type (;0;) (func (result i32)))
  (func $main (type 0) (result i32)
    (return (i32.add (i32.const 1) (i32.const 2))))
  (export "main" (func $main)))
`
	if got := m.Text(); got != want {
		t.Errorf("Text() =\n%s\nwant\n%s", got, want)
	}
}

func TestText_VoidAndBlocks(t *testing.T) {
	m := NewModule()
	m.AddFunction("f", nil, None, []ValType{I32}, BlockOf("", BlockOf("inner", Const(1), Const(2)), Return(nil)))
	want := `(module
  (type (;0;) (func))
  (func $f (type 0)
    (local i32)
    (block $inner (result i32) (i32.const 1) (i32.const 2))
    (return)))
`
	if got := m.Text(); got != want {
		t.Errorf("Text() =\n%s\nwant\n%s", got, want)
	}
}

func TestInstrText_LeftNested(t *testing.T) {
	in := Add(Add(Const(1), Const(2)), Const(3))
	want := "(i32.add (i32.add (i32.const 1) (i32.const 2)) (i32.const 3))"
	if got := InstrText(in); got != want {
		t.Errorf("InstrText() = %q, want %q", got, want)
	}
}
