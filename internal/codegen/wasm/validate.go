package wasm

import (
	"errors"
	"fmt"
)

// Validate checks the module's structure: exports resolve to functions and
// have unique names, add operands are i32, constants fit in i32, every
// return matches its function's result type, and a function that declares
// a result produces one. All problems are reported together.
func (m *Module) Validate() error {
	var errs []error

	for _, fn := range m.functions {
		errs = append(errs, validateFunction(fn)...)
	}

	seen := make(map[string]bool, len(m.exports))
	for _, exp := range m.exports {
		if seen[exp.External] {
			errs = append(errs, fmt.Errorf("wasm: duplicate export %q", exp.External))
		}
		seen[exp.External] = true
		if m.Function(exp.Internal) == nil {
			errs = append(errs, fmt.Errorf("wasm: export %q refers to unknown function %q", exp.External, exp.Internal))
		}
	}

	return errors.Join(errs...)
}

type funcValidator struct {
	fn   *Function
	errs []error
}

func (v *funcValidator) errorf(format string, args ...any) {
	v.errs = append(v.errs, fmt.Errorf("wasm: function %q: "+format, append([]any{v.fn.Name}, args...)...))
}

func validateFunction(fn *Function) []error {
	v := &funcValidator{fn: fn}
	if fn.Body == nil {
		v.errorf("missing body")
		return v.errs
	}

	// the body is the function's own block, so it is checked like one
	// without being encoded as a nested block
	last := v.sequence(bodyInstrs(fn.Body))

	switch {
	case fn.Result != None && !producesResult(last, fn.Result):
		v.errorf("declares result %s but does not produce one", fn.Result)
	case fn.Result == None && last != nil && last.Type() != None:
		v.errorf("leaves a %s value but declares no result", last.Type())
	}
	return v.errs
}

func bodyInstrs(body Instr) []Instr {
	if blk, ok := body.(*Block); ok {
		return blk.Instrs
	}
	return []Instr{body}
}

// producesResult reports whether a body ending in last leaves a value of
// type want when control reaches the end, or returns before getting there.
func producesResult(last Instr, want ValType) bool {
	if last == nil {
		return false
	}
	if _, ok := last.(*ReturnInstr); ok {
		return true
	}
	return last.Type() == want
}

// sequence checks instrs in order and returns the last one.
func (v *funcValidator) sequence(instrs []Instr) Instr {
	for i, in := range instrs {
		v.instr(in)
		if in != nil && i < len(instrs)-1 && in.Type() != None {
			v.errorf("%s value left on the stack before the end of a block", in.Type())
		}
	}
	if len(instrs) == 0 {
		return nil
	}
	return instrs[len(instrs)-1]
}

func (v *funcValidator) instr(in Instr) {
	switch in := in.(type) {
	case nil:
		v.errorf("missing instruction")
	case *ConstInstr:
		if !fitsI32(in.Value) {
			v.errorf("constant %d does not fit in i32", in.Value)
		}
	case *AddInstr:
		if in.X == nil || in.Y == nil {
			v.errorf("add is missing an operand")
			return
		}
		v.instr(in.X)
		v.instr(in.Y)
		if in.X.Type() != I32 || in.Y.Type() != I32 {
			v.errorf("add operands must be i32, got %s and %s", in.X.Type(), in.Y.Type())
		}
	case *ReturnInstr:
		if in.Value != nil {
			v.instr(in.Value)
		}
		got := None
		if in.Value != nil {
			got = in.Value.Type()
		}
		if got != v.fn.Result {
			v.errorf("returns %s, declared result is %s", got, v.fn.Result)
		}
	case *Block:
		v.sequence(in.Instrs)
	default:
		v.errorf("unknown instruction %T", in)
	}
}
