package wasm

// Optimize folds adds of two i32 constants into one constant, wrapping at
// 32 bits like i32.add does. It returns how many adds were folded.
func (m *Module) Optimize() int {
	folded := 0
	for _, fn := range m.functions {
		fn.Body = fold(fn.Body, &folded)
	}
	return folded
}

func fold(in Instr, folded *int) Instr {
	switch in := in.(type) {
	case *AddInstr:
		x, y := fold(in.X, folded), fold(in.Y, folded)
		cx, okX := x.(*ConstInstr)
		cy, okY := y.(*ConstInstr)
		if okX && okY && fitsI32(cx.Value) && fitsI32(cy.Value) {
			*folded++
			return Const(int64(int32(cx.Value) + int32(cy.Value)))
		}
		return Add(x, y)
	case *ReturnInstr:
		if in.Value == nil {
			return in
		}
		return Return(fold(in.Value, folded))
	case *Block:
		instrs := make([]Instr, len(in.Instrs))
		for i, child := range in.Instrs {
			instrs[i] = fold(child, folded)
		}
		return BlockOf(in.Label, instrs...)
	}
	return in
}
