package wasm

import (
	"bytes"
	"fmt"
	"math"
)

// Instr is a node of a function's instruction tree. Operands are children,
// so encoding a node writes its operands first (the stack machine's order).
type Instr interface {
	// Type is the type of the value the instruction leaves on the stack,
	// or None.
	Type() ValType
	encode(buf *bytes.Buffer) error
	instr()
}

// ConstInstr is i32.const.
type ConstInstr struct {
	Value int64
}

// AddInstr is an add of two operands of the same type.
type AddInstr struct {
	X, Y Instr
}

// ReturnInstr returns Value (nil for no value) from the enclosing function.
type ReturnInstr struct {
	Value Instr
}

// Block is a sequence of instructions. An empty label is printed without a name.
type Block struct {
	Label  string
	Instrs []Instr
}

// Const builds an i32.const. Values outside the i32 range are rejected by Validate.
func Const(v int64) *ConstInstr { return &ConstInstr{Value: v} }

// Add builds an add of x and y.
func Add(x, y Instr) *AddInstr { return &AddInstr{X: x, Y: y} }

// Return builds a return of v.
func Return(v Instr) *ReturnInstr { return &ReturnInstr{Value: v} }

// BlockOf builds a block of instrs.
func BlockOf(label string, instrs ...Instr) *Block {
	return &Block{Label: label, Instrs: instrs}
}

func (c *ConstInstr) Type() ValType { return I32 }

func (a *AddInstr) Type() ValType {
	if a.X == nil {
		return None
	}
	return a.X.Type()
}

// Type is None: control never falls through a return.
func (r *ReturnInstr) Type() ValType { return None }

func (b *Block) Type() ValType {
	if len(b.Instrs) == 0 {
		return None
	}
	return b.Instrs[len(b.Instrs)-1].Type()
}

func (c *ConstInstr) instr()  {}
func (a *AddInstr) instr()    {}
func (r *ReturnInstr) instr() {}
func (b *Block) instr()       {}

func fitsI32(v int64) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}

func (c *ConstInstr) encode(buf *bytes.Buffer) error {
	if !fitsI32(c.Value) {
		return fmt.Errorf("constant %d does not fit in i32", c.Value)
	}
	buf.WriteByte(opcodeI32Const)
	buf.Write(encodeS32(int32(c.Value)))
	return nil
}

func (a *AddInstr) encode(buf *bytes.Buffer) error {
	if a.X == nil || a.Y == nil {
		return fmt.Errorf("add is missing an operand")
	}
	if err := a.X.encode(buf); err != nil {
		return err
	}
	if err := a.Y.encode(buf); err != nil {
		return err
	}
	op, ok := addOpcode(a.X.Type())
	if !ok {
		return fmt.Errorf("no add instruction for %s", a.X.Type())
	}
	buf.WriteByte(op)
	return nil
}

func (r *ReturnInstr) encode(buf *bytes.Buffer) error {
	if r.Value != nil {
		if err := r.Value.encode(buf); err != nil {
			return err
		}
	}
	buf.WriteByte(opcodeReturn)
	return nil
}

func (b *Block) encode(buf *bytes.Buffer) error {
	buf.WriteByte(opcodeBlock)
	buf.WriteByte(blockType(b.Type()))
	for _, in := range b.Instrs {
		if err := in.encode(buf); err != nil {
			return err
		}
	}
	buf.WriteByte(opcodeEnd)
	return nil
}
