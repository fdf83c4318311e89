package wasm

import (
	"bytes"
	"fmt"
)

// ValType is a WebAssembly value type. None stands for "no value" in result
// position and is never encoded.
type ValType byte

const (
	None ValType = 0x00
	I32  ValType = 0x7f
	I64  ValType = 0x7e
)

func (v ValType) String() string {
	switch v {
	case None:
		return "none"
	case I32:
		return "i32"
	case I64:
		return "i64"
	default:
		return fmt.Sprintf("valtype(0x%02x)", byte(v))
	}
}

const (
	sectionType   = 1
	sectionFunc   = 3
	sectionExport = 7
	sectionCode   = 10
)

const exportKindFunc = 0x00

type funcType struct {
	params  []ValType
	results []ValType
}

// Function is one function definition in a module.
type Function struct {
	Name   string
	Params []ValType
	Result ValType
	Locals []ValType
	Body   Instr
}

func (f *Function) results() []ValType {
	if f.Result == None {
		return nil
	}
	return []ValType{f.Result}
}

// Export exposes a function under a public name.
type Export struct {
	Internal string
	External string
}

// Module is a WebAssembly module under construction. Functions keep their
// instruction trees until Emit, so the module can be validated, optimized
// and disassembled first.
type Module struct {
	functions []*Function
	byName    map[string]int
	exports   []Export
}

func NewModule() *Module {
	return &Module{byName: make(map[string]int)}
}

// AddFunction appends a function definition. Names must be unique.
func (m *Module) AddFunction(name string, params []ValType, result ValType, locals []ValType, body Instr) error {
	if name == "" {
		return fmt.Errorf("wasm: function name is empty")
	}
	if _, exists := m.byName[name]; exists {
		return fmt.Errorf("wasm: duplicate function %q", name)
	}
	if result != None && result != I32 && result != I64 {
		return fmt.Errorf("wasm: function %q: unsupported result type %s", name, result)
	}
	if body == nil {
		return fmt.Errorf("wasm: function %q has no body", name)
	}
	m.byName[name] = len(m.functions)
	m.functions = append(m.functions, &Function{
		Name:   name,
		Params: params,
		Result: result,
		Locals: locals,
		Body:   body,
	})
	return nil
}

// AddExport exposes the function named internal as external. The reference
// is resolved by Validate.
func (m *Module) AddExport(internal, external string) error {
	if internal == "" || external == "" {
		return fmt.Errorf("wasm: export needs both an internal and an external name")
	}
	m.exports = append(m.exports, Export{Internal: internal, External: external})
	return nil
}

// Function returns the named function, or nil.
func (m *Module) Function(name string) *Function {
	idx, ok := m.byName[name]
	if !ok {
		return nil
	}
	return m.functions[idx]
}

// Functions returns the functions in definition order.
func (m *Module) Functions() []*Function { return m.functions }

// Exports returns the exports in definition order.
func (m *Module) Exports() []Export { return m.exports }

// builder assigns type indices while encoding.
type builder struct {
	types []funcType
}

func (b *builder) addType(params, results []ValType) uint32 {
	for i, t := range b.types {
		if sameTypes(t.params, params) && sameTypes(t.results, results) {
			return uint32(i)
		}
	}
	b.types = append(b.types, funcType{params: params, results: results})
	return uint32(len(b.types) - 1)
}

// typeIndices returns each function's type index, in function order.
func (m *Module) typeIndices(b *builder) []uint32 {
	indices := make([]uint32, len(m.functions))
	for i, fn := range m.functions {
		indices[i] = b.addType(fn.Params, fn.results())
	}
	return indices
}

// Emit encodes the module in the WebAssembly binary format. The module
// should be validated first; Emit fails only on constructs it cannot encode.
func (m *Module) Emit() ([]byte, error) {
	b := &builder{}
	typeIdx := m.typeIndices(b)

	var out bytes.Buffer
	out.Write([]byte{0x00, 0x61, 0x73, 0x6d})
	out.Write([]byte{0x01, 0x00, 0x00, 0x00})

	if len(b.types) > 0 {
		section := bytes.Buffer{}
		section.Write(encodeU32(uint32(len(b.types))))
		for _, t := range b.types {
			section.WriteByte(typeFunc)
			section.Write(encodeU32(uint32(len(t.params))))
			for _, p := range t.params {
				section.WriteByte(byte(p))
			}
			section.Write(encodeU32(uint32(len(t.results))))
			for _, r := range t.results {
				section.WriteByte(byte(r))
			}
		}
		out.Write(emitSection(sectionType, section.Bytes()))
	}

	if len(m.functions) > 0 {
		section := bytes.Buffer{}
		section.Write(encodeU32(uint32(len(m.functions))))
		for _, idx := range typeIdx {
			section.Write(encodeU32(idx))
		}
		out.Write(emitSection(sectionFunc, section.Bytes()))
	}

	if len(m.exports) > 0 {
		section := bytes.Buffer{}
		section.Write(encodeU32(uint32(len(m.exports))))
		for _, exp := range m.exports {
			idx, ok := m.byName[exp.Internal]
			if !ok {
				return nil, fmt.Errorf("wasm: export %q refers to unknown function %q", exp.External, exp.Internal)
			}
			section.Write(encodeString(exp.External))
			section.WriteByte(exportKindFunc)
			section.Write(encodeU32(uint32(idx)))
		}
		out.Write(emitSection(sectionExport, section.Bytes()))
	}

	if len(m.functions) > 0 {
		section := bytes.Buffer{}
		section.Write(encodeU32(uint32(len(m.functions))))
		for _, fn := range m.functions {
			body := bytes.Buffer{}
			body.Write(encodeLocals(fn.Locals))
			// the function body is itself a block, so a top-level
			// block is written inline
			if err := encodeBody(&body, fn.Body); err != nil {
				return nil, fmt.Errorf("wasm: function %q: %w", fn.Name, err)
			}
			body.WriteByte(opcodeEnd)
			section.Write(encodeU32(uint32(body.Len())))
			section.Write(body.Bytes())
		}
		out.Write(emitSection(sectionCode, section.Bytes()))
	}

	return out.Bytes(), nil
}

func encodeBody(buf *bytes.Buffer, body Instr) error {
	if blk, ok := body.(*Block); ok {
		for _, in := range blk.Instrs {
			if err := in.encode(buf); err != nil {
				return err
			}
		}
		return nil
	}
	return body.encode(buf)
}

func encodeString(s string) []byte {
	b := []byte(s)
	out := make([]byte, 0, len(b)+5)
	out = append(out, encodeU32(uint32(len(b)))...)
	out = append(out, b...)
	return out
}

func encodeU32(v uint32) []byte {
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		out = append(out, b)
		if v == 0 {
			break
		}
	}
	return out
}

func encodeS32(v int32) []byte {
	return encodeS64(int64(v))
}

func encodeS64(v int64) []byte {
	var out []byte
	more := true
	for more {
		b := byte(v & 0x7f)
		v >>= 7
		signBit := (b & 0x40) != 0
		more = !((v == 0 && !signBit) || (v == -1 && signBit))
		if more {
			b |= 0x80
		}
		out = append(out, b)
	}
	return out
}

func emitSection(id byte, content []byte) []byte {
	out := make([]byte, 0, len(content)+8)
	out = append(out, id)
	out = append(out, encodeU32(uint32(len(content)))...)
	out = append(out, content...)
	return out
}

func encodeLocals(locals []ValType) []byte {
	if len(locals) == 0 {
		return []byte{0x00}
	}
	var groups []struct {
		count uint32
		typ   ValType
	}
	for _, typ := range locals {
		if len(groups) == 0 || groups[len(groups)-1].typ != typ {
			groups = append(groups, struct {
				count uint32
				typ   ValType
			}{count: 1, typ: typ})
		} else {
			groups[len(groups)-1].count++
		}
	}
	out := make([]byte, 0, 1+len(groups)*3)
	out = append(out, encodeU32(uint32(len(groups)))...)
	for _, g := range groups {
		out = append(out, encodeU32(g.count)...)
		out = append(out, byte(g.typ))
	}
	return out
}

func sameTypes(a, b []ValType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
