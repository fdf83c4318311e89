package wasm

const (
	blockTypeVoid = 0x40
	typeFunc      = 0x60
)

const (
	opcodeBlock    = 0x02
	opcodeEnd      = 0x0b
	opcodeReturn   = 0x0f
	opcodeI32Const = 0x41
	opcodeI32Add   = 0x6a
	opcodeI64Add   = 0x7c
)

// addOpcode selects the add instruction for an operand type.
func addOpcode(valType ValType) (byte, bool) {
	switch valType {
	case I32:
		return opcodeI32Add, true
	case I64:
		return opcodeI64Add, true
	}
	return 0, false
}

// blockType is the immediate that follows a block opcode.
func blockType(result ValType) byte {
	if result == None {
		return blockTypeVoid
	}
	return byte(result)
}
