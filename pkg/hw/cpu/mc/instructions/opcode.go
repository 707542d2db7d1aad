package instructions

// Represents an instruction opcode
type OpCode uint

const (
	// Copy a register or memory operand into a register, or a register into a register or memory operand (100010dw)
	OpCode_MOV_REGMEM_REG OpCode = iota
	// Copy an immediate into a register or memory operand (1100011w)
	OpCode_MOV_IMM_REGMEM
	// Copy an immediate into a register (1011wreg)
	OpCode_MOV_IMM_REG
	// Copy a value at a direct memory address into the accumulator (1010000w)
	OpCode_MOV_MEM_ACC
	// Copy the accumulator into a direct memory address (1010001w)
	OpCode_MOV_ACC_MEM

	// Total opcodes implemented
	TOTAL_OPCODES
)

// Returns the mnemonic of the instruction opcode
func (op OpCode) String() string {
	return Opcodes.Mnemonic(op)
}
