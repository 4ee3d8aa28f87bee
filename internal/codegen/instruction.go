package codegen

import "github.com/jcorbin/minilang/internal/opcode"

// Instruction is one emitted bytecode instruction, prior to threading.
type Instruction struct {
	Op   opcode.Code
	Args []int

	// N is a branch's relative instruction offset, resolved by the
	// break/continue pass (for OP_JUMP placeholders) or computed directly
	// during code generation (for fused compare-and-branch instructions).
	// Unused (-1) for non-branch instructions.
	N int
}
