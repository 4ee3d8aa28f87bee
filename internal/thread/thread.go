// Package thread flattens a generated instruction list into the flat []int
// slot array the VM dispatches over: indirect threading, since Go has no
// address-of-label/computed-goto to thread through directly. Each
// instruction becomes a handler slot (the int value of its opcode.Code),
// optionally a resolved jump-target slot, and its operand slots.
package thread

import "github.com/jcorbin/minilang/internal/codegen"

// Program is the result of threading: the flat slot array ready for
// internal/vm to execute, plus the source instructions (with their
// resolved thread positions) for the -v bytecode dump.
type Program struct {
	Slots []int
	Code  []codegen.Instruction

	// ThreadPos[i] is the slot index at which Code[i]'s handler slot
	// lives in Slots.
	ThreadPos []int
}

// Flatten lays out code into a flat slot array in two passes: the first
// records each instruction's thread position, the second resolves every
// branch's target slot to the thread position of the instruction it jumps
// to.
func Flatten(code []codegen.Instruction) *Program {
	prog := &Program{
		Code:      append([]codegen.Instruction(nil), code...),
		ThreadPos: make([]int, len(code)),
	}

	for i, instr := range code {
		prog.ThreadPos[i] = len(prog.Slots)
		prog.Slots = append(prog.Slots, int(instr.Op))
		if instr.Op.IsBranch() {
			prog.Slots = append(prog.Slots, 0) // placeholder, resolved below
		}
		prog.Slots = append(prog.Slots, instr.Args...)
	}

	for i, instr := range code {
		if !instr.Op.IsBranch() {
			continue
		}
		targetInstr := i + 1 + instr.N
		targetPos := 0
		if targetInstr >= 0 && targetInstr < len(code) {
			targetPos = prog.ThreadPos[targetInstr]
		} else if targetInstr == len(code) {
			// jumps past the last instruction land just past the last
			// thread position (e.g. breaking out of a loop that is the
			// final statement).
			targetPos = len(prog.Slots)
		}
		prog.Slots[prog.ThreadPos[i]+1] = targetPos
	}

	return prog
}
