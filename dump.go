package main

import (
	"fmt"
	"io"

	"github.com/jcorbin/minilang/internal/thread"
)

// DumpProgram writes one line per bytecode instruction: a left-aligned
// opcode name in a 12-character field, the instruction's execution count
// in parentheses (0 throughout if counts is nil), the jump offset N for a
// branch, and then each operand address, whitespace-separated.
func DumpProgram(w io.Writer, prog *thread.Program, counts []int) {
	if prog == nil {
		return
	}
	for i, instr := range prog.Code {
		count := 0
		if counts != nil {
			count = counts[prog.ThreadPos[i]]
		}
		fmt.Fprintf(w, "%-12s(%d)", instr.Op.String(), count)
		if instr.Op.IsBranch() {
			fmt.Fprintf(w, " %d", instr.N)
		}
		for _, a := range instr.Args {
			fmt.Fprintf(w, " %d", a)
		}
		fmt.Fprintln(w)
	}
}
