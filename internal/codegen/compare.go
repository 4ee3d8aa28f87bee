package codegen

import "github.com/jcorbin/minilang/internal/opcode"

// genCompare emits a fused compare-and-branch instruction for an if/while
// guard "x op y", returning its index so the caller can later patch its
// jump offset. If the guard is a syntactic tautology ("x == x"), no
// instruction is emitted at all and tautology is true.
func (g *generator) genCompare(x, op, y string) (idx int, tautology bool) {
	if op == "==" && x == y {
		return -1, true
	}

	// ">"/">=" normalize to "<"/"<=" by swapping the operand tokens
	// (including their array-ness) wholesale, then falling through to the
	// same dispatch as "<"/"<=".
	if op == ">" {
		x, y = y, x
		op = "<"
	} else if op == ">=" {
		x, y = y, x
		op = "<="
	}

	xName, xIdx, xArr := splitIndex(x)
	yName, yIdx, yArr := splitIndex(y)

	var base opcode.Code
	switch op {
	case "==", "!=":
		// Only VV/VA/AA variants exist (no AV): symmetric, so swap when
		// only x is an array.
		if xArr && !yArr {
			x, y = y, x
			xName, xIdx, xArr, yName, yIdx, yArr = yName, yIdx, yArr, xName, xIdx, xArr
		}
		base = opcode.EqVV
		if op == "!=" {
			base = opcode.NeqVV
		}
		variant := 0
		switch {
		case !xArr && !yArr:
			variant = 0
		case !xArr && yArr:
			variant = 1
		case xArr && yArr:
			variant = 2
		}
		instr := Instruction{Op: base + opcode.Code(variant), N: -1, Args: operandArgs(xName, xIdx, xArr, yName, yIdx, yArr, g)}
		return g.emit(instr), false

	default: // "<", "<="
		base = opcode.LtVV
		if op == "<=" {
			base = opcode.LeVV
		}
		variant := 0
		switch {
		case !xArr && !yArr:
			variant = 0
		case !xArr && yArr:
			variant = 1
		case xArr && !yArr:
			variant = 2
		case xArr && yArr:
			variant = 3
		}
		instr := Instruction{Op: base + opcode.Code(variant), N: -1, Args: operandArgs(xName, xIdx, xArr, yName, yIdx, yArr, g)}
		return g.emit(instr), false
	}
}

func operandArgs(xName, xIdx string, xArr bool, yName, yIdx string, yArr bool, g *generator) []int {
	var args []int
	if xArr {
		args = append(args, g.st.LookupOrCreateVariable(xIdx), g.st.LookupOrCreateArray(xName, 0))
	} else {
		args = append(args, g.st.LookupOrCreateVariable(xName))
	}
	if yArr {
		args = append(args, g.st.LookupOrCreateVariable(yIdx), g.st.LookupOrCreateArray(yName, 0))
	} else {
		args = append(args, g.st.LookupOrCreateVariable(yName))
	}
	return args
}

// inverseOp returns the logical negation of a comparison operator, used to
// turn a while loop's entry test into its back-edge test.
func inverseOp(op string) string {
	switch op {
	case "==":
		return "!="
	case "!=":
		return "=="
	case "<":
		return ">="
	case ">=":
		return "<"
	case ">":
		return "<="
	case "<=":
		return ">"
	}
	return op
}
