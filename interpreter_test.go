package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/minilang/internal/codegen"
	"github.com/jcorbin/minilang/internal/opcode"
	"github.com/jcorbin/minilang/internal/parser"
	"github.com/jcorbin/minilang/internal/symtab"
)

func runProgram(t *testing.T, lines []string, args []int) string {
	t.Helper()
	var out bytes.Buffer
	in := New(WithSource("prog", lines), WithArgs(args), WithStdout(&out))
	require.NoError(t, in.Run(context.Background()))
	return out.String()
}

// Scenario 1: sum of args.
func TestScenarioSumOfArgs(t *testing.T) {
	out := runProgram(t, []string{
		"s = 0",
		"argument size n",
		"i = 0",
		"while i < n",
		"\targument i x",
		"\ts = s + x",
		"\ti = i + 1",
		"writeln s",
	}, []int{3, 4, 5})
	assert.Equal(t, "12\n", out)
}

// Scenario 2: break depth 2 unwinds both loops, landing on the statement
// after the outer while.
func TestScenarioBreakDepthTwo(t *testing.T) {
	out := runProgram(t, []string{
		"while 1 == 1",
		"\twhile 1 == 1",
		"\t\tbreak 2",
		"writeln 7",
	}, nil)
	assert.Equal(t, "7\n", out)
}

// Scenario 3: growing an array discards its old contents but leaves size
// correct; the stale value is unspecified and not asserted on.
func TestScenarioArrayGrowAndReindex(t *testing.T) {
	out := runProgram(t, []string{
		"new a[3]",
		"a[0] = 10",
		"new a[5]",
		"size a n",
		"writeln n",
		"writeln a[0]",
	}, nil)
	lines := bytes.Split([]byte(out), []byte("\n"))
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "5", string(lines[0]))
}

// Scenario 4: if/else with a tautological guard never reaches the else
// branch.
func TestScenarioIfElseTautology(t *testing.T) {
	out := runProgram(t, []string{
		"if 1 == 1",
		"\twriteln 1",
		"else",
		"\twriteln 2",
	}, nil)
	assert.Equal(t, "1\n", out)
}

// Scenario 5: "i = i + 1" fuses to a single INC_V, never a generic
// OP_ADD_* variant, even for a loop that runs a million iterations.
func TestScenarioIncSpecialisation(t *testing.T) {
	lines := []string{
		"i = 0",
		"while i < 1000000",
		"\ti = i + 1",
		"writeln i",
	}
	out := runProgram(t, lines, nil)
	assert.Equal(t, "1000000\n", out)

	stmts, err := parser.Parse("prog", lines)
	require.NoError(t, err)
	code, err := codegen.Generate(stmts, symtab.New())
	require.NoError(t, err)

	var incCount int
	for _, instr := range code {
		if instr.Op == opcode.IncV {
			incCount++
		}
		assert.False(t, instr.Op.IsAddSub(), "loop body must not emit a generic ADD/SUB opcode")
	}
	assert.Equal(t, 1, incCount)
}

// Scenario 6: "if x < y { writeln 1 }" compiles to exactly one comparison
// opcode and no separate unconditional jump ahead of the body.
func TestScenarioCompareBranchFusion(t *testing.T) {
	lines := []string{
		"if x < y",
		"\twriteln 1",
	}
	stmts, err := parser.Parse("prog", lines)
	require.NoError(t, err)
	code, err := codegen.Generate(stmts, symtab.New())
	require.NoError(t, err)

	var compares, jumps int
	for _, instr := range code {
		if instr.Op.IsCompare() {
			compares++
		}
		if instr.Op == opcode.Jump {
			jumps++
		}
	}
	assert.Equal(t, 1, compares)
	assert.Equal(t, 0, jumps)
}
