package opcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/minilang/internal/opcode"
)

func TestArgCounts(t *testing.T) {
	assert.Equal(t, 0, opcode.Jump.ArgCount())
	assert.Equal(t, 2, opcode.EqVV.ArgCount())
	assert.Equal(t, 3, opcode.EqVA.ArgCount())
	assert.Equal(t, 4, opcode.EqAA.ArgCount())
	assert.Equal(t, 6, opcode.AddAAA.ArgCount())
}

func TestBranchClassification(t *testing.T) {
	assert.True(t, opcode.Jump.IsBranch())
	assert.True(t, opcode.EqVV.IsBranch())
	assert.True(t, opcode.LtAA.IsBranch())
	assert.False(t, opcode.Write.IsBranch())
	assert.False(t, opcode.AddVVV.IsBranch())
}

func TestNames(t *testing.T) {
	assert.Equal(t, "WRITE", opcode.Write.String())
	assert.Equal(t, "LE_AA", opcode.LeAA.String())
	assert.Contains(t, opcode.Code(9999).String(), "Code(")
}
