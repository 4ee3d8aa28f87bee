package symtab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/minilang/internal/symtab"
)

func TestVariablesAreStable(t *testing.T) {
	st := symtab.New()
	a := st.LookupOrCreateVariable("x")
	b := st.LookupOrCreateVariable("x")
	assert.Equal(t, a, b)

	c := st.LookupOrCreateVariable("y")
	assert.NotEqual(t, a, c)
}

func TestConstantsAreInitialized(t *testing.T) {
	st := symtab.New()
	addr := st.LookupOrCreateVariable("42")
	assert.Equal(t, 42, st.Load(addr))
	assert.True(t, symtab.IsConstant("42"))
	assert.False(t, symtab.IsConstant("x"))
	assert.False(t, symtab.IsConstant("-5"), "only a leading digit makes a constant")
}

func TestArraysAreSizePrefixed(t *testing.T) {
	st := symtab.New()
	base := st.LookupOrCreateArray("a", 3)
	assert.Equal(t, 3, st.Load(base-1))

	same := st.LookupOrCreateArray("a", 99)
	assert.Equal(t, base, same, "re-lookup ignores size")
}

func TestArgsAreZeroIndexed(t *testing.T) {
	st := symtab.New()
	st.InitArgs([]int{3, 4, 5})
	base := st.LookupOrCreateArray("!args", 0)
	assert.Equal(t, 3, st.Load(base-1))
	assert.Equal(t, 3, st.Load(base+0))
	assert.Equal(t, 4, st.Load(base+1))
	assert.Equal(t, 5, st.Load(base+2))
}

func TestReallocArrayReleasesOldAndAllocatesFresh(t *testing.T) {
	st := symtab.New()
	base := st.LookupOrCreateArray("a", 2)
	newBase := st.ReallocArray(base, 5)
	assert.NotEqual(t, base, newBase)
	assert.Equal(t, 5, st.Load(newBase-1))
}

func TestFreeArrayLeavesZeroLengthSentinel(t *testing.T) {
	st := symtab.New()
	base := st.LookupOrCreateArray("a", 2)
	newBase := st.FreeArray(base)
	assert.Equal(t, 0, st.Load(newBase-1))
}
