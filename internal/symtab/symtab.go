// Package symtab implements the symbol table and allocator of the language's
// compile-time model: scalar variables and arrays share one flat address
// space, backed by internal/mem's paged integer arena, with live array
// buffers tracked by internal/registry for bulk teardown.
package symtab

import (
	"unicode"

	"github.com/jcorbin/minilang/internal/mem"
	"github.com/jcorbin/minilang/internal/registry"
)

// cellBase offsets every allocated address well clear of the opcode.Code
// enum's small range, so internal/vm's rebind scan -- which looks for any
// slot holding an old array base, handler slots included -- can never
// mistake an opcode token for an address.
const cellBase = 1 << 20

// SymbolTable maps variable and array names to arena addresses, lazily
// creating cells on first reference.
type SymbolTable struct {
	arena mem.Ints
	next  uint

	vars   map[string]int
	arrays map[string]int

	reg *registry.Registry
}

// New returns an empty symbol table.
func New() *SymbolTable {
	return &SymbolTable{
		next:   cellBase,
		vars:   make(map[string]int),
		arrays: make(map[string]int),
		reg:    registry.New(),
	}
}

func (st *SymbolTable) alloc(n int) uint {
	addr := st.next
	st.next += uint(n)
	return addr
}

// IsConstant reports whether name denotes a numeric literal operand rather
// than a variable name: a leading digit makes the whole name a constant.
func IsConstant(name string) bool {
	for _, r := range name {
		return unicode.IsDigit(r)
	}
	return false
}

// LookupOrCreateVariable returns the address of name's scalar cell,
// allocating and (for a numeric literal) initializing it on first use.
func (st *SymbolTable) LookupOrCreateVariable(name string) int {
	if addr, ok := st.vars[name]; ok {
		return addr
	}
	addr := int(st.alloc(1))
	if IsConstant(name) {
		if n, ok := parseInt(name); ok {
			st.arena.Stor(uint(addr), n) //nolint:errcheck // arena has no Limit set
		}
	}
	st.vars[name] = addr
	return addr
}

// LookupOrCreateArray returns the exposed base address of name's array,
// allocating a size-prefixed buffer of the given size on first use. size is
// ignored on subsequent lookups: the first lookup fixes the buffer, and
// later mentions do not re-size it (only ReallocArray/FreeArray do).
func (st *SymbolTable) LookupOrCreateArray(name string, size int) int {
	if base, ok := st.arrays[name]; ok {
		return base
	}
	base := st.allocArray(size)
	st.arrays[name] = base
	return base
}

// allocArray allocates a size-prefixed buffer and returns its exposed base
// (one word past the prefix holding size), tracking it in the registry.
func (st *SymbolTable) allocArray(size int) int {
	if size < 0 {
		size = 0
	}
	bufBase := st.alloc(size + 1)
	st.arena.Stor(bufBase, size) //nolint:errcheck
	st.reg.Track(bufBase, size+1)
	return int(bufBase) + 1
}

// InitArgs pre-populates the "!args" array with the program's command-line
// arguments, 0-indexed.
func (st *SymbolTable) InitArgs(args []int) {
	base := st.LookupOrCreateArray("!args", len(args))
	for i, v := range args {
		st.arena.Stor(uint(base+i), v) //nolint:errcheck
	}
}

// Load reads a single arena cell.
func (st *SymbolTable) Load(addr int) int {
	v, _ := st.arena.Load(uint(addr))
	return v
}

// Store writes a single arena cell.
func (st *SymbolTable) Store(addr, val int) {
	st.arena.Stor(uint(addr), val) //nolint:errcheck
}

// ReallocArray releases the buffer backing oldBase (whose size prefix sits
// one word behind it) and allocates a fresh buffer of the given size,
// returning its exposed base. The prior contents are not copied: "new"
// discards.
func (st *SymbolTable) ReallocArray(oldBase, size int) int {
	st.reg.Release(uint(oldBase - 1))
	return st.allocArray(size)
}

// FreeArray releases oldBase's buffer and replaces it with a zero-length
// sentinel buffer, so any remaining reference to the array keeps pointing
// at valid (if empty) storage instead of a dangling address.
func (st *SymbolTable) FreeArray(oldBase int) int {
	return st.ReallocArray(oldBase, 0)
}

// Teardown releases every live array allocation, for use at program exit.
func (st *SymbolTable) Teardown() int {
	return st.reg.Teardown()
}

// SetLimit bounds the arena to at most limit words; a zero limit (the
// default) leaves it unbounded. Exceeding it turns a load/store into a
// mem.LimitError, which Load/Store swallow: an out-of-bounds load reads 0
// and an out-of-bounds store is dropped -- this repo has no bounds-checked
// Load/Store signature, so a limit is a debugging aid (paired with
// -mem-limit), not a language-level guard.
func (st *SymbolTable) SetLimit(limit uint) {
	if limit != 0 {
		// addresses start at cellBase, so count the limit from there
		limit += cellBase
	}
	st.arena.Limit = limit
}

func parseInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
