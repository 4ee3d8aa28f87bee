package vm

import "github.com/jcorbin/minilang/internal/opcode"

// execAddSub dispatches one fused ADD/SUB instruction, reading its
// operands (whose shapes are already baked into the chosen opcode variant)
// and storing the result.
func (m *Machine) execAddSub(op opcode.Code) {
	sign := 1
	base := op
	if op >= opcode.SubVVV {
		sign = -1
		base = op - opcode.SubVVV + opcode.AddVVV
	}

	var result int
	switch base {
	case opcode.AddVVV:
		a := m.args(3)
		result = m.store.Load(a[0]) + sign*m.store.Load(a[1])
		m.store.Store(a[2], result)
	case opcode.AddVVA:
		a := m.args(4)
		result = m.store.Load(a[0]) + sign*m.store.Load(a[2]+m.store.Load(a[1]))
		m.store.Store(a[3], result)
	case opcode.AddVAA:
		a := m.args(5)
		result = m.store.Load(a[1]+m.store.Load(a[0])) + sign*m.store.Load(a[3]+m.store.Load(a[2]))
		m.store.Store(a[4], result)
	case opcode.AddAVV:
		a := m.args(4)
		result = m.store.Load(a[0]) + sign*m.store.Load(a[1])
		m.store.Store(a[3]+m.store.Load(a[2]), result)
	case opcode.AddAVA:
		a := m.args(5)
		result = m.store.Load(a[0]) + sign*m.store.Load(a[2]+m.store.Load(a[1]))
		m.store.Store(a[4]+m.store.Load(a[3]), result)
	case opcode.AddAAA:
		a := m.args(6)
		result = m.store.Load(a[1]+m.store.Load(a[0])) + sign*m.store.Load(a[3]+m.store.Load(a[2]))
		m.store.Store(a[5]+m.store.Load(a[4]), result)
	}
}
