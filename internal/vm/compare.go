package vm

import "github.com/jcorbin/minilang/internal/opcode"

// execCompare dispatches one fused compare-and-branch instruction: if the
// predicate holds, execution falls through (m.ip is already past the
// operands); otherwise m.ip is set to the resolved target read from the
// branch's reserved slot.
func (m *Machine) execCompare(op opcode.Code) {
	target := m.branchTarget()

	var hold bool
	switch op {
	case opcode.EqVV:
		a := m.args(2)
		hold = m.store.Load(a[0]) == m.store.Load(a[1])
	case opcode.EqVA:
		a := m.args(3)
		hold = m.store.Load(a[0]) == m.store.Load(a[2]+m.store.Load(a[1]))
	case opcode.EqAA:
		a := m.args(4)
		hold = m.store.Load(a[1]+m.store.Load(a[0])) == m.store.Load(a[3]+m.store.Load(a[2]))

	case opcode.NeqVV:
		a := m.args(2)
		hold = m.store.Load(a[0]) != m.store.Load(a[1])
	case opcode.NeqVA:
		a := m.args(3)
		hold = m.store.Load(a[0]) != m.store.Load(a[2]+m.store.Load(a[1]))
	case opcode.NeqAA:
		a := m.args(4)
		hold = m.store.Load(a[1]+m.store.Load(a[0])) != m.store.Load(a[3]+m.store.Load(a[2]))

	case opcode.LeVV:
		a := m.args(2)
		hold = m.store.Load(a[0]) <= m.store.Load(a[1])
	case opcode.LeVA:
		a := m.args(3)
		hold = m.store.Load(a[0]) <= m.store.Load(a[2]+m.store.Load(a[1]))
	case opcode.LeAV:
		a := m.args(3)
		hold = m.store.Load(a[1]+m.store.Load(a[0])) <= m.store.Load(a[2])
	case opcode.LeAA:
		a := m.args(4)
		hold = m.store.Load(a[1]+m.store.Load(a[0])) <= m.store.Load(a[3]+m.store.Load(a[2]))

	case opcode.LtVV:
		a := m.args(2)
		hold = m.store.Load(a[0]) < m.store.Load(a[1])
	case opcode.LtVA:
		a := m.args(3)
		hold = m.store.Load(a[0]) < m.store.Load(a[2]+m.store.Load(a[1]))
	case opcode.LtAV:
		a := m.args(3)
		hold = m.store.Load(a[1]+m.store.Load(a[0])) < m.store.Load(a[2])
	case opcode.LtAA:
		a := m.args(4)
		hold = m.store.Load(a[1]+m.store.Load(a[0])) < m.store.Load(a[3]+m.store.Load(a[2]))
	}

	if !hold {
		m.ip = target
	}
}
