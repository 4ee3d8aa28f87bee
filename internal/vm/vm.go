// Package vm implements the threaded-code interpreter: a two-register,
// stack-less machine that dispatches over a flat []int slot array produced
// by internal/thread. Dispatch is indirect-threaded -- a switch on the
// opcode value stored in each handler slot -- since Go has no
// address-of-label to direct-thread with.
package vm

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"math/rand"

	"github.com/jcorbin/minilang/internal/flushio"
	"github.com/jcorbin/minilang/internal/opcode"
	"github.com/jcorbin/minilang/internal/panicerr"
)

// Store is the memory model a Machine executes against: a flat integer
// address space plus array (re)allocation, implemented by
// internal/symtab.SymbolTable.
type Store interface {
	Load(addr int) int
	Store(addr, val int)
	ReallocArray(oldBase, size int) int
	FreeArray(oldBase int) int
}

// Machine is a single-threaded interpreter over a fixed slot program.
type Machine struct {
	slots []int
	store Store

	reg1, reg2 int
	ip         int

	stdout flushio.WriteFlusher
	stdin  *bufio.Reader
	rng    *rand.Rand
	logf   func(string, ...interface{})

	profiling bool
	counts    []int
}

// haltError distinguishes a deliberate HALT/EOF termination from any other
// error, so Run can collapse it to nil.
type haltError struct{ error }

func (e haltError) Unwrap() error { return e.error }

// New constructs a Machine over slots, backed by store for all memory
// access.
func New(slots []int, store Store, opts ...Option) *Machine {
	m := &Machine{
		slots: slots,
		store: store,
		stdin: bufio.NewReader(new(nopReader)),
		rng:   rand.New(rand.NewSource(1)),
		logf:  func(string, ...interface{}) {},
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(m)
		}
	}
	if m.stdout == nil {
		m.stdout = flushio.NewWriteFlusher(ioutil.Discard)
	}
	if m.profiling {
		m.counts = make([]int, len(slots))
	}
	return m
}

type nopReader struct{}

func (nopReader) Read([]byte) (int, error) { return 0, io.EOF }

// Counts returns the per-slot execution counts, non-nil only when
// profiling is enabled (see WithProfiling), for use by a bytecode dump.
func (m *Machine) Counts() []int { return m.counts }

// Run executes the program to completion. A HALT instruction, or any
// failure to scan an integer during READ (EOF included), ends execution
// with a nil error. Any other abnormal
// termination -- an internal panic, a runtime.Goexit, ctx's cancellation --
// surfaces as a plain non-nil error.
func (m *Machine) Run(ctx context.Context) error {
	err := panicerr.Recover("vm", func() error { return m.run(ctx) })
	var he haltError
	if errors.As(err, &he) {
		err = he.error
	}
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (m *Machine) halt(err error) {
	if ferr := m.stdout.Flush(); err == nil {
		err = ferr
	}
	panic(haltError{err})
}

func (m *Machine) args(n int) []int {
	a := m.slots[m.ip : m.ip+n]
	m.ip += n
	return a
}

func (m *Machine) branchTarget() int {
	t := m.slots[m.ip]
	m.ip++
	return t
}

func (m *Machine) run(ctx context.Context) error {
	m.ip = 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if m.profiling {
			m.counts[m.ip]++
		}

		op := opcode.Code(m.slots[m.ip])
		m.ip++
		m.logf("step %v @%d", op, m.ip-1)

		switch op {
		case opcode.Halt:
			return m.stdout.Flush()

		case opcode.Write:
			fmt.Fprintf(m.stdout, "%d ", m.reg1)
		case opcode.Writeln:
			fmt.Fprintf(m.stdout, "%d\n", m.reg1)
		case opcode.Read:
			n, err := m.readInt()
			if err != nil {
				// any scan failure, EOF or not, ends the program the same
				// way HALT does; the language has no way to observe it
				m.halt(nil)
			}
			m.reg1 = n
		case opcode.Rand:
			m.reg1 = m.rng.Int()

		case opcode.Load1V:
			a := m.args(1)
			m.reg1 = m.store.Load(a[0])
		case opcode.Load2V:
			a := m.args(1)
			m.reg2 = m.store.Load(a[0])
		case opcode.Load1A:
			a := m.args(2)
			m.reg1 = m.store.Load(a[1] + m.store.Load(a[0]))
		case opcode.Load2A:
			a := m.args(2)
			m.reg2 = m.store.Load(a[1] + m.store.Load(a[0]))

		case opcode.StoreV:
			a := m.args(1)
			m.store.Store(a[0], m.reg1)
		case opcode.StoreA:
			a := m.args(2)
			m.store.Store(a[1]+m.store.Load(a[0]), m.reg1)

		case opcode.AssignVV:
			a := m.args(2)
			m.store.Store(a[1], m.store.Load(a[0]))
		case opcode.AssignVA:
			a := m.args(3)
			m.store.Store(a[2], m.store.Load(a[1]+m.store.Load(a[0])))
		case opcode.AssignAV:
			a := m.args(3)
			m.store.Store(a[2]+m.store.Load(a[1]), m.store.Load(a[0]))
		case opcode.AssignAA:
			a := m.args(4)
			srcIdx, dstIdx := m.store.Load(a[0]), m.store.Load(a[2])
			m.store.Store(a[3]+dstIdx, m.store.Load(a[1]+srcIdx))

		case opcode.IncV:
			a := m.args(1)
			m.store.Store(a[0], m.store.Load(a[0])+1)
		case opcode.DecV:
			a := m.args(1)
			m.store.Store(a[0], m.store.Load(a[0])-1)
		case opcode.IncA:
			a := m.args(2)
			addr := a[1] + m.store.Load(a[0])
			m.store.Store(addr, m.store.Load(addr)+1)
		case opcode.DecA:
			a := m.args(2)
			addr := a[1] + m.store.Load(a[0])
			m.store.Store(addr, m.store.Load(addr)-1)

		case opcode.Jump:
			m.ip = m.branchTarget()

		case opcode.MulOp:
			m.reg1 = m.reg1 * m.reg2
		case opcode.DivOp:
			if m.reg2 == 0 {
				m.halt(fmt.Errorf("division by zero"))
			}
			m.reg1 = m.reg1 / m.reg2
		case opcode.ModOp:
			if m.reg2 == 0 {
				m.halt(fmt.Errorf("division by zero"))
			}
			m.reg1 = m.reg1 % m.reg2
		case opcode.SubOp:
			m.reg1 = m.reg1 - m.reg2

		case opcode.New:
			a := m.args(1)
			newBase := m.store.ReallocArray(a[0], m.reg1)
			m.rebind(a[0], newBase)
		case opcode.Free:
			a := m.args(1)
			newBase := m.store.FreeArray(a[0])
			m.rebind(a[0], newBase)
		case opcode.Size:
			a := m.args(1)
			m.reg1 = m.store.Load(a[0] - 1)

		default:
			if op.IsCompare() {
				m.execCompare(op)
				continue
			}
			if op.IsAddSub() {
				m.execAddSub(op)
				continue
			}
			m.halt(fmt.Errorf("invalid opcode %d", int(op)))
		}
	}
}

// rebind rewrites every slot holding the old array base to the new one,
// the stream-wide scan described for NEW/FREE: the array's identity lives
// entirely in the operand values scattered through the program, there's no
// separate indirection table to update instead.
func (m *Machine) rebind(old, new int) {
	if old == new {
		return
	}
	for i, v := range m.slots {
		if v == old {
			m.slots[i] = new
		}
	}
}

func (m *Machine) readInt() (int, error) {
	var n int
	_, err := fmt.Fscan(m.stdin, &n)
	return n, err
}
