package vm

import (
	"bufio"
	"io"
	"math/rand"

	"github.com/jcorbin/minilang/internal/flushio"
)

// Option configures a Machine at construction.
type Option interface{ apply(m *Machine) }

type optionFunc func(m *Machine)

func (f optionFunc) apply(m *Machine) { f(m) }

// WithStdout adds a writer for WRITE/WRITELN to print to, wrapped in a
// flushio.WriteFlusher. Buffered output is flushed when execution ends
// through HALT or through the machine's own halt path (a failed READ, a
// division by zero); an internal panic or a cancelled context returns
// without flushing. May be given more than once;
// output is written to every writer so given.
func WithStdout(w io.Writer) Option {
	return optionFunc(func(m *Machine) {
		m.stdout = flushio.WriteFlushers(m.stdout, flushio.NewWriteFlusher(w))
	})
}

// WithStdin sets the reader READ scans integers from.
func WithStdin(r io.Reader) Option {
	return optionFunc(func(m *Machine) {
		m.stdin = bufio.NewReader(r)
	})
}

// WithRand seeds RAND's process-wide pseudo-random source explicitly,
// for reproducible tests; the driver instead seeds from wall-clock time.
func WithRand(seed int64) Option {
	return optionFunc(func(m *Machine) {
		m.rng = rand.New(rand.NewSource(seed))
	})
}

// WithLogf gates per-instruction execution tracing behind a caller-
// supplied sink; see the driver's -trace flag.
func WithLogf(logf func(mess string, args ...interface{})) Option {
	return optionFunc(func(m *Machine) {
		if logf != nil {
			m.logf = logf
		}
	})
}

// WithProfiling enables the per-slot execution counters Counts() exposes,
// consumed by the driver's -v bytecode dump.
func WithProfiling() Option {
	return optionFunc(func(m *Machine) { m.profiling = true })
}
