package main

import "io"

// Option configures an Interpreter at construction, the same functional-
// options idiom internal/vm.Option uses one layer down.
type Option interface{ apply(in *Interpreter) }

var defaultOptions = Options(
	withStdin(nil),
	withStdout(nil),
)

// Options flattens any number of Option values into one: a nil or no-op
// Option is dropped, and a nested Options value is spliced in rather than
// nested.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil, noption:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	switch len(res) {
	case 0:
		return noption{}
	case 1:
		return res[0]
	default:
		return res
	}
}

type noption struct{}

func (noption) apply(*Interpreter) {}

type options []Option

func (opts options) apply(in *Interpreter) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(in)
		}
	}
}

type optionFunc func(in *Interpreter)

func (f optionFunc) apply(in *Interpreter) { f(in) }

// WithSource provides the program text: name for diagnostics, and its
// already-split, not-yet-tokenized lines.
func WithSource(name string, lines []string) Option {
	return optionFunc(func(in *Interpreter) {
		in.name = name
		in.lines = lines
	})
}

// WithArgs populates the "!args" array exposed to the program's
// "argument"/"argument size" statements.
func WithArgs(args []int) Option {
	return optionFunc(func(in *Interpreter) {
		in.args = append([]int(nil), args...)
	})
}

// WithDump enables a pre-execution bytecode dump (the -v flag) written to
// w, one line per instruction; see DumpProgram for the format.
func WithDump(w io.Writer) Option {
	return optionFunc(func(in *Interpreter) {
		in.dumpTo = w
	})
}

func withStdin(r io.Reader) Option {
	return optionFunc(func(in *Interpreter) { in.stdin = r })
}

func withStdout(w io.Writer) Option {
	return optionFunc(func(in *Interpreter) { in.stdout = w })
}

// WithStdin overrides the reader READ scans integers from.
func WithStdin(r io.Reader) Option { return withStdin(r) }

// WithStdout overrides the writer WRITE/WRITELN print to.
func WithStdout(w io.Writer) Option { return withStdout(w) }

// WithRandSeed seeds RAND's pseudo-random source explicitly.
func WithRandSeed(seed int64) Option {
	return optionFunc(func(in *Interpreter) {
		in.randSeed = seed
		in.haveSeed = true
	})
}

// WithMemLimit bounds the interpreter's backing arena in words.
func WithMemLimit(limit uint) Option {
	return optionFunc(func(in *Interpreter) { in.memLimit = limit })
}

// WithLogf gates -trace instruction-level execution logging.
func WithLogf(logf func(mess string, args ...interface{})) Option {
	return optionFunc(func(in *Interpreter) {
		if logf != nil {
			in.logf = logf
		}
	})
}

// WithProfiling enables per-instruction execution counts in the bytecode
// dump.
func WithProfiling() Option {
	return optionFunc(func(in *Interpreter) { in.profiling = true })
}
