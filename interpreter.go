package main

import (
	"context"
	"io"
	"io/ioutil"
	"time"

	"github.com/jcorbin/minilang/internal/codegen"
	"github.com/jcorbin/minilang/internal/parser"
	"github.com/jcorbin/minilang/internal/symtab"
	"github.com/jcorbin/minilang/internal/thread"
	"github.com/jcorbin/minilang/internal/vm"
)

// Interpreter owns one program's compiled form and runs it to completion.
type Interpreter struct {
	name  string
	lines []string
	args  []int

	stdin  io.Reader
	stdout io.Writer
	logf   func(mess string, args ...interface{})

	dumpTo    io.Writer
	profiling bool

	randSeed int64
	haveSeed bool
	memLimit uint

	prog *thread.Program
	mach *vm.Machine
}

// New builds an Interpreter from options; no compilation happens until
// Run.
func New(opts ...Option) *Interpreter {
	var in Interpreter
	defaultOptions.apply(&in)
	Options(opts...).apply(&in)
	if in.logf == nil {
		in.logf = func(string, ...interface{}) {}
	}
	return &in
}

// Run compiles the interpreter's source and, on success, executes it.
// A compile-time error (parser.SyntaxError, codegen.ConstAssignError,
// codegen.BreakDepthError) is returned without running anything; a
// runtime HALT or EOF-on-read is a nil return, matching
// internal/vm.Machine.Run.
func (in *Interpreter) Run(ctx context.Context) error {
	stmts, err := parser.Parse(in.name, in.lines)
	if err != nil {
		return err
	}

	st := symtab.New()
	if in.memLimit != 0 {
		st.SetLimit(in.memLimit)
	}
	st.InitArgs(in.args)

	code, err := codegen.Generate(stmts, st)
	if err != nil {
		return err
	}

	in.prog = thread.Flatten(code)

	stdout := in.stdout
	if stdout == nil {
		stdout = ioutil.Discard
	}
	stdin := in.stdin
	if stdin == nil {
		stdin = new(eofReader)
	}

	seed := in.randSeed
	if !in.haveSeed {
		seed = time.Now().UnixNano()
	}

	vmOpts := []vm.Option{
		vm.WithStdout(stdout),
		vm.WithStdin(stdin),
		vm.WithRand(seed),
		vm.WithLogf(in.logf),
	}
	if in.profiling || in.dumpTo != nil {
		vmOpts = append(vmOpts, vm.WithProfiling())
	}

	in.mach = vm.New(in.prog.Slots, st, vmOpts...)

	if in.dumpTo != nil {
		DumpProgram(in.dumpTo, in.prog, nil)
	}

	err = in.mach.Run(ctx)
	st.Teardown()
	return err
}

// Dump writes the compiled program's bytecode listing to w, including
// per-instruction execution counts if profiling was enabled (see
// WithProfiling). Call it after Run: before Run there is no compiled
// program and nothing is written. The -v pre-execution listing is written
// by Run itself (see WithDump), with all counts at 0.
func (in *Interpreter) Dump(w io.Writer) {
	var counts []int
	if in.mach != nil {
		counts = in.mach.Counts()
	}
	DumpProgram(w, in.prog, counts)
}

type eofReader struct{}

func (*eofReader) Read([]byte) (int, error) { return 0, io.EOF }
