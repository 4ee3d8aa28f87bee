// Command minilang parses and executes a minilang source file.
//
// Usage:
//
//	minilang [-v] [-trace] FILE [ARG ...]
//
// FILE is read line by line and compiled; any trailing positional
// arguments are parsed as integers and exposed to the program through
// its "!args" array. -v prints a bytecode dump before execution; -trace
// logs every dispatched instruction to standard error.
package main

import (
	"bufio"
	"context"
	"flag"
	"os"
	"strconv"

	"github.com/jcorbin/minilang/internal/logio"
)

func main() {
	var (
		verbose  bool
		trace    bool
		memLimit uint
		seed     int64
		haveSeed bool
	)
	flag.BoolVar(&verbose, "v", false, "dump bytecode before executing")
	flag.BoolVar(&trace, "trace", false, "log each dispatched instruction")
	flag.UintVar(&memLimit, "mem-limit", 0, "bound the interpreter's arena, in words")
	flag.Int64Var(&seed, "seed", 0, "seed the random source explicitly (default: wall-clock)")
	flag.Parse()
	haveSeed = seedFlagWasSet()

	log := logio.Logger{}
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	args := flag.Args()
	if len(args) < 1 {
		log.Errorf("usage: minilang [-v] [-trace] FILE [ARG ...]")
		return
	}
	path, rest := args[0], args[1:]

	f, err := os.Open(path)
	if err != nil {
		log.Errorf("%v", err)
		return
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		log.Errorf("reading %v: %v", path, err)
		return
	}

	intArgs := make([]int, 0, len(rest))
	for _, a := range rest {
		n, err := strconv.Atoi(a)
		if err != nil {
			log.Errorf("argument %q is not an integer", a)
			return
		}
		intArgs = append(intArgs, n)
	}

	opts := []Option{
		WithSource(path, lines),
		WithArgs(intArgs),
		WithStdin(os.Stdin),
		WithStdout(os.Stdout),
		WithMemLimit(memLimit),
	}
	if haveSeed {
		opts = append(opts, WithRandSeed(seed))
	}
	if trace {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}
	if verbose {
		opts = append(opts, WithDump(os.Stdout), WithProfiling())
	}

	in := New(opts...)
	log.ErrorIf(in.Run(context.Background()))
}

// seedFlagWasSet reports whether -seed was explicitly passed, so a 0
// default doesn't get confused with an intentional seed of 0.
func seedFlagWasSet() bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			set = true
		}
	})
	return set
}
