// Package ast holds the statement tree that internal/parser builds and
// internal/codegen walks.
package ast

import "github.com/jcorbin/minilang/internal/lexer"

// Kind classifies a Statement by its leading keyword or shape.
type Kind int

const (
	Write Kind = iota
	Writeln
	Read
	AssignVar
	AssignExp
	If
	While
	Rand
	Arg
	ArgSize
	Break
	Continue
	New
	Free
	Size
)

var kindNames = [...]string{
	Write: "write", Writeln: "writeln", Read: "read",
	AssignVar: "assign-var", AssignExp: "assign-exp",
	If: "if", While: "while", Rand: "random",
	Arg: "argument", ArgSize: "argument-size",
	Break: "break", Continue: "continue",
	New: "new", Free: "free", Size: "size",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Statement is one line of source, possibly carrying a nested body (IF/WHILE)
// and an attached ELSE body (IF or WHILE).
type Statement struct {
	Kind   Kind
	Loc    lexer.Location
	Tokens []string

	Body     []*Statement
	ElseBody []*Statement

	// StartPos and EndPos record this statement's footprint in the
	// generated instruction stream: [StartPos, EndPos).
	StartPos int
	EndPos   int
}
