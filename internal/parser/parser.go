// Package parser builds an internal/ast statement tree from tokenized,
// indentation-structured source: one statement per logical line, nested
// blocks one tab deeper than their header.
package parser

import (
	"fmt"
	"strconv"

	"github.com/jcorbin/minilang/internal/ast"
	"github.com/jcorbin/minilang/internal/lexer"
)

// SyntaxError reports a fatal compile-time parse failure.
type SyntaxError struct {
	Loc    lexer.Location
	Text   string
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v: %s: %q", e.Loc, e.Reason, e.Text)
}

// Parse builds the statement tree for a named source's raw lines.
func Parse(name string, raw []string) ([]*ast.Statement, error) {
	lines := lexer.Lines(name, raw)
	stmts, _, err := parseBlock(lines, 0, 0)
	return stmts, err
}

// parseBlock parses the contiguous run of lines starting at i whose indent
// equals depth, stopping at the first line with a lesser indent. It returns
// the parsed statements and the index just past the consumed run.
func parseBlock(lines []lexer.Line, i, depth int) ([]*ast.Statement, int, error) {
	var stmts []*ast.Statement
	for i < len(lines) {
		line := lines[i]
		if line.Blank() {
			i++
			continue
		}
		if line.Indent < depth {
			break
		}
		if line.Indent > depth {
			return nil, i, &SyntaxError{line.Location, line.Text, "unexpected indentation"}
		}

		tokens := line.Tokens()
		if len(tokens) == 0 {
			i++
			continue
		}

		if tokens[0] == "else" {
			if len(stmts) == 0 {
				return nil, i, &SyntaxError{line.Location, line.Text, "else without a preceding if"}
			}
			prior := stmts[len(stmts)-1]
			if prior.Kind != ast.If && prior.Kind != ast.While {
				return nil, i, &SyntaxError{line.Location, line.Text, "else without a preceding if or while"}
			}
			body, next, err := parseBlock(lines, i+1, depth+1)
			if err != nil {
				return nil, i, err
			}
			prior.ElseBody = body
			i = next
			continue
		}

		kind, ok := classify(tokens)
		if !ok {
			return nil, i, &SyntaxError{line.Location, line.Text, "unrecognized statement"}
		}
		stmt := &ast.Statement{Kind: kind, Loc: line.Location, Tokens: tokens}
		stmts = append(stmts, stmt)
		i++

		if kind == ast.If || kind == ast.While {
			body, next, err := parseBlock(lines, i, depth+1)
			if err != nil {
				return nil, i, err
			}
			stmt.Body = body
			i = next
		}
	}
	return stmts, i, nil
}

func classify(tokens []string) (ast.Kind, bool) {
	switch tokens[0] {
	case "write":
		return ast.Write, len(tokens) == 2
	case "writeln":
		return ast.Writeln, len(tokens) == 2
	case "read":
		return ast.Read, len(tokens) == 2
	case "if":
		return ast.If, len(tokens) == 4
	case "while":
		return ast.While, len(tokens) == 4
	case "random":
		return ast.Rand, len(tokens) == 2
	case "break":
		return ast.Break, len(tokens) == 1 || (len(tokens) == 2 && isUint(tokens[1]))
	case "continue":
		return ast.Continue, len(tokens) == 1 || (len(tokens) == 2 && isUint(tokens[1]))
	case "new":
		return ast.New, len(tokens) == 2
	case "free":
		return ast.Free, len(tokens) == 2
	case "size":
		return ast.Size, len(tokens) == 3
	case "argument":
		if len(tokens) == 3 && tokens[1] == "size" {
			return ast.ArgSize, true
		}
		return ast.Arg, len(tokens) == 3
	}

	if len(tokens) == 3 && tokens[1] == "=" {
		return ast.AssignVar, true
	}
	if len(tokens) == 5 && tokens[1] == "=" {
		return ast.AssignExp, true
	}

	return 0, false
}

func isUint(s string) bool {
	_, err := strconv.ParseUint(s, 10, 64)
	return err == nil
}
