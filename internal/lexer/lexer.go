// Package lexer turns already-split source lines into located, tokenized
// lines for internal/parser to consume. How the lines were obtained (file,
// stdin, an embedded string) is the driver's concern, not this package's.
package lexer

import (
	"fmt"
	"strings"
)

// Location identifies a line within a named source.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Line is one logical line of source: its location, its leading-tab
// indentation depth, and its raw text with that indentation stripped.
type Line struct {
	Location
	Indent int
	Text   string
}

// Lines locates and measures the indentation of a slice of raw source
// lines, one per input string.
func Lines(name string, raw []string) []Line {
	out := make([]Line, len(raw))
	for i, text := range raw {
		indent := 0
		for indent < len(text) && text[indent] == '\t' {
			indent++
		}
		out[i] = Line{
			Location: Location{Name: name, Line: i + 1},
			Indent:   indent,
			Text:     text[indent:],
		}
	}
	return out
}

// Blank reports whether a line's stripped text is empty or a whole-line
// comment -- a line the parser should skip while still counting it for
// location purposes.
func (l Line) Blank() bool {
	return l.Text == "" || strings.HasPrefix(l.Text, "#")
}

// Tokens splits a line's text into at most 6 whitespace-delimited tokens,
// stopping at one that opens an inline comment.
func (l Line) Tokens() []string {
	fields := strings.Fields(l.Text)
	var toks []string
	for _, f := range fields {
		if strings.HasPrefix(f, "#") {
			break
		}
		if len(toks) == 6 {
			break
		}
		toks = append(toks, f)
	}
	return toks
}
