// Package codegen lowers an internal/ast statement tree into a flat slice
// of internal/opcode.Code instructions for a two-register, stack-less
// machine: the compiler's code generator, operand-mode dispatcher, and
// break/continue resolver.
package codegen

import (
	"github.com/jcorbin/minilang/internal/ast"
	"github.com/jcorbin/minilang/internal/lexer"
	"github.com/jcorbin/minilang/internal/opcode"
	"github.com/jcorbin/minilang/internal/symtab"
)

// Generate lowers stmts into a flat instruction list, terminated by HALT,
// with every break/continue jump resolved.
func Generate(stmts []*ast.Statement, st *symtab.SymbolTable) ([]Instruction, error) {
	g := &generator{st: st}
	if err := g.genBlock(stmts); err != nil {
		return nil, err
	}
	g.emit(Instruction{Op: opcode.Halt, N: -1})
	if err := resolveBreakContinue(stmts, g.code, nil); err != nil {
		return nil, err
	}
	return g.code, nil
}

type generator struct {
	st   *symtab.SymbolTable
	code []Instruction
}

func (g *generator) emit(instr Instruction) int {
	g.code = append(g.code, instr)
	return len(g.code) - 1
}

func (g *generator) genBlock(stmts []*ast.Statement) error {
	for _, stmt := range stmts {
		if err := g.genStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

// loadInto emits a LOAD into register 1 (reg == 1) or register 2 (reg == 2)
// for a scalar or array-indexed operand token.
func (g *generator) loadInto(reg int, token string) {
	name, index, isArray := splitIndex(token)
	if isArray {
		op := opcode.Load1A
		if reg == 2 {
			op = opcode.Load2A
		}
		arr := g.st.LookupOrCreateArray(name, 0)
		idx := g.st.LookupOrCreateVariable(index)
		g.emit(Instruction{Op: op, N: -1, Args: []int{idx, arr}})
		return
	}
	op := opcode.Load1V
	if reg == 2 {
		op = opcode.Load2V
	}
	addr := g.st.LookupOrCreateVariable(token)
	g.emit(Instruction{Op: op, N: -1, Args: []int{addr}})
}

// storeFromReg1 emits a STORE of register 1 into a scalar or array-indexed
// destination token.
func (g *generator) storeFromReg1(loc lexer.Location, token string) error {
	name, index, isArray := splitIndex(token)
	if isArray {
		arr := g.st.LookupOrCreateArray(name, 0)
		idx := g.st.LookupOrCreateVariable(index)
		g.emit(Instruction{Op: opcode.StoreA, N: -1, Args: []int{idx, arr}})
		return nil
	}
	if symtab.IsConstant(token) {
		return &ConstAssignError{Loc: loc, Token: token}
	}
	addr := g.st.LookupOrCreateVariable(token)
	g.emit(Instruction{Op: opcode.StoreV, N: -1, Args: []int{addr}})
	return nil
}

func (g *generator) varOrArrayArgs(token string) []int {
	name, index, isArray := splitIndex(token)
	if isArray {
		arr := g.st.LookupOrCreateArray(name, 0)
		idx := g.st.LookupOrCreateVariable(index)
		return []int{idx, arr}
	}
	return []int{g.st.LookupOrCreateVariable(token)}
}

func isArrayToken(token string) bool {
	_, _, isArray := splitIndex(token)
	return isArray
}
