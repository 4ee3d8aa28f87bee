package codegen

import (
	"github.com/jcorbin/minilang/internal/ast"
	"github.com/jcorbin/minilang/internal/lexer"
	"github.com/jcorbin/minilang/internal/opcode"
	"github.com/jcorbin/minilang/internal/symtab"
)

func (g *generator) genStatement(stmt *ast.Statement) error {
	stmt.StartPos = len(g.code)

	switch stmt.Kind {
	case ast.Write, ast.Writeln:
		g.loadInto(1, stmt.Tokens[1])
		op := opcode.Write
		if stmt.Kind == ast.Writeln {
			op = opcode.Writeln
		}
		g.emit(Instruction{Op: op, N: -1})

	case ast.Read, ast.Rand:
		op := opcode.Read
		if stmt.Kind == ast.Rand {
			op = opcode.Rand
		}
		g.emit(Instruction{Op: op, N: -1})
		if err := g.storeFromReg1(stmt.Loc, stmt.Tokens[1]); err != nil {
			return err
		}

	case ast.AssignVar:
		if err := g.genAssign(stmt.Loc, stmt.Tokens[2], stmt.Tokens[0]); err != nil {
			return err
		}

	case ast.AssignExp:
		if err := g.genAssignExp(stmt); err != nil {
			return err
		}

	case ast.If, ast.While:
		if err := g.genIfWhile(stmt); err != nil {
			return err
		}

	case ast.Break, ast.Continue:
		g.emit(Instruction{Op: opcode.Jump, N: -1})

	case ast.New:
		name, sizeTok, _ := splitIndex(stmt.Tokens[1])
		arr := g.st.LookupOrCreateArray(name, 0)
		g.loadInto(1, sizeTok)
		g.emit(Instruction{Op: opcode.New, N: -1, Args: []int{arr}})

	case ast.Free:
		arr := g.st.LookupOrCreateArray(stmt.Tokens[1], 0)
		g.emit(Instruction{Op: opcode.Free, N: -1, Args: []int{arr}})

	case ast.Size:
		arr := g.st.LookupOrCreateArray(stmt.Tokens[1], 0)
		g.emit(Instruction{Op: opcode.Size, N: -1, Args: []int{arr}})
		if err := g.storeFromReg1(stmt.Loc, stmt.Tokens[2]); err != nil {
			return err
		}

	case ast.ArgSize:
		arr := g.st.LookupOrCreateArray("!args", 0)
		g.emit(Instruction{Op: opcode.Size, N: -1, Args: []int{arr}})
		if err := g.storeFromReg1(stmt.Loc, stmt.Tokens[2]); err != nil {
			return err
		}

	case ast.Arg:
		idxAddr := g.st.LookupOrCreateVariable(stmt.Tokens[1])
		arr := g.st.LookupOrCreateArray("!args", 0)
		g.emit(Instruction{Op: opcode.Load1A, N: -1, Args: []int{idxAddr, arr}})
		if err := g.storeFromReg1(stmt.Loc, stmt.Tokens[2]); err != nil {
			return err
		}
	}

	stmt.EndPos = len(g.code)
	return nil
}

// genAssign emits "target = x" with no operator: ASSIGN_{VV,VA,AV,AA}.
func (g *generator) genAssign(loc lexer.Location, x, target string) error {
	xName, xIdx, xArr := splitIndex(x)
	tName, tIdx, tArr := splitIndex(target)

	switch {
	case !xArr && !tArr:
		if symtab.IsConstant(target) {
			return &ConstAssignError{Loc: loc, Token: target}
		}
		xa := g.st.LookupOrCreateVariable(x)
		ta := g.st.LookupOrCreateVariable(target)
		g.emit(Instruction{Op: opcode.AssignVV, N: -1, Args: []int{xa, ta}})

	case xArr && !tArr:
		if symtab.IsConstant(target) {
			return &ConstAssignError{Loc: loc, Token: target}
		}
		idxA := g.st.LookupOrCreateVariable(xIdx)
		arrA := g.st.LookupOrCreateArray(xName, 0)
		ta := g.st.LookupOrCreateVariable(target)
		g.emit(Instruction{Op: opcode.AssignVA, N: -1, Args: []int{idxA, arrA, ta}})

	case !xArr && tArr:
		xa := g.st.LookupOrCreateVariable(x)
		tIdxA := g.st.LookupOrCreateVariable(tIdx)
		tArrA := g.st.LookupOrCreateArray(tName, 0)
		g.emit(Instruction{Op: opcode.AssignAV, N: -1, Args: []int{xa, tIdxA, tArrA}})

	default:
		xIdxA := g.st.LookupOrCreateVariable(xIdx)
		xArrA := g.st.LookupOrCreateArray(xName, 0)
		tIdxA := g.st.LookupOrCreateVariable(tIdx)
		tArrA := g.st.LookupOrCreateArray(tName, 0)
		g.emit(Instruction{Op: opcode.AssignAA, N: -1, Args: []int{xIdxA, xArrA, tIdxA, tArrA}})
	}
	return nil
}
