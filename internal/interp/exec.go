package interp

import (
	"github.com/blakepell/ArcaneScript/internal/ast"
	"github.com/blakepell/ArcaneScript/internal/value"
)

// execBlock runs a brace-delimited statement sequence, stopping as soon as
// any control flag is set.
func (it *Interpreter) execBlock(b *ast.Block) {
	for _, stmt := range b.Statements {
		it.execStmt(stmt)
		if it.returning || it.breaking || it.continuing {
			return
		}
	}
}

func (it *Interpreter) execStmt(stmt ast.Stmt) {
	if it.budgetExceeded() {
		it.fail(CategoryTimeout, "execution timed out")
		return
	}

	switch s := stmt.(type) {
	case *ast.ReturnStmt:
		var v value.Value
		if s.Value != nil {
			v = it.evalExpr(s.Value)
			if it.returning {
				return
			}
		} else {
			v = value.NewNull()
		}
		it.returning = true
		it.returnValue = v

	case *ast.ExprStmt:
		it.evalExpr(s.X)

	case *ast.IfStmt:
		it.execIf(s)

	case *ast.ForStmt:
		it.execFor(s)

	case *ast.WhileStmt:
		it.execWhile(s)

	case *ast.BreakStmt:
		it.breaking = true

	case *ast.ContinueStmt:
		it.continuing = true

	case *ast.Block:
		it.execBlock(s)

	default:
		it.fail(CategoryInternal, "unhandled statement type %T", stmt)
	}
}

// execIf walks the if/else-if/else chain: only the first branch whose
// condition is truthy runs, so every later condition is never evaluated.
func (it *Interpreter) execIf(s *ast.IfStmt) {
	for _, branch := range s.Branches {
		cond := it.evalExpr(branch.Cond)
		if it.returning {
			return
		}
		truth, ok := cond.IsTruthy()
		if !ok {
			it.fail(CategoryType, "if condition must be Int or Bool")
			return
		}
		if truth {
			it.execBlock(branch.Body)
			return
		}
	}
	if s.Else != nil {
		it.execBlock(s.Else)
	}
}

// execFor: init runs once, then condition/body/post repeat. Condition
// typing is the same Int-or-Bool rule if and while use.
func (it *Interpreter) execFor(s *ast.ForStmt) {
	if s.Init != nil {
		it.evalExpr(s.Init)
		if it.returning {
			return
		}
	}

	for {
		if it.budgetExceeded() {
			it.fail(CategoryTimeout, "execution timed out")
			return
		}

		if s.Cond != nil {
			cond := it.evalExpr(s.Cond)
			if it.returning {
				return
			}
			truth, ok := cond.IsTruthy()
			if !ok {
				it.fail(CategoryType, "for condition must be Int or Bool")
				return
			}
			if !truth {
				break
			}
		}

		it.execBlock(s.Body)
		if it.returning {
			return
		}
		if it.breaking {
			it.breaking = false
			break
		}
		it.continuing = false

		if s.Post != nil {
			it.evalExpr(s.Post)
			if it.returning {
				return
			}
		}
	}
}

func (it *Interpreter) execWhile(s *ast.WhileStmt) {
	for {
		if it.budgetExceeded() {
			it.fail(CategoryTimeout, "execution timed out")
			return
		}

		cond := it.evalExpr(s.Cond)
		if it.returning {
			return
		}
		truth, ok := cond.IsTruthy()
		if !ok {
			it.fail(CategoryType, "while condition must be Int or Bool")
			return
		}
		if !truth {
			break
		}

		it.execBlock(s.Body)
		if it.returning {
			return
		}
		if it.breaking {
			it.breaking = false
			break
		}
		it.continuing = false
	}
}
