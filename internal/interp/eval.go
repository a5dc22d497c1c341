package interp

import (
	"github.com/blakepell/ArcaneScript/internal/ast"
	"github.com/blakepell/ArcaneScript/internal/value"
)

// evalExpr dispatches one expression node to its Value. Any call that
// produces an error leaves it.returning set; callers check that flag before
// using the result for anything but propagation.
func (it *Interpreter) evalExpr(expr ast.Expr) value.Value {
	switch e := expr.(type) {
	case *ast.IntLiteral:
		return value.NewInt(e.Value)
	case *ast.FloatLiteral:
		return value.NewDouble(e.Value)
	case *ast.BoolLiteral:
		return value.NewBool(e.Value)
	case *ast.StringLiteral:
		return it.renderTemplate(e.Value)
	case *ast.Identifier:
		v, err := it.Env.Get(e.Name)
		if err != nil {
			return it.fail(CategoryUndefined, "%s", err.Error())
		}
		return v
	case *ast.Assign:
		return it.evalAssign(e)
	case *ast.Binary:
		return it.evalBinary(e)
	case *ast.Unary:
		return it.evalUnary(e)
	case *ast.IncDec:
		return it.evalIncDec(e)
	case *ast.Index:
		return it.evalIndex(e)
	case *ast.Call:
		return it.evalCall(e)
	default:
		return it.fail(CategoryInternal, "unhandled expression type %T", expr)
	}
}

func (it *Interpreter) evalAssign(e *ast.Assign) value.Value {
	rhs := it.evalExpr(e.Value)
	if it.returning {
		return rhs
	}

	var result value.Value
	if e.Op == "+=" {
		cur, err := it.Env.Get(e.Name)
		if err != nil {
			return it.fail(CategoryUndefined, "%s", err.Error())
		}
		result = it.add(cur, rhs)
		if it.returning {
			return result
		}
	} else {
		result = rhs
	}

	it.Env.Set(e.Name, result)
	return result
}

func (it *Interpreter) evalBinary(e *ast.Binary) value.Value {
	switch e.Op {
	case "&&", "||":
		return it.evalLogical(e)
	}

	left := it.evalExpr(e.Left)
	if it.returning {
		return left
	}
	right := it.evalExpr(e.Right)
	if it.returning {
		return right
	}

	switch e.Op {
	case "==":
		return value.NewBool(value.Equal(left, right))
	case "!=":
		return value.NewBool(!value.Equal(left, right))
	case "<", "<=", ">", ">=":
		return it.relational(e.Op, left, right)
	case "+":
		return it.add(left, right)
	case "-", "*", "/":
		return it.arith(e.Op, left, right)
	default:
		return it.fail(CategoryInternal, "unhandled binary operator %q", e.Op)
	}
}

// evalLogical evaluates both operands unconditionally: && and || are
// eager, so side effects in either operand are never skipped.
func (it *Interpreter) evalLogical(e *ast.Binary) value.Value {
	left := it.evalExpr(e.Left)
	if it.returning {
		return left
	}
	right := it.evalExpr(e.Right)
	if it.returning {
		return right
	}

	lt, ok := left.IsTruthy()
	if !ok {
		return it.fail(CategoryType, "operand of %s must be Int or Bool", e.Op)
	}
	rt, ok := right.IsTruthy()
	if !ok {
		return it.fail(CategoryType, "operand of %s must be Int or Bool", e.Op)
	}

	if e.Op == "&&" {
		return value.NewBool(lt && rt)
	}
	return value.NewBool(lt || rt)
}

// relational is defined only on matching int/int, double/double, or
// date/date pairs; unlike the arithmetic operators it does not widen int
// to double.
func (it *Interpreter) relational(op string, left, right value.Value) value.Value {
	var cmp int
	switch {
	case left.Kind == value.Int && right.Kind == value.Int:
		cmp = cmp64(left.IntVal, right.IntVal)
	case left.Kind == value.Double && right.Kind == value.Double:
		cmp = cmp64f(left.DoubleVal, right.DoubleVal)
	case left.Kind == value.Date && right.Kind == value.Date:
		cmp = value.CompareDate(left.DateVal, right.DateVal)
	default:
		return it.fail(CategoryType, "relational operator requires matching numeric or date operands")
	}

	switch op {
	case "<":
		return value.NewBool(cmp < 0)
	case "<=":
		return value.NewBool(cmp <= 0)
	case ">":
		return value.NewBool(cmp > 0)
	default:
		return value.NewBool(cmp >= 0)
	}
}

func cmp64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmp64f(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// add implements "+"'s polymorphic type rule: String wins over numeric
// widening, then Double wins over Int.
func (it *Interpreter) add(left, right value.Value) value.Value {
	if left.Kind == value.String || right.Kind == value.String {
		return value.NewString(left.AsString() + right.AsString())
	}
	if left.Kind == value.Double || right.Kind == value.Double {
		lf, ok1 := asFloat(left)
		rf, ok2 := asFloat(right)
		if !ok1 || !ok2 {
			return it.fail(CategoryType, "+ requires numeric or string operands")
		}
		return value.NewDouble(lf + rf)
	}
	if left.Kind != value.Int || right.Kind != value.Int {
		return it.fail(CategoryType, "+ requires numeric or string operands")
	}
	return value.NewInt(left.IntVal + right.IntVal)
}

// arith implements "-", "*", "/": numeric only, with the same int/double
// widening rule as "+" minus the string case.
func (it *Interpreter) arith(op string, left, right value.Value) value.Value {
	if left.Kind == value.Double || right.Kind == value.Double {
		lf, ok1 := asFloat(left)
		rf, ok2 := asFloat(right)
		if !ok1 || !ok2 {
			return it.fail(CategoryType, "%s requires numeric operands", op)
		}
		switch op {
		case "-":
			return value.NewDouble(lf - rf)
		case "*":
			return value.NewDouble(lf * rf)
		default:
			if rf == 0 {
				return it.fail(CategoryRuntime, "division by zero")
			}
			return value.NewDouble(lf / rf)
		}
	}
	if left.Kind != value.Int || right.Kind != value.Int {
		return it.fail(CategoryType, "%s requires numeric operands", op)
	}
	switch op {
	case "-":
		return value.NewInt(left.IntVal - right.IntVal)
	case "*":
		return value.NewInt(left.IntVal * right.IntVal)
	default:
		if right.IntVal == 0 {
			return it.fail(CategoryRuntime, "division by zero")
		}
		return value.NewInt(left.IntVal / right.IntVal)
	}
}

func asFloat(v value.Value) (float64, bool) {
	switch v.Kind {
	case value.Double:
		return v.DoubleVal, true
	case value.Int:
		return float64(v.IntVal), true
	default:
		return 0, false
	}
}

func (it *Interpreter) evalUnary(e *ast.Unary) value.Value {
	operand := it.evalExpr(e.Operand)
	if it.returning {
		return operand
	}

	switch e.Op {
	case "!":
		truth, ok := operand.IsTruthy()
		if !ok {
			return it.fail(CategoryType, "! requires a Bool or Int operand")
		}
		return value.NewBool(!truth)
	case "-":
		switch operand.Kind {
		case value.Int:
			return value.NewInt(-operand.IntVal)
		case value.Double:
			return value.NewDouble(-operand.DoubleVal)
		default:
			return it.fail(CategoryType, "unary - requires a numeric operand")
		}
	default:
		return it.fail(CategoryInternal, "unhandled unary operator %q", e.Op)
	}
}

// evalIncDec implements postfix/prefix ++/--. Both require the identifier
// to already resolve to an Int; postfix returns the value before the
// update, prefix returns the value after.
func (it *Interpreter) evalIncDec(e *ast.IncDec) value.Value {
	cur, err := it.Env.Get(e.Name)
	if err != nil {
		return it.fail(CategoryUndefined, "%s", err.Error())
	}
	if cur.Kind != value.Int {
		return it.fail(CategoryType, "%s requires an Int variable", e.Op)
	}

	delta := int64(1)
	if e.Op == "--" {
		delta = -1
	}
	updated := value.NewInt(cur.IntVal + delta)
	it.Env.Set(e.Name, updated)

	if e.Prefix {
		return updated
	}
	return cur
}

// evalIndex implements a[i]: a must be Array, i must be an Int within
// bounds. Index nodes chain left-to-right for a[i][j]-style access since
// the parser nests one Index per bracket pair.
func (it *Interpreter) evalIndex(e *ast.Index) value.Value {
	target := it.evalExpr(e.Target)
	if it.returning {
		return target
	}
	if target.Kind != value.Array {
		return it.fail(CategoryType, "index target must be an array")
	}

	key := it.evalExpr(e.Key)
	if it.returning {
		return key
	}
	if key.Kind != value.Int {
		return it.fail(CategoryType, "array index must be an int")
	}

	idx := key.IntVal
	items := target.ArrayVal.Items
	if idx < 0 || idx >= int64(len(items)) {
		return it.fail(CategoryRuntime, "array index out of bounds")
	}
	return items[idx]
}

// evalCall: arguments evaluate left-to-right at assignment-level
// precedence, then dispatch by name through the host registry.
func (it *Interpreter) evalCall(e *ast.Call) value.Value {
	args := make([]value.Value, len(e.Args))
	for i, a := range e.Args {
		v := it.evalExpr(a)
		if it.returning {
			return v
		}
		args[i] = v
	}

	result, ok := it.Host.Call(e.Name, args)
	if !ok {
		return it.fail(CategoryUndefined, "unknown function %s", e.Name)
	}
	if result.Kind == value.Error {
		it.returning = true
		it.returnValue = result
	}
	return result
}
