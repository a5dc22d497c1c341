package parser

import (
	"testing"

	"github.com/blakepell/ArcaneScript/internal/ast"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", src, err)
	}
	return prog
}

func TestParseAssignRightAssociative(t *testing.T) {
	prog := mustParse(t, "a = b = 5;")
	stmt := prog.Statements[0].(*ast.ExprStmt)
	outer, ok := stmt.X.(*ast.Assign)
	if !ok {
		t.Fatalf("got %T, want *ast.Assign", stmt.X)
	}
	if outer.Name != "a" {
		t.Errorf("outer target = %q, want a", outer.Name)
	}
	inner, ok := outer.Value.(*ast.Assign)
	if !ok {
		t.Fatalf("outer.Value = %T, want *ast.Assign", outer.Value)
	}
	if inner.Name != "b" {
		t.Errorf("inner target = %q, want b", inner.Name)
	}
}

func TestParseBinaryPrecedence(t *testing.T) {
	prog := mustParse(t, "2 * 3 + 1;")
	stmt := prog.Statements[0].(*ast.ExprStmt)
	add, ok := stmt.X.(*ast.Binary)
	if !ok || add.Op != "+" {
		t.Fatalf("got %#v, want top-level +", stmt.X)
	}
	mul, ok := add.Left.(*ast.Binary)
	if !ok || mul.Op != "*" {
		t.Fatalf("got %#v, want * as left operand of +", add.Left)
	}
}

func TestParseLeftAssociativeSubtraction(t *testing.T) {
	prog := mustParse(t, "1 - 2 - 3;")
	stmt := prog.Statements[0].(*ast.ExprStmt)
	outer, ok := stmt.X.(*ast.Binary)
	if !ok || outer.Op != "-" {
		t.Fatalf("got %#v, want top-level -", stmt.X)
	}
	if _, ok := outer.Left.(*ast.Binary); !ok {
		t.Fatalf("expected (1-2) nested on the left, got %#v", outer.Left)
	}
	if _, ok := outer.Right.(*ast.IntLiteral); !ok {
		t.Fatalf("expected literal 3 on the right, got %#v", outer.Right)
	}
}

func TestParseUnaryMinusOnParenthesized(t *testing.T) {
	prog := mustParse(t, "-(a + 1);")
	stmt := prog.Statements[0].(*ast.ExprStmt)
	un, ok := stmt.X.(*ast.Unary)
	if !ok || un.Op != "-" {
		t.Fatalf("got %#v, want unary -", stmt.X)
	}
	if _, ok := un.Operand.(*ast.Binary); !ok {
		t.Fatalf("expected a parenthesized binary operand, got %#v", un.Operand)
	}
}

func TestParseIfElseIfElse(t *testing.T) {
	prog := mustParse(t, `
		if (a) { b(); }
		else if (c) { d(); }
		else { e(); }
	`)
	ifStmt, ok := prog.Statements[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.IfStmt", prog.Statements[0])
	}
	if len(ifStmt.Branches) != 2 {
		t.Fatalf("got %d branches, want 2 (if + else-if)", len(ifStmt.Branches))
	}
	if ifStmt.Else == nil {
		t.Fatal("expected a trailing else block")
	}
}

func TestParseForHeaderClauses(t *testing.T) {
	prog := mustParse(t, "for (i = 0; i < 3; i++) { print(i); }")
	forStmt, ok := prog.Statements[0].(*ast.ForStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.ForStmt", prog.Statements[0])
	}
	if forStmt.Init == nil || forStmt.Cond == nil || forStmt.Post == nil {
		t.Fatal("expected all three for-header clauses to be present")
	}
}

func TestParseForOmittedClauses(t *testing.T) {
	prog := mustParse(t, "for (;;) { break; }")
	forStmt, ok := prog.Statements[0].(*ast.ForStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.ForStmt", prog.Statements[0])
	}
	if forStmt.Init != nil || forStmt.Cond != nil || forStmt.Post != nil {
		t.Fatal("expected all three for-header clauses to be nil when omitted")
	}
}

func TestParseIndexChaining(t *testing.T) {
	prog := mustParse(t, "a[0][1];")
	stmt := prog.Statements[0].(*ast.ExprStmt)
	outer, ok := stmt.X.(*ast.Index)
	if !ok {
		t.Fatalf("got %T, want *ast.Index", stmt.X)
	}
	if _, ok := outer.Target.(*ast.Index); !ok {
		t.Fatalf("expected nested Index as target, got %#v", outer.Target)
	}
}

func TestParsePostfixIncDec(t *testing.T) {
	prog := mustParse(t, "a++;")
	stmt := prog.Statements[0].(*ast.ExprStmt)
	inc, ok := stmt.X.(*ast.IncDec)
	if !ok {
		t.Fatalf("got %T, want *ast.IncDec", stmt.X)
	}
	if inc.Prefix {
		t.Error("expected a++ to parse as postfix")
	}
}

func TestParseCallArgs(t *testing.T) {
	prog := mustParse(t, `foo(1, "x", a+1);`)
	stmt := prog.Statements[0].(*ast.ExprStmt)
	call, ok := stmt.X.(*ast.Call)
	if !ok {
		t.Fatalf("got %T, want *ast.Call", stmt.X)
	}
	if call.Name != "foo" || len(call.Args) != 3 {
		t.Fatalf("got Name=%q len(Args)=%d, want foo/3", call.Name, len(call.Args))
	}
}

func TestParseUnterminatedBlockError(t *testing.T) {
	if _, err := Parse("if (a) { b();"); err == nil {
		t.Fatal("expected an error for an unterminated block")
	}
}
