// Package parser implements Arcane's recursive-descent grammar, producing
// the AST in internal/ast from a token sequence. Expression parsing is a
// precedence cascade, loosest binding first: assignment, ||, &&, equality,
// relational, additive, multiplicative, unary, primary.
package parser

import (
	"fmt"
	"strconv"

	"github.com/blakepell/ArcaneScript/internal/ast"
	"github.com/blakepell/ArcaneScript/internal/lexer"
)

// Error is a parse-time syntax error: an unexpected token or a malformed
// construct.
type Error struct {
	Message string
	Pos     lexer.Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse error at %s: %s", e.Pos, e.Message)
}

// Parser holds a token sequence and a cursor into it.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// Parse tokenizes and parses src in one call, going from source text to a
// Program. The run command instead calls lexer.Tokenize and New separately
// so it can format lexer and parser errors against the source.
func Parse(src string) (*ast.Program, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	p := New(tokens)
	return p.ParseProgram()
}

// New creates a Parser over an already-tokenized sequence.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) cur() lexer.Token { return p.tokens[p.pos] }
func (p *Parser) peek() lexer.Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) advance() lexer.Token {
	tok := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) expect(tt lexer.TokenType) (lexer.Token, error) {
	if p.cur().Type != tt {
		return lexer.Token{}, &Error{
			Message: fmt.Sprintf("expected %s, got %s (%q)", tt, p.cur().Type, p.cur().Literal),
			Pos:     p.cur().Pos,
		}
	}
	return p.advance(), nil
}

// ParseProgram parses every statement up to end-of-input.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := &ast.Program{}
	for p.cur().Type != lexer.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
	}
	return program, nil
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	lbrace, err := p.expect(lexer.LBRACE)
	if err != nil {
		return nil, err
	}
	block := &ast.Block{BracePos: lbrace.Pos}
	for p.cur().Type != lexer.RBRACE {
		if p.cur().Type == lexer.EOF {
			return nil, &Error{Message: "unterminated block, expected }", Pos: p.cur().Pos}
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return block, nil
}

func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch p.cur().Type {
	case lexer.RETURN:
		return p.parseReturn()
	case lexer.IF:
		return p.parseIf()
	case lexer.FOR:
		return p.parseFor()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.BREAK:
		pos := p.advance().Pos
		if _, err := p.expect(lexer.SEMICOLON); err != nil {
			return nil, err
		}
		return &ast.BreakStmt{Position: pos}, nil
	case lexer.CONTINUE:
		pos := p.advance().Pos
		if _, err := p.expect(lexer.SEMICOLON); err != nil {
			return nil, err
		}
		return &ast.ContinueStmt{Position: pos}, nil
	default:
		return p.parseExprStatement()
	}
}

func (p *Parser) parseReturn() (ast.Stmt, error) {
	pos := p.advance().Pos // consume 'return'
	if p.cur().Type == lexer.SEMICOLON {
		p.advance()
		return &ast.ReturnStmt{Position: pos}, nil
	}
	expr, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Value: expr, Position: pos}, nil
}

// parseIf parses an if/else-if/else chain. Once a branch is taken at
// evaluation time, no remaining else/else-if condition is evaluated; that
// falls out for free, since an if-chain node only ever walks the one taken
// branch.
func (p *Parser) parseIf() (ast.Stmt, error) {
	pos := p.advance().Pos // consume 'if'
	stmt := &ast.IfStmt{Position: pos}

	branch, err := p.parseIfBranch()
	if err != nil {
		return nil, err
	}
	stmt.Branches = append(stmt.Branches, branch)

	for p.cur().Type == lexer.ELSE {
		p.advance()
		if p.cur().Type == lexer.IF {
			p.advance()
			branch, err := p.parseIfBranch()
			if err != nil {
				return nil, err
			}
			stmt.Branches = append(stmt.Branches, branch)
			continue
		}
		elseBlock, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		stmt.Else = elseBlock
		break
	}

	return stmt, nil
}

func (p *Parser) parseIfBranch() (ast.IfBranch, error) {
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return ast.IfBranch{}, err
	}
	cond, err := p.parseAssignment()
	if err != nil {
		return ast.IfBranch{}, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return ast.IfBranch{}, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return ast.IfBranch{}, err
	}
	return ast.IfBranch{Cond: cond, Body: body}, nil
}

func (p *Parser) parseFor() (ast.Stmt, error) {
	pos := p.advance().Pos // consume 'for'
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}

	stmt := &ast.ForStmt{Position: pos}

	if p.cur().Type != lexer.SEMICOLON {
		init, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		stmt.Init = init
	}
	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}

	if p.cur().Type != lexer.SEMICOLON {
		cond, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		stmt.Cond = cond
	}
	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}

	if p.cur().Type != lexer.RPAREN {
		post, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		stmt.Post = post
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	stmt.Body = body
	return stmt, nil
}

func (p *Parser) parseWhile() (ast.Stmt, error) {
	pos := p.advance().Pos // consume 'while'
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Cond: cond, Body: body, Position: pos}, nil
}

func (p *Parser) parseExprStatement() (ast.Stmt, error) {
	pos := p.cur().Pos
	expr, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{X: expr, Position: pos}, nil
}

// --- Expressions, lowest to highest precedence ----------------------------

// parseAssignment handles "=" and "+=": right-associative, with a bare
// identifier required on the left.
func (p *Parser) parseAssignment() (ast.Expr, error) {
	if p.cur().Type == lexer.IDENT && (p.peek().Type == lexer.ASSIGN || p.peek().Type == lexer.PLUS_ASSIGN) {
		ident := p.advance()
		opTok := p.advance()
		right, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		op := "="
		if opTok.Type == lexer.PLUS_ASSIGN {
			op = "+="
		}
		return &ast.Assign{Name: ident.Literal, Op: op, Value: right, Position: ident.Pos}, nil
	}
	return p.parseLogicalOr()
}

func (p *Parser) parseLogicalOr() (ast.Expr, error) {
	left, err := p.parseLogicalAnd()
	if err != nil {
		return nil, err
	}
	for p.cur().Type == lexer.OR {
		pos := p.advance().Pos
		right, err := p.parseLogicalAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: "||", Left: left, Right: right, Position: pos}
	}
	return left, nil
}

func (p *Parser) parseLogicalAnd() (ast.Expr, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.cur().Type == lexer.AND {
		pos := p.advance().Pos
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: "&&", Left: left, Right: right, Position: pos}
	}
	return left, nil
}

func (p *Parser) parseEquality() (ast.Expr, error) {
	left, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	for p.cur().Type == lexer.EQ || p.cur().Type == lexer.NEQ {
		opTok := p.advance()
		right, err := p.parseRelational()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: opTok.Literal, Left: left, Right: right, Position: opTok.Pos}
	}
	return left, nil
}

func (p *Parser) parseRelational() (ast.Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for isRelational(p.cur().Type) {
		opTok := p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: opTok.Literal, Left: left, Right: right, Position: opTok.Pos}
	}
	return left, nil
}

func isRelational(tt lexer.TokenType) bool {
	switch tt {
	case lexer.LT, lexer.LE, lexer.GT, lexer.GE:
		return true
	}
	return false
}

func (p *Parser) parseAdditive() (ast.Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.cur().Type == lexer.PLUS || p.cur().Type == lexer.MINUS {
		opTok := p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: opTok.Literal, Left: left, Right: right, Position: opTok.Pos}
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur().Type == lexer.STAR || p.cur().Type == lexer.SLASH {
		opTok := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: opTok.Literal, Left: left, Right: right, Position: opTok.Pos}
	}
	return left, nil
}

// parseUnary handles prefix "!", prefix "++"/"--" (identifier target
// required), and prefix "-". Unary "-" recurses through parseUnary so it
// reaches any primary, a parenthesized expression included, not only a
// numeric literal directly after it.
func (p *Parser) parseUnary() (ast.Expr, error) {
	switch p.cur().Type {
	case lexer.BANG:
		pos := p.advance().Pos
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: "!", Operand: operand, Position: pos}, nil

	case lexer.MINUS:
		pos := p.advance().Pos
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: "-", Operand: operand, Position: pos}, nil

	case lexer.INC, lexer.DEC:
		opTok := p.advance()
		if p.cur().Type != lexer.IDENT {
			return nil, &Error{Message: "prefix ++/-- requires an identifier", Pos: p.cur().Pos}
		}
		ident := p.advance()
		return &ast.IncDec{Name: ident.Literal, Op: opTok.Literal, Prefix: true, Position: opTok.Pos}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.cur()

	switch tok.Type {
	case lexer.INT:
		p.advance()
		n, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, &Error{Message: fmt.Sprintf("invalid integer literal %q", tok.Literal), Pos: tok.Pos}
		}
		return &ast.IntLiteral{Value: n, Position: tok.Pos}, nil

	case lexer.FLOAT:
		p.advance()
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, &Error{Message: fmt.Sprintf("invalid double literal %q", tok.Literal), Pos: tok.Pos}
		}
		return &ast.FloatLiteral{Value: f, Position: tok.Pos}, nil

	case lexer.STRING:
		p.advance()
		return &ast.StringLiteral{Value: tok.Literal, Position: tok.Pos}, nil

	case lexer.BOOL:
		p.advance()
		return &ast.BoolLiteral{Value: tok.Literal == "true", Position: tok.Pos}, nil

	case lexer.LPAREN:
		p.advance()
		expr, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil

	case lexer.IDENT:
		p.advance()
		return p.parseIdentifierTail(tok)
	}

	return nil, &Error{Message: fmt.Sprintf("unexpected token %s (%q)", tok.Type, tok.Literal), Pos: tok.Pos}
}

// parseIdentifierTail resolves the primary forms that start with a bare
// identifier: a host call, one or more chained index accesses, a postfix
// ++/--, or the plain identifier itself.
func (p *Parser) parseIdentifierTail(ident lexer.Token) (ast.Expr, error) {
	if p.cur().Type == lexer.LPAREN {
		return p.parseCall(ident)
	}

	var expr ast.Expr = &ast.Identifier{Name: ident.Literal, Position: ident.Pos}

	if p.cur().Type == lexer.LBRACKET {
		for p.cur().Type == lexer.LBRACKET {
			pos := p.advance().Pos
			key, err := p.parseAssignment()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.RBRACKET); err != nil {
				return nil, err
			}
			expr = &ast.Index{Target: expr, Key: key, Position: pos}
		}
		return expr, nil
	}

	if p.cur().Type == lexer.INC || p.cur().Type == lexer.DEC {
		opTok := p.advance()
		return &ast.IncDec{Name: ident.Literal, Op: opTok.Literal, Prefix: false, Position: opTok.Pos}, nil
	}

	return expr, nil
}

func (p *Parser) parseCall(ident lexer.Token) (ast.Expr, error) {
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	call := &ast.Call{Name: ident.Literal, Position: ident.Pos}
	for p.cur().Type != lexer.RPAREN {
		arg, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)
		if p.cur().Type == lexer.COMMA {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return call, nil
}
