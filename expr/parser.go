package expr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rulego/colexpr/types"
)

// BuildFunc 构造函数调用节点，解析器通过它创建所有运算与函数节点
type BuildFunc func(function string, args ...Node) (Node, error)

// RawCall 不做校验，直接创建调用节点
func RawCall(function string, args ...Node) (Node, error) {
	return NewCall(function, args), nil
}

// SyntaxError 表达式文本的语法错误
type SyntaxError struct {
	Pos     int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at position %d: %s", e.Pos, e.Message)
}

// comparisonOperators 比较运算符到注册表函数名
var comparisonOperators = map[string]string{
	"=":  OpEq,
	"==": OpEq,
	"!=": OpNe,
	"<>": OpNe,
	"<":  OpLt,
	"<=": OpLe,
	">":  OpGt,
	">=": OpGe,
}

// Parse parses SQL expression text into a node tree.
//
// Precedence from low to high: OR, AND, NOT, comparison and IS [NOT] NULL,
// + and -, * / and %, unary minus, then field access a.b and item access a[i].
// CASE, CAST(x AS type) and a trailing "AS name" are supported. Every call
// node is created through build; nil means RawCall.
func Parse(text string, build BuildFunc) (Node, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	if build == nil {
		build = RawCall
	}
	p := &parser{tokens: tokens, build: build}
	node, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.keyword("AS") {
		name := p.next()
		if name.Type != TokenIdent && name.Type != TokenString {
			return nil, p.errorf(name, "expected alias name, got %s", name)
		}
		if node, err = p.build(OpAlias, node, stringLiteral(name.Value)); err != nil {
			return nil, err
		}
	}
	if tok := p.peek(); tok.Type != TokenEOF {
		return nil, p.errorf(tok, "unexpected token %s", tok)
	}
	return node, nil
}

type parser struct {
	tokens []Token
	pos    int
	build  BuildFunc
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *parser) next() Token {
	tok := p.tokens[p.pos]
	if tok.Type != TokenEOF {
		p.pos++
	}
	return tok
}

// keyword 若下一个是指定关键字则消费它
func (p *parser) keyword(word string) bool {
	if tok := p.peek(); tok.Type == TokenKeyword && tok.Value == word {
		p.pos++
		return true
	}
	return false
}

func (p *parser) operator(ops ...string) (string, bool) {
	tok := p.peek()
	if tok.Type != TokenOperator {
		return "", false
	}
	for _, op := range ops {
		if tok.Value == op {
			p.pos++
			return op, true
		}
	}
	return "", false
}

func (p *parser) expect(t TokenType, what string) (Token, error) {
	tok := p.next()
	if tok.Type != t {
		return tok, p.errorf(tok, "expected %s, got %s", what, tok)
	}
	return tok, nil
}

func (p *parser) expectKeyword(word string) error {
	if !p.keyword(word) {
		return p.errorf(p.peek(), "expected %s, got %s", word, p.peek())
	}
	return nil
}

func (p *parser) errorf(tok Token, format string, args ...interface{}) error {
	return &SyntaxError{Pos: tok.Pos, Message: fmt.Sprintf(format, args...)}
}

func (p *parser) parseOr() (Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.keyword("OR") {
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		if left, err = p.build(OpOr, left, right); err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *parser) parseAnd() (Node, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.keyword("AND") {
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		if left, err = p.build(OpAnd, left, right); err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *parser) parseNot() (Node, error) {
	if p.keyword("NOT") {
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return p.build(OpNot, operand)
	}
	return p.parseComparison()
}

func (p *parser) parseComparison() (Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}

	if p.keyword("IS") {
		op := OpIsNull
		if p.keyword("NOT") {
			op = OpIsNotNull
		}
		if err := p.expectKeyword("NULL"); err != nil {
			return nil, err
		}
		return p.build(op, left)
	}

	if tok := p.peek(); tok.Type == TokenOperator {
		if op, ok := comparisonOperators[tok.Value]; ok {
			p.pos++
			right, err := p.parseAdditive()
			if err != nil {
				return nil, err
			}
			return p.build(op, left, right)
		}
	}
	return left, nil
}

func (p *parser) parseAdditive() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.operator("+", "-")
		if !ok {
			return left, nil
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if left, err = p.build(op, left, right); err != nil {
			return nil, err
		}
	}
}

func (p *parser) parseTerm() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.operator("*", "/", "%")
		if !ok {
			return left, nil
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if left, err = p.build(op, left, right); err != nil {
			return nil, err
		}
	}
}

// parseUnary 负号紧跟数字时直接生成负数常量
func (p *parser) parseUnary() (Node, error) {
	if _, ok := p.operator("-"); ok {
		if tok := p.peek(); tok.Type == TokenNumber {
			p.pos++
			return numberLiteral("-" + tok.Value)
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return p.build(OpNegate, operand)
	}
	if _, ok := p.operator("+"); ok {
		return p.parseUnary()
	}
	return p.parsePostfix()
}

func (p *parser) parsePostfix() (Node, error) {
	node, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.peek().Type == TokenOperator && p.peek().Value == ".":
			p.pos++
			name, err := p.expect(TokenIdent, "field name")
			if err != nil {
				return nil, err
			}
			if node, err = p.build(OpGetField, node, stringLiteral(name.Value)); err != nil {
				return nil, err
			}
		case p.peek().Type == TokenOperator && p.peek().Value == "[":
			p.pos++
			key, err := p.parseOr()
			if err != nil {
				return nil, err
			}
			if _, ok := p.operator("]"); !ok {
				return nil, p.errorf(p.peek(), "expected ], got %s", p.peek())
			}
			if node, err = p.build(OpGetItem, node, key); err != nil {
				return nil, err
			}
		default:
			return node, nil
		}
	}
}

func (p *parser) parsePrimary() (Node, error) {
	tok := p.next()
	switch tok.Type {
	case TokenNumber:
		return numberLiteral(tok.Value)
	case TokenString:
		return stringLiteral(tok.Value), nil
	case TokenLeftParen:
		node, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRightParen, ")"); err != nil {
			return nil, err
		}
		return node, nil
	case TokenKeyword:
		switch tok.Value {
		case "NULL":
			return NewLiteral(types.NullScalar()), nil
		case "TRUE":
			return NewLiteral(types.BoolScalar(true)), nil
		case "FALSE":
			return NewLiteral(types.BoolScalar(false)), nil
		case "CASE":
			return p.parseCase()
		case "CAST":
			return p.parseCast()
		}
	case TokenIdent:
		if p.peek().Type == TokenLeftParen {
			p.pos++
			return p.parseFunctionCall(tok.Value)
		}
		return NewColumnRef(tok.Value), nil
	}
	return nil, p.errorf(tok, "unexpected token %s", tok)
}

// parseFunctionCall 函数名与左括号已消费
func (p *parser) parseFunctionCall(function string) (Node, error) {
	var args []Node
	if p.peek().Type == TokenRightParen {
		p.pos++
		return p.build(function, args...)
	}
	for {
		arg, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		tok := p.next()
		if tok.Type == TokenRightParen {
			break
		}
		if tok.Type != TokenComma {
			return nil, p.errorf(tok, "expected ',' or ')' in call to %s, got %s", function, tok)
		}
	}
	return p.build(function, args...)
}

// parseCase CASE 关键字已消费。
// 多个分支展开为嵌套的 when/otherwise：
// CASE WHEN a THEN x WHEN b THEN y ELSE z END => otherwise(when(a, x), otherwise(when(b, y), z))
func (p *parser) parseCase() (Node, error) {
	var operand Node
	if tok := p.peek(); !(tok.Type == TokenKeyword && tok.Value == "WHEN") {
		var err error
		if operand, err = p.parseOr(); err != nil {
			return nil, err
		}
	}

	type clause struct{ cond, value Node }
	var clauses []clause
	for p.keyword("WHEN") {
		cond, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if operand != nil {
			if cond, err = p.build(OpEq, operand, cond); err != nil {
				return nil, err
			}
		}
		if err := p.expectKeyword("THEN"); err != nil {
			return nil, err
		}
		value, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, clause{cond: cond, value: value})
	}
	if len(clauses) == 0 {
		return nil, p.errorf(p.peek(), "expected WHEN in CASE expression, got %s", p.peek())
	}

	var rest Node
	if p.keyword("ELSE") {
		var err error
		if rest, err = p.parseOr(); err != nil {
			return nil, err
		}
	}
	if err := p.expectKeyword("END"); err != nil {
		return nil, err
	}

	for i := len(clauses) - 1; i >= 0; i-- {
		when, err := p.build("when", clauses[i].cond, clauses[i].value)
		if err != nil {
			return nil, err
		}
		if rest == nil {
			rest = when
			continue
		}
		if rest, err = p.build("otherwise", when, rest); err != nil {
			return nil, err
		}
	}
	return rest, nil
}

// parseCast CAST(x AS type)，类型名可带参数，如 DECIMAL(10, 2)
func (p *parser) parseCast() (Node, error) {
	if _, err := p.expect(TokenLeftParen, "("); err != nil {
		return nil, err
	}
	value, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("AS"); err != nil {
		return nil, err
	}
	name, err := p.expect(TokenIdent, "type name")
	if err != nil {
		return nil, err
	}
	dataType := name.Value
	if p.peek().Type == TokenLeftParen {
		p.pos++
		var params []string
		for {
			n, err := p.expect(TokenNumber, "type parameter")
			if err != nil {
				return nil, err
			}
			params = append(params, n.Value)
			if p.peek().Type != TokenComma {
				break
			}
			p.pos++
		}
		if _, err := p.expect(TokenRightParen, ")"); err != nil {
			return nil, err
		}
		dataType += "(" + strings.Join(params, ",") + ")"
	}
	if _, err := p.expect(TokenRightParen, ")"); err != nil {
		return nil, err
	}
	return p.build(OpCast, value, stringLiteral(dataType))
}

func stringLiteral(s string) *Literal {
	return NewLiteral(types.StringScalar(s))
}

// numberLiteral 整数优先，溢出或含小数点时为浮点
func numberLiteral(text string) (Node, error) {
	if !strings.ContainsAny(text, ".eE") {
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return NewLiteral(types.IntScalar(i)), nil
		}
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", text)
	}
	return NewLiteral(types.FloatScalar(f)), nil
}
