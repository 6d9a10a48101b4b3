// Package expr implements the expression language shared by every plot
// mode: a tokenizer, a recursive-descent parser producing an immutable
// tree, and a compiler/evaluator executing that tree over complex128
// values. The grammar is plain infix arithmetic with ^ (or **) for
// exponentiation, unary negation, parentheses, and name(args...) calls.
package expr

import (
	"fmt"
	"strconv"
	"strings"
)

// reserved constants always in scope, regardless of the free variable name
var constants = map[string]bool{
	"i":  true,
	"pi": true,
	"e":  true,
}

// Parse turns expression text into a tree. It never evaluates. Empty or
// whitespace-only input returns ErrEmptyExpression.
func Parse(input string) (Node, error) {
	if strings.TrimSpace(input) == "" {
		return nil, ErrEmptyExpression
	}

	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens}
	node, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if p.current().Type != TokenEOF {
		return nil, &ParseError{
			Message: fmt.Sprintf("unexpected %q after expression", p.current().Value),
			Pos:     p.current().Pos,
		}
	}
	return node, nil
}

// IsValid reports whether input parses, without producing a tree. Used for
// live validation of partially typed expressions. Empty input is invalid.
func IsValid(input string) bool {
	_, err := Parse(input)
	return err == nil
}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *parser) advance() {
	p.pos++
}

func (p *parser) parseAdditive() (Node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenPlus || p.current().Type == TokenMinus {
		op := BinaryOpAdd
		if p.current().Type == TokenMinus {
			op = BinaryOpSub
		}
		p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &BinaryOpNode{Left: left, Op: op, Right: right}
	}

	return left, nil
}

func (p *parser) parseMultiplicative() (Node, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenMul || p.current().Type == TokenDiv {
		op := BinaryOpMul
		if p.current().Type == TokenDiv {
			op = BinaryOpDiv
		}
		p.advance()
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		left = &BinaryOpNode{Left: left, Op: op, Right: right}
	}

	return left, nil
}

// parsePower handles ^ and **. Right-associative: z^w^v is z^(w^v).
func (p *parser) parsePower() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	if p.current().Type == TokenCaret {
		p.advance()
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		return &BinaryOpNode{Left: left, Op: BinaryOpPow, Right: right}, nil
	}

	return left, nil
}

// parseUnary binds tighter than ^, so -z^2 is (-z)^2.
func (p *parser) parseUnary() (Node, error) {
	if p.current().Type == TokenMinus {
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryOpNode{Op: UnaryOpNeg, Operand: operand}, nil
	}
	if p.current().Type == TokenPlus {
		p.advance()
		return p.parseUnary()
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Node, error) {
	tok := p.current()
	switch tok.Type {
	case TokenNumber:
		val, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, &ParseError{Message: fmt.Sprintf("malformed number %q", tok.Value), Pos: tok.Pos}
		}
		p.advance()
		return &NumberNode{Value: val}, nil

	case TokenIdent:
		name := tok.Value
		p.advance()

		if p.current().Type == TokenLParen {
			p.advance() // consume (
			args := []Node{}
			for p.current().Type != TokenRParen {
				arg, err := p.parseAdditive()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if p.current().Type == TokenComma {
					p.advance()
				} else if p.current().Type != TokenRParen {
					return nil, &ParseError{Message: "expected , or )", Pos: p.current().Pos}
				}
			}
			p.advance() // consume )
			return &CallNode{Name: name, Args: args}, nil
		}

		if constants[name] {
			return &ConstantNode{Name: name}, nil
		}
		return &VariableNode{Name: name}, nil

	case TokenLParen:
		p.advance()
		node, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		if p.current().Type != TokenRParen {
			return nil, &ParseError{Message: "expected )", Pos: p.current().Pos}
		}
		p.advance()
		return node, nil

	case TokenEOF:
		return nil, &ParseError{Message: "unexpected end of expression", Pos: tok.Pos}

	default:
		return nil, &ParseError{Message: fmt.Sprintf("unexpected token %q", tok.Value), Pos: tok.Pos}
	}
}
