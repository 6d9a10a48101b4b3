package expr

import (
	"fmt"
	"unicode"
)

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIdent
	TokenNumber

	TokenPlus   // +
	TokenMinus  // -
	TokenMul    // *
	TokenDiv    // /
	TokenCaret  // ^ or **
	TokenLParen // (
	TokenRParen // )
	TokenComma  // ,
)

type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

// Tokenize splits expression text into tokens. Whitespace is insignificant.
func Tokenize(input string) ([]Token, error) {
	var tokens []Token
	i := 0

	for i < len(input) {
		// Skip whitespace
		for i < len(input) && unicode.IsSpace(rune(input[i])) {
			i++
		}

		if i >= len(input) {
			break
		}

		if i+1 < len(input) && input[i] == '*' && input[i+1] == '*' {
			tokens = append(tokens, Token{Type: TokenCaret, Value: "**", Pos: i})
			i += 2
			continue
		}

		switch input[i] {
		case '+':
			tokens = append(tokens, Token{Type: TokenPlus, Value: "+", Pos: i})
			i++
		case '-':
			tokens = append(tokens, Token{Type: TokenMinus, Value: "-", Pos: i})
			i++
		case '*':
			tokens = append(tokens, Token{Type: TokenMul, Value: "*", Pos: i})
			i++
		case '/':
			tokens = append(tokens, Token{Type: TokenDiv, Value: "/", Pos: i})
			i++
		case '^':
			tokens = append(tokens, Token{Type: TokenCaret, Value: "^", Pos: i})
			i++
		case '(':
			tokens = append(tokens, Token{Type: TokenLParen, Value: "(", Pos: i})
			i++
		case ')':
			tokens = append(tokens, Token{Type: TokenRParen, Value: ")", Pos: i})
			i++
		case ',':
			tokens = append(tokens, Token{Type: TokenComma, Value: ",", Pos: i})
			i++
		default:
			switch {
			case unicode.IsDigit(rune(input[i])) || input[i] == '.':
				start := i
				seenDot := false
				for i < len(input) && (unicode.IsDigit(rune(input[i])) || (input[i] == '.' && !seenDot)) {
					if input[i] == '.' {
						seenDot = true
					}
					i++
				}
				if input[start:i] == "." {
					return nil, &ParseError{Message: "malformed number", Pos: start}
				}
				tokens = append(tokens, Token{Type: TokenNumber, Value: input[start:i], Pos: start})
			case unicode.IsLetter(rune(input[i])):
				start := i
				for i < len(input) && (unicode.IsLetter(rune(input[i])) || unicode.IsDigit(rune(input[i])) || input[i] == '_') {
					i++
				}
				tokens = append(tokens, Token{Type: TokenIdent, Value: input[start:i], Pos: start})
			default:
				return nil, &ParseError{Message: fmt.Sprintf("unexpected character %q", input[i]), Pos: i}
			}
		}
	}

	tokens = append(tokens, Token{Type: TokenEOF, Pos: len(input)})
	return tokens, nil
}
