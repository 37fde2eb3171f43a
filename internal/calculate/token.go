package calculate

import (
	"fmt"
	"strconv"
)

// TokenKind тип лексемы выражения
type TokenKind int

const (
	TokenNumber TokenKind = iota
	TokenOperator
	TokenLeftParen
	TokenRightParen
)

func (k TokenKind) String() string {
	switch k {
	case TokenNumber:
		return "number"
	case TokenOperator:
		return "operator"
	case TokenLeftParen:
		return "("
	case TokenRightParen:
		return ")"
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token лексема выражения. Value заполняется только для чисел,
// Op только для операторов и скобок.
type Token struct {
	Kind  TokenKind
	Value float64
	Op    byte
	Pos   int
}

func (t Token) String() string {
	if t.Kind == TokenNumber {
		return strconv.FormatFloat(t.Value, 'f', -1, 64)
	}
	return string(t.Op)
}

func isOperator(ch byte) bool {
	return ch == '+' || ch == '-' || ch == '*' || ch == '/'
}

func isNumberChar(ch byte) bool {
	return (ch >= '0' && ch <= '9') || ch == '.'
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

// Tokenize разбивает выражение на лексемы слева направо.
// Подряд идущие цифры и точки образуют одно число.
func Tokenize(expression string) ([]Token, error) {
	tokens := make([]Token, 0, len(expression))

	for i := 0; i < len(expression); {
		ch := expression[i]

		switch {
		case isSpace(ch):
			i++
		case isNumberChar(ch):
			start := i
			for i < len(expression) && isNumberChar(expression[i]) {
				i++
			}
			literal := expression[start:i]
			value, err := strconv.ParseFloat(literal, 64)
			if err != nil {
				return nil, MalformedExpressionError(fmt.Sprintf("некорректное число %q", literal), start)
			}
			tokens = append(tokens, Token{Kind: TokenNumber, Value: value, Pos: start})
		case isOperator(ch):
			tokens = append(tokens, Token{Kind: TokenOperator, Op: ch, Pos: i})
			i++
		case ch == '(':
			tokens = append(tokens, Token{Kind: TokenLeftParen, Op: ch, Pos: i})
			i++
		case ch == ')':
			tokens = append(tokens, Token{Kind: TokenRightParen, Op: ch, Pos: i})
			i++
		default:
			r := []rune(expression[i:])[0]
			return nil, UnexpectedCharError(r, i)
		}
	}

	return tokens, nil
}
