package calculate

import (
	"errors"
	"fmt"
)

// ErrorKind вид ошибки вычисления. Набор видов закрыт.
type ErrorKind string

const (
	KindDivisionByZero        ErrorKind = "DivisionByZero"
	KindUnbalancedParentheses ErrorKind = "UnbalancedParentheses"
	KindMalformedExpression   ErrorKind = "MalformedExpression"
	KindInvalidDigitForBase   ErrorKind = "InvalidDigitForBase"
	KindUnsupportedBase       ErrorKind = "UnsupportedBase"
)

// CalcError описывает ошибку обработки выражения или числа.
// Pos равен -1, если позиция неизвестна.
type CalcError struct {
	Kind    ErrorKind
	Message string
	Pos     int
	Char    rune
	Base    int
}

func (e *CalcError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("%s: %s (позиция %d)", e.Kind, e.Message, e.Pos)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is сравнивает ошибки по виду, чтобы errors.Is работал с сентинелами ниже.
func (e *CalcError) Is(target error) bool {
	var t *CalcError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Сентинелы для errors.Is
var (
	ErrDivisionByZero        = &CalcError{Kind: KindDivisionByZero, Message: "деление на ноль", Pos: -1}
	ErrUnbalancedParentheses = &CalcError{Kind: KindUnbalancedParentheses, Message: "скобки не сбалансированы", Pos: -1}
	ErrMalformedExpression   = &CalcError{Kind: KindMalformedExpression, Message: "некорректное выражение", Pos: -1}
	ErrInvalidDigitForBase   = &CalcError{Kind: KindInvalidDigitForBase, Message: "недопустимая цифра", Pos: -1}
	ErrUnsupportedBase       = &CalcError{Kind: KindUnsupportedBase, Message: "неподдерживаемая система счисления", Pos: -1}
)

// NewCalcError создает новую ошибку CalcError
func NewCalcError(kind ErrorKind, message string, pos int) *CalcError {
	return &CalcError{Kind: kind, Message: message, Pos: pos}
}

// DivisionByZeroError создаёт ошибку деления на ноль
func DivisionByZeroError(pos int) *CalcError {
	return NewCalcError(KindDivisionByZero, "деление на ноль", pos)
}

// UnbalancedParenthesesError создаёт ошибку несбалансированных скобок
func UnbalancedParenthesesError(pos int) *CalcError {
	return NewCalcError(KindUnbalancedParentheses, "скобки не сбалансированы", pos)
}

// MalformedExpressionError создаёт ошибку некорректного выражения
func MalformedExpressionError(message string, pos int) *CalcError {
	return NewCalcError(KindMalformedExpression, message, pos)
}

// UnexpectedCharError сообщает о символе, который не может встречаться в выражении
func UnexpectedCharError(ch rune, pos int) *CalcError {
	err := NewCalcError(KindMalformedExpression, fmt.Sprintf("недопустимый символ %q", ch), pos)
	err.Char = ch
	return err
}

// InvalidDigitError создаёт ошибку цифры, не принадлежащей алфавиту системы счисления
func InvalidDigitError(ch rune, pos, base int) *CalcError {
	return &CalcError{
		Kind:    KindInvalidDigitForBase,
		Message: fmt.Sprintf("символ %q недопустим в системе счисления с основанием %d", ch, base),
		Pos:     pos,
		Char:    ch,
		Base:    base,
	}
}

// UnsupportedBaseError создаёт ошибку неподдерживаемого основания
func UnsupportedBaseError(base int) *CalcError {
	return &CalcError{
		Kind:    KindUnsupportedBase,
		Message: fmt.Sprintf("основание %d не поддерживается, допустимы 2, 8, 10, 16", base),
		Pos:     -1,
		Base:    base,
	}
}

// KindOf возвращает вид ошибки или пустую строку, если err не CalcError.
func KindOf(err error) ErrorKind {
	var calcErr *CalcError
	if errors.As(err, &calcErr) {
		return calcErr.Kind
	}
	return ""
}
