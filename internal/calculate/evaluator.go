package calculate

import "fmt"

// precedence возвращает приоритет оператора; для скобок 0
func precedence(op byte) int {
	switch op {
	case '+', '-':
		return 1
	case '*', '/':
		return 2
	}
	return 0
}

// apply выполняет одну бинарную операцию. Делитель проверяется до деления.
func apply(op byte, a, b float64, pos int) (float64, error) {
	switch op {
	case '+':
		return a + b, nil
	case '-':
		return a - b, nil
	case '*':
		return a * b, nil
	case '/':
		if b == 0 {
			return 0, DivisionByZeroError(pos)
		}
		return a / b, nil
	}
	return 0, MalformedExpressionError(fmt.Sprintf("неизвестный оператор %q", op), pos)
}

// evaluator хранит рабочие стеки одного вызова Evaluate
type evaluator struct {
	operands  Stack[float64]
	operators Stack[Token]
}

// reduce снимает один оператор и два операнда и кладёт результат обратно
func (e *evaluator) reduce() error {
	op, ok := e.operators.Pop()
	if !ok {
		return MalformedExpressionError("нет оператора для вычисления", -1)
	}
	if op.Kind != TokenOperator {
		return UnbalancedParenthesesError(op.Pos)
	}
	if e.operands.Len() < 2 {
		return MalformedExpressionError(fmt.Sprintf("оператору %q не хватает операндов", op.Op), op.Pos)
	}
	b, _ := e.operands.Pop()
	a, _ := e.operands.Pop()
	result, err := apply(op.Op, a, b, op.Pos)
	if err != nil {
		return err
	}
	e.operands.Push(result)
	return nil
}

// pushOperator сворачивает операторы с приоритетом не ниже текущего и кладёт текущий
func (e *evaluator) pushOperator(tok Token) error {
	for {
		top, ok := e.operators.Peek()
		if !ok || top.Kind != TokenOperator || precedence(top.Op) < precedence(tok.Op) {
			break
		}
		if err := e.reduce(); err != nil {
			return err
		}
	}
	e.operators.Push(tok)
	return nil
}

// closeParen сворачивает операторы до парной открывающей скобки и снимает её
func (e *evaluator) closeParen(tok Token) error {
	for {
		top, ok := e.operators.Peek()
		if !ok {
			return UnbalancedParenthesesError(tok.Pos)
		}
		if top.Kind == TokenLeftParen {
			e.operators.Pop()
			return nil
		}
		if err := e.reduce(); err != nil {
			return err
		}
	}
}

func (e *evaluator) run(tokens []Token) (float64, error) {
	for _, tok := range tokens {
		var err error
		switch tok.Kind {
		case TokenNumber:
			e.operands.Push(tok.Value)
		case TokenOperator:
			err = e.pushOperator(tok)
		case TokenLeftParen:
			e.operators.Push(tok)
		case TokenRightParen:
			err = e.closeParen(tok)
		}
		if err != nil {
			return 0, err
		}
	}

	for !e.operators.IsEmpty() {
		if top, _ := e.operators.Peek(); top.Kind == TokenLeftParen {
			return 0, UnbalancedParenthesesError(top.Pos)
		}
		if err := e.reduce(); err != nil {
			return 0, err
		}
	}

	if e.operands.Len() != 1 {
		return 0, MalformedExpressionError(
			fmt.Sprintf("после вычисления в стеке осталось %d значений вместо одного", e.operands.Len()), -1)
	}
	result, _ := e.operands.Pop()
	return result, nil
}

// Evaluate вычисляет арифметическое выражение с операторами + - * / и скобками.
// Каждый вызов работает со своими стеками, поэтому функция безопасна
// для параллельного использования.
func Evaluate(expression string) (Number, error) {
	tokens, err := Tokenize(expression)
	if err != nil {
		return 0, err
	}
	if len(tokens) == 0 {
		return 0, MalformedExpressionError("пустое выражение", -1)
	}

	var e evaluator
	result, err := e.run(tokens)
	if err != nil {
		return 0, err
	}
	return Normalize(result), nil
}
