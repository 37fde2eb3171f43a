package calculate

import (
	"fmt"
	"strings"
)

// Calculator накапливает выражение из отдельных нажатий кнопок,
// как настоящий калькулятор. Не предназначен для одновременного
// использования из нескольких горутин: один Calculator на сессию.
type Calculator struct {
	expression string
}

// NewCalculator создаёт калькулятор с пустым выражением
func NewCalculator() *Calculator {
	return &Calculator{}
}

// InputDigit добавляет цифру или десятичную точку.
// Вторая точка в текущем числе игнорируется.
func (c *Calculator) InputDigit(d rune) error {
	switch {
	case d >= '0' && d <= '9':
	case d == '.':
		if strings.Contains(c.currentLiteral(), ".") {
			return nil
		}
	default:
		return fmt.Errorf("недопустимая цифра %q", d)
	}
	c.expression += string(d)
	return nil
}

// InputOperator добавляет оператор. Если выражение уже заканчивается
// оператором, он заменяется новым.
func (c *Calculator) InputOperator(op rune) error {
	if op > 0x7f || !isOperator(byte(op)) {
		return fmt.Errorf("недопустимый оператор %q", op)
	}
	if n := len(c.expression); n > 0 && isOperator(c.expression[n-1]) {
		c.expression = c.expression[:n-1]
	}
	c.expression += string(op)
	return nil
}

// InputParen добавляет открывающую или закрывающую скобку
func (c *Calculator) InputParen(p rune) error {
	if p != '(' && p != ')' {
		return fmt.Errorf("недопустимая скобка %q", p)
	}
	c.expression += string(p)
	return nil
}

// Clear очищает выражение
func (c *Calculator) Clear() {
	c.expression = ""
}

// Backspace удаляет последний символ
func (c *Calculator) Backspace() {
	if c.expression != "" {
		c.expression = c.expression[:len(c.expression)-1]
	}
}

// CurrentExpression возвращает выражение для отображения, "0" если оно пустое
func (c *Calculator) CurrentExpression() string {
	if c.expression == "" {
		return "0"
	}
	return c.expression
}

// SetExpression заменяет выражение целиком, например результатом прошлого вычисления
func (c *Calculator) SetExpression(expression string) {
	c.expression = expression
}

// Calculate вычисляет текущее выражение. Пустое выражение даёт 0.
// При ошибке выражение не очищается: это решает вызывающая сторона.
func (c *Calculator) Calculate() (Number, error) {
	if c.expression == "" {
		return 0, nil
	}
	return Evaluate(c.expression)
}

// CalculateExpression вычисляет произвольное выражение, не трогая текущее
func (c *Calculator) CalculateExpression(expression string) (Number, error) {
	return Evaluate(expression)
}

func (c *Calculator) String() string {
	return fmt.Sprintf("Calculator(expression=%q)", c.expression)
}

// currentLiteral возвращает число, которое сейчас набирается в конце выражения
func (c *Calculator) currentLiteral() string {
	i := len(c.expression)
	for i > 0 && isNumberChar(c.expression[i-1]) {
		i--
	}
	return c.expression[i:]
}
