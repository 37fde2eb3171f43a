package calculate

import (
	"errors"
	"testing"
)

// press нажимает кнопки по очереди: цифры, точку, операторы, скобки и спецкнопки
func press(t *testing.T, c *Calculator, keys string) {
	t.Helper()
	for _, k := range keys {
		var err error
		switch {
		case k >= '0' && k <= '9' || k == '.':
			err = c.InputDigit(k)
		case k == '+' || k == '-' || k == '*' || k == '/':
			err = c.InputOperator(k)
		case k == '(' || k == ')':
			err = c.InputParen(k)
		case k == '<':
			c.Backspace()
		case k == 'C':
			c.Clear()
		default:
			t.Fatalf("unknown key %q", k)
		}
		if err != nil {
			t.Fatalf("key %q: %v", k, err)
		}
	}
}

func TestCalculatorBuffer(t *testing.T) {
	tests := []struct {
		name     string
		keys     string
		expected string
	}{
		{"Empty", "", "0"},
		{"Digits", "123", "123"},
		{"OperatorReplaced", "5+-", "5-"},
		{"OperatorReplacedTwice", "5+*/", "5/"},
		{"Expression", "12*3+4", "12*3+4"},
		{"Backspace", "123<", "12"},
		{"BackspaceToEmpty", "1<", "0"},
		{"BackspaceOnEmpty", "<<", "0"},
		{"Clear", "12+3C", "0"},
		{"ClearThenType", "12+3C7", "7"},
		{"SecondPointIgnored", "1.2.3", "1.23"},
		{"PointInNextNumber", "1.2+.5", "1.2+.5"},
		{"Parentheses", "(1+2)*3", "(1+2)*3"},
		{"LeadingOperator", "+", "+"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := NewCalculator()
			press(t, c, test.keys)
			if got := c.CurrentExpression(); got != test.expected {
				t.Errorf("keys '%s': expected buffer '%s', got '%s'", test.keys, test.expected, got)
			}
		})
	}
}

func TestCalculatorRejectsInvalidInput(t *testing.T) {
	c := NewCalculator()
	if err := c.InputDigit('x'); err == nil {
		t.Error("InputDigit('x') expected to fail")
	}
	if err := c.InputOperator('%'); err == nil {
		t.Error("InputOperator('%') expected to fail")
	}
	if err := c.InputOperator('≠'); err == nil {
		t.Error("InputOperator('≠') expected to fail")
	}
	if err := c.InputParen('['); err == nil {
		t.Error("InputParen('[') expected to fail")
	}
	if got := c.CurrentExpression(); got != "0" {
		t.Errorf("buffer changed after rejected input: '%s'", got)
	}
}

func TestCalculatorCalculate(t *testing.T) {
	c := NewCalculator()

	result, err := c.Calculate()
	if err != nil || result != 0 {
		t.Fatalf("empty buffer: expected 0, got %v, %v", result, err)
	}

	press(t, c, "5*8+16")
	result, err = c.Calculate()
	if err != nil {
		t.Fatalf("Calculate failed unexpectedly: %v", err)
	}
	if result != 56 {
		t.Errorf("expected 56, got %v", result)
	}
	if got := c.CurrentExpression(); got != "5*8+16" {
		t.Errorf("buffer changed after Calculate: '%s'", got)
	}
}

func TestCalculatorKeepsBufferOnError(t *testing.T) {
	c := NewCalculator()
	press(t, c, "5/0")

	_, err := c.Calculate()
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("expected DivisionByZero, got %v", err)
	}
	if got := c.CurrentExpression(); got != "5/0" {
		t.Errorf("buffer changed after error: '%s'", got)
	}

	// Ошибка не оставляет мусора: следующее вычисление начинается с чистых стеков
	press(t, c, "<2")
	result, err := c.Calculate()
	if err != nil || result != 2.5 {
		t.Errorf("expected 2.5 after correction, got %v, %v", result, err)
	}
}

func TestCalculatorCalculateExpression(t *testing.T) {
	c := NewCalculator()
	press(t, c, "1+")

	result, err := c.CalculateExpression("(10+5)*3")
	if err != nil || result != 45 {
		t.Errorf("expected 45, got %v, %v", result, err)
	}
	if got := c.CurrentExpression(); got != "1+" {
		t.Errorf("CalculateExpression changed buffer: '%s'", got)
	}
}

func TestCalculatorChaining(t *testing.T) {
	c := NewCalculator()
	press(t, c, "4*5")
	result, err := c.Calculate()
	if err != nil {
		t.Fatal(err)
	}

	c.SetExpression(result.String())
	press(t, c, "-6")
	result, err = c.Calculate()
	if err != nil || result != 14 {
		t.Errorf("expected 14, got %v, %v", result, err)
	}
}
