package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/GGmuzem/stackcalc/internal/calculate"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Интерактивный режим",
	Long: `Каждая строка набирается в калькулятор как последовательность клавиш:
цифры, точка, операторы + - * /, скобки, '<' стирает последний символ,
'c' очищает выражение. В конце строки выражение вычисляется, результат
остаётся в калькуляторе для продолжения. 'q' завершает работу.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(in io.Reader, out io.Writer) error {
	calc := calculate.NewCalculator()
	chained := false

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "q" || line == "quit" || line == "exit" {
			break
		}
		if line == "" {
			continue
		}

		// новое число после результата начинает новое выражение
		if chained && startsOperand(line[0]) {
			calc.Clear()
		}

		if err := pressKeys(calc, line); err != nil {
			fmt.Fprintln(out, color.RedString("%v", err))
			chained = false
			continue
		}
		if strings.HasSuffix(line, "c") || strings.HasSuffix(line, "C") {
			fmt.Fprintln(out, calc.CurrentExpression())
			chained = false
			continue
		}

		result, err := calc.Calculate()
		if err != nil {
			fmt.Fprintf(out, "%s\n  %s\n", color.RedString("%v", err), calc.CurrentExpression())
			chained = false
			continue
		}
		fmt.Fprintln(out, result)
		chained = chainResult(calc, result)
	}
	return scanner.Err()
}

// pressKeys передает строку в калькулятор посимвольно
func pressKeys(calc *calculate.Calculator, keys string) error {
	for _, key := range keys {
		var err error
		switch {
		case key == ' ' || key == '\t' || key == '=':
		case key == 'c' || key == 'C':
			calc.Clear()
		case key == '<':
			calc.Backspace()
		case key == '(' || key == ')':
			err = calc.InputParen(key)
		case key == '+' || key == '-' || key == '*' || key == '/':
			err = calc.InputOperator(key)
		default:
			err = calc.InputDigit(key)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func startsOperand(ch byte) bool {
	return (ch >= '0' && ch <= '9') || ch == '.' || ch == '('
}

// chainResult кладет результат обратно в калькулятор. Отрицательное
// число записывается как 0-x, экспоненциальная запись не продолжается.
func chainResult(calc *calculate.Calculator, result calculate.Number) bool {
	text := result.String()
	if strings.ContainsAny(text, "eE") {
		calc.Clear()
		return false
	}
	if strings.HasPrefix(text, "-") {
		text = "0" + text
	}
	calc.SetExpression(text)
	return true
}
