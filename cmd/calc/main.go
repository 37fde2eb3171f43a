package main

import (
	"fmt"
	"os"

	"github.com/GGmuzem/stackcalc/internal/config"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var envFile string

// rootCmd без подкоманды открывает REPL на терминале и вычисляет
// строки из stdin в остальных случаях.
var rootCmd = &cobra.Command{
	Use:   "calc",
	Short: "Стековый калькулятор и конвертер систем счисления",
	Long: `calc вычисляет арифметические выражения (+ - * / и скобки),
переводит числа между системами счисления 2, 8, 10, 16
и единицы длины между метрами, футами и дюймами.

Без аргументов на терминале запускается интерактивный режим.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			return runREPL(os.Stdin, cmd.OutOrStdout())
		}
		return evalLines(cmd.Context(), os.Stdin, cmd.OutOrStdout(), localEval)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("%v", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "Файл с переменными окружения")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
