package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GGmuzem/stackcalc/internal/calculate"
	"github.com/GGmuzem/stackcalc/internal/client"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var remote bool

// errFailed сообщает, что хотя бы одно выражение из потока не вычислилось
var errFailed = errors.New("не все выражения вычислены")

// evalFunc вычисляет одно выражение и возвращает его запись
type evalFunc func(ctx context.Context, expression string) (string, error)

var evalCmd = &cobra.Command{
	Use:   "eval [EXPR]",
	Short: "Вычислить выражение",
	Long: `Вычисляет выражение из аргумента. Без аргумента читает stdin,
по одному выражению на строку. С --remote выражение вычисляется
на сервисе по gRPC (адрес из GRPC_SERVER).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var eval evalFunc = localEval
		if remote {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			c, err := client.NewGRPCClient(cfg.GRPCServer)
			if err != nil {
				return err
			}
			defer c.Close()
			eval = c.Evaluate
		}

		if len(args) == 0 {
			return evalLines(cmd.Context(), os.Stdin, cmd.OutOrStdout(), eval)
		}

		result, err := eval(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().BoolVar(&remote, "remote", false, "Вычислять на сервисе по gRPC")
}

// localEval вычисляет выражение в текущем процессе
func localEval(_ context.Context, expression string) (string, error) {
	result, err := calculate.Evaluate(expression)
	if err != nil {
		return "", err
	}
	return result.String(), nil
}

// evalLines вычисляет каждую непустую строку. Ошибки печатаются в out
// и не прерывают обработку остальных строк.
func evalLines(ctx context.Context, in io.Reader, out io.Writer, eval evalFunc) error {
	if ctx == nil {
		ctx = context.Background()
	}

	failed := false
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		result, err := eval(ctx, line)
		if err != nil {
			fmt.Fprintln(out, color.RedString("%v", err))
			failed = true
			continue
		}
		fmt.Fprintln(out, result)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if failed {
		return errFailed
	}
	return nil
}
