package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/GGmuzem/stackcalc/internal/convert"
	"github.com/spf13/cobra"
)

var (
	fromBase int
	toBase   int
	fromUnit string
	toUnit   string
)

var convertCmd = &cobra.Command{
	Use:   "convert VALUE",
	Short: "Перевести число между системами счисления",
	Long:  "Переводит число между системами счисления 2, 8, 10 и 16. Дробная часть ограничена 8 цифрами.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := convert.ConvertBase(args[0], fromBase, toBase)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	},
}

var lengthCmd = &cobra.Command{
	Use:   "length VALUE",
	Short: "Перевести длину между метрами, футами и дюймами",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("некорректная длина %q: %w", args[0], err)
		}
		from, err := convert.ParseUnit(fromUnit)
		if err != nil {
			return fmt.Errorf("%w, доступны: %v", err, convert.SupportedUnits())
		}
		to, err := convert.ParseUnit(toUnit)
		if err != nil {
			return fmt.Errorf("%w, доступны: %v", err, convert.SupportedUnits())
		}

		if from == convert.Meter && to == convert.Foot {
			fi, err := convert.MetersToFeetInches(value)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), fi)
			return nil
		}

		result, err := convert.ConvertLength(value, from, to)
		if err != nil {
			return err
		}
		// до 8 знаков, как и дробная часть при переводе систем счисления
		rounded := math.Round(result*1e8) / 1e8
		fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(rounded, 'f', -1, 64))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().IntVar(&fromBase, "from", 10, "Исходная система счисления")
	convertCmd.Flags().IntVar(&toBase, "to", 2, "Целевая система счисления")

	rootCmd.AddCommand(lengthCmd)
	lengthCmd.Flags().StringVar(&fromUnit, "from", "m", "Исходная единица (m, ft, in)")
	lengthCmd.Flags().StringVar(&toUnit, "to", "ft", "Целевая единица (m, ft, in)")
}
