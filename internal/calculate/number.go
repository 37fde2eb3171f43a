package calculate

import (
	"math"
	"strconv"
)

// Number результат вычисления, отдаваемый вызывающей стороне
type Number float64

// Normalize приводит результат к виду для вызывающей стороны:
// -0 превращается в 0. Вызывается один раз, на выходе из Evaluate.
func Normalize(v float64) Number {
	if v == 0 {
		return 0
	}
	return Number(v)
}

// IsInteger сообщает, что у числа нет дробной части
func (n Number) IsInteger() bool {
	f := float64(n)
	return !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f)
}

func (n Number) Float64() float64 {
	return float64(n)
}

// Int64 возвращает целое значение числа, отбрасывая дробную часть
func (n Number) Int64() int64 {
	return int64(n)
}

// String печатает целые числа без дробной части: 4, а не 4.0
func (n Number) String() string {
	if n.IsInteger() && math.Abs(float64(n)) < 1e21 {
		return strconv.FormatFloat(float64(n), 'f', 0, 64)
	}
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}
