package convert

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"

	"github.com/GGmuzem/stackcalc/internal/calculate"
)

// MaxFractionDigits ограничивает длину дробной части при переводе,
// иначе перевод 0.1 в двоичную систему не завершится.
const MaxFractionDigits = 8

const digits = "0123456789ABCDEF"

// IsSupportedBase сообщает, поддерживается ли основание
func IsSupportedBase(base int) bool {
	return base == 2 || base == 8 || base == 10 || base == 16
}

func checkBase(base int) error {
	if !IsSupportedBase(base) {
		return calculate.UnsupportedBaseError(base)
	}
	return nil
}

// digitValue возвращает значение цифры без учёта регистра или -1
func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	}
	return -1
}

// ToBase переводит число в строку в системе счисления base.
// Дробная часть переводится умножением на основание, не более MaxFractionDigits цифр.
func ToBase(value float64, base int) (string, error) {
	if err := checkBase(base); err != nil {
		return "", err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "", calculate.MalformedExpressionError("число должно быть конечным", -1)
	}

	var sb strings.Builder
	if value < 0 {
		sb.WriteByte('-')
		value = -value
	}

	if base == 10 {
		sb.WriteString(formatDecimal(value))
		return sb.String(), nil
	}

	intPart, frac := math.Modf(value)
	sb.WriteString(integerToBase(intPart, base))

	if fraction := fractionToBase(frac, base); fraction != "" {
		sb.WriteByte('.')
		sb.WriteString(fraction)
	}
	return sb.String(), nil
}

// integerToBase переводит целую часть повторным делением на основание.
// Используется big.Int, чтобы работать с любым конечным float64.
func integerToBase(intPart float64, base int) string {
	n, _ := new(big.Float).SetFloat64(intPart).Int(nil)
	if n.Sign() == 0 {
		return "0"
	}

	b := big.NewInt(int64(base))
	rem := new(big.Int)
	var out []byte
	for n.Sign() > 0 {
		n.QuoRem(n, b, rem)
		out = append(out, digits[rem.Int64()])
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

func fractionToBase(frac float64, base int) string {
	var out []byte
	for i := 0; i < MaxFractionDigits && frac > 0; i++ {
		frac *= float64(base)
		d := int(frac)
		out = append(out, digits[d])
		frac -= float64(d)
	}
	return strings.TrimRight(string(out), "0")
}

// formatDecimal печатает число в десятичной системе с тем же ограничением дробной части
func formatDecimal(value float64) string {
	s := strconv.FormatFloat(value, 'f', -1, 64)
	intPart, frac, ok := strings.Cut(s, ".")
	if !ok {
		return s
	}
	if len(frac) > MaxFractionDigits {
		frac = frac[:MaxFractionDigits]
	}
	frac = strings.TrimRight(frac, "0")
	if frac == "" {
		return intPart
	}
	return intPart + "." + frac
}

// FromBase разбирает строку в системе счисления base.
// Регистр шестнадцатеричных цифр не важен.
func FromBase(text string, base int) (float64, error) {
	if err := checkBase(base); err != nil {
		return 0, err
	}

	trimmed := strings.TrimLeftFunc(text, unicode.IsSpace)
	offset := len(text) - len(trimmed)
	s := strings.TrimRightFunc(trimmed, unicode.IsSpace)
	if s == "" {
		return 0, calculate.MalformedExpressionError("пустое число", -1)
	}

	negative := false
	if s[0] == '-' || s[0] == '+' {
		negative = s[0] == '-'
		s = s[1:]
		offset++
	}

	var value float64
	seenPoint := false
	digitCount := 0
	weight := 1.0
	for i, r := range s {
		if r == '.' && !seenPoint {
			seenPoint = true
			continue
		}
		d := digitValue(r)
		if d < 0 || d >= base {
			return 0, calculate.InvalidDigitError(r, offset+i, base)
		}
		digitCount++
		if !seenPoint {
			value = value*float64(base) + float64(d)
		} else {
			weight /= float64(base)
			value += float64(d) * weight
		}
	}
	if digitCount == 0 {
		return 0, calculate.MalformedExpressionError("число без цифр", offset)
	}

	// Для десятичной записи strconv даёт точное округление
	if base == 10 {
		if parsed, err := strconv.ParseFloat(s, 64); err == nil {
			value = parsed
		}
	}

	if negative {
		value = -value
	}
	return value, nil
}

// ConvertBase переводит запись числа из одной системы счисления в другую
func ConvertBase(value string, fromBase, toBase int) (string, error) {
	if err := checkBase(fromBase); err != nil {
		return "", err
	}
	if err := checkBase(toBase); err != nil {
		return "", err
	}

	decimal, err := FromBase(value, fromBase)
	if err != nil {
		return "", err
	}
	return ToBase(decimal, toBase)
}

// ValidateNumber проверяет, что строка является записью числа в системе base
func ValidateNumber(text string, base int) bool {
	if !IsSupportedBase(base) {
		return false
	}
	_, err := FromBase(text, base)
	return err == nil
}
