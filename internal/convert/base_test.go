package convert

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/GGmuzem/stackcalc/internal/calculate"
)

func TestToBase(t *testing.T) {
	tests := []struct {
		value    float64
		base     int
		expected string
	}{
		{10, 2, "1010"},
		{255, 16, "FF"},
		{8, 8, "10"},
		{0, 2, "0"},
		{-5, 2, "-101"},
		{0.5, 2, "0.1"},
		{2.75, 2, "10.11"},
		{10.5, 16, "A.8"},
		{255.9375, 16, "FF.F"},
		{0.1, 10, "0.1"},
		{1.0 / 3, 10, "0.33333333"},
		{42, 10, "42"},
		{1 << 40, 16, "10000000000"},
		{0.1, 2, "0.00011001"},
	}

	for _, test := range tests {
		result, err := ToBase(test.value, test.base)
		if err != nil {
			t.Errorf("ToBase(%v, %d) failed unexpectedly: %v", test.value, test.base, err)
			continue
		}
		if result != test.expected {
			t.Errorf("ToBase(%v, %d): expected '%s', got '%s'", test.value, test.base, test.expected, result)
		}
	}
}

func TestToBaseErrors(t *testing.T) {
	_, err := ToBase(1, 3)
	var calcErr *calculate.CalcError
	if !errors.As(err, &calcErr) || calcErr.Kind != calculate.KindUnsupportedBase || calcErr.Base != 3 {
		t.Errorf("ToBase(1, 3): expected UnsupportedBase with base 3, got %v", err)
	}

	if _, err := ToBase(math.Inf(1), 2); !errors.Is(err, calculate.ErrMalformedExpression) {
		t.Errorf("ToBase(+Inf, 2): expected MalformedExpression, got %v", err)
	}
}

func TestFromBase(t *testing.T) {
	tests := []struct {
		text     string
		base     int
		expected float64
	}{
		{"1010", 2, 10},
		{"ff", 16, 255},
		{"FF", 16, 255},
		{"FF.8", 16, 255.5},
		{"17", 8, 15},
		{"0.1", 2, 0.5},
		{"-101", 2, -5},
		{"+7", 8, 7},
		{" 42 ", 10, 42},
		{"2.5", 10, 2.5},
		{".8", 16, 0.5},
	}

	for _, test := range tests {
		result, err := FromBase(test.text, test.base)
		if err != nil {
			t.Errorf("FromBase('%s', %d) failed unexpectedly: %v", test.text, test.base, err)
			continue
		}
		if result != test.expected {
			t.Errorf("FromBase('%s', %d): expected %v, got %v", test.text, test.base, test.expected, result)
		}
	}
}

func TestFromBaseInvalidDigit(t *testing.T) {
	tests := []struct {
		text string
		base int
		char rune
		pos  int
	}{
		{"12", 2, '2', 1},
		{"8", 8, '8', 0},
		{"  1g", 16, 'g', 3},
		{"1.0.1", 2, '.', 3},
		{"-1A", 10, 'A', 2},
	}

	for _, test := range tests {
		_, err := FromBase(test.text, test.base)
		var calcErr *calculate.CalcError
		if !errors.As(err, &calcErr) {
			t.Errorf("FromBase('%s', %d): expected *CalcError, got %v", test.text, test.base, err)
			continue
		}
		if calcErr.Kind != calculate.KindInvalidDigitForBase {
			t.Errorf("FromBase('%s', %d): expected InvalidDigitForBase, got %s", test.text, test.base, calcErr.Kind)
		}
		if calcErr.Char != test.char || calcErr.Pos != test.pos || calcErr.Base != test.base {
			t.Errorf("FromBase('%s', %d): expected %q at %d, got %q at %d (base %d)",
				test.text, test.base, test.char, test.pos, calcErr.Char, calcErr.Pos, calcErr.Base)
		}
	}
}

func TestFromBaseMalformed(t *testing.T) {
	for _, text := range []string{"", "   ", "-", "."} {
		if _, err := FromBase(text, 10); !errors.Is(err, calculate.ErrMalformedExpression) {
			t.Errorf("FromBase('%s', 10): expected MalformedExpression, got %v", text, err)
		}
	}
	if _, err := FromBase("1", 12); !errors.Is(err, calculate.ErrUnsupportedBase) {
		t.Errorf("FromBase('1', 12): expected UnsupportedBase, got %v", err)
	}
}

func TestBaseRoundTrip(t *testing.T) {
	values := []float64{-1 << 20, -255, -1, 1 << 40, 1<<53 - 1}
	for n := 0; n <= 4096; n++ {
		values = append(values, float64(n))
	}

	for _, base := range []int{2, 8, 10, 16} {
		for _, n := range values {
			text, err := ToBase(n, base)
			if err != nil {
				t.Fatalf("ToBase(%v, %d): %v", n, base, err)
			}
			back, err := FromBase(text, base)
			if err != nil {
				t.Fatalf("FromBase('%s', %d): %v", text, base, err)
			}
			if back != n {
				t.Errorf("round trip %v via base %d ('%s') gave %v", n, base, text, back)
			}
		}
	}
}

func TestFractionBoundedLength(t *testing.T) {
	fractions := []float64{0.1, 0.2, 1.0 / 3, 0.7, 0.123456789, 0.999, 12.3456, math.Pi}

	for _, base := range []int{2, 8, 10, 16} {
		tolerance := math.Pow(float64(base), -MaxFractionDigits)
		for _, f := range fractions {
			text, err := ToBase(f, base)
			if err != nil {
				t.Fatalf("ToBase(%v, %d): %v", f, base, err)
			}
			if _, frac, ok := strings.Cut(text, "."); ok && len(frac) > MaxFractionDigits {
				t.Errorf("ToBase(%v, %d) = '%s': more than %d fraction digits", f, base, text, MaxFractionDigits)
			}
			back, err := FromBase(text, base)
			if err != nil {
				t.Fatalf("FromBase('%s', %d): %v", text, base, err)
			}
			if math.Abs(back-f) >= tolerance {
				t.Errorf("ToBase(%v, %d) = '%s' decodes to %v, outside tolerance %v", f, base, text, back, tolerance)
			}
		}
	}
}

func TestConvertBase(t *testing.T) {
	tests := []struct {
		value    string
		from, to int
		expected string
	}{
		{"FF", 16, 2, "11111111"},
		{"1010", 2, 10, "10"},
		{"10.5", 10, 16, "A.8"},
		{"777", 8, 16, "1FF"},
		{"a.c", 16, 8, "12.6"},
	}

	for _, test := range tests {
		result, err := ConvertBase(test.value, test.from, test.to)
		if err != nil {
			t.Errorf("ConvertBase('%s', %d, %d) failed unexpectedly: %v", test.value, test.from, test.to, err)
			continue
		}
		if result != test.expected {
			t.Errorf("ConvertBase('%s', %d, %d): expected '%s', got '%s'", test.value, test.from, test.to, test.expected, result)
		}
	}

	if _, err := ConvertBase("12", 10, 7); !errors.Is(err, calculate.ErrUnsupportedBase) {
		t.Errorf("ConvertBase to base 7: expected UnsupportedBase, got %v", err)
	}
	if _, err := ConvertBase("12", 2, 10); !errors.Is(err, calculate.ErrInvalidDigitForBase) {
		t.Errorf("ConvertBase('12', 2, 10): expected InvalidDigitForBase, got %v", err)
	}
}

func TestValidateNumber(t *testing.T) {
	tests := []struct {
		text  string
		base  int
		valid bool
	}{
		{"1011.01", 2, true},
		{"102", 2, false},
		{"7.7", 8, true},
		{"deadBEEF", 16, true},
		{"1.2.3", 10, false},
		{".", 10, false},
		{"", 16, false},
		{"10", 5, false},
	}

	for _, test := range tests {
		if got := ValidateNumber(test.text, test.base); got != test.valid {
			t.Errorf("ValidateNumber('%s', %d) = %v, expected %v", test.text, test.base, got, test.valid)
		}
	}
}
