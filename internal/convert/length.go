package convert

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Unit единица длины
type Unit string

const (
	Meter Unit = "meter"
	Foot  Unit = "foot"
	Inch  Unit = "inch"
)

// Константы перевода
const (
	FootToMeter = 0.3048
	InchToMeter = 0.0254
	FootToInch  = 12.0
)

var (
	ErrNegativeLength = errors.New("длина не может быть отрицательной")
	ErrUnknownUnit    = errors.New("неизвестная единица длины")
)

// SupportedUnits возвращает список поддерживаемых единиц
func SupportedUnits() []Unit {
	return []Unit{Meter, Foot, Inch}
}

// ParseUnit разбирает название единицы, допускаются сокращения m, ft, in
func ParseUnit(name string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "meter", "meters", "m":
		return Meter, nil
	case "foot", "feet", "ft":
		return Foot, nil
	case "inch", "inches", "in":
		return Inch, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUnit, name)
}

func toMeters(value float64, unit Unit) (float64, error) {
	switch unit {
	case Meter:
		return value, nil
	case Foot:
		return value * FootToMeter, nil
	case Inch:
		return value * InchToMeter, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
}

func fromMeters(meters float64, unit Unit) (float64, error) {
	switch unit {
	case Meter:
		return meters, nil
	case Foot:
		return meters / FootToMeter, nil
	case Inch:
		return meters / InchToMeter, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
}

// ConvertLength переводит длину между единицами через метры
func ConvertLength(value float64, from, to Unit) (float64, error) {
	if math.IsNaN(value) || value < 0 {
		return 0, ErrNegativeLength
	}
	meters, err := toMeters(value, from)
	if err != nil {
		return 0, err
	}
	if from == to {
		return value, nil
	}
	return fromMeters(meters, to)
}

// FeetInches длина в футах и дюймах
type FeetInches struct {
	Feet   int     `json:"feet"`
	Inches float64 `json:"inches"`
}

func (fi FeetInches) String() string {
	return fmt.Sprintf("%d ft %g in", fi.Feet, fi.Inches)
}

// MetersToFeetInches раскладывает метры на целые футы и дюймы,
// дюймы округляются до двух знаков.
func MetersToFeetInches(meters float64) (FeetInches, error) {
	if math.IsNaN(meters) || meters < 0 {
		return FeetInches{}, ErrNegativeLength
	}
	totalFeet := meters / FootToMeter
	feet := math.Floor(totalFeet)
	inches := math.Round((totalFeet-feet)*FootToInch*100) / 100
	if inches >= FootToInch {
		feet++
		inches -= FootToInch
	}
	return FeetInches{Feet: int(feet), Inches: inches}, nil
}
