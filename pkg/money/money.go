package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrNotANumber  = errors.New("value is not a valid number")
	ErrNegative    = errors.New("value cannot be negative")
	ErrTooPrecise = errors.New("value cannot have more than two fraction digits")
)

// Parse converts a raw monetary string into an exact decimal. Values are
// rejected when unparseable, negative or carrying sub-cent precision;
// binary floats are never involved.
func Parse(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, ErrNotANumber
	}
	if d.IsNegative() {
		return decimal.Zero, ErrNegative
	}
	if d.Exponent() < -2 {
		return decimal.Zero, ErrTooPrecise
	}
	return d, nil
}

// Format renders a monetary value with exactly two fraction digits,
// the serialization used everywhere at the API boundary.
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatBRL renders a value for display in Brazilian currency notation,
// e.g. "R$ 1.250,00".
func FormatBRL(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.SplitN(s, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := "R$ " + strings.Join(groups, ".") + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
