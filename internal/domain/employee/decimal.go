package employee

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// maxExponent bounds scientific notation such as "1e50000000", whose fixed
// rendering would be millions of digits long.
const maxExponent = 64

// ParseDecimal converts operator text into an exact decimal. Thousands
// separators are dropped; nothing else is rewritten.
func ParseDecimal(text string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(text, ",", ""))
	if cleaned == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: empty value", ErrInvalidDecimal)
	}
	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidDecimal, text)
	}
	if exp := value.Exponent(); exp > maxExponent || exp < -maxExponent {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is out of range", ErrInvalidDecimal, text)
	}
	return value, nil
}

// FormatAmount renders a value with two decimal places and comma-grouped
// thousands, rounding half to even.
func FormatAmount(value decimal.Decimal) string {
	fixed := value.RoundBank(2).StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	return sign + b.String() + "." + frac
}
