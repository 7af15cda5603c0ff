package gifts

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Amount is a money value in hundredths of the currency unit.
type Amount int64

const (
	amountScale        = 100
	maxAmountIntDigits = 16
)

var ErrInvalidAmount = errors.New("invalid amount")

// ParseAmount reads a plain decimal with at most two fraction digits.
// Exponents and more precision are rejected rather than rounded.
func ParseAmount(value string) (Amount, error) {
	value = strings.TrimSpace(value)
	negative := strings.HasPrefix(value, "-")
	value = strings.TrimPrefix(value, "-")

	whole, frac, hasFrac := strings.Cut(value, ".")
	if whole == "" || len(whole) > maxAmountIntDigits || !digitsOnly(whole) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, value)
	}
	if hasFrac && (frac == "" || len(frac) > 2 || !digitsOnly(frac)) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, value)
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, value)
	}
	cents := int64(0)
	if frac != "" {
		for len(frac) < 2 {
			frac += "0"
		}
		cents, _ = strconv.ParseInt(frac, 10, 64)
	}

	amount := Amount(units*amountScale + cents)
	if negative {
		amount = -amount
	}
	return amount, nil
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (a Amount) String() string {
	sign := ""
	v := int64(a)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/amountScale, v%amountScale)
}

// MarshalJSON writes the amount as a JSON number with two fraction digits.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}
