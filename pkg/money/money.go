// Package money represents monetary amounts as integer cents and applies
// decimal rates to them with half-up rounding.
package money

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Cents is an amount of money in integer cents.
type Cents int64

var (
	hundred      = decimal.NewFromInt(100)
	monthsInYear = decimal.NewFromInt(12)
)

// FromDollars converts a dollar amount to cents, rounding half-up.
func FromDollars(d decimal.Decimal) Cents {
	return Cents(d.Mul(hundred).Round(0).IntPart())
}

// ParseDollars parses a dollar string such as "1234.56" or "$1,234.56".
func ParseDollars(s string) (Cents, error) {
	clean := strings.NewReplacer("$", "", ",", "", " ", "").Replace(strings.TrimSpace(s))
	if clean == "" {
		return 0, fmt.Errorf("empty amount")
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return FromDollars(d), nil
}

// Dollars returns the amount in dollars.
func (c Cents) Dollars() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// MulRate multiplies by a decimal factor and rounds half-up to the cent.
func (c Cents) MulRate(rate decimal.Decimal) Cents {
	return Cents(decimal.NewFromInt(int64(c)).Mul(rate).Round(0).IntPart())
}

// MonthlyInterest returns one month of interest at the given annual rate:
// balance x rate / 12, rounded half-up to the cent.
func MonthlyInterest(balance Cents, annualRate decimal.Decimal) Cents {
	return InterestForMonths(balance, annualRate, 1)
}

// InterestForMonths returns simple interest for n months at an annual rate,
// rounded once at the end.
func InterestForMonths(balance Cents, annualRate decimal.Decimal, months int) Cents {
	if balance <= 0 || months <= 0 || !annualRate.IsPositive() {
		return 0
	}
	v := decimal.NewFromInt(int64(balance)).
		Mul(annualRate).
		Mul(decimal.NewFromInt(int64(months))).
		Div(monthsInYear).
		Round(0)
	return Cents(v.IntPart())
}

// Min returns the smaller amount.
func Min(a, b Cents) Cents {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger amount.
func Max(a, b Cents) Cents {
	if a > b {
		return a
	}
	return b
}

// String renders the amount as plain dollars with two decimals.
func (c Cents) String() string {
	return c.Dollars().StringFixed(2)
}

// Format renders the amount as currency with thousands separators.
func (c Cents) Format() string {
	v := int64(c)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s$%s.%02d", sign, humanize.Comma(v/100), v%100)
}
