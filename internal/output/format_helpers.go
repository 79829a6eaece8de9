package output

import (
	"fmt"
	"strconv"
	"time"

	"github.com/debtplan/payoff-engine/internal/domain"
	"github.com/debtplan/payoff-engine/pkg/money"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// FormatCurrency formats cents as USD with thousands separators.
func FormatCurrency(amount money.Cents) string { return amount.Format() }

// FormatRate formats an annual rate fraction as a percentage with 2 decimals.
func FormatRate(rate decimal.Decimal) string { return rate.Mul(decimalHundred).StringFixed(2) + "%" }

// FormatRateString formats a textual rate, returning it unchanged if it does not parse.
func FormatRateString(rate string) string {
	d, err := decimal.NewFromString(rate)
	if err != nil {
		return rate
	}
	return FormatRate(d)
}

// FormatMonths renders a month count as years and months, e.g. "2y 3m".
func FormatMonths(months int) string {
	if months <= 0 {
		return "0m"
	}
	years, rem := months/12, months%12
	switch {
	case years == 0:
		return fmt.Sprintf("%dm", rem)
	case rem == 0:
		return fmt.Sprintf("%dy", years)
	default:
		return fmt.Sprintf("%dy %dm", years, rem)
	}
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string { return t.Format("2006-01-02") }

// PlanLabel identifies a plan variant as scope/scenario/strategy.
func PlanLabel(p domain.DebtPayoffPlan) string {
	return fmt.Sprintf("%s/%s/%s", p.Scope, p.Scenario(), p.Strategy)
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

func dollars(c money.Cents) float64 { return c.Dollars().InexactFloat64() }
