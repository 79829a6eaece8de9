package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/debtplan/payoff-engine/internal/domain"
	"github.com/debtplan/payoff-engine/pkg/money"
)

// ConsoleVerboseFormatter renders the detailed console report: assumptions,
// the plan table, per-debt detail for every plan and a yearly schedule digest.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string      { return "console-verbose" }
func (c ConsoleVerboseFormatter) Extension() string { return "txt" }

func (c ConsoleVerboseFormatter) Format(results *domain.PlanResult) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 80))
	fmt.Fprintln(&buf, "DETAILED DEBT PAYOFF ANALYSIS")
	fmt.Fprintln(&buf, strings.Repeat("=", 80))
	fmt.Fprintln(&buf)
	writeHeader(&buf, results)

	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range reportAssumptions(results) {
		fmt.Fprintf(&buf, "- %s\n", a)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, planTable(results.Plans))
	writeAnalysis(&buf, results)
	fmt.Fprintln(&buf)

	for i, plan := range results.Plans {
		fmt.Fprintf(&buf, "PLAN %d: %s\n", i+1, PlanLabel(plan))
		fmt.Fprintln(&buf, strings.Repeat("-", 50))
		fmt.Fprintln(&buf, debtTable(plan.Debts))
		if len(plan.Schedule) > 0 {
			fmt.Fprintln(&buf, scheduleDigest(plan))
		}
		fmt.Fprintln(&buf)
	}
	return buf.Bytes(), nil
}

func debtTable(debts []domain.DebtResult) string {
	rows := make([][]string, 0, len(debts))
	for _, d := range debts {
		rows = append(rows, []string{
			d.ID,
			string(d.Type),
			intToString(d.PayoffOrder),
			FormatCurrency(d.StartingBalance),
			FormatRateString(d.InterestRate),
			FormatCurrency(d.MinimumPayment),
			intToString(d.PayoffMonth),
			FormatDate(d.PayoffDate),
			FormatCurrency(d.InterestPaid),
			FormatCurrency(d.TotalPaid),
		})
	}
	return renderTable([]string{"Debt", "Type", "Order", "Balance", "Rate", "Minimum", "Month", "Paid off", "Interest", "Total paid"}, rows, 2)
}

// scheduleDigest summarizes the schedule at every twelfth month and the final month.
func scheduleDigest(plan domain.DebtPayoffPlan) string {
	var rows [][]string
	var interest, paid money.Cents
	last := len(plan.Schedule) - 1
	for i, snap := range plan.Schedule {
		interest += snap.TotalInterest()
		paid += snap.TotalPayment()
		if snap.Month%12 != 0 && i != last {
			continue
		}
		rows = append(rows, []string{
			intToString(snap.Month),
			FormatCurrency(snap.TotalBalance()),
			FormatCurrency(interest),
			FormatCurrency(paid),
		})
	}
	return renderTable([]string{"Month", "Remaining", "Interest to date", "Paid to date"}, rows, 0)
}
