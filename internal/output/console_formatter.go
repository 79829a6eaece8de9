package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/debtplan/payoff-engine/internal/domain"
)

var (
	colorBorder = lipgloss.Color("#575653")
	colorAccent = lipgloss.Color("#3AA99F")
	colorWarn   = lipgloss.Color("#DA702C")

	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	warnStyle   = lipgloss.NewStyle().Foreground(colorWarn)
)

// ConsoleFormatter renders a plan comparison table with recommendations.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(results *domain.PlanResult) ([]byte, error) {
	var buf bytes.Buffer
	writeHeader(&buf, results)
	fmt.Fprintln(&buf, planTable(results.Plans))
	writeAnalysis(&buf, results)
	return buf.Bytes(), nil
}

func writeHeader(buf *bytes.Buffer, results *domain.PlanResult) {
	fmt.Fprintln(buf, titleStyle.Render("DEBT PAYOFF PLAN"))
	fmt.Fprintln(buf, "================================")
	fmt.Fprintf(buf, "Organization: %s  Account: %s  Owner: %s\n", results.OrganizationID, results.AccountID, results.ProfileOwner)
	fmt.Fprintf(buf, "Generated: %s\n", FormatDate(results.GeneratedAt))
	if results.MonthlyPaymentBudget != nil {
		fmt.Fprintf(buf, "Monthly budget: %s\n", FormatCurrency(*results.MonthlyPaymentBudget))
	} else {
		fmt.Fprintln(buf, "Monthly budget: not supplied (minimum payments plus buffer)")
	}
	fmt.Fprintln(buf)
}

// planTable renders one row per plan in result order.
func planTable(plans []domain.DebtPayoffPlan) string {
	rows := make([][]string, 0, len(plans))
	for _, p := range plans {
		rows = append(rows, []string{
			string(p.Scope),
			string(p.Scenario()),
			string(p.Strategy),
			FormatCurrency(p.Summary.MonthlyPayment),
			FormatMonths(p.Summary.MonthsToPayoff),
			FormatDate(p.Summary.DebtFreeDate),
			FormatCurrency(p.Summary.TotalDebt),
			FormatCurrency(p.Summary.TotalInterest),
			FormatCurrency(p.Summary.TotalPaid),
		})
	}
	return renderTable([]string{"Scope", "Scenario", "Strategy", "Monthly", "Payoff", "Debt-free", "Debt", "Interest", "Total paid"}, rows, 3)
}

// renderTable draws a rounded table; columns from firstNumeric on are right-aligned.
func renderTable(headers []string, rows [][]string, firstNumeric int) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col >= firstNumeric:
				return numberStyle
			default:
				return cellStyle
			}
		})
	return t.String()
}

func writeAnalysis(buf *bytes.Buffer, results *domain.PlanResult) {
	analysis := AnalyzePlans(results)

	if len(analysis.Recommendations) > 0 {
		fmt.Fprintln(buf)
		for _, rec := range analysis.Recommendations {
			scenario := domain.ScenarioMinimum
			if rec.Optimized {
				scenario = domain.ScenarioOptimized
			}
			fmt.Fprintf(buf, "Recommended (%s): %s with %s budget, debt-free in %s, %s interest\n",
				rec.Scope, rec.Strategy, scenario, FormatMonths(rec.Summary.MonthsToPayoff), FormatCurrency(rec.Summary.TotalInterest))
		}
	}

	for _, cmp := range analysis.Strategies {
		if cmp.InterestSaved == 0 && cmp.MonthsSaved == 0 {
			fmt.Fprintf(buf, "%s/%s: avalanche and snowball cost the same\n", cmp.Scope, cmp.Scenario)
			continue
		}
		fmt.Fprintf(buf, "%s/%s: %s saves %s interest and %d months\n",
			cmp.Scope, cmp.Scenario, cmp.Preferred, FormatCurrency(cmp.InterestSaved), cmp.MonthsSaved)
	}

	for _, b := range analysis.Budgets {
		fmt.Fprintf(buf, "%s/%s: optimized budget saves %s interest and %d months over minimums\n",
			b.Scope, b.Strategy, FormatCurrency(b.InterestSaved), b.MonthsSaved)
	}

	if len(results.Skipped) > 0 {
		fmt.Fprintln(buf)
		for _, s := range results.Skipped {
			fmt.Fprintln(buf, warnStyle.Render("Skipped "+skippedLabel(s)+": "+s.Reason))
		}
	}

	if analysis.BudgetRequired {
		fmt.Fprintln(buf)
		fmt.Fprintln(buf, "Supply a monthly payment budget above the minimum payments to see an optimized plan.")
	}
}

func skippedLabel(s domain.SkippedVariant) string {
	parts := []string{string(s.Scope)}
	if s.Scenario != "" {
		parts = append(parts, string(s.Scenario))
	}
	if s.Strategy != "" {
		parts = append(parts, string(s.Strategy))
	}
	label := strings.Join(parts, "/")
	if len(s.StalledDebtID) > 0 {
		label += " (stalled: " + strings.Join(s.StalledDebtID, ", ") + ")"
	}
	return label
}
