package output

import (
	"bytes"
	"fmt"

	"github.com/debtplan/payoff-engine/internal/domain"
	"github.com/jung-kurt/gofpdf"
)

// PDFFormatter renders a printable plan statement.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string      { return "pdf" }
func (p PDFFormatter) Extension() string { return "pdf" }

var pdfColumns = []struct {
	title string
	width float64
	align string
}{
	{"Scope", 22, "L"},
	{"Scenario", 22, "L"},
	{"Strategy", 22, "L"},
	{"Monthly", 26, "R"},
	{"Months", 16, "R"},
	{"Debt-free", 24, "C"},
	{"Interest", 30, "R"},
	{"Total paid", 30, "R"},
}

func (p PDFFormatter) Format(results *domain.PlanResult) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Debt Payoff Plan", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, "Debt Payoff Plan")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	budget := "not supplied (minimum payments plus buffer)"
	if results.MonthlyPaymentBudget != nil {
		budget = FormatCurrency(*results.MonthlyPaymentBudget)
	}
	for _, line := range []string{
		fmt.Sprintf("Organization: %s", results.OrganizationID),
		fmt.Sprintf("Account: %s", results.AccountID),
		fmt.Sprintf("Owner: %s", results.ProfileOwner),
		fmt.Sprintf("Generated: %s", FormatDate(results.GeneratedAt)),
		fmt.Sprintf("Monthly budget: %s", budget),
	} {
		pdf.Cell(0, 6, line)
		pdf.Ln(5)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 9)
	for _, c := range pdfColumns {
		pdf.CellFormat(c.width, 6, c.title, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 9)
	for _, plan := range results.Plans {
		cells := []string{
			string(plan.Scope),
			string(plan.Scenario()),
			string(plan.Strategy),
			FormatCurrency(plan.Summary.MonthlyPayment),
			intToString(plan.Summary.MonthsToPayoff),
			FormatDate(plan.Summary.DebtFreeDate),
			FormatCurrency(plan.Summary.TotalInterest),
			FormatCurrency(plan.Summary.TotalPaid),
		}
		for i, c := range pdfColumns {
			pdf.CellFormat(c.width, 6, cells[i], "1", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	analysis := AnalyzePlans(results)
	if len(analysis.Recommendations) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(0, 6, "Recommendations")
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 10)
		for _, rec := range analysis.Recommendations {
			scenario := domain.ScenarioMinimum
			if rec.Optimized {
				scenario = domain.ScenarioOptimized
			}
			pdf.Cell(0, 6, fmt.Sprintf("%s: %s with %s budget, %s, %s interest",
				rec.Scope, rec.Strategy, scenario, FormatMonths(rec.Summary.MonthsToPayoff), FormatCurrency(rec.Summary.TotalInterest)))
			pdf.Ln(5)
		}
	}

	if len(results.Skipped) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Arial", "I", 9)
		for _, s := range results.Skipped {
			pdf.Cell(0, 5, fmt.Sprintf("Skipped %s: %s", skippedLabel(s), s.Reason))
			pdf.Ln(5)
		}
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "", 8)
	for _, a := range reportAssumptions(results) {
		pdf.Cell(0, 4, a)
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
