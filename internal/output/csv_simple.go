package output

import (
	"bytes"
	"encoding/csv"

	"github.com/debtplan/payoff-engine/internal/domain"
)

// CSVSummarizer implements the summary CSV output (one row per plan).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "csv" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.PlanResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scope", "Scenario", "Strategy", "MonthlyPayment", "MonthsToPayoff", "DebtFreeDate", "TotalDebt", "TotalInterest", "TotalPaid"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, p := range results.Plans {
		row := []string{
			string(p.Scope),
			string(p.Scenario()),
			string(p.Strategy),
			p.Summary.MonthlyPayment.String(),
			intToString(p.Summary.MonthsToPayoff),
			FormatDate(p.Summary.DebtFreeDate),
			p.Summary.TotalDebt.String(),
			p.Summary.TotalInterest.String(),
			p.Summary.TotalPaid.String(),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
