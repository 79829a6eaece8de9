package output

import (
	"bytes"
	"encoding/csv"

	"github.com/debtplan/payoff-engine/internal/domain"
)

// CSVDetailedExporter writes one row per plan, month and debt when the
// result carries schedules, otherwise one row per plan and debt.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string      { return "detailed-csv" }
func (c CSVDetailedExporter) Extension() string { return "csv" }

func (c CSVDetailedExporter) Format(results *domain.PlanResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	var err error
	if hasSchedule(results) {
		err = writeScheduleRows(w, results)
	} else {
		err = writeDebtRows(w, results)
	}
	if err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func hasSchedule(results *domain.PlanResult) bool {
	for _, p := range results.Plans {
		if len(p.Schedule) > 0 {
			return true
		}
	}
	return false
}

func writeScheduleRows(w *csv.Writer, results *domain.PlanResult) error {
	header := []string{"Scope", "Scenario", "Strategy", "Month", "DebtID", "Payment", "Interest", "Balance"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, p := range results.Plans {
		for _, snap := range p.Schedule {
			for _, d := range p.Debts {
				m, ok := snap.Debts[d.ID]
				if !ok {
					continue
				}
				row := []string{
					string(p.Scope),
					string(p.Scenario()),
					string(p.Strategy),
					intToString(snap.Month),
					d.ID,
					m.Payment.String(),
					m.Interest.String(),
					m.Balance.String(),
				}
				if err := w.Write(row); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func writeDebtRows(w *csv.Writer, results *domain.PlanResult) error {
	header := []string{"Scope", "Scenario", "Strategy", "PayoffOrder", "DebtID", "Name", "Type", "StartingBalance", "InterestRate", "MinimumPayment", "PayoffMonth", "PayoffDate", "InterestPaid", "TotalPaid", "Optimized"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, p := range results.Plans {
		for _, d := range p.Debts {
			row := []string{
				string(p.Scope),
				string(p.Scenario()),
				string(p.Strategy),
				intToString(d.PayoffOrder),
				d.ID,
				d.Name,
				string(d.Type),
				d.StartingBalance.String(),
				d.InterestRate,
				d.MinimumPayment.String(),
				intToString(d.PayoffMonth),
				FormatDate(d.PayoffDate),
				d.InterestPaid.String(),
				d.TotalPaid.String(),
				boolToString(p.Optimized),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}
