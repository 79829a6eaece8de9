package output

import (
	"bytes"
	"fmt"

	"github.com/debtplan/payoff-engine/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet  = "Summary"
	debtsSheet    = "Debts"
	scheduleSheet = "Schedule"
)

// XLSXFormatter exports the result as a workbook with summary, per-debt and
// (when present) schedule sheets. Amounts are written in dollars.
type XLSXFormatter struct{}

func (x XLSXFormatter) Name() string      { return "xlsx" }
func (x XLSXFormatter) Extension() string { return "xlsx" }

func (x XLSXFormatter) Format(results *domain.PlanResult) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if err := writeSummarySheet(f, results, bold); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(debtsSheet); err != nil {
		return nil, err
	}
	if err := writeDebtsSheet(f, results, bold); err != nil {
		return nil, err
	}
	if hasSchedule(results) {
		if _, err := f.NewSheet(scheduleSheet); err != nil {
			return nil, err
		}
		if err := writeScheduleSheet(f, results, bold); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func setHeader(f *excelize.File, sheet string, row int, headers []interface{}, style int) error {
	if err := setRow(f, sheet, row, headers); err != nil {
		return err
	}
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(len(headers), row)
	return f.SetCellStyle(sheet, first, last, style)
}

func writeSummarySheet(f *excelize.File, results *domain.PlanResult, bold int) error {
	_ = f.SetCellValue(summarySheet, "A1", "Debt Payoff Plan")
	_ = f.SetCellStyle(summarySheet, "A1", "A1", bold)
	budget := "not supplied"
	if results.MonthlyPaymentBudget != nil {
		budget = FormatCurrency(*results.MonthlyPaymentBudget)
	}
	meta := [][]interface{}{
		{"Organization", results.OrganizationID},
		{"Account", results.AccountID},
		{"Owner", results.ProfileOwner},
		{"Generated", FormatDate(results.GeneratedAt)},
		{"Monthly budget", budget},
	}
	row := 3
	for _, m := range meta {
		if err := setRow(f, summarySheet, row, m); err != nil {
			return err
		}
		row++
	}

	row++
	headers := []interface{}{"Scope", "Scenario", "Strategy", "Monthly Payment", "Months To Payoff", "Debt-Free Date", "Total Debt", "Total Interest", "Total Paid"}
	if err := setHeader(f, summarySheet, row, headers, bold); err != nil {
		return err
	}
	for _, p := range results.Plans {
		row++
		values := []interface{}{
			string(p.Scope),
			string(p.Scenario()),
			string(p.Strategy),
			dollars(p.Summary.MonthlyPayment),
			p.Summary.MonthsToPayoff,
			FormatDate(p.Summary.DebtFreeDate),
			dollars(p.Summary.TotalDebt),
			dollars(p.Summary.TotalInterest),
			dollars(p.Summary.TotalPaid),
		}
		if err := setRow(f, summarySheet, row, values); err != nil {
			return err
		}
	}

	for _, s := range results.Skipped {
		row += 2
		if err := setRow(f, summarySheet, row, []interface{}{"Skipped", skippedLabel(s), s.Reason}); err != nil {
			return err
		}
	}
	return nil
}

func writeDebtsSheet(f *excelize.File, results *domain.PlanResult, bold int) error {
	headers := []interface{}{"Scope", "Scenario", "Strategy", "Payoff Order", "Debt ID", "Name", "Type", "Starting Balance", "Interest Rate", "Minimum Payment", "Payoff Month", "Payoff Date", "Interest Paid", "Total Paid"}
	if err := setHeader(f, debtsSheet, 1, headers, bold); err != nil {
		return err
	}
	row := 1
	for _, p := range results.Plans {
		for _, d := range p.Debts {
			row++
			values := []interface{}{
				string(p.Scope),
				string(p.Scenario()),
				string(p.Strategy),
				d.PayoffOrder,
				d.ID,
				d.Name,
				string(d.Type),
				dollars(d.StartingBalance),
				d.InterestRate,
				dollars(d.MinimumPayment),
				d.PayoffMonth,
				FormatDate(d.PayoffDate),
				dollars(d.InterestPaid),
				dollars(d.TotalPaid),
			}
			if err := setRow(f, debtsSheet, row, values); err != nil {
				return fmt.Errorf("debts row %d: %w", row, err)
			}
		}
	}
	return nil
}

func writeScheduleSheet(f *excelize.File, results *domain.PlanResult, bold int) error {
	headers := []interface{}{"Scope", "Scenario", "Strategy", "Month", "Debt ID", "Payment", "Interest", "Balance"}
	if err := setHeader(f, scheduleSheet, 1, headers, bold); err != nil {
		return err
	}
	row := 1
	for _, p := range results.Plans {
		for _, snap := range p.Schedule {
			for _, d := range p.Debts {
				m, ok := snap.Debts[d.ID]
				if !ok {
					continue
				}
				row++
				values := []interface{}{
					string(p.Scope),
					string(p.Scenario()),
					string(p.Strategy),
					snap.Month,
					d.ID,
					dollars(m.Payment),
					dollars(m.Interest),
					dollars(m.Balance),
				}
				if err := setRow(f, scheduleSheet, row, values); err != nil {
					return fmt.Errorf("schedule row %d: %w", row, err)
				}
			}
		}
	}
	return nil
}
