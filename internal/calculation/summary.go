package calculation

import (
	"sort"
	"time"

	"github.com/debtplan/payoff-engine/internal/domain"
	"github.com/debtplan/payoff-engine/pkg/dateutil"
	"github.com/debtplan/payoff-engine/pkg/money"
)

// Summarize reduces a simulation history into the comparable plan summary.
// debts are the starting (pre-simulation) debts; monthlyPayment is the budget
// the run used; generatedAt anchors the debt-free date.
func Summarize(history []domain.MonthlySnapshot, debts []domain.Debt, monthlyPayment money.Cents, generatedAt time.Time) domain.PlanSummary {
	summary := domain.PlanSummary{
		TotalDebt:      domain.TotalBalance(debts),
		MonthlyPayment: monthlyPayment,
		MonthsToPayoff: MonthsToPayoff(history),
	}
	for _, snap := range history {
		summary.TotalInterest += snap.TotalInterest()
		summary.TotalPaid += snap.TotalPayment()
	}
	summary.DebtFreeDate = dateutil.AddMonths(generatedAt, summary.MonthsToPayoff)
	return summary
}

// MonthsToPayoff returns the month of the first snapshot in which every
// balance is zero. An empty history means nothing was owed. A history that
// never clears reports its full length.
func MonthsToPayoff(history []domain.MonthlySnapshot) int {
	for _, snap := range history {
		if snap.AllPaid() {
			return snap.Month
		}
	}
	return len(history)
}

// BuildDebtResults produces per-debt detail listed in the strategy's
// first-month order. PayoffOrder ranks debts by the month they cleared.
func BuildDebtResults(history []domain.MonthlySnapshot, debts []domain.Debt, strategy domain.Strategy, generatedAt time.Time) []domain.DebtResult {
	byID := make(map[string]domain.Debt, len(debts))
	for _, d := range debts {
		byID[d.ID] = d
	}

	order := OrderDebts(debts, strategy, 0)
	results := make([]domain.DebtResult, 0, len(order))
	for _, id := range order {
		d := byID[id]
		r := domain.DebtResult{
			ID:              d.ID,
			Name:            d.Name,
			Type:            d.Type,
			StartingBalance: d.CurrentBalance,
			InterestRate:    d.InterestRate.String(),
			MinimumPayment:  d.MinimumPayment,
		}
		if d.CurrentBalance > 0 {
			r.PayoffMonth = -1
		}
		for _, snap := range history {
			m, ok := snap.Debts[id]
			if !ok {
				continue
			}
			r.InterestPaid += m.Interest
			r.TotalPaid += m.Payment
			if r.PayoffMonth < 0 && m.Balance == 0 {
				r.PayoffMonth = snap.Month
			}
		}
		if r.PayoffMonth < 0 {
			r.PayoffMonth = len(history)
		}
		r.PayoffDate = dateutil.AddMonths(generatedAt, r.PayoffMonth)
		results = append(results, r)
	}

	ranked := make([]int, len(results))
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return results[ranked[a]].PayoffMonth < results[ranked[b]].PayoffMonth
	})
	for rank, i := range ranked {
		results[i].PayoffOrder = rank + 1
	}
	return results
}
