package calculation

import (
	"sort"

	"github.com/debtplan/payoff-engine/internal/domain"
)

// OrderDebts returns debt ids in repayment priority for the strategy, using
// each debt's effective rate after elapsed months. The order is total: ties
// on the primary and secondary keys fall back to ascending id. The input
// slice is not modified.
func OrderDebts(debts []domain.Debt, strategy domain.Strategy, elapsed int) []string {
	sorted := make([]domain.Debt, len(debts))
	copy(sorted, debts)

	less := strategyLess(strategy, elapsed)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })

	ids := make([]string, len(sorted))
	for i, d := range sorted {
		ids[i] = d.ID
	}
	return ids
}

// strategyLess is the per-strategy comparison. Unknown strategies order by
// avalanche, which callers never reach because requests are validated.
func strategyLess(strategy domain.Strategy, elapsed int) func(a, b domain.Debt) bool {
	switch strategy {
	case domain.StrategySnowball:
		return func(a, b domain.Debt) bool {
			if a.CurrentBalance != b.CurrentBalance {
				return a.CurrentBalance < b.CurrentBalance
			}
			if c := a.EffectiveRate(elapsed).Cmp(b.EffectiveRate(elapsed)); c != 0 {
				return c > 0
			}
			return a.ID < b.ID
		}
	default:
		return func(a, b domain.Debt) bool {
			if c := a.EffectiveRate(elapsed).Cmp(b.EffectiveRate(elapsed)); c != 0 {
				return c > 0
			}
			if a.CurrentBalance != b.CurrentBalance {
				return a.CurrentBalance > b.CurrentBalance
			}
			return a.ID < b.ID
		}
	}
}
