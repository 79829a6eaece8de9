package output

import (
	"github.com/debtplan/payoff-engine/internal/domain"
	"github.com/debtplan/payoff-engine/pkg/money"
)

// Recommendation is the lowest-interest plan found for a scope.
type Recommendation struct {
	Scope     domain.Scope
	Strategy  domain.Strategy
	Optimized bool
	Summary   domain.PlanSummary
}

// StrategyComparison contrasts avalanche and snowball for one scope and scenario.
type StrategyComparison struct {
	Scope         domain.Scope
	Scenario      domain.Scenario
	Avalanche     domain.PlanSummary
	Snowball      domain.PlanSummary
	Preferred     domain.Strategy
	InterestSaved money.Cents
	MonthsSaved   int
}

// BudgetComparison contrasts the minimum and optimized budgets for one scope and strategy.
type BudgetComparison struct {
	Scope         domain.Scope
	Strategy      domain.Strategy
	Minimum       domain.PlanSummary
	Optimized     domain.PlanSummary
	InterestSaved money.Cents
	MonthsSaved   int
}

// PlanAnalysis collects the comparisons shown alongside the plan table.
type PlanAnalysis struct {
	Recommendations []Recommendation
	Strategies      []StrategyComparison
	Budgets         []BudgetComparison
	// BudgetRequired is set when no optimized plan exists, so only the
	// minimum-payment view is available.
	BudgetRequired bool
}

// AnalyzePlans derives recommendations and savings from a plan result.
// Output follows scope, scenario and strategy order.
func AnalyzePlans(results *domain.PlanResult) PlanAnalysis {
	var analysis PlanAnalysis
	if results == nil {
		return analysis
	}
	analysis.BudgetRequired = !results.HasOptimized()

	for _, scope := range domain.Scopes {
		var best *domain.DebtPayoffPlan
		for i := range results.Plans {
			p := &results.Plans[i]
			if p.Scope != scope {
				continue
			}
			if best == nil || betterSummary(p.Summary, best.Summary) {
				best = p
			}
		}
		if best != nil {
			analysis.Recommendations = append(analysis.Recommendations, Recommendation{
				Scope:     scope,
				Strategy:  best.Strategy,
				Optimized: best.Optimized,
				Summary:   best.Summary,
			})
		}

		for _, optimized := range []bool{false, true} {
			av, okA := results.Find(domain.StrategyAvalanche, scope, optimized)
			sb, okS := results.Find(domain.StrategySnowball, scope, optimized)
			if !okA || !okS {
				continue
			}
			cmp := StrategyComparison{
				Scope:     scope,
				Scenario:  av.Scenario(),
				Avalanche: av.Summary,
				Snowball:  sb.Summary,
				Preferred: domain.StrategyAvalanche,
			}
			if betterSummary(sb.Summary, av.Summary) {
				cmp.Preferred = domain.StrategySnowball
			}
			cmp.InterestSaved = absCents(av.Summary.TotalInterest - sb.Summary.TotalInterest)
			cmp.MonthsSaved = absInt(av.Summary.MonthsToPayoff - sb.Summary.MonthsToPayoff)
			analysis.Strategies = append(analysis.Strategies, cmp)
		}

		for _, strategy := range domain.Strategies {
			minimum, okM := results.Find(strategy, scope, false)
			optimized, okO := results.Find(strategy, scope, true)
			if !okM || !okO {
				continue
			}
			analysis.Budgets = append(analysis.Budgets, BudgetComparison{
				Scope:         scope,
				Strategy:      strategy,
				Minimum:       minimum.Summary,
				Optimized:     optimized.Summary,
				InterestSaved: minimum.Summary.TotalInterest - optimized.Summary.TotalInterest,
				MonthsSaved:   minimum.Summary.MonthsToPayoff - optimized.Summary.MonthsToPayoff,
			})
		}
	}
	return analysis
}

// betterSummary orders by total interest, then months to payoff. Ties keep
// the earlier plan.
func betterSummary(a, b domain.PlanSummary) bool {
	if a.TotalInterest != b.TotalInterest {
		return a.TotalInterest < b.TotalInterest
	}
	return a.MonthsToPayoff < b.MonthsToPayoff
}

func absCents(c money.Cents) money.Cents {
	if c < 0 {
		return -c
	}
	return c
}

func absInt(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
