package output

import (
	"testing"

	"github.com/debtplan/payoff-engine/internal/domain"
	"github.com/debtplan/payoff-engine/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzePlans_RecommendsLowestInterest(t *testing.T) {
	analysis := AnalyzePlans(buildTestResult())

	require.Len(t, analysis.Recommendations, 1)
	rec := analysis.Recommendations[0]
	assert.Equal(t, domain.ScopeConsumer, rec.Scope)
	assert.Equal(t, domain.StrategyAvalanche, rec.Strategy)
	assert.True(t, rec.Optimized)
	assert.Equal(t, money.Cents(20000), rec.Summary.TotalInterest)
	assert.False(t, analysis.BudgetRequired)
}

func TestAnalyzePlans_StrategyAndBudgetDeltas(t *testing.T) {
	analysis := AnalyzePlans(buildTestResult())

	require.Len(t, analysis.Strategies, 2)
	minimum := analysis.Strategies[0]
	assert.Equal(t, domain.ScenarioMinimum, minimum.Scenario)
	assert.Equal(t, domain.StrategyAvalanche, minimum.Preferred)
	assert.Equal(t, money.Cents(2000), minimum.InterestSaved)
	assert.Equal(t, 0, minimum.MonthsSaved)

	optimized := analysis.Strategies[1]
	assert.Equal(t, domain.ScenarioOptimized, optimized.Scenario)
	assert.Equal(t, money.Cents(1000), optimized.InterestSaved)
	assert.Equal(t, 1, optimized.MonthsSaved)

	require.Len(t, analysis.Budgets, 2)
	assert.Equal(t, domain.StrategyAvalanche, analysis.Budgets[0].Strategy)
	assert.Equal(t, money.Cents(30000), analysis.Budgets[0].InterestSaved)
	assert.Equal(t, 12, analysis.Budgets[0].MonthsSaved)
	assert.Equal(t, money.Cents(31000), analysis.Budgets[1].InterestSaved)
	assert.Equal(t, 11, analysis.Budgets[1].MonthsSaved)
}

func TestAnalyzePlans_SnowballPreferredWhenCheaper(t *testing.T) {
	res := &domain.PlanResult{Plans: []domain.DebtPayoffPlan{
		fixturePlan(domain.StrategyAvalanche, false, 20000, 20, 9000),
		fixturePlan(domain.StrategySnowball, false, 20000, 20, 8500),
	}}

	analysis := AnalyzePlans(res)
	require.Len(t, analysis.Strategies, 1)
	assert.Equal(t, domain.StrategySnowball, analysis.Strategies[0].Preferred)
	assert.Equal(t, money.Cents(500), analysis.Strategies[0].InterestSaved)
	assert.True(t, analysis.BudgetRequired)
	assert.Empty(t, analysis.Budgets)
}

func TestAnalyzePlans_TiesKeepAvalanche(t *testing.T) {
	res := &domain.PlanResult{Plans: []domain.DebtPayoffPlan{
		fixturePlan(domain.StrategyAvalanche, false, 20000, 20, 9000),
		fixturePlan(domain.StrategySnowball, false, 20000, 20, 9000),
	}}

	analysis := AnalyzePlans(res)
	assert.Equal(t, domain.StrategyAvalanche, analysis.Recommendations[0].Strategy)
	assert.Equal(t, domain.StrategyAvalanche, analysis.Strategies[0].Preferred)
}

func TestAnalyzePlans_Nil(t *testing.T) {
	assert.Equal(t, PlanAnalysis{}, AnalyzePlans(nil))
}
