package output

import (
	"time"

	"github.com/debtplan/payoff-engine/internal/domain"
	"github.com/debtplan/payoff-engine/pkg/dateutil"
	"github.com/debtplan/payoff-engine/pkg/money"
)

var fixtureGenerated = time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)

func fixturePlan(strategy domain.Strategy, optimized bool, monthly money.Cents, months int, interest money.Cents) domain.DebtPayoffPlan {
	return domain.DebtPayoffPlan{
		Strategy:  strategy,
		Scope:     domain.ScopeConsumer,
		Optimized: optimized,
		Debts: []domain.DebtResult{
			{ID: "card", Name: "Rewards Card", Type: domain.DebtTypeCreditCard, StartingBalance: 200000, InterestRate: "0.2199",
				MinimumPayment: 6000, PayoffOrder: 1, PayoffMonth: months / 2, PayoffDate: dateutil.AddMonths(fixtureGenerated, months/2),
				InterestPaid: interest * 3 / 5, TotalPaid: 200000 + interest*3/5},
			{ID: "car", Name: "Car Loan", Type: domain.DebtTypeLoan, StartingBalance: 300000, InterestRate: "0.0549",
				MinimumPayment: 14000, PayoffOrder: 2, PayoffMonth: months, PayoffDate: dateutil.AddMonths(fixtureGenerated, months),
				InterestPaid: interest * 2 / 5, TotalPaid: 300000 + interest*2/5},
		},
		Summary: domain.PlanSummary{
			TotalDebt:      500000,
			MonthlyPayment: monthly,
			MonthsToPayoff: months,
			TotalInterest:  interest,
			TotalPaid:      500000 + interest,
			DebtFreeDate:   dateutil.AddMonths(fixtureGenerated, months),
		},
	}
}

// buildTestResult returns a hand-built consumer-only result with one
// skipped scope and a two-month schedule on the first plan.
func buildTestResult() *domain.PlanResult {
	budget := money.Cents(100000)
	first := fixturePlan(domain.StrategyAvalanche, false, 20000, 24, 50000)
	first.Schedule = []domain.MonthlySnapshot{
		{Month: 1, Debts: map[string]domain.DebtMonth{
			"card": {Balance: 197665, Interest: 3665, Payment: 6000},
			"car":  {Balance: 287373, Interest: 1373, Payment: 14000},
		}},
		{Month: 2, Debts: map[string]domain.DebtMonth{
			"card": {Balance: 195287, Interest: 3622, Payment: 6000},
			"car":  {Balance: 274688, Interest: 1315, Payment: 14000},
		}},
	}
	return &domain.PlanResult{
		OrganizationID:       "org_1",
		AccountID:            "acct_1",
		ProfileOwner:         "user_1",
		GeneratedAt:          fixtureGenerated,
		MonthlyPaymentBudget: &budget,
		Plans: []domain.DebtPayoffPlan{
			first,
			fixturePlan(domain.StrategySnowball, false, 20000, 24, 52000),
			fixturePlan(domain.StrategyAvalanche, true, 100000, 12, 20000),
			fixturePlan(domain.StrategySnowball, true, 100000, 13, 21000),
		},
		Skipped: []domain.SkippedVariant{
			{Scope: domain.ScopeAll, Reason: "no debts in scope"},
		},
	}
}
