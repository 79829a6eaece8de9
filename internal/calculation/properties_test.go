package calculation

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/debtplan/payoff-engine/internal/domain"
	"github.com/debtplan/payoff-engine/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomDebts builds 2-6 amortizing debts with pairwise distinct rates and
// minimums that always exceed the first month's interest.
func randomDebts(rng *rand.Rand) []domain.Debt {
	n := 2 + rng.Intn(5)
	perm := rng.Perm(30)
	debts := make([]domain.Debt, n)
	for i := 0; i < n; i++ {
		balance := money.Cents(10000 + rng.Int63n(2000000))
		// 1% .. 30% in whole percents, distinct per debt
		rate := decimal.NewFromInt(int64(perm[i] + 1)).Div(decimal.NewFromInt(100))
		interest := money.MonthlyInterest(balance, rate)
		minimum := interest + balance/100 + 1000
		debts[i] = domain.Debt{
			ID:             fmt.Sprintf("d%d", i),
			Name:           fmt.Sprintf("Debt %d", i),
			Type:           domain.DebtTypeCreditCard,
			CurrentBalance: balance,
			InterestRate:   rate,
			MinimumPayment: minimum,
		}
	}
	return debts
}

func totalInterest(res SimulationResult) money.Cents {
	var total money.Cents
	for _, snap := range res.History {
		total += snap.TotalInterest()
	}
	return total
}

func TestPropertyConvergenceAndNonNegativeInterest(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	sim := newTestSimulator(600)

	for iter := 0; iter < 100; iter++ {
		debts := randomDebts(rng)
		budget := domain.TotalMinimumPayments(debts) + money.Cents(rng.Int63n(50000))
		for _, strategy := range domain.Strategies {
			res := sim.Simulate(debts, budget, strategy)
			require.True(t, res.Convergent, "iter %d %s", iter, strategy)
			last := res.History[len(res.History)-1]
			for id, m := range last.Debts {
				require.Equal(t, money.Cents(0), m.Balance, "iter %d %s debt %s", iter, strategy, id)
			}
			assert.GreaterOrEqual(t, int64(totalInterest(res)), int64(0))
		}
	}
}

func TestPropertyAvalancheNeverCostsMoreThanSnowball(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sim := newTestSimulator(600)

	for iter := 0; iter < 100; iter++ {
		debts := randomDebts(rng)
		budget := domain.TotalMinimumPayments(debts) + money.Cents(rng.Int63n(80000))

		avalanche := sim.Simulate(debts, budget, domain.StrategyAvalanche)
		snowball := sim.Simulate(debts, budget, domain.StrategySnowball)
		require.True(t, avalanche.Convergent)
		require.True(t, snowball.Convergent)

		assert.LessOrEqual(t, int64(totalInterest(avalanche)), int64(totalInterest(snowball)),
			"iter %d: avalanche %s vs snowball %s", iter, totalInterest(avalanche), totalInterest(snowball))
	}
}

func TestPropertyBudgetMonotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	sim := newTestSimulator(600)

	for iter := 0; iter < 60; iter++ {
		debts := randomDebts(rng)
		base := domain.TotalMinimumPayments(debts)

		prevMonths := -1
		prevInterest := money.Cents(-1)
		for _, extra := range []money.Cents{0, 2500, 10000, 40000, 150000} {
			res := sim.Simulate(debts, base+extra, domain.StrategyAvalanche)
			require.True(t, res.Convergent)
			months := MonthsToPayoff(res.History)
			interest := totalInterest(res)
			if prevMonths >= 0 {
				assert.LessOrEqual(t, months, prevMonths, "iter %d extra %s", iter, extra)
				assert.LessOrEqual(t, int64(interest), int64(prevInterest), "iter %d extra %s", iter, extra)
			}
			prevMonths, prevInterest = months, interest
		}
	}
}

func TestPropertyScenarioCollapse(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for iter := 0; iter < 20; iter++ {
		debts := randomDebts(rng)
		req := &domain.PlanRequest{
			OrganizationID:       "org",
			AccountID:            "acct",
			ProfileOwner:         "owner",
			MonthlyPaymentBudget: cents(domain.TotalMinimumPayments(debts)),
			Debts:                debts,
			Assumptions:          domain.Assumptions{IncludeCollapsedOptimized: true},
		}

		result, err := newTestGenerator().Generate(context.Background(), req)
		require.NoError(t, err)
		require.Len(t, result.Plans, 8, "iter %d", iter)

		for _, scope := range domain.Scopes {
			for _, strategy := range domain.Strategies {
				minPlan, ok := result.Find(strategy, scope, false)
				require.True(t, ok, "iter %d %s/%s", iter, scope, strategy)
				optPlan, ok := result.Find(strategy, scope, true)
				require.True(t, ok, "iter %d %s/%s", iter, scope, strategy)
				assert.Equal(t, minPlan.Summary, optPlan.Summary, "iter %d %s/%s", iter, scope, strategy)
				assert.Equal(t, minPlan.Debts, optPlan.Debts, "iter %d %s/%s", iter, scope, strategy)
			}
		}
	}
}
