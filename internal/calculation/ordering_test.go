package calculation

import (
	"testing"

	"github.com/debtplan/payoff-engine/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestOrderDebtsAvalanche(t *testing.T) {
	tests := []struct {
		name  string
		debts []domain.Debt
		want  []string
	}{
		{
			name: "highest rate first",
			debts: []domain.Debt{
				testDebt("low", domain.DebtTypeLoan, 100000, "0.05", 1000),
				testDebt("high", domain.DebtTypeCreditCard, 5000, "0.24", 500),
				testDebt("mid", domain.DebtTypeLoan, 50000, "0.12", 1000),
			},
			want: []string{"high", "mid", "low"},
		},
		{
			name: "equal rates break on larger balance",
			debts: []domain.Debt{
				testDebt("small", domain.DebtTypeLoan, 1000, "0.10", 100),
				testDebt("large", domain.DebtTypeLoan, 9000, "0.10", 100),
			},
			want: []string{"large", "small"},
		},
		{
			name: "full tie falls back to id",
			debts: []domain.Debt{
				testDebt("b", domain.DebtTypeLoan, 1000, "0.10", 100),
				testDebt("a", domain.DebtTypeLoan, 1000, "0.10", 100),
				testDebt("c", domain.DebtTypeLoan, 1000, "0.10", 100),
			},
			want: []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OrderDebts(tt.debts, domain.StrategyAvalanche, 0))
		})
	}
}

func TestOrderDebtsSnowball(t *testing.T) {
	tests := []struct {
		name  string
		debts []domain.Debt
		want  []string
	}{
		{
			name: "smallest balance first",
			debts: []domain.Debt{
				testDebt("big", domain.DebtTypeLoan, 900000, "0.30", 1000),
				testDebt("tiny", domain.DebtTypeLoan, 2000, "0.01", 100),
				testDebt("medium", domain.DebtTypeLoan, 40000, "0.10", 500),
			},
			want: []string{"tiny", "medium", "big"},
		},
		{
			name: "equal balances break on higher rate",
			debts: []domain.Debt{
				testDebt("cheap", domain.DebtTypeLoan, 5000, "0.05", 100),
				testDebt("pricey", domain.DebtTypeLoan, 5000, "0.25", 100),
			},
			want: []string{"pricey", "cheap"},
		},
		{
			name: "full tie falls back to id",
			debts: []domain.Debt{
				testDebt("z", domain.DebtTypeLoan, 5000, "0.05", 100),
				testDebt("y", domain.DebtTypeLoan, 5000, "0.05", 100),
			},
			want: []string{"y", "z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OrderDebts(tt.debts, domain.StrategySnowball, 0))
		})
	}
}

func TestOrderDebtsUsesEffectiveRateAfterPromoExpiry(t *testing.T) {
	card := withPromo(testDebt("card", domain.DebtTypeCreditCard, 300000, "0.25", 5000), "0", 6, false)
	loan := testDebt("loan", domain.DebtTypeLoan, 300000, "0.15", 5000)
	debts := []domain.Debt{card, loan}

	assert.Equal(t, []string{"loan", "card"}, OrderDebts(debts, domain.StrategyAvalanche, 0))
	assert.Equal(t, []string{"loan", "card"}, OrderDebts(debts, domain.StrategyAvalanche, 5))
	assert.Equal(t, []string{"card", "loan"}, OrderDebts(debts, domain.StrategyAvalanche, 6))
}

func TestOrderDebtsDoesNotMutateInput(t *testing.T) {
	debts := []domain.Debt{
		testDebt("a", domain.DebtTypeLoan, 100, "0.01", 10),
		testDebt("b", domain.DebtTypeLoan, 50, "0.20", 10),
	}
	_ = OrderDebts(debts, domain.StrategyAvalanche, 0)
	_ = OrderDebts(debts, domain.StrategySnowball, 0)
	assert.Equal(t, "a", debts[0].ID)
	assert.Equal(t, "b", debts[1].ID)
}

func TestOrderDebtsIsDeterministic(t *testing.T) {
	debts := []domain.Debt{
		testDebt("d", domain.DebtTypeLoan, 1000, "0.10", 10),
		testDebt("c", domain.DebtTypeLoan, 1000, "0.10", 10),
		testDebt("b", domain.DebtTypeLoan, 1000, "0.10", 10),
		testDebt("a", domain.DebtTypeLoan, 1000, "0.10", 10),
	}
	first := OrderDebts(debts, domain.StrategySnowball, 0)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, OrderDebts(debts, domain.StrategySnowball, 0))
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, first)
}
