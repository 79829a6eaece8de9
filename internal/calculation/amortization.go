package calculation

import (
	"github.com/debtplan/payoff-engine/internal/domain"
	"github.com/debtplan/payoff-engine/pkg/money"
)

// SimulationResult is the month-by-month outcome of one payoff run.
type SimulationResult struct {
	History    []domain.MonthlySnapshot
	Convergent bool
	// PayoffOrder lists debt ids in the order their balances reached zero.
	PayoffOrder []string
	// Stalled lists debts still carrying a balance when the cap was hit.
	Stalled []string
}

// Simulator runs the amortization state machine for one fixed strategy and
// budget. It holds configuration only, so one value can serve many
// concurrent runs.
type Simulator struct {
	MaxMonths      int
	DeferredPolicy domain.DeferredInterestPolicy
	Logger         Logger
}

// NewSimulator creates a simulator from engine assumptions.
func NewSimulator(assumptions domain.Assumptions, logger Logger) *Simulator {
	a := assumptions.WithDefaults()
	return &Simulator{
		MaxMonths:      a.MaxMonths,
		DeferredPolicy: a.DeferredInterestPolicy,
		Logger:         loggerOrNop(logger),
	}
}

// debtState is the private working copy of one debt during a run.
type debtState struct {
	debt     domain.Debt
	deferred *deferredTracker
	paidOff  bool
}

// Simulate pays down a private deep copy of debts with monthlyBudget per
// month. Each month accrues interest, pays every minimum, then cascades the
// remaining budget through the strategy order. It stops when all balances
// are zero (convergent) or after MaxMonths (non-convergent).
func (s *Simulator) Simulate(debts []domain.Debt, monthlyBudget money.Cents, strategy domain.Strategy) SimulationResult {
	logger := loggerOrNop(s.Logger)
	maxMonths := s.MaxMonths
	if maxMonths <= 0 {
		maxMonths = domain.DefaultMaxMonths
	}

	states := make([]*debtState, len(debts))
	index := make(map[string]int, len(debts))
	for i, d := range debts {
		c := d.Clone()
		if c.CurrentBalance < 0 {
			c.CurrentBalance = 0
		}
		states[i] = &debtState{
			debt:     c,
			deferred: newDeferredTracker(c, s.DeferredPolicy),
			paidOff:  c.CurrentBalance == 0,
		}
		index[c.ID] = i
	}

	var result SimulationResult
	if allPaid(states) {
		result.Convergent = true
		return result
	}

	underfunded := false
	interest := make([]money.Cents, len(states))
	payment := make([]money.Cents, len(states))

	for month := 1; month <= maxMonths; month++ {
		elapsed := month - 1
		for i := range states {
			interest[i], payment[i] = 0, 0
		}

		// Interest accrual, including any deferred-interest charge.
		for i, st := range states {
			opening := st.debt.CurrentBalance
			if opening <= 0 {
				continue
			}
			st.deferred.observe(st.debt, opening, elapsed)
			accrued := money.MonthlyInterest(opening, st.debt.EffectiveRate(elapsed))
			if retro := st.deferred.charge(st.debt, opening, elapsed); retro > 0 {
				logger.Debugf("debt %s: deferred interest of %s charged in month %d", st.debt.ID, retro, month)
				accrued += retro
			}
			interest[i] = accrued
			st.debt.CurrentBalance += accrued
		}

		// Minimum payments. A minimum larger than the balance leaves the
		// unused part in the pool for the cascade below.
		var paidMinimums money.Cents
		for i, st := range states {
			if st.debt.CurrentBalance <= 0 {
				continue
			}
			pay := money.Min(st.debt.MinimumPayment, st.debt.CurrentBalance)
			if pay < 0 {
				pay = 0
			}
			st.debt.CurrentBalance -= pay
			payment[i] += pay
			paidMinimums += pay
		}

		extra := monthlyBudget - paidMinimums
		if extra < 0 {
			if !underfunded {
				logger.Warnf("budget %s does not cover minimum payments %s in month %d; paying minimums only",
					monthlyBudget, paidMinimums, month)
				underfunded = true
			}
			extra = 0
		}

		// Cascade the extra budget through the strategy order.
		if extra > 0 {
			active := make([]domain.Debt, 0, len(states))
			for _, st := range states {
				if st.debt.CurrentBalance > 0 {
					active = append(active, st.debt)
				}
			}
			for _, id := range OrderDebts(active, strategy, elapsed) {
				if extra == 0 {
					break
				}
				i := index[id]
				st := states[i]
				pay := money.Min(extra, st.debt.CurrentBalance)
				st.debt.CurrentBalance -= pay
				payment[i] += pay
				extra -= pay
			}
		}

		snapshot := domain.MonthlySnapshot{Month: month, Debts: make(map[string]domain.DebtMonth, len(states))}
		for i, st := range states {
			if st.debt.CurrentBalance < 0 {
				logger.Errorf("%v: debt %s balance %s in month %d; clamping to zero",
					ErrArithmeticInvariant, st.debt.ID, st.debt.CurrentBalance, month)
				st.debt.CurrentBalance = 0
			}
			if !st.paidOff && st.debt.CurrentBalance == 0 {
				st.paidOff = true
				result.PayoffOrder = append(result.PayoffOrder, st.debt.ID)
			}
			snapshot.Debts[st.debt.ID] = domain.DebtMonth{
				Balance:  st.debt.CurrentBalance,
				Interest: interest[i],
				Payment:  payment[i],
			}
		}
		result.History = append(result.History, snapshot)

		if allPaid(states) {
			result.Convergent = true
			return result
		}
	}

	for _, st := range states {
		if st.debt.CurrentBalance > 0 {
			result.Stalled = append(result.Stalled, st.debt.ID)
		}
	}
	return result
}

func allPaid(states []*debtState) bool {
	for _, st := range states {
		if st.debt.CurrentBalance > 0 {
			return false
		}
	}
	return true
}
