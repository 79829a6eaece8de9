package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/debtplan/payoff-engine/internal/calculation"
	"github.com/debtplan/payoff-engine/internal/config"
	"github.com/debtplan/payoff-engine/internal/domain"
	"github.com/debtplan/payoff-engine/pkg/money"
)

// Prints one variant's month-by-month schedule for debugging.
//
//	go run ./tools/print_schedule test/testdata/example_request.yaml snowball 2500
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: print_schedule REQUEST [avalanche|snowball] [BUDGET_DOLLARS]")
		os.Exit(2)
	}
	req, err := config.NewInputParser().LoadFromFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	strategy := domain.StrategyAvalanche
	if len(os.Args) > 2 {
		strategy = domain.Strategy(os.Args[2])
	}
	budget := domain.TotalMinimumPayments(req.Debts)
	if b, ok := req.Budget(); ok {
		budget = b
	}
	if len(os.Args) > 3 {
		if budget, err = money.ParseDollars(os.Args[3]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	sim := calculation.NewSimulator(req.Assumptions, nil)
	res := sim.Simulate(req.Debts, budget, strategy)

	ids := make([]string, 0, len(req.Debts))
	for _, d := range req.Debts {
		ids = append(ids, d.ID)
	}
	sort.Strings(ids)

	fmt.Printf("strategy=%s budget=%s months=%d convergent=%v\n", strategy, budget.Format(), len(res.History), res.Convergent)
	for _, snap := range res.History {
		fmt.Printf("month %3d  paid %12s  interest %10s  remaining %14s\n",
			snap.Month, snap.TotalPayment().Format(), snap.TotalInterest().Format(), snap.TotalBalance().Format())
		for _, id := range ids {
			m := snap.Debts[id]
			if m.Payment == 0 && m.Balance == 0 {
				continue
			}
			fmt.Printf("    %-14s pay %10s  int %9s  bal %14s\n", id, m.Payment.Format(), m.Interest.Format(), m.Balance.Format())
		}
	}
	fmt.Printf("payoff order: %v\n", res.PayoffOrder)
	if !res.Convergent {
		fmt.Printf("stalled: %v\n", res.Stalled)
	}
}
