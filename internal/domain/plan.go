package domain

import (
	"time"

	"github.com/debtplan/payoff-engine/pkg/money"
)

// Strategy selects the repayment priority rule.
type Strategy string

const (
	StrategyAvalanche Strategy = "avalanche" // highest effective rate first
	StrategySnowball  Strategy = "snowball"  // smallest balance first
)

// Strategies lists every strategy in output order.
var Strategies = []Strategy{StrategyAvalanche, StrategySnowball}

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	return s == StrategyAvalanche || s == StrategySnowball
}

// Scope selects which debts take part in a plan.
type Scope string

const (
	ScopeConsumer Scope = "consumer" // everything except mortgages
	ScopeAll      Scope = "all"
)

// Scopes lists every scope in output order.
var Scopes = []Scope{ScopeConsumer, ScopeAll}

// Includes reports whether a debt belongs to the scope.
func (s Scope) Includes(d Debt) bool {
	if s == ScopeConsumer {
		return d.IsConsumer()
	}
	return true
}

// Scenario names a budget scenario.
type Scenario string

const (
	ScenarioMinimum   Scenario = "minimum"
	ScenarioOptimized Scenario = "optimized"
)

// DebtMonth is one debt's state at the end of a simulated month.
type DebtMonth struct {
	Balance  money.Cents `json:"balance" yaml:"balance"`
	Interest money.Cents `json:"interest" yaml:"interest"`
	Payment  money.Cents `json:"payment" yaml:"payment"`
}

// MonthlySnapshot records every debt after payments for a 1-based month.
type MonthlySnapshot struct {
	Month int                  `json:"month" yaml:"month"`
	Debts map[string]DebtMonth `json:"debts" yaml:"debts"`
}

// AllPaid reports whether every debt in the snapshot has a zero balance.
func (s MonthlySnapshot) AllPaid() bool {
	for _, d := range s.Debts {
		if d.Balance > 0 {
			return false
		}
	}
	return true
}

// TotalInterest sums interest accrued across debts this month.
func (s MonthlySnapshot) TotalInterest() money.Cents {
	var total money.Cents
	for _, d := range s.Debts {
		total += d.Interest
	}
	return total
}

// TotalPayment sums payments applied across debts this month.
func (s MonthlySnapshot) TotalPayment() money.Cents {
	var total money.Cents
	for _, d := range s.Debts {
		total += d.Payment
	}
	return total
}

// TotalBalance sums end-of-month balances.
func (s MonthlySnapshot) TotalBalance() money.Cents {
	var total money.Cents
	for _, d := range s.Debts {
		total += d.Balance
	}
	return total
}

// PlanSummary holds the comparable statistics for one plan.
type PlanSummary struct {
	TotalDebt      money.Cents `json:"total_debt" yaml:"total_debt"`
	MonthlyPayment money.Cents `json:"monthly_payment" yaml:"monthly_payment"`
	MonthsToPayoff int         `json:"months_to_payoff" yaml:"months_to_payoff"`
	TotalInterest  money.Cents `json:"total_interest" yaml:"total_interest"`
	TotalPaid      money.Cents `json:"total_paid" yaml:"total_paid"`
	DebtFreeDate   time.Time   `json:"debt_free_date" yaml:"debt_free_date"`
}

// DebtResult is the per-debt detail of a plan.
type DebtResult struct {
	ID              string      `json:"id" yaml:"id"`
	Name            string      `json:"name" yaml:"name"`
	Type            DebtType    `json:"type" yaml:"type"`
	StartingBalance money.Cents `json:"starting_balance" yaml:"starting_balance"`
	InterestRate    string      `json:"interest_rate" yaml:"interest_rate"`
	MinimumPayment  money.Cents `json:"minimum_payment" yaml:"minimum_payment"`
	PayoffOrder     int         `json:"payoff_order" yaml:"payoff_order"`
	PayoffMonth     int         `json:"payoff_month" yaml:"payoff_month"`
	PayoffDate      time.Time   `json:"payoff_date" yaml:"payoff_date"`
	InterestPaid    money.Cents `json:"interest_paid" yaml:"interest_paid"`
	TotalPaid       money.Cents `json:"total_paid" yaml:"total_paid"`
}

// DebtPayoffPlan is one (strategy, scope, scenario) variant.
type DebtPayoffPlan struct {
	Strategy  Strategy          `json:"strategy" yaml:"strategy"`
	Scope     Scope             `json:"scope" yaml:"scope"`
	Optimized bool              `json:"optimized" yaml:"optimized"`
	Debts     []DebtResult      `json:"debts" yaml:"debts"`
	Summary   PlanSummary       `json:"summary" yaml:"summary"`
	Schedule  []MonthlySnapshot `json:"schedule,omitempty" yaml:"schedule,omitempty"`
}

// Scenario returns the budget scenario the plan was generated for.
func (p DebtPayoffPlan) Scenario() Scenario {
	if p.Optimized {
		return ScenarioOptimized
	}
	return ScenarioMinimum
}

// SkippedVariant describes a variant omitted from the result set.
type SkippedVariant struct {
	Strategy      Strategy `json:"strategy,omitempty" yaml:"strategy,omitempty"`
	Scope         Scope    `json:"scope" yaml:"scope"`
	Scenario      Scenario `json:"scenario,omitempty" yaml:"scenario,omitempty"`
	Reason        string   `json:"reason" yaml:"reason"`
	StalledDebtID []string `json:"stalled_debt_ids,omitempty" yaml:"stalled_debt_ids,omitempty"`
}

// PlanResult is the full engine response including pass-through identifiers.
type PlanResult struct {
	OrganizationID       string           `json:"organization_id" yaml:"organization_id"`
	AccountID            string           `json:"account_id" yaml:"account_id"`
	ProfileOwner         string           `json:"profile_owner" yaml:"profile_owner"`
	GeneratedAt          time.Time        `json:"generated_at" yaml:"generated_at"`
	MonthlyPaymentBudget *money.Cents     `json:"monthly_payment_budget,omitempty" yaml:"monthly_payment_budget,omitempty"`
	Assumptions          []string         `json:"assumptions,omitempty" yaml:"assumptions,omitempty"`
	Plans                []DebtPayoffPlan `json:"plans" yaml:"plans"`
	Skipped              []SkippedVariant `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// Find returns the plan for a variant, if present.
func (r *PlanResult) Find(strategy Strategy, scope Scope, optimized bool) (DebtPayoffPlan, bool) {
	for _, p := range r.Plans {
		if p.Strategy == strategy && p.Scope == scope && p.Optimized == optimized {
			return p, true
		}
	}
	return DebtPayoffPlan{}, false
}

// HasOptimized reports whether any optimized plan was produced.
func (r *PlanResult) HasOptimized() bool {
	for _, p := range r.Plans {
		if p.Optimized {
			return true
		}
	}
	return false
}
