package domain

import (
	"fmt"

	"github.com/debtplan/payoff-engine/pkg/money"
	"github.com/shopspring/decimal"
)

// DeferredInterestPolicy selects how retroactive interest is computed when a
// deferred-interest promotion expires with a balance still owed.
type DeferredInterestPolicy string

const (
	// DeferredPromoStartBalance charges the full APR on the balance that
	// existed when the promotion started, for every promo month.
	DeferredPromoStartBalance DeferredInterestPolicy = "promo_start_balance"
	// DeferredAccruedShadow charges the full-APR interest that would have
	// accrued on each promo month's opening balance.
	DeferredAccruedShadow DeferredInterestPolicy = "accrued_shadow"
)

// Valid reports whether p names a known policy.
func (p DeferredInterestPolicy) Valid() bool {
	return p == DeferredPromoStartBalance || p == DeferredAccruedShadow
}

const (
	DefaultMaxMonths   = 600
	DefaultConcurrency = 4
)

// DefaultMinimumBufferRate is the extra applied over minimum payments when the
// caller supplies no budget.
var DefaultMinimumBufferRate = decimal.NewFromFloat(0.10)

// Assumptions are the engine tunables. Zero values fall back to defaults.
type Assumptions struct {
	MaxMonths                 int                    `yaml:"max_months,omitempty" json:"max_months,omitempty" toml:"max_months,omitempty"`
	MinimumBufferRate         *decimal.Decimal       `yaml:"minimum_buffer_rate,omitempty" json:"minimum_buffer_rate,omitempty" toml:"minimum_buffer_rate,omitempty"`
	DeferredInterestPolicy    DeferredInterestPolicy `yaml:"deferred_interest_policy,omitempty" json:"deferred_interest_policy,omitempty" toml:"deferred_interest_policy,omitempty"`
	Concurrency               int                    `yaml:"concurrency,omitempty" json:"concurrency,omitempty" toml:"concurrency,omitempty"`
	IncludeSchedule           bool                   `yaml:"include_schedule,omitempty" json:"include_schedule,omitempty" toml:"include_schedule,omitempty"`
	IncludeCollapsedOptimized bool                   `yaml:"include_collapsed_optimized,omitempty" json:"include_collapsed_optimized,omitempty" toml:"include_collapsed_optimized,omitempty"`
}

// DefaultAssumptions returns the documented engine defaults.
func DefaultAssumptions() Assumptions {
	buffer := DefaultMinimumBufferRate
	return Assumptions{
		MaxMonths:              DefaultMaxMonths,
		MinimumBufferRate:      &buffer,
		DeferredInterestPolicy: DeferredPromoStartBalance,
		Concurrency:            DefaultConcurrency,
	}
}

// WithDefaults fills unset fields from DefaultAssumptions.
func (a Assumptions) WithDefaults() Assumptions {
	def := DefaultAssumptions()
	if a.MaxMonths <= 0 {
		a.MaxMonths = def.MaxMonths
	}
	if a.MinimumBufferRate == nil {
		a.MinimumBufferRate = def.MinimumBufferRate
	}
	if a.DeferredInterestPolicy == "" {
		a.DeferredInterestPolicy = def.DeferredInterestPolicy
	}
	if a.Concurrency <= 0 {
		a.Concurrency = def.Concurrency
	}
	return a
}

// BufferRate returns the minimum-scenario buffer, defaulting when unset.
func (a Assumptions) BufferRate() decimal.Decimal {
	if a.MinimumBufferRate == nil {
		return DefaultMinimumBufferRate
	}
	return *a.MinimumBufferRate
}

// Describe lists the assumptions in human-readable form for reports.
func (a Assumptions) Describe() []string {
	a = a.WithDefaults()
	return []string{
		fmt.Sprintf("Simulation cap: %d months", a.MaxMonths),
		fmt.Sprintf("Default budget without a supplied budget: minimums + %s%%", a.BufferRate().Mul(decimal.NewFromInt(100)).StringFixed(1)),
		fmt.Sprintf("Deferred interest policy: %s", a.DeferredInterestPolicy),
		"Monthly interest: balance x APR / 12, rounded half-up to the cent",
		"Freed minimum payments roll over to the next debt in strategy order",
	}
}

// PlanRequest is the engine input: enriched debts plus opaque identifiers.
type PlanRequest struct {
	OrganizationID       string       `yaml:"organization_id" json:"organization_id" toml:"organization_id"`
	AccountID            string       `yaml:"account_id" json:"account_id" toml:"account_id"`
	ProfileOwner         string       `yaml:"profile_owner" json:"profile_owner" toml:"profile_owner"`
	MonthlyPaymentBudget *money.Cents `yaml:"monthly_payment_budget,omitempty" json:"monthly_payment_budget,omitempty" toml:"monthly_payment_budget,omitempty"`
	Debts                []Debt       `yaml:"debts" json:"debts" toml:"debts"`
	Assumptions          Assumptions  `yaml:"assumptions,omitempty" json:"assumptions,omitempty" toml:"assumptions,omitempty"`
}

// Budget returns the supplied budget and whether one was given.
func (r PlanRequest) Budget() (money.Cents, bool) {
	if r.MonthlyPaymentBudget == nil {
		return 0, false
	}
	return *r.MonthlyPaymentBudget, true
}
