package calculation

import (
	"github.com/debtplan/payoff-engine/internal/domain"
	"github.com/debtplan/payoff-engine/pkg/money"
)

// deferredTracker follows one deferred-interest promotion through a
// simulation and produces the one-time retroactive charge at expiry.
type deferredTracker struct {
	policy       domain.DeferredInterestPolicy
	startBalance money.Cents
	shadow       money.Cents
	charged      bool
}

// newDeferredTracker returns nil for debts without a deferred-interest promo.
func newDeferredTracker(d domain.Debt, policy domain.DeferredInterestPolicy) *deferredTracker {
	if !d.HasDeferredInterest || !d.HasPromotion() {
		return nil
	}
	if !policy.Valid() {
		policy = domain.DeferredPromoStartBalance
	}
	return &deferredTracker{policy: policy, startBalance: d.CurrentBalance}
}

// observe records full-APR interest on a promo month's opening balance.
func (t *deferredTracker) observe(d domain.Debt, opening money.Cents, elapsed int) {
	if t == nil || !d.InPromotion(elapsed) {
		return
	}
	t.shadow += money.MonthlyInterest(opening, d.InterestRate)
}

// charge returns the retroactive interest owed in the first month after the
// promo window, provided a balance remains. It fires at most once.
func (t *deferredTracker) charge(d domain.Debt, opening money.Cents, elapsed int) money.Cents {
	if t == nil || t.charged || opening <= 0 || elapsed != d.PromotionEnd() {
		return 0
	}
	t.charged = true
	switch t.policy {
	case domain.DeferredAccruedShadow:
		return t.shadow
	default:
		return money.InterestForMonths(t.startBalance, d.InterestRate, d.PromotionEnd())
	}
}
