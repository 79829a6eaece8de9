package calculation

import (
	"fmt"
	"strings"

	"github.com/debtplan/payoff-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// maxAllowedMonths bounds a configured simulation cap (100 years).
const maxAllowedMonths = 1200

// ValidateRequest checks identifiers, debts and assumptions. The returned
// error wraps ErrInvalidInput and lists every problem found.
func ValidateRequest(req *domain.PlanRequest) error {
	verr := &ValidationError{}
	if req == nil {
		verr.add("request is required")
		return verr
	}
	if strings.TrimSpace(req.OrganizationID) == "" {
		verr.add("organization_id is required")
	}
	if strings.TrimSpace(req.AccountID) == "" {
		verr.add("account_id is required")
	}
	if strings.TrimSpace(req.ProfileOwner) == "" {
		verr.add("profile_owner is required")
	}
	if b, ok := req.Budget(); ok && b < 0 {
		verr.add("monthly_payment_budget cannot be negative")
	}
	validateDebts(verr, req.Debts)
	validateAssumptions(verr, req.Assumptions)
	return verr.orNil()
}

// ValidateDebts checks a bare debt list.
func ValidateDebts(debts []domain.Debt) error {
	verr := &ValidationError{}
	validateDebts(verr, debts)
	return verr.orNil()
}

func validateDebts(verr *ValidationError, debts []domain.Debt) {
	if len(debts) == 0 {
		verr.add("at least one debt is required")
		return
	}
	seen := make(map[string]bool, len(debts))
	for i, d := range debts {
		label := fmt.Sprintf("debt[%d]", i)
		if strings.TrimSpace(d.ID) == "" {
			verr.add(label + ": id is required")
		} else {
			label = fmt.Sprintf("debt %q", d.ID)
			if seen[d.ID] {
				verr.add(label + ": duplicate id")
			}
			seen[d.ID] = true
		}
		if !d.Type.Valid() {
			verr.add(fmt.Sprintf("%s: unknown type %q", label, d.Type))
		}
		if d.CurrentBalance < 0 {
			verr.add(label + ": current_balance cannot be negative")
		}
		if d.MinimumPayment < 0 {
			verr.add(label + ": minimum_payment cannot be negative")
		}
		if d.InterestRate.IsNegative() {
			verr.add(label + ": interest_rate cannot be negative")
		}
		if d.PromotionalRate != nil && d.PromotionalRate.IsNegative() {
			verr.add(label + ": promotional_rate cannot be negative")
		}
		if d.PromotionalEndMonth != nil && *d.PromotionalEndMonth < 0 {
			verr.add(label + ": promotional_end_month cannot be negative")
		}
	}
}

func validateAssumptions(verr *ValidationError, a domain.Assumptions) {
	if a.MaxMonths < 0 || a.MaxMonths > maxAllowedMonths {
		verr.add(fmt.Sprintf("assumptions.max_months must be between 1 and %d", maxAllowedMonths))
	}
	if a.MinimumBufferRate != nil && (a.MinimumBufferRate.IsNegative() || a.MinimumBufferRate.GreaterThan(decimal.NewFromInt(1))) {
		verr.add("assumptions.minimum_buffer_rate must be between 0 and 1")
	}
	if a.DeferredInterestPolicy != "" && !a.DeferredInterestPolicy.Valid() {
		verr.add(fmt.Sprintf("assumptions.deferred_interest_policy must be %q or %q",
			domain.DeferredPromoStartBalance, domain.DeferredAccruedShadow))
	}
	if a.Concurrency < 0 {
		verr.add("assumptions.concurrency cannot be negative")
	}
}

// normalizeDebts returns copies of debts with incomplete promotional data
// dropped. A rate without an end month (or the reverse) means no promotion,
// and a deferred-interest flag without a window is ignored.
func normalizeDebts(debts []domain.Debt, logger Logger) []domain.Debt {
	out := domain.CloneDebts(debts)
	for i := range out {
		d := &out[i]
		if (d.PromotionalRate == nil) != (d.PromotionalEndMonth == nil) {
			logger.Warnf("debt %s: promotional_rate and promotional_end_month must be given together; ignoring promotion", d.ID)
			d.PromotionalRate = nil
			d.PromotionalEndMonth = nil
		}
		if d.HasDeferredInterest && !d.HasPromotion() {
			logger.Warnf("debt %s: has_deferred_interest without a promotional window; ignoring flag", d.ID)
			d.HasDeferredInterest = false
		}
	}
	return out
}
