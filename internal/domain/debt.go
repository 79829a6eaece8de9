package domain

import (
	"fmt"
	"strings"

	"github.com/debtplan/payoff-engine/pkg/money"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// DebtType classifies a debt-bearing account.
type DebtType string

const (
	DebtTypeCreditCard DebtType = "credit_card"
	DebtTypeLoan       DebtType = "loan"
	DebtTypeMortgage   DebtType = "mortgage"
	DebtTypeOther      DebtType = "other"
)

// Valid reports whether t is one of the known debt types.
func (t DebtType) Valid() bool {
	switch t {
	case DebtTypeCreditCard, DebtTypeLoan, DebtTypeMortgage, DebtTypeOther:
		return true
	}
	return false
}

// Debt is a single debt as supplied by the enrichment step. Balances and
// payments are integer cents; rates are annual decimals (0.0499 == 4.99%).
type Debt struct {
	ID                  string           `yaml:"id" json:"id" toml:"id"`
	Name                string           `yaml:"name" json:"name" toml:"name"`
	Type                DebtType         `yaml:"type" json:"type" toml:"type"`
	CurrentBalance      money.Cents      `yaml:"current_balance" json:"current_balance" toml:"current_balance"`
	InterestRate        decimal.Decimal  `yaml:"interest_rate" json:"interest_rate" toml:"interest_rate"`
	MinimumPayment      money.Cents      `yaml:"minimum_payment" json:"minimum_payment" toml:"minimum_payment"`
	PromotionalRate     *decimal.Decimal `yaml:"promotional_rate,omitempty" json:"promotional_rate,omitempty" toml:"promotional_rate,omitempty"`
	PromotionalEndMonth *int             `yaml:"promotional_end_month,omitempty" json:"promotional_end_month,omitempty" toml:"promotional_end_month,omitempty"`
	HasDeferredInterest bool             `yaml:"has_deferred_interest,omitempty" json:"has_deferred_interest,omitempty" toml:"has_deferred_interest,omitempty"`
}

// UnmarshalYAML decodes rate fields from their textual form so that values
// like 0.2699 keep their exact decimal representation.
func (d *Debt) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		ID                  string      `yaml:"id"`
		Name                string      `yaml:"name"`
		Type                DebtType    `yaml:"type"`
		CurrentBalance      money.Cents `yaml:"current_balance"`
		InterestRate        string      `yaml:"interest_rate"`
		MinimumPayment      money.Cents `yaml:"minimum_payment"`
		PromotionalRate     *string     `yaml:"promotional_rate,omitempty"`
		PromotionalEndMonth *int        `yaml:"promotional_end_month,omitempty"`
		HasDeferredInterest bool        `yaml:"has_deferred_interest,omitempty"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	d.ID = aux.ID
	d.Name = aux.Name
	d.Type = DebtType(strings.ToLower(strings.TrimSpace(string(aux.Type))))
	d.CurrentBalance = aux.CurrentBalance
	d.MinimumPayment = aux.MinimumPayment
	d.PromotionalEndMonth = aux.PromotionalEndMonth
	d.HasDeferredInterest = aux.HasDeferredInterest

	d.InterestRate = decimal.Zero
	if strings.TrimSpace(aux.InterestRate) != "" {
		rate, err := decimal.NewFromString(strings.TrimSpace(aux.InterestRate))
		if err != nil {
			return fmt.Errorf("debt %q: invalid interest_rate %q: %w", aux.ID, aux.InterestRate, err)
		}
		d.InterestRate = rate
	}

	d.PromotionalRate = nil
	if aux.PromotionalRate != nil {
		rate, err := decimal.NewFromString(strings.TrimSpace(*aux.PromotionalRate))
		if err != nil {
			return fmt.Errorf("debt %q: invalid promotional_rate %q: %w", aux.ID, *aux.PromotionalRate, err)
		}
		d.PromotionalRate = &rate
	}

	return nil
}

// HasPromotion reports whether the debt carries a usable promotional window.
func (d Debt) HasPromotion() bool {
	return d.PromotionalRate != nil && d.PromotionalEndMonth != nil && *d.PromotionalEndMonth > 0
}

// PromotionEnd returns the promo window length in months, or 0 if none.
func (d Debt) PromotionEnd() int {
	if !d.HasPromotion() {
		return 0
	}
	return *d.PromotionalEndMonth
}

// InPromotion reports whether elapsed months since simulation start still
// fall inside the promotional window.
func (d Debt) InPromotion(elapsed int) bool {
	return d.HasPromotion() && elapsed < *d.PromotionalEndMonth
}

// EffectiveRate returns the annual rate that applies after elapsed months.
func (d Debt) EffectiveRate(elapsed int) decimal.Decimal {
	if d.InPromotion(elapsed) {
		return *d.PromotionalRate
	}
	return d.InterestRate
}

// IsConsumer reports whether the debt belongs to the consumer scope.
func (d Debt) IsConsumer() bool {
	return d.Type != DebtTypeMortgage
}

// Clone returns a deep copy so that pointer fields are never shared.
func (d Debt) Clone() Debt {
	c := d
	if d.PromotionalRate != nil {
		r := *d.PromotionalRate
		c.PromotionalRate = &r
	}
	if d.PromotionalEndMonth != nil {
		m := *d.PromotionalEndMonth
		c.PromotionalEndMonth = &m
	}
	return c
}

// CloneDebts deep-copies a debt list.
func CloneDebts(debts []Debt) []Debt {
	out := make([]Debt, len(debts))
	for i, d := range debts {
		out[i] = d.Clone()
	}
	return out
}

// TotalBalance sums current balances.
func TotalBalance(debts []Debt) money.Cents {
	var total money.Cents
	for _, d := range debts {
		total += d.CurrentBalance
	}
	return total
}

// TotalMinimumPayments sums contractual minimum payments.
func TotalMinimumPayments(debts []Debt) money.Cents {
	var total money.Cents
	for _, d := range debts {
		total += d.MinimumPayment
	}
	return total
}
