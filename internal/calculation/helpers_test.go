package calculation

import (
	"fmt"
	"sync"

	"github.com/debtplan/payoff-engine/internal/domain"
	"github.com/debtplan/payoff-engine/pkg/money"
	"github.com/shopspring/decimal"
)

func testDebt(id string, typ domain.DebtType, balance money.Cents, rate string, minimum money.Cents) domain.Debt {
	return domain.Debt{
		ID:             id,
		Name:           "Debt " + id,
		Type:           typ,
		CurrentBalance: balance,
		InterestRate:   decimal.RequireFromString(rate),
		MinimumPayment: minimum,
	}
}

func withPromo(d domain.Debt, rate string, endMonth int, deferred bool) domain.Debt {
	r := decimal.RequireFromString(rate)
	d.PromotionalRate = &r
	d.PromotionalEndMonth = &endMonth
	d.HasDeferredInterest = deferred
	return d
}

func cents(c money.Cents) *money.Cents { return &c }

// recordingLogger captures formatted messages per level.
type recordingLogger struct {
	mu     sync.Mutex
	warns  []string
	errors []string
}

func (l *recordingLogger) Debugf(string, ...any) {}
func (l *recordingLogger) Infof(string, ...any)  {}
func (l *recordingLogger) Warnf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Errorf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}
