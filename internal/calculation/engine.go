package calculation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/debtplan/payoff-engine/internal/domain"
	"github.com/debtplan/payoff-engine/pkg/money"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// PlanGenerator orchestrates payoff plan generation across scopes, budget
// scenarios and strategies. It keeps no state between calls.
type PlanGenerator struct {
	Assumptions domain.Assumptions
	Clock       Clock
	Logger      Logger
}

// NewPlanGenerator creates a generator with default assumptions
func NewPlanGenerator() *PlanGenerator {
	return NewPlanGeneratorWithConfig(domain.DefaultAssumptions())
}

// NewPlanGeneratorWithConfig creates a generator with the given assumptions
func NewPlanGeneratorWithConfig(assumptions domain.Assumptions) *PlanGenerator {
	return &PlanGenerator{
		Assumptions: assumptions.WithDefaults(),
		Clock:       SystemClock,
		Logger:      NopLogger{},
	}
}

// SetLogger sets the logger for the generator. If nil is provided, a no-op logger is used.
func (pg *PlanGenerator) SetLogger(l Logger) {
	pg.Logger = loggerOrNop(l)
}

// budgetScenario is one budget to simulate for a scope.
type budgetScenario struct {
	scenario domain.Scenario
	budget   money.Cents
}

// variant is one simulation unit: a scope, a scenario and a strategy.
type variant struct {
	scope    domain.Scope
	scenario budgetScenario
	strategy domain.Strategy
	debts    []domain.Debt
}

type variantOutcome struct {
	plan    domain.DebtPayoffPlan
	sim     SimulationResult
	elapsed time.Duration
}

// Generate validates the request and produces every plan variant along with
// pass-through identifiers and the list of skipped variants. Only invalid
// input is returned as an error.
func (pg *PlanGenerator) Generate(ctx context.Context, req *domain.PlanRequest) (*domain.PlanResult, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}
	assumptions := mergeAssumptions(pg.Assumptions, req.Assumptions)

	debts := normalizeDebts(req.Debts, loggerOrNop(pg.Logger))
	result, err := pg.generate(ctx, debts, req.MonthlyPaymentBudget, assumptions)
	if err != nil {
		return nil, err
	}
	result.OrganizationID = req.OrganizationID
	result.AccountID = req.AccountID
	result.ProfileOwner = req.ProfileOwner
	return result, nil
}

// GeneratePlans produces the plan list for a bare debt list and optional
// budget in cents.
func (pg *PlanGenerator) GeneratePlans(ctx context.Context, debts []domain.Debt, monthlyPaymentBudget *money.Cents) ([]domain.DebtPayoffPlan, error) {
	if err := ValidateDebts(debts); err != nil {
		return nil, err
	}
	if monthlyPaymentBudget != nil && *monthlyPaymentBudget < 0 {
		return nil, &ValidationError{Problems: []string{"monthly_payment_budget cannot be negative"}}
	}
	debts = normalizeDebts(debts, loggerOrNop(pg.Logger))
	result, err := pg.generate(ctx, debts, monthlyPaymentBudget, pg.Assumptions.WithDefaults())
	if err != nil {
		return nil, err
	}
	return result.Plans, nil
}

func (pg *PlanGenerator) generate(ctx context.Context, debts []domain.Debt, budget *money.Cents, assumptions domain.Assumptions) (*domain.PlanResult, error) {
	logger := loggerOrNop(pg.Logger)
	clock := pg.Clock
	if clock == nil {
		clock = SystemClock
	}

	result := &domain.PlanResult{
		GeneratedAt:          clock(),
		MonthlyPaymentBudget: budget,
		Assumptions:          assumptions.Describe(),
		Plans:                []domain.DebtPayoffPlan{},
	}

	var variants []variant
	collapsed := map[domain.Scope]bool{}
	for _, scope := range domain.Scopes {
		scoped := scopeDebts(debts, scope)
		if len(scoped) == 0 {
			logger.Debugf("scope %s: %v", scope, ErrNoDebtsInScope)
			result.Skipped = append(result.Skipped, domain.SkippedVariant{
				Scope:  scope,
				Reason: ErrNoDebtsInScope.Error(),
			})
			continue
		}
		scenarios, isCollapsed := budgetScenarios(scoped, budget, assumptions.BufferRate())
		if isCollapsed {
			collapsed[scope] = true
		}
		for _, sc := range scenarios {
			for _, strategy := range domain.Strategies {
				variants = append(variants, variant{
					scope:    scope,
					scenario: sc,
					strategy: strategy,
					debts:    domain.CloneDebts(scoped),
				})
			}
		}
	}

	outcomes, err := pg.runVariants(ctx, variants, assumptions, result.GeneratedAt)
	if err != nil {
		return nil, err
	}

	for i, v := range variants {
		out := outcomes[i]
		if !out.sim.Convergent {
			logger.Warnf("%v: %s/%s/%s budget %s after %d months; stalled debts: %s",
				ErrNonConvergent, v.scope, v.scenario.scenario, v.strategy, v.scenario.budget,
				len(out.sim.History), strings.Join(out.sim.Stalled, ", "))
			result.Skipped = append(result.Skipped, domain.SkippedVariant{
				Strategy:      v.strategy,
				Scope:         v.scope,
				Scenario:      v.scenario.scenario,
				Reason:        ErrNonConvergent.Error(),
				StalledDebtID: out.sim.Stalled,
			})
			continue
		}
		logger.Debugf("%s/%s/%s: %d months, interest %s (%s)",
			v.scope, v.scenario.scenario, v.strategy, out.plan.Summary.MonthsToPayoff,
			out.plan.Summary.TotalInterest, out.elapsed)
		result.Plans = append(result.Plans, out.plan)
		if collapsed[v.scope] && assumptions.IncludeCollapsedOptimized {
			twin := out.plan
			twin.Optimized = true
			result.Plans = append(result.Plans, twin)
		}
	}

	logger.Infof("generated %d plans (%d skipped) for %d debts", len(result.Plans), len(result.Skipped), len(debts))
	return result, nil
}

// runVariants simulates every variant, bounded by assumptions.Concurrency.
// Outcomes are stored by index so output order does not depend on timing.
func (pg *PlanGenerator) runVariants(ctx context.Context, variants []variant, assumptions domain.Assumptions, generatedAt time.Time) ([]variantOutcome, error) {
	outcomes := make([]variantOutcome, len(variants))
	sim := NewSimulator(assumptions, pg.Logger)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(assumptions.Concurrency)
	for i, v := range variants {
		i, v := i, v
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			res := sim.Simulate(v.debts, v.scenario.budget, v.strategy)
			outcomes[i] = variantOutcome{
				plan:    buildPlan(v, res, generatedAt, assumptions.IncludeSchedule),
				sim:     res,
				elapsed: time.Since(start),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("plan generation interrupted: %w", err)
	}
	return outcomes, nil
}

func buildPlan(v variant, res SimulationResult, generatedAt time.Time, includeSchedule bool) domain.DebtPayoffPlan {
	plan := domain.DebtPayoffPlan{
		Strategy:  v.strategy,
		Scope:     v.scope,
		Optimized: v.scenario.scenario == domain.ScenarioOptimized,
		Debts:     BuildDebtResults(res.History, v.debts, v.strategy, generatedAt),
		Summary:   Summarize(res.History, v.debts, v.scenario.budget, generatedAt),
	}
	if includeSchedule {
		plan.Schedule = res.History
	}
	return plan
}

// scopeDebts returns the debts belonging to scope, in input order.
func scopeDebts(debts []domain.Debt, scope domain.Scope) []domain.Debt {
	var out []domain.Debt
	for _, d := range debts {
		if scope.Includes(d) {
			out = append(out, d)
		}
	}
	return out
}

// budgetScenarios computes the minimum and, when the supplied budget exceeds
// the minimums, the optimized scenario. The second return value reports a
// supplied budget that collapsed onto the minimum scenario.
func budgetScenarios(debts []domain.Debt, budget *money.Cents, bufferRate decimal.Decimal) ([]budgetScenario, bool) {
	minimums := domain.TotalMinimumPayments(debts)
	if budget == nil {
		buffered := minimums.MulRate(decimal.NewFromInt(1).Add(bufferRate))
		return []budgetScenario{{scenario: domain.ScenarioMinimum, budget: buffered}}, false
	}

	scenarios := []budgetScenario{{scenario: domain.ScenarioMinimum, budget: minimums}}
	optimized := money.Max(*budget, minimums)
	if optimized <= minimums {
		return scenarios, true
	}
	return append(scenarios, budgetScenario{scenario: domain.ScenarioOptimized, budget: optimized}), false
}

// mergeAssumptions overlays request-level settings on the generator's.
func mergeAssumptions(base, override domain.Assumptions) domain.Assumptions {
	merged := base
	if override.MaxMonths > 0 {
		merged.MaxMonths = override.MaxMonths
	}
	if override.MinimumBufferRate != nil {
		merged.MinimumBufferRate = override.MinimumBufferRate
	}
	if override.DeferredInterestPolicy != "" {
		merged.DeferredInterestPolicy = override.DeferredInterestPolicy
	}
	if override.Concurrency > 0 {
		merged.Concurrency = override.Concurrency
	}
	merged.IncludeSchedule = merged.IncludeSchedule || override.IncludeSchedule
	merged.IncludeCollapsedOptimized = merged.IncludeCollapsedOptimized || override.IncludeCollapsedOptimized
	return merged.WithDefaults()
}
