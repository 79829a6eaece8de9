package output

import "github.com/debtplan/payoff-engine/internal/domain"

// reportAssumptions lists the modeling assumptions rendered in detailed
// outputs, falling back to the engine defaults for results built by hand.
func reportAssumptions(results *domain.PlanResult) []string {
	if len(results.Assumptions) > 0 {
		return results.Assumptions
	}
	return domain.DefaultAssumptions().Describe()
}
