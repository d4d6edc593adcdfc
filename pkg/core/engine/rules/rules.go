package rules

import "github.com/tmarler/pawshift/pkg/core/engine"

// Default returns the full rule set in evaluation order. The order is part
// of the detector's contract: conflict lists are deterministic and rules
// never suppress one another.
func Default(limits engine.Limits) []engine.Rule {
	return []engine.Rule{
		NewDoubleBookingRule(),
		NewOverlapRule(),
		NewTimeOffRule(),
		NewRoleMismatchRule(),
		NewMaxDailyHoursRule(limits.MaxDailyHours),
		NewMinRestRule(limits.MinRestHours),
	}
}
