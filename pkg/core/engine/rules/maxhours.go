package rules

import (
	"fmt"

	"github.com/tmarler/pawshift/pkg/core/engine"
)

// MaxDailyHoursRule flags a candidate that would push a staff member's
// total active hours for the day over the configured limit. The total is
// the candidate's duration plus every other active shift for that staff
// member on the same date. Exactly hitting the limit is allowed.
//
// Severity: warning (advisory only).
type MaxDailyHoursRule struct {
	limitHours float64
}

// NewMaxDailyHoursRule creates a new MaxDailyHoursRule with the given
// daily-hours limit
func NewMaxDailyHoursRule(limitHours float64) *MaxDailyHoursRule {
	return &MaxDailyHoursRule{limitHours: limitHours}
}

func (r *MaxDailyHoursRule) Name() string {
	return "MaxDailyHours"
}

func (r *MaxDailyHoursRule) Check(snap *engine.Snapshot, candidate engine.CandidateShift, excludeShiftID int64) []engine.Conflict {
	staff := snap.StaffByID(candidate.StaffID)
	if staff == nil {
		return nil
	}

	total := candidate.DurationHours()
	for _, other := range snap.ActiveShiftsFor(candidate.StaffID, candidate.Date, excludeShiftID) {
		total += other.DurationHours()
	}

	if total <= r.limitHours {
		return nil
	}
	return []engine.Conflict{{
		Type:     engine.ConflictMaxHours,
		Severity: engine.SeverityWarning,
		ShiftID:  excludeShiftID,
		Message: fmt.Sprintf("%s would work %.1f hours on %s, over the %.0f hour daily limit",
			staff.Name, total, candidate.Date, r.limitHours),
		Details: map[string]string{"totalHours": fmt.Sprintf("%.2f", total)},
	}}
}
