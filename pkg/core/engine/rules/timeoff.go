package rules

import (
	"fmt"

	"github.com/tmarler/pawshift/pkg/core/engine"
)

// TimeOffRule flags a candidate shift that falls inside an approved
// time-off range for the same staff member. The range is inclusive on both
// ends. Pending, denied and changes-requested requests never conflict.
//
// Severity: critical (blocks save).
// Only the first matching request is reported even when several overlap.
type TimeOffRule struct{}

// NewTimeOffRule creates a new TimeOffRule
func NewTimeOffRule() *TimeOffRule {
	return &TimeOffRule{}
}

func (r *TimeOffRule) Name() string {
	return "TimeOff"
}

func (r *TimeOffRule) Check(snap *engine.Snapshot, candidate engine.CandidateShift, excludeShiftID int64) []engine.Conflict {
	staff := snap.StaffByID(candidate.StaffID)
	if staff == nil {
		return nil
	}

	for _, req := range snap.ApprovedTimeOffFor(candidate.StaffID) {
		if req.Covers(candidate.Date) {
			return []engine.Conflict{{
				Type:      engine.ConflictTimeOff,
				Severity:  engine.SeverityCritical,
				ShiftID:   excludeShiftID,
				TimeOffID: req.ID,
				Message: fmt.Sprintf("%s has approved time off from %s to %s",
					staff.Name, req.StartDate, req.EndDate),
			}}
		}
	}
	return nil
}
