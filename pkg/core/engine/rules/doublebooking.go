package rules

import (
	"fmt"

	"github.com/tmarler/pawshift/pkg/core/engine"
)

// DoubleBookingRule flags an exact duplicate assignment: another active
// shift for the same staff member, same date, with identical start and end
// times.
//
// Severity: critical (blocks save).
// Only the first matching shift is reported.
type DoubleBookingRule struct{}

// NewDoubleBookingRule creates a new DoubleBookingRule
func NewDoubleBookingRule() *DoubleBookingRule {
	return &DoubleBookingRule{}
}

func (r *DoubleBookingRule) Name() string {
	return "DoubleBooking"
}

func (r *DoubleBookingRule) Check(snap *engine.Snapshot, candidate engine.CandidateShift, excludeShiftID int64) []engine.Conflict {
	staff := snap.StaffByID(candidate.StaffID)
	if staff == nil {
		return nil
	}

	for _, other := range snap.ActiveShiftsFor(candidate.StaffID, candidate.Date, excludeShiftID) {
		if other.Start == candidate.Start && other.End == candidate.End {
			return []engine.Conflict{{
				Type:               engine.ConflictDoubleBooking,
				Severity:           engine.SeverityCritical,
				ShiftID:            excludeShiftID,
				ConflictingShiftID: other.ID,
				Message: fmt.Sprintf("%s is already booked on %s from %s to %s",
					staff.Name, other.Date, other.Start, other.End),
			}}
		}
	}
	return nil
}
