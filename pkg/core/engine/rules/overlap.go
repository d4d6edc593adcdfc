package rules

import (
	"fmt"
	"strconv"

	"github.com/tmarler/pawshift/pkg/core/engine"
)

// OverlapRule flags active shifts for the same staff member and date whose
// interval strictly overlaps the candidate's. Intervals that only touch at
// an endpoint do not overlap. Exact-duplicate intervals are skipped here;
// those belong to DoubleBookingRule.
//
// Severity: critical (blocks save).
// Reports one conflict referencing the first overlapping shift, with the
// total overlap count in Details.
type OverlapRule struct{}

// NewOverlapRule creates a new OverlapRule
func NewOverlapRule() *OverlapRule {
	return &OverlapRule{}
}

func (r *OverlapRule) Name() string {
	return "Overlap"
}

func (r *OverlapRule) Check(snap *engine.Snapshot, candidate engine.CandidateShift, excludeShiftID int64) []engine.Conflict {
	staff := snap.StaffByID(candidate.StaffID)
	if staff == nil {
		return nil
	}

	var first *engine.Shift
	count := 0
	for _, other := range snap.ActiveShiftsFor(candidate.StaffID, candidate.Date, excludeShiftID) {
		// Exact matches are the double-booking rule's finding.
		if other.Start == candidate.Start && other.End == candidate.End {
			continue
		}
		if engine.Overlaps(candidate.Start, candidate.End, other.Start, other.End) {
			if first == nil {
				first = other
			}
			count++
		}
	}

	if first == nil {
		return nil
	}
	return []engine.Conflict{{
		Type:               engine.ConflictOverlapping,
		Severity:           engine.SeverityCritical,
		ShiftID:            excludeShiftID,
		ConflictingShiftID: first.ID,
		Message: fmt.Sprintf("%s has %d overlapping shift(s) on %s; first overlap is %s to %s",
			staff.Name, count, candidate.Date, first.Start, first.End),
		Details: map[string]string{"overlapCount": strconv.Itoa(count)},
	}}
}
