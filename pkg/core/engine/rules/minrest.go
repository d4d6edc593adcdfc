package rules

import (
	"fmt"
	"strconv"

	"github.com/tmarler/pawshift/pkg/core/engine"
)

// MinRestRule flags a candidate that leaves a staff member with less than
// the configured rest between consecutive calendar days. Both directions
// are checked independently:
//
//   - rest after the previous day: from the latest-ending active shift on
//     the day before to the candidate's start
//   - rest before the next day: from the candidate's end to the
//     earliest-starting active shift on the day after
//
// Rest is measured across midnight in minutes. Exactly hitting the limit
// is allowed; either direction may produce its own warning.
//
// Severity: warning (advisory only).
type MinRestRule struct {
	limitMinutes int
}

// NewMinRestRule creates a new MinRestRule with the given rest limit in
// hours
func NewMinRestRule(limitHours float64) *MinRestRule {
	return &MinRestRule{limitMinutes: int(limitHours * 60)}
}

func (r *MinRestRule) Name() string {
	return "MinRest"
}

func (r *MinRestRule) Check(snap *engine.Snapshot, candidate engine.CandidateShift, excludeShiftID int64) []engine.Conflict {
	staff := snap.StaffByID(candidate.StaffID)
	if staff == nil {
		return nil
	}

	var conflicts []engine.Conflict

	// Rest after the previous day's latest shift.
	if prev := latestEnding(snap.ActiveShiftsFor(candidate.StaffID, engine.AddDays(candidate.Date, -1), excludeShiftID)); prev != nil {
		rest := engine.RestMinutes(prev.End, candidate.Start)
		if rest < r.limitMinutes {
			conflicts = append(conflicts, engine.Conflict{
				Type:               engine.ConflictMinRest,
				Severity:           engine.SeverityWarning,
				ShiftID:            excludeShiftID,
				ConflictingShiftID: prev.ID,
				Message: fmt.Sprintf("%s would get only %.1f hours of rest after the shift ending %s on %s",
					staff.Name, float64(rest)/60.0, prev.End, prev.Date),
				Details: map[string]string{"restMinutes": strconv.Itoa(rest)},
			})
		}
	}

	// Rest before the next day's earliest shift.
	if next := earliestStarting(snap.ActiveShiftsFor(candidate.StaffID, engine.AddDays(candidate.Date, 1), excludeShiftID)); next != nil {
		rest := engine.RestMinutes(candidate.End, next.Start)
		if rest < r.limitMinutes {
			conflicts = append(conflicts, engine.Conflict{
				Type:               engine.ConflictMinRest,
				Severity:           engine.SeverityWarning,
				ShiftID:            excludeShiftID,
				ConflictingShiftID: next.ID,
				Message: fmt.Sprintf("%s would get only %.1f hours of rest before the shift starting %s on %s",
					staff.Name, float64(rest)/60.0, next.Start, next.Date),
				Details: map[string]string{"restMinutes": strconv.Itoa(rest)},
			})
		}
	}

	return conflicts
}

// latestEnding returns the shift with the latest end time, or nil for an
// empty slice.
func latestEnding(shifts []*engine.Shift) *engine.Shift {
	var latest *engine.Shift
	for _, sh := range shifts {
		if latest == nil || sh.End > latest.End {
			latest = sh
		}
	}
	return latest
}

// earliestStarting returns the shift with the earliest start time, or nil
// for an empty slice.
func earliestStarting(shifts []*engine.Shift) *engine.Shift {
	var earliest *engine.Shift
	for _, sh := range shifts {
		if earliest == nil || sh.Start < earliest.Start {
			earliest = sh
		}
	}
	return earliest
}
