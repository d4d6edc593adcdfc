package engine

import "fmt"

// Limits carries the working-time thresholds the rules and swap advisors
// evaluate against. The defaults match the facility's current policy.
type Limits struct {
	// MaxDailyHours is the most one staff member may work in a calendar day.
	MaxDailyHours float64

	// MinRestHours is the minimum rest between shifts on consecutive days.
	MinRestHours float64

	// WeeklyOvertimeHours is the weekly total above which a staff member is
	// considered in overtime. Used by the swap advisors, not the detector.
	WeeklyOvertimeHours float64
}

// DefaultLimits returns the facility's standard working-time limits:
// 12 hour days, 8 hours of rest, overtime past 40 hours a week.
func DefaultLimits() Limits {
	return Limits{
		MaxDailyHours:       12,
		MinRestHours:        8,
		WeeklyOvertimeHours: 40,
	}
}

// Rule is a single independent conflict check. Rules influence nothing but
// their own findings: each may append zero or more conflicts and no rule
// short-circuits another.
type Rule interface {
	// Name returns a human-readable identifier for this rule
	Name() string

	// Check evaluates the candidate shift against the snapshot and returns
	// any conflicts it finds. excludeShiftID identifies the shift being
	// edited, so it is never compared against itself; pass 0 for new shifts.
	Check(snap *Snapshot, candidate CandidateShift, excludeShiftID int64) []Conflict
}

// DetectShiftConflicts runs every rule against the candidate shift and
// returns the combined findings in rule order. It returns ErrUnknownStaff
// when the candidate references a staff id missing from the directory, so
// callers can tell "no conflicts" apart from "could not evaluate".
//
// The evaluation is pure: the same snapshot and candidate always produce
// the same conflict list, in the same order.
func DetectShiftConflicts(snap *Snapshot, rules []Rule, candidate CandidateShift, excludeShiftID int64) ([]Conflict, error) {
	if snap.StaffByID(candidate.StaffID) == nil {
		return nil, fmt.Errorf("%w: staff id %d is not in the directory", ErrUnknownStaff, candidate.StaffID)
	}

	conflicts := []Conflict{}
	for _, rule := range rules {
		conflicts = append(conflicts, rule.Check(snap, candidate, excludeShiftID)...)
	}
	return conflicts, nil
}
