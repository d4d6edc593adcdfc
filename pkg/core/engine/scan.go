package engine

import "errors"

// ConflictReport is the facility-wide result of scanning every active shift.
type ConflictReport struct {
	// Findings are the deduplicated conflicts across the whole roster.
	Findings []Conflict

	// SkippedShiftIDs lists active shifts that could not be evaluated
	// because they reference staff missing from the directory.
	SkippedShiftIDs []int64
}

// pairKey canonicalizes a conflict for deduplication. A conflict between
// two shifts is discoverable from either shift's perspective; sorting the
// id pair collapses the two findings into one.
type pairKey struct {
	Type      ConflictType
	LowShift  int64
	HighShift int64
	TimeOffID int64
}

func keyFor(c Conflict) pairKey {
	key := pairKey{Type: c.Type, TimeOffID: c.TimeOffID}
	a, b := c.ShiftID, c.ConflictingShiftID
	if b != 0 && b < a {
		a, b = b, a
	}
	key.LowShift = a
	key.HighShift = b
	return key
}

// ScanConflicts runs the conflict rules over every active shift in the
// snapshot, each evaluated with itself excluded, and returns the
// deduplicated facility-wide report. Shifts whose staff id is unknown are
// skipped and listed rather than aborting the scan.
func ScanConflicts(snap *Snapshot, rules []Rule) ConflictReport {
	report := ConflictReport{Findings: []Conflict{}}
	seen := make(map[pairKey]bool)

	for i := range snap.Shifts {
		sh := &snap.Shifts[i]
		if !sh.IsActive() {
			continue
		}

		candidate := CandidateShift{
			StaffID: sh.StaffID,
			Date:    sh.Date,
			Start:   sh.Start,
			End:     sh.End,
			Role:    sh.Role,
		}
		conflicts, err := DetectShiftConflicts(snap, rules, candidate, sh.ID)
		if err != nil {
			if errors.Is(err, ErrUnknownStaff) {
				report.SkippedShiftIDs = append(report.SkippedShiftIDs, sh.ID)
			}
			continue
		}

		for _, c := range conflicts {
			c.ShiftID = sh.ID
			key := keyFor(c)
			if seen[key] {
				continue
			}
			seen[key] = true
			report.Findings = append(report.Findings, c)
		}
	}

	return report
}
