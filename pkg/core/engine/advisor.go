package engine

import (
	"fmt"
	"sort"
)

// dayOfWeek returns the weekday (0 = Sunday) for a "YYYY-MM-DD" date, or -1
// when the date cannot be parsed so nothing matches the availability table.
func dayOfWeek(date string) int {
	d, err := ParseDate(date)
	if err != nil {
		return -1
	}
	return int(d.Weekday())
}

// isScheduledOn reports whether the staff member has any active shift on
// the given date.
func (s *Snapshot) isScheduledOn(staffID int64, date string) bool {
	return len(s.ActiveShiftsFor(staffID, date, 0)) > 0
}

// hasOverlapOn reports whether the staff member has an active shift on the
// date that strictly overlaps [start, end).
func (s *Snapshot) hasOverlapOn(staffID int64, date string, start, end TimeOfDay) bool {
	for _, sh := range s.ActiveShiftsFor(staffID, date, 0) {
		if Overlaps(start, end, sh.Start, sh.End) {
			return true
		}
	}
	return false
}

// AvailableForCoverage returns the staff who could be called in to cover a
// shift vacated by a same-day call-out: active staff whose weekly
// availability on the shift's weekday covers its start time, who are not
// already scheduled that date, and who are not the vacating staff member.
//
// Returns an empty slice, never an error, when no one qualifies.
func AvailableForCoverage(snap *Snapshot, shift *Shift) []Staff {
	out := []Staff{}
	if shift == nil {
		return out
	}
	dow := dayOfWeek(shift.Date)

	for _, st := range snap.Staff {
		if !st.Active || st.ID == shift.StaffID {
			continue
		}
		if snap.isScheduledOn(st.ID, shift.Date) {
			continue
		}
		for _, a := range snap.AvailabilityFor(st.ID, dow) {
			if Contains(a.Start, a.End, shift.Start) {
				out = append(out, st)
				break
			}
		}
	}
	return out
}

// SuggestReplacements returns ranked replacement candidates for a vacated
// shift. A candidate's availability window must fully contain the shift's
// interval. Same-role matches come first, followed by cross-role backups.
func SuggestReplacements(snap *Snapshot, shift *Shift) []Staff {
	if shift == nil {
		return []Staff{}
	}
	dow := dayOfWeek(shift.Date)

	sameRole := []Staff{}
	backups := []Staff{}
	for _, st := range snap.Staff {
		if !st.Active || st.ID == shift.StaffID {
			continue
		}
		if snap.isScheduledOn(st.ID, shift.Date) {
			continue
		}
		contained := false
		for _, a := range snap.AvailabilityFor(st.ID, dow) {
			if a.Start <= shift.Start && shift.End <= a.End {
				contained = true
				break
			}
		}
		if !contained {
			continue
		}
		if st.Role == shift.Role {
			sameRole = append(sameRole, st)
		} else {
			backups = append(backups, st)
		}
	}
	return append(sameRole, backups...)
}

// SwapValidation is the outcome of checking a proposed shift swap.
// Errors block submission; warnings are advisory.
type SwapValidation struct {
	Errors   []string
	Warnings []string
}

// OK reports whether the swap may be submitted.
func (v SwapValidation) OK() bool {
	return len(v.Errors) == 0
}

// ValidateSwap checks a proposed swap of requestingShiftID to targetStaffID
// (optionally giving the target's shift targetShiftID to the requester).
// Missing shifts or staff are errors. A role mismatch is a warning; cross-
// role swaps are permitted. An overlapping shift for the target on the
// requesting shift's date is an error. Pushing the target's weekly hours
// over the overtime limit is a warning.
func ValidateSwap(snap *Snapshot, limits Limits, requestingShiftID, targetStaffID, targetShiftID int64) SwapValidation {
	var v SwapValidation

	reqShift := snap.ShiftByID(requestingShiftID)
	if reqShift == nil {
		v.Errors = append(v.Errors, fmt.Sprintf("requesting shift %d not found", requestingShiftID))
		return v
	}
	if snap.StaffByID(reqShift.StaffID) == nil {
		v.Errors = append(v.Errors, fmt.Sprintf("staff %d on the requesting shift not found", reqShift.StaffID))
	}
	target := snap.StaffByID(targetStaffID)
	if target == nil {
		v.Errors = append(v.Errors, fmt.Sprintf("target staff %d not found", targetStaffID))
		return v
	}
	if targetShiftID != 0 && snap.ShiftByID(targetShiftID) == nil {
		v.Errors = append(v.Errors, fmt.Sprintf("target shift %d not found", targetShiftID))
	}

	if target.Role != "" && reqShift.Role != "" && target.Role != reqShift.Role {
		v.Warnings = append(v.Warnings, fmt.Sprintf("%s's role %s differs from the shift role %s",
			target.Name, target.Role, reqShift.Role))
	}

	if snap.hasOverlapOn(target.ID, reqShift.Date, reqShift.Start, reqShift.End) {
		v.Errors = append(v.Errors, fmt.Sprintf("%s already has an overlapping shift on %s",
			target.Name, reqShift.Date))
	}

	weekly := snap.WeeklyHoursFor(target.ID, reqShift.Date, targetShiftID) + reqShift.DurationHours()
	if weekly > limits.WeeklyOvertimeHours {
		v.Warnings = append(v.Warnings, fmt.Sprintf("accepting would put %s at %.1f weekly hours, over the %.0f hour limit",
			target.Name, weekly, limits.WeeklyOvertimeHours))
	}

	return v
}

// SwapCandidate is a qualified candidate for an open "anyone" swap request.
type SwapCandidate struct {
	Staff               Staff
	RoleMatch           bool
	WeeklyHours         float64
	WouldExceedOvertime bool
}

// QualifiedForSwap returns the staff qualified to take a shift offered to
// anyone: availability fully containing the shift, no overlapping shift
// that date, not the current holder. Candidates are sorted same-role first,
// then by ascending weekly hours, so the least-loaded matching staff lead
// the list.
func QualifiedForSwap(snap *Snapshot, limits Limits, shift *Shift) []SwapCandidate {
	out := []SwapCandidate{}
	if shift == nil {
		return out
	}
	dow := dayOfWeek(shift.Date)

	for _, st := range snap.Staff {
		if !st.Active || st.ID == shift.StaffID {
			continue
		}
		contained := false
		for _, a := range snap.AvailabilityFor(st.ID, dow) {
			if a.Start <= shift.Start && shift.End <= a.End {
				contained = true
				break
			}
		}
		if !contained {
			continue
		}
		if snap.hasOverlapOn(st.ID, shift.Date, shift.Start, shift.End) {
			continue
		}

		weekly := snap.WeeklyHoursFor(st.ID, shift.Date, 0)
		out = append(out, SwapCandidate{
			Staff:               st,
			RoleMatch:           st.Role == shift.Role,
			WeeklyHours:         weekly,
			WouldExceedOvertime: weekly+shift.DurationHours() > limits.WeeklyOvertimeHours,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].RoleMatch != out[j].RoleMatch {
			return out[i].RoleMatch
		}
		return out[i].WeeklyHours < out[j].WeeklyHours
	})
	return out
}
