package engine

import "math"

// CoverageRules is the facility configuration the evaluator derives minimum
// staffing from. Defaults live in internal/config; the engine only ever
// sees the resolved values for the date under evaluation.
type CoverageRules struct {
	// DaycareStaffPerDogs is the supervision ratio: one daycare staff
	// member per this many dogs in attendance.
	DaycareStaffPerDogs int

	// DaycareMinStaff is the floor for the daycare requirement regardless
	// of attendance.
	DaycareMinStaff int

	// BoardingMinStaff holds the time-of-day-banded boarding minimums.
	BoardingMinStaff BoardingBands

	// FrontDeskWindows are the periods during which front-desk coverage is
	// required.
	FrontDeskWindows []CoverageWindow

	// UnderstaffedThreshold is the coverage ratio below which a slot is
	// understaffed.
	UnderstaffedThreshold float64

	// OverstaffedThreshold is the coverage ratio above which a slot is
	// overstaffed.
	OverstaffedThreshold float64
}

// BoardingBands are the boarding staffing minimums per time-of-day band.
// Morning runs until noon, afternoon until 17:00, evening after that.
type BoardingBands struct {
	Morning   int
	Afternoon int
	Evening   int
}

// forSlot returns the band minimum that applies to the given slot.
func (b BoardingBands) forSlot(slot TimeOfDay) int {
	switch {
	case slot < MustTimeOfDay("12:00"):
		return b.Morning
	case slot < MustTimeOfDay("17:00"):
		return b.Afternoon
	default:
		return b.Evening
	}
}

// CoverageWindow is a time window with a minimum staffing requirement,
// active only for slots inside [Start, End).
type CoverageWindow struct {
	Start    TimeOfDay
	End      TimeOfDay
	MinStaff int
}

// WorkloadSnapshot is the facility activity picture for a date, as produced
// by the workload provider collaborator.
type WorkloadSnapshot struct {
	CheckInsCount             int
	CheckOutsCount            int
	DaycareAttendance         int
	BoardingOccupancy         int
	GroomingAppointmentsCount int
	EvaluationsCount          int
	TrainingSessionsCount     int

	// BusyMeter is a 0-100 workload indicator.
	BusyMeter int
}

// DailyTotals is the coarser daily aggregate used as a fallback when the
// workload provider fails for a date.
type DailyTotals struct {
	TotalCheckIns  int
	TotalCheckOuts int
	DaycareDogs    int
	BoardingDogs   int
	GroomingVisits int
	TrainingVisits int
}

// ApproximateFromDaily derives a workload snapshot from daily totals. The
// busy meter is a rough load estimate capped at 100.
func ApproximateFromDaily(totals DailyTotals) WorkloadSnapshot {
	busy := totals.DaycareDogs + totals.BoardingDogs + 2*totals.GroomingVisits
	if busy > 100 {
		busy = 100
	}
	return WorkloadSnapshot{
		CheckInsCount:             totals.TotalCheckIns,
		CheckOutsCount:            totals.TotalCheckOuts,
		DaycareAttendance:         totals.DaycareDogs,
		BoardingOccupancy:         totals.BoardingDogs,
		GroomingAppointmentsCount: totals.GroomingVisits,
		TrainingSessionsCount:     totals.TrainingVisits,
		BusyMeter:                 busy,
	}
}

// CoverageLevel classifies a slot's staffing adequacy.
type CoverageLevel string

const (
	CoverageUnderstaffed CoverageLevel = "understaffed"
	CoverageOK           CoverageLevel = "ok"
	CoverageOverstaffed  CoverageLevel = "overstaffed"
)

// CategoryBreakdown counts the active staff in a slot by canonical category.
type CategoryBreakdown struct {
	Daycare   int
	Boarding  int
	Grooming  int
	FrontDesk int
}

// CoverageStatus is the computed staffing picture for one (date, slot)
// pair. Ephemeral; recomputed on every evaluation.
type CoverageStatus struct {
	Date        string
	Slot        TimeOfDay
	Level       CoverageLevel
	StaffCount  int
	MinRequired int
	Ratio       float64
	Breakdown   CategoryBreakdown
	WorkloadPct int
}

// EvaluateCoverage computes the coverage status for one time slot on one
// date. The minimum required staff is the maximum of four independent
// requirements: the daycare supervision ratio (floored at the configured
// minimum), the boarding band minimum for the slot, any front-desk window
// covering the slot, and one groomer whenever a grooming shift is active
// in the slot.
//
// A zero minimum yields ratio 1: with nothing required, the slot is
// adequately covered by definition.
func EvaluateCoverage(snap *Snapshot, rules CoverageRules, workload WorkloadSnapshot, date string, slot TimeOfDay) CoverageStatus {
	status := CoverageStatus{
		Date:        date,
		Slot:        slot,
		WorkloadPct: workload.BusyMeter,
	}

	groomingActive := false
	for _, sh := range snap.ActiveShiftsOn(date) {
		if !Contains(sh.Start, sh.End, slot) {
			continue
		}
		status.StaffCount++
		switch sh.Category {
		case CategoryDaycare:
			status.Breakdown.Daycare++
		case CategoryBoarding:
			status.Breakdown.Boarding++
		case CategoryGrooming:
			status.Breakdown.Grooming++
			groomingActive = true
		case CategoryFrontDesk:
			status.Breakdown.FrontDesk++
		}
	}

	daycareReq := rules.DaycareMinStaff
	if rules.DaycareStaffPerDogs > 0 {
		ratioReq := int(math.Ceil(float64(workload.DaycareAttendance) / float64(rules.DaycareStaffPerDogs)))
		if ratioReq > daycareReq {
			daycareReq = ratioReq
		}
	}

	boardingReq := rules.BoardingMinStaff.forSlot(slot)

	frontDeskReq := 0
	for _, w := range rules.FrontDeskWindows {
		if Contains(w.Start, w.End, slot) && w.MinStaff > frontDeskReq {
			frontDeskReq = w.MinStaff
		}
	}

	groomingReq := 0
	if groomingActive {
		groomingReq = 1
	}

	status.MinRequired = maxOf(daycareReq, boardingReq, frontDeskReq, groomingReq)

	if status.MinRequired == 0 {
		status.Ratio = 1
	} else {
		status.Ratio = float64(status.StaffCount) / float64(status.MinRequired)
	}

	switch {
	case status.Ratio < rules.UnderstaffedThreshold:
		status.Level = CoverageUnderstaffed
	case status.Ratio > rules.OverstaffedThreshold:
		status.Level = CoverageOverstaffed
	default:
		status.Level = CoverageOK
	}

	return status
}

func maxOf(vals ...int) int {
	m := 0
	for _, v := range vals {
		if v > m {
			m = v
		}
	}
	return m
}
