package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// advisorSnapshot builds a roster around a vacated Saturday daycare shift.
// 2025-11-15 is a Saturday (day of week 6).
func advisorSnapshot(extraShifts []Shift, availability []Availability) *Snapshot {
	staff := []Staff{
		{ID: 1, Name: "Ava Reyes", Role: "Daycare", Active: true},  // the sick staff member
		{ID: 2, Name: "Ben Okafor", Role: "Daycare", Active: true}, // same role
		{ID: 3, Name: "Cleo Tan", Role: "Grooming", Active: true},  // cross role
		{ID: 4, Name: "Dan Ives", Role: "Daycare", Active: false},  // inactive
	}
	shifts := append([]Shift{
		{ID: 10, StaffID: 1, Date: "2025-11-15", Start: MustTimeOfDay("09:00"),
			End: MustTimeOfDay("17:00"), Role: "Daycare", Status: ShiftScheduled},
	}, extraShifts...)
	return NewSnapshot(staff, shifts, nil, availability)
}

func allDayAvailability(staffIDs ...int64) []Availability {
	var out []Availability
	for _, id := range staffIDs {
		out = append(out, Availability{StaffID: id, DayOfWeek: 6,
			Start: MustTimeOfDay("06:00"), End: MustTimeOfDay("22:00"), IsAvailable: true})
	}
	return out
}

func TestAvailableForCoverage_FiltersRoster(t *testing.T) {
	snap := advisorSnapshot(nil, allDayAvailability(1, 2, 3, 4))
	shift := snap.ShiftByID(10)

	available := AvailableForCoverage(snap, shift)

	var ids []int64
	for _, st := range available {
		ids = append(ids, st.ID)
	}
	assert.Equal(t, []int64{2, 3}, ids,
		"the sick staff member and inactive staff are excluded; both roles qualify")
}

func TestAvailableForCoverage_ExcludesAlreadyScheduled(t *testing.T) {
	busy := Shift{ID: 11, StaffID: 2, Date: "2025-11-15", Start: MustTimeOfDay("06:00"),
		End: MustTimeOfDay("08:00"), Role: "Daycare", Status: ShiftScheduled}
	snap := advisorSnapshot([]Shift{busy}, allDayAvailability(2, 3))

	available := AvailableForCoverage(snap, snap.ShiftByID(10))

	require.Len(t, available, 1, "Ben already works that date, even without overlap")
	assert.Equal(t, int64(3), available[0].ID)
}

func TestAvailableForCoverage_RequiresWindowCoveringStart(t *testing.T) {
	availability := []Availability{
		// Ben's window starts after the shift does.
		{StaffID: 2, DayOfWeek: 6, Start: MustTimeOfDay("10:00"), End: MustTimeOfDay("22:00"), IsAvailable: true},
		// Cleo's window covers the start but is flagged unavailable.
		{StaffID: 3, DayOfWeek: 6, Start: MustTimeOfDay("06:00"), End: MustTimeOfDay("22:00"), IsAvailable: false},
	}
	snap := advisorSnapshot(nil, availability)

	available := AvailableForCoverage(snap, snap.ShiftByID(10))
	assert.Empty(t, available, "no one both available and covering the start time")
}

func TestSuggestReplacements_SameRoleFirst(t *testing.T) {
	snap := advisorSnapshot(nil, allDayAvailability(2, 3))

	suggestions := SuggestReplacements(snap, snap.ShiftByID(10))

	require.Len(t, suggestions, 2)
	assert.Equal(t, int64(2), suggestions[0].ID, "same-role match leads")
	assert.Equal(t, int64(3), suggestions[1].ID, "cross-role backup follows")
}

func TestSuggestReplacements_RequiresFullContainment(t *testing.T) {
	availability := []Availability{
		// Covers the start but ends before the shift does.
		{StaffID: 2, DayOfWeek: 6, Start: MustTimeOfDay("06:00"), End: MustTimeOfDay("15:00"), IsAvailable: true},
	}
	snap := advisorSnapshot(nil, availability)

	suggestions := SuggestReplacements(snap, snap.ShiftByID(10))
	assert.Empty(t, suggestions, "replacement needs the whole interval, not just the start")
}

func TestValidateSwap_MissingEntities(t *testing.T) {
	snap := advisorSnapshot(nil, nil)

	missing := ValidateSwap(snap, DefaultLimits(), 999, 2, 0)
	assert.False(t, missing.OK())
	assert.Contains(t, missing.Errors[0], "requesting shift 999")

	noTarget := ValidateSwap(snap, DefaultLimits(), 10, 999, 0)
	assert.False(t, noTarget.OK())
	assert.Contains(t, noTarget.Errors[0], "target staff 999")
}

func TestValidateSwap_RoleMismatchIsWarningOnly(t *testing.T) {
	snap := advisorSnapshot(nil, nil)

	v := ValidateSwap(snap, DefaultLimits(), 10, 3, 0)

	assert.True(t, v.OK(), "cross-role swaps are permitted")
	require.Len(t, v.Warnings, 1)
	assert.Contains(t, v.Warnings[0], "Cleo Tan")
	assert.Contains(t, v.Warnings[0], "Grooming")
}

func TestValidateSwap_OverlapBlocks(t *testing.T) {
	conflicting := Shift{ID: 12, StaffID: 2, Date: "2025-11-15", Start: MustTimeOfDay("12:00"),
		End: MustTimeOfDay("20:00"), Role: "Daycare", Status: ShiftScheduled}
	snap := advisorSnapshot([]Shift{conflicting}, nil)

	v := ValidateSwap(snap, DefaultLimits(), 10, 2, 0)

	assert.False(t, v.OK(), "an overlapping shift for the target blocks submission")
	require.Len(t, v.Errors, 1)
	assert.Contains(t, v.Errors[0], "Ben Okafor")
	assert.Contains(t, v.Errors[0], "overlapping")
}

func TestValidateSwap_OvertimeWarning(t *testing.T) {
	// Ben already has 36h that week (Mon-Thu 9h days); taking the 8h
	// Saturday shift lands him at 44h.
	var week []Shift
	for i, date := range []string{"2025-11-10", "2025-11-11", "2025-11-12", "2025-11-13"} {
		week = append(week, Shift{ID: int64(20 + i), StaffID: 2, Date: date,
			Start: MustTimeOfDay("08:00"), End: MustTimeOfDay("17:00"), Role: "Daycare", Status: ShiftScheduled})
	}
	snap := advisorSnapshot(week, nil)

	v := ValidateSwap(snap, DefaultLimits(), 10, 2, 0)

	assert.True(t, v.OK(), "overtime is advisory")
	require.Len(t, v.Warnings, 1)
	assert.Contains(t, v.Warnings[0], "44.0 weekly hours")
}

func TestQualifiedForSwap_RanksRoleMatchThenLoad(t *testing.T) {
	staff := []Staff{
		{ID: 1, Name: "Ava Reyes", Role: "Daycare", Active: true},
		{ID: 2, Name: "Ben Okafor", Role: "Daycare", Active: true},
		{ID: 3, Name: "Cleo Tan", Role: "Grooming", Active: true},
		{ID: 5, Name: "Eve Moss", Role: "Daycare", Active: true},
	}
	shifts := []Shift{
		{ID: 10, StaffID: 1, Date: "2025-11-15", Start: MustTimeOfDay("09:00"),
			End: MustTimeOfDay("17:00"), Role: "Daycare", Status: ShiftScheduled},
		// Ben carries 8h that week, Eve none, Cleo none.
		{ID: 20, StaffID: 2, Date: "2025-11-12", Start: MustTimeOfDay("08:00"),
			End: MustTimeOfDay("16:00"), Role: "Daycare", Status: ShiftScheduled},
	}
	availability := []Availability{
		{StaffID: 2, DayOfWeek: 6, Start: MustTimeOfDay("06:00"), End: MustTimeOfDay("22:00"), IsAvailable: true},
		{StaffID: 3, DayOfWeek: 6, Start: MustTimeOfDay("06:00"), End: MustTimeOfDay("22:00"), IsAvailable: true},
		{StaffID: 5, DayOfWeek: 6, Start: MustTimeOfDay("06:00"), End: MustTimeOfDay("22:00"), IsAvailable: true},
	}
	snap := NewSnapshot(staff, shifts, nil, availability)

	candidates := QualifiedForSwap(snap, DefaultLimits(), snap.ShiftByID(10))

	require.Len(t, candidates, 3)
	assert.Equal(t, int64(5), candidates[0].Staff.ID, "same role, least loaded first")
	assert.Equal(t, int64(2), candidates[1].Staff.ID, "same role, more hours second")
	assert.Equal(t, int64(3), candidates[2].Staff.ID, "cross role last")
	assert.Equal(t, 8.0, candidates[1].WeeklyHours)
	assert.False(t, candidates[1].WouldExceedOvertime)
}

func TestQualifiedForSwap_OvertimeFlag(t *testing.T) {
	staff := []Staff{
		{ID: 1, Name: "Ava Reyes", Role: "Daycare", Active: true},
		{ID: 2, Name: "Ben Okafor", Role: "Daycare", Active: true},
	}
	// Ben has 36h Mon-Thu; the 8h shift would push him to 44h.
	shifts := []Shift{
		{ID: 10, StaffID: 1, Date: "2025-11-15", Start: MustTimeOfDay("09:00"),
			End: MustTimeOfDay("17:00"), Role: "Daycare", Status: ShiftScheduled},
	}
	for i, date := range []string{"2025-11-10", "2025-11-11", "2025-11-12", "2025-11-13"} {
		shifts = append(shifts, Shift{ID: int64(20 + i), StaffID: 2, Date: date,
			Start: MustTimeOfDay("08:00"), End: MustTimeOfDay("17:00"), Role: "Daycare", Status: ShiftScheduled})
	}
	availability := []Availability{
		{StaffID: 2, DayOfWeek: 6, Start: MustTimeOfDay("06:00"), End: MustTimeOfDay("22:00"), IsAvailable: true},
	}
	snap := NewSnapshot(staff, shifts, nil, availability)

	candidates := QualifiedForSwap(snap, DefaultLimits(), snap.ShiftByID(10))

	require.Len(t, candidates, 1)
	assert.Equal(t, 36.0, candidates[0].WeeklyHours)
	assert.True(t, candidates[0].WouldExceedOvertime, "36 + 8 exceeds the 40 hour week")
}
