package rules

import "github.com/tmarler/pawshift/pkg/core/engine"

// tod is a fixture shorthand for building times.
func tod(s string) engine.TimeOfDay {
	return engine.MustTimeOfDay(s)
}

// snapshotWith builds a snapshot around a small fixed staff directory.
func snapshotWith(shifts []engine.Shift, timeOff []engine.TimeOffRequest) *engine.Snapshot {
	staff := []engine.Staff{
		{ID: 1, Name: "Ava Reyes", Role: "Daycare", Active: true},
		{ID: 2, Name: "Ben Okafor", Role: "Boarding", Active: true},
		{ID: 3, Name: "Cleo Tan", Role: "Grooming", Active: true},
	}
	return engine.NewSnapshot(staff, shifts, timeOff, nil)
}

// scheduledShift builds an active shift fixture.
func scheduledShift(id, staffID int64, date, start, end, role string) engine.Shift {
	return engine.Shift{
		ID:      id,
		StaffID: staffID,
		Date:    date,
		Start:   tod(start),
		End:     tod(end),
		Role:    role,
		Status:  engine.ShiftScheduled,
	}
}

// candidate builds a candidate shift fixture.
func candidate(staffID int64, date, start, end, role string) engine.CandidateShift {
	return engine.CandidateShift{
		StaffID: staffID,
		Date:    date,
		Start:   tod(start),
		End:     tod(end),
		Role:    role,
	}
}
