package db

import (
	"fmt"

	"github.com/tmarler/pawshift/pkg/core/engine"
)

// BuildSnapshot converts stored records into an engine snapshot, parsing
// and validating every time string up front so malformed values fail here
// instead of corrupting downstream comparisons.
func BuildSnapshot(staff []Staff, shifts []Shift, timeOff []TimeOffRequest, availability []Availability) (*engine.Snapshot, error) {
	engStaff := make([]engine.Staff, 0, len(staff))
	for _, s := range staff {
		engStaff = append(engStaff, engine.Staff{
			ID:     s.ID,
			Name:   s.Name,
			Role:   s.Role,
			Active: s.Status == "active",
		})
	}

	engShifts := make([]engine.Shift, 0, len(shifts))
	for _, s := range shifts {
		start, err := engine.ParseTimeOfDay(s.StartTime)
		if err != nil {
			return nil, fmt.Errorf("shift %d: %w", s.ID, err)
		}
		end, err := engine.ParseTimeOfDay(s.EndTime)
		if err != nil {
			return nil, fmt.Errorf("shift %d: %w", s.ID, err)
		}
		sh := engine.Shift{
			ID:       s.ID,
			StaffID:  s.StaffID,
			Date:     s.Date,
			Start:    start,
			End:      end,
			Role:     s.Role,
			Status:   engine.ShiftStatus(s.Status),
			Location: s.Location,
			Notes:    s.Notes,
		}
		if err := sh.Validate(); err != nil {
			return nil, err
		}
		engShifts = append(engShifts, sh)
	}

	engTimeOff := make([]engine.TimeOffRequest, 0, len(timeOff))
	for _, r := range timeOff {
		engTimeOff = append(engTimeOff, engine.TimeOffRequest{
			ID:        r.ID,
			StaffID:   r.StaffID,
			StartDate: r.StartDate,
			EndDate:   r.EndDate,
			Status:    engine.TimeOffStatus(r.Status),
			Type:      r.Type,
			Reason:    r.Reason,
		})
	}

	engAvailability := make([]engine.Availability, 0, len(availability))
	for _, a := range availability {
		start, err := engine.ParseTimeOfDay(a.StartTime)
		if err != nil {
			return nil, fmt.Errorf("availability %d: %w", a.ID, err)
		}
		end, err := engine.ParseTimeOfDay(a.EndTime)
		if err != nil {
			return nil, fmt.Errorf("availability %d: %w", a.ID, err)
		}
		engAvailability = append(engAvailability, engine.Availability{
			StaffID:     a.StaffID,
			DayOfWeek:   a.DayOfWeek,
			Start:       start,
			End:         end,
			IsAvailable: a.IsAvailable,
		})
	}

	return engine.NewSnapshot(engStaff, engShifts, engTimeOff, engAvailability), nil
}

// WorkloadSnapshot converts a stored daily workload row into the engine's
// workload shape.
func (w DailyWorkload) WorkloadSnapshot() engine.WorkloadSnapshot {
	return engine.WorkloadSnapshot{
		CheckInsCount:             w.CheckIns,
		CheckOutsCount:            w.CheckOuts,
		DaycareAttendance:         w.DaycareDogs,
		BoardingOccupancy:         w.BoardingDogs,
		GroomingAppointmentsCount: w.GroomingVisits,
		TrainingSessionsCount:     w.TrainingVisits,
		BusyMeter:                 w.BusyMeter,
	}
}

// DailyTotals converts a stored daily workload row into the engine's
// fallback aggregate shape.
func (w DailyWorkload) DailyTotals() engine.DailyTotals {
	return engine.DailyTotals{
		TotalCheckIns:  w.CheckIns,
		TotalCheckOuts: w.CheckOuts,
		DaycareDogs:    w.DaycareDogs,
		BoardingDogs:   w.BoardingDogs,
		GroomingVisits: w.GroomingVisits,
		TrainingVisits: w.TrainingVisits,
	}
}
