package services

import (
	"context"
	"errors"

	"github.com/tmarler/pawshift/pkg/db"
)

// mockStore implements db.Database for testing
type mockStore struct {
	staff        []db.Staff
	shifts       []db.Shift
	timeOff      []db.TimeOffRequest
	availability []db.Availability
	workload     *db.DailyWorkload
	dailyTotals  *db.DailyWorkload

	getStaffErr       error
	getShiftsErr      error
	getTimeOffErr     error
	getAvailErr       error
	getWorkloadErr    error
	getDailyTotalsErr error

	// queriedFrom/queriedTo record the last GetShifts range.
	queriedFrom string
	queriedTo   string
}

func (m *mockStore) GetStaff(ctx context.Context) ([]db.Staff, error) {
	if m.getStaffErr != nil {
		return nil, m.getStaffErr
	}
	return m.staff, nil
}

func (m *mockStore) GetShift(ctx context.Context, id int64) (db.Shift, error) {
	for _, s := range m.shifts {
		if s.ID == id {
			return s, nil
		}
	}
	return db.Shift{}, errors.New("shift not found")
}

func (m *mockStore) GetShifts(ctx context.Context, fromDate, toDate string) ([]db.Shift, error) {
	if m.getShiftsErr != nil {
		return nil, m.getShiftsErr
	}
	m.queriedFrom = fromDate
	m.queriedTo = toDate
	var out []db.Shift
	for _, s := range m.shifts {
		if fromDate <= s.Date && s.Date <= toDate {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockStore) GetTimeOffRequests(ctx context.Context) ([]db.TimeOffRequest, error) {
	if m.getTimeOffErr != nil {
		return nil, m.getTimeOffErr
	}
	return m.timeOff, nil
}

func (m *mockStore) GetAvailability(ctx context.Context) ([]db.Availability, error) {
	if m.getAvailErr != nil {
		return nil, m.getAvailErr
	}
	return m.availability, nil
}

func (m *mockStore) GetWorkload(ctx context.Context, facilityID int64, date string) (db.DailyWorkload, error) {
	if m.getWorkloadErr != nil {
		return db.DailyWorkload{}, m.getWorkloadErr
	}
	if m.workload != nil {
		return *m.workload, nil
	}
	return db.DailyWorkload{}, errors.New("no workload recorded")
}

func (m *mockStore) GetDailyTotals(ctx context.Context, facilityID int64, date string) (db.DailyWorkload, error) {
	if m.getDailyTotalsErr != nil {
		return db.DailyWorkload{}, m.getDailyTotalsErr
	}
	if m.dailyTotals != nil {
		return *m.dailyTotals, nil
	}
	return db.DailyWorkload{}, errors.New("no daily totals recorded")
}

func mustShift(id, staffID int64, date, start, end, role string) db.Shift {
	return db.Shift{
		ID:        id,
		StaffID:   staffID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Role:      role,
		Status:    "scheduled",
	}
}

// rosterStore builds a small roster around Saturday 2025-11-15: a daycare
// attendant, a boarding attendant and a groomer, with one scheduled shift
// apiece on the 15th.
func rosterStore() *mockStore {
	return &mockStore{
		staff: []db.Staff{
			{ID: 1, Name: "Ava Reyes", Role: "Daycare Attendant", Status: "active"},
			{ID: 2, Name: "Ben Okafor", Role: "Boarding Attendant", Status: "active"},
			{ID: 3, Name: "Cleo Tan", Role: "Groomer", Status: "active"},
		},
		shifts: []db.Shift{
			{ID: 10, StaffID: 1, Date: "2025-11-15", StartTime: "08:00", EndTime: "16:00", Role: "Daycare Attendant", Status: "scheduled"},
			{ID: 11, StaffID: 2, Date: "2025-11-15", StartTime: "09:00", EndTime: "17:00", Role: "Boarding Attendant", Status: "scheduled"},
			{ID: 12, StaffID: 3, Date: "2025-11-15", StartTime: "10:00", EndTime: "14:00", Role: "Groomer", Status: "scheduled"},
		},
	}
}
