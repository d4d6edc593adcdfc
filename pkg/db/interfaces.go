package db

import "context"

// ScheduleStore defines the read operations needed to build a scheduling
// snapshot for a date range.
type ScheduleStore interface {
	GetStaff(ctx context.Context) ([]Staff, error)
	GetShift(ctx context.Context, id int64) (Shift, error)
	GetShifts(ctx context.Context, fromDate, toDate string) ([]Shift, error)
	GetTimeOffRequests(ctx context.Context) ([]TimeOffRequest, error)
	GetAvailability(ctx context.Context) ([]Availability, error)
}

// WorkloadStore defines the workload collaborator: per-date activity
// metrics, with a coarser daily aggregate available as a fallback.
type WorkloadStore interface {
	GetWorkload(ctx context.Context, facilityID int64, date string) (DailyWorkload, error)
	GetDailyTotals(ctx context.Context, facilityID int64, date string) (DailyWorkload, error)
}

// Database defines the full read surface backing the scheduling services.
// The engine never writes; roster data is owned by external systems.
type Database interface {
	ScheduleStore
	WorkloadStore
}
