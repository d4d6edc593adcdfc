package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tmarler/pawshift/pkg/core/engine"
	"github.com/tmarler/pawshift/pkg/db"
)

// loadSnapshot reads the roster collaborators for an inclusive date range
// and assembles an immutable engine snapshot. Staff, time off and
// availability are small and always loaded in full; shifts are bounded by
// the range.
func loadSnapshot(ctx context.Context, store db.ScheduleStore, fromDate, toDate string) (*engine.Snapshot, error) {
	staff, err := store.GetStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff directory: %w", err)
	}
	shifts, err := store.GetShifts(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shifts: %w", err)
	}
	timeOff, err := store.GetTimeOffRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch time off requests: %w", err)
	}
	availability, err := store.GetAvailability(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability: %w", err)
	}

	snap, err := db.BuildSnapshot(staff, shifts, timeOff, availability)
	if err != nil {
		return nil, fmt.Errorf("failed to build snapshot: %w", err)
	}
	return snap, nil
}

// weekRange returns the inclusive date range covering the calendar week
// (Sunday through Saturday) containing date, widened by one day on each
// side so rest checks across the week boundary see their neighbors.
func weekRange(date string) (string, string, error) {
	d, err := engine.ParseDate(date)
	if err != nil {
		return "", "", err
	}
	weekStart := d.AddDate(0, 0, -int(d.Weekday())).Format("2006-01-02")
	return engine.AddDays(weekStart, -1), engine.AddDays(weekStart, 7), nil
}

// workloadFor fetches the workload snapshot for a date, falling back to an
// approximation from the daily aggregate when the primary source fails.
// Total failure degrades to an empty snapshot rather than blocking the
// coverage report.
func workloadFor(ctx context.Context, store db.WorkloadStore, logger *zap.Logger, facilityID int64, date string) engine.WorkloadSnapshot {
	w, err := store.GetWorkload(ctx, facilityID, date)
	if err == nil {
		return w.WorkloadSnapshot()
	}
	logger.Warn("Workload lookup failed, approximating from daily totals",
		zap.String("date", date), zap.Error(err))

	totals, err := store.GetDailyTotals(ctx, facilityID, date)
	if err != nil {
		logger.Warn("Daily totals unavailable, assuming an idle facility",
			zap.String("date", date), zap.Error(err))
		return engine.WorkloadSnapshot{}
	}
	return engine.ApproximateFromDaily(totals.DailyTotals())
}
