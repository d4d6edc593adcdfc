package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tmarler/pawshift/pkg/db"
)

// ErrNoWorkload indicates no workload row exists for the requested date.
// Callers fall back to GetDailyTotals or an approximation.
var ErrNoWorkload = errors.New("no workload recorded for date")

// GetWorkload retrieves the workload metrics for one facility date.
func (d *DB) GetWorkload(ctx context.Context, facilityID int64, date string) (db.DailyWorkload, error) {
	return d.queryWorkload(ctx, facilityID, date)
}

// GetDailyTotals retrieves the coarser daily aggregate for a facility date.
// The current schema stores one aggregate row per day, so this reads the
// same table; it exists as a separate method because the sources diverge in
// facilities that report hourly metrics.
func (d *DB) GetDailyTotals(ctx context.Context, facilityID int64, date string) (db.DailyWorkload, error) {
	return d.queryWorkload(ctx, facilityID, date)
}

func (d *DB) queryWorkload(ctx context.Context, facilityID int64, date string) (db.DailyWorkload, error) {
	var w db.DailyWorkload
	err := d.pool.QueryRow(ctx, `
		SELECT facility_id, to_char(workload_date, 'YYYY-MM-DD'), check_ins, check_outs,
		       daycare_dogs, boarding_dogs, grooming_visits, training_visits, busy_meter
		FROM daily_workload
		WHERE facility_id = $1 AND workload_date = $2::date
	`, facilityID, date).Scan(&w.FacilityID, &w.Date, &w.CheckIns, &w.CheckOuts,
		&w.DaycareDogs, &w.BoardingDogs, &w.GroomingVisits, &w.TrainingVisits, &w.BusyMeter)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.DailyWorkload{}, fmt.Errorf("%w: facility %d on %s", ErrNoWorkload, facilityID, date)
	}
	if err != nil {
		return db.DailyWorkload{}, fmt.Errorf("failed to query workload: %w", err)
	}
	return w, nil
}
