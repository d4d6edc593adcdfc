package postgres

import (
	"context"
	"fmt"

	"github.com/tmarler/pawshift/pkg/db"
)

// GetStaff retrieves the full staff directory.
func (d *DB) GetStaff(ctx context.Context) ([]db.Staff, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, role, status
		FROM staff
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff: %w", err)
	}
	defer rows.Close()

	var staff []db.Staff
	for rows.Next() {
		var s db.Staff
		if err := rows.Scan(&s.ID, &s.Name, &s.Role, &s.Status); err != nil {
			return nil, fmt.Errorf("failed to scan staff row: %w", err)
		}
		staff = append(staff, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff: %w", err)
	}
	return staff, nil
}

// GetShift retrieves a single shift by id.
func (d *DB) GetShift(ctx context.Context, id int64) (db.Shift, error) {
	var s db.Shift
	err := d.pool.QueryRow(ctx, `
		SELECT id, staff_id, to_char(shift_date, 'YYYY-MM-DD'), start_time, end_time,
		       role, status, location, notes
		FROM shift
		WHERE id = $1
	`, id).Scan(&s.ID, &s.StaffID, &s.Date, &s.StartTime, &s.EndTime,
		&s.Role, &s.Status, &s.Location, &s.Notes)
	if err != nil {
		return db.Shift{}, fmt.Errorf("failed to query shift %d: %w", id, err)
	}
	return s, nil
}

// GetShifts retrieves shifts whose date falls inside [fromDate, toDate],
// both inclusive "YYYY-MM-DD" strings.
func (d *DB) GetShifts(ctx context.Context, fromDate, toDate string) ([]db.Shift, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, staff_id, to_char(shift_date, 'YYYY-MM-DD'), start_time, end_time,
		       role, status, location, notes
		FROM shift
		WHERE shift_date BETWEEN $1::date AND $2::date
		ORDER BY shift_date, start_time, id
	`, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []db.Shift
	for rows.Next() {
		var s db.Shift
		if err := rows.Scan(&s.ID, &s.StaffID, &s.Date, &s.StartTime, &s.EndTime,
			&s.Role, &s.Status, &s.Location, &s.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan shift row: %w", err)
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shifts: %w", err)
	}
	return shifts, nil
}

// GetTimeOffRequests retrieves all time-off requests.
func (d *DB) GetTimeOffRequests(ctx context.Context) ([]db.TimeOffRequest, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, staff_id, to_char(start_date, 'YYYY-MM-DD'),
		       to_char(end_date, 'YYYY-MM-DD'), status, type, reason
		FROM time_off_request
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query time off requests: %w", err)
	}
	defer rows.Close()

	var requests []db.TimeOffRequest
	for rows.Next() {
		var r db.TimeOffRequest
		if err := rows.Scan(&r.ID, &r.StaffID, &r.StartDate, &r.EndDate, &r.Status, &r.Type, &r.Reason); err != nil {
			return nil, fmt.Errorf("failed to scan time off row: %w", err)
		}
		requests = append(requests, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating time off requests: %w", err)
	}
	return requests, nil
}

// GetAvailability retrieves the weekly availability table.
func (d *DB) GetAvailability(ctx context.Context) ([]db.Availability, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, staff_id, day_of_week, start_time, end_time, is_available
		FROM availability
		ORDER BY staff_id, day_of_week, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query availability: %w", err)
	}
	defer rows.Close()

	var entries []db.Availability
	for rows.Next() {
		var a db.Availability
		if err := rows.Scan(&a.ID, &a.StaffID, &a.DayOfWeek, &a.StartTime, &a.EndTime, &a.IsAvailable); err != nil {
			return nil, fmt.Errorf("failed to scan availability row: %w", err)
		}
		entries = append(entries, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating availability: %w", err)
	}
	return entries, nil
}
