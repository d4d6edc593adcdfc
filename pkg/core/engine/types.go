package engine

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors returned by engine evaluations.
var (
	// ErrUnknownStaff indicates a candidate shift references a staff id
	// that is not present in the snapshot's staff directory. Callers can
	// distinguish "no conflicts" from "could not evaluate".
	ErrUnknownStaff = errors.New("unknown staff")

	// ErrUnknownShift indicates a referenced shift id is not in the snapshot.
	ErrUnknownShift = errors.New("unknown shift")

	// ErrInvalidTime indicates a malformed or out-of-range "HH:MM" value.
	ErrInvalidTime = errors.New("invalid time of day")
)

// Category is the canonical staffing category used for coverage math.
// Role stays an open string for display; coverage classification matches
// on this enum only.
type Category string

const (
	CategoryDaycare   Category = "daycare"
	CategoryBoarding  Category = "boarding"
	CategoryGrooming  Category = "grooming"
	CategoryTraining  Category = "training"
	CategoryFrontDesk Category = "front_desk"
	CategoryGeneral   Category = "general"
)

// CategoryFromRole maps a free-text role name to a canonical category using
// case-insensitive keyword matching. This is an ingestion-boundary helper:
// snapshots resolve categories once when loaded, and the evaluators only
// ever compare the enum.
func CategoryFromRole(role string) Category {
	r := strings.ToLower(role)
	switch {
	case strings.Contains(r, "daycare"):
		return CategoryDaycare
	case strings.Contains(r, "boarding"):
		return CategoryBoarding
	case strings.Contains(r, "groom"):
		return CategoryGrooming
	case strings.Contains(r, "train"):
		return CategoryTraining
	case strings.Contains(r, "front"), strings.Contains(r, "admin"), strings.Contains(r, "desk"):
		return CategoryFrontDesk
	default:
		return CategoryGeneral
	}
}

// Staff is a member of the facility staff directory.
type Staff struct {
	ID       int64
	Name     string
	Role     string
	Category Category
	Active   bool
}

// ShiftStatus is the lifecycle state of a shift.
type ShiftStatus string

const (
	ShiftScheduled ShiftStatus = "scheduled"
	ShiftConfirmed ShiftStatus = "confirmed"
	ShiftCompleted ShiftStatus = "completed"
	ShiftAbsent    ShiftStatus = "absent"
	ShiftSick      ShiftStatus = "sick"
	ShiftCancelled ShiftStatus = "cancelled"
)

// Shift is a single staff assignment on a calendar date.
type Shift struct {
	ID       int64
	StaffID  int64
	Date     string // "YYYY-MM-DD", facility-local
	Start    TimeOfDay
	End      TimeOfDay
	Role     string
	Category Category
	Status   ShiftStatus
	Location string
	Notes    string
}

// IsActive reports whether the shift participates in conflict and coverage
// math. Only scheduled shifts do; cancelled or completed shifts never block
// a new booking.
func (s *Shift) IsActive() bool {
	return s.Status == ShiftScheduled
}

// Validate checks the shift's date and time window. Overnight shifts
// (end at or before start) are rejected outright rather than producing
// negative durations downstream.
func (s *Shift) Validate() error {
	if _, err := ParseDate(s.Date); err != nil {
		return err
	}
	if s.End <= s.Start {
		return fmt.Errorf("shift %d: end %s must be after start %s (overnight shifts are not supported)",
			s.ID, s.End, s.Start)
	}
	return nil
}

// DurationHours returns the shift length in fractional hours.
func (s *Shift) DurationHours() float64 {
	return DurationHours(s.Start, s.End)
}

// TimeOffStatus is the review state of a time-off request.
type TimeOffStatus string

const (
	TimeOffPending          TimeOffStatus = "pending"
	TimeOffApproved         TimeOffStatus = "approved"
	TimeOffDenied           TimeOffStatus = "denied"
	TimeOffChangesRequested TimeOffStatus = "changes_requested"
)

// TimeOffRequest is a dated leave request. Only approved requests create
// scheduling conflicts.
type TimeOffRequest struct {
	ID        int64
	StaffID   int64
	StartDate string // inclusive
	EndDate   string // inclusive
	Status    TimeOffStatus
	Type      string
	Reason    string
}

// Covers reports whether the request's inclusive date range contains the
// given "YYYY-MM-DD" date. Dates in this layout compare correctly as strings.
func (r *TimeOffRequest) Covers(date string) bool {
	return r.StartDate <= date && date <= r.EndDate
}

// Availability is one row of the weekly availability table.
type Availability struct {
	StaffID     int64
	DayOfWeek   int // 0 = Sunday .. 6 = Saturday
	Start       TimeOfDay
	End         TimeOfDay
	IsAvailable bool
}

// ConflictType identifies which rule produced a conflict.
type ConflictType string

const (
	ConflictDoubleBooking ConflictType = "double_booking"
	ConflictOverlapping   ConflictType = "overlapping"
	ConflictTimeOff       ConflictType = "time_off"
	ConflictRoleMismatch  ConflictType = "role_mismatch"
	ConflictMaxHours      ConflictType = "max_hours"
	ConflictMinRest       ConflictType = "min_rest"
)

// Severity classifies how a conflict affects the save/submit flow.
// Critical conflicts block saving; warnings are advisory.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Conflict is an ephemeral finding produced by a rule check. It is computed
// fresh on every evaluation and never persisted.
type Conflict struct {
	Type     ConflictType
	Severity Severity
	Message  string

	// ShiftID is the shift being evaluated (zero for unsaved candidates).
	ShiftID int64

	// ConflictingShiftID references the other shift involved, when the
	// rule found one.
	ConflictingShiftID int64

	// TimeOffID references the approved time-off request, for time_off
	// conflicts.
	TimeOffID int64

	// Details carries optional structured values (counts, computed rest
	// minutes) keyed by rule-specific names.
	Details map[string]string
}

// IsCritical reports whether this conflict should block a save action.
func (c Conflict) IsCritical() bool {
	return c.Severity == SeverityCritical
}

// HasCritical reports whether any conflict in the list is critical.
func HasCritical(conflicts []Conflict) bool {
	for _, c := range conflicts {
		if c.IsCritical() {
			return true
		}
	}
	return false
}

// CandidateShift is the shift under evaluation: either an unsaved form state
// or an existing shift being edited.
type CandidateShift struct {
	StaffID int64
	Date    string
	Start   TimeOfDay
	End     TimeOfDay
	Role    string
}

// DurationHours returns the candidate's length in fractional hours.
func (c CandidateShift) DurationHours() float64 {
	return DurationHours(c.Start, c.End)
}

// Snapshot is an immutable view of the scheduling data for one evaluation.
// All engine functions are pure over a snapshot: evaluating twice with the
// same snapshot yields identical output.
type Snapshot struct {
	Staff        []Staff
	Shifts       []Shift
	TimeOff      []TimeOffRequest
	Availability []Availability

	staffByID map[int64]*Staff
}

// NewSnapshot builds a snapshot and its lookup index. Shift and staff
// categories missing a canonical tag are resolved from the role string.
func NewSnapshot(staff []Staff, shifts []Shift, timeOff []TimeOffRequest, availability []Availability) *Snapshot {
	snap := &Snapshot{
		Staff:        staff,
		Shifts:       shifts,
		TimeOff:      timeOff,
		Availability: availability,
		staffByID:    make(map[int64]*Staff, len(staff)),
	}
	for i := range snap.Staff {
		if snap.Staff[i].Category == "" {
			snap.Staff[i].Category = CategoryFromRole(snap.Staff[i].Role)
		}
		snap.staffByID[snap.Staff[i].ID] = &snap.Staff[i]
	}
	for i := range snap.Shifts {
		if snap.Shifts[i].Category == "" {
			snap.Shifts[i].Category = CategoryFromRole(snap.Shifts[i].Role)
		}
	}
	return snap
}

// StaffByID returns the staff record for the given id, or nil if unknown.
func (s *Snapshot) StaffByID(id int64) *Staff {
	return s.staffByID[id]
}

// ShiftByID returns the shift with the given id, or nil if unknown.
func (s *Snapshot) ShiftByID(id int64) *Shift {
	for i := range s.Shifts {
		if s.Shifts[i].ID == id {
			return &s.Shifts[i]
		}
	}
	return nil
}

// ActiveShiftsFor returns the active shifts for one staff member on one
// date, excluding the shift with excludeID (used when editing an existing
// shift so it is not compared against itself). Results are ordered by
// start time for deterministic output.
func (s *Snapshot) ActiveShiftsFor(staffID int64, date string, excludeID int64) []*Shift {
	var out []*Shift
	for i := range s.Shifts {
		sh := &s.Shifts[i]
		if !sh.IsActive() || sh.StaffID != staffID || sh.Date != date || sh.ID == excludeID {
			continue
		}
		out = append(out, sh)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ActiveShiftsOn returns every active shift on the given date, ordered by
// start time then id.
func (s *Snapshot) ActiveShiftsOn(date string) []*Shift {
	var out []*Shift
	for i := range s.Shifts {
		sh := &s.Shifts[i]
		if sh.IsActive() && sh.Date == date {
			out = append(out, sh)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ApprovedTimeOffFor returns the approved time-off requests for a staff
// member, in snapshot order.
func (s *Snapshot) ApprovedTimeOffFor(staffID int64) []*TimeOffRequest {
	var out []*TimeOffRequest
	for i := range s.TimeOff {
		r := &s.TimeOff[i]
		if r.StaffID == staffID && r.Status == TimeOffApproved {
			out = append(out, r)
		}
	}
	return out
}

// AvailabilityFor returns the availability rows for a staff member on a
// given day of week where IsAvailable is set.
func (s *Snapshot) AvailabilityFor(staffID int64, dayOfWeek int) []*Availability {
	var out []*Availability
	for i := range s.Availability {
		a := &s.Availability[i]
		if a.StaffID == staffID && a.DayOfWeek == dayOfWeek && a.IsAvailable {
			out = append(out, a)
		}
	}
	return out
}

// WeeklyHoursFor sums the durations of a staff member's active shifts inside
// the calendar week containing the given date (Sunday through Saturday),
// excluding the shift with excludeID.
func (s *Snapshot) WeeklyHoursFor(staffID int64, date string, excludeID int64) float64 {
	d, err := ParseDate(date)
	if err != nil {
		return 0
	}
	weekStart := d.AddDate(0, 0, -int(d.Weekday())).Format(dateLayout)
	weekEnd := AddDays(weekStart, 6)

	var total float64
	for i := range s.Shifts {
		sh := &s.Shifts[i]
		if !sh.IsActive() || sh.StaffID != staffID || sh.ID == excludeID {
			continue
		}
		if sh.Date >= weekStart && sh.Date <= weekEnd {
			total += sh.DurationHours()
		}
	}
	return total
}
