package db

// Staff is a staff directory record as stored.
type Staff struct {
	ID     int64
	Name   string
	Role   string
	Status string // "active" or "inactive"
}

// Shift is a shift roster record as stored. Times are "HH:MM" strings and
// dates "YYYY-MM-DD"; parsing and validation happen when a snapshot is built.
type Shift struct {
	ID        int64
	StaffID   int64
	Date      string
	StartTime string
	EndTime   string
	Role      string
	Status    string
	Location  string
	Notes     string
}

// TimeOffRequest is a stored leave request.
type TimeOffRequest struct {
	ID        int64
	StaffID   int64
	StartDate string
	EndDate   string
	Status    string
	Type      string
	Reason    string
}

// Availability is one stored row of the weekly availability table.
type Availability struct {
	ID          int64
	StaffID     int64
	DayOfWeek   int
	StartTime   string
	EndTime     string
	IsAvailable bool
}

// DailyWorkload is the stored daily activity aggregate for a facility date.
type DailyWorkload struct {
	FacilityID     int64
	Date           string
	CheckIns       int
	CheckOuts      int
	DaycareDogs    int
	BoardingDogs   int
	GroomingVisits int
	TrainingVisits int
	BusyMeter      int
}
