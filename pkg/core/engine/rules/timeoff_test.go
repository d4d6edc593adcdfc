package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmarler/pawshift/pkg/core/engine"
)

func TestTimeOff_ApprovedRangeFires(t *testing.T) {
	snap := snapshotWith(nil, []engine.TimeOffRequest{
		{ID: 50, StaffID: 2, StartDate: "2025-11-20", EndDate: "2025-11-22", Status: engine.TimeOffApproved, Type: "vacation"},
	})

	conflicts := NewTimeOffRule().Check(snap, candidate(2, "2025-11-21", "09:00", "17:00", "Boarding"), 0)

	require.Len(t, conflicts, 1, "date inside the approved range should conflict")
	assert.Equal(t, engine.ConflictTimeOff, conflicts[0].Type)
	assert.Equal(t, engine.SeverityCritical, conflicts[0].Severity)
	assert.Equal(t, int64(50), conflicts[0].TimeOffID)
	assert.Contains(t, conflicts[0].Message, "Ben Okafor")
	assert.Contains(t, conflicts[0].Message, "2025-11-20")
	assert.Contains(t, conflicts[0].Message, "2025-11-22")
}

func TestTimeOff_RangeIsInclusiveBothEnds(t *testing.T) {
	snap := snapshotWith(nil, []engine.TimeOffRequest{
		{ID: 50, StaffID: 2, StartDate: "2025-11-20", EndDate: "2025-11-22", Status: engine.TimeOffApproved},
	})

	start := NewTimeOffRule().Check(snap, candidate(2, "2025-11-20", "09:00", "17:00", "Boarding"), 0)
	end := NewTimeOffRule().Check(snap, candidate(2, "2025-11-22", "09:00", "17:00", "Boarding"), 0)
	after := NewTimeOffRule().Check(snap, candidate(2, "2025-11-23", "09:00", "17:00", "Boarding"), 0)

	assert.Len(t, start, 1, "first day of the range conflicts")
	assert.Len(t, end, 1, "last day of the range conflicts")
	assert.Empty(t, after, "the day after the range does not conflict")
}

func TestTimeOff_NonApprovedStatusesDoNotFire(t *testing.T) {
	for _, status := range []engine.TimeOffStatus{engine.TimeOffPending, engine.TimeOffDenied, engine.TimeOffChangesRequested} {
		snap := snapshotWith(nil, []engine.TimeOffRequest{
			{ID: 50, StaffID: 2, StartDate: "2025-11-20", EndDate: "2025-11-22", Status: status},
		})
		conflicts := NewTimeOffRule().Check(snap, candidate(2, "2025-11-21", "09:00", "17:00", "Boarding"), 0)
		assert.Empty(t, conflicts, "status %q must not create conflicts", status)
	}
}

func TestTimeOff_FirstMatchingRequestOnly(t *testing.T) {
	snap := snapshotWith(nil, []engine.TimeOffRequest{
		{ID: 50, StaffID: 2, StartDate: "2025-11-20", EndDate: "2025-11-22", Status: engine.TimeOffApproved},
		{ID: 51, StaffID: 2, StartDate: "2025-11-21", EndDate: "2025-11-25", Status: engine.TimeOffApproved},
	})

	conflicts := NewTimeOffRule().Check(snap, candidate(2, "2025-11-21", "09:00", "17:00", "Boarding"), 0)
	require.Len(t, conflicts, 1, "only the first overlapping request is reported")
	assert.Equal(t, int64(50), conflicts[0].TimeOffID)
}
