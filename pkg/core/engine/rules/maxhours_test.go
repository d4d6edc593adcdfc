package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmarler/pawshift/pkg/core/engine"
)

func TestMaxDailyHours_OverLimitWarns(t *testing.T) {
	snap := snapshotWith([]engine.Shift{
		scheduledShift(10, 1, "2025-11-15", "06:00", "12:00", "Daycare"), // 6h
	}, nil)

	// 6h existing + 7h candidate = 13h > 12h.
	conflicts := NewMaxDailyHoursRule(12).Check(snap, candidate(1, "2025-11-15", "13:00", "20:00", "Daycare"), 0)

	require.Len(t, conflicts, 1)
	assert.Equal(t, engine.ConflictMaxHours, conflicts[0].Type)
	assert.Equal(t, engine.SeverityWarning, conflicts[0].Severity)
	assert.Contains(t, conflicts[0].Message, "13.0 hours")
	assert.Equal(t, "13.00", conflicts[0].Details["totalHours"])
}

func TestMaxDailyHours_ExactlyAtLimitSilent(t *testing.T) {
	snap := snapshotWith([]engine.Shift{
		scheduledShift(10, 1, "2025-11-15", "06:00", "12:00", "Daycare"), // 6h
	}, nil)

	// 6h + 6h = exactly 12h.
	conflicts := NewMaxDailyHoursRule(12).Check(snap, candidate(1, "2025-11-15", "13:00", "19:00", "Daycare"), 0)
	assert.Empty(t, conflicts, "exactly the limit is allowed")
}

func TestMaxDailyHours_OtherDaysIgnored(t *testing.T) {
	snap := snapshotWith([]engine.Shift{
		scheduledShift(10, 1, "2025-11-14", "06:00", "18:00", "Daycare"),
	}, nil)

	conflicts := NewMaxDailyHoursRule(12).Check(snap, candidate(1, "2025-11-15", "09:00", "17:00", "Daycare"), 0)
	assert.Empty(t, conflicts, "the daily total only counts same-date shifts")
}

func TestMaxDailyHours_ExcludedShiftNotCounted(t *testing.T) {
	snap := snapshotWith([]engine.Shift{
		scheduledShift(10, 1, "2025-11-15", "06:00", "18:00", "Daycare"), // 12h, being edited
	}, nil)

	conflicts := NewMaxDailyHoursRule(12).Check(snap, candidate(1, "2025-11-15", "09:00", "17:00", "Daycare"), 10)
	assert.Empty(t, conflicts, "the edited shift's old hours must not double-count")
}
