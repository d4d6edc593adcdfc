package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tmarler/pawshift/internal/config"
	"github.com/tmarler/pawshift/pkg/core/engine"
	"github.com/tmarler/pawshift/pkg/db"
)

func slotStatus(t *testing.T, report *CoverageReport, slot string) engine.CoverageStatus {
	t.Helper()
	want := engine.MustTimeOfDay(slot)
	for _, s := range report.Slots {
		if s.Slot == want {
			return s
		}
	}
	t.Fatalf("no slot %s in report", slot)
	return engine.CoverageStatus{}
}

func TestBuildCoverageReport_DefaultDay(t *testing.T) {
	store := rosterStore()
	// No workload recorded; the evaluator sees an idle facility.

	report, err := BuildCoverageReport(context.Background(), store, zap.NewNop(), config.Default(), "2025-11-15")

	require.NoError(t, err)
	assert.Len(t, report.Slots, 15, "hourly slots from 06:00 to 21:00")

	// Nobody is in before 08:00 or after 17:00, and the morning boarding
	// minimum is two.
	assert.Equal(t, engine.CoverageUnderstaffed, slotStatus(t, report, "06:00").Level)
	assert.Equal(t, engine.CoverageUnderstaffed, slotStatus(t, report, "08:00").Level)
	assert.Equal(t, engine.CoverageOK, slotStatus(t, report, "09:00").Level)
	assert.Equal(t, engine.CoverageUnderstaffed, slotStatus(t, report, "17:00").Level)

	// All three are in at 10:00 against a morning minimum of two.
	ten := slotStatus(t, report, "10:00")
	assert.Equal(t, 3, ten.StaffCount)
	assert.Equal(t, 2, ten.MinRequired)
	assert.Equal(t, engine.CoverageOverstaffed, ten.Level)
	assert.Equal(t, 1, ten.Breakdown.Grooming)

	// Cleo's 10:00-14:00 shift no longer covers the 14:00 slot.
	assert.Equal(t, 2, slotStatus(t, report, "14:00").StaffCount)

	assert.Equal(t, 7, report.Understaffed)
}

func TestBuildCoverageReport_WorkloadRatio(t *testing.T) {
	store := rosterStore()
	store.workload = &db.DailyWorkload{
		FacilityID:  1,
		Date:        "2025-11-15",
		DaycareDogs: 25,
		BusyMeter:   40,
	}

	report, err := BuildCoverageReport(context.Background(), store, zap.NewNop(), config.Default(), "2025-11-15")

	require.NoError(t, err)
	// Twenty-five dogs at one staff per ten pushes the minimum to three.
	ten := slotStatus(t, report, "10:00")
	assert.Equal(t, 3, ten.MinRequired)
	assert.Equal(t, engine.CoverageOK, ten.Level)
	assert.Equal(t, 40, ten.WorkloadPct)
}

func TestBuildCoverageReport_FallsBackToDailyTotals(t *testing.T) {
	store := rosterStore()
	store.getWorkloadErr = errors.New("workload provider down")
	store.dailyTotals = &db.DailyWorkload{
		FacilityID:     1,
		Date:           "2025-11-15",
		DaycareDogs:    25,
		GroomingVisits: 5,
	}

	report, err := BuildCoverageReport(context.Background(), store, zap.NewNop(), config.Default(), "2025-11-15")

	require.NoError(t, err)
	ten := slotStatus(t, report, "10:00")
	assert.Equal(t, 3, ten.MinRequired, "the approximation still drives the daycare ratio")
	assert.Equal(t, 35, ten.WorkloadPct, "25 dogs plus twice 5 grooming visits")
}

func TestBuildCoverageReport_DegradesToIdleOnTotalFailure(t *testing.T) {
	store := rosterStore()
	store.getWorkloadErr = errors.New("workload provider down")
	store.getDailyTotalsErr = errors.New("aggregates missing")

	report, err := BuildCoverageReport(context.Background(), store, zap.NewNop(), config.Default(), "2025-11-15")

	require.NoError(t, err, "metrics failure must not block the report")
	assert.Equal(t, 0, slotStatus(t, report, "10:00").WorkloadPct)
}

func TestBuildCoverageReport_BadDate(t *testing.T) {
	store := rosterStore()

	_, err := BuildCoverageReport(context.Background(), store, zap.NewNop(), config.Default(), "November 15")
	assert.Error(t, err)
}
