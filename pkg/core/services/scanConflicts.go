package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tmarler/pawshift/pkg/core/engine"
	"github.com/tmarler/pawshift/pkg/core/engine/rules"
	"github.com/tmarler/pawshift/pkg/db"
)

// ScanResult is the facility-wide conflict report for a date range.
type ScanResult struct {
	ScanID   string
	FromDate string
	ToDate   string
	Report   engine.ConflictReport
}

// ScanConflicts runs the conflict rules over every active shift in the
// inclusive [fromDate, toDate] range. The loaded snapshot is widened by a
// day on each side so rest checks at the range edges see their neighbors;
// findings are still limited to shifts inside the range.
func ScanConflicts(ctx context.Context, store db.ScheduleStore, logger *zap.Logger, limits engine.Limits, fromDate, toDate string) (*ScanResult, error) {
	if _, err := engine.ParseDate(fromDate); err != nil {
		return nil, err
	}
	if _, err := engine.ParseDate(toDate); err != nil {
		return nil, err
	}
	if toDate < fromDate {
		return nil, fmt.Errorf("invalid range: %s is before %s", toDate, fromDate)
	}

	scanID := uuid.New().String()
	logger.Debug("Scanning roster for conflicts",
		zap.String("scan_id", scanID),
		zap.String("from", fromDate),
		zap.String("to", toDate))

	snap, err := loadSnapshot(ctx, store, engine.AddDays(fromDate, -1), engine.AddDays(toDate, 1))
	if err != nil {
		return nil, err
	}

	full := engine.ScanConflicts(snap, rules.Default(limits))

	// Trim findings and skips back to shifts inside the requested range.
	inRange := func(shiftID int64) bool {
		sh := snap.ShiftByID(shiftID)
		return sh != nil && fromDate <= sh.Date && sh.Date <= toDate
	}
	report := engine.ConflictReport{Findings: []engine.Conflict{}}
	for _, c := range full.Findings {
		if inRange(c.ShiftID) || inRange(c.ConflictingShiftID) {
			report.Findings = append(report.Findings, c)
		}
	}
	for _, id := range full.SkippedShiftIDs {
		if inRange(id) {
			report.SkippedShiftIDs = append(report.SkippedShiftIDs, id)
		}
	}

	for _, id := range report.SkippedShiftIDs {
		logger.Warn("Shift references unknown staff and was skipped",
			zap.String("scan_id", scanID), zap.Int64("shift_id", id))
	}
	logger.Info("Roster scan complete",
		zap.String("scan_id", scanID),
		zap.Int("findings", len(report.Findings)),
		zap.Int("skipped", len(report.SkippedShiftIDs)))

	return &ScanResult{ScanID: scanID, FromDate: fromDate, ToDate: toDate, Report: report}, nil
}
