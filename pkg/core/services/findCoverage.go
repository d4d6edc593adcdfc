package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tmarler/pawshift/pkg/core/engine"
	"github.com/tmarler/pawshift/pkg/db"
)

// CoverageOptions is the advisory output for a same-day call-out: who could
// plausibly come in, and the ranked replacement suggestions.
type CoverageOptions struct {
	Shift *engine.Shift

	// Available covers the shift's start per the weekly availability table.
	Available []engine.Staff

	// Suggested requires full interval containment; same-role first.
	Suggested []engine.Staff
}

// FindCoverage builds the replacement options for a vacated shift, as used
// by the sick call-out flow. An empty candidate list is a normal outcome,
// not an error.
func FindCoverage(ctx context.Context, store db.ScheduleStore, logger *zap.Logger, shiftID int64) (*CoverageOptions, error) {
	rec, err := store.GetShift(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("%w: shift %d", engine.ErrUnknownShift, shiftID)
	}

	snap, err := loadSnapshot(ctx, store, rec.Date, rec.Date)
	if err != nil {
		return nil, err
	}
	shift := snap.ShiftByID(shiftID)
	if shift == nil {
		// The shift exists but fell outside the snapshot somehow; treat as
		// unknown rather than advising on stale data.
		return nil, fmt.Errorf("%w: shift %d", engine.ErrUnknownShift, shiftID)
	}

	options := &CoverageOptions{
		Shift:     shift,
		Available: engine.AvailableForCoverage(snap, shift),
		Suggested: engine.SuggestReplacements(snap, shift),
	}

	logger.Info("Coverage options computed",
		zap.Int64("shift_id", shiftID),
		zap.String("date", shift.Date),
		zap.Int("available", len(options.Available)),
		zap.Int("suggested", len(options.Suggested)))
	return options, nil
}
