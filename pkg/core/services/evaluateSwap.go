package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tmarler/pawshift/pkg/core/engine"
	"github.com/tmarler/pawshift/pkg/db"
)

// SwapEvaluation is the combined outcome for a swap request: validation of
// a directed swap when a target is named, and the ranked qualified list
// when the shift is offered to anyone.
type SwapEvaluation struct {
	Shift *engine.Shift

	// Validation is set when TargetStaffID was given.
	Validation *engine.SwapValidation

	// Qualified is the ranked candidate list for an open swap; set when no
	// target was given.
	Qualified []engine.SwapCandidate
}

// EvaluateSwap validates a proposed swap of shiftID to targetStaffID
// (optionally exchanging targetShiftID back), or, when targetStaffID is 0,
// ranks all qualified takers. The snapshot spans the shift's whole week so
// weekly-hours math sees every relevant shift.
func EvaluateSwap(ctx context.Context, store db.ScheduleStore, logger *zap.Logger, limits engine.Limits, shiftID, targetStaffID, targetShiftID int64) (*SwapEvaluation, error) {
	rec, err := store.GetShift(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("%w: shift %d", engine.ErrUnknownShift, shiftID)
	}

	from, to, err := weekRange(rec.Date)
	if err != nil {
		return nil, err
	}
	snap, err := loadSnapshot(ctx, store, from, to)
	if err != nil {
		return nil, err
	}
	shift := snap.ShiftByID(shiftID)
	if shift == nil {
		return nil, fmt.Errorf("%w: shift %d", engine.ErrUnknownShift, shiftID)
	}

	eval := &SwapEvaluation{Shift: shift}
	if targetStaffID != 0 {
		v := engine.ValidateSwap(snap, limits, shiftID, targetStaffID, targetShiftID)
		eval.Validation = &v
		logger.Info("Swap validated",
			zap.Int64("shift_id", shiftID),
			zap.Int64("target_staff_id", targetStaffID),
			zap.Bool("ok", v.OK()),
			zap.Int("warnings", len(v.Warnings)))
	} else {
		eval.Qualified = engine.QualifiedForSwap(snap, limits, shift)
		logger.Info("Qualified swap takers ranked",
			zap.Int64("shift_id", shiftID),
			zap.Int("candidates", len(eval.Qualified)))
	}
	return eval, nil
}
