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

// CheckShiftParams describes the candidate shift under evaluation, taken
// straight from the add/edit form.
type CheckShiftParams struct {
	StaffID   int64
	Date      string
	StartTime string
	EndTime   string
	Role      string

	// ExcludeShiftID is the shift being edited, or 0 for a new shift.
	ExcludeShiftID int64
}

// CheckShiftResult is the outcome of one conflict evaluation.
type CheckShiftResult struct {
	// EvaluationID identifies this evaluation run in logs.
	EvaluationID string

	Conflicts []engine.Conflict

	// Blocking is true when any conflict is critical; the caller should
	// disable saving.
	Blocking bool
}

// CheckShift evaluates a candidate shift against the roster around its
// date and returns the typed conflict list. The snapshot spans one day on
// each side of the candidate so the rest checks see adjacent shifts.
func CheckShift(ctx context.Context, store db.ScheduleStore, logger *zap.Logger, limits engine.Limits, params CheckShiftParams) (*CheckShiftResult, error) {
	start, err := engine.ParseTimeOfDay(params.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start time: %w", err)
	}
	end, err := engine.ParseTimeOfDay(params.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid end time: %w", err)
	}
	if _, err := engine.ParseDate(params.Date); err != nil {
		return nil, err
	}
	if end <= start {
		return nil, fmt.Errorf("shift end %s must be after start %s (overnight shifts are not supported)", end, start)
	}

	evalID := uuid.New().String()
	logger.Debug("Checking candidate shift",
		zap.String("evaluation_id", evalID),
		zap.Int64("staff_id", params.StaffID),
		zap.String("date", params.Date),
		zap.String("window", fmt.Sprintf("%s-%s", start, end)))

	snap, err := loadSnapshot(ctx, store, engine.AddDays(params.Date, -1), engine.AddDays(params.Date, 1))
	if err != nil {
		return nil, err
	}

	candidate := engine.CandidateShift{
		StaffID: params.StaffID,
		Date:    params.Date,
		Start:   start,
		End:     end,
		Role:    params.Role,
	}
	conflicts, err := engine.DetectShiftConflicts(snap, rules.Default(limits), candidate, params.ExcludeShiftID)
	if err != nil {
		return nil, err
	}

	result := &CheckShiftResult{
		EvaluationID: evalID,
		Conflicts:    conflicts,
		Blocking:     engine.HasCritical(conflicts),
	}

	logger.Info("Candidate shift checked",
		zap.String("evaluation_id", evalID),
		zap.Int("conflicts", len(conflicts)),
		zap.Bool("blocking", result.Blocking))
	return result, nil
}
