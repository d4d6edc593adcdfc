package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/tmarler/pawshift/internal/config"
	"github.com/tmarler/pawshift/pkg/core/engine"
	"github.com/tmarler/pawshift/pkg/db"
)

// CoverageReport is the per-slot staffing heatmap for one date.
type CoverageReport struct {
	Date  string
	Slots []engine.CoverageStatus

	// Understaffed counts the slots below the adequacy threshold, for
	// at-a-glance summaries.
	Understaffed int
}

// BuildCoverageReport evaluates every hourly slot between the configured
// facility open and close times for the given date. Workload metrics fall
// back to a daily approximation when the provider fails; coverage rules
// are resolved per date so recurring overrides apply.
func BuildCoverageReport(ctx context.Context, store db.Database, logger *zap.Logger, cfg *config.Config, date string) (*CoverageReport, error) {
	if _, err := engine.ParseDate(date); err != nil {
		return nil, err
	}

	rules, err := cfg.CoverageRulesFor(date)
	if err != nil {
		return nil, err
	}
	slotStart, err := engine.ParseTimeOfDay(cfg.Coverage.SlotStart)
	if err != nil {
		return nil, err
	}
	slotEnd, err := engine.ParseTimeOfDay(cfg.Coverage.SlotEnd)
	if err != nil {
		return nil, err
	}

	snap, err := loadSnapshot(ctx, store, date, date)
	if err != nil {
		return nil, err
	}
	workload := workloadFor(ctx, store, logger, cfg.FacilityID, date)

	report := &CoverageReport{Date: date}
	for slot := slotStart; slot < slotEnd; slot += 60 {
		status := engine.EvaluateCoverage(snap, rules, workload, date, slot)
		report.Slots = append(report.Slots, status)
		if status.Level == engine.CoverageUnderstaffed {
			report.Understaffed++
		}
	}

	logger.Info("Coverage report built",
		zap.String("date", date),
		zap.Int("slots", len(report.Slots)),
		zap.Int("understaffed", report.Understaffed))
	return report, nil
}
