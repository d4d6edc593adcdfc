package rules

import (
	"fmt"

	"github.com/tmarler/pawshift/pkg/core/engine"
)

// RoleMismatchRule flags a candidate whose assigned role differs from the
// staff member's home role. It fires whenever both roles are non-empty and
// unequal; there is no allowlist of acceptable substitutions.
//
// Severity: warning (advisory only; cross-role assignments are permitted).
type RoleMismatchRule struct{}

// NewRoleMismatchRule creates a new RoleMismatchRule
func NewRoleMismatchRule() *RoleMismatchRule {
	return &RoleMismatchRule{}
}

func (r *RoleMismatchRule) Name() string {
	return "RoleMismatch"
}

func (r *RoleMismatchRule) Check(snap *engine.Snapshot, candidate engine.CandidateShift, excludeShiftID int64) []engine.Conflict {
	staff := snap.StaffByID(candidate.StaffID)
	if staff == nil {
		return nil
	}

	if candidate.Role == "" || staff.Role == "" || candidate.Role == staff.Role {
		return nil
	}
	return []engine.Conflict{{
		Type:     engine.ConflictRoleMismatch,
		Severity: engine.SeverityWarning,
		ShiftID:  excludeShiftID,
		Message: fmt.Sprintf("%s is assigned as %s but their home role is %s",
			staff.Name, candidate.Role, staff.Role),
	}}
}
