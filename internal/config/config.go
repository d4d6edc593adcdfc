package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/tmarler/pawshift/pkg/core/engine"
)

// BoardingBands configures the boarding staffing minimum per time band.
type BoardingBands struct {
	Morning   int `yaml:"morning" validate:"min=0"`
	Afternoon int `yaml:"afternoon" validate:"min=0"`
	Evening   int `yaml:"evening" validate:"min=0"`
}

// FrontDeskWindow configures one front-desk coverage window.
type FrontDeskWindow struct {
	Start    string `yaml:"start" validate:"required"`
	End      string `yaml:"end" validate:"required"`
	MinStaff int    `yaml:"minStaff" validate:"min=1"`
}

// CoverageOverride raises the banded minimums on recurring dates selected
// by an RRULE, e.g. adoption-event Saturdays.
type CoverageOverride struct {
	RRule            string         `yaml:"rrule" validate:"required"`
	BoardingMinStaff *BoardingBands `yaml:"boardingMinStaff,omitempty"`
	DaycareMinStaff  *int           `yaml:"daycareMinStaff,omitempty" validate:"omitempty,min=0"`
}

// Coverage is the facility coverage-rule configuration surface.
type Coverage struct {
	DaycareStaffPerDogs   int                `yaml:"daycareStaffPerDogs" validate:"min=1"`
	DaycareMinStaff       int                `yaml:"daycareMinStaff" validate:"min=0"`
	BoardingMinStaff      BoardingBands      `yaml:"boardingMinStaff"`
	FrontDeskWindows      []FrontDeskWindow  `yaml:"frontDeskWindows,omitempty" validate:"dive"`
	UnderstaffedThreshold float64            `yaml:"understaffedThreshold" validate:"gt=0,lt=1"`
	OverstaffedThreshold  float64            `yaml:"overstaffedThreshold" validate:"gt=1"`
	SlotStart             string             `yaml:"slotStart" validate:"required"`
	SlotEnd               string             `yaml:"slotEnd" validate:"required"`
	CoverageOverrides     []CoverageOverride `yaml:"coverageOverrides,omitempty" validate:"dive"`
}

// Limits is the working-time limit configuration surface.
type Limits struct {
	MaxDailyHours       float64 `yaml:"maxDailyHours" validate:"gt=0"`
	MinRestHours        float64 `yaml:"minRestHours" validate:"gt=0"`
	WeeklyOvertimeHours float64 `yaml:"weeklyOvertimeHours" validate:"gt=0"`
}

// Config represents the application configuration
type Config struct {
	FacilityID  int64    `yaml:"facilityId" validate:"required"`
	DatabaseURL string   `yaml:"databaseURL,omitempty"`
	Coverage    Coverage `yaml:"coverage"`
	Limits      Limits   `yaml:"limits"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default returns the configuration with the facility's standard values:
// one daycare staff per ten dogs (minimum one), boarding minimums of 2/1/2
// across morning/afternoon/evening, front-desk coverage in the drop-off and
// pick-up windows, coverage thresholds of 0.7 and 1.3, and the 12h/8h/40h
// working-time limits.
func Default() *Config {
	return &Config{
		FacilityID: 1,
		Coverage: Coverage{
			DaycareStaffPerDogs:   10,
			DaycareMinStaff:       1,
			BoardingMinStaff:      BoardingBands{Morning: 2, Afternoon: 1, Evening: 2},
			FrontDeskWindows:      []FrontDeskWindow{{Start: "07:00", End: "10:00", MinStaff: 1}, {Start: "16:00", End: "19:00", MinStaff: 1}},
			UnderstaffedThreshold: 0.7,
			OverstaffedThreshold:  1.3,
			SlotStart:             "06:00",
			SlotEnd:               "21:00",
		},
		Limits: Limits{
			MaxDailyHours:       12,
			MinRestHours:        8,
			WeeklyOvertimeHours: 40,
		},
	}
}

// Load loads and validates the configuration from pawshift_config.yaml,
// looking in the current directory first, then the user's home directory.
// A missing config file yields the defaults.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return Default(), nil
	}
	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path.
// Fields omitted from the file keep their default values.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration struct, the embedded time strings
// and the rrule syntax of every coverage override.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	times := []string{cfg.Coverage.SlotStart, cfg.Coverage.SlotEnd}
	for _, w := range cfg.Coverage.FrontDeskWindows {
		times = append(times, w.Start, w.End)
	}
	for _, s := range times {
		if _, err := engine.ParseTimeOfDay(s); err != nil {
			return fmt.Errorf("config validation failed: %w", err)
		}
	}

	for i, override := range cfg.Coverage.CoverageOverrides {
		if _, err := rrule.StrToRRule(override.RRule); err != nil {
			return fmt.Errorf("invalid rrule in coverageOverrides[%d]: %w", i, err)
		}
	}

	if cfg.Coverage.OverstaffedThreshold <= cfg.Coverage.UnderstaffedThreshold {
		return fmt.Errorf("config validation failed: overstaffedThreshold must exceed understaffedThreshold")
	}
	return nil
}

// CoverageRulesFor resolves the engine coverage rules for one date,
// applying any coverage override whose recurrence matches it.
func (c *Config) CoverageRulesFor(date string) (engine.CoverageRules, error) {
	day, err := engine.ParseDate(date)
	if err != nil {
		return engine.CoverageRules{}, err
	}

	cov := c.Coverage
	rules := engine.CoverageRules{
		DaycareStaffPerDogs:   cov.DaycareStaffPerDogs,
		DaycareMinStaff:       cov.DaycareMinStaff,
		BoardingMinStaff:      engine.BoardingBands{Morning: cov.BoardingMinStaff.Morning, Afternoon: cov.BoardingMinStaff.Afternoon, Evening: cov.BoardingMinStaff.Evening},
		UnderstaffedThreshold: cov.UnderstaffedThreshold,
		OverstaffedThreshold:  cov.OverstaffedThreshold,
	}
	for _, w := range cov.FrontDeskWindows {
		start, err := engine.ParseTimeOfDay(w.Start)
		if err != nil {
			return engine.CoverageRules{}, err
		}
		end, err := engine.ParseTimeOfDay(w.End)
		if err != nil {
			return engine.CoverageRules{}, err
		}
		rules.FrontDeskWindows = append(rules.FrontDeskWindows, engine.CoverageWindow{Start: start, End: end, MinStaff: w.MinStaff})
	}

	for _, override := range cov.CoverageOverrides {
		matches, err := overrideMatches(override.RRule, day)
		if err != nil {
			return engine.CoverageRules{}, err
		}
		if !matches {
			continue
		}
		if override.BoardingMinStaff != nil {
			rules.BoardingMinStaff = engine.BoardingBands{
				Morning:   override.BoardingMinStaff.Morning,
				Afternoon: override.BoardingMinStaff.Afternoon,
				Evening:   override.BoardingMinStaff.Evening,
			}
		}
		if override.DaycareMinStaff != nil {
			rules.DaycareMinStaff = *override.DaycareMinStaff
		}
	}
	return rules, nil
}

// overrideMatches reports whether the rrule produces an occurrence on the
// given calendar day. The rule is anchored a year back so undated rules
// still generate occurrences around the query date.
func overrideMatches(rule string, day time.Time) (bool, error) {
	r, err := rrule.StrToRRule(rule)
	if err != nil {
		return false, fmt.Errorf("invalid rrule %q: %w", rule, err)
	}
	if r.OrigOptions.Dtstart.IsZero() {
		opts := r.OrigOptions
		opts.Dtstart = day.AddDate(-1, 0, 0)
		r, err = rrule.NewRRule(opts)
		if err != nil {
			return false, fmt.Errorf("invalid rrule %q: %w", rule, err)
		}
	}
	dayEnd := day.Add(24*time.Hour - time.Second)
	return len(r.Between(day, dayEnd, true)) > 0, nil
}

// findConfigFile searches for pawshift_config.yaml in the current directory
// and the user's home directory.
func findConfigFile() (string, error) {
	configFileName := "pawshift_config.yaml"

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}

// EngineLimits converts the configured limits into the engine's shape.
func (c *Config) EngineLimits() engine.Limits {
	return engine.Limits{
		MaxDailyHours:       c.Limits.MaxDailyHours,
		MinRestHours:        c.Limits.MinRestHours,
		WeeklyOvertimeHours: c.Limits.WeeklyOvertimeHours,
	}
}
