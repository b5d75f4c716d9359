// Package config reads and validates arm configuration files.
package config

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/multierr"
	goutils "go.viam.com/utils"

	"go.viam.com/planararm/kinematics"
	"go.viam.com/planararm/render"
	"go.viam.com/planararm/utils"
)

// ArmConfig describes an arm: its segments from base to end effector and the window it is drawn in.
type ArmConfig struct {
	ConfigFilePath string          `json:"-"`
	Name           string          `json:"name,omitempty"`
	Segments       []SegmentConfig `json:"segments"`
	Plot           *PlotConfig     `json:"plot,omitempty"`
}

// SegmentConfig is one link of the arm. The initial joint angle is in degrees.
type SegmentConfig struct {
	Length       *float64 `json:"length"`
	AngleDegrees float64  `json:"angle_degrees"`
}

// PlotConfig is the axis window used when rendering the arm.
type PlotConfig struct {
	XMin float64 `json:"x_min"`
	XMax float64 `json:"x_max"`
	YMin float64 `json:"y_min"`
	YMax float64 `json:"y_max"`
}

// Bounds converts the plot window to render bounds.
func (pc PlotConfig) Bounds() render.Bounds {
	return render.Bounds{XMin: pc.XMin, XMax: pc.XMax, YMin: pc.YMin, YMax: pc.YMax}
}

// NewArmConfig builds a config from parallel slices of lengths and initial angles in degrees.
// Missing angles default to zero.
func NewArmConfig(name string, lengths, anglesDeg []float64) (*ArmConfig, error) {
	if len(anglesDeg) > len(lengths) {
		return nil, errors.Errorf("got %d angles for %d segments", len(anglesDeg), len(lengths))
	}
	cfg := &ArmConfig{Name: name}
	for i, length := range lengths {
		seg := SegmentConfig{Length: lo.ToPtr(length)}
		if i < len(anglesDeg) {
			seg.AngleDegrees = anglesDeg[i]
		}
		cfg.Segments = append(cfg.Segments, seg)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (cfg *ArmConfig) applyDefaults() {
	if cfg.Plot == nil {
		b := render.DefaultBounds()
		cfg.Plot = &PlotConfig{XMin: b.XMin, XMax: b.XMax, YMin: b.YMin, YMax: b.YMax}
	}
}

// Validate ensures all parts of the config are valid. Every problem found is reported.
func (cfg *ArmConfig) Validate(path string) error {
	if len(cfg.Segments) == 0 {
		return goutils.NewConfigValidationFieldRequiredError(path, "segments")
	}

	var errs error
	for i, seg := range cfg.Segments {
		segPath := fmt.Sprintf("%s.segments.%d", path, i)
		if err := seg.Validate(segPath); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	if cfg.Plot != nil {
		if err := cfg.Plot.Bounds().Validate(); err != nil {
			errs = multierr.Append(errs, goutils.NewConfigValidationError(path+".plot", err))
		}
	}
	return errs
}

// Validate ensures the segment has a usable length and angle.
func (sc SegmentConfig) Validate(path string) error {
	if sc.Length == nil {
		return goutils.NewConfigValidationFieldRequiredError(path, "length")
	}
	if !utils.IsFinite(*sc.Length) || *sc.Length < 0 {
		return goutils.NewConfigValidationError(path,
			errors.Errorf("length must be a finite, non-negative number, got %v", *sc.Length))
	}
	if !utils.IsFinite(sc.AngleDegrees) {
		return goutils.NewConfigValidationError(path,
			errors.Errorf("angle_degrees must be finite, got %v", sc.AngleDegrees))
	}
	return nil
}

// Lengths returns the configured link lengths in chain order.
func (cfg *ArmConfig) Lengths() []float64 {
	return lo.Map(cfg.Segments, func(seg SegmentConfig, _ int) float64 {
		return lo.FromPtr(seg.Length)
	})
}

// AnglesDegrees returns the configured initial joint angles in degrees.
func (cfg *ArmConfig) AnglesDegrees() []float64 {
	return lo.Map(cfg.Segments, func(seg SegmentConfig, _ int) float64 {
		return seg.AngleDegrees
	})
}

// Bounds returns the configured plot window, or the default one.
func (cfg *ArmConfig) Bounds() render.Bounds {
	if cfg.Plot == nil {
		return render.DefaultBounds()
	}
	return cfg.Plot.Bounds()
}

// Build constructs the arm described by the config.
func (cfg *ArmConfig) Build() (*kinematics.Arm, error) {
	if err := cfg.Validate("arm"); err != nil {
		return nil, err
	}
	arm := kinematics.NewArm()
	for i, seg := range cfg.Segments {
		if err := arm.AppendSegment(*seg.Length, seg.AngleDegrees); err != nil {
			return nil, errors.Wrapf(err, "segment %d", i)
		}
	}
	return arm, nil
}

// Table prints out a table of each configured segment.
func (cfg *ArmConfig) Table() string {
	t := table.NewWriter()
	if cfg.Name != "" {
		t.SetTitle(cfg.Name)
	}
	t.AppendHeader(table.Row{"#", "Length", "Initial Angle (deg)"})
	for i, seg := range cfg.Segments {
		t.AppendRow(table.Row{i + 1, lo.FromPtr(seg.Length), seg.AngleDegrees})
	}
	return t.Render()
}
