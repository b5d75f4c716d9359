package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/multierr"
	"go.viam.com/test"

	"go.viam.com/planararm/logging"
	"go.viam.com/planararm/render"
)

func TestFromReaderValidate(t *testing.T) {
	logger := logging.NewTestLogger(t)

	_, err := FromReader("somepath", strings.NewReader(""), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "EOF")

	_, err = FromReader("somepath", strings.NewReader(`{"segments": 1}`), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "unmarshal")

	_, err = FromReader("somepath", strings.NewReader(`{"links": []}`), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "unknown field")

	_, err = FromReader("somepath", strings.NewReader(`{}`), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, `"segments" is required`)

	_, err = FromReader("somepath", strings.NewReader(`{"segments": [{"angle_degrees": 10}]}`), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "arm.segments.0")
	test.That(t, err.Error(), test.ShouldContainSubstring, `"length" is required`)

	cfg, err := FromReader("somepath",
		strings.NewReader(`{"name": "two", "segments": [{"length": 3}, {"length": 4, "angle_degrees": 90}]}`), logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.ConfigFilePath, test.ShouldEqual, "somepath")
	test.That(t, cfg.Name, test.ShouldEqual, "two")
	test.That(t, cfg.Lengths(), test.ShouldResemble, []float64{3, 4})
	test.That(t, cfg.AnglesDegrees(), test.ShouldResemble, []float64{0, 90})
	test.That(t, cfg.Bounds(), test.ShouldResemble, render.DefaultBounds())
}

func TestValidateReportsEveryProblem(t *testing.T) {
	logger := logging.NewTestLogger(t)
	_, err := FromReader("somepath", strings.NewReader(`{
		"segments": [{"length": -1}, {"length": 2}, {}],
		"plot": {"x_min": 10, "x_max": 0, "y_min": 0, "y_max": 1}
	}`), logger)
	test.That(t, err, test.ShouldNotBeNil)
	errs := multierr.Errors(err)
	test.That(t, errs, test.ShouldHaveLength, 3)
	test.That(t, errs[0].Error(), test.ShouldContainSubstring, "arm.segments.0")
	test.That(t, errs[0].Error(), test.ShouldContainSubstring, "non-negative")
	test.That(t, errs[1].Error(), test.ShouldContainSubstring, "arm.segments.2")
	test.That(t, errs[2].Error(), test.ShouldContainSubstring, "arm.plot")
}

func TestReadFileSubstitutesEnvironment(t *testing.T) {
	logger := logging.NewTestLogger(t)
	t.Setenv("PLANARARM_SECOND_LINK", "40")

	path := filepath.Join(t.TempDir(), "arm.json")
	contents := `{
		"name": "env-arm",
		"segments": [{"length": 30, "angle_degrees": 45}, {"length": ${PLANARARM_SECOND_LINK}, "angle_degrees": -30}],
		"plot": {"x_min": -80, "x_max": 80, "y_min": -80, "y_max": 80}
	}`
	test.That(t, os.WriteFile(path, []byte(contents), 0o600), test.ShouldBeNil)

	cfg, err := ReadFile(path, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.Lengths(), test.ShouldResemble, []float64{30, 40})
	test.That(t, cfg.Bounds(), test.ShouldResemble, render.Bounds{XMin: -80, XMax: 80, YMin: -80, YMax: 80})

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.json"), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "cannot read arm config")
}

func TestReadFileJSON5(t *testing.T) {
	logger := logging.NewTestLogger(t)
	dir := t.TempDir()

	path := filepath.Join(dir, "arm.json5")
	contents := `{
		// shoulder then elbow
		name: "json5-arm",
		segments: [
			{length: 30, angle_degrees: 45},
			{length: 40, angle_degrees: -30},
		],
	}`
	test.That(t, os.WriteFile(path, []byte(contents), 0o600), test.ShouldBeNil)

	cfg, err := ReadFile(path, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.Name, test.ShouldEqual, "json5-arm")
	test.That(t, cfg.AnglesDegrees(), test.ShouldResemble, []float64{45, -30})

	// Unknown fields are still rejected after the json5 rewrite.
	path = filepath.Join(dir, "typo.json5")
	test.That(t, os.WriteFile(path, []byte(`{segments: [{length: 1}], lenght: 2}`), 0o600), test.ShouldBeNil)
	_, err = ReadFile(path, logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "cannot unmarshal arm config")

	// Comments are not valid in plain json files.
	path = filepath.Join(dir, "commented.json")
	test.That(t, os.WriteFile(path, []byte("// arm\n"+`{"segments": [{"length": 1}]}`), 0o600), test.ShouldBeNil)
	_, err = ReadFile(path, logger)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestBuild(t *testing.T) {
	cfg, err := NewArmConfig("built", []float64{3, 4}, []float64{0, 90})
	test.That(t, err, test.ShouldBeNil)
	arm, err := cfg.Build()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, arm.SegmentCount(), test.ShouldEqual, 2)
	end := arm.EndEffector()
	test.That(t, end.X, test.ShouldAlmostEqual, 3, 1e-9)
	test.That(t, end.Y, test.ShouldAlmostEqual, 4, 1e-9)

	cfg, err = NewArmConfig("short", []float64{1, 1}, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.AnglesDegrees(), test.ShouldResemble, []float64{0, 0})

	_, err = NewArmConfig("bad", []float64{1}, []float64{1, 2})
	test.That(t, err, test.ShouldNotBeNil)

	cfg, err = NewArmConfig("negative", []float64{-1}, nil)
	test.That(t, err, test.ShouldBeNil)
	_, err = cfg.Build()
	test.That(t, err, test.ShouldNotBeNil)
}

func TestTable(t *testing.T) {
	cfg, err := NewArmConfig("demo", []float64{30, 40}, []float64{45, -30})
	test.That(t, err, test.ShouldBeNil)
	out := cfg.Table()
	test.That(t, out, test.ShouldContainSubstring, "demo")
	test.That(t, out, test.ShouldContainSubstring, "INITIAL ANGLE (DEG)")
	test.That(t, out, test.ShouldContainSubstring, "-30")
}
