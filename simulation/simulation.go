// Package simulation is the command interface over a single arm: append segments, set joint
// angles, query the pose and move the end effector with inverse kinematics. It is the layer
// that owns an arm on behalf of a driver such as the CLI.
package simulation

import (
	"sync"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"go.viam.com/planararm/config"
	"go.viam.com/planararm/kinematics"
	"go.viam.com/planararm/logging"
	"go.viam.com/planararm/render"
)

// Simulation serializes every command on its arm, so a mutation and a following query never
// interleave with another caller's.
type Simulation struct {
	mu     sync.Mutex
	arm    *kinematics.Arm
	bounds render.Bounds
	logger logging.Logger
}

// New returns a simulation of an arm with no segments.
func New(logger logging.Logger) *Simulation {
	return &Simulation{
		arm:    kinematics.NewArm(),
		bounds: render.DefaultBounds(),
		logger: logger,
	}
}

// FromConfig returns a simulation of the configured arm.
func FromConfig(cfg *config.ArmConfig, logger logging.Logger) (*Simulation, error) {
	arm, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "cannot build arm from config")
	}
	logger.Infow("arm created", "name", cfg.Name, "segments", arm.SegmentCount())
	return &Simulation{arm: arm, bounds: cfg.Bounds(), logger: logger}, nil
}

// AppendSegment adds a segment to the end of the arm. The angle is in degrees.
func (s *Simulation) AppendSegment(length, angleDeg float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.arm.AppendSegment(length, angleDeg); err != nil {
		return err
	}
	s.logger.Debugw("segment appended", "index", s.arm.SegmentCount()-1, "length", length, "angle_deg", angleDeg)
	return nil
}

// SetJointAngle sets one joint, in degrees.
func (s *Simulation) SetJointAngle(index int, angleDeg float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.arm.SetJointAngle(index, angleDeg); err != nil {
		return err
	}
	s.logger.Debugw("joint angle set", "index", index, "angle_deg", angleDeg)
	return nil
}

// SetJointAngles sets every joint at once, in degrees. Nothing changes unless exactly one angle
// per segment is given.
func (s *Simulation) SetJointAngles(anglesDeg []float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(anglesDeg) != s.arm.SegmentCount() {
		return errors.Errorf("got %d joint angles for an arm with %d segments", len(anglesDeg), s.arm.SegmentCount())
	}
	for i, angle := range anglesDeg {
		if err := s.arm.SetJointAngle(i, angle); err != nil {
			return err
		}
	}
	s.logger.Debugw("joint angles set", "angles_deg", anglesDeg)
	return nil
}

// MoveTo places the end effector at (x, y) using the 2-link solver. An unreachable target is
// logged and reported through the returned solution, not as an error.
func (s *Simulation) MoveTo(x, y float64) (kinematics.Solution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sol, err := kinematics.Solve2Link(s.arm, x, y)
	if err != nil {
		return sol, errors.Wrapf(err, "cannot move to (%v, %v)", x, y)
	}
	if !sol.Reachable() {
		ws := kinematics.ReachableWorkspace(s.arm)
		s.logger.Warnw("target is unreachable",
			"x", x, "y", y,
			"distance", r2.Point{X: x, Y: y}.Norm(),
			"inner_radius", ws.Inner, "outer_radius", ws.Outer)
		return sol, nil
	}
	s.logger.Debugw("moved to target", "x", x, "y", y, "shoulder_rad", sol.ShoulderRad, "elbow_rad", sol.ElbowRad)
	return sol, nil
}

// Pose returns the forward kinematics of the current configuration.
func (s *Simulation) Pose() kinematics.Pose {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.arm.ForwardKinematics()
}

// JointAngles returns the current joint angles in radians.
func (s *Simulation) JointAngles() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.arm.JointAngles()
}

// JointAnglesDegrees returns the current joint angles in degrees.
func (s *Simulation) JointAnglesDegrees() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.arm.JointAnglesDegrees()
}

// SegmentCount returns the number of segments of the arm.
func (s *Simulation) SegmentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.arm.SegmentCount()
}

// Workspace returns the reachable annulus of the arm.
func (s *Simulation) Workspace() kinematics.Workspace {
	s.mu.Lock()
	defer s.mu.Unlock()
	return kinematics.ReachableWorkspace(s.arm)
}

// Bounds returns the window the arm is rendered in.
func (s *Simulation) Bounds() render.Bounds {
	return s.bounds
}

// Render writes the current pose to path with the named renderer: RendererPlot for a gonum plot,
// RendererCanvas for a gg raster.
func (s *Simulation) Render(path, renderer string) error {
	pose := s.Pose()
	var err error
	switch renderer {
	case RendererPlot:
		err = render.SavePlot(pose, s.bounds, path, plotSize)
	case RendererCanvas:
		err = render.SavePNG(pose, s.bounds, path, canvasSizePx, canvasSizePx)
	default:
		return errors.Errorf("unknown renderer %q", renderer)
	}
	if err != nil {
		return err
	}
	s.logger.Infow("arm rendered", "path", path, "renderer", renderer)
	return nil
}
