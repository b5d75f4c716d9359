// Package kinematics models a planar serial-link arm and computes its forward and inverse kinematics.
//
// Joint angles are relative: each segment's angle is applied on top of the cumulative orientation of
// every segment before it. Public methods name the unit of every angle they take or return.
package kinematics

import (
	"math"

	"github.com/golang/geo/r2"

	"go.viam.com/planararm/utils"
)

// Arm is an ordered chain of segments from the fixed base at the origin to the end effector.
// An Arm is not safe for concurrent use.
type Arm struct {
	segments []Segment
}

// NewArm returns an arm with no segments.
func NewArm() *Arm {
	return &Arm{}
}

// AppendSegment adds a segment to the end of the chain. The angle is given in degrees.
func (a *Arm) AppendSegment(length, angleDeg float64) error {
	switch {
	case !utils.IsFinite(length):
		return NewInvalidSegmentError(length, angleDeg, "length must be finite")
	case length < 0:
		return NewInvalidSegmentError(length, angleDeg, "length must not be negative")
	case !utils.IsFinite(angleDeg):
		return NewInvalidSegmentError(length, angleDeg, "angle must be finite")
	}
	a.segments = append(a.segments, Segment{Length: length, Angle: utils.DegToRad(angleDeg)})
	return nil
}

// SetJointAngle replaces the angle of the joint at index with angleDeg, given in degrees.
// The arm is unchanged if the index is out of range.
func (a *Arm) SetJointAngle(index int, angleDeg float64) error {
	if index < 0 || index >= len(a.segments) {
		return NewInvalidIndexError(index, len(a.segments))
	}
	a.segments[index].Angle = utils.DegToRad(angleDeg)
	return nil
}

// setJointAngleRad is used by solvers, which work in radians.
func (a *Arm) setJointAngleRad(index int, angleRad float64) {
	a.segments[index].Angle = angleRad
}

// SegmentCount returns the number of segments in the chain.
func (a *Arm) SegmentCount() int {
	return len(a.segments)
}

// Segments returns a copy of the chain.
func (a *Arm) Segments() []Segment {
	out := make([]Segment, len(a.segments))
	copy(out, a.segments)
	return out
}

// JointAngles returns the stored joint angles in radians.
func (a *Arm) JointAngles() []float64 {
	angles := make([]float64, len(a.segments))
	for i, s := range a.segments {
		angles[i] = s.Angle
	}
	return angles
}

// JointAnglesDegrees returns the stored joint angles converted to degrees.
func (a *Arm) JointAnglesDegrees() []float64 {
	angles := a.JointAngles()
	for i, angle := range angles {
		angles[i] = utils.RadToDeg(angle)
	}
	return angles
}

// ForwardKinematics computes the position of every joint and of the end effector.
// The returned pose has SegmentCount()+1 points and starts at the origin.
func (a *Arm) ForwardKinematics() Pose {
	pose := make(Pose, 0, len(a.segments)+1)
	current := r2.Point{}
	pose = append(pose, current)

	orientation := 0.
	for _, s := range a.segments {
		orientation += s.Angle
		current = current.Add(r2.Point{X: s.Length * math.Cos(orientation), Y: s.Length * math.Sin(orientation)})
		pose = append(pose, current)
	}
	return pose
}

// EndEffector returns the position of the end of the last segment.
func (a *Arm) EndEffector() r2.Point {
	return a.ForwardKinematics().EndEffector()
}
