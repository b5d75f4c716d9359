package kinematics

import (
	"math"
)

// twoLinkSegments is the only chain length the analytic solver handles.
const twoLinkSegments = 2

// SolveStatus tags the outcome of an inverse kinematics request.
type SolveStatus int

const (
	// Solved indicates the arm was moved so its end effector is at the target.
	Solved SolveStatus = iota
	// Unreachable indicates the target is outside the reachable workspace; the arm was not modified.
	Unreachable
)

func (s SolveStatus) String() string {
	switch s {
	case Solved:
		return "solved"
	case Unreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

// Solution is the outcome of Solve2Link. The angles are only meaningful when Status is Solved.
type Solution struct {
	Status      SolveStatus
	ShoulderRad float64
	ElbowRad    float64
}

// Reachable returns whether the target was reached.
func (s Solution) Reachable() bool {
	return s.Status == Solved
}

// Solve2Link places the end effector of a 2-segment arm at (targetX, targetY) using the law of cosines.
//
// Only the elbow-up branch (elbow angle in [0, pi]) is produced. On success the shoulder and elbow
// angles are written to the arm in radians. A target outside the workspace is reported through
// the Unreachable status and leaves the arm untouched; an arm with any other number of segments
// is a usage error.
func Solve2Link(arm *Arm, targetX, targetY float64) (Solution, error) {
	if arm.SegmentCount() != twoLinkSegments {
		return Solution{}, NewUnsupportedChainLengthError(arm.SegmentCount(), twoLinkSegments)
	}

	l1 := arm.segments[0].Length
	l2 := arm.segments[1].Length
	d := (targetX*targetX + targetY*targetY - l1*l1 - l2*l2) / (2 * l1 * l2)

	// NaN shows up when a zero-length link meets a target on its circle.
	if math.IsNaN(d) || math.Abs(d) > 1 {
		return Solution{Status: Unreachable}, nil
	}

	elbow := math.Acos(d)
	shoulder := math.Atan2(targetY, targetX) - math.Atan2(l2*math.Sin(elbow), l1+l2*math.Cos(elbow))

	arm.setJointAngleRad(0, shoulder)
	arm.setJointAngleRad(1, elbow)
	return Solution{Status: Solved, ShoulderRad: shoulder, ElbowRad: elbow}, nil
}
