package kinematics

import (
	"math"

	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/floats"
)

// Workspace is the annulus, centered on the base, that the end effector can reach when every
// joint is free to rotate.
type Workspace struct {
	Inner float64
	Outer float64
}

// ReachableWorkspace returns the workspace of the arm. For two links it is [|L1-L2|, L1+L2].
func ReachableWorkspace(arm *Arm) Workspace {
	if arm.SegmentCount() == 0 {
		return Workspace{}
	}
	lengths := make([]float64, arm.SegmentCount())
	for i, s := range arm.segments {
		lengths[i] = s.Length
	}
	total := floats.Sum(lengths)
	longest := floats.Max(lengths)
	return Workspace{
		Inner: math.Max(0, 2*longest-total),
		Outer: total,
	}
}

// Contains returns whether p lies within the annulus, boundaries included.
func (w Workspace) Contains(p r2.Point) bool {
	dist := p.Norm()
	return dist >= w.Inner && dist <= w.Outer
}
