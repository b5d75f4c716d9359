package kinematics

import (
	"github.com/golang/geo/r2"

	"go.viam.com/planararm/utils"
)

// Pose is the result of forward kinematics: the origin followed by the end point of every segment.
type Pose []r2.Point

// EndEffector returns the last point of the pose. An empty pose has its end effector at the origin.
func (p Pose) EndEffector() r2.Point {
	if len(p) == 0 {
		return r2.Point{}
	}
	return p[len(p)-1]
}

// Xs returns the x coordinates of every point, in chain order.
func (p Pose) Xs() []float64 {
	xs := make([]float64, len(p))
	for i, pt := range p {
		xs[i] = pt.X
	}
	return xs
}

// Ys returns the y coordinates of every point, in chain order.
func (p Pose) Ys() []float64 {
	ys := make([]float64, len(p))
	for i, pt := range p {
		ys[i] = pt.Y
	}
	return ys
}

// AlmostEqual returns whether two poses have the same number of points and every coordinate
// agrees within epsilon.
func (p Pose) AlmostEqual(other Pose, epsilon float64) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if !PointAlmostEqual(p[i], other[i], epsilon) {
			return false
		}
	}
	return true
}

// PointAlmostEqual compares two points coordinate-wise within epsilon.
func PointAlmostEqual(a, b r2.Point, epsilon float64) bool {
	return utils.Float64AlmostEqual(a.X, b.X, epsilon) && utils.Float64AlmostEqual(a.Y, b.Y, epsilon)
}
