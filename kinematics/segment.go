package kinematics

// Segment is one rigid link together with the rotary joint at its base.
type Segment struct {
	// Length of the link, in the same units as target positions.
	Length float64
	// Angle of the joint in radians, relative to the cumulative orientation of every
	// preceding segment. It is stored as given and never normalized.
	Angle float64
}
