// Package render draws arm poses: a gonum plot mirroring the classic matplotlib figure, a raster
// canvas, and a text table.
package render

import (
	"github.com/pkg/errors"
)

// Bounds is the fixed axis window a pose is drawn in.
type Bounds struct {
	XMin float64
	XMax float64
	YMin float64
	YMax float64
}

// DefaultBounds returns the 0..100 window on both axes.
func DefaultBounds() Bounds {
	return Bounds{XMin: 0, XMax: 100, YMin: 0, YMax: 100}
}

// Validate returns an error if either axis range is empty or inverted.
func (b Bounds) Validate() error {
	if !(b.XMin < b.XMax) {
		return errors.Errorf("x_min (%v) must be less than x_max (%v)", b.XMin, b.XMax)
	}
	if !(b.YMin < b.YMax) {
		return errors.Errorf("y_min (%v) must be less than y_max (%v)", b.YMin, b.YMax)
	}
	return nil
}
