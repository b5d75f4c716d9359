package render

import (
	"image/color"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"go.viam.com/planararm/kinematics"
)

const plotTitle = "Robot Arm Kinematics"

var armColor = color.RGBA{R: 65, G: 105, B: 225, A: 255} // royal blue

// PlotPose builds a plot of the pose as a connected polyline with a marker on every joint.
func PlotPose(pose kinematics.Pose, bounds Bounds) (*plot.Plot, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	if len(pose) == 0 {
		return nil, errors.New("cannot plot an empty pose")
	}

	p := plot.New()
	p.Title.Text = plotTitle
	p.X.Label.Text = "X Position"
	p.Y.Label.Text = "Y Position"
	p.X.Min, p.X.Max = bounds.XMin, bounds.XMax
	p.Y.Min, p.Y.Max = bounds.YMin, bounds.YMax
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(pose))
	for i, pt := range pose {
		pts[i].X = pt.X
		pts[i].Y = pt.Y
	}
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, errors.Wrap(err, "cannot build arm polyline")
	}
	line.Color = armColor
	line.Width = vg.Points(4)
	points.Shape = draw.CircleGlyph{}
	points.Color = armColor
	points.Radius = vg.Points(4)
	p.Add(line, points)

	return p, nil
}

// SavePlot renders the pose with PlotPose and writes it to path. The format follows the file
// extension (png, svg, pdf, ...).
func SavePlot(pose kinematics.Pose, bounds Bounds, path string, size vg.Length) error {
	p, err := PlotPose(pose, bounds)
	if err != nil {
		return err
	}
	if err := p.Save(size, size, path); err != nil {
		return errors.Wrapf(err, "cannot save plot to %q", path)
	}
	return nil
}
