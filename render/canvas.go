package render

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"go.viam.com/planararm/kinematics"
)

// DrawPose rasterizes the pose onto a width x height canvas covering bounds, with y pointing up.
func DrawPose(pose kinematics.Pose, bounds Bounds, width, height int) (image.Image, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("canvas size must be positive, got %dx%d", width, height)
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	sx := float64(width) / (bounds.XMax - bounds.XMin)
	sy := float64(height) / (bounds.YMax - bounds.YMin)
	toCanvas := func(x, y float64) (float64, float64) {
		return (x - bounds.XMin) * sx, float64(height) - (y-bounds.YMin)*sy
	}

	dc.SetColor(color.Gray{Y: 220})
	dc.SetLineWidth(1)
	for i := 0; i <= 10; i++ {
		f := float64(i) / 10
		dc.DrawLine(f*float64(width), 0, f*float64(width), float64(height))
		dc.DrawLine(0, f*float64(height), float64(width), f*float64(height))
	}
	dc.Stroke()

	dc.SetLineWidth(4)
	for i := 1; i < len(pose); i++ {
		x0, y0 := toCanvas(pose[i-1].X, pose[i-1].Y)
		x1, y1 := toCanvas(pose[i].X, pose[i].Y)
		dc.SetColor(linkColor(i - 1))
		dc.DrawLine(x0, y0, x1, y1)
		dc.Stroke()
	}
	dc.SetColor(armColor)
	for _, pt := range pose {
		x, y := toCanvas(pt.X, pt.Y)
		dc.DrawCircle(x, y, 6)
		dc.Fill()
	}

	return dc.Image(), nil
}

// linkHueStep is how far the hue turns from one link to the next.
const linkHueStep = 40

// linkColor shades the links along the chain so neighbouring links can be told apart. The
// first link uses the arm color.
func linkColor(i int) color.Color {
	base, _ := colorful.MakeColor(armColor)
	h, s, v := base.Hsv()
	return colorful.Hsv(math.Mod(h+linkHueStep*float64(i), 360), s, v).Clamped()
}

// SavePNG draws the pose with DrawPose and writes it to path as a PNG.
func SavePNG(pose kinematics.Pose, bounds Bounds, path string, width, height int) error {
	img, err := DrawPose(pose, bounds, width, height)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return errors.Wrapf(err, "cannot save png to %q", path)
	}
	return nil
}
