package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"
	"gonum.org/v1/plot/vg"

	"go.viam.com/planararm/kinematics"
)

func twoLinkPose(t *testing.T) kinematics.Pose {
	t.Helper()
	arm := kinematics.NewArm()
	test.That(t, arm.AppendSegment(30, 45), test.ShouldBeNil)
	test.That(t, arm.AppendSegment(40, -30), test.ShouldBeNil)
	return arm.ForwardKinematics()
}

func TestBounds(t *testing.T) {
	test.That(t, DefaultBounds().Validate(), test.ShouldBeNil)
	err := Bounds{XMin: 1, XMax: 1, YMin: 0, YMax: 1}.Validate()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "x_min")
	err = Bounds{XMin: 0, XMax: 1, YMin: 2, YMax: 1}.Validate()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "y_min")
}

func TestPlotPose(t *testing.T) {
	p, err := PlotPose(twoLinkPose(t), DefaultBounds())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, p.Title.Text, test.ShouldEqual, "Robot Arm Kinematics")
	test.That(t, p.X.Min, test.ShouldEqual, 0)
	test.That(t, p.X.Max, test.ShouldEqual, 100)

	_, err = PlotPose(kinematics.Pose{}, DefaultBounds())
	test.That(t, err, test.ShouldNotBeNil)
	_, err = PlotPose(twoLinkPose(t), Bounds{})
	test.That(t, err, test.ShouldNotBeNil)

	out := filepath.Join(t.TempDir(), "arm.png")
	test.That(t, SavePlot(twoLinkPose(t), DefaultBounds(), out, 4*vg.Inch), test.ShouldBeNil)
	info, err := os.Stat(out)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, info.Size(), test.ShouldBeGreaterThan, 0)
}

func TestDrawPose(t *testing.T) {
	pose := kinematics.Pose{{X: 10, Y: 50}, {X: 90, Y: 50}}
	img, err := DrawPose(pose, DefaultBounds(), 100, 100)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, img.Bounds().Dx(), test.ShouldEqual, 100)
	test.That(t, img.Bounds().Dy(), test.ShouldEqual, 100)

	r, g, b, _ := img.At(50, 50).RGBA()
	test.That(t, r>>8, test.ShouldBeLessThan, 100)
	test.That(t, g>>8, test.ShouldBeLessThan, 150)
	test.That(t, b>>8, test.ShouldBeGreaterThan, 200)

	r, g, b, _ = img.At(5, 5).RGBA()
	test.That(t, []uint32{r >> 8, g >> 8, b >> 8}, test.ShouldResemble, []uint32{255, 255, 255})

	// The second link is shaded differently from the first.
	bent := kinematics.Pose{{X: 10, Y: 50}, {X: 50, Y: 50}, {X: 50, Y: 90}}
	img, err = DrawPose(bent, DefaultBounds(), 100, 100)
	test.That(t, err, test.ShouldBeNil)
	r0, g0, b0, _ := img.At(30, 50).RGBA()
	r1, g1, b1, _ := img.At(50, 30).RGBA()
	test.That(t, []uint32{r1 >> 8, g1 >> 8, b1 >> 8}, test.ShouldNotResemble, []uint32{r0 >> 8, g0 >> 8, b0 >> 8})
	test.That(t, linkColor(3), test.ShouldNotResemble, linkColor(0))

	_, err = DrawPose(pose, DefaultBounds(), 0, 100)
	test.That(t, err, test.ShouldNotBeNil)

	out := filepath.Join(t.TempDir(), "arm.png")
	test.That(t, SavePNG(pose, DefaultBounds(), out, 64, 64), test.ShouldBeNil)
	_, err = os.Stat(out)
	test.That(t, err, test.ShouldBeNil)
}

func TestPoseTable(t *testing.T) {
	out := PoseTable(kinematics.Pose{{}, r2.Point{X: 3, Y: 0}, r2.Point{X: 3, Y: 4}})
	lines := strings.Split(out, "\n")
	test.That(t, out, test.ShouldContainSubstring, "end effector")
	test.That(t, out, test.ShouldContainSubstring, "base")
	test.That(t, out, test.ShouldContainSubstring, "4.0000")
	test.That(t, len(lines), test.ShouldBeGreaterThan, 4)
}
