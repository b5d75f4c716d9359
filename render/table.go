package render

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"go.viam.com/planararm/kinematics"
)

// PoseTable returns a table of every point of the pose, base first.
func PoseTable(pose kinematics.Pose) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Point", "X", "Y"})
	for i, pt := range pose {
		name := fmt.Sprintf("joint %d", i)
		switch {
		case i == 0:
			name = "base"
		case i == len(pose)-1:
			name = "end effector"
		}
		t.AppendRow(table.Row{i, name, fmt.Sprintf("%.4f", pt.X), fmt.Sprintf("%.4f", pt.Y)})
	}
	return t.Render()
}
