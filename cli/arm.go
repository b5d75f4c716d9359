package cli

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"go.viam.com/planararm/render"
	"go.viam.com/planararm/utils"
)

// ForwardAction prints the forward kinematics of the configured arm.
func ForwardAction(c *cli.Context) error {
	sim, _, err := simulationFromFlags(c)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, render.PoseTable(sim.Pose()))
	return nil
}

// SolveAction runs the 2-link solver for --x/--y. An unreachable target is a warning, not a failure.
func SolveAction(c *cli.Context) error {
	sim, _, err := simulationFromFlags(c)
	if err != nil {
		return err
	}
	x, y := c.Float64(FlagX), c.Float64(FlagY)
	sol, err := sim.MoveTo(x, y)
	if err != nil {
		return err
	}
	if !sol.Reachable() {
		ws := sim.Workspace()
		pterm.Warning.WithWriter(c.App.Writer).Printfln(
			"Target (%v, %v) is unreachable: the arm reaches distances %v to %v from its base.", x, y, ws.Inner, ws.Outer)
		return nil
	}
	pterm.Success.WithWriter(c.App.Writer).Printfln(
		"Shoulder %.6f rad (%.4f deg), elbow %.6f rad (%.4f deg)",
		sol.ShoulderRad, utils.RadToDeg(sol.ShoulderRad), sol.ElbowRad, utils.RadToDeg(sol.ElbowRad))
	fmt.Fprintln(c.App.Writer, render.PoseTable(sim.Pose()))
	return nil
}

// WorkspaceAction prints the reachable annulus of the configured arm.
func WorkspaceAction(c *cli.Context) error {
	sim, _, err := simulationFromFlags(c)
	if err != nil {
		return err
	}
	ws := sim.Workspace()
	fmt.Fprintf(c.App.Writer, "inner radius: %v\nouter radius: %v\n", ws.Inner, ws.Outer)
	return nil
}

// RenderAction draws the configured arm to --out.
func RenderAction(c *cli.Context) error {
	sim, _, err := simulationFromFlags(c)
	if err != nil {
		return err
	}
	out := c.Path(FlagOut)
	if err := sim.Render(out, c.String(FlagRenderer)); err != nil {
		return err
	}
	pterm.Success.WithWriter(c.App.Writer).Printfln("Arm rendered to %s", out)
	return nil
}
