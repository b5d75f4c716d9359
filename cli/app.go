// Package cli contains the planararm command line interface.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"

	"go.viam.com/planararm/simulation"
)

// CLI flags.
const (
	FlagDebug    = "debug"
	FlagLogLevel = "log-level"
	FlagLogFile  = "log-file"
	FlagConfig   = "config"
	FlagLengths  = "lengths"
	FlagAngles   = "angles"
	FlagX        = "x"
	FlagY        = "y"
	FlagOut      = "out"
	FlagRenderer = "renderer"
)

var armFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    FlagConfig,
		Aliases: []string{"c"},
		Usage:   "load the arm from configuration `FILE`",
	},
	&cli.Float64SliceFlag{
		Name:  FlagLengths,
		Usage: "comma separated link lengths, base first (ignored when --config is set)",
	},
	&cli.Float64SliceFlag{
		Name:  FlagAngles,
		Usage: "comma separated initial joint angles in degrees, base first",
	},
}

var renderFlags = []cli.Flag{
	&cli.PathFlag{
		Name:  FlagOut,
		Value: "arm.png",
		Usage: "write the rendered arm to `FILE`",
	},
	&cli.StringFlag{
		Name:  FlagRenderer,
		Value: simulation.RendererPlot,
		Usage: "renderer to use: " + simulation.RendererPlot + " or " + simulation.RendererCanvas,
	},
}

func newApp() *cli.App {
	return &cli.App{
		Name:            "planararm",
		Usage:           "simulate a planar robot arm",
		HideHelpCommand: true,
		Metadata:        map[string]interface{}{},
		After:           closeLogFile,
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:    FlagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
			&cli.StringFlag{
				Name:  FlagLogLevel,
				Value: "warn",
				Usage: "minimum `LEVEL` logged: debug, info, warn or error",
			},
			&cli.PathFlag{
				Name:  FlagLogFile,
				Usage: "also write logs to `FILE`, rotating it as it grows",
			},
		}, armFlags...),
		Commands: []*cli.Command{
			{
				Name:   "forward",
				Usage:  "print the position of every joint for the configured angles",
				Action: ForwardAction,
			},
			{
				Name:  "solve",
				Usage: "move a 2-link arm's end effector to a target with inverse kinematics",
				Flags: []cli.Flag{
					&cli.Float64Flag{
						Name:     FlagX,
						Required: true,
						Usage:    "target x position",
					},
					&cli.Float64Flag{
						Name:     FlagY,
						Required: true,
						Usage:    "target y position",
					},
				},
				Action: SolveAction,
			},
			{
				Name:   "workspace",
				Usage:  "print the annulus the end effector can reach",
				Action: WorkspaceAction,
			},
			{
				Name:   "render",
				Usage:  "draw the configured arm to an image",
				Flags:  renderFlags,
				Action: RenderAction,
			},
			{
				Name:   "sim",
				Usage:  "interactive simulation: set angles, solve for targets and render the arm",
				Flags:  renderFlags,
				Action: SimulateAction,
			},
		},
	}
}

// NewApp returns a new app with the CLI API, Reader set to in, Writer set to out, and ErrWriter
// set to errOut.
func NewApp(in io.Reader, out, errOut io.Writer) *cli.App {
	app := newApp()
	app.Reader = in
	app.Writer = out
	app.ErrWriter = errOut
	return app
}
