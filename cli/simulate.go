package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"go.viam.com/planararm/kinematics"
	"go.viam.com/planararm/render"
	"go.viam.com/planararm/simulation"
)

const menuText = `
Options:
1. Set joint angles
2. Move to position using inverse kinematics
3. Render current arm configuration
4. Exit`

// errInputClosed means the reader ran out while a prompt was waiting.
var errInputClosed = errors.New("input closed")

// SimulateAction runs the interactive simulation on the app's reader and writer.
func SimulateAction(c *cli.Context) error {
	logger, err := newLogger(c)
	if err != nil {
		return err
	}
	m := &menu{
		in:       bufio.NewScanner(c.App.Reader),
		out:      c.App.Writer,
		outPath:  c.Path(FlagOut),
		renderer: c.String(FlagRenderer),
	}

	cfg, err := armConfigFromFlags(c, logger)
	if err != nil {
		return err
	}
	if cfg != nil {
		m.sim, err = simulation.FromConfig(cfg, logger)
		if err != nil {
			return err
		}
	} else {
		m.sim = simulation.New(logger)
		if err := m.buildArm(); err != nil {
			return ignoreClosed(err)
		}
	}
	return ignoreClosed(m.run())
}

func ignoreClosed(err error) error {
	if errors.Is(err, errInputClosed) {
		return nil
	}
	return err
}

type menu struct {
	sim      *simulation.Simulation
	in       *bufio.Scanner
	out      io.Writer
	outPath  string
	renderer string
}

func (m *menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(m.in.Text()), nil
}

// promptFloat asks until it gets a number.
func (m *menu) promptFloat(label string) (float64, error) {
	for {
		text, err := m.prompt(label)
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(text, 64)
		if err == nil {
			return f, nil
		}
		pterm.Error.WithWriter(m.out).Printfln("%q is not a number. Try again.", text)
	}
}

func (m *menu) promptCount(label string) (int, error) {
	for {
		text, err := m.prompt(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(text)
		if err == nil && n > 0 {
			return n, nil
		}
		pterm.Error.WithWriter(m.out).Printfln("%q is not a positive whole number. Try again.", text)
	}
}

func (m *menu) buildArm() error {
	count, err := m.promptCount("Enter number of links (2 recommended): ")
	if err != nil {
		return err
	}
	for i := 1; i <= count; i++ {
		for {
			length, err := m.promptFloat(fmt.Sprintf("Enter length of link %d: ", i))
			if err != nil {
				return err
			}
			angle, err := m.promptFloat(fmt.Sprintf("Enter initial angle (in degrees) for joint %d: ", i))
			if err != nil {
				return err
			}
			if err := m.sim.AppendSegment(length, angle); err != nil {
				pterm.Error.WithWriter(m.out).Println(err.Error())
				continue
			}
			break
		}
	}
	return nil
}

func (m *menu) run() error {
	for {
		fmt.Fprintln(m.out, menuText)
		choice, err := m.prompt("Choose an option: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = m.setJointAngles()
		case "2":
			err = m.moveTo()
		case "3":
			err = m.render()
		case "4":
			fmt.Fprintln(m.out, "Exiting.")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid option. Try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (m *menu) setJointAngles() error {
	angles := make([]float64, m.sim.SegmentCount())
	for i := range angles {
		angle, err := m.promptFloat(fmt.Sprintf("Enter new angle (in degrees) for joint %d: ", i+1))
		if err != nil {
			return err
		}
		angles[i] = angle
	}
	return m.sim.SetJointAngles(angles)
}

func (m *menu) moveTo() error {
	x, err := m.promptFloat("Enter target x position: ")
	if err != nil {
		return err
	}
	y, err := m.promptFloat("Enter target y position: ")
	if err != nil {
		return err
	}
	sol, err := m.sim.MoveTo(x, y)
	switch {
	case kinematics.IsUnsupportedChainLengthError(err):
		// The arm cannot change length, so report it and keep the session going.
		pterm.Error.WithWriter(m.out).Println(err.Error())
		return nil
	case err != nil:
		return err
	case !sol.Reachable():
		pterm.Warning.WithWriter(m.out).Println("Target is unreachable.")
		return nil
	}
	pterm.Success.WithWriter(m.out).Printfln("Moved to (%v, %v).", x, y)
	return nil
}

func (m *menu) render() error {
	if err := m.sim.Render(m.outPath, m.renderer); err != nil {
		pterm.Error.WithWriter(m.out).Println(err.Error())
		return nil
	}
	fmt.Fprintln(m.out, render.PoseTable(m.sim.Pose()))
	pterm.Success.WithWriter(m.out).Printfln("Arm rendered to %s", m.outPath)
	return nil
}
