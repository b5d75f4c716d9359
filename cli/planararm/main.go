// Package main is the planararm command itself.
package main

import (
	"os"

	"github.com/pterm/pterm"

	"go.viam.com/planararm/cli"
)

func main() {
	app := cli.NewApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		pterm.Error.WithWriter(os.Stderr).Println(err.Error())
		os.Exit(1)
	}
}
