// Command marketctl inspects targeting and access rights against the live directory.
package main

import (
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		slog.Error("marketctl failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "marketctl",
		Usage: "Operator tooling for business targeting and access rights",
		Commands: []*cli.Command{
			targetsCommand,
			rightsCommand,
			classifyCommand,
		},
	}
}
