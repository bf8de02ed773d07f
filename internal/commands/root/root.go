package root

import (
	"github.com/raheelahmad/slox/internal/commands/inspect"
	cli "github.com/urfave/cli/v2"
)

func NewCommand() *cli.App {
	return &cli.App{
		Name:  "slox",
		Usage: "Expression evaluation core of the slox language.",
		Commands: []*cli.Command{
			inspect.NewCommand(),
		},
	}
}
