package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"structhole/layout"
)

// Exit statuses follow sysexits so scripts can tell a bad invocation from
// bad debug info from an internal fault.
const (
	exitUsage    = 64
	exitDataErr  = 65
	exitSoftware = 70
)

func exitStatus(err error) int {
	switch layout.KindOf(err) {
	case layout.KindUsage:
		return exitUsage
	case layout.KindData:
		return exitDataErr
	}
	return exitSoftware
}

func main() {
	app := &cli.App{
		Name:      "structhole",
		Usage:     "report the memory layout of a struct from a binary's debug info",
		UsageText: "structhole [options] <structname> <binary>",
		Version:   Version,
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:    "cacheline",
				Aliases: []string{"l"},
				Usage:   "cacheline size in bytes",
				Value:   layout.DefaultCachelineSize,
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "TOML config file path",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		// Action failures carry their own exit code; anything left over
		// is a flag-parsing problem.
		os.Exit(exitUsage)
	}
}

func run(c *cli.Context) error {
	if c.NArg() < 2 {
		cli.ShowAppHelp(c)
		return cli.Exit("", exitUsage)
	}
	structName := c.Args().Get(0)
	binary := c.Args().Get(1)

	cacheline, err := resolveCacheline(c.IsSet("cacheline"), c.Uint64("cacheline"), c.String("config"))
	if err != nil {
		return cli.Exit(err.Error(), exitStatus(err))
	}

	if err := Probe(os.Stdout, structName, binary, cacheline); err != nil {
		return cli.Exit(err.Error(), exitStatus(err))
	}
	return nil
}
