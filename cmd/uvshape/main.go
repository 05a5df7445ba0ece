// uvshape is a CLI for UV-correspondence shape blending: it deforms a
// base OBJ mesh toward weighted target meshes whose vertices are matched
// by UV coordinate instead of by index.
package main

import (
	"fmt"
	"os"

	"github.com/revoconner/uvshape/internal/config"
	"github.com/revoconner/uvshape/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "deform":
		cmdDeform(args)
	case "info":
		cmdInfo(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`uvshape - UV-correspondence shape blending for OBJ meshes

Usage:
  uvshape <command> [options]

Commands:
  deform -base <base.obj> -target <mesh.obj=weight> [...] -out <out.obj>
                          Blend the base mesh toward the weighted targets
  info <mesh.obj>         Show vertex/UV correspondence statistics

Options (all commands):
  -config <path>          Config file (default ./uvshape.yaml)
  -debug                  Enable debug logging
  -quiet                  Log errors only
  -precision <n>          Decimal places for written coordinates

Examples:
  uvshape deform -base head.obj -target smile.obj=0.6 -out out.obj
  uvshape deform -base head.obj -target a.obj=1 -target b.obj=-0.25 -out out.obj
  uvshape info head.obj`)
}

// setup loads the config and initializes logging; shared by subcommands.
func setup(fl *config.Flags) *config.Config {
	cfg, err := config.Load(fl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
