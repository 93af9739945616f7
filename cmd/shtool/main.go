// shtool is a CLI utility for spherical harmonics lighting: it evaluates,
// rotates and multiplies SH coefficient vectors and bakes scene lights.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-sh/internal/config"
	"github.com/Faultbox/midgard-sh/internal/logger"
)

var errUnknownCommand = errors.New("unknown command")

func main() {
	// Global flags come before the command
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := config.Args()
	if len(args) < 1 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(args[0], args[1:], cfg, os.Stdout); err != nil {
		logger.Error("command failed", zap.String("command", args[0]), zap.Error(err))
		if errors.Is(err, errUnknownCommand) {
			printUsage(os.Stderr)
		}
		logger.Sync()
		os.Exit(1)
	}
}

// command is one shtool subcommand.
type command struct {
	name    string
	alias   string
	usage   string
	summary string
	run     func(env *cmdEnv, args []string) error
}

// cmdEnv is what every command runs with.
type cmdEnv struct {
	cfg *config.Config
	out *printer
	log *zap.Logger
}

var commands = []command{
	{"eval", "e", "eval [-dir x,y,z] [-coeffs c0,c1,...]", "Evaluate the basis, or a function, at a direction", cmdEval},
	{"rotate", "rot", "rotate -coeffs ... (-euler x,y,z | -axis x,y,z -angle deg | -quat x,y,z,w)", "Rotate coefficients by a 3D rotation", cmdRotate},
	{"rotatez", "rz", "rotatez -coeffs ... -angle deg", "Rotate coefficients about the Z axis", cmdRotateZ},
	{"product", "mul", "product -f ... -g ...", "Project the product of two functions", cmdProduct},
	{"light", "l", "light -kind directional|sphere|cone|hemisphere [options]", "Project a single light", cmdLight},
	{"bake", "b", "bake [-scene lights.yaml] [-normal x,y,z]", "Bake the scene lights into an environment", cmdBake},
	{"info", "i", "info", "Show the coefficient layout for the current order", cmdInfo},
	{"config", "", "config [-save path | -user]", "Print or save the effective configuration", cmdConfig},
}

// run dispatches a command. Usage errors and engine errors are returned
// rather than exiting so the commands can be tested.
func run(name string, args []string, cfg *config.Config, stdout io.Writer) error {
	switch name {
	case "help", "-h", "--help":
		printUsage(stdout)
		return nil
	}

	for _, c := range commands {
		if name != c.name && (c.alias == "" || name != c.alias) {
			continue
		}
		env := &cmdEnv{
			cfg: cfg,
			out: newPrinter(stdout, cfg.Output.Format, cfg.SH.Precision),
			log: logger.Named(c.name),
		}
		err := c.run(env, args)
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	return fmt.Errorf("%q: %w", name, errUnknownCommand)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `shtool - spherical harmonics lighting utility

Usage:
  shtool [-config file] [-order n] [-format text|yaml] [-debug] <command> [options]

Commands:`)
	for _, c := range commands {
		fmt.Fprintf(w, "  %-78s %s\n", c.usage, c.summary)
	}
	fmt.Fprintln(w, `
Coefficient vectors are comma separated, ordered by band l and m = -l..l,
and must hold at least order*order values.

Examples:
  shtool eval -dir 0,0,1
  shtool -order 4 light -kind cone -dir 0,1,0 -angle 30 -color 1,0.9,0.8
  shtool rotate -coeffs 0.28,0,0.49,0 -euler 90,0,0
  shtool -format yaml bake -scene lights.yaml -normal 0,1,0`)
}
