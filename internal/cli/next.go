package cli

import (
	"context"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/slotkit/internal/config"
)

const maxSteps = 1 << 16

// NextCmd returns the next command.
func NextCmd(cfg *config.Config) *Command {
	fs := flag.NewFlagSet("next", flag.ContinueOnError)
	fs.IntP("steps", "n", 1, "Number of successors to print")

	return &Command{
		Flags:   fs,
		Usage:   "next <v> [flags]",
		MinArgs: 1,
		MaxArgs: 1,
		Short:   "Print wrapped successors of a version",
		Long:    "Print the next version(s) after v, wrapping from 65535 to 0.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execNext(o, cfg, fs, args)
		},
	}
}

func execNext(o *IO, cfg *config.Config, fs *flag.FlagSet, args []string) error {
	steps, _ := fs.GetInt("steps")
	if steps < 1 || steps > maxSteps {
		return fmt.Errorf("%w: %d", ErrInvalidSteps, steps)
	}

	v, err := parseVersion(args[0])
	if err != nil {
		return err
	}

	for range steps {
		v = v.Next()
		o.Println(formatVersion(uint16(v), cfg.Base))
	}

	return nil
}
