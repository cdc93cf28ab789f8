package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/slotkit/internal/config"
	"github.com/calvinalkan/slotkit/pkg/slotkit"
)

// OlderCmd returns the older command.
func OlderCmd(cfg *config.Config) *Command {
	return &Command{
		Flags:   flag.NewFlagSet("older", flag.ContinueOnError),
		Usage:   "older <a> <b>",
		MinArgs: 2,
		MaxArgs: 2,
		Short:   "Report whether version a is older than b",
		Long: `Report whether version a is older than version b under wraparound ordering.

a is older than b when the forward distance a-b (mod 65536) is at least
32768. Versions are decimal or 0x-prefixed hex in 0..65535.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execOlder(o, cfg, args)
		},
	}
}

func execOlder(o *IO, cfg *config.Config, args []string) error {
	a, b, err := parseVersionPair(args)
	if err != nil {
		return err
	}

	older := slotkit.IsOlderVersion(uint16(a), uint16(b))
	o.Printf("%t distance=%s\n", older, formatVersion(a.Distance(b), cfg.Base))

	return nil
}
