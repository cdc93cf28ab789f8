package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/slotkit/internal/config"
)

// DistanceCmd returns the distance command.
func DistanceCmd(cfg *config.Config) *Command {
	return &Command{
		Flags:   flag.NewFlagSet("distance", flag.ContinueOnError),
		Usage:   "distance <a> <b>",
		MinArgs: 2,
		MaxArgs: 2,
		Short:   "Show forward distance and ordering of a relative to b",
		Long: `Show the forward distance a-b (mod 65536) and how a relates to b.

The classification is "equal", "older" or "newer". At exactly half the
range (32768) both versions count as older than each other.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execDistance(o, cfg, args)
		},
	}
}

func execDistance(o *IO, cfg *config.Config, args []string) error {
	a, b, err := parseVersionPair(args)
	if err != nil {
		return err
	}

	class := "newer"

	switch {
	case a == b:
		class = "equal"
	case a.OlderThan(b):
		class = "older"
	}

	o.Println(formatVersion(a.Distance(b), cfg.Base), class)

	return nil
}
