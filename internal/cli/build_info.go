package cli

import (
	"context"
	"runtime"
	"runtime/debug"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/slotkit/pkg/slotkit"
)

// BuildInfoCmd returns the build-info command.
func BuildInfoCmd() *Command {
	return &Command{
		Flags: flag.NewFlagSet("build-info", flag.ContinueOnError),
		Usage: "build-info",
		Short: "Show how this binary was built",
		Long: `Show whether trusted extraction checks are compiled in.

Checks are on unless the binary was built with -tags slotkit_unchecked,
and always on in -race builds.`,
		Exec: func(_ context.Context, o *IO, _ []string) error {
			execBuildInfo(o)

			return nil
		},
	}
}

func execBuildInfo(o *IO) {
	checks := "disabled"
	if slotkit.ChecksEnabled() {
		checks = "enabled"
	}

	o.Println("checks=" + checks)
	o.Println("go=" + runtime.Version())

	if info, ok := debug.ReadBuildInfo(); ok {
		o.Println("module=" + info.Main.Path)

		for _, s := range info.Settings {
			if s.Key == "-tags" || s.Key == "-race" {
				o.Println(s.Key[1:] + "=" + s.Value)
			}
		}
	}
}
