// Command slotver inspects and verifies 16-bit wraparound version counters.
//
// Run "slotver --help" for the command list.
package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/calvinalkan/slotkit/internal/cli"
)

func main() {
	os.Exit(run())
}

// run is split from main so the deferred signal.Stop runs before os.Exit.
func run() int {
	interrupts := make(chan os.Signal, 1)

	signal.Notify(interrupts, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupts)

	return cli.Run(os.Stdin, os.Stdout, os.Stderr, os.Args, environMap(os.Environ()), interrupts)
}

func environMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))

	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}

	return env
}
