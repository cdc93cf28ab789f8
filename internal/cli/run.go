// Package cli implements the slotver command line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/calvinalkan/slotkit/internal/config"
	"github.com/calvinalkan/slotkit/internal/fs"
)

const (
	minArgs      = 2
	consumedOne  = 1
	consumedTwo  = 2
	consumedNone = 0
	helpFlag     = "--help"
)

// Run is the main entry point. Returns exit code.
//
// A signal received on sigCh cancels the running command; sigCh may be nil.
func Run(stdin io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal) int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if sigCh != nil {
		go func() {
			select {
			case <-sigCh:
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	// Commands capture cfg by pointer; it is filled in before any Exec runs.
	var cfg config.Config

	fsys := fs.NewReal()
	commands := allCommands(&cfg, fsys, stdin)

	if len(args) < minArgs {
		printUsage(out, commands)

		return 0
	}

	flags, err := parseGlobalFlags(args[1:])
	if err != nil {
		fprintln(errOut, "error:", err)
		fprintln(errOut)
		printUsage(errOut, commands)

		return 1
	}

	if len(flags.remaining) == 0 || flags.remaining[0] == helpFlag {
		printUsage(out, commands)

		return 0
	}

	workDir, err := resolveWorkDir(flags.workDir)
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	cfg, err = config.Load(config.LoadInput{
		WorkDir:      workDir,
		ConfigPath:   flags.configPath,
		BaseOverride: flags.base,
		Env:          env,
		FS:           fsys,
	})
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	name := flags.remaining[0]

	var cmd *Command

	for _, c := range commands {
		if c.Name() == name {
			cmd = c

			break
		}
	}

	if cmd == nil {
		fprintln(errOut, "error:", fmt.Errorf("%w: %s", ErrUnknownCommand, name))
		fprintln(errOut)
		printUsage(errOut, commands)

		return 1
	}

	o := NewIO(out, errOut)

	if code := cmd.Run(ctx, o, flags.remaining[1:]); code != 0 {
		return code
	}

	return o.Finish()
}

func allCommands(cfg *config.Config, fsys fs.FS, stdin io.Reader) []*Command {
	return []*Command{
		OlderCmd(cfg),
		DistanceCmd(cfg),
		NextCmd(cfg),
		VerifyCmd(cfg, fsys),
		ShellCmd(cfg, fsys, stdin),
		BuildInfoCmd(),
		PrintConfigCmd(cfg),
	}
}

func resolveWorkDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("cannot get working directory: %w", err)
		}

		return wd, nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("cannot resolve working directory %s: %w", dir, err)
	}

	return abs, nil
}

type globalFlags struct {
	workDir    string
	configPath string
	base       string
	remaining  []string
}

func parseGlobalFlags(args []string) (globalFlags, error) {
	var flags globalFlags

	idx := 0
	for idx < len(args) {
		consumed, err := parseFlag(args, idx, &flags)
		if err != nil {
			return globalFlags{}, err
		}

		if consumed == 0 {
			// Not a flag, this is the command
			flags.remaining = args[idx:]

			break
		}

		idx += consumed
	}

	return flags, nil
}

// parseFlag tries to parse a flag at args[idx]. Returns number of args consumed (0 if not a flag).
func parseFlag(args []string, idx int, flags *globalFlags) (int, error) {
	arg := args[idx]

	// -C/--cwd flag (work directory)
	if arg == "-C" || arg == "--cwd" {
		if idx+1 >= len(args) {
			return consumedNone, fmt.Errorf("%w: %s", ErrFlagRequiresArg, arg)
		}

		flags.workDir = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "-C"); ok {
		flags.workDir = after

		return consumedOne, nil
	}

	if after, ok := strings.CutPrefix(arg, "--cwd="); ok {
		flags.workDir = after

		return consumedOne, nil
	}

	// -c/--config flag
	if arg == "-c" || arg == "--config" {
		if idx+1 >= len(args) {
			return consumedNone, fmt.Errorf("%w: %s", ErrFlagRequiresArg, arg)
		}

		flags.configPath = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "--config="); ok {
		flags.configPath = after

		return consumedOne, nil
	}

	// --base flag
	if arg == "--base" {
		if idx+1 >= len(args) {
			return consumedNone, fmt.Errorf("%w: %s", ErrFlagRequiresArg, arg)
		}

		flags.base = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "--base="); ok {
		flags.base = after

		return consumedOne, nil
	}

	// -h/--help flags
	if arg == "-h" || arg == helpFlag {
		flags.remaining = []string{helpFlag}

		return len(args) - idx, nil
	}

	// Unknown flag
	if strings.HasPrefix(arg, "-") && arg != "-" {
		return consumedNone, fmt.Errorf("%w: %s", ErrUnknownFlag, arg)
	}

	// Not a flag
	return consumedNone, nil
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func printUsage(w io.Writer, commands []*Command) {
	fprintln(w, `slotver - wraparound version counters

Usage: slotver [flags] <command> [args]

Global flags:
  -C, --cwd <dir>       Run as if started in <dir>
  -c, --config <file>   Use specified config file
      --base <dec|hex>  Print counters in decimal or hex
  -h, --help            Show help

Commands:`)

	width := usageWidth(commands)
	for _, c := range commands {
		fprintln(w, c.HelpLine(width))
	}

	fprintln(w)
	fprintln(w, `Run "slotver <command> --help" for details.`)
}
