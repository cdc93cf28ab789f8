package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
)

// Command is one slotver subcommand. Run and the shell share it, so a
// Command is built fresh per invocation and never reused after Run.
type Command struct {
	// Flags holds the command's own flags. Global flags are parsed by Run
	// before the command is selected.
	Flags *flag.FlagSet

	// Usage follows "slotver" in help output and starts with the command
	// name, e.g. "older <a> <b>" or "next <v> [flags]".
	Usage string

	// Short is the one-line summary in command listings. Long, when set,
	// replaces it in "slotver <cmd> --help".
	Short string
	Long  string

	// MinArgs and MaxArgs bound the positional arguments left after flag
	// parsing. Exec is only called when the count is within bounds.
	MinArgs int
	MaxArgs int

	Exec func(ctx context.Context, o *IO, args []string) error
}

// Name returns the command name (first word of Usage).
func (c *Command) Name() string {
	name, _, _ := strings.Cut(c.Usage, " ")
	return name
}

// HelpLine renders the command for a listing whose usage column is width
// runes wide.
func (c *Command) HelpLine(width int) string {
	return helpRow(width, c.Usage, c.Short)
}

// PrintHelp prints the full help output for "slotver <cmd> --help".
func (c *Command) PrintHelp(o *IO) {
	o.Println("Usage: slotver", c.Usage)
	o.Println()

	if c.Long != "" {
		o.Println(c.Long)
	} else {
		o.Println(c.Short)
	}

	if c.Flags == nil || !c.Flags.HasFlags() {
		return
	}

	o.Println()
	o.Println("Flags:")
	o.Printf("%s", c.Flags.FlagUsages())
}

// Run parses flags, checks the argument count and executes the command.
// Errors are printed to stderr and turned into exit code 1.
func (c *Command) Run(ctx context.Context, o *IO, args []string) int {
	c.Flags.SetOutput(&strings.Builder{}) // pflag's own messages are discarded

	err := c.Flags.Parse(args)

	switch {
	case errors.Is(err, flag.ErrHelp):
		c.PrintHelp(o)

		return 0
	case err != nil:
		o.ErrPrintln("error:", err)
		o.ErrPrintln()
		o.ErrPrintln("Usage: slotver", c.Usage)

		return 1
	}

	rest := c.Flags.Args()

	err = c.checkArgs(rest)
	if err == nil {
		err = c.Exec(ctx, o, rest)
	}

	if err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	return 0
}

func (c *Command) checkArgs(args []string) error {
	switch {
	case len(args) < c.MinArgs:
		return fmt.Errorf("%w (usage: slotver %s)", ErrMissingArgs, c.Usage)
	case len(args) > c.MaxArgs:
		return fmt.Errorf("%w: %s", ErrTooManyArgs, strings.Join(args[c.MaxArgs:], " "))
	default:
		return nil
	}
}

// usageWidth returns the usage column width that fits every command and any
// extra labels listed alongside them.
func usageWidth(commands []*Command, extra ...string) int {
	width := 0

	for _, c := range commands {
		width = max(width, len(c.Usage))
	}

	for _, label := range extra {
		width = max(width, len(label))
	}

	return width
}

func helpRow(width int, label, desc string) string {
	return fmt.Sprintf("  %-*s  %s", width, label, desc)
}
