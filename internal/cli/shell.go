package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/slotkit/internal/config"
	"github.com/calvinalkan/slotkit/internal/fs"
)

const shellPrompt = "slotver> "

// ShellCmd returns the shell command.
func ShellCmd(cfg *config.Config, fsys fs.FS, stdin io.Reader) *Command {
	return &Command{
		Flags: flag.NewFlagSet("shell", flag.ContinueOnError),
		Usage: "shell",
		Short: "Evaluate version commands interactively",
		Long: `Start an interactive shell accepting older, distance, next, help and exit.

When stdin is not a terminal, commands are read one per line and any
failing line makes the exit code non-zero.`,
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			sh := &shell{o: o, cfg: cfg, fs: fsys}

			if isTerminal(stdin) {
				return sh.runInteractive(ctx)
			}

			return sh.runLines(ctx, stdin)
		},
	}
}

type shell struct {
	o        *IO
	cfg      *config.Config
	fs       fs.FS
	failures int
}

// commands builds fresh commands per line so flag values never leak between lines.
func (s *shell) commands() []*Command {
	return []*Command{
		OlderCmd(s.cfg),
		DistanceCmd(s.cfg),
		NextCmd(s.cfg),
	}
}

func (s *shell) runInteractive(ctx context.Context) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(s.complete)

	s.loadHistory(line)
	defer s.saveHistory(line)

	s.o.Println("slotver shell. Type 'help' for commands, 'exit' to quit.")

	for ctx.Err() == nil {
		input, err := line.Prompt(shellPrompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return nil
			}

			return fmt.Errorf("reading input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		line.AppendHistory(input)

		if s.exec(ctx, input) {
			return nil
		}
	}

	return nil
}

func (s *shell) runLines(ctx context.Context, r io.Reader) error {
	if r == nil {
		return nil
	}

	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" || strings.HasPrefix(input, "#") {
			continue
		}

		if s.exec(ctx, input) {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	if s.failures > 0 {
		s.o.Warn(fmt.Sprintf("%d shell command(s) failed", s.failures), "see errors above")
	}

	return nil
}

// exec runs one shell line and reports whether the shell should exit.
func (s *shell) exec(ctx context.Context, input string) bool {
	fields := strings.Fields(input)
	name, args := fields[0], fields[1:]

	switch name {
	case "exit", "quit", "q":
		return true
	case "help", "?":
		s.printHelp()

		return false
	}

	commands := s.commands()

	idx := slices.IndexFunc(commands, func(c *Command) bool { return c.Name() == name })
	if idx < 0 {
		s.o.ErrPrintln("error:", fmt.Errorf("%w: %s", ErrUnknownCommand, name))
		s.failures++

		return false
	}

	if code := commands[idx].Run(ctx, s.o, args); code != 0 {
		s.failures++
	}

	return false
}

func (s *shell) printHelp() {
	const exitLabel = "exit / quit / q"

	commands := s.commands()
	width := usageWidth(commands, exitLabel)

	s.o.Println("Commands:")

	for _, c := range commands {
		s.o.Println(c.HelpLine(width))
	}

	s.o.Println(helpRow(width, "help", "Show this help"))
	s.o.Println(helpRow(width, exitLabel, "Leave the shell"))
}

func (s *shell) complete(input string) []string {
	names := []string{"help", "exit", "quit"}
	for _, c := range s.commands() {
		names = append(names, c.Name())
	}

	var out []string

	for _, n := range names {
		if strings.HasPrefix(n, input) {
			out = append(out, n)
		}
	}

	slices.Sort(out)

	return out
}

func (s *shell) loadHistory(line *liner.State) {
	path := s.cfg.History()
	if path == "" {
		return
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		return
	}

	_, _ = line.ReadHistory(bytes.NewReader(data))
}

func (s *shell) saveHistory(line *liner.State) {
	path := s.cfg.History()
	if path == "" {
		return
	}

	var buf bytes.Buffer

	_, err := line.WriteHistory(&buf)
	if err == nil {
		err = s.fs.MkdirAll(filepath.Dir(path), 0o750)
	}

	if err == nil {
		err = s.fs.WriteFileAtomic(path, buf.Bytes(), 0o600)
	}

	if err != nil {
		s.o.Warn("cannot save shell history to "+path, err.Error())
	}
}
