package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/slotkit/internal/cli"
)

func Test_Bare_Command_Prints_Usage_When_Invoked(t *testing.T) {
	t.Parallel()

	// Call Run directly without test helper (which adds --cwd)
	var stdout, stderr bytes.Buffer

	exitCode := cli.Run(nil, &stdout, &stderr, []string{"slotver"}, nil, nil)

	assert.Equal(t, 0, exitCode, "exit code")
	assert.Empty(t, stderr.String(), "stderr")

	cli.AssertContains(t, stdout.String(), "slotver - wraparound version counters")
	cli.AssertContains(t, stdout.String(), "--cwd")
	cli.AssertContains(t, stdout.String(), "older <a> <b>")
	cli.AssertContains(t, stdout.String(), "verify [flags]")
	cli.AssertContains(t, stdout.String(), "print-config")
}

func Test_Help_Flag_Prints_Usage_When_Before_Command(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("--help", "older", "1", "2")

	cli.AssertContains(t, stdout, "Global flags:")
	cli.AssertNotContains(t, stdout, "distance=")
}

func Test_Invalid_Global_Flag_Fails_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("--invalid-flag", "older", "1", "2")

	cli.AssertContains(t, stderr, "unknown flag")
	cli.AssertContains(t, stderr, "--invalid-flag")
	cli.AssertContains(t, stderr, "Global flags:")
	cli.AssertContains(t, stderr, "--base")
}

func Test_Global_Flag_Fails_When_Value_Missing(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	exitCode := cli.Run(nil, &stdout, &stderr, []string{"slotver", "--config"}, nil, nil)

	assert.Equal(t, 1, exitCode, "exit code")
	assert.Empty(t, stdout.String(), "stdout")
	cli.AssertContains(t, stderr.String(), "flag requires an argument: --config")
}

func Test_Unknown_Command_Fails_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("nope")

	cli.AssertContains(t, stderr, "unknown command: nope")
	cli.AssertContains(t, stderr, "Commands:")
}

func Test_Command_Help_Prints_Long_Description_When_Help_Flag(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("next", "--help")

	cli.AssertContains(t, stdout, "Usage: slotver next <v> [flags]")
	cli.AssertContains(t, stdout, "wrapping from 65535 to 0")
	cli.AssertContains(t, stdout, "--steps")
}

func Test_Command_Flag_Error_Prints_Usage_When_Unknown_Flag(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("next", "--bogus", "1")

	cli.AssertContains(t, stderr, "error: unknown flag: --bogus")
	cli.AssertContains(t, stderr, "Usage: slotver next <v> [flags]")
}

func Test_Command_Fails_When_Extra_Arguments_Given(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	cli.AssertContains(t, c.MustFail("build-info", "extra"), "too many arguments: extra")
	cli.AssertContains(t, c.MustFail("verify", "a", "b"), "too many arguments: a b")
}

func Test_Usage_Aligns_Descriptions_When_Listing_Commands(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("--help")

	summaries := map[string]string{
		"older <a> <b>":  "Report whether version a is older than b",
		"verify [flags]": "Exhaustively check the version ordering",
		"build-info":     "Show how this binary was built",
	}

	columns := map[int]bool{}

	for _, line := range strings.Split(stdout, "\n") {
		for usage, short := range summaries {
			if strings.HasPrefix(line, "  "+usage+" ") {
				columns[strings.Index(line, short)] = true
			}
		}
	}

	require.Len(t, columns, 1, "descriptions should start in one column:\n%s", stdout)

	for col := range columns {
		// Two spaces indent, the widest usage, then a two space gap.
		assert.Equal(t, 2+len("next <v> [flags]")+2, col, "description column")
	}
}

func Test_Config_Error_Fails_When_Project_Config_Invalid(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile(".slotver.json", `{"base": "octal"}`)

	stderr := c.MustFail("older", "1", "2")

	cli.AssertContains(t, stderr, "invalid config file")
	cli.AssertContains(t, stderr, "octal")
}

func Test_Base_Flag_Fails_When_Unknown(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("--base", "bin", "older", "1", "2")

	cli.AssertContains(t, stderr, `base must be "dec" or "hex"`)
}
