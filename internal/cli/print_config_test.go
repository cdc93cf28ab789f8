package cli_test

import (
	"path/filepath"
	"testing"

	"github.com/calvinalkan/slotkit/internal/cli"
)

func Test_PrintConfig_Shows_Defaults_When_No_Config_Files(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("print-config")

	cli.AssertContains(t, stdout, `"base": "dec"`)
	cli.AssertContains(t, stdout, `"workers": 0`)
	cli.AssertContains(t, stdout, filepath.Join(c.Env["HOME"], ".slotver_history"))
	cli.AssertContains(t, stdout, "effective_cwd="+c.Dir)
	cli.AssertContains(t, stdout, "(defaults only)")
}

func Test_PrintConfig_Shows_Sources_When_Config_Files_Loaded(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile("home/.config/slotver/config.json", `{"workers": 3}`)
	c.WriteFile(".slotver.json", `{"base": "hex"}`)

	stdout := c.MustRun("print-config")

	cli.AssertContains(t, stdout, `"base": "hex"`)
	cli.AssertContains(t, stdout, `"workers": 3`)
	cli.AssertContains(t, stdout, "global_config="+filepath.Join(c.Dir, "home", ".config", "slotver", "config.json"))
	cli.AssertContains(t, stdout, "project_config="+filepath.Join(c.Dir, ".slotver.json"))
}

func Test_BuildInfo_Shows_Check_Mode_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("build-info")

	cli.AssertContains(t, stdout, "checks=")
	cli.AssertContains(t, stdout, "go=go")
}
