package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/slotkit/internal/config"
	"github.com/calvinalkan/slotkit/internal/fs"
)

// recordingFS records atomic writes before passing them to the real filesystem.
type recordingFS struct {
	fs.FS
	writes []string
}

func (r *recordingFS) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	r.writes = append(r.writes, path)

	return r.FS.WriteFileAtomic(path, data, perm)
}

func newTestShell(historyFile string) (*shell, *recordingFS, *bytes.Buffer) {
	var out, errOut bytes.Buffer

	fsys := &recordingFS{FS: fs.NewReal()}

	return &shell{
		o:   NewIO(&out, &errOut),
		cfg: &config.Config{Base: config.BaseDec, HistoryFile: &historyFile},
		fs:  fsys,
	}, fsys, &errOut
}

// historyOf returns the lines held by a liner state.
func historyOf(t *testing.T, line *liner.State) string {
	t.Helper()

	var buf bytes.Buffer

	_, err := line.WriteHistory(&buf)
	require.NoError(t, err, "WriteHistory")

	return buf.String()
}

// liner touches the process terminal, so these tests do not run in parallel.

func Test_Shell_Saves_And_Loads_History_When_History_File_Set(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "history")
	sh, fsys, errOut := newTestShell(path)

	first := liner.NewLiner()
	first.AppendHistory("older 1 2")
	first.AppendHistory("next 65535 -n 2")
	sh.saveHistory(first)
	require.NoError(t, first.Close(), "close first liner")

	data, err := os.ReadFile(path)
	require.NoError(t, err, "history file should exist")
	assert.Equal(t, "older 1 2\nnext 65535 -n 2\n", string(data), "saved history")
	assert.Equal(t, []string{path}, fsys.writes, "one atomic write")

	info, err := os.Stat(path)
	require.NoError(t, err, "stat history")
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "history is private")

	second := liner.NewLiner()
	defer func() { _ = second.Close() }()

	sh.loadHistory(second)

	diff := cmp.Diff(string(data), historyOf(t, second))
	assert.Empty(t, diff, "loaded history mismatch")

	assert.Equal(t, 0, sh.o.Finish(), "no warnings, stderr: %s", errOut.String())
}

func Test_Shell_Skips_History_When_History_File_Empty(t *testing.T) {
	sh, fsys, _ := newTestShell("")

	line := liner.NewLiner()
	defer func() { _ = line.Close() }()

	line.AppendHistory("distance 1 2")
	sh.saveHistory(line)
	sh.loadHistory(line)

	assert.Empty(t, fsys.writes, "no history write")
	assert.Equal(t, "distance 1 2\n", historyOf(t, line), "history not reloaded")
	assert.Equal(t, 0, sh.o.Finish(), "no warnings")
}

func Test_Shell_Warns_When_History_Cannot_Be_Saved(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600), "setup")

	sh, _, errOut := newTestShell(filepath.Join(blocker, "history"))

	line := liner.NewLiner()
	defer func() { _ = line.Close() }()

	line.AppendHistory("older 1 2")
	sh.saveHistory(line)

	assert.Equal(t, 1, sh.o.Finish(), "exit code")
	assert.Contains(t, errOut.String(), "warning: cannot save shell history", "warning")
}

func Test_Shell_Completes_Command_Names_When_Prefix_Given(t *testing.T) {
	t.Parallel()

	sh, _, _ := newTestShell("")

	testCases := []struct {
		prefix string
		want   []string
	}{
		{prefix: "ne", want: []string{"next"}},
		{prefix: "d", want: []string{"distance"}},
		{prefix: "q", want: []string{"quit"}},
		{prefix: "", want: []string{"distance", "exit", "help", "next", "older", "quit"}},
		{prefix: "verify", want: nil},
	}

	for _, testCase := range testCases {
		diff := cmp.Diff(testCase.want, sh.complete(testCase.prefix))
		assert.Empty(t, diff, "complete(%q)", testCase.prefix)
	}
}
