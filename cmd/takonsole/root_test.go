package takonsole

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tikotako/takonsole/pkg/console"
	"github.com/tikotako/takonsole/pkg/errors"
	"github.com/tikotako/takonsole/pkg/logging"
)

const (
	fgLightGray = "\x1b[38;2;211;211;211m"
	fgCyan      = "\x1b[38;2;0;255;255m"
	fgOrange    = "\x1b[38;2;255;165;0m"
)

// run executes the CLI with an isolated config and state directory and
// returns what was written to stdout
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("TAKONSOLE_CONFIG_DIR", t.TempDir())
	t.Setenv("TAKONSOLE_STATE_DIR", t.TempDir())
	t.Setenv("TAKONSOLE_LOGGING__DISABLE_FILE", "true")

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()

	assert.Nil(t, console.Current(), "console must be released after every command")
	return out.String(), err
}

func TestRoot_NoCommand(t *testing.T) {
	_, err := run(t, "")
	assert.EqualError(t, err, MsgNoCommand)
}

func TestLevelCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"info", "hello", "there"}, fgCyan + "hello there" + fgLightGray + "\n"},
		{[]string{"warn", "careful"}, fgOrange + "careful" + fgLightGray + "\n"},
		{[]string{"error", "boom"}, "\x1b[38;2;205;92;92mboom" + fgLightGray + "\n"},
		{[]string{"normal", "plain"}, "\x1b[38;2;211;211;211mplain\n"},
	}

	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			out, err := run(t, "", append([]string{"--no-timestamp"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestLevelCommand_Stdin(t *testing.T) {
	out, err := run(t, "one\ntwo\n", "--no-timestamp", "info", "--prefix", "> ")
	require.NoError(t, err)
	assert.Equal(t, fgCyan+"> one"+fgLightGray+"\n"+fgCyan+"> two"+fgLightGray+"\n", out)
}

func TestLevelCommand_Timestamp(t *testing.T) {
	out, err := run(t, "", "--set", "timestamp.format=2006", "info", "stamped")
	require.NoError(t, err)
	assert.Regexp(t, `^\x1b\[38;2;112;128;144m\[\d{4}\] \x1b\[38;2;211;211;211m`, out)
	assert.Contains(t, out, fgCyan+"stamped")
}

func TestLevelCommand_PaletteOverride(t *testing.T) {
	out, err := run(t, "", "--no-timestamp", "--set", "palette.info=#010203", "info", "x")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[38;2;1;2;3mx"+fgLightGray+"\n", out)
}

func TestWriteCommand(t *testing.T) {
	out, err := run(t, "", "write", "--style", "bold", "--fg", "red", "X")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[1m\x1b[38;2;255;0;0mX"+fgLightGray+"\x1b[22m\n", out)

	out, err = run(t, "", "write", "-n", "--bg", "0,0,0", "Y")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[48;2;0;0;0mY", out, "background equal to the ambient one is not restored")
}

func TestWriteCommand_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"style", []string{"write", "--style", "normal|bold", "x"}},
		{"fg", []string{"write", "--fg", "no-such-color", "x"}},
		{"bg", []string{"write", "--bg", "#12", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "", tt.args...)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)
			assert.Empty(t, out)
		})
	}
}

func TestDemoCommand(t *testing.T) {
	out, err := run(t, "", "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "timestamped warning text")
	assert.Contains(t, out, "DONE")
	assert.Equal(t, 3, strings.Count(out, "timestamped error text"))
}

func TestClearCommand(t *testing.T) {
	out, err := run(t, "", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[2J")

	out, err = run(t, "", "clear", "--background", "blue")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "\x1b[48;2;0;0;255m"), "got %q", out)
	assert.Contains(t, out, "\x1b[2J")
}

func TestPaletteCommand(t *testing.T) {
	out, err := run(t, "", "palette")
	require.NoError(t, err)
	assert.Contains(t, out, "#00ffff")
	assert.Contains(t, out, "\x1b[48;2;255;165;0m")
	assert.Equal(t, 6, strings.Count(out, "\n"))

	out, err = run(t, "", "palette", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "blueviolet")
}

func TestConfigCommand(t *testing.T) {
	out, err := run(t, "", "--set", "console.title=demo", "config", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "title: demo")

	out, err = run(t, "", "config")
	require.NoError(t, err)
	assert.Contains(t, out, "[palette]")

	out, err = run(t, "", "config", "--defaults")
	require.NoError(t, err)
	assert.Contains(t, out, "TAKONSOLE_PALETTE__INFO")

	_, err = run(t, "", "config", "--format", "ini")
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[palette]\nwarning = \"green\"\n"), 0644))

	out, err := run(t, "", "--no-timestamp", "--config", path, "warn", "w")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[38;2;0;128;0mw"+fgLightGray+"\n", out)

	_, err = run(t, "", "--config", filepath.Join(t.TempDir(), "missing.toml"), "info", "x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "takonsole version dev")
}

func TestCompletionCommand(t *testing.T) {
	out, err := run(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "takonsole")
}

func TestManCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "man1")
	out, err := run(t, "", "man", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, dir)

	root, err := os.ReadFile(filepath.Join(dir, "takonsole.1"))
	require.NoError(t, err)
	assert.Contains(t, string(root), "TAKONSOLE")

	write, err := os.ReadFile(filepath.Join(dir, "takonsole-write.1"))
	require.NoError(t, err)
	assert.Contains(t, string(write), "explicit style and colors")
}

func TestLevelCommand_EmptyStdin(t *testing.T) {
	_, err := run(t, "", "--no-timestamp", "info")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), MsgNoText)
}

func TestLevelCommand_LongStdinLine(t *testing.T) {
	line := strings.Repeat("x", 200*1024)
	out, err := run(t, line+"\n", "--no-timestamp", "normal")
	require.NoError(t, err)
	assert.Equal(t, fgLightGray+line+"\n", out)
}

func TestCommandsAreLogged(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "cli.log")
	t.Cleanup(logging.Close)

	_, err := run(t, "", "-vv", "--no-timestamp",
		"--set", "logging.disable_file=false",
		"--set", "logging.file="+logPath,
		"info", "x")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	log := string(data)
	assert.Contains(t, log, `"command":"takonsole info"`)
	assert.Contains(t, log, "Console ready")
	assert.Contains(t, log, `"operation":"takonsole info"`)
	assert.Contains(t, log, `"duration"`)
}

func TestHelpTopics(t *testing.T) {
	out, err := run(t, "", "help", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "configuration")
	assert.Contains(t, out, "escape-codes")
	assert.Contains(t, out, "--style")

	out, err = run(t, "", "help", "escape-codes")
	require.NoError(t, err)
	assert.Contains(t, out, "Escape codes")
}
