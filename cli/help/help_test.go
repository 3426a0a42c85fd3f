package help

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacwords.build/cli/command/register"
	"pacwords.build/cli/translate"
)

func captureOutput(t *testing.T) (stdout, stderr *bytes.Buffer) {
	t.Helper()
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	prevOut, prevErr := Stdout, Stderr
	Stdout, Stderr = stdout, stderr
	t.Cleanup(func() { Stdout, Stderr = prevOut, prevErr })
	return stdout, stderr
}

func TestHandleHelpIgnoresOtherArgs(t *testing.T) {
	register.Register()
	tr := translate.New()
	stdout, _ := captureOutput(t)
	for _, args := range [][]string{
		{"install", "vim"},
		{"-h"},
		{"--help"},
		{"-S", "help"},
	} {
		exitCode, err := HandleHelp(args, tr)
		require.NoError(t, err)
		assert.Equal(t, -1, exitCode, args)
	}
	assert.Empty(t, stdout.String())
}

func TestHandleHelpUsage(t *testing.T) {
	register.Register()
	tr := translate.New()
	for _, args := range [][]string{nil, {"help"}, {"--pw_help"}} {
		stdout, _ := captureOutput(t)
		exitCode, err := HandleHelp(args, tr)
		require.NoError(t, err)
		assert.Equal(t, 0, exitCode)

		out := stdout.String()
		assert.Contains(t, out, "usage: pacwords")
		assert.Contains(t, out, "version")
		assert.Contains(t, out, "mirror-update")
		assert.Contains(t, out, "-Sc --print")
	}
}

func TestHandleHelpForCommand(t *testing.T) {
	register.Register()
	tr := translate.New()

	stdout, _ := captureOutput(t)
	exitCode, err := HandleHelp([]string{"help", "Reinstall"}, tr)
	require.NoError(t, err)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "pacman -S --needed [operands...]")

	stdout, _ = captureOutput(t)
	exitCode, err = HandleHelp([]string{"help", "version"}, tr)
	require.NoError(t, err)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "usage: pacwords version")

	_, stderr := captureOutput(t)
	exitCode, err = HandleHelp([]string{"help", "frobnicate"}, tr)
	require.NoError(t, err)
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), `unknown command "frobnicate"`)
}

func TestColumns(t *testing.T) {
	entries := [][2]string{
		{"install", "-S"},
		{"reinstall", "-S --needed"},
		{"search", "-Ss"},
	}

	narrow := columns(entries, 10)
	assert.Equal(t, 3, strings.Count(narrow, "\n"))

	wide := columns(entries, 200)
	assert.Equal(t, 1, strings.Count(wide, "\n"))
	assert.Contains(t, wide, "reinstall -S --needed")

	for _, line := range strings.Split(strings.TrimSuffix(columns(entries, 60), "\n"), "\n") {
		assert.LessOrEqual(t, len(line), 60)
		assert.Equal(t, line, strings.TrimRight(line, " "))
	}
}
