package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacwords.build/cli/config"
	"pacwords.build/cli/forward"
	"pacwords.build/cli/help"
	"pacwords.build/cli/log"
)

// dryRun runs the CLI with --pw_dry_run and returns what it printed.
func dryRun(t *testing.T, args ...string) (int, string) {
	t.Helper()
	var out bytes.Buffer
	prevForward, prevHelp, prevCfg := forward.Stdout, help.Stdout, config.Get()
	forward.Stdout, help.Stdout = &out, &out
	t.Cleanup(func() {
		forward.Stdout, help.Stdout = prevForward, prevHelp
		config.Set(prevCfg)
		log.Configure("")
	})
	t.Setenv("PACWORDS_SUDO", "false")

	exitCode, err := run(append([]string{"--pw_dry_run", "--pw_config=" + filepath.Join(t.TempDir(), "none.toml")}, args...))
	require.NoError(t, err)
	return exitCode, out.String()
}

func TestRunTranslatesEnglishCommands(t *testing.T) {
	for _, tc := range []struct {
		args []string
		want string
	}{
		{[]string{"install", "firefox"}, "pacman -S firefox\n"},
		{[]string{"INSTALL", "Firefox"}, "pacman -S Firefox\n"},
		{[]string{"reinstall", "vim"}, "pacman -S --needed vim\n"},
		{[]string{"-Syu"}, "pacman -Syu\n"},
		{[]string{"-h"}, "pacman -h\n"},
		{[]string{"frobnicate", "x"}, "pacman frobnicate x\n"},
		{[]string{"search", "--pw_verbose", "vim"}, "pacman -Ss vim\n"},
		{[]string{"mirror-update", "--", "--pw_verbose"}, "pacman -Syy -- --pw_verbose\n"},
	} {
		exitCode, out := dryRun(t, tc.args...)
		assert.Equal(t, 0, exitCode, tc.args)
		assert.Equal(t, tc.want, out, tc.args)
	}
}

func TestRunWithoutArgsPrintsUsage(t *testing.T) {
	exitCode, out := dryRun(t)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, out, "usage: pacwords")
}

func TestRunBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("pacman = ["), 0644))
	prev := config.Get()
	t.Cleanup(func() { config.Set(prev) })

	exitCode, err := run([]string{"--pw_config=" + path, "install", "vim"})
	assert.Error(t, err)
	assert.Equal(t, 1, exitCode)
}

func TestRunForwardsExitCode(t *testing.T) {
	bin := filepath.Join(t.TempDir(), "pacman")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\n[ \"$1\" = \"-Qi\" ] && exit 0\nexit 4\n"), 0755))
	t.Setenv("PACWORDS_PACMAN", bin)
	t.Setenv("PACWORDS_SUDO", "false")
	t.Setenv("PACWORDS_CAPTURE", "false")
	prev := config.Get()
	t.Cleanup(func() { config.Set(prev) })

	cfgPath := "--pw_config=" + filepath.Join(t.TempDir(), "none.toml")

	exitCode, err := run([]string{cfgPath, "depends", "glibc"})
	require.NoError(t, err)
	assert.Equal(t, 0, exitCode)

	exitCode, err = run([]string{cfgPath, "remove", "glibc"})
	require.NoError(t, err)
	assert.Equal(t, 4, exitCode)
}

func TestHandleGlobalCliFlags(t *testing.T) {
	t.Cleanup(func() { log.Configure("") })

	args, flags := handleGlobalCliFlags([]string{"--pw_verbose", "install", "--pw_config=/etc/pw.toml", "vim", "--", "--pw_dry_run"})
	assert.Equal(t, []string{"install", "vim", "--", "--pw_dry_run"}, args)
	assert.Equal(t, "/etc/pw.toml", flags[configFlag])
	assert.Equal(t, "", flags[dryRunFlag])
	assert.True(t, log.Verbose())

	_, flags = handleGlobalCliFlags([]string{"install"})
	assert.Equal(t, config.DefaultPath(), flags[configFlag])
}
