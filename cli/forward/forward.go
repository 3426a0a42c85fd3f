// Package forward runs translated argument lists through pacman the way
// the configuration asks for: printed only, captured, or run directly.
package forward

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"pacwords.build/cli/config"
	"pacwords.build/cli/log"
	"pacwords.build/cli/pacman"
	"pacwords.build/cli/picker"
)

var (
	Stdout io.Writer = os.Stdout

	showPicker    = picker.ShowPicker
	isInteractive = func() bool {
		return pacman.IsTTY(os.Stdin) && pacman.IsTTY(os.Stdout)
	}
)

// Forward passes args, already in pacman syntax, to pacman and returns its
// exit code.
//
// With output capture enabled, a run that fails because pacman was not
// started as root can be retried through sudo after asking the user.
func Forward(args []string, cfg *config.Config) (int, error) {
	opts := cfg.RunOpts()
	if cfg.DryRun {
		fmt.Fprintln(Stdout, ShellJoin(pacman.CommandLine(args, opts)))
		return 0, nil
	}
	if !cfg.Capture {
		return pacman.Run(args, opts)
	}

	// Prepare a dir for temporary files created by this CLI run
	tempDir, err := os.MkdirTemp("", "pacwords-*")
	if err != nil {
		return 1, err
	}
	defer func() {
		os.RemoveAll(tempDir)
	}()

	logFileName := filepath.Join(tempDir, "pacman.log")
	exitCode, err := pacman.RunWithLogFile(args, logFileName, opts)
	if err != nil {
		return 1, err
	}
	if exitCode == 0 || opts.Sudo || config.IsRoot() || !isInteractive() {
		return exitCode, nil
	}

	needsRoot, err := pacman.NeedsRoot(logFileName)
	if err != nil {
		log.Debugf("could not read pacman output: %s", err)
		return exitCode, nil
	}
	if !needsRoot {
		return exitCode, nil
	}

	retry, err := showRetryPicker(opts.SudoCommand)
	if err != nil || !retry {
		return exitCode, nil
	}
	opts.Sudo = true
	return pacman.Run(args, opts)
}

func showRetryPicker(sudoCommand string) (bool, error) {
	if sudoCommand == "" {
		sudoCommand = "sudo"
	}
	options := []picker.Option{
		{Label: "Yes, run it again with " + sudoCommand, Value: "y"},
		{Label: "No", Value: "n"},
	}
	response, err := showPicker("pacman needs root for this. Try again?", options)
	if err != nil {
		return false, err
	}
	return response == "y", nil
}

// ShellJoin renders argv as a command line a shell would split back into
// the same words.
func ShellJoin(argv []string) string {
	quoted := make([]string, len(argv))
	for i, a := range argv {
		quoted[i] = shellQuote(a)
	}
	return strings.Join(quoted, " ")
}

func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	safe := true
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || strings.ContainsRune("-_./=:+@%,", r)) {
			safe = false
			break
		}
	}
	if safe {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
