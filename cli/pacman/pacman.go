package pacman

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"
	"github.com/mattn/go-isatty"

	"pacwords.build/cli/log"
)

const (
	defaultBinary     = "pacman"
	defaultSudoBinary = "sudo"

	// Printed by pacman when a transaction is attempted without root.
	notRootMessage = "you cannot perform this operation unless you are root"
)

type RunOpts struct {
	// Pacman is the package manager binary. Defaults to "pacman".
	Pacman string

	// Sudo runs the binary through SudoCommand.
	Sudo bool

	// SudoCommand is the privilege escalation binary. Defaults to "sudo".
	SudoCommand string

	// Stdout is the Writer where pacman should write its stdout.
	// Defaults to os.Stdout if nil.
	Stdout io.Writer

	// Stderr is the Writer where pacman should write its stderr.
	// Defaults to os.Stderr if nil.
	Stderr io.Writer

	// Stdin defaults to os.Stdin if nil, so that pacman can prompt.
	Stdin io.Reader
}

// CommandLine returns the full argv that Run would execute for args.
func CommandLine(args []string, opts *RunOpts) []string {
	bin := opts.Pacman
	if bin == "" {
		bin = defaultBinary
	}
	argv := make([]string, 0, len(args)+2)
	if opts.Sudo {
		sudo := opts.SudoCommand
		if sudo == "" {
			sudo = defaultSudoBinary
		}
		argv = append(argv, sudo)
	}
	argv = append(argv, bin)
	return append(argv, args...)
}

// Run runs pacman with args and waits for it to finish. A non-zero exit of
// pacman is reported through exitCode with a nil error; err is only set if
// pacman could not be run at all.
func Run(args []string, opts *RunOpts) (exitCode int, err error) {
	argv := CommandLine(args, opts)
	log.Debugf("running %s", strings.Join(argv, " "))

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = opts.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = opts.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = opts.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	err = cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code > 0 {
			return code, nil
		}
		// Killed by a signal.
		return 1, nil
	}
	if err != nil {
		return -1, fmt.Errorf("failed to run %s: %w", argv[0], err)
	}
	return 0, nil
}

// RunWithLogFile runs pacman like Run, additionally writing everything it
// prints to logFileName so that the output can be inspected afterwards.
func RunWithLogFile(args []string, logFileName string, opts *RunOpts) (exitCode int, err error) {
	outputFile, err := os.Create(logFileName)
	if err != nil {
		return 1, err
	}
	defer outputFile.Close()

	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	runOpts := *opts
	runOpts.Stdout = io.MultiWriter(outputFile, stdout)
	runOpts.Stderr = io.MultiWriter(outputFile, stderr)

	isWritingToTerminal := opts.Stdout == nil && opts.Stderr == nil && IsTTY(os.Stdout) && IsTTY(os.Stderr)
	if !isWritingToTerminal {
		return Run(args, &runOpts)
	}

	// pacman only draws colors and progress bars on a terminal, so give it
	// one and copy whatever it writes to both the real terminal and the log.
	ptmx, tty, err := pty.Open()
	if err != nil {
		return 1, fmt.Errorf("failed to allocate pty: %s", err)
	}
	defer ptmx.Close()
	if err := pty.InheritSize(os.Stdout, tty); err != nil {
		_ = tty.Close()
		return 1, fmt.Errorf("failed to inherit terminal size: %s", err)
	}
	// Note: we don't listen to resize events (SIGWINCH). pacman reads the
	// size once per progress bar redraw, so a resize mid-run only affects
	// the current line.
	runOpts.Stdout = tty
	runOpts.Stderr = tty

	copied := make(chan struct{})
	go func() {
		io.Copy(io.MultiWriter(outputFile, os.Stdout), ptmx)
		close(copied)
	}()

	exitCode, err = Run(args, &runOpts)
	// Closing our end of the tty makes reads from ptmx fail once pacman's
	// output has been drained, which ends the copy.
	_ = tty.Close()
	<-copied
	return exitCode, err
}

// NeedsRoot reports whether the pacman output captured in logFileName shows
// that the operation failed for lack of root privileges.
func NeedsRoot(logFileName string) (bool, error) {
	f, err := os.Open(logFileName)
	if err != nil {
		return false, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.Contains(scanner.Text(), notRootMessage) {
			return true, nil
		}
	}
	return false, scanner.Err()
}

// IsTTY returns whether the given file descriptor is connected to a terminal.
func IsTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd())
}
