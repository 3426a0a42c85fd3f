package log

import (
	"fmt"
	"io"
	goLog "log"
	"os"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"pacwords.build/cli/arg"
)

var (
	verbose atomic.Bool

	logger = goLog.New(os.Stderr, "", 0)

	warnPrefix  = "pacwords: warning: "
	errorPrefix = "pacwords: error: "
	debugPrefix = "pacwords: debug: "
)

func init() {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		stylePrefixes()
	}
}

func stylePrefixes() {
	warnPrefix = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Render("pacwords: warning:") + " "
	errorPrefix = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true).Render("pacwords: error:") + " "
	debugPrefix = lipgloss.NewStyle().Faint(true).Render("pacwords: debug:") + " "
}

// Configure sets up logging from the value of the --pw_verbose flag.
func Configure(verboseFlag string) {
	verbose.Store(arg.IsTruthy(verboseFlag))
}

func Verbose() bool {
	return verbose.Load()
}

// SetOutput redirects all log output, e.g. to capture it in tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

func Debugf(format string, args ...any) {
	if !verbose.Load() {
		return
	}
	logger.Print(debugPrefix + fmt.Sprintf(format, args...))
}

func Printf(format string, args ...any) {
	logger.Printf(format, args...)
}

func Warnf(format string, args ...any) {
	logger.Print(warnPrefix + fmt.Sprintf(format, args...))
}

// Fatal logs the error and exits with status 1.
func Fatal(err error) {
	logger.Print(errorPrefix + err.Error())
	os.Exit(1)
}
