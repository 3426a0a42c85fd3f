package help

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"pacwords.build/cli/command"
	"pacwords.build/cli/translate"
)

const (
	defaultWidth = 80

	// helpFlag is a pacwords-specific spelling because -h and --help belong
	// to pacman.
	helpFlag = "--pw_help"
)

var (
	// Stdout and Stderr are where help is written.
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr

	headingStyle = lipgloss.NewStyle().Bold(true)
)

var usage = `usage: pacwords [--pw_verbose] [--pw_dry_run] [--pw_config=PATH] <command> [operands...]
       pacwords <pacman options> [operands...]

An English command is replaced by its pacman flags; everything after it is
passed through unchanged. Arguments that start with "-" or are not English
commands go to pacman as they are.
`

// HandleHelp prints help if args ask for it. It returns an exit code of -1
// when args are not a help request.
func HandleHelp(args []string, t *translate.Translator) (exitCode int, err error) {
	if len(args) == 0 {
		printUsage(Stdout, t)
		return 0, nil
	}
	if args[0] != "help" && args[0] != helpFlag {
		return -1, nil
	}
	if len(args) == 1 {
		printUsage(Stdout, t)
		return 0, nil
	}
	return printCommandHelp(args[1], t), nil
}

func printCommandHelp(name string, t *translate.Translator) int {
	if c := command.GetCommand(name); c != nil {
		fmt.Fprintf(Stdout, "usage: pacwords %s\n\n%s\n", c.Name, c.Help)
		return 0
	}
	if flags, ok := t.Flags(name); ok {
		native := strings.Join(flags, " ")
		fmt.Fprintf(Stdout, "usage: pacwords %s [operands...]\n\nRuns: pacman %s [operands...]\n", strings.ToLower(name), native)
		return 0
	}
	fmt.Fprintf(Stderr, "pacwords: unknown command %q, see 'pacwords help'\n", name)
	return 1
}

func printUsage(w io.Writer, t *translate.Translator) {
	fmt.Fprint(w, usage)

	fmt.Fprintf(w, "\n%s\n", headingStyle.Render("pacwords commands:"))
	for _, c := range command.Commands {
		fmt.Fprintf(w, "  %-12s %s\n", c.Name, c.Help)
	}

	fmt.Fprintf(w, "\n%s\n", headingStyle.Render("English commands:"))
	entries := make([][2]string, 0)
	for _, name := range t.Commands() {
		flags, _ := t.Flags(name)
		entries = append(entries, [2]string{name, strings.Join(flags, " ")})
	}
	fmt.Fprint(w, columns(entries, terminalWidth()))
}

// columns lays out name/flags pairs in as many columns as fit in width,
// filling rows left to right.
func columns(entries [][2]string, width int) string {
	nameWidth, flagsWidth := 0, 0
	for _, e := range entries {
		nameWidth = max(nameWidth, len(e[0]))
		flagsWidth = max(flagsWidth, len(e[1]))
	}
	const indent, gap = 2, 4
	cellWidth := nameWidth + 1 + flagsWidth + gap
	perRow := max(1, (width-indent+gap)/cellWidth)

	var b strings.Builder
	for i, e := range entries {
		if i%perRow == 0 {
			b.WriteString(strings.Repeat(" ", indent))
		}
		cell := fmt.Sprintf("%-*s %-*s", nameWidth, e[0], flagsWidth, e[1])
		last := i%perRow == perRow-1 || i == len(entries)-1
		if last {
			b.WriteString(strings.TrimRight(cell, " "))
			b.WriteString("\n")
		} else {
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", gap))
		}
	}
	return b.String()
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}
