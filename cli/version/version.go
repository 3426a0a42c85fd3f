package version

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"pacwords.build/cli/arg"
	"pacwords.build/cli/config"
	"pacwords.build/cli/pacman"
)

// The pacwords version, stamped into version_flag.txt at release time.
//
//go:embed version_flag.txt
var cliVersionFlag string

var stdout io.Writer = os.Stdout

func String() string {
	return strings.TrimSpace(cliVersionFlag)
}

func HandleVersion(args []string) (exitCode int, err error) {
	if arg.ContainsExact(args, "--cli") {
		fmt.Fprintln(stdout, String())
		return 0, nil
	}

	fmt.Fprintf(stdout, "pacwords version: %s\n", String())

	return runPacmanVersion(args)
}

// runPacmanVersion forwards the `version` command to pacman (i.e.
// `pacman --version`). Version output never needs root.
func runPacmanVersion(args []string) (int, error) {
	opts := config.Get().RunOpts()
	opts.Sudo = false
	opts.Stdout = stdout
	return pacman.Run(append([]string{"--version"}, args...), opts)
}
