package pick

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cqroot/prompt"

	"pacwords.build/cli/config"
	"pacwords.build/cli/forward"
	"pacwords.build/cli/log"
	"pacwords.build/cli/pacman"
	"pacwords.build/cli/picker"
	"pacwords.build/cli/textarea"
	"pacwords.build/cli/translate"
)

var (
	showPicker = picker.ShowPicker
	showFields = textarea.ShowFields
	confirm    = confirmRun
	run        = forward.Forward
)

var usage = `
usage: pacwords pick [operands...]

Choose an English command from a list, enter its operands (unless given on
the command line), confirm the resulting pacman command line and run it.
`

// HandlePick implements the `pick` command.
func HandlePick(args []string) (int, error) {
	if len(args) > 0 && args[0] == "--pw_help" {
		fmt.Print(usage)
		return 0, nil
	}

	t := translate.New()
	options := make([]picker.Option, 0)
	for _, name := range t.Commands() {
		flags, _ := t.Flags(name)
		options = append(options, picker.Option{
			Label:  name,
			Detail: strings.Join(flags, " "),
			Value:  name,
		})
	}

	selected, err := showPicker("Which command would you like to run?", options)
	if errors.Is(err, picker.ErrNoSelection) {
		return 1, nil
	}
	if err != nil {
		return 1, err
	}

	operands := args
	if len(operands) == 0 {
		operands, err = showFields(
			fmt.Sprintf("Operands for %q (leave empty for none)", selected),
			"Package names, files or extra pacman options",
		)
		if errors.Is(err, textarea.ErrCancelled) {
			return 1, nil
		}
		if err != nil {
			return 1, err
		}
	}

	translated := t.Translate(append([]string{selected}, operands...))
	cfg := config.Get()
	commandLine := forward.ShellJoin(pacman.CommandLine(translated, cfg.RunOpts()))
	if !cfg.DryRun {
		ok, err := confirm(commandLine)
		if err != nil {
			log.Debugf("confirmation aborted: %s", err)
			return 1, nil
		}
		if !ok {
			return 1, nil
		}
	}
	return run(translated, cfg)
}

func confirmRun(commandLine string) (bool, error) {
	answer, err := prompt.New().Ask("Run " + commandLine + "?").Choose([]string{"Yes", "No"})
	if err != nil {
		return false, err
	}
	return answer == "Yes", nil
}
