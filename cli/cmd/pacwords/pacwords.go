package main

import (
	"os"
	"time"

	"pacwords.build/cli/arg"
	"pacwords.build/cli/command"
	"pacwords.build/cli/config"
	"pacwords.build/cli/forward"
	"pacwords.build/cli/help"
	"pacwords.build/cli/log"
	"pacwords.build/cli/translate"

	"pacwords.build/cli/command/register"
)

const (
	verboseFlag = "pw_verbose"
	configFlag  = "pw_config"
	dryRunFlag  = "pw_dry_run"
)

var (
	// These flags configure the cli at large, and don't apply to any specific
	// cli command. They carry a pw_ prefix so they can never be mistaken for
	// pacman's own long options.
	globalCliFlags = []string{verboseFlag, configFlag, dryRunFlag}
)

func main() {
	exitCode, err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	os.Exit(exitCode)
}

func run(args []string) (exitCode int, err error) {
	start := time.Now()

	args, flags := handleGlobalCliFlags(args)

	log.Debugf("CLI started at %s", start)
	log.Debugf("args: %q", args)

	cfg, err := config.Load(flags[configFlag])
	if err != nil {
		return 1, err
	}
	if arg.IsTruthy(flags[dryRunFlag]) {
		cfg.DryRun = true
	}
	config.Set(cfg)

	// Register all known cli commands so that we can query or iterate them later.
	register.Register()

	translator := translate.New()

	// Handle help command if applicable.
	exitCode, err = help.HandleHelp(args, translator)
	if err != nil || exitCode >= 0 {
		return exitCode, err
	}

	if c := command.GetCommand(args[0]); c != nil {
		// If the first argument is a cli command, trim it from `args`
		return c.Handler(args[1:])
	}

	// Everything else goes to pacman, with English commands expanded.
	translated := translator.Translate(args)
	log.Debugf("translated: %q", translated)
	return forward.Forward(translated, cfg)
}

// handleGlobalCliFlags removes global cli flags (--pw_verbose, etc.) from
// args and returns their values. Anything after "--" is left alone.
func handleGlobalCliFlags(args []string) ([]string, map[string]string) {
	args, residual := arg.SplitExecutableArgs(args)
	values := make(map[string]string, len(globalCliFlags))
	for _, flag := range globalCliFlags {
		var flagVal string
		flagVal, args = arg.Pop(args, flag)
		values[flag] = flagVal

		switch flag {
		case verboseFlag:
			log.Configure(flagVal)
		}
	}
	if values[configFlag] == "" || values[configFlag] == "true" {
		values[configFlag] = config.DefaultPath()
	}
	return arg.JoinExecutableArgs(args, residual), values
}
