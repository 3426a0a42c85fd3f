package register

import (
	"sync"

	"pacwords.build/cli/command"
	"pacwords.build/cli/pick"
	"pacwords.build/cli/version"
)

// Register registers all known cli commands in the structures laid out in
// cli/command. It is meant to be called immediately on CLI startup.
//
// This indirection prevents dependency cycles between cli/command and the
// packages implementing the commands.
var Register = sync.OnceFunc(register)

func register() {
	command.Commands = []*command.Command{
		{
			Name:    "pick",
			Help:    "Interactively choose a command and packages, then run it.",
			Handler: pick.HandlePick,
			Aliases: []string{},
		},
		{
			Name:    "version",
			Help:    "Prints the version of pacwords and pacman.",
			Handler: version.HandleVersion,
			Aliases: []string{},
		},
	}
	command.CommandsByName = make(
		map[string]*command.Command,
		len(command.Commands),
	)
	command.Aliases = make(map[string]*command.Command)
	for _, c := range command.Commands {
		command.CommandsByName[c.Name] = c
		for _, alias := range c.Aliases {
			command.Aliases[alias] = c
		}
	}
}
