package command

// Command is a pacwords built-in command, handled by pacwords itself rather
// than forwarded to pacman.
type Command struct {
	Name    string
	Help    string
	Handler func(args []string) (exitCode int, err error)
	Aliases []string
}

var (
	// Commands is populated by register.Register.
	Commands []*Command

	CommandsByName map[string]*Command
	Aliases        map[string]*Command
)

// GetCommand returns the built-in command with the given name or alias, or
// nil if there is none.
func GetCommand(name string) *Command {
	if c, ok := CommandsByName[name]; ok {
		return c
	}
	return Aliases[name]
}
