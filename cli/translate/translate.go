// Package translate expands English pacman verbs ("install", "search", ...)
// into pacman's native short flags.
package translate

import (
	"slices"
	"strings"
)

// commandFlags is the fixed table of English commands and the native flags
// they expand to. Keys are lowercase.
var commandFlags = map[string][]string{
	// Core package operations
	"install": {"-S"},
	"update":  {"-Syu"},
	"upgrade": {"-Syu"},
	"search":  {"-Ss"},
	"remove":  {"-R"},
	"info":    {"-Si"},
	"list":    {"-Q"},
	"clean":   {"-Sc"},

	"download":   {"-Sw"},
	"reinstall":  {"-S", "--needed"},
	"purge":      {"-Rns"},
	"autoremove": {"-Rns"},

	// Local database queries
	"installed": {"-Q"},
	"orphans":   {"-Qtd"},
	"foreign":   {"-Qm"},
	"explicit":  {"-Qe"},
	"files":     {"-Ql"},
	"owns":      {"-Qo"},
	"depends":   {"-Qi"},

	// Sync databases
	"refresh":       {"-Sy"},
	"mirror-update": {"-Syy"},

	"check":      {"-Dk"},
	"verify":     {"-Qk"},
	"cache-info": {"-Sc", "--print"},
}

// Translator holds an immutable command table. It is safe for concurrent use.
type Translator struct {
	table map[string][]string
}

func New() *Translator {
	table := make(map[string][]string, len(commandFlags))
	for name, flags := range commandFlags {
		table[name] = slices.Clone(flags)
	}
	return &Translator{table: table}
}

// Translate rewrites an argument list for pacman.
//
// A first argument starting with "-" is already native syntax and is left
// alone, as is any first argument that is not an English command. An English
// command (matched case-insensitively) is replaced by its flags; everything
// after it is kept verbatim. The returned slice never shares memory with args.
func (t *Translator) Translate(args []string) []string {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return slices.Clone(args)
	}
	flags, ok := t.table[strings.ToLower(args[0])]
	if !ok {
		return slices.Clone(args)
	}
	out := make([]string, 0, len(flags)+len(args)-1)
	out = append(out, flags...)
	return append(out, args[1:]...)
}

// Commands returns every English command, sorted.
func (t *Translator) Commands() []string {
	names := make([]string, 0, len(t.table))
	for name := range t.table {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (t *Translator) IsCommand(name string) bool {
	_, ok := t.table[strings.ToLower(name)]
	return ok
}

// Flags returns a copy of the native flags for an English command.
func (t *Translator) Flags(name string) ([]string, bool) {
	flags, ok := t.table[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return slices.Clone(flags), true
}
