package arg

import (
	"slices"
	"strings"
)

// Pop removes every occurrence of the long flag --name (either "--name" or
// "--name=value") from args and returns its value along with the remaining
// args. A bare "--name" has the value "true". If the flag occurs more than
// once, the last value wins. The token after a bare flag is never consumed,
// since it may be an operand such as a package name.
func Pop(args []string, name string) (value string, rest []string) {
	flag := "--" + name
	rest = make([]string, 0, len(args))
	for _, a := range args {
		switch {
		case a == flag:
			value = "true"
		case strings.HasPrefix(a, flag+"="):
			value = strings.TrimPrefix(a, flag+"=")
		default:
			rest = append(rest, a)
		}
	}
	return value, rest
}

// SplitExecutableArgs splits args at the first "--". The residual includes
// the "--" itself so that JoinExecutableArgs can restore the original list.
func SplitExecutableArgs(args []string) (head, residual []string) {
	idx := slices.Index(args, "--")
	if idx < 0 {
		return args, nil
	}
	return args[:idx], args[idx:]
}

// JoinExecutableArgs is the inverse of SplitExecutableArgs.
func JoinExecutableArgs(args, residual []string) []string {
	out := make([]string, 0, len(args)+len(residual))
	out = append(out, args...)
	return append(out, residual...)
}

func ContainsExact(args []string, s string) bool {
	return slices.Contains(args, s)
}

// IsTruthy reports whether a flag or environment value means "on".
func IsTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
