package core

import (
	"fmt"
	"os"
)

// AllBuiltins holds a list of all registered shell builtins.
var AllBuiltins = make(map[string]ShellBuiltin)

type ShellBuiltin interface {
	Main(s *Shell, args []string) int
}

type ShellBuiltinFunc func(s *Shell, args []string) int

func (f ShellBuiltinFunc) Main(s *Shell, args []string) int {
	return f(s, args)
}

var _ ShellBuiltin = (ShellBuiltinFunc)(nil)

// Cd is the cd shell builtin. Without an argument it changes to $HOME;
// arguments past the first are ignored.
func Cd(s *Shell, args []string) int {
	var target string
	switch {
	case len(args) > 1:
		target = args[1]
	default:
		target = os.Getenv(EnvHome)
		if target == "" {
			fmt.Fprintln(s.stderr, "cd: HOME not set")
			return 1
		}
	}

	if err := os.Chdir(target); err != nil {
		fmt.Fprintf(s.stderr, "cd: %v\n", err)
		return 1
	}
	return 0
}

// Exit quits the shell. Any arguments are ignored.
func Exit(s *Shell, args []string) int {
	s.Quit = true
	return 0
}

func init() {
	AllBuiltins["cd"] = ShellBuiltinFunc(Cd)
	AllBuiltins["exit"] = ShellBuiltinFunc(Exit)
}
