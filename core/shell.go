package core

import (
	"fmt"
	"io"

	"github.com/abiosoft/readline"

	"github.com/mayazahavi/bash-mini-shell/core/config"
)

const (
	// EnvHome is consulted for command resolution and as the default cd
	// target.
	EnvHome = "HOME"
)

// LineSource yields one raw line per call, or io.EOF once input is
// exhausted. The concrete source owns prompt display and line editing.
type LineSource interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

// Shell is the interactive read-parse-dispatch loop.
type Shell struct {
	Config   *config.Configuration
	Readline LineSource

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	closer io.Closer

	// Set to true to quit the shell.
	Quit bool
}

// NewShell builds a shell reading lines from stdin with the prompt and
// history settings from the configuration.
func NewShell(configuration *config.Configuration, stdin io.Reader, stdout, stderr io.Writer) (*Shell, error) {
	cfg := &readline.Config{
		Stdin:       readline.NewCancelableStdin(stdin),
		Stdout:      stdout,
		Stderr:      stderr,
		HistoryFile: configuration.HistoryFile,
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	return &Shell{
		Config:   configuration,
		Readline: rl,
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
		closer:   rl,
	}, nil
}

// Run drives the loop until exit, end of input, or a read error. The
// return value is always 0: the shell never adopts a child's exit code.
func (s *Shell) Run() int {
	for !s.Quit {
		s.Readline.SetPrompt(s.Config.Prompt)
		line, err := s.Readline.Readline()

		switch {
		case err == io.EOF:
			fmt.Fprint(s.stdout, "\n")
			return 0

		case err == readline.ErrInterrupt:
			// Interrupt clears the line.
			continue

		case err != nil:
			// Read errors are fatal to the loop.
			fmt.Fprintf(s.stderr, "read: %v\n", err)
			return 0
		}

		argv := Tokenize(line)
		if len(argv) == 0 {
			continue // blank line
		}

		if builtin, ok := AllBuiltins[argv[0]]; ok {
			builtin.Main(s, argv)
			continue
		}

		s.runExternal(argv)
	}
	return 0
}

// Close releases the line source.
func (s *Shell) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}
