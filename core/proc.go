package core

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
)

// Outcome tags how a waited-on child process ended.
type Outcome int

const (
	// OutcomeExited is a normal exit carrying a return code.
	OutcomeExited Outcome = iota
	// OutcomeSignaled is a termination by signal.
	OutcomeSignaled
	// OutcomeUnknown covers wait statuses that are neither.
	OutcomeUnknown
)

// ExitStatus is the classified result of one wait. Code holds the return
// code for OutcomeExited and the signal number for OutcomeSignaled.
type ExitStatus struct {
	Outcome Outcome
	Code    int
}

func classifyWaitStatus(ws syscall.WaitStatus) ExitStatus {
	switch {
	case ws.Exited():
		return ExitStatus{Outcome: OutcomeExited, Code: ws.ExitStatus()}
	case ws.Signaled():
		return ExitStatus{Outcome: OutcomeSignaled, Code: int(ws.Signal())}
	default:
		return ExitStatus{Outcome: OutcomeUnknown}
	}
}

// WriteReport prints the user-facing status report. The success line is
// printed before the status is inspected, so it appears even for
// signaled and unknown outcomes.
func (e ExitStatus) WriteReport(w io.Writer) {
	fmt.Fprintln(w, "Command executed successfully.")

	switch e.Outcome {
	case OutcomeExited:
		fmt.Fprintf(w, "Command finished. Return code: %d\n", e.Code)
	case OutcomeSignaled:
		fmt.Fprintf(w, "Command terminated by signal: %d\n", e.Code)
	default:
		fmt.Fprintln(w, "Command finished with unknown status.")
	}
}

// runExternal resolves argv[0], spawns the program with the shell's
// streams and environment, waits for it, and reports the outcome. Only
// one child is ever outstanding; a hung child blocks the shell.
func (s *Shell) runExternal(argv []string) {
	execPath, err := LookPath(argv[0])
	if err != nil {
		fmt.Fprintf(s.stderr, "]%s]: Unknown Command[\n", argv[0])
		return
	}

	// argv[0] stays the name as typed, not the resolved path.
	cmd := &exec.Cmd{
		Path:   execPath,
		Args:   argv,
		Env:    os.Environ(),
		Stdin:  s.stdin,
		Stdout: s.stdout,
		Stderr: s.stderr,
	}

	if err := cmd.Start(); err != nil {
		// Covers both process creation and image replacement failures.
		fmt.Fprintf(s.stderr, "exec: %v\n", err)
		return
	}

	err = cmd.Wait()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintf(s.stderr, "wait: %v\n", err)
		return
	}

	if ws, ok := cmd.ProcessState.Sys().(syscall.WaitStatus); ok {
		classifyWaitStatus(ws).WriteReport(s.stdout)
		return
	}
	ExitStatus{Outcome: OutcomeUnknown}.WriteReport(s.stdout)
}
