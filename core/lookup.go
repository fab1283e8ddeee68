package core

import (
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// ErrNotFound is the error resulting if a path search failed to find an
// executable file.
var ErrNotFound = exec.ErrNotFound

// MaxPathLen bounds constructed candidate paths, mirroring PATH_MAX.
// Longer candidates are skipped rather than truncated.
const MaxPathLen = 4096

// findExecutable reports whether the current process may execute path.
// The check uses the effective uid/gid; existence alone is never enough.
func findExecutable(path string) error {
	if err := unix.Access(path, unix.X_OK); err != nil {
		return &os.PathError{Op: "access", Path: path, Err: err}
	}
	return nil
}

// searchDirs returns the fixed two-tier search order: $HOME when set and
// non-empty, then /bin. HOME is read fresh on every call so a changed
// environment takes effect on the next command.
func searchDirs() []string {
	var dirs []string
	if home := os.Getenv(EnvHome); home != "" {
		dirs = append(dirs, home)
	}
	return append(dirs, "/bin")
}

// LookPath searches for an executable named file under $HOME then /bin
// and returns the first candidate the current process may execute.
// Candidates are plain "<dir>/<name>" concatenations with no lexical
// cleaning, so names containing separators, trailing slashes, or dot
// segments reach the kernel verbatim.
func LookPath(name string) (string, error) {
	for _, dir := range searchDirs() {
		path := dir + "/" + name
		if len(path) >= MaxPathLen {
			continue
		}
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", ErrNotFound
}
