// Package privilege re-acquires root by delegating the whole invocation
// to a sudo child process.
package privilege

import (
	"errors"
	"os"
	"os/exec"
)

// IsRoot reports whether the process runs with an effective uid of root.
func IsRoot() bool {
	return os.Geteuid() == 0
}

// SudoCommand builds the re-invocation of argv under sudo. Stdio is
// inherited so sudo can prompt for a password on the controlling
// terminal.
func SudoCommand(argv []string) *exec.Cmd {
	cmd := exec.Command("sudo", argv...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}

// Rerun executes argv under sudo and returns the delegate's exit code. A
// non-zero child exit is not an error here; only failing to run sudo at
// all is.
func Rerun(argv []string) (int, error) {
	err := SudoCommand(argv).Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, err
}
