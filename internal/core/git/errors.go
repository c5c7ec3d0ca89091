// Package git runs the system git binary for the two things the scaffolder
// needs: the author identity and repository initialization.
package git

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSystemGitNotFound indicates the git binary is not on PATH.
var ErrSystemGitNotFound = errors.New("git executable not found")

// ExitError reports a git process that ran but did not exit cleanly.
type ExitError struct {
	Args   []string
	Code   int    // Exit code, -1 when the process was killed by a signal.
	Signal string // Terminating signal, empty for a normal exit.
	Stderr string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	signal := e.Signal
	if signal == "" {
		signal = "none"
	}
	msg := fmt.Sprintf("git %s exited code:%d signal:%s", strings.Join(e.Args, " "), e.Code, signal)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}
