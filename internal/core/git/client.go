package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"syscall"
)

// DefaultBinary is the git executable looked up on PATH.
const DefaultBinary = "git"

// Client runs git subcommands. Commands block until the process exits;
// there is no timeout beyond ctx.
type Client struct {
	binary string
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBinary overrides the git executable name or path.
func WithBinary(name string) Option {
	return func(c *Client) { c.binary = name }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a Client for the system git.
func NewClient(opts ...Option) *Client {
	c := &Client{
		binary: DefaultBinary,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("module", "git")
	return c
}

// UserName returns the configured user.name, trimmed. A non-zero exit (for
// example when the name is unset) is returned as *ExitError.
func (c *Client) UserName(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "", "config", "user.name")
	if err != nil {
		return "", fmt.Errorf("read git identity: %w", err)
	}
	name := strings.TrimSpace(out)
	c.logger.Debug("git identity resolved", "name", name)
	return name, nil
}

// Init creates an empty repository in dir.
func (c *Client) Init(ctx context.Context, dir string) error {
	if _, err := c.run(ctx, dir, "init"); err != nil {
		return fmt.Errorf("git init %s: %w", dir, err)
	}
	c.logger.Debug("repository initialized", "dir", dir)
	return nil
}

// @MX:NOTE: [AUTO] run is the only place a git process is spawned; GIT_TERMINAL_PROMPT=0 keeps it from blocking on credentials.
// run executes git with args in dir and returns stdout. It sets
// GIT_TERMINAL_PROMPT=0 and LC_ALL=C for consistent behavior.
func (c *Client) run(ctx context.Context, dir string, args ...string) (string, error) {
	gitPath, err := exec.LookPath(c.binary)
	if err != nil {
		return "", fmt.Errorf("system git lookup: %w", ErrSystemGitNotFound)
	}

	cmd := exec.CommandContext(ctx, gitPath, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_TERMINAL_PROMPT=0",
		"LC_ALL=C",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	c.logger.Debug("running git", "args", args, "dir", dir)
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", newExitError(args, exitErr, strings.TrimSpace(stderr.String()))
		}
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}

	return strings.TrimRight(stdout.String(), "\n\r"), nil
}

func newExitError(args []string, err *exec.ExitError, stderr string) *ExitError {
	e := &ExitError{
		Args:   append([]string(nil), args...),
		Code:   err.ExitCode(),
		Stderr: stderr,
	}
	if status, ok := err.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		e.Signal = status.Signal().String()
	}
	return e
}
