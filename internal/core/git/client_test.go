package git

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
}

// isolateGitConfig points git at a throwaway global config and disables
// the system one.
func isolateGitConfig(t *testing.T, content string) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "gitconfig")
	if err := os.WriteFile(cfg, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GIT_CONFIG_GLOBAL", cfg)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Chdir(t.TempDir())
}

func TestUserName(t *testing.T) {
	requireGit(t)
	isolateGitConfig(t, "[user]\n\tname = octocat  \n")

	name, err := NewClient().UserName(context.Background())
	if err != nil {
		t.Fatalf("UserName() error: %v", err)
	}
	if name != "octocat" {
		t.Errorf("UserName() = %q, want %q", name, "octocat")
	}
}

func TestUserName_Unset(t *testing.T) {
	requireGit(t)
	isolateGitConfig(t, "")

	_, err := NewClient().UserName(context.Background())
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %v, want *ExitError", err)
	}
	if exitErr.Code != 1 {
		t.Errorf("Code = %d, want 1", exitErr.Code)
	}
	if !strings.Contains(err.Error(), "code:1 signal:none") {
		t.Errorf("error message %q lacks code and signal", err)
	}
}

func TestRun_NonZeroExit(t *testing.T) {
	if _, err := exec.LookPath("false"); err != nil {
		t.Skip("false not available")
	}

	_, err := NewClient(WithBinary("false")).UserName(context.Background())
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %v, want *ExitError", err)
	}
	if exitErr.Code == 0 || exitErr.Signal != "" {
		t.Errorf("ExitError = %+v", exitErr)
	}
}

func TestRun_MissingBinary(t *testing.T) {
	c := NewClient(WithBinary("create-llqqnt-plugin-no-such-git"))

	err := c.Init(context.Background(), t.TempDir())
	if !errors.Is(err, ErrSystemGitNotFound) {
		t.Errorf("error = %v, want ErrSystemGitNotFound", err)
	}
}

func TestInit(t *testing.T) {
	requireGit(t)
	isolateGitConfig(t, "")
	dir := t.TempDir()

	if err := NewClient().Init(context.Background(), dir); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if info, err := os.Stat(filepath.Join(dir, ".git")); err != nil || !info.IsDir() {
		t.Errorf(".git directory missing: %v", err)
	}
}

func TestExitError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "exit code",
			err:  &ExitError{Args: []string{"config", "user.name"}, Code: 1},
			want: "git config user.name exited code:1 signal:none",
		},
		{
			name: "signal with stderr",
			err:  &ExitError{Args: []string{"init"}, Code: -1, Signal: "killed", Stderr: "boom"},
			want: "git init exited code:-1 signal:killed: boom",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
