package git_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// requireGit skips the test when no git binary is installed.
func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.CommandContext(context.Background(), "git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_CONFIG_GLOBAL=/dev/null",
		"GIT_CONFIG_NOSYSTEM=1",
		"GIT_AUTHOR_NAME=test",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=test",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0o600))
}

// setupRepo creates a repository holding a tracked a.py, tracked pkg/c.py,
// an untracked b.py and an ignored build/d.py.
func setupRepo(t *testing.T) string {
	t.Helper()
	requireGit(t)

	dir := t.TempDir()
	runGit(t, dir, "init", "-q")

	writeFile(t, filepath.Join(dir, "a.py"))
	writeFile(t, filepath.Join(dir, "pkg", "c.py"))
	writeFile(t, filepath.Join(dir, "README.md"))
	writeFile(t, filepath.Join(dir, ".gitignore"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("build/\n"), 0o600))
	runGit(t, dir, "add", "a.py", "pkg/c.py", "README.md", ".gitignore")
	runGit(t, dir, "commit", "-q", "-m", "init")

	writeFile(t, filepath.Join(dir, "b.py"))
	writeFile(t, filepath.Join(dir, "build", "d.py"))

	return dir
}
