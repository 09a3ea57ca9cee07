package e2e_test

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
}

func newCLIRunner(t *testing.T) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "connectfour-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/connectfour")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{binaryPath: binaryPath}
}

// run feeds stdin lines to the binary and returns stdout, stderr and the exit code
func (r *cliRunner) run(t *testing.T, lines []string, args ...string) (string, string, int) {
	t.Helper()

	cmd := exec.Command(r.binaryPath, args...)
	cmd.Env = append(os.Environ(), "NO_COLOR=1", "CONNECTFOUR_SEED=", "CONNECTFOUR_LOG_LEVEL=")
	cmd.Stdin = strings.NewReader(strings.Join(lines, "\n") + "\n")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	} else {
		require.NoError(t, err)
	}
	return stdout.String(), stderr.String(), exitCode
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

func TestCLI(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	runner := newCLIRunner(t)

	t.Run("two humans with bad input", func(t *testing.T) {
		stdout, _, code := runner.run(t, []string{
			"5", "2", "Ann", "Bob",
			"x", "9", "2", "3", "2", "3", "2", "3", "2",
		})
		require.Equal(t, 0, code)

		assert.Contains(t, stdout, "Invalid input. Please enter 1 or 2.")
		assert.Contains(t, stdout, "Column must be between 0 and 6.")
		assert.Contains(t, stdout, "Ann wins!")
		assert.Contains(t, stdout, ". . X O . . .")
	})

	t.Run("full column is rejected", func(t *testing.T) {
		lines := []string{"2", "Ann", "Bob"}
		// Fill column 0 with alternating tokens, then try it again
		lines = append(lines, "0", "0", "0", "0", "0", "0", "0", "1", "2", "1", "2", "1", "2", "1")
		stdout, _, code := runner.run(t, lines)
		require.Equal(t, 0, code)

		assert.Contains(t, stdout, "Column 0 is full. Choose another column.")
		assert.Contains(t, stdout, "Ann wins!")
	})

	t.Run("against a seeded computer", func(t *testing.T) {
		lines := []string{"1"}
		for range 30 {
			lines = append(lines, "0", "1", "2", "3", "4", "5", "6")
		}
		first, _, code := runner.run(t, lines, "--seed", "2024")
		require.Equal(t, 0, code)
		assert.True(t, strings.Contains(first, " wins!") || strings.Contains(first, "It's a draw!"))

		second, _, _ := runner.run(t, lines, "--seed", "2024")
		assert.Equal(t, first, second)
	})

	t.Run("exhausted input exits non-zero", func(t *testing.T) {
		_, stderr, code := runner.run(t, []string{"2", "Ann", "Bob", "3"})
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "no more input available")
	})

	t.Run("verbose logs go to stderr", func(t *testing.T) {
		stdout, stderr, code := runner.run(t, []string{"2", "Ann", "Bob", "0", "1", "0", "1", "0", "1", "0"}, "-v")
		require.Equal(t, 0, code)
		assert.Contains(t, stderr, "token placed")
		assert.NotContains(t, stdout, "token placed")
	})
}
