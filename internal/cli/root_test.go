package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("CONNECTFOUR_SEED", "")
	t.Setenv("CONNECTFOUR_LOG_LEVEL", "")

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootPlaysTwoHumanGame(t *testing.T) {
	stdin := "2\nAnn\nBob\n0\n1\n0\n1\n0\n1\n0\n"

	stdout, _, err := runRoot(t, stdin)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "Connect Four\n\n"))
	assert.Contains(t, stdout, "Ann wins!\n")
}

func TestRootVerboseLogsToStderr(t *testing.T) {
	stdin := "2\nAnn\nBob\n0\n1\n0\n1\n0\n1\n0\n"

	stdout, stderr, err := runRoot(t, stdin, "--verbose", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, stderr, "token placed")
	assert.NotContains(t, stdout, "token placed")
}

func TestRootDefaultLevelIsQuiet(t *testing.T) {
	stdin := "2\nAnn\nBob\n0\n1\n0\n1\n0\n1\n0\n"

	_, stderr, err := runRoot(t, stdin, "--no-color")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestRootRejectsInvalidSeed(t *testing.T) {
	stdout, _, err := runRoot(t, "", "--seed", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid seed")
	assert.Empty(t, stdout)
}

func TestRootRejectsInvalidLogLevel(t *testing.T) {
	_, _, err := runRoot(t, "", "--log-level", "shout")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestRootFailsOnExhaustedInput(t *testing.T) {
	_, _, err := runRoot(t, "2\nAnn\nBob\n3\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no more input available")
}

func TestRootRejectsArgs(t *testing.T) {
	_, _, err := runRoot(t, "", "extra")
	assert.Error(t, err)
}
