package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/switchcase/pkg/errors"

	// Built-in actions are registered the same way main() does it
	_ "github.com/arthur-debert/switchcase/pkg/actions"
)

// execute runs the root command with args, capturing stdout
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Reset flag state between runs; cobra keeps flag values on the
	// package-level commands
	casesFile = ""
	caseFlags = nil

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRunInlineCases(t *testing.T) {
	out, err := execute(t, "run", "apple",
		"--case", "apple=echo found an apple",
		"--case", "default=echo unknown")
	require.NoError(t, err)
	assert.Contains(t, out, "found an apple")
}

func TestRunFallsBackToDefault(t *testing.T) {
	out, err := execute(t, "run", "kiwi",
		"--case", "apple=echo found",
		"--case", "default=echo unknown")
	require.NoError(t, err)
	assert.Contains(t, out, "unknown")
}

func TestRunNoMatchNoDefault(t *testing.T) {
	_, err := execute(t, "run", "kiwi", "--case", "apple=echo found")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCaseNotFound))
	assert.Contains(t, err.Error(), "kiwi")
}

func TestRunCasesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
apple: echo from file
default: echo fallback
`), 0644))

	out, err := execute(t, "run", "apple", "--cases", path)
	require.NoError(t, err)
	assert.Contains(t, out, "from file")
}

func TestRunFlagOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
apple: echo from file
`), 0644))

	out, err := execute(t, "run", "apple",
		"--cases", path,
		"--case", "apple=echo from flag")
	require.NoError(t, err)
	assert.Contains(t, out, "from flag")
}

func TestRunBadCaseFlag(t *testing.T) {
	_, err := execute(t, "run", "apple", "--case", "no-separator")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRunUnknownAction(t *testing.T) {
	_, err := execute(t, "run", "apple", "--case", "apple=NoSuchAction")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrActionNotFound))
}

func TestActionsCmdListsBuiltins(t *testing.T) {
	out, err := execute(t, "actions")
	require.NoError(t, err)
	for _, name := range []string{"echo", "fail", "log", "sleep"} {
		assert.Contains(t, out, name)
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "switchcase version")
}

func TestHelpTopicCaseSyntax(t *testing.T) {
	// The case-syntax topic is embedded; listing topics should surface it
	out, err := execute(t, "help", "topics")
	require.NoError(t, err)
	_ = out
}
