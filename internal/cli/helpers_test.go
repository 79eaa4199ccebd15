package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// chdirTemp moves the test into a fresh directory so log and config files
// stay out of the source tree.
func chdirTemp(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	return tempDir
}

// execute runs args against a fresh root carrying the given subcommands
// and returns what was printed to stdout.
func execute(t *testing.T, sub *cobra.Command, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	cmd.AddCommand(sub)
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}
