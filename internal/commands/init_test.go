package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInit_WritesConfig(t *testing.T) {
	dir := t.TempDir()
	_, err := runCommand(t, "init", dir, "--name", "Somchai Trading")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "siambooks.yaml"))
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Somchai Trading")
	assert.Contains(t, contents, `default_rate: "7"`)
	assert.Contains(t, contents, `default_limit: "100000"`)
}

func TestInit_RequiresName(t *testing.T) {
	dir := t.TempDir()
	_, err := runCommand(t, "init", dir)
	require.Error(t, err)
}
