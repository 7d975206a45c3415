package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sandboxenv/internal/workspace"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		configPath = ""
		verbose = false
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPathsCommand(t *testing.T) {
	t.Setenv("SANDBOX_USER_DATA_DIR", "/data")

	out, err := execute(t, "paths")
	require.NoError(t, err)

	assert.Contains(t, out, "userDataPath")
	assert.Contains(t, out, fmt.Sprintf("%-24s %s\n", "userDataPath", "/data"))
	assert.Contains(t, out, "vscode-userdata:///data")
	assert.Contains(t, out, "vscode-userdata:///data/settings.json")
	assert.Contains(t, out, "vscode-userdata:///data/telemetry.log")
	assert.NotContains(t, out, "file:///data/")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 16)
}

func TestSeedCommand(t *testing.T) {
	out, err := execute(t, "seed")
	require.NoError(t, err)

	assert.Contains(t, out, "simpleWorkspace/\n")
	assert.Contains(t, out, "  src/\n")
	assert.Contains(t, out, "    extension.ts (")
	assert.Contains(t, out, "sandbox-user-data-dir/\n")
	assert.Contains(t, out, "digest    "+workspace.Sample().Digest())
	assert.Contains(t, out, workspace.ID)
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sandbox.yaml")
	require.NoError(t, os.WriteFile(path, []byte("user_data_dir: /from/file\n"), 0o644))

	out, err := execute(t, "--config", path, "paths")
	require.NoError(t, err)
	assert.Contains(t, out, "vscode-userdata:///from/file/argv.json")
}

func TestBadConfig(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "paths")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestMountNeedsMountpoint(t *testing.T) {
	_, err := execute(t, "mount")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mount point is required")
}
