package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, Version+"\n", out.String())
}

func TestMigrateCommandUsesConfiguredDatabase(t *testing.T) {
	dir := t.TempDir()
	cfg := dir + "/config.yaml"
	require.NoError(t, writeFile(cfg, "database:\n  driver: sqlite\n  path: "+dir+"/db/mytime.db\n"))
	t.Setenv("CONFIG_PATH", cfg)

	cmd := newRootCmd()
	cmd.SetArgs([]string{"migrate"})
	require.NoError(t, cmd.Execute())
	assert.FileExists(t, dir+"/db/mytime.db")
}

func TestShutdownWithoutStartIsSafe(t *testing.T) {
	app := NewApplication()
	called := 0
	app.registerCleanup(func() { called++ })

	require.NoError(t, app.Shutdown(0))
	require.NoError(t, app.Shutdown(0))
	assert.Equal(t, 1, called)
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
