package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/licensor/cli/internal/testutil"
)

// withTempHome points $HOME at a temp dir so config files land there.
func withTempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LICENSOR_CONFIG", "")
	t.Setenv("LICENSOR_ENDPOINT", "")
	t.Setenv("LICENSOR_AUTHOR", "")
	return home
}

func TestConfigInit(t *testing.T) {
	home := withTempHome(t)

	root := NewRootCmd()
	root.SetArgs([]string{"config", "init"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	require.NoError(t, root.Execute())

	configFile := filepath.Join(home, ".licensor", "config.yaml")
	require.FileExists(t, configFile)

	content := testutil.ReadFile(t, configFile)
	assert.Contains(t, content, "endpoint: https://api.github.com/licenses")
}

func TestConfigInit_RefusesOverwrite(t *testing.T) {
	home := withTempHome(t)
	testutil.WriteFile(t, filepath.Join(home, ".licensor"), "config.yaml", "endpoint: https://keep.example.com\n")

	root := NewRootCmd()
	root.SetArgs([]string{"config", "init"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	content := testutil.ReadFile(t, filepath.Join(home, ".licensor", "config.yaml"))
	assert.Contains(t, content, "keep.example.com")
}

func TestConfigInit_Force(t *testing.T) {
	home := withTempHome(t)
	testutil.WriteFile(t, filepath.Join(home, ".licensor"), "config.yaml", "endpoint: https://old.example.com\n")

	root := NewRootCmd()
	root.SetArgs([]string{"config", "init", "--force"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	require.NoError(t, root.Execute())

	content := testutil.ReadFile(t, filepath.Join(home, ".licensor", "config.yaml"))
	assert.NotContains(t, content, "old.example.com")
	assert.Contains(t, content, "api.github.com")
}

func TestConfigVet_Valid(t *testing.T) {
	home := withTempHome(t)
	testutil.WriteFile(t, filepath.Join(home, ".licensor"), "config.yaml", "endpoint: https://licenses.example.com\n")

	root := NewRootCmd()
	root.SetArgs([]string{"config", "vet"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	require.NoError(t, root.Execute())
}

func TestConfigVet_BadEndpoint(t *testing.T) {
	withTempHome(t)

	root := NewRootCmd()
	root.SetArgs([]string{"config", "vet", "--endpoint", "not a url"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absolute URL")
}

func TestConfigVet_MissingFileStillVets(t *testing.T) {
	withTempHome(t)

	// No config file exists; defaults must still validate.
	root := NewRootCmd()
	root.SetArgs([]string{"config", "vet"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	require.NoError(t, root.Execute())
}

func TestConfigVet_MalformedFile(t *testing.T) {
	home := withTempHome(t)
	testutil.WriteFile(t, filepath.Join(home, ".licensor"), "config.yaml", "endpoint: [unclosed\n")

	root := NewRootCmd()
	root.SetArgs([]string{"config", "vet"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	require.Error(t, root.Execute())
}
