package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lerrors "github.com/licensor/cli/internal/errors"
	"github.com/licensor/cli/internal/registry"
)

const listFixture = `[
  {"key": "mit", "name": "MIT License", "url": "https://api.github.com/licenses/mit"},
  {"key": "apache-2.0", "name": "Apache License 2.0", "url": "https://api.github.com/licenses/apache-2.0"}
]`

const mitFixture = `{
  "key": "mit",
  "name": "MIT License",
  "spdx_id": "MIT",
  "url": "https://api.github.com/licenses/mit",
  "permissions": ["commercial-use"],
  "conditions": ["include-copyright"],
  "limitations": ["liability"],
  "body": "MIT License\n\nCopyright (c) [year] [fullname]\n",
  "featured": true
}`

const gplFixture = `{
  "key": "gpl-3.0",
  "name": "GNU General Public License v3.0",
  "spdx_id": "GPL-3.0",
  "body": "<program>  Copyright (C) <year>  <name of author>\n",
  "featured": false
}`

// newRegistryServer serves the fixture registry over HTTP.
func newRegistryServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/licenses", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(listFixture))
	})
	mux.HandleFunc("/licenses/mit", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(mitFixture))
	})
	mux.HandleFunc("/licenses/gpl-3.0", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(gplFixture))
	})
	mux.HandleFunc("/licenses/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// newTestRoot builds the root command wired to the fixture server, with
// env and config isolated from the host environment.
func newTestRoot(t *testing.T, endpoint string, args ...string) *cobra.Command {
	t.Helper()
	t.Setenv("LICENSOR_ENDPOINT", "")
	t.Setenv("LICENSOR_AUTHOR", "")
	t.Setenv("LICENSOR_CONFIG", "")

	root := NewRootCmd()
	missingConfig := filepath.Join(t.TempDir(), "config.yaml")
	root.SetArgs(append(args, "--endpoint", endpoint, "--config", missingConfig))
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	return root
}

func TestNewGetCmd(t *testing.T) {
	cmd := NewGetCmd(&GlobalConfig{})

	assert.Equal(t, "get [<key>...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotNil(t, cmd.Flags().Lookup("list"))
}

func TestGet_List(t *testing.T) {
	srv := newRegistryServer(t)

	root := newTestRoot(t, srv.URL+"/licenses", "get", "--list")
	err := root.Execute()
	require.NoError(t, err)
}

func TestGet_NoArgsNoList(t *testing.T) {
	srv := newRegistryServer(t)

	root := newTestRoot(t, srv.URL+"/licenses", "get")
	err := root.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, lerrors.ErrValidation)
	assert.Contains(t, err.Error(), "nothing to do")
}

func TestGet_SingleKey(t *testing.T) {
	srv := newRegistryServer(t)

	root := newTestRoot(t, srv.URL+"/licenses", "get", "mit")
	err := root.Execute()
	require.NoError(t, err)
}

func TestGet_MultipleKeys(t *testing.T) {
	srv := newRegistryServer(t)

	root := newTestRoot(t, srv.URL+"/licenses", "get", "mit", "gpl-3.0")
	err := root.Execute()
	require.NoError(t, err)
}

func TestGet_UnknownKeyFailsFast(t *testing.T) {
	srv := newRegistryServer(t)

	root := newTestRoot(t, srv.URL+"/licenses", "get", "mit", "wtfpl", "gpl-3.0")
	err := root.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, lerrors.ErrRetrieval)
	assert.Contains(t, err.Error(), "wtfpl")
}

func TestGet_ListUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	root := newTestRoot(t, srv.URL, "get", "--list")
	err := root.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, lerrors.ErrUnavailable)
}

func TestFormatLicense(t *testing.T) {
	lic := &registry.License{
		Key:         "mit",
		Name:        "MIT License",
		SPDXID:      "MIT",
		URL:         "https://api.github.com/licenses/mit",
		Permissions: []string{"commercial-use", "private-use"},
		Body:        "Copyright (c) [year] [fullname]",
		Featured:    true,
	}

	got := formatLicense(lic)

	assert.Contains(t, got, "MIT License")
	assert.Contains(t, got, "mit")
	assert.Contains(t, got, "commercial-use, private-use")
	assert.Contains(t, got, "featured")
	assert.Contains(t, got, "[year] [fullname]")
	// Empty fields are skipped
	assert.NotContains(t, got, "description")
}
