// Package identity resolves the default author name for license installation.
package identity

import (
	"bytes"
	"os/exec"
	"os/user"
	"strings"
)

// Provider supplies an author name. An empty name with a nil error means
// the provider has nothing to offer; the caller falls through to the next one.
type Provider interface {
	Name() (string, error)
}

// GitConfig resolves the author from the local git user.name configuration.
type GitConfig struct{}

// Name runs `git config --get user.name` and returns the trimmed result.
// A missing git binary or unset key yields an empty name, not an error.
func (GitConfig) Name() (string, error) {
	path, err := exec.LookPath("git")
	if err != nil {
		return "", nil
	}

	cmd := exec.Command(path, "config", "--get", "user.name")
	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		// git exits non-zero when the key is unset
		return "", nil
	}

	return strings.TrimSpace(out.String()), nil
}

// OSUser resolves the author from the invoking user's system identity,
// preferring the real name over the login name.
type OSUser struct{}

// Name returns the current OS user's display name.
func (OSUser) Name() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", nil
	}

	if name := strings.TrimSpace(u.Name); name != "" {
		return name, nil
	}
	return strings.TrimSpace(u.Username), nil
}

// Static always returns a fixed name. Used by tests and flag overrides.
type Static string

// Name returns the fixed name.
func (s Static) Name() (string, error) {
	return string(s), nil
}

// Chain tries each provider in order and returns the first non-empty name.
// An all-empty chain yields "" without error; an empty author is permitted
// and simply produces empty substitutions downstream.
type Chain []Provider

// Name returns the first non-empty name from the chain.
func (c Chain) Name() (string, error) {
	for _, p := range c {
		name, err := p.Name()
		if err != nil {
			return "", err
		}
		if name != "" {
			return name, nil
		}
	}
	return "", nil
}

// Default returns the standard resolution chain: git config, then OS user.
func Default() Provider {
	return Chain{GitConfig{}, OSUser{}}
}
