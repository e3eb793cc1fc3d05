package license

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	lerrors "github.com/licensor/cli/internal/errors"
	"github.com/licensor/cli/internal/identity"
	"github.com/licensor/cli/internal/output"
	"github.com/licensor/cli/internal/registry"
)

// DefaultPath is the destination used when no --path is given.
const DefaultPath = "./LICENSE"

// Request describes one license installation.
type Request struct {
	// Key is the license identifier. Required. Lowercased for the
	// registry lookup; all other fields are used verbatim.
	Key string

	// Path is the destination file. Defaults to DefaultPath.
	Path string

	// Author overrides the identity-provider default.
	Author string

	// Year overrides the "<current year>-present" default.
	Year string

	// Company is accepted for families that may use it.
	Company string

	// Project is the program name substituted by the GNU family.
	Project string

	// Raw disables all placeholder substitution.
	Raw bool
}

// Installer fetches a license and materializes it into a local file.
type Installer struct {
	// Registry fetches license records.
	Registry registry.Fetcher

	// Identity resolves the default author when none is given.
	Identity identity.Provider

	// Now supplies the current time for the default year. Nil means time.Now.
	Now func() time.Time
}

// Result reports what an installation did.
type Result struct {
	// Name is the human-readable license name.
	Name string

	// Path is the file that was written.
	Path string

	// Substituted reports whether any placeholder rules applied.
	Substituted bool
}

// Install fetches req.Key, renders its body, and writes the result to
// req.Path. No file is opened until the text is finalized, so a failed
// fetch leaves nothing behind.
func (ins *Installer) Install(ctx context.Context, req Request) (*Result, error) {
	req, err := ins.applyDefaults(req)
	if err != nil {
		return nil, err
	}

	key := strings.ToLower(req.Key)

	lic, err := ins.Registry.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	text, substituted := Render(key, lic.Body, req)

	output.Debug("writing license",
		"key", key,
		"path", req.Path,
		"raw", req.Raw,
		"substituted", substituted,
	)

	if err := os.WriteFile(req.Path, []byte(text), 0o644); err != nil {
		return nil, lerrors.Wrapf(lerrors.ErrWrite, err, fmt.Sprintf("writing %s", req.Path))
	}

	return &Result{
		Name:        lic.Name,
		Path:        req.Path,
		Substituted: substituted,
	}, nil
}

// Render produces the final license text for the normalized key.
// It is pure: substitution derives a new string and never mutates
// the fetched record. The second return reports whether any family
// rules applied.
func Render(key, body string, req Request) (string, bool) {
	if req.Raw {
		return body, false
	}

	rules := Rules(key)
	if len(rules) == 0 {
		return body, false
	}

	return Substitute(key, body, Values{
		Year:    req.Year,
		Author:  req.Author,
		Project: req.Project,
		Company: req.Company,
	}), true
}

// applyDefaults fills the omitted request fields per the resolution rules:
// path ./LICENSE, year "<YYYY>-present", author from the identity provider.
// Author resolution is best-effort; an empty author is permitted.
func (ins *Installer) applyDefaults(req Request) (Request, error) {
	if req.Path == "" {
		req.Path = DefaultPath
	}

	if req.Year == "" {
		now := time.Now
		if ins.Now != nil {
			now = ins.Now
		}
		req.Year = fmt.Sprintf("%d-present", now().Year())
	}

	if req.Author == "" && ins.Identity != nil {
		name, err := ins.Identity.Name()
		if err != nil {
			return req, err
		}
		req.Author = name
	}

	return req, nil
}
