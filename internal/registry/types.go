// Package registry provides the remote license registry client.
package registry

// Summary is the key/name/url subset returned by the listing endpoint.
type Summary struct {
	// Key is the lowercase SPDX identifier (e.g. "mit", "gpl-3.0").
	Key string `json:"key"`

	// Name is the human-readable license name.
	Name string `json:"name"`

	// URL is the registry URL for the full record.
	URL string `json:"url"`
}

// License is the full record returned by the per-key endpoint.
type License struct {
	Key            string   `json:"key"`
	Name           string   `json:"name"`
	SPDXID         string   `json:"spdx_id"`
	URL            string   `json:"url"`
	HTMLURL        string   `json:"html_url"`
	Description    string   `json:"description"`
	Implementation string   `json:"implementation"`
	Permissions    []string `json:"permissions"`
	Conditions     []string `json:"conditions"`
	Limitations    []string `json:"limitations"`

	// Body is the raw license text with embedded placeholder tokens.
	// It is treated as opaque; only the installer derives a rendered copy.
	Body string `json:"body"`

	Featured bool `json:"featured"`
}
