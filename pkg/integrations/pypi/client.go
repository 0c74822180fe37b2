package pypi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/pyvalid/pkg/buildinfo"
	"github.com/matzehuels/pyvalid/pkg/integrations"
)

// DefaultBaseURL is the PyPI JSON API root. Project metadata lives at
// {DefaultBaseURL}/{name}/json.
const DefaultBaseURL = "https://pypi.org/pypi"

// ErrMalformed is returned when a 200 response does not carry the expected
// project structure (for example, no "releases" object).
var ErrMalformed = errors.New("malformed registry response")

// Project holds the parts of a PyPI project record this tool consumes.
//
// Releases maps each release-version identifier to its raw file list. Only
// the number of keys is used; the values are kept undecoded.
type Project struct {
	Name     string                     // Project name as published (e.g., "Flask")
	Version  string                     // Latest version from the info block (may be empty)
	Releases map[string]json.RawMessage // Release version -> file metadata (never nil on success)
}

// ReleaseCount returns the number of distinct release versions.
func (p *Project) ReleaseCount() int {
	return len(p.Releases)
}

// Client provides access to the PyPI JSON API.
//
// Each FetchProject call issues exactly one GET request.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a PyPI client rooted at baseURL.
//
// Parameters:
//   - baseURL: API root; pass "" for [DefaultBaseURL]. A trailing slash is ignored.
//   - timeout: per-request timeout; non-positive values use [integrations.DefaultTimeout].
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		Client: integrations.NewClient(timeout, map[string]string{
			"User-Agent": buildinfo.UserAgent(),
		}),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL returns the API root the client queries.
func (c *Client) BaseURL() string { return c.baseURL }

// ProjectURL returns the JSON metadata URL for name.
// The name is path-escaped but otherwise sent as given; PyPI redirects
// non-canonical spellings itself.
func (c *Client) ProjectURL(name string) string {
	return fmt.Sprintf("%s/%s/json", c.baseURL, integrations.PathEscape(name))
}

// FetchProject retrieves the project record for name.
//
// Returns:
//   - Project populated from the response on success
//   - [integrations.ErrNotFound] if the project doesn't exist
//   - [integrations.ErrClient] for other 4xx responses
//   - [integrations.ErrNetwork] for transport failures and 5xx responses
//   - [ErrMalformed] if the body lacks a "releases" object
//   - Other errors for JSON decoding failures
//
// The returned Project pointer is never nil if err is nil.
func (c *Client) FetchProject(ctx context.Context, name string) (*Project, error) {
	var data apiResponse
	if err := c.Get(ctx, c.ProjectURL(name), &data); err != nil {
		switch {
		case errors.Is(err, integrations.ErrNotFound), errors.Is(err, integrations.ErrClient):
			return nil, fmt.Errorf("%w: pypi package %s", err, name)
		default:
			return nil, err
		}
	}

	if data.Releases == nil {
		return nil, fmt.Errorf("%w: pypi package %s: missing releases", ErrMalformed, name)
	}

	return &Project{
		Name:     data.Info.Name,
		Version:  data.Info.Version,
		Releases: *data.Releases,
	}, nil
}

type apiResponse struct {
	Info     apiInfo                     `json:"info"`
	Releases *map[string]json.RawMessage `json:"releases"`
}

type apiInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
