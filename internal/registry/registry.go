// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	version "github.com/hashicorp/go-version"
	"github.com/tidwall/gjson"

	"github.com/relctl/relctl/internal/log"
)

// ErrNotFound signals that the registry has no release metadata for the
// package. Any non-success HTTP status maps to this error rather than being
// surfaced as a transport failure.
var ErrNotFound = errors.New("package not found in registry")

// Client fetches the latest published release version for a package.
type Client interface {
	LatestVersion(ctx context.Context, name string) (string, error)
}

// HTTPClient queries a JSON-over-HTTP package catalog. The two public
// registries differ only in their endpoint shape and the JSON path holding
// the latest version, so both variants share this implementation.
type HTTPClient struct {
	baseURL     string
	pathFmt     string
	versionPath string
	httpc       *http.Client
}

// NewPyPI returns a client for the PyPI JSON API. An optional baseURL
// overrides the public endpoint (used by tests).
func NewPyPI(baseURL ...string) *HTTPClient {
	c := &HTTPClient{
		baseURL:     "https://pypi.org",
		pathFmt:     "/pypi/%s/json",
		versionPath: "info.version",
		httpc:       http.DefaultClient,
	}
	if len(baseURL) == 1 {
		c.baseURL = baseURL[0]
	}
	return c
}

// NewNPM returns a client for the npm registry. An optional baseURL overrides
// the public endpoint (used by tests).
func NewNPM(baseURL ...string) *HTTPClient {
	c := &HTTPClient{
		baseURL:     "https://registry.npmjs.org",
		pathFmt:     "/%s",
		versionPath: "dist-tags.latest",
		httpc:       http.DefaultClient,
	}
	if len(baseURL) == 1 {
		c.baseURL = baseURL[0]
	}
	return c
}

// LatestVersion issues a single GET against the catalog and extracts the
// latest release version. A non-success status returns ErrNotFound; a payload
// missing the version field, or carrying one that does not parse as a
// version, is a malformed-response error. No retries.
func (c *HTTPClient) LatestVersion(ctx context.Context, name string) (string, error) {
	endpoint := c.baseURL + fmt.Sprintf(c.pathFmt, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build registry request: %w", err)
	}

	res, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("registry request failed: %w", err)
	}
	defer res.Body.Close()

	log.Debugf("registry response: endpoint=%s status=%d", endpoint, res.StatusCode)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", fmt.Errorf("%s: %w", name, ErrNotFound)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read registry response: %w", err)
	}

	v := gjson.GetBytes(body, c.versionPath)
	if !v.Exists() {
		return "", fmt.Errorf("malformed registry response for %s: missing %s", name, c.versionPath)
	}

	// The version string becomes a tag ref, so reject anything that doesn't
	// parse as a version before a bogus ref reaches the repository API.
	if _, err := version.NewVersion(v.String()); err != nil {
		return "", fmt.Errorf("malformed registry version for %s: %w", name, err)
	}

	return v.String(), nil
}
