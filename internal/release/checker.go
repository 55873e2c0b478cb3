// Package release checks GitHub for a newer published version.
package release

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

// ErrDevBuild reports a build without release version information.
var ErrDevBuild = errors.New("cannot check a development build")

const defaultAPIBaseURL = "https://api.github.com"

// Checker queries the GitHub releases API.
type Checker struct {
	owner      string
	repo       string
	apiBaseURL string
	client     *http.Client
}

// Option configures a Checker.
type Option func(*Checker)

// WithAPIBaseURL overrides the GitHub API base URL (used in tests).
func WithAPIBaseURL(base string) Option {
	return func(c *Checker) { c.apiBaseURL = strings.TrimRight(base, "/") }
}

// NewChecker creates a Checker for the given repository.
func NewChecker(owner, repo string, opts ...Option) *Checker {
	c := &Checker{
		owner:      owner,
		repo:       repo,
		apiBaseURL: defaultAPIBaseURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Result describes the outcome of a version check.
type Result struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
}

type releaseResponse struct {
	TagName string `json:"tag_name"`
}

// Check fetches the latest release tag and compares it to version.
// version must look like a release tag ("v1.2.3"); "(devel)" builds are
// rejected with ErrDevBuild.
func (c *Checker) Check(ctx context.Context, version string) (*Result, error) {
	if version == "" || version == "(devel)" {
		return nil, ErrDevBuild
	}
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.IsValid(version) {
		return nil, fmt.Errorf("invalid current version %q", version)
	}

	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.apiBaseURL, c.owner, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("github api status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var release releaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("decode release response: %w", err)
	}

	latest := release.TagName
	if !semver.IsValid(latest) {
		return nil, fmt.Errorf("invalid latest release tag %q", latest)
	}

	return &Result{
		CurrentVersion:  version,
		LatestVersion:   latest,
		UpdateAvailable: semver.Compare(latest, version) > 0,
	}, nil
}
