package release

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChecker(t *testing.T, tag string, status int) *Checker {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/sdutta/revq/releases/latest" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(status)
		fmt.Fprintf(w, `{"tag_name": %q}`, tag)
	}))
	t.Cleanup(srv.Close)
	return NewChecker("sdutta", "revq", WithAPIBaseURL(srv.URL))
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		current string
		latest  string
		want    bool
	}{
		{"newer available", "v1.0.0", "v1.2.0", true},
		{"already latest", "v1.2.0", "v1.2.0", false},
		{"running ahead of release", "v1.3.0", "v1.2.0", false},
		{"without v prefix", "1.0.0", "v1.1.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestChecker(t, tt.latest, http.StatusOK)
			res, err := c.Check(context.Background(), tt.current)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.UpdateAvailable)
			assert.Equal(t, tt.latest, res.LatestVersion)
		})
	}
}

func TestCheckDevBuild(t *testing.T) {
	c := newTestChecker(t, "v1.0.0", http.StatusOK)
	_, err := c.Check(context.Background(), "(devel)")
	require.ErrorIs(t, err, ErrDevBuild)
}

func TestCheckInvalidVersion(t *testing.T) {
	c := newTestChecker(t, "v1.0.0", http.StatusOK)
	_, err := c.Check(context.Background(), "not-a-version")
	require.Error(t, err)
}

func TestCheckAPIError(t *testing.T) {
	c := newTestChecker(t, "v1.0.0", http.StatusForbidden)
	_, err := c.Check(context.Background(), "v1.0.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestCheckBadTag(t *testing.T) {
	c := newTestChecker(t, "release-2026", http.StatusOK)
	_, err := c.Check(context.Background(), "v1.0.0")
	require.Error(t, err)
}
