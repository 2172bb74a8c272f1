package runbook

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-bot/tarsy/pkg/config"
)

func TestConvertToRawURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "github blob url",
			in:   "https://github.com/acme/runbooks/blob/main/k8s/namespace-stuck.md",
			want: "https://raw.githubusercontent.com/acme/runbooks/refs/heads/main/k8s/namespace-stuck.md",
		},
		{
			name: "github tree url",
			in:   "https://github.com/acme/runbooks/tree/release-1.2/docs/alert.md",
			want: "https://raw.githubusercontent.com/acme/runbooks/refs/heads/release-1.2/docs/alert.md",
		},
		{
			name: "www prefix",
			in:   "https://www.github.com/acme/runbooks/blob/main/alert.md",
			want: "https://raw.githubusercontent.com/acme/runbooks/refs/heads/main/alert.md",
		},
		{
			name: "already raw",
			in:   "https://raw.githubusercontent.com/acme/runbooks/main/alert.md",
			want: "https://raw.githubusercontent.com/acme/runbooks/main/alert.md",
		},
		{
			name: "non-github passthrough",
			in:   "https://wiki.internal/runbooks/alert.md",
			want: "https://wiki.internal/runbooks/alert.md",
		},
		{
			name: "github without blob segment passthrough",
			in:   "https://github.com/acme/runbooks",
			want: "https://github.com/acme/runbooks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertToRawURL(tt.in))
		})
	}
}

func TestFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("# Runbook\nCheck finalizers."))
		}))
		defer srv.Close()

		content, err := NewService(0).Fetch(ctx, srv.URL+"/runbook.md")
		require.NoError(t, err)
		assert.Contains(t, content, "Check finalizers.")
	})

	t.Run("empty url is not an error", func(t *testing.T) {
		content, err := NewService(0).Fetch(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, content)
	})

	t.Run("http error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := NewService(0).Fetch(ctx, srv.URL+"/missing.md")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 404")
	})

	t.Run("unreachable server", func(t *testing.T) {
		_, err := NewService(0).Fetch(ctx, "http://127.0.0.1:1/runbook.md")
		assert.Error(t, err)
	})

	t.Run("oversize runbook rejected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(strings.Repeat("x", config.MaxRunbookSize+1)))
		}))
		defer srv.Close()

		_, err := NewService(0).Fetch(ctx, srv.URL+"/huge.md")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds")
	})
}
