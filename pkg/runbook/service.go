// Package runbook downloads the investigation runbook referenced by an
// alert. The content is fetched once per session; a fetch failure is
// reported to the caller, which proceeds without a runbook (fail-open).
package runbook

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tarsy-bot/tarsy/pkg/apperrors"
	"github.com/tarsy-bot/tarsy/pkg/config"
)

// Service fetches runbook content over HTTP.
type Service struct {
	httpClient *http.Client
	timeout    time.Duration
}

// NewService creates a Service with the given per-fetch timeout.
func NewService(timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = config.DefaultRunbookTimeout
	}
	return &Service{
		httpClient: &http.Client{Timeout: timeout},
		timeout:    timeout,
	}
}

// OverrideHTTPClientForTest replaces the internal HTTP client.
func (s *Service) OverrideHTTPClientForTest(httpClient *http.Client) {
	s.httpClient = httpClient
}

// Fetch downloads the runbook at rawURL. GitHub blob URLs are converted to
// raw content URLs first. An empty URL yields empty content, no error.
func (s *Service) Fetch(ctx context.Context, rawURL string) (string, error) {
	if rawURL == "" {
		return "", nil
	}

	downloadURL := ConvertToRawURL(rawURL)

	fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(fetchCtx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return "", apperrors.RunbookFetch(rawURL, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", apperrors.RunbookFetch(rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apperrors.RunbookFetch(rawURL,
			fmt.Errorf("server returned HTTP %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, config.MaxRunbookSize+1))
	if err != nil {
		return "", apperrors.RunbookFetch(rawURL, fmt.Errorf("read body: %w", err))
	}
	if len(body) > config.MaxRunbookSize {
		return "", apperrors.RunbookFetch(rawURL,
			fmt.Errorf("runbook exceeds %d bytes", config.MaxRunbookSize))
	}
	return string(body), nil
}
