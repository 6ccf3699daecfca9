// Package randomvin fetches random VINs from an external generator and
// decodes them, skipping duplicates within a bounded in-memory window.
package randomvin

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ashmarin/vinbot/internal/shared"
)

// DefaultSourceURL is the production random-VIN generator endpoint.
const DefaultSourceURL = "https://randomvin.com/getvin.php?type=random"

// DefaultTimeout bounds each source request.
const DefaultTimeout = 15 * time.Second

// maxSourceBodySize caps the response read; the body is a bare VIN string.
const maxSourceBodySize = 1024

// serviceName labels this upstream in error messages.
const serviceName = "random VIN service"

// HTTPSource fetches candidate VINs over HTTP. The response body is the
// VIN itself, no JSON envelope.
type HTTPSource struct {
	http *http.Client
	url  string
}

// NewHTTPSource creates a source client. Empty url falls back to the
// production endpoint; a non-positive timeout falls back to DefaultTimeout.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	if url == "" {
		url = DefaultSourceURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPSource{
		http: &http.Client{Timeout: timeout},
		url:  url,
	}
}

// Fetch requests one candidate VIN string. The caller validates format.
func (s *HTTPSource) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build random VIN request: %w", err)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		if shared.IsTimeoutError(err) {
			return "", shared.ErrTimeout
		}
		return "", fmt.Errorf("random VIN request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &shared.UpstreamStatusError{Service: serviceName, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxSourceBodySize))
	if err != nil {
		return "", fmt.Errorf("failed to read random VIN response: %w", err)
	}

	return strings.TrimSpace(string(body)), nil
}
