package wordlist

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/verte-zerg/vocard/internal/model"
)

const defaultHTTPTimeout = 10 * time.Second

// HTTPSource serves the same layout as DirSource from a web server.
type HTTPSource struct {
	base   string
	client *http.Client
}

// NewHTTPSource returns a Source for baseURL. A zero timeout uses the default.
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &HTTPSource{
		base:   strings.TrimRight(baseURL, "/"),
		client: &http.Client{Timeout: timeout},
	}
}

// IsURL reports whether location should be served over HTTP.
func IsURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Keys fetches <base>/list.json.
func (s *HTTPSource) Keys(ctx context.Context) ([]string, error) {
	data, err := s.get(ctx, IndexFile)
	if err != nil {
		return nil, err
	}
	return ParseIndex(data)
}

// Fetch downloads <base>/<key>.csv.
func (s *HTTPSource) Fetch(ctx context.Context, key string) ([]model.WordPair, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	resp, err := s.request(ctx, url.PathEscape(key)+".csv")
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	return ParsePairs(resp.Body)
}

func (s *HTTPSource) get(ctx context.Context, name string) ([]byte, error) {
	resp, err := s.request(ctx, name)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %v", ErrSourceUnavailable, name, err)
	}
	return data, nil
}

func (s *HTTPSource) request(ctx context.Context, name string) (*http.Response, error) {
	target := s.base + "/" + name
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %v", ErrSourceUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: %s returned %s", ErrSourceUnavailable, target, resp.Status)
	}
	return resp, nil
}
