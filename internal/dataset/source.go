package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"travelrec/internal/config"
)

// maxDocumentSize caps the size of a fetched recommendations document.
const maxDocumentSize = 10 << 20

// Source retrieves the raw recommendations document.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	Location() string
}

// HTTPSource fetches the document over HTTP(S).
type HTTPSource struct {
	url    string
	client *http.Client
}

// FileSource reads the document from the local filesystem.
type FileSource struct {
	path string
}

// NewSource picks an HTTP or file source based on the location's scheme.
func NewSource(location string, client *http.Client) Source {
	lower := strings.ToLower(location)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		if client == nil {
			client = http.DefaultClient
		}
		return &HTTPSource{url: location, client: client}
	}
	return &FileSource{path: strings.TrimPrefix(location, "file://")}
}

// NewHTTPClient builds the client used for dataset fetches. When client
// credentials are configured the client attaches OAuth2 bearer tokens.
// A zero DatasetTimeout leaves the fetch unbounded.
func NewHTTPClient(ctx context.Context, cfg *config.Config) *http.Client {
	base := &http.Client{Timeout: cfg.DatasetTimeout}
	if !cfg.UsesDatasetCredentials() {
		return base
	}

	cc := clientcredentials.Config{
		ClientID:     cfg.DatasetClientID,
		ClientSecret: cfg.DatasetClientSecret,
		TokenURL:     cfg.DatasetTokenURL,
	}
	client := cc.Client(context.WithValue(ctx, oauth2.HTTPClient, base))
	client.Timeout = cfg.DatasetTimeout
	return client
}

// Fetch performs a GET request and returns the body of a 2xx response.
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "TravelRec-DatasetLoader/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: HTTP %s", ErrFetchFailed, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return body, nil
}

// Location returns the URL being fetched.
func (s *HTTPSource) Location() string {
	return s.url
}

// Fetch reads the file.
func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s not found", ErrFetchFailed, s.path)
		}
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return data, nil
}

// Location returns the file path.
func (s *FileSource) Location() string {
	return s.path
}
