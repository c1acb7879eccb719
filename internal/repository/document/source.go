package document

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"vocabquiz/internal/domain"
)

// FileSource loads the word document from a local file
type FileSource struct {
	Path string
}

// NewFileSource creates a file word source
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// LoadWords reads and parses the file
func (s *FileSource) LoadWords(_ context.Context) (*domain.WordBank, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// HTTPSource fetches the word document from a URL
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// NewHTTPSource creates a URL word source with a bounded client
func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		URL:    url,
		Client: &http.Client{Timeout: 15 * time.Second},
	}
}

// LoadWords fetches and parses the document
func (s *HTTPSource) LoadWords(ctx context.Context) (*domain.WordBank, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, s.URL)
	}

	return Parse(resp.Body)
}
