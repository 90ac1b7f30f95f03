package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultTimeout bounds a snapshot download.
const DefaultTimeout = 15 * time.Second

// HTTPFetcher downloads the snapshot document from a fixed URL.
type HTTPFetcher struct {
	httpClient *http.Client
	URL        string
	Timeout    time.Duration
}

// NewHTTPFetcher creates a fetcher for the document at url.
func NewHTTPFetcher(url string, timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPFetcher{
		httpClient: &http.Client{},
		URL:        url,
		Timeout:    timeout,
	}
}

var _ Fetcher = (*HTTPFetcher)(nil)

// Fetch downloads and decodes the document.
func (f *HTTPFetcher) Fetch(ctx context.Context) (Document, error) {
	ctx, cancel := context.WithTimeout(ctx, f.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return Document{}, fmt.Errorf("%w: failed to create request: %w", ErrSnapshot, err)
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return Document{}, fmt.Errorf("%w: failed to execute request: %w", ErrSnapshot, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error("Received non-OK HTTP status for snapshot", "url", f.URL, "status", resp.StatusCode)
		return Document{}, fmt.Errorf("%w: received non-OK HTTP status: %d", ErrSnapshot, resp.StatusCode)
	}
	return decode(resp.Body)
}

// FileFetcher reads the snapshot document from disk.
type FileFetcher struct {
	Path string
}

var _ Fetcher = FileFetcher{}

// Fetch reads and decodes the document.
func (f FileFetcher) Fetch(ctx context.Context) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrSnapshot, err)
	}
	file, err := os.Open(f.Path)
	if err != nil {
		return Document{}, fmt.Errorf("%w: failed to open %s: %w", ErrSnapshot, f.Path, err)
	}
	defer file.Close()
	return decode(file)
}

func decode(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("%w: failed to decode document: %w", ErrSnapshot, err)
	}
	log.Debug("Decoded snapshot", "matches", len(doc.Matches), "courts", len(doc.Courts), "lastUpdated", doc.Metadata.LastUpdated)
	return doc, nil
}
