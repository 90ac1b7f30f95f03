package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// DefaultTimeout bounds each request path (joined, then the separate calls).
const DefaultTimeout = 15 * time.Second

// APIClient reads from the matches/courts/groups HTTP API.
type APIClient struct {
	httpClient *http.Client
	BaseURL    string
	Timeout    time.Duration
}

// NewClient creates a new backend client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *APIClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &APIClient{
		httpClient: &http.Client{},
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Timeout:    timeout,
	}
}

// Ensure APIClient implements the Client interface.
var _ Client = (*APIClient)(nil)

// FetchAll tries the joined endpoint first and falls back to fetching matches and
// courts separately. Only one fallback hop is made; nothing is retried or cached.
func (c *APIClient) FetchAll(ctx context.Context) (Result, error) {
	res, err := c.fetchJoined(ctx)
	if err == nil {
		log.Info("Fetched backend data", "path", "joined", "matches", len(res.Matches), "courts", len(res.Courts), "groups", len(res.Groups))
		return res, nil
	}
	log.Warn("Joined endpoint failed, falling back to separate calls", "error", err)

	res, fallbackErr := c.fetchSeparate(ctx)
	if fallbackErr != nil {
		return Result{}, fmt.Errorf("%w: joined: %v; separate: %w", ErrUnavailable, err, fallbackErr)
	}
	log.Info("Fetched backend data", "path", "separate", "matches", len(res.Matches), "courts", len(res.Courts))
	return res, nil
}

func (c *APIClient) fetchJoined(ctx context.Context) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	rows, err := getList[joinedRow](ctx, c, "/api/matches/full")
	if err != nil {
		return Result{}, err
	}

	res := Result{Groups: make(map[string]FbGroup), Joined: true}
	seen := make(map[string]bool)
	for _, row := range rows {
		res.Matches = append(res.Matches, row.Match)
		if row.Court != nil && !seen[row.Court.ID] {
			seen[row.Court.ID] = true
			res.Courts = append(res.Courts, *row.Court)
		}
		if row.FbGroup != nil {
			res.Groups[row.FbGroup.FbGroupID] = *row.FbGroup
		}
	}
	return res, nil
}

func (c *APIClient) fetchSeparate(ctx context.Context) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	var (
		matches []Match
		courts  []Court
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		matches, err = getList[Match](gctx, c, "/api/matches")
		return err
	})
	g.Go(func() error {
		var err error
		courts, err = getList[Court](gctx, c, "/api/courts")
		return err
	})
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return Result{Matches: matches, Courts: courts, Groups: make(map[string]FbGroup)}, nil
}

// FetchGroups lists the community groups the crawler knows about.
func (c *APIClient) FetchGroups(ctx context.Context) ([]FbGroup, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	groups, err := getList[FbGroup](ctx, c, "/api/fb-groups")
	if err != nil {
		return nil, fmt.Errorf("error fetching groups: %w", err)
	}
	return groups, nil
}

// getList performs a GET and decodes the `data` array of the response envelope.
func getList[T any](ctx context.Context, c *APIClient, path string) ([]T, error) {
	url := c.BaseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	log.Debug("Requesting backend", "url", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Debug("Received non-OK HTTP status from backend", "path", path, "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("received non-OK HTTP status from %s: %d", path, resp.StatusCode)
	}

	var body envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return body.Data, nil
}
