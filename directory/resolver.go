// Package directory resolves person ids to display names through the club
// directory service. Lookups are cached until Invalidate is called, so the
// cache lifecycle is owned by whoever wires the resolver, not by package
// globals.
package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"
)

var ErrPersonNotFound = errors.New("person not found in directory")

type Resolver interface {
	Resolve(ctx context.Context, id string) (string, error)
	// Invalidate drops all cached names. The next Resolve call for each id
	// goes back to the directory service.
	Invalidate()
}

type resolver struct {
	url        string
	httpClient *http.Client

	mu    sync.Mutex
	names map[string]string
}

func New(url string) (Resolver, error) {
	if url == "" {
		return nil, fmt.Errorf("directory service url is required")
	}
	return &resolver{
		url: url,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		names: make(map[string]string),
	}, nil
}

// NewForTest creates a resolver pointed at a fake server.
func NewForTest(url string) Resolver {
	return &resolver{
		url: url,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		names: make(map[string]string),
	}
}

func (r *resolver) Resolve(ctx context.Context, id string) (string, error) {
	r.mu.Lock()
	name, found := r.names[id]
	r.mu.Unlock()
	if found {
		return name, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/v1/people/%s", r.url, id), nil)
	if err != nil {
		return "", fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", ErrPersonNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var parsed struct {
		ID          string `json:"id"`
		DisplayName string `json:"displayName"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("error parsing response from directory: %w", err)
	}

	r.mu.Lock()
	r.names[id] = parsed.DisplayName
	r.mu.Unlock()

	return parsed.DisplayName, nil
}

func (r *resolver) Invalidate() {
	r.mu.Lock()
	r.names = make(map[string]string)
	r.mu.Unlock()
}
