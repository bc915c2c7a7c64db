// Package source fetches the pre-generated JSON documents the service
// consumes.  Documents are read-only and addressed by bare name
// ("current_listings", "top_deals", ...); a source resolves the name to
// a file or URL and returns the raw bytes.  A non-success response is a
// definite failure and is never retried here; retry is the caller's
// decision.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// DataSource resolves a document name to its JSON bytes.
type DataSource interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// Dir serves documents from a local directory of <name>.json files.
type Dir struct {
	Path string
}

func NewDir(path string) *Dir { return &Dir{Path: path} }

func (d *Dir) Fetch(_ context.Context, name string) ([]byte, error) {
	b, err := os.ReadFile(filepath.Join(d.Path, name+".json"))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return b, nil
}

// HTTP serves documents from an upstream static host, GET <base>/<name>.json.
type HTTP struct {
	Base   string
	Client *http.Client
}

// NewHTTP builds an HTTP source with a bounded client.  The timeout is
// transport-level only; the service imposes no retries on top.
func NewHTTP(base string) *HTTP {
	return &HTTP{
		Base:   base,
		Client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (h *HTTP) Fetch(ctx context.Context, name string) ([]byte, error) {
	url := h.Base + "/" + name + ".json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := h.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", name, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", name, resp.StatusCode)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", name, err)
	}
	return b, nil
}
