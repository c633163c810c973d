package out

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	apperrors "folio/internal/platform/errors"
)

// SourceFetcher reads candidate documents from the site tree or over HTTP.
type SourceFetcher struct {
	siteRoot string
	client   *http.Client
}

func NewSourceFetcher(siteRoot string, timeout time.Duration) *SourceFetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &SourceFetcher{siteRoot: siteRoot, client: &http.Client{Timeout: timeout}}
}

func (f *SourceFetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, fmt.Errorf("%w: empty source location", apperrors.ErrInvalidInput)
	}
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return f.fetchHTTP(ctx, location)
	}
	return f.readFile(ctx, location)
}

func (f *SourceFetcher) fetchHTTP(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := fmt.Errorf("fetch %s: HTTP %d", url, resp.StatusCode)
		if resp.StatusCode == http.StatusNotFound {
			err = fmt.Errorf("%w: %w", apperrors.ErrNotFound, err)
		}
		return nil, err
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	return body, nil
}

// readFile resolves location against the site root. A leading slash anchors
// at the root; paths that climb out of the root are never read.
func (f *SourceFetcher) readFile(ctx context.Context, location string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rel := filepath.Clean(strings.TrimPrefix(filepath.FromSlash(location), string(filepath.Separator)))
	if !filepath.IsLocal(rel) {
		return nil, fmt.Errorf("%w: %s is outside the site root", apperrors.ErrNotFound, location)
	}
	path := filepath.Join(f.siteRoot, rel)
	body, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return body, nil
}
