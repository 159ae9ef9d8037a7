package loader

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	pkgfeed "github.com/goliatone/go-gridgen/pkg/feed"
)

func loadHTTP(ctx context.Context, client *http.Client, url string, timeout time.Duration) ([]byte, error) {
	if client == nil {
		return nil, errors.New("feed loader: http client is not configured")
	}
	if url == "" {
		return nil, errors.New("feed loader: url is required")
	}

	reqCtx := ctx
	var cancel context.CancelFunc
	if timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &pkgfeed.FetchError{URL: url, Err: err}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &pkgfeed.FetchError{URL: url, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &pkgfeed.FetchError{URL: url, Status: resp.StatusCode, Err: errors.New("unexpected status " + resp.Status)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &pkgfeed.FetchError{URL: url, Err: err}
	}
	return data, nil
}
