package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// FetchCaptions downloads the caption payload behind url. Up to maxRetries
// extra attempts are made with exponential backoff on transient failures;
// zero means a single attempt. Client errors from the caption server are
// not retried.
func FetchCaptions(ctx context.Context, url string, timeout time.Duration, maxRetries uint64) (string, error) {
	client := &http.Client{Timeout: timeout}

	var payload string
	operation := func() error {
		body, err := fetchOnce(ctx, client, url)
		if err != nil {
			return err
		}
		payload = body
		return nil
	}

	b := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries)
	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return "", err
	}
	return payload, nil
}

func fetchOnce(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", backoff.Permanent(fmt.Errorf("create request: %w", err))
	}
	req.Header = RandomHeaders()

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch captions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		statusErr := fmt.Errorf("caption server returned status %d", resp.StatusCode)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return "", backoff.Permanent(statusErr)
		}
		return "", statusErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read captions: %w", err)
	}
	return string(body), nil
}
