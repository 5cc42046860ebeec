package discover

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"slices"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const bypassHeader = "X-Rate-Limit-Bypass"

// MessageIDs probes GET /message/{id} for ids 1..count and returns the ids
// that exist, in ascending order.
func MessageIDs(ctx context.Context, baseURL string, count int, bypassSecret string, insecureSkipVerify bool, timeout time.Duration) ([]int64, error) {
	numWorkers := runtime.NumCPU() * 2
	fmt.Printf("Probing %d message ids (workers: %d)...\n", count, numWorkers)

	client := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSClientConfig:     &tls.Config{InsecureSkipVerify: insecureSkipVerify},
			MaxIdleConns:        numWorkers * 2,
			MaxIdleConnsPerHost: numWorkers * 2,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	var (
		mu  sync.Mutex
		ids []int64
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(numWorkers)

	for i := 1; i <= count; i++ {
		id := int64(i)
		g.Go(func() error {
			ok, err := exists(ctx, client, baseURL, id, bypassSecret)
			if err != nil {
				return fmt.Errorf("failed to probe message %d: %w", id, err)
			}
			if ok {
				mu.Lock()
				ids = append(ids, id)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.Sort(ids)
	fmt.Printf("Discovery complete: %d/%d messages found\n", len(ids), count)
	return ids, nil
}

func exists(ctx context.Context, client *http.Client, baseURL string, id int64, bypassSecret string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/message/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return false, err
	}
	if bypassSecret != "" {
		req.Header.Set(bypassHeader, bypassSecret)
	}

	resp, err := client.Do(req)
	if err != nil {
		return false, err
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
}
