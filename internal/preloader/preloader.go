// Package preloader warms an HTTP cache by fetching image URLs in small
// concurrent batches with aggregate progress reporting.
package preloader

import (
	"context"
	"io"
	"math"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	defaultBatchSize = 3
	// pause between batches so a long queue does not monopolize the
	// network path
	defaultBatchDelay = 10 * time.Millisecond
)

// Progress is the aggregate preload state, recomputed after every
// individual URL settles
type Progress struct {
	Total      int  `json:"total"`
	Loaded     int  `json:"loaded"`
	Failed     int  `json:"failed"`
	Progress   int  `json:"progress"` // 0-100
	IsComplete bool `json:"isComplete"`
	IsLoading  bool `json:"isLoading"`
}

// Preloader fetches URLs in fixed-size batches: concurrent within a batch,
// sequential across batches. Successful URLs are remembered so repeat
// calls short-circuit; failures are counted and retried on later calls.
type Preloader struct {
	client     *http.Client
	batchSize  int
	batchDelay time.Duration
	onProgress func(Progress)

	mu       sync.Mutex
	loaded   map[string]bool // url -> fetch succeeded
	progress Progress
}

// New creates a preloader. onProgress may be nil; when set it is invoked
// after every individual URL settles.
func New(client *http.Client, onProgress func(Progress)) *Preloader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Preloader{
		client:     client,
		batchSize:  defaultBatchSize,
		batchDelay: defaultBatchDelay,
		onProgress: onProgress,
		loaded:     make(map[string]bool),
	}
}

// Preload fetches every URL and returns the final progress. An individual
// failure counts toward Failed and never halts the remaining queue; there
// is no retry within one call.
func (p *Preloader) Preload(ctx context.Context, urls []string) Progress {
	if len(urls) == 0 {
		return p.Snapshot()
	}

	p.mu.Lock()
	p.progress = Progress{
		Total:     len(urls),
		IsLoading: true,
	}
	p.mu.Unlock()

	for start := 0; start < len(urls); start += p.batchSize {
		end := min(start+p.batchSize, len(urls))

		g, gctx := errgroup.WithContext(ctx)
		for _, url := range urls[start:end] {
			g.Go(func() error {
				p.settle(url, p.fetch(gctx, url))
				return nil
			})
		}
		g.Wait()

		if end < len(urls) {
			select {
			case <-time.After(p.batchDelay):
			case <-ctx.Done():
			}
		}
	}

	p.mu.Lock()
	p.progress.IsComplete = true
	p.progress.IsLoading = false
	final := p.progress
	p.mu.Unlock()

	return final
}

// IsPreloaded reports whether a URL was fetched successfully before
func (p *Preloader) IsPreloaded(url string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loaded[url]
}

// Snapshot returns the current progress
func (p *Preloader) Snapshot() Progress {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.progress
}

// fetch pulls one URL into the cache path. Already-loaded URLs
// short-circuit as successes.
func (p *Preloader) fetch(ctx context.Context, url string) bool {
	if p.IsPreloaded(url) {
		return true
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return false
	}

	// Drain the body so the transport can reuse the connection and any
	// intermediate cache sees the full object
	_, err = io.Copy(io.Discard, resp.Body)
	return err == nil
}

// settle records one outcome and recomputes aggregate progress
func (p *Preloader) settle(url string, ok bool) {
	p.mu.Lock()

	p.loaded[url] = ok
	if ok {
		p.progress.Loaded++
	} else {
		p.progress.Failed++
	}

	settled := p.progress.Loaded + p.progress.Failed
	p.progress.Progress = int(math.Round(float64(settled) / float64(p.progress.Total) * 100))
	p.progress.IsComplete = settled == p.progress.Total
	p.progress.IsLoading = settled < p.progress.Total

	snapshot := p.progress
	callback := p.onProgress
	p.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
}
