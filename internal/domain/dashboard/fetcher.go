package dashboard

import (
	"context"
	"errors"
	"maps"
	"sync"

	"paydash/internal/core/apperror"
)

// Fetcher lists a backend resource. params are the flattened filter values
// plus page and limit. Implementations report API failures as
// *apperror.AppError.
type Fetcher interface {
	Fetch(ctx context.Context, resource string, params map[string]string) (Envelope, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, resource string, params map[string]string) (Envelope, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, resource string, params map[string]string) (Envelope, error) {
	return f(ctx, resource, params)
}

// StaticFetcher serves envelopes held in memory, e.g. a captured API
// response. It records the params of the last request per resource.
type StaticFetcher struct {
	mu        sync.Mutex
	envelopes map[string]Envelope
	last      map[string]map[string]string
}

// NewStaticFetcher creates an empty StaticFetcher.
func NewStaticFetcher() *StaticFetcher {
	return &StaticFetcher{
		envelopes: make(map[string]Envelope),
		last:      make(map[string]map[string]string),
	}
}

// Set registers the envelope returned for resource.
func (f *StaticFetcher) Set(resource string, env Envelope) *StaticFetcher {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.envelopes[resource] = env
	return f
}

// Fetch implements Fetcher.
func (f *StaticFetcher) Fetch(ctx context.Context, resource string, params map[string]string) (Envelope, error) {
	if err := ctx.Err(); err != nil {
		return Envelope{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.last[resource] = maps.Clone(params)
	env, ok := f.envelopes[resource]
	if !ok {
		return Envelope{}, apperror.NewUpstream(resource, errors.New("no response recorded"))
	}
	return env, nil
}

// LastParams returns the params of the last Fetch for resource.
func (f *StaticFetcher) LastParams(resource string) (map[string]string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.last[resource]
	return maps.Clone(p), ok
}
