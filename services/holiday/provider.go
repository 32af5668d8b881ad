package holiday

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"

	"workdate/models"
)

// DefaultHolidayProvider fetches the remote holiday catalog and serves it
// from the injected cache while the entry is live. Concurrent cold-start
// callers collapse into a single in-flight fetch and share its result.
type DefaultHolidayProvider struct {
	SourceURL string
	Client    *http.Client
	Cache     Cache

	group singleflight.Group
}

func NewDefaultHolidayProvider(sourceURL string, cache Cache, fetchTimeout time.Duration) *DefaultHolidayProvider {
	return &DefaultHolidayProvider{
		SourceURL: sourceURL,
		Client:    &http.Client{Timeout: fetchTimeout},
		Cache:     cache,
	}
}

// Holidays returns the current holiday set. A successfully parsed empty
// catalog is a legitimate empty set, cached like any other; a transport
// failure surfaces as *SourceError with no stale fallback.
func (p *DefaultHolidayProvider) Holidays(ctx context.Context) (models.HolidaySet, error) {
	if set, ok := p.Cache.Get(ctx); ok {
		return set, nil
	}

	v, err, _ := p.group.Do(p.SourceURL, func() (any, error) {
		set, err := p.fetch(ctx)
		if err != nil {
			return nil, err
		}
		if err := p.Cache.Set(ctx, set); err != nil {
			return nil, NewSourceError("failed to store holiday catalog", err)
		}
		return set, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(models.HolidaySet), nil
}

func (p *DefaultHolidayProvider) fetch(ctx context.Context) (models.HolidaySet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.SourceURL, nil)
	if err != nil {
		return nil, NewSourceError("failed to build holiday catalog request", err)
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, NewSourceError("failed to reach holiday catalog", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, NewSourceError(fmt.Sprintf("holiday catalog returned status %d", resp.StatusCode), nil)
	}

	var doc any
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, NewSourceError("failed to decode holiday catalog", err)
	}
	return parseCatalog(doc), nil
}
