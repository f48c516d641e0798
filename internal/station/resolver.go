// Package station resolves the stations within walking distance of a
// restaurant, enriching nearby-search results with walking times from the
// directions API under a bounded-concurrency, rate-limit-aware schedule.
package station

import (
	"context"
	"errors"
	"sort"
	"time"

	"ramen-review-api/internal/models"
	"ramen-review-api/internal/places"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// PlacesClient is the slice of the places API the resolver needs.
type PlacesClient interface {
	NearbyStations(ctx context.Context, location models.LatLng, radius int) ([]models.StationCandidate, error)
	WalkingRoute(ctx context.Context, origin, destination models.LatLng) (*models.WalkingRoute, error)
}

// RetryPolicy controls the backoff applied when a batch of walking-route
// lookups is rate limited.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  int
	MaxDelay    time.Duration
}

// DefaultRetryPolicy retries a rate-limited batch up to 5 times, starting at
// 100ms and doubling to a 2s cap.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 5,
		BaseDelay:   100 * time.Millisecond,
		Multiplier:  2,
		MaxDelay:    2 * time.Second,
	}
}

// Delay returns the backoff delay before the given retry attempt (1-based).
func (p RetryPolicy) Delay(attempt int) time.Duration {
	delay := p.BaseDelay
	for i := 1; i < attempt; i++ {
		delay *= time.Duration(p.Multiplier)
		if delay >= p.MaxDelay {
			return p.MaxDelay
		}
	}
	if delay > p.MaxDelay {
		return p.MaxDelay
	}
	return delay
}

// batchSize bounds how many walking-route lookups are in flight at once.
const batchSize = 3

// batchPause is the minimum idle time between successive batches.
const batchPause = 100 * time.Millisecond

// Resolver finds nearby stations and ranks them by walking time.
type Resolver struct {
	client     PlacesClient
	policy     RetryPolicy
	batchPause time.Duration
	logger     zerolog.Logger
}

// NewResolver creates a resolver with the default retry policy.
func NewResolver(client PlacesClient, logger zerolog.Logger) *Resolver {
	return &Resolver{
		client:     client,
		policy:     DefaultRetryPolicy(),
		batchPause: batchPause,
		logger:     logger,
	}
}

// Resolve returns the stations within walkingCeilingMinutes of the origin,
// sorted ascending by walking time and de-duplicated by station name (first
// occurrence wins). Downstream failures degrade to an empty or partial result
// rather than an error; the only error returned is context cancellation.
func (r *Resolver) Resolve(ctx context.Context, origin models.LatLng, searchRadiusMeters, walkingCeilingMinutes int) ([]models.StationCandidate, error) {
	candidates, err := r.client.NearbyStations(ctx, origin, searchRadiusMeters)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		r.logger.Warn().Err(err).Msg("station search failed, returning empty result")
		return []models.StationCandidate{}, nil
	}

	for start := 0; start < len(candidates); start += batchSize {
		end := start + batchSize
		if end > len(candidates) {
			end = len(candidates)
		}
		if err := r.enrichBatch(ctx, origin, candidates[start:end]); err != nil {
			return nil, err
		}

		if end < len(candidates) {
			if err := sleep(ctx, r.batchPause); err != nil {
				return nil, err
			}
		}
	}

	reachable := make([]models.StationCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.WalkingTimeMinutes != nil && *c.WalkingTimeMinutes <= walkingCeilingMinutes {
			reachable = append(reachable, c)
		}
	}

	sort.SliceStable(reachable, func(i, j int) bool {
		return *reachable[i].WalkingTimeMinutes < *reachable[j].WalkingTimeMinutes
	})

	return dedupeByName(reachable), nil
}

// enrichBatch fills in walking times for one batch, retrying the whole batch
// under backoff when any lookup is rate limited. Other per-candidate errors
// leave that candidate's walking time unknown. Exhausted retries degrade the
// batch the same way instead of failing the resolve.
func (r *Resolver) enrichBatch(ctx context.Context, origin models.LatLng, batch []models.StationCandidate) error {
	for attempt := 1; attempt <= r.policy.MaxAttempts; attempt++ {
		rateLimited, err := r.tryBatch(ctx, origin, batch)
		if err != nil {
			return err
		}
		if !rateLimited {
			return nil
		}
		if attempt == r.policy.MaxAttempts {
			break
		}

		delay := r.policy.Delay(attempt)
		r.logger.Debug().Int("attempt", attempt).Dur("delay", delay).Msg("walking route batch rate limited, backing off")
		if err := sleep(ctx, delay); err != nil {
			return err
		}
	}

	r.logger.Warn().Int("batch_size", len(batch)).Msg("walking route batch exhausted retries")
	for i := range batch {
		batch[i].WalkingTimeMinutes = nil
	}
	return nil
}

// tryBatch issues the batch's walking-route lookups concurrently. It reports
// whether any lookup was rate limited; the returned error is cancellation only.
func (r *Resolver) tryBatch(ctx context.Context, origin models.LatLng, batch []models.StationCandidate) (bool, error) {
	var rateLimited bool

	g, gctx := errgroup.WithContext(ctx)
	for i := range batch {
		g.Go(func() error {
			route, err := r.client.WalkingRoute(gctx, origin, batch[i].Location)
			if err != nil {
				if errors.Is(err, places.ErrRateLimited) {
					return err
				}
				r.logger.Warn().Err(err).Str("station", batch[i].Name).Msg("walking route lookup failed")
				batch[i].WalkingTimeMinutes = nil
				return nil
			}
			if route == nil {
				batch[i].WalkingTimeMinutes = nil
				return nil
			}
			minutes := route.Minutes()
			batch[i].WalkingTimeMinutes = &minutes
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if errors.Is(err, places.ErrRateLimited) {
			rateLimited = true
		} else if ctx.Err() != nil {
			return false, ctx.Err()
		}
	}
	return rateLimited, nil
}

// dedupeByName keeps the first occurrence of each station name. The input is
// already sorted, so the first occurrence is the closest.
func dedupeByName(stations []models.StationCandidate) []models.StationCandidate {
	seen := make(map[string]bool, len(stations))
	result := make([]models.StationCandidate, 0, len(stations))
	for _, s := range stations {
		if seen[s.Name] {
			continue
		}
		seen[s.Name] = true
		result = append(result, s)
	}
	return result
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
