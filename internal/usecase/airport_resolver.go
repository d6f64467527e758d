package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/flight-search/flight-reservations/internal/domain"
	"github.com/flight-search/flight-reservations/internal/infrastructure/cache"
)

// DefaultBatchConcurrency bounds concurrent lookups in ResolveBatch.
const DefaultBatchConcurrency = 4

// AirportResolver resolves IATA codes to airport metadata and memoizes the results.
// Unknown codes are not cached, so they are looked up again on every request.
type AirportResolver struct {
	provider    domain.FlightDataProvider
	cache       cache.Cache[domain.Airport]
	group       singleflight.Group
	concurrency int
	logger      zerolog.Logger
}

// NewAirportResolver creates a resolver. A concurrency below 1 uses DefaultBatchConcurrency.
func NewAirportResolver(provider domain.FlightDataProvider, c cache.Cache[domain.Airport], concurrency int, logger zerolog.Logger) *AirportResolver {
	if concurrency < 1 {
		concurrency = DefaultBatchConcurrency
	}
	return &AirportResolver{
		provider:    provider,
		cache:       c,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Resolve returns the airport for code, or nil when the code is blank or unknown.
func (r *AirportResolver) Resolve(ctx context.Context, code string) (*domain.Airport, error) {
	code = NormalizeCode(code)
	if code == "" {
		return nil, nil
	}

	cached, ok, err := r.cache.Get(ctx, code)
	if err != nil {
		r.logger.Warn().Err(err).Str("code", code).Msg("airport cache read failed")
	}
	if ok {
		return &cached, nil
	}

	// Concurrent misses for one code share a single provider call, detached from any
	// one caller's cancellation. Each caller still stops waiting when its ctx is done.
	shared := context.WithoutCancel(ctx)
	ch := r.group.DoChan(code, func() (any, error) {
		airport, err := r.provider.ResolveAirport(shared, code)
		if err != nil || airport == nil {
			return airport, err
		}
		if err := r.cache.Set(shared, code, *airport); err != nil {
			r.logger.Warn().Err(err).Str("code", code).Msg("airport cache write failed")
		}
		return airport, nil
	})

	var v any
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("resolve airport %s: %w", code, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, fmt.Errorf("resolve airport %s: %w", code, res.Err)
		}
		v = res.Val
	}

	airport, _ := v.(*domain.Airport)
	if airport == nil {
		return nil, nil
	}
	out := *airport
	return &out, nil
}

// ResolveBatch resolves a comma-separated list of codes. The result keeps the order
// of first appearance and omits unknown codes. Any provider error fails the batch.
func (r *AirportResolver) ResolveBatch(ctx context.Context, codesCSV string) (*domain.AirportMap, error) {
	codes := ParseCodes(codesCSV)
	results := make([]*domain.Airport, len(codes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, code := range codes {
		g.Go(func() error {
			airport, err := r.Resolve(gctx, code)
			if err != nil {
				return err
			}
			results[i] = airport
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := domain.NewAirportMap()
	for i, code := range codes {
		if results[i] != nil {
			out.Set(code, *results[i])
		}
	}
	return out, nil
}

// NormalizeCode trims and upper-cases a code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ParseCodes splits a comma-separated list into normalized codes, dropping blanks
// and duplicates while keeping first-occurrence order.
func ParseCodes(csv string) []string {
	seen := make(map[string]struct{})
	var codes []string
	for _, part := range strings.Split(csv, ",") {
		code := NormalizeCode(part)
		if code == "" {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	return codes
}
