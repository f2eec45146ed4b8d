package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/propertyhub/marketplace/internal/api/metrics"
	"github.com/propertyhub/marketplace/internal/core/domain"
	"github.com/propertyhub/marketplace/internal/core/ports"
)

const trendingLimit = 5

// InsightsService aggregates market statistics over every listing and visit
// request. Results are cached when a cache is configured; cache failures are
// logged and bypassed.
type InsightsService struct {
	listings ports.ListingRepository
	visits   ports.VisitRequestRepository
	cache    ports.InsightsCache
	log      zerolog.Logger
}

// NewInsightsService returns an InsightsService. cache may be nil.
func NewInsightsService(
	listings ports.ListingRepository,
	visits ports.VisitRequestRepository,
	cache ports.InsightsCache,
	log zerolog.Logger,
) *InsightsService {
	return &InsightsService{listings: listings, visits: visits, cache: cache, log: log}
}

func (s *InsightsService) Get(ctx context.Context) (*domain.Insights, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		switch {
		case err != nil:
			metrics.InsightsCacheTotal.WithLabelValues("error").Inc()
			s.log.Warn().Err(err).Msg("insights cache read failed, recomputing")
		case cached != nil:
			metrics.InsightsCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		default:
			metrics.InsightsCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	return s.Refresh(ctx)
}

// Refresh recomputes the summary from the stores and overwrites the cached
// copy. Listings and visit requests are loaded concurrently.
func (s *InsightsService) Refresh(ctx context.Context) (*domain.Insights, error) {
	start := time.Now()

	var (
		listings []*domain.Listing
		visits   []*domain.VisitRequest
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		listings, err = s.listings.ListAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		visits, err = s.visits.ListAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("insights: %w", err)
	}

	out := ComputeInsights(listings, visits)
	metrics.InsightsComputeDuration.Observe(time.Since(start).Seconds())

	if s.cache != nil {
		if err := s.cache.Set(ctx, out); err != nil {
			s.log.Warn().Err(err).Msg("insights cache write failed")
		}
	}
	return out, nil
}

// ComputeInsights derives the market summary. Every list is sorted by name
// except trending locations, which are ordered by visit count with ties
// broken by city.
func ComputeInsights(listings []*domain.Listing, visits []*domain.VisitRequest) *domain.Insights {
	type priceAcc struct {
		total float64
		count int
	}
	prices := map[string]*priceAcc{}
	types := map[string]int{}
	cityOf := make(map[string]string, len(listings))

	for _, l := range listings {
		city := bucket(l.City)
		cityOf[l.ID] = city
		types[typeBucket(l.PropertyType)]++

		if l.RegularPrice == 0 || math.IsNaN(l.RegularPrice) {
			continue
		}
		acc, ok := prices[city]
		if !ok {
			acc = &priceAcc{}
			prices[city] = acc
		}
		acc.total += l.RegularPrice
		acc.count++
	}

	visitCounts := map[string]int{}
	for _, v := range visits {
		city, ok := cityOf[v.ListingID]
		if !ok {
			city = domain.UnknownBucket
		}
		visitCounts[city]++
	}

	out := &domain.Insights{
		AvgPriceByCity:    make([]domain.CityPrice, 0, len(prices)),
		DemandByCity:      make([]domain.CityDemand, 0, len(visitCounts)),
		TrendingLocations: make([]domain.CityVisits, 0, trendingLimit),
		PropertyTypeStats: make([]domain.PropertyTypeCount, 0, len(types)),
	}

	for city, acc := range prices {
		out.AvgPriceByCity = append(out.AvgPriceByCity, domain.CityPrice{
			City:         city,
			AveragePrice: int64(math.Round(acc.total / float64(acc.count))),
		})
	}
	sort.Slice(out.AvgPriceByCity, func(i, j int) bool { return out.AvgPriceByCity[i].City < out.AvgPriceByCity[j].City })

	trending := make([]domain.CityVisits, 0, len(visitCounts))
	for city, n := range visitCounts {
		out.DemandByCity = append(out.DemandByCity, domain.CityDemand{City: city, Demand: demandTier(n)})
		trending = append(trending, domain.CityVisits{City: city, Visits: n})
	}
	sort.Slice(out.DemandByCity, func(i, j int) bool { return out.DemandByCity[i].City < out.DemandByCity[j].City })
	sort.Slice(trending, func(i, j int) bool {
		if trending[i].Visits != trending[j].Visits {
			return trending[i].Visits > trending[j].Visits
		}
		return trending[i].City < trending[j].City
	})
	if len(trending) > trendingLimit {
		trending = trending[:trendingLimit]
	}
	out.TrendingLocations = append(out.TrendingLocations, trending...)

	for t, n := range types {
		out.PropertyTypeStats = append(out.PropertyTypeStats, domain.PropertyTypeCount{Type: t, Count: n})
	}
	sort.Slice(out.PropertyTypeStats, func(i, j int) bool { return out.PropertyTypeStats[i].Type < out.PropertyTypeStats[j].Type })

	return out
}

func demandTier(visits int) string {
	switch {
	case visits >= 10:
		return domain.DemandHigh
	case visits >= 5:
		return domain.DemandMedium
	default:
		return domain.DemandLow
	}
}

// typeBucket keeps the property type as stored; only an empty one is Unknown.
func typeBucket(s string) string {
	if s == "" {
		return domain.UnknownBucket
	}
	return s
}

func bucket(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return domain.UnknownBucket
	}
	return s
}
