package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propertyhub/marketplace/internal/core/domain"
)

type memoryInsightsCache struct {
	stored  *domain.Insights
	getErr  error
	sets    int
	lookups int
}

func (c *memoryInsightsCache) Get(context.Context) (*domain.Insights, error) {
	c.lookups++
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.stored, nil
}

func (c *memoryInsightsCache) Set(_ context.Context, in *domain.Insights) error {
	c.sets++
	c.stored = in
	return nil
}

func TestComputeInsights(t *testing.T) {
	listings := []*domain.Listing{
		{ID: "a", City: "Pune", RegularPrice: 100, PropertyType: "flat"},
		{ID: "b", City: " Pune ", RegularPrice: 201, PropertyType: "flat"},
		{ID: "c", City: "Goa", RegularPrice: 0, PropertyType: "villa"},
		{ID: "d", City: "", RegularPrice: 50},
	}

	var visits []*domain.VisitRequest
	add := func(listingID string, n int) {
		for i := 0; i < n; i++ {
			visits = append(visits, &domain.VisitRequest{ID: fmt.Sprintf("%s-%d", listingID, i), ListingID: listingID})
		}
	}
	add("a", 10)
	add("c", 5)
	add("d", 1)
	add("gone", 2)

	got := ComputeInsights(listings, visits)

	assert.Equal(t, []domain.CityPrice{
		{City: "Pune", AveragePrice: 151},
		{City: "Unknown", AveragePrice: 50},
	}, got.AvgPriceByCity)

	assert.Equal(t, []domain.CityDemand{
		{City: "Goa", Demand: domain.DemandMedium},
		{City: "Pune", Demand: domain.DemandHigh},
		{City: "Unknown", Demand: domain.DemandLow},
	}, got.DemandByCity)

	assert.Equal(t, []domain.CityVisits{
		{City: "Pune", Visits: 10},
		{City: "Goa", Visits: 5},
		{City: "Unknown", Visits: 3},
	}, got.TrendingLocations)

	assert.Equal(t, []domain.PropertyTypeCount{
		{Type: "Unknown", Count: 1},
		{Type: "flat", Count: 2},
		{Type: "villa", Count: 1},
	}, got.PropertyTypeStats)
}

func TestComputeInsights_KeepsRawTypesAndNonZeroPrices(t *testing.T) {
	listings := []*domain.Listing{
		{ID: "a", City: "Pune", RegularPrice: 300, PropertyType: " flat"},
		{ID: "b", City: "Pune", RegularPrice: -100, PropertyType: "flat"},
		{ID: "c", City: "Pune", RegularPrice: 0, PropertyType: "  "},
	}

	got := ComputeInsights(listings, nil)

	assert.Equal(t, []domain.CityPrice{{City: "Pune", AveragePrice: 100}}, got.AvgPriceByCity)
	assert.Equal(t, []domain.PropertyTypeCount{
		{Type: "  ", Count: 1},
		{Type: " flat", Count: 1},
		{Type: "flat", Count: 1},
	}, got.PropertyTypeStats)
}

func TestComputeInsights_TrendingTopFive(t *testing.T) {
	var listings []*domain.Listing
	var visits []*domain.VisitRequest
	for i, city := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		id := "l" + city
		listings = append(listings, &domain.Listing{ID: id, City: city})
		for j := 0; j <= i%3; j++ {
			visits = append(visits, &domain.VisitRequest{ListingID: id})
		}
	}

	got := ComputeInsights(listings, visits)
	require.Len(t, got.TrendingLocations, 5)
	assert.Equal(t, domain.CityVisits{City: "C", Visits: 3}, got.TrendingLocations[0])
	assert.Equal(t, domain.CityVisits{City: "F", Visits: 3}, got.TrendingLocations[1])
	assert.Equal(t, "B", got.TrendingLocations[2].City)
}

func TestComputeInsights_EmptyIsNotNil(t *testing.T) {
	got := ComputeInsights(nil, nil)
	assert.NotNil(t, got.AvgPriceByCity)
	assert.NotNil(t, got.DemandByCity)
	assert.NotNil(t, got.TrendingLocations)
	assert.NotNil(t, got.PropertyTypeStats)
}

func TestInsightsService_UsesCache(t *testing.T) {
	listings := newStubListingRepo(&domain.Listing{ID: "a", City: "Pune", RegularPrice: 10})
	cache := &memoryInsightsCache{}
	svc := NewInsightsService(listings, newStubVisitRepo(), cache, zerolog.Nop())
	ctx := context.Background()

	first, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	_ = listings.Delete(ctx, "a")
	second, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second, "second call should be served from cache")
	assert.Equal(t, 1, cache.sets)
}

func TestInsightsService_CacheErrorBypassed(t *testing.T) {
	cache := &memoryInsightsCache{getErr: errors.New("redis down")}
	svc := NewInsightsService(newStubListingRepo(), newStubVisitRepo(), cache, zerolog.Nop())

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestInsightsService_NilCache(t *testing.T) {
	svc := NewInsightsService(newStubListingRepo(), newStubVisitRepo(), nil, zerolog.Nop())

	_, err := svc.Get(context.Background())
	require.NoError(t, err)
}

func TestInsightsService_RefreshOverwritesCache(t *testing.T) {
	listings := newStubListingRepo(
		&domain.Listing{ID: "a", City: "Pune", RegularPrice: 10},
		&domain.Listing{ID: "b", City: "Goa", RegularPrice: 30},
	)
	cache := &memoryInsightsCache{}
	svc := NewInsightsService(listings, newStubVisitRepo(), cache, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Get(ctx)
	require.NoError(t, err)

	_ = listings.Delete(ctx, "b")
	refreshed, err := svc.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, cache.sets)
	assert.Equal(t, []domain.CityPrice{{City: "Pune", AveragePrice: 10}}, refreshed.AvgPriceByCity)

	served, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, refreshed, served)
}
