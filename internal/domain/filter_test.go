package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/travel-package-booking/internal/model"
)

func samplePackages() []model.TravelPackage {
	return []model.TravelPackage{
		{ID: 1, Destination: "Bali, Indonesia", DurationDays: 7, PriceCents: 129900, IsActive: true},
		{ID: 2, Destination: "Paris, France", DurationDays: 5, PriceCents: 159900, IsActive: true},
		{ID: 3, Destination: "Tokyo, Japan", DurationDays: 8, PriceCents: 210000, IsActive: true},
		{ID: 4, Destination: "Santorini, Greece", DurationDays: 6, PriceCents: 189000, IsActive: false},
	}
}

func wideFilter(activeOnly bool) PackageFilter {
	return PackageFilter{
		MinDuration:   1,
		MaxDuration:   30,
		MinPriceCents: 0,
		MaxPriceCents: 20000000,
		ActiveOnly:    activeOnly,
	}
}

func TestFilterPackages_ActiveOnlyReturnsActiveSubset(t *testing.T) {
	pkgs := samplePackages()

	got := FilterPackages(pkgs, wideFilter(true))

	require.Len(t, got, 3)
	for _, p := range got {
		assert.True(t, p.IsActive)
	}
}

func TestFilterPackages_AdminViewIncludesInactive(t *testing.T) {
	got := FilterPackages(samplePackages(), wideFilter(false))
	assert.Len(t, got, 4)
}

func TestFilterPackages_DestinationSubstringCaseInsensitive(t *testing.T) {
	f := wideFilter(true)
	f.Destination = "bAlI"

	got := FilterPackages(samplePackages(), f)

	require.Len(t, got, 1)
	assert.Equal(t, uint64(1), got[0].ID)
}

func TestFilterPackages_EmptyDestinationMatchesAll(t *testing.T) {
	f := wideFilter(true)
	f.Destination = "   "

	got := FilterPackages(samplePackages(), f)
	assert.Len(t, got, 3)
}

func TestFilterPackages_Conjunctive(t *testing.T) {
	f := wideFilter(true)
	f.MinDuration = 6
	f.MaxPriceCents = 150000

	// Only Bali has duration >= 6 and price <= 1500.00.
	got := FilterPackages(samplePackages(), f)
	require.Len(t, got, 1)
	assert.Equal(t, "Bali, Indonesia", got[0].Destination)
}

func TestFilterPackages_InvertedRangeYieldsEmptyWithoutError(t *testing.T) {
	f := wideFilter(true)
	f.MinDuration = 10
	f.MaxDuration = 2

	got := FilterPackages(samplePackages(), f)
	assert.Empty(t, got)

	f = wideFilter(true)
	f.MinPriceCents = 500000
	f.MaxPriceCents = 100

	got = FilterPackages(samplePackages(), f)
	assert.Empty(t, got)
}

func TestFilterPackages_PriceRangeInclusive(t *testing.T) {
	f := wideFilter(true)
	f.MinPriceCents = 129900
	f.MaxPriceCents = 129900

	got := FilterPackages(samplePackages(), f)
	require.Len(t, got, 1)
	assert.Equal(t, uint64(1), got[0].ID)
}
