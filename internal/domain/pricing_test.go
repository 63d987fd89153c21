package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/travel-package-booking/internal/model"
)

func TestBookingCostCents_TracksLivePrice(t *testing.T) {
	pkg := model.TravelPackage{ID: 1, PriceCents: 1299, IsActive: true}
	booking := model.Booking{PackageID: 1, People: 2}
	idx := PackageIndex([]model.TravelPackage{pkg})

	assert.Equal(t, uint64(2598), ResolveCostCents(booking, idx))

	// An admin price edit retroactively changes the derived cost.
	pkg.PriceCents = 1500
	idx = PackageIndex([]model.TravelPackage{pkg})
	assert.Equal(t, uint64(3000), ResolveCostCents(booking, idx))
}

func TestResolveCostCents_UnknownPackageCostsZero(t *testing.T) {
	booking := model.Booking{PackageID: 99, People: 4}
	assert.Zero(t, ResolveCostCents(booking, map[uint64]model.TravelPackage{}))
}

func TestTotalRevenueCents_OrderIndependent(t *testing.T) {
	pkgs := []model.TravelPackage{
		{ID: 1, PriceCents: 1299},
		{ID: 2, PriceCents: 2100},
	}
	idx := PackageIndex(pkgs)
	bookings := []model.Booking{
		{PackageID: 1, People: 2}, // 2598
		{PackageID: 2, People: 1}, // 2100
		{PackageID: 7, People: 3}, // unresolvable -> 0
	}

	want := uint64(4698)
	assert.Equal(t, want, TotalRevenueCents(bookings, idx))

	permuted := []model.Booking{bookings[2], bookings[0], bookings[1]}
	assert.Equal(t, want, TotalRevenueCents(permuted, idx))

	reversed := []model.Booking{bookings[1], bookings[2], bookings[0]}
	assert.Equal(t, want, TotalRevenueCents(reversed, idx))
}

func TestTotalRevenueCents_Additive(t *testing.T) {
	idx := PackageIndex([]model.TravelPackage{{ID: 1, PriceCents: 1000}})
	a := []model.Booking{{PackageID: 1, People: 1}}
	b := []model.Booking{{PackageID: 1, People: 3}}

	assert.Equal(t,
		TotalRevenueCents(a, idx)+TotalRevenueCents(b, idx),
		TotalRevenueCents(append(append([]model.Booking{}, a...), b...), idx),
	)
}
