package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/travel-package-booking/internal/model"
)

func TestToBookingPart_DerivesDestinationAndTotal(t *testing.T) {
	pkg := model.TravelPackage{ID: 3, Destination: "Kyoto", PriceCents: 150000}
	idx := map[uint64]model.TravelPackage{pkg.ID: pkg}
	b := model.Booking{
		ID: 11, PackageID: 3, UserID: 7, UserName: "Ada",
		TravelDate: "2026-09-15", People: 2, Status: "PENDING",
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	part := toBookingPart(b, idx)
	assert.Equal(t, "Kyoto", part.Destination)
	assert.Equal(t, uint64(300000), part.TotalCents)
	assert.Equal(t, "2026-08-01T12:00:00Z", part.CreatedAt)
}

func TestToBookingPart_MissingPackageDegrades(t *testing.T) {
	b := model.Booking{ID: 11, PackageID: 99, People: 4, Status: "CONFIRMED"}

	part := toBookingPart(b, map[uint64]model.TravelPackage{})
	assert.Equal(t, unknownPackageLabel, part.Destination)
	assert.Equal(t, uint64(0), part.TotalCents)
}

func TestStatusEvent_CreationOmitsOldStatus(t *testing.T) {
	b := model.Booking{ID: 5, UserID: 2, UserName: "Ada", PackageID: 3,
		TravelDate: "2026-09-15", People: 2, Status: "PENDING"}

	ev := statusEvent(b, "Kyoto", 300000, "")
	assert.Empty(t, ev.OldStatus)
	assert.Equal(t, "PENDING", ev.NewStatus)
	assert.Equal(t, uint64(300000), ev.TotalCents)
	assert.NotEmpty(t, ev.OccurredAt)

	ev = statusEvent(b, "Kyoto", 300000, "PENDING")
	assert.Equal(t, "PENDING", ev.OldStatus)
}
