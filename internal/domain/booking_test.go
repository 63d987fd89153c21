package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/travel-package-booking/internal/model"
)

var fixedNow = time.Date(2026, 3, 10, 15, 4, 5, 0, time.UTC)

func activePkg() *model.TravelPackage {
	return &model.TravelPackage{ID: 1, Destination: "Bali, Indonesia", PriceCents: 129900, IsActive: true}
}

func validReq() BookingRequest {
	return BookingRequest{PackageID: 1, TravelDate: "2026-03-11", People: 2}
}

func TestValidateBookingRequest_OK(t *testing.T) {
	assert.NoError(t, ValidateBookingRequest(validReq(), activePkg(), fixedNow))
}

func TestValidateBookingRequest_PeopleBounds(t *testing.T) {
	for _, people := range []int{0, -1, 11} {
		req := validReq()
		req.People = people
		err := ValidateBookingRequest(req, activePkg(), fixedNow)
		require.Error(t, err, "people=%d", people)
		assert.ErrorIs(t, err, ErrValidation)
	}
	for _, people := range []int{1, 10} {
		req := validReq()
		req.People = people
		assert.NoError(t, ValidateBookingRequest(req, activePkg(), fixedNow), "people=%d", people)
	}
}

func TestValidateBookingRequest_TravelDateMustBeAfterToday(t *testing.T) {
	req := validReq()
	req.TravelDate = "2026-03-10" // same day as creation
	err := ValidateBookingRequest(req, activePkg(), fixedNow)
	assert.ErrorIs(t, err, ErrValidation)

	req.TravelDate = "2025-12-31"
	err = ValidateBookingRequest(req, activePkg(), fixedNow)
	assert.ErrorIs(t, err, ErrValidation)

	req.TravelDate = "02/05/2026"
	err = ValidateBookingRequest(req, activePkg(), fixedNow)
	assert.ErrorIs(t, err, ErrValidation)

	req.TravelDate = ""
	err = ValidateBookingRequest(req, activePkg(), fixedNow)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidateBookingRequest_InactivePackage(t *testing.T) {
	pkg := activePkg()
	pkg.IsActive = false
	err := ValidateBookingRequest(validReq(), pkg, fixedNow)
	assert.ErrorIs(t, err, ErrPackageInactive)
}

func TestValidateBookingRequest_MissingPackage(t *testing.T) {
	err := ValidateBookingRequest(validReq(), nil, fixedNow)
	assert.ErrorIs(t, err, ErrNotFound)
}
