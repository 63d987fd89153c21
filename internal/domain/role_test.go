package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole(" admin "))
	assert.Equal(t, RoleAdmin, ParseRole("ADMIN"))
	assert.Equal(t, RoleUser, ParseRole("user"))
	assert.Equal(t, RoleUser, ParseRole(""))
	// Garbage never grants elevated access.
	assert.Equal(t, RoleUser, ParseRole("superuser"))
}

func TestAllowed_AdminOperations(t *testing.T) {
	for _, op := range []Operation{OpManagePackages, OpManageUsers, OpConfirmBooking, OpCompleteBooking, OpCancelBooking, OpViewAllBookings} {
		assert.True(t, Allowed(RoleAdmin, false, op), "admin %s", op)
	}
	assert.False(t, Allowed(RoleAdmin, false, OpCreateBooking))
}

func TestAllowed_UserOperations(t *testing.T) {
	assert.True(t, Allowed(RoleUser, false, OpCreateBooking))
	assert.True(t, Allowed(RoleUser, true, OpCancelBooking))

	assert.False(t, Allowed(RoleUser, false, OpCancelBooking), "cancelling someone else's booking")
	assert.False(t, Allowed(RoleUser, true, OpConfirmBooking))
	assert.False(t, Allowed(RoleUser, true, OpCompleteBooking))
	assert.False(t, Allowed(RoleUser, false, OpManagePackages))
	assert.False(t, Allowed(RoleUser, false, OpManageUsers))
	assert.False(t, Allowed(RoleUser, false, OpViewAllBookings))
}
