package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus(" pending ")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, s)

	_, err = ParseStatus("approved")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestStateMachine_ReachableFromPending(t *testing.T) {
	assert.ElementsMatch(t,
		[]Status{StatusConfirmed, StatusCancelled},
		StatusPending.NextStatuses(),
	)
	assert.False(t, CanTransition(StatusPending, StatusCompleted))
	assert.False(t, CanTransition(StatusPending, StatusPending))
}

func TestStateMachine_TerminalStates(t *testing.T) {
	for _, terminal := range []Status{StatusCompleted, StatusCancelled} {
		assert.True(t, terminal.Terminal())
		for _, to := range []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
			assert.False(t, CanTransition(terminal, to), "%s -> %s must be forbidden", terminal, to)
		}
	}
}

func TestAuthorizeTransition_AdminAuthority(t *testing.T) {
	cases := []struct{ from, to Status }{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusCompleted},
		{StatusConfirmed, StatusCancelled},
	}
	for _, tc := range cases {
		assert.NoError(t, AuthorizeTransition(RoleAdmin, false, tc.from, tc.to),
			"admin %s -> %s", tc.from, tc.to)
	}
}

func TestAuthorizeTransition_OwnerCancelsOwnPending(t *testing.T) {
	assert.NoError(t, AuthorizeTransition(RoleUser, true, StatusPending, StatusCancelled))
}

func TestAuthorizeTransition_NonOwnerDenied(t *testing.T) {
	err := AuthorizeTransition(RoleUser, false, StatusPending, StatusCancelled)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAuthorizeTransition_UserMayNotConfirmCompleteOrCancelConfirmed(t *testing.T) {
	err := AuthorizeTransition(RoleUser, true, StatusPending, StatusConfirmed)
	assert.ErrorIs(t, err, ErrForbidden)

	err = AuthorizeTransition(RoleUser, true, StatusConfirmed, StatusCompleted)
	assert.ErrorIs(t, err, ErrForbidden)

	err = AuthorizeTransition(RoleUser, true, StatusConfirmed, StatusCancelled)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAuthorizeTransition_TerminalRejectedBeforeAuthority(t *testing.T) {
	err := AuthorizeTransition(RoleAdmin, false, StatusCancelled, StatusConfirmed)
	assert.ErrorIs(t, err, ErrTerminalStatus)

	err = AuthorizeTransition(RoleAdmin, false, StatusCompleted, StatusCancelled)
	assert.ErrorIs(t, err, ErrTerminalStatus)
}

func TestAuthorizeTransition_InvalidEdge(t *testing.T) {
	err := AuthorizeTransition(RoleAdmin, false, StatusPending, StatusCompleted)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
