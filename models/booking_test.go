package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusIsValid(t *testing.T) {
	valid := []BookingStatus{
		BookingStatusPending,
		BookingStatusConfirmed,
		BookingStatusInProgress,
		BookingStatusCompleted,
		BookingStatusCancelled,
	}
	for _, s := range valid {
		assert.True(t, s.IsValid(), "expected %q to be valid", s)
	}

	assert.False(t, BookingStatus("archived").IsValid())
	assert.False(t, BookingStatus("").IsValid())
	assert.False(t, BookingStatus("Pending").IsValid(), "statuses are case sensitive")
}

func TestBookingStatusIsActive(t *testing.T) {
	assert.True(t, BookingStatusPending.IsActive())
	assert.True(t, BookingStatusConfirmed.IsActive())
	assert.True(t, BookingStatusInProgress.IsActive())

	assert.False(t, BookingStatusCompleted.IsActive())
	assert.False(t, BookingStatusCancelled.IsActive())
}

func TestBookingStatusIsTerminal(t *testing.T) {
	assert.True(t, BookingStatusCompleted.IsTerminal())
	assert.True(t, BookingStatusCancelled.IsTerminal())

	assert.False(t, BookingStatusPending.IsTerminal())
	assert.False(t, BookingStatusConfirmed.IsTerminal())
	assert.False(t, BookingStatusInProgress.IsTerminal())
}

func TestParseBookingStatus(t *testing.T) {
	s, err := ParseBookingStatus("confirmed")
	assert.NoError(t, err)
	assert.Equal(t, BookingStatusConfirmed, s)

	_, err = ParseBookingStatus("paused")
	assert.Error(t, err)
}

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleUser.IsValid())
	assert.True(t, RoleProvider.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("superuser").IsValid())
}
