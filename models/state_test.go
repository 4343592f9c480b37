package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConversationStateDefaults(t *testing.T) {
	st := NewConversationState()
	assert.Equal(t, TripTypeOneWay, st.TripType)
	assert.Equal(t, CabinEconomy, st.CabinClass)
	assert.Equal(t, "USD", st.Currency)
	assert.Equal(t, 1, st.Travelers)
	assert.Equal(t, StepGreeting, st.CurrentStep)
	assert.Empty(t, st.Token)
	assert.True(t, st.TokenExpiresAt.IsZero())
}

func TestMissingSearchFieldsEmptyState(t *testing.T) {
	st := NewConversationState()
	missing := MissingSearchFields(st)
	assert.ElementsMatch(t, []string{FieldOrigin, FieldDestination, FieldDepartureDate}, missing)
}

func TestMissingSearchFieldsComplete(t *testing.T) {
	st := NewConversationState()
	st.Origin = "JFK"
	st.Destination = "LHR"
	st.DepartureDate = "2025-07-10"
	assert.Empty(t, MissingSearchFields(st))
}

func TestMissingSearchFieldsRoundTripNeedsDuration(t *testing.T) {
	st := NewConversationState()
	st.Origin = "JFK"
	st.Destination = "LHR"
	st.DepartureDate = "2025-07-10"
	st.TripType = TripTypeRoundTrip

	assert.Equal(t, []string{FieldDuration}, MissingSearchFields(st))

	st.Duration = 5
	assert.Empty(t, MissingSearchFields(st))
}

func TestHasValidToken(t *testing.T) {
	st := NewConversationState()
	assert.False(t, st.HasValidToken(5*time.Minute))

	st.Token = "abc"
	st.TokenExpiresAt = time.Now().Add(time.Hour)
	assert.True(t, st.HasValidToken(5*time.Minute))

	// Expiring inside the safety window counts as invalid.
	st.TokenExpiresAt = time.Now().Add(2 * time.Minute)
	assert.False(t, st.HasValidToken(5*time.Minute))
}
