package flights

import (
	"testing"

	"flightassist/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchReadyState() *models.ConversationState {
	st := models.NewConversationState()
	st.Origin = "JFK"
	st.Destination = "LHR"
	st.DepartureDate = "2025-06-01"
	return st
}

func TestBuildOffersRequestOneWay(t *testing.T) {
	st := searchReadyState()

	body, err := BuildOffersRequest(st)
	require.NoError(t, err)

	require.Len(t, body.OriginDestinations, 1)
	leg := body.OriginDestinations[0]
	assert.Equal(t, "1", leg.ID)
	assert.Equal(t, "JFK", leg.OriginLocationCode)
	assert.Equal(t, "LHR", leg.DestinationLocationCode)
	assert.Equal(t, "2025-06-01", leg.DepartureDateTimeRange.Date)
	assert.Equal(t, "10:00:00", leg.DepartureDateTimeRange.Time)

	assert.Equal(t, "USD", body.CurrencyCode)
	assert.Equal(t, []string{"GDS"}, body.Sources)
	assert.Equal(t, 3, body.SearchCriteria.MaxFlightOffers)

	require.Len(t, body.Travelers, 1)
	assert.Equal(t, "ADULT", body.Travelers[0].TravelerType)

	require.Len(t, body.SearchCriteria.FlightFilters.CabinRestrictions, 1)
	restriction := body.SearchCriteria.FlightFilters.CabinRestrictions[0]
	assert.Equal(t, models.CabinEconomy, restriction.Cabin)
	assert.Equal(t, "MOST_SEGMENTS", restriction.Coverage)
	assert.Equal(t, []string{"1"}, restriction.OriginDestinationIDs)
}

func TestBuildOffersRequestRoundTrip(t *testing.T) {
	st := searchReadyState()
	st.TripType = models.TripTypeRoundTrip
	st.Duration = 5

	body, err := BuildOffersRequest(st)
	require.NoError(t, err)

	require.Len(t, body.OriginDestinations, 2)
	ret := body.OriginDestinations[1]
	assert.Equal(t, "2", ret.ID)
	assert.Equal(t, "LHR", ret.OriginLocationCode)
	assert.Equal(t, "JFK", ret.DestinationLocationCode)
	// Return leg departs departure_date + duration days.
	assert.Equal(t, "2025-06-06", ret.DepartureDateTimeRange.Date)

	restriction := body.SearchCriteria.FlightFilters.CabinRestrictions[0]
	assert.Equal(t, []string{"1", "2"}, restriction.OriginDestinationIDs)
}

func TestBuildOffersRequestRoundTripBadDate(t *testing.T) {
	st := searchReadyState()
	st.TripType = models.TripTypeRoundTrip
	st.Duration = 5
	st.DepartureDate = "06/01/2025"

	_, err := BuildOffersRequest(st)
	require.Error(t, err)
	assert.IsType(t, models.DateFormatError{}, err)
}

func TestBuildOffersRequestMultipleTravelers(t *testing.T) {
	st := searchReadyState()
	st.Travelers = 2

	body, err := BuildOffersRequest(st)
	require.NoError(t, err)

	require.Len(t, body.Travelers, 2)
	assert.Equal(t, "1", body.Travelers[0].ID)
	assert.Equal(t, "2", body.Travelers[1].ID)
}
