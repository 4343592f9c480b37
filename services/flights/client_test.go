package flights

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"flightassist/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offersState() *models.ConversationState {
	st := models.NewConversationState()
	st.Origin = "JFK"
	st.Destination = "LHR"
	st.DepartureDate = "2025-07-10"
	st.Token = "tok"
	st.TokenExpiresAt = time.Now().Add(time.Hour)
	return st
}

func sampleOffer(total string) models.FlightOffer {
	return models.FlightOffer{
		Price: models.Price{Total: total, Currency: "USD"},
		Itineraries: []models.Itinerary{{
			Duration: "PT7H30M",
			Segments: []models.Segment{{
				Departure:   models.FlightEndpoint{IataCode: "JFK", At: "2025-07-10T10:00:00"},
				Arrival:     models.FlightEndpoint{IataCode: "LHR", At: "2025-07-10T22:30:00"},
				CarrierCode: "BA",
				Number:      "117",
			}},
		}},
	}
}

func newOffersServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, offersPath, r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		handler(w, r)
	}))
}

func TestSearchOffersSuccess(t *testing.T) {
	srv := newOffersServer(t, func(w http.ResponseWriter, r *http.Request) {
		var body models.FlightOffersRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Len(t, body.OriginDestinations, 1)

		json.NewEncoder(w).Encode(models.FlightOffersResponse{
			Data: []models.FlightOffer{sampleOffer("512.30")},
		})
	})
	defer srv.Close()

	st := offersState()
	err := testClient(srv.URL).SearchOffers(context.Background(), st)
	require.NoError(t, err)

	require.Len(t, st.FlightOffers, 1)
	assert.Equal(t, "512.30", st.FlightOffers[0].Price.Total)
}

func TestSearchOffersServerErrorKeepsPriorOffers(t *testing.T) {
	srv := newOffersServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":[{"title":"INTERNAL ERROR"}]}`, http.StatusInternalServerError)
	})
	defer srv.Close()

	st := offersState()
	st.FlightOffers = []models.FlightOffer{sampleOffer("100.00")}

	err := testClient(srv.URL).SearchOffers(context.Background(), st)
	require.Error(t, err)
	assert.IsType(t, models.SearchRequestError{}, err)

	// A failed call must not clear previously found offers.
	require.Len(t, st.FlightOffers, 1)
	assert.Equal(t, "100.00", st.FlightOffers[0].Price.Total)
}

func TestSearchOffersEmptyResult(t *testing.T) {
	srv := newOffersServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.FlightOffersResponse{Data: []models.FlightOffer{}})
	})
	defer srv.Close()

	st := offersState()
	st.FlightOffers = []models.FlightOffer{sampleOffer("100.00")}

	err := testClient(srv.URL).SearchOffers(context.Background(), st)
	require.Error(t, err)
	assert.IsType(t, models.NoResultsError{}, err)

	// An empty result is still a successful call: offers are replaced.
	assert.Empty(t, st.FlightOffers)
}

func TestSearchOffersWithoutToken(t *testing.T) {
	st := offersState()
	st.Token = ""

	err := testClient("http://unused").SearchOffers(context.Background(), st)
	require.Error(t, err)
	assert.IsType(t, models.TokenFetchError{}, err)
}

func TestSearchOffersRoundTripBadDate(t *testing.T) {
	st := offersState()
	st.TripType = models.TripTypeRoundTrip
	st.Duration = 3
	st.DepartureDate = "next friday"

	err := testClient("http://unused").SearchOffers(context.Background(), st)
	require.Error(t, err)
	assert.IsType(t, models.DateFormatError{}, err)
}
