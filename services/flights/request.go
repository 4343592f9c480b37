package flights

import (
	"strconv"
	"time"

	"flightassist/models"
)

const (
	departureDateLayout = "2006-01-02"
	defaultDepartTime   = "10:00:00"
	defaultTravelerType = "ADULT"
	defaultCoverage     = "MOST_SEGMENTS"
	maxFlightOffers     = 3
)

// BuildOffersRequest builds the search-request body from fully resolved
// trip parameters. One-way trips produce a single outbound leg; round trips
// append a return leg (destination back to origin) dated departure_date
// plus the trip duration in days. A round trip with an unparseable
// departure date fails with DateFormatError, since the return date cannot
// be computed.
func BuildOffersRequest(st *models.ConversationState) (*models.FlightOffersRequest, error) {
	legs := []models.OriginDestination{
		{
			ID:                      "1",
			OriginLocationCode:      st.Origin,
			DestinationLocationCode: st.Destination,
			DepartureDateTimeRange: models.DateTimeRange{
				Date: st.DepartureDate,
				Time: defaultDepartTime,
			},
		},
	}

	if st.TripType == models.TripTypeRoundTrip && st.Duration > 0 {
		depart, err := time.Parse(departureDateLayout, st.DepartureDate)
		if err != nil {
			return nil, models.DateFormatError{Value: st.DepartureDate}
		}
		returnDate := depart.AddDate(0, 0, st.Duration).Format(departureDateLayout)
		legs = append(legs, models.OriginDestination{
			ID:                      "2",
			OriginLocationCode:      st.Destination,
			DestinationLocationCode: st.Origin,
			DepartureDateTimeRange: models.DateTimeRange{
				Date: returnDate,
				Time: defaultDepartTime,
			},
		})
	}

	legIDs := make([]string, len(legs))
	for i, leg := range legs {
		legIDs[i] = leg.ID
	}

	travelers := make([]models.Traveler, 0, st.Travelers)
	for i := 0; i < st.Travelers; i++ {
		travelers = append(travelers, models.Traveler{
			ID:           strconv.Itoa(i + 1),
			TravelerType: defaultTravelerType,
		})
	}

	return &models.FlightOffersRequest{
		CurrencyCode:       st.Currency,
		OriginDestinations: legs,
		Travelers:          travelers,
		Sources:            []string{"GDS"},
		SearchCriteria: models.SearchCriteria{
			MaxFlightOffers: maxFlightOffers,
			FlightFilters: models.FlightFilters{
				CabinRestrictions: []models.CabinRestriction{
					{
						Cabin:                st.CabinClass,
						Coverage:             defaultCoverage,
						OriginDestinationIDs: legIDs,
					},
				},
			},
		},
	}, nil
}
