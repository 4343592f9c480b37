package models

// Wire types for the flight-offers search API (v2/shopping/flight-offers)
// and its OAuth2 token endpoint.

// FlightOffersRequest is the POST body for a flight-offers search.
type FlightOffersRequest struct {
	CurrencyCode       string              `json:"currencyCode"`
	OriginDestinations []OriginDestination `json:"originDestinations"`
	Travelers          []Traveler          `json:"travelers"`
	Sources            []string            `json:"sources"`
	SearchCriteria     SearchCriteria      `json:"searchCriteria"`
}

// OriginDestination is one directional leg of the requested trip.
type OriginDestination struct {
	ID                      string        `json:"id"`
	OriginLocationCode      string        `json:"originLocationCode"`
	DestinationLocationCode string        `json:"destinationLocationCode"`
	DepartureDateTimeRange  DateTimeRange `json:"departureDateTimeRange"`
}

type DateTimeRange struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type Traveler struct {
	ID           string `json:"id"`
	TravelerType string `json:"travelerType"`
}

type SearchCriteria struct {
	MaxFlightOffers int           `json:"maxFlightOffers"`
	FlightFilters   FlightFilters `json:"flightFilters"`
}

type FlightFilters struct {
	CabinRestrictions []CabinRestriction `json:"cabinRestrictions"`
}

// CabinRestriction constrains results to a service class across the given legs.
type CabinRestriction struct {
	Cabin                CabinClass `json:"cabin"`
	Coverage             string     `json:"coverage"`
	OriginDestinationIDs []string   `json:"originDestinationIds"`
}

// FlightOffersResponse is the search response envelope.
type FlightOffersResponse struct {
	Data []FlightOffer `json:"data"`
}

// FlightOffer is one priced option returned by the search.
type FlightOffer struct {
	ID          string      `json:"id,omitempty"`
	Price       Price       `json:"price"`
	Itineraries []Itinerary `json:"itineraries"`
}

type Price struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

// Itinerary is one priced option's full journey (outbound or return).
type Itinerary struct {
	Duration string    `json:"duration,omitempty"`
	Segments []Segment `json:"segments"`
}

// Segment is a single flight within an itinerary.
type Segment struct {
	Departure   FlightEndpoint `json:"departure"`
	Arrival     FlightEndpoint `json:"arrival"`
	CarrierCode string         `json:"carrierCode"`
	Number      string         `json:"number"`
}

type FlightEndpoint struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

// TokenResponse is the body returned by the OAuth2 client-credentials endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"` // seconds
}
