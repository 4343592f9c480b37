package models

import "time"

// TripType distinguishes one-way searches from round trips.
type TripType string

const (
	TripTypeOneWay    TripType = "one_way"
	TripTypeRoundTrip TripType = "round_trip"
)

// CabinClass mirrors the cabin values accepted by the flight-offers API.
type CabinClass string

const (
	CabinEconomy  CabinClass = "ECONOMY"
	CabinBusiness CabinClass = "BUSINESS"
	CabinFirst    CabinClass = "FIRST"
)

// Step tracks where a conversation is in the search workflow.
type Step string

const (
	StepGreeting       Step = "greeting"
	StepCollectMissing Step = "collect_missing"
	StepReadyToSearch  Step = "ready_to_search"
	StepResultsReady   Step = "results_ready"
)

// Field names reported by MissingSearchFields.
const (
	FieldOrigin        = "origin"
	FieldDestination   = "destination"
	FieldDepartureDate = "departure_date"
	FieldTripType      = "trip_type"
	FieldCabinClass    = "cabin_class"
	FieldDuration      = "duration"
)

// ConversationState is the single record threaded through every pipeline
// stage of a conversation. It is created once per conversation, mutated in
// place each turn, and discarded only on an explicit reset.
type ConversationState struct {
	// User search parameters.
	Origin        string     `json:"origin,omitempty"`
	Destination   string     `json:"destination,omitempty"`
	DepartureDate string     `json:"departure_date,omitempty"` // YYYY-MM-DD
	TripType      TripType   `json:"trip_type"`
	Duration      int        `json:"duration,omitempty"` // days, round trips only
	Travelers     int        `json:"travelers"`
	CabinClass    CabinClass `json:"cabin_class"`
	Currency      string     `json:"currency"`

	// Cached search-API credential. Token and TokenExpiresAt are either
	// both set or both zero.
	Token          string    `json:"-"`
	TokenExpiresAt time.Time `json:"-"`

	// Results.
	FlightOffers []FlightOffer `json:"flight_offers,omitempty"`
	LLMAnalysis  string        `json:"llm_analysis,omitempty"`

	// Conversation bookkeeping.
	Messages      []ChatMessage `json:"messages"`
	CurrentStep   Step          `json:"current_step"`
	MissingFields []string      `json:"missing_fields,omitempty"`
	LastError     string        `json:"last_error,omitempty"`
}

// NewConversationState returns a state with all defaults applied.
func NewConversationState() *ConversationState {
	return &ConversationState{
		TripType:    TripTypeOneWay,
		Travelers:   1,
		CabinClass:  CabinEconomy,
		Currency:    "USD",
		CurrentStep: StepGreeting,
	}
}

// HasValidToken reports whether the cached credential is usable for at
// least the given safety window.
func (s *ConversationState) HasValidToken(window time.Duration) bool {
	if s.Token == "" || s.TokenExpiresAt.IsZero() {
		return false
	}
	return time.Until(s.TokenExpiresAt) > window
}

// MissingSearchFields returns the set of fields still required before a
// search can run. It is a pure function of the state and is recomputed on
// every extraction pass; callers must never append to the result manually.
func MissingSearchFields(s *ConversationState) []string {
	var missing []string
	if s.Origin == "" {
		missing = append(missing, FieldOrigin)
	}
	if s.Destination == "" {
		missing = append(missing, FieldDestination)
	}
	if s.DepartureDate == "" {
		missing = append(missing, FieldDepartureDate)
	}
	if s.TripType == "" {
		missing = append(missing, FieldTripType)
	}
	if s.CabinClass == "" {
		missing = append(missing, FieldCabinClass)
	}
	if s.TripType == TripTypeRoundTrip && s.Duration <= 0 {
		missing = append(missing, FieldDuration)
	}
	return missing
}
