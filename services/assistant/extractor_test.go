package assistant

import (
	"testing"

	"flightassist/models"

	"github.com/stretchr/testify/assert"
)

func TestExtractAirportCodes(t *testing.T) {
	info := ExtractTripInfo("I'd like to go from JFK to LHR please")
	assert.Equal(t, "JFK", info.Origin)
	assert.Equal(t, "LHR", info.Destination)
}

func TestExtractSingleCodeIgnored(t *testing.T) {
	info := ExtractTripInfo("flights out of SFO next month")
	assert.Empty(t, info.Origin)
	assert.Empty(t, info.Destination)
}

func TestExtractLowercaseCodesNotRecognized(t *testing.T) {
	info := ExtractTripInfo("from jfk to lhr")
	assert.Empty(t, info.Origin)
	assert.Empty(t, info.Destination)
}

func TestExtractDateNormalization(t *testing.T) {
	cases := map[string]string{
		"leave on 2025-07-10":  "2025-07-10",
		"leave on 7/10/2025":   "2025-07-10",
		"leave on 07/10/2025":  "2025-07-10",
		"leave on 12-25-2025":  "2025-12-25",
		"no date in this one":  "",
	}
	for input, want := range cases {
		info := ExtractTripInfo(input)
		assert.Equal(t, want, info.DepartureDate, "input %q", input)
	}
}

func TestExtractDateFallsThroughOnParseFailure(t *testing.T) {
	// 99/99/2025 matches the slash pattern but does not parse; the dash
	// pattern should still get its chance.
	info := ExtractTripInfo("maybe 99/99/2025 or 12-25-2025")
	assert.Equal(t, "2025-12-25", info.DepartureDate)
}

func TestExtractTripType(t *testing.T) {
	assert.Equal(t, models.TripTypeRoundTrip, ExtractTripInfo("a round trip please").TripType)
	assert.Equal(t, models.TripTypeRoundTrip, ExtractTripInfo("round-trip to Paris").TripType)
	assert.Equal(t, models.TripTypeRoundTrip, ExtractTripInfo("I need a return flight").TripType)
	assert.Equal(t, models.TripTypeOneWay, ExtractTripInfo("just one way").TripType)
	assert.Equal(t, models.TripTypeOneWay, ExtractTripInfo("one-way is fine").TripType)
	assert.Empty(t, ExtractTripInfo("somewhere warm").TripType)
}

func TestExtractTripTypeRoundTripWins(t *testing.T) {
	// When both phrasings appear, round-trip phrasing is checked first.
	info := ExtractTripInfo("not one way, make it a round trip")
	assert.Equal(t, models.TripTypeRoundTrip, info.TripType)
}

func TestExtractDuration(t *testing.T) {
	assert.Equal(t, 5, ExtractTripInfo("staying 5 days").Duration)
	assert.Equal(t, 1, ExtractTripInfo("just 1 day").Duration)
	assert.Zero(t, ExtractTripInfo("a few days").Duration)
}

func TestExtractCabinClassPriority(t *testing.T) {
	assert.Equal(t, models.CabinBusiness, ExtractTripInfo("business class").CabinClass)
	assert.Equal(t, models.CabinFirst, ExtractTripInfo("first class").CabinClass)
	assert.Equal(t, models.CabinEconomy, ExtractTripInfo("economy please").CabinClass)
	// "business" outranks "first" when both appear.
	assert.Equal(t, models.CabinBusiness, ExtractTripInfo("first or business, whichever").CabinClass)
	assert.Empty(t, ExtractTripInfo("cheapest seat").CabinClass)
}

func TestExtractFullUtterance(t *testing.T) {
	info := ExtractTripInfo("I want to fly from JFK to LHR on 2025-07-10, business class, one way")
	assert.Equal(t, "JFK", info.Origin)
	assert.Equal(t, "LHR", info.Destination)
	assert.Equal(t, "2025-07-10", info.DepartureDate)
	assert.Equal(t, models.CabinBusiness, info.CabinClass)
	assert.Equal(t, models.TripTypeOneWay, info.TripType)
}

func TestApplyLeavesUnmentionedFieldsAlone(t *testing.T) {
	st := models.NewConversationState()
	st.Origin = "JFK"
	st.Destination = "LHR"

	ExtractTripInfo("2025-07-10 works, round trip for 4 days").Apply(st)

	assert.Equal(t, "JFK", st.Origin)
	assert.Equal(t, "LHR", st.Destination)
	assert.Equal(t, "2025-07-10", st.DepartureDate)
	assert.Equal(t, models.TripTypeRoundTrip, st.TripType)
	assert.Equal(t, 4, st.Duration)
	assert.Equal(t, models.CabinEconomy, st.CabinClass)
}
