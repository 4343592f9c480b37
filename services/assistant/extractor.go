package assistant

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"flightassist/models"
)

// Slot extraction over a single user utterance. Each rule is applied
// independently; a rule that does not match simply leaves its field unset.
// Extraction never fails.

var (
	airportCodeRe = regexp.MustCompile(`\b[A-Z]{3}\b`)
	durationRe    = regexp.MustCompile(`(\d+)\s*day`)

	// Tried in order; the first pattern whose first match parses wins.
	datePatterns = []struct {
		re     *regexp.Regexp
		layout string
	}{
		{regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`), "2006-01-02"},
		{regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`), "1/2/2006"},
		{regexp.MustCompile(`\b\d{1,2}-\d{1,2}-\d{4}\b`), "1-2-2006"},
	}

	roundTripPhrases = []string{"round trip", "round-trip", "return"}
	oneWayPhrases    = []string{"one way", "one-way"}
)

// Extracted holds the trip fields recognized in one utterance. Zero values
// mean "not mentioned".
type Extracted struct {
	Origin        string
	Destination   string
	DepartureDate string // normalized YYYY-MM-DD
	TripType      models.TripType
	Duration      int
	CabinClass    models.CabinClass
}

// ExtractTripInfo parses flight details out of free text. Location codes
// must already look like airport codes (three uppercase letters); city
// names are not resolved. Everything else matches case-insensitively.
func ExtractTripInfo(input string) Extracted {
	var info Extracted
	lower := strings.ToLower(input)

	// Airport codes: exactly three uppercase letters. A lone code is
	// ignored; with two or more, the first is the origin and the second
	// the destination.
	codes := airportCodeRe.FindAllString(input, -1)
	if len(codes) >= 2 {
		info.Origin = codes[0]
		info.Destination = codes[1]
	}

	for _, p := range datePatterns {
		match := p.re.FindString(input)
		if match == "" {
			continue
		}
		parsed, err := time.Parse(p.layout, match)
		if err != nil {
			// Matched the shape but not a real date; fall through to
			// the next pattern.
			continue
		}
		info.DepartureDate = parsed.Format("2006-01-02")
		break
	}

	// Round-trip phrasing is checked first and wins when both appear.
	if containsAny(lower, roundTripPhrases) {
		info.TripType = models.TripTypeRoundTrip
	} else if containsAny(lower, oneWayPhrases) {
		info.TripType = models.TripTypeOneWay
	}

	if m := durationRe.FindStringSubmatch(lower); m != nil {
		if days, err := strconv.Atoi(m[1]); err == nil {
			info.Duration = days
		}
	}

	switch {
	case strings.Contains(lower, "business"):
		info.CabinClass = models.CabinBusiness
	case strings.Contains(lower, "first"):
		info.CabinClass = models.CabinFirst
	case strings.Contains(lower, "economy"):
		info.CabinClass = models.CabinEconomy
	}

	return info
}

// Apply copies the recognized fields onto the conversation state, leaving
// unrecognized fields as they were.
func (e Extracted) Apply(st *models.ConversationState) {
	if e.Origin != "" {
		st.Origin = e.Origin
	}
	if e.Destination != "" {
		st.Destination = e.Destination
	}
	if e.DepartureDate != "" {
		st.DepartureDate = e.DepartureDate
	}
	if e.TripType != "" {
		st.TripType = e.TripType
	}
	if e.Duration > 0 {
		st.Duration = e.Duration
	}
	if e.CabinClass != "" {
		st.CabinClass = e.CabinClass
	}
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
