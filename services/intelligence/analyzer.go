package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"flightassist/models"
	"flightassist/utils"

	"go.uber.org/zap"
)

const (
	// NoOffersAnalysis is stored when there is nothing to analyze.
	NoOffersAnalysis = "No flight offers available to analyze."
	// FallbackAnalysis is stored when summary construction or the
	// language-model call fails; the offers themselves remain usable.
	FallbackAnalysis = "I couldn't analyze the flight options right now, but I found some flights for you!"

	advisorSystemPrompt = "You are a helpful travel advisor who analyzes flight options and provides friendly, practical advice."

	advisorPromptTemplate = `Analyze the following flight options for a trip from %s to %s on %s:
%s
Trip type: %s
Cabin class: %s

Please provide a friendly, conversational analysis that:
1. Highlights the best option based on common preferences (price, duration, convenience)
2. Explains the trade-offs between options
3. Mentions any notable features (direct flights, short layovers, etc.)
4. Uses a warm, helpful tone as if you're a travel advisor

Keep it concise but informative, around 150-200 words.`
)

// maxAnalyzedOffers caps how many offers are condensed into the prompt.
const maxAnalyzedOffers = 3

// offerSummary is the condensed per-offer structure sent to the LLM.
type offerSummary struct {
	Option        int              `json:"option"`
	Price         string           `json:"price"`
	Segments      []segmentSummary `json:"segments"`
	TotalDuration string           `json:"total_duration"`
}

type segmentSummary struct {
	Carrier       string `json:"carrier"`
	Flight        string `json:"flight"`
	From          string `json:"from"`
	To            string `json:"to"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
}

// Analyzer turns raw flight offers into a natural-language summary.
type Analyzer struct {
	Engine Engine
}

func NewAnalyzer(engine Engine) *Analyzer {
	return &Analyzer{Engine: engine}
}

// AnalyzeOffers stores a prose summary of the state's offers into
// state.LLMAnalysis. With no offers it stores a fixed literal and skips the
// LLM call. An engine failure downgrades to the fallback literal and
// returns SummarizationError; the turn itself never fails on analysis.
func (a *Analyzer) AnalyzeOffers(ctx context.Context, st *models.ConversationState) error {
	if len(st.FlightOffers) == 0 {
		st.LLMAnalysis = NoOffersAnalysis
		return nil
	}

	if a.Engine == nil {
		return models.ConfigurationError{Missing: "summarization provider"}
	}

	prompt, err := buildAdvisorPrompt(st)
	if err != nil {
		st.LLMAnalysis = FallbackAnalysis
		return models.SummarizationError{Reason: err.Error()}
	}

	analysis, err := a.Engine.GenerateContent(ctx, advisorSystemPrompt, prompt)
	if err != nil {
		utils.GetLogger().Warn("LLM analysis failed, using fallback", zap.Error(err))
		st.LLMAnalysis = FallbackAnalysis
		return models.SummarizationError{Reason: err.Error()}
	}

	st.LLMAnalysis = analysis
	return nil
}

func buildAdvisorPrompt(st *models.ConversationState) (string, error) {
	summaries := condenseOffers(st.FlightOffers, st.Currency)
	encoded, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(advisorPromptTemplate,
		st.Origin, st.Destination, st.DepartureDate,
		string(encoded), st.TripType, st.CabinClass), nil
}

// condenseOffers flattens up to maxAnalyzedOffers offers into price plus
// per-segment essentials. The last itinerary's duration stands in for the
// whole option, matching the per-offer duration reported by the provider.
func condenseOffers(offers []models.FlightOffer, fallbackCurrency string) []offerSummary {
	if len(offers) > maxAnalyzedOffers {
		offers = offers[:maxAnalyzedOffers]
	}

	summaries := make([]offerSummary, 0, len(offers))
	for i, offer := range offers {
		currency := offer.Price.Currency
		if currency == "" {
			currency = fallbackCurrency
		}

		s := offerSummary{
			Option: i + 1,
			Price:  fmt.Sprintf("%s %s", offer.Price.Total, currency),
		}
		for _, itinerary := range offer.Itineraries {
			if itinerary.Duration != "" {
				s.TotalDuration = itinerary.Duration
			}
			for _, seg := range itinerary.Segments {
				s.Segments = append(s.Segments, segmentSummary{
					Carrier:       seg.CarrierCode,
					Flight:        seg.CarrierCode + seg.Number,
					From:          seg.Departure.IataCode,
					To:            seg.Arrival.IataCode,
					DepartureTime: seg.Departure.At,
					ArrivalTime:   seg.Arrival.At,
				})
			}
		}
		summaries = append(summaries, s)
	}
	return summaries
}
