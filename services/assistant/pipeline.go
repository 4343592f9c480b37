package assistant

import (
	"context"
	"fmt"
	"strings"

	"flightassist/models"
	"flightassist/utils"

	"github.com/cloudwego/eino/compose"
	"go.uber.org/zap"
)

// FlightSearcher is the external search collaborator: credential management
// plus the offers call. Both operate on the conversation state.
type FlightSearcher interface {
	EnsureToken(ctx context.Context, st *models.ConversationState) error
	SearchOffers(ctx context.Context, st *models.ConversationState) error
}

// OfferAnalyzer turns the state's offers into prose in state.LLMAnalysis.
type OfferAnalyzer interface {
	AnalyzeOffers(ctx context.Context, st *models.ConversationState) error
}

const greetingReply = "Hi! I can help you find flights. Tell me where you're flying from and to " +
	"(airport codes like JFK or LHR), your departure date, and whether it's one way or a round trip."

// Pipeline is the fixed five-stage chain run once per user turn:
// collect_input -> fetch_token -> search_flights -> analyze_results ->
// display_results. There is no branching beyond "is required data present"
// gates, and no retries or loops; a stage failure is recorded on the state
// and short-circuits the stages that depend on it.
type Pipeline struct {
	flights  FlightSearcher
	analyzer OfferAnalyzer
	runner   compose.Runnable[*models.ConversationState, *models.ConversationState]
}

// NewPipeline composes and compiles the turn chain.
func NewPipeline(flights FlightSearcher, analyzer OfferAnalyzer) (*Pipeline, error) {
	p := &Pipeline{flights: flights, analyzer: analyzer}

	chain := compose.NewChain[*models.ConversationState, *models.ConversationState]()
	chain.
		AppendLambda(compose.InvokableLambda(p.collectInput), compose.WithNodeName("collect_input")).
		AppendLambda(compose.InvokableLambda(p.fetchToken), compose.WithNodeName("fetch_token")).
		AppendLambda(compose.InvokableLambda(p.searchFlights), compose.WithNodeName("search_flights")).
		AppendLambda(compose.InvokableLambda(p.analyzeResults), compose.WithNodeName("analyze_results")).
		AppendLambda(compose.InvokableLambda(p.displayResults), compose.WithNodeName("display_results"))

	runner, err := chain.Compile(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to compile assistant pipeline: %w", err)
	}
	p.runner = runner
	return p, nil
}

// RunTurn executes one full pipeline pass over the state. The state is
// mutated in place and also returned for convenience.
func (p *Pipeline) RunTurn(ctx context.Context, st *models.ConversationState) (*models.ConversationState, error) {
	return p.runner.Invoke(ctx, st)
}

// collectInput extracts trip fields from the latest message and recomputes
// which required fields are still missing.
func (p *Pipeline) collectInput(ctx context.Context, st *models.ConversationState) (*models.ConversationState, error) {
	if len(st.Messages) == 0 {
		st.CurrentStep = models.StepGreeting
		return st, nil
	}

	latest := st.Messages[len(st.Messages)-1].Content
	ExtractTripInfo(latest).Apply(st)

	st.MissingFields = models.MissingSearchFields(st)
	if len(st.MissingFields) > 0 {
		st.CurrentStep = models.StepCollectMissing
	} else {
		st.CurrentStep = models.StepReadyToSearch
	}
	return st, nil
}

// fetchToken refreshes the cached bearer credential when the search is
// ready to run. A failure here aborts the rest of the turn: no token means
// no search and no summary.
func (p *Pipeline) fetchToken(ctx context.Context, st *models.ConversationState) (*models.ConversationState, error) {
	if st.CurrentStep != models.StepReadyToSearch {
		return st, nil
	}

	if err := p.flights.EnsureToken(ctx, st); err != nil {
		utils.GetLogger().Warn("Token refresh failed", zap.Error(err))
		st.LastError = err.Error()
		return st, nil
	}
	st.LastError = ""
	return st, nil
}

// searchFlights calls the flight-offers endpoint. A failed call keeps the
// prior offers; a successful call with zero results records an
// informational error but still counts as success.
func (p *Pipeline) searchFlights(ctx context.Context, st *models.ConversationState) (*models.ConversationState, error) {
	if st.CurrentStep != models.StepReadyToSearch {
		return st, nil
	}
	if st.Token == "" {
		if st.LastError == "" {
			st.LastError = "no valid search API token available"
		}
		return st, nil
	}

	if err := p.flights.SearchOffers(ctx, st); err != nil {
		utils.GetLogger().Warn("Flight search failed", zap.Error(err))
		st.LastError = err.Error()
		return st, nil
	}
	st.LastError = ""
	return st, nil
}

// analyzeResults summarizes whatever offers the state holds, including
// offers carried over from an earlier successful search. Analysis failures
// never fail the turn; the analyzer downgrades to fixed fallback text.
func (p *Pipeline) analyzeResults(ctx context.Context, st *models.ConversationState) (*models.ConversationState, error) {
	if st.CurrentStep != models.StepReadyToSearch || st.Token == "" {
		return st, nil
	}

	if err := p.analyzer.AnalyzeOffers(ctx, st); err != nil {
		utils.GetLogger().Warn("Offer analysis failed", zap.Error(err))
		if st.LastError == "" {
			st.LastError = err.Error()
		}
	}
	return st, nil
}

// displayResults marks the state ready for display and appends the
// assistant reply to the conversation log.
func (p *Pipeline) displayResults(ctx context.Context, st *models.ConversationState) (*models.ConversationState, error) {
	reply := composeReply(st)
	if st.CurrentStep == models.StepReadyToSearch {
		st.CurrentStep = models.StepResultsReady
	}
	st.Messages = append(st.Messages, models.ChatMessage{Role: "assistant", Content: reply})
	return st, nil
}

// composeReply picks the user-facing text for the turn: a result summary, a
// partial-failure explanation, or a prompt for the missing details. The
// surface never sees a raw error value.
func composeReply(st *models.ConversationState) string {
	switch st.CurrentStep {
	case models.StepGreeting:
		return greetingReply
	case models.StepCollectMissing:
		return missingFieldsReply(st.MissingFields)
	}

	if len(st.FlightOffers) > 0 && st.LLMAnalysis != "" {
		return st.LLMAnalysis
	}
	if st.LastError != "" {
		return "I couldn't complete the search: " + st.LastError + "."
	}
	if st.LLMAnalysis != "" {
		return st.LLMAnalysis
	}
	return "I wasn't able to put together flight results this time. Could you try again?"
}

func missingFieldsReply(fields []string) string {
	pretty := make([]string, len(fields))
	for i, f := range fields {
		pretty[i] = strings.ReplaceAll(f, "_", " ")
	}
	return fmt.Sprintf("I still need a few details before I can search: %s. Could you share them?",
		strings.Join(pretty, ", "))
}
