package flights

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"flightassist/config"
	"flightassist/models"
	"flightassist/utils"

	"go.uber.org/zap"
)

const (
	tokenPath  = "/v1/security/oauth2/token"
	offersPath = "/v2/shopping/flight-offers"
)

// Client calls the flight-offers search provider. The bearer credential is
// cached on the conversation state, not on the client, so each conversation
// manages its own token lifetime.
type Client struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	HTTP         *http.Client
}

// NewClient builds a search client from the loaded configuration.
func NewClient() *Client {
	return &Client{
		BaseURL:      config.AppConfig.AmadeusBaseURL,
		ClientID:     config.AppConfig.AmadeusClientID,
		ClientSecret: config.AppConfig.AmadeusClientSecret,
		HTTP:         &http.Client{Timeout: 30 * time.Second},
	}
}

// SearchOffers formats and issues a flight-offers search for the state's
// resolved parameters, replacing state.FlightOffers on success. On failure
// the prior offers are left untouched. A successful call with zero results
// returns NoResultsError but still counts as success: the offers list is
// replaced with the empty result.
func (c *Client) SearchOffers(ctx context.Context, st *models.ConversationState) error {
	if st.Token == "" {
		return models.TokenFetchError{Reason: "no valid token available"}
	}

	body, err := BuildOffersRequest(st)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return models.SearchRequestError{Reason: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+offersPath, bytes.NewReader(payload))
	if err != nil {
		return models.SearchRequestError{Reason: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+st.Token)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return models.SearchRequestError{Reason: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		reason := apiErrorReason(resp)
		utils.GetLogger().Warn("Flight offers search rejected",
			zap.Int("status", resp.StatusCode), zap.String("reason", reason))
		return models.SearchRequestError{Reason: reason}
	}

	var offers models.FlightOffersResponse
	if err := json.NewDecoder(resp.Body).Decode(&offers); err != nil {
		return models.SearchRequestError{Reason: "malformed response: " + err.Error()}
	}

	st.FlightOffers = offers.Data
	if len(offers.Data) == 0 {
		return models.NoResultsError{}
	}
	return nil
}

// apiErrorReason extracts a human-readable message from a provider error
// body, falling back to the HTTP status line.
func apiErrorReason(resp *http.Response) string {
	data, err := io.ReadAll(resp.Body)
	if err != nil || len(data) == 0 {
		return resp.Status
	}

	var payload struct {
		Errors []struct {
			Title  string `json:"title"`
			Detail string `json:"detail"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && len(payload.Errors) > 0 {
		e := payload.Errors[0]
		if e.Detail != "" {
			return e.Detail
		}
		if e.Title != "" {
			return e.Title
		}
	}
	return resp.Status
}
