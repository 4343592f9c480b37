package flights

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"flightassist/models"
	"flightassist/utils"

	"go.uber.org/zap"
)

// tokenRefreshWindow is the safety margin before expiry at which a cached
// token is considered stale.
const tokenRefreshWindow = 5 * time.Minute

// EnsureToken guarantees the state carries a bearer credential valid for at
// least the refresh window, fetching a fresh one from the OAuth2
// client-credentials endpoint only when needed. On failure the cached token
// fields are left untouched and a typed error is returned; the caller is
// expected to abort the rest of the turn.
func (c *Client) EnsureToken(ctx context.Context, st *models.ConversationState) error {
	if st.HasValidToken(tokenRefreshWindow) {
		return nil
	}

	if c.ClientID == "" || c.ClientSecret == "" {
		return models.ConfigurationError{Missing: "flight search API credentials"}
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.ClientID},
		"client_secret": {c.ClientSecret},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return models.TokenFetchError{Reason: err.Error()}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return models.TokenFetchError{Reason: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		utils.GetLogger().Warn("Token endpoint rejected credentials", zap.Int("status", resp.StatusCode))
		return models.TokenFetchError{Reason: resp.Status}
	}

	var token models.TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return models.TokenFetchError{Reason: "malformed token response: " + err.Error()}
	}
	if token.AccessToken == "" {
		return models.TokenFetchError{Reason: "token response missing access_token"}
	}

	st.Token = token.AccessToken
	st.TokenExpiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	return nil
}
