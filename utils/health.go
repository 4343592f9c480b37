package utils

import (
	"sync"
	"time"

	"flightassist/config"
)

// HealthStatus reports process liveness and which external providers are
// configured. There are no backing stores to probe; readiness is a matter
// of credentials being present.
type HealthStatus struct {
	Status            string    `json:"status"`
	SearchConfigured  bool      `json:"searchConfigured"`
	LLMProvider       string    `json:"llmProvider"`
	LLMConfigured     bool      `json:"llmConfigured"`
	UptimeSeconds     int64     `json:"uptimeSeconds"`
	CheckedAt         time.Time `json:"checkedAt"`
}

var (
	startedAt time.Time
	mu        sync.RWMutex
)

// MarkStarted records the process start time for uptime reporting.
func MarkStarted() {
	mu.Lock()
	defer mu.Unlock()
	startedAt = time.Now()
}

// GetHealthStatus returns the current health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	started := startedAt
	mu.RUnlock()

	cfg := config.AppConfig
	llmConfigured := false
	switch cfg.LLMProvider {
	case "gemini":
		llmConfigured = cfg.GeminiAPIKey != ""
	default:
		llmConfigured = cfg.OpenAIAPIKey != ""
	}

	return HealthStatus{
		Status:           "ok",
		SearchConfigured: cfg.AmadeusClientID != "" && cfg.AmadeusClientSecret != "",
		LLMProvider:      cfg.LLMProvider,
		LLMConfigured:    llmConfigured,
		UptimeSeconds:    int64(time.Since(started).Seconds()),
		CheckedAt:        time.Now(),
	}
}
