package config

import (
	"os"
	"strconv"
)

type ConfigStruct struct {
	Options Options
	Gemini  GeminiConfig
	OpenAI  OpenAIConfig
	Spotify SpotifyConfig
}

type Options struct {
	Port                 string
	Provider             string // "gemini" or "openai"
	LookupTimeoutSeconds int
	HistoryLimit         int
}

// GeminiConfig holds the Gemini credential. The key lives only in process
// memory for the lifetime of the session and must never be written to logs
// or durable storage.
type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
}

type SpotifyConfig struct {
	ClientID     string
	ClientSecret string
	Enabled      bool
}

var Config *ConfigStruct

func NewConfig() {
	config := &ConfigStruct{
		Options: Options{
			Port:                 os.Getenv("PORT"),
			Provider:             getProvider(),
			LookupTimeoutSeconds: getLookupTimeout(),
			HistoryLimit:         getHistoryLimit(),
		},
		Gemini: GeminiConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  getGeminiModel(),
		},
		OpenAI: OpenAIConfig{
			APIKey: os.Getenv("OPENAI_API_KEY"),
			Model:  getOpenAIModel(),
		},
		Spotify: SpotifyConfig{
			ClientID:     os.Getenv("SPOTIFY_CLIENT_ID"),
			ClientSecret: os.Getenv("SPOTIFY_CLIENT_SECRET"),
			Enabled:      os.Getenv("SPOTIFY_ENABLED") == "true",
		},
	}

	Config = config
}

func getProvider() string {
	provider := os.Getenv("PROVIDER")
	switch provider {
	case "gemini", "openai":
		return provider
	}
	return "gemini"
}

func getGeminiModel() string {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		return "gemini-2.0-flash"
	}
	return model
}

func getOpenAIModel() string {
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		return "gpt-4o-mini"
	}
	return model
}

func getLookupTimeout() int {
	timeoutStr := os.Getenv("LOOKUP_TIMEOUT_SECONDS")
	if timeoutStr == "" {
		return 30
	}
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil || timeout <= 0 {
		return 30
	}
	if timeout < 5 {
		return 5
	}
	if timeout > 120 {
		return 120 // Anything longer and the page feels hung
	}
	return timeout
}

func getHistoryLimit() int {
	limitStr := os.Getenv("HISTORY_LIMIT")
	if limitStr == "" {
		return 10
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		return 10
	}
	if limit > 50 {
		return 50 // Keep the recent-lookups panel small
	}
	return limit
}
