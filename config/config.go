package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"

	BackendAuto     = "auto"
	BackendPinecone = "pinecone"
	BackendChromem  = "chromem"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendMemory   = "memory"
)

type Config struct {
	Host string
	Port string

	LLMProvider     string
	OpenAIAPIKey    string
	OpenAIModel     string
	AnthropicAPIKey string
	Temperature     float64
	MaxTokens       int

	MemoryBackend     string
	PineconeAPIKey    string
	PineconeIndexName string
	PineconeNamespace string
	DatabaseURL       string
	SQLitePath        string
	ChromemPath       string
	MaxEntries        int
	ContextLimit      int

	ResponseSeed int64
}

// Load reads .env, then an optional toolfinder.yaml, then the environment.
// Later sources win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[WARN] Failed to load .env file: %v", err)
	}

	v := viper.New()
	v.SetConfigName("toolfinder")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".toolfinder"))
	}

	setDefaults(v)
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8000")
	v.SetDefault("llm.provider", ProviderOpenAI)
	v.SetDefault("llm.openai_model", "gpt-4")
	v.SetDefault("llm.temperature", 0.1)
	v.SetDefault("llm.max_tokens", 1000)
	v.SetDefault("memory.backend", BackendAuto)
	v.SetDefault("memory.pinecone_index", "toolfinder-memories")
	v.SetDefault("memory.namespace", "toolfinder-memories")
	v.SetDefault("memory.sqlite_path", "toolfinder.db")
	v.SetDefault("memory.max_entries", 50)
	v.SetDefault("memory.context_limit", 5)
	v.SetDefault("responses.seed", 0)
}

// The documented environment names do not follow the key paths, so each is
// bound explicitly. Other keys are reachable as e.g. LLM_TEMPERATURE.
func bindEnv(v *viper.Viper) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"server.host":             "HOST",
		"server.port":             "PORT",
		"llm.provider":            "LLM_PROVIDER",
		"llm.openai_api_key":      "OPENAI_API_KEY",
		"llm.openai_model":        "OPENAI_MODEL",
		"llm.anthropic_api_key":   "ANTHROPIC_API_KEY",
		"memory.backend":          "MEMORY_BACKEND",
		"memory.pinecone_api_key": "PINECONE_API_KEY",
		"memory.pinecone_index":   "PINECONE_INDEX_NAME",
		"memory.database_url":     "DB_URL",
		"memory.sqlite_path":      "SQLITE_PATH",
		"memory.chromem_path":     "CHROMEM_PATH",
		"responses.seed":          "RESPONSE_SEED",
	}
	for key, env := range bindings {
		_ = v.BindEnv(key, env)
	}
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Host:              v.GetString("server.host"),
		Port:              v.GetString("server.port"),
		LLMProvider:       strings.ToLower(v.GetString("llm.provider")),
		OpenAIAPIKey:      v.GetString("llm.openai_api_key"),
		OpenAIModel:       v.GetString("llm.openai_model"),
		AnthropicAPIKey:   v.GetString("llm.anthropic_api_key"),
		Temperature:       v.GetFloat64("llm.temperature"),
		MaxTokens:         v.GetInt("llm.max_tokens"),
		MemoryBackend:     strings.ToLower(v.GetString("memory.backend")),
		PineconeAPIKey:    v.GetString("memory.pinecone_api_key"),
		PineconeIndexName: v.GetString("memory.pinecone_index"),
		PineconeNamespace: v.GetString("memory.namespace"),
		DatabaseURL:       v.GetString("memory.database_url"),
		SQLitePath:        v.GetString("memory.sqlite_path"),
		ChromemPath:       v.GetString("memory.chromem_path"),
		MaxEntries:        v.GetInt("memory.max_entries"),
		ContextLimit:      v.GetInt("memory.context_limit"),
		ResponseSeed:      v.GetInt64("responses.seed"),
	}
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// LLMAPIKey returns the credential of the selected provider.
func (c *Config) LLMAPIKey() string {
	if c.LLMProvider == ProviderAnthropic {
		return c.AnthropicAPIKey
	}
	return c.OpenAIAPIKey
}

// ValidateLLM fails when the selected provider is unknown or has no credential.
func (c *Config) ValidateLLM() error {
	switch c.LLMProvider {
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return errors.New("OPENAI_API_KEY environment variable is required")
		}
	case ProviderAnthropic:
		if c.AnthropicAPIKey == "" {
			return errors.New("ANTHROPIC_API_KEY environment variable is required")
		}
	default:
		return fmt.Errorf("unknown LLM provider: %s", c.LLMProvider)
	}
	return nil
}

// ResolveMemoryBackend picks the concrete backend. "auto" prefers Pinecone
// and falls back to process memory when no Pinecone key is configured.
func (c *Config) ResolveMemoryBackend() (string, error) {
	switch c.MemoryBackend {
	case BackendAuto, "":
		if c.PineconeAPIKey != "" {
			return BackendPinecone, nil
		}
		log.Printf("[WARN] PINECONE_API_KEY not set, using in-process memory storage")
		return BackendMemory, nil
	case BackendPinecone:
		if c.PineconeAPIKey == "" {
			log.Printf("[WARN] PINECONE_API_KEY not set, using in-process memory storage")
			return BackendMemory, nil
		}
		return BackendPinecone, nil
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return "", errors.New("DB_URL environment variable is required for the postgres memory backend")
		}
		return BackendPostgres, nil
	case BackendChromem, BackendSQLite, BackendMemory:
		return c.MemoryBackend, nil
	default:
		return "", fmt.Errorf("unknown memory backend: %s", c.MemoryBackend)
	}
}
