package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate runs the test in an empty directory with a clean environment.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	for _, env := range []string{
		"HOST", "PORT", "LLM_PROVIDER", "OPENAI_API_KEY", "OPENAI_MODEL", "ANTHROPIC_API_KEY",
		"MEMORY_BACKEND", "PINECONE_API_KEY", "PINECONE_INDEX_NAME", "DB_URL", "SQLITE_PATH",
		"CHROMEM_PATH", "RESPONSE_SEED", "LLM_TEMPERATURE",
	} {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		name     string
		got      any
		expected any
	}{
		{name: "addr", got: cfg.Addr(), expected: "0.0.0.0:8000"},
		{name: "provider", got: cfg.LLMProvider, expected: ProviderOpenAI},
		{name: "model", got: cfg.OpenAIModel, expected: "gpt-4"},
		{name: "temperature", got: cfg.Temperature, expected: 0.1},
		{name: "max tokens", got: cfg.MaxTokens, expected: 1000},
		{name: "backend", got: cfg.MemoryBackend, expected: BackendAuto},
		{name: "index", got: cfg.PineconeIndexName, expected: "toolfinder-memories"},
		{name: "sqlite path", got: cfg.SQLitePath, expected: "toolfinder.db"},
		{name: "max entries", got: cfg.MaxEntries, expected: 50},
		{name: "context limit", got: cfg.ContextLimit, expected: 5},
		{name: "seed", got: cfg.ResponseSeed, expected: int64(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %v, expected %v", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestLoadEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("PORT", "9090")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("MEMORY_BACKEND", "SQLite")
	t.Setenv("RESPONSE_SEED", "42")
	t.Setenv("LLM_TEMPERATURE", "0.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, expected 9090", cfg.Port)
	}
	if cfg.OpenAIAPIKey != "sk-test" {
		t.Errorf("OpenAIAPIKey = %q, expected sk-test", cfg.OpenAIAPIKey)
	}
	if cfg.MemoryBackend != BackendSQLite {
		t.Errorf("MemoryBackend = %q, expected %q", cfg.MemoryBackend, BackendSQLite)
	}
	if cfg.ResponseSeed != 42 {
		t.Errorf("ResponseSeed = %d, expected 42", cfg.ResponseSeed)
	}
	if cfg.Temperature != 0.5 {
		t.Errorf("Temperature = %v, expected 0.5", cfg.Temperature)
	}
}

func TestLoadDotEnvAndFile(t *testing.T) {
	dir := isolate(t)

	dotenv := "ANTHROPIC_API_KEY=sk-ant-test\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(dotenv), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("ANTHROPIC_API_KEY") })

	yaml := "llm:\n  provider: anthropic\nmemory:\n  backend: chromem\n  max_entries: 20\n"
	if err := os.WriteFile(filepath.Join(dir, "toolfinder.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LLMProvider != ProviderAnthropic {
		t.Errorf("LLMProvider = %q, expected %q", cfg.LLMProvider, ProviderAnthropic)
	}
	if cfg.LLMAPIKey() != "sk-ant-test" {
		t.Errorf("LLMAPIKey() = %q, expected sk-ant-test", cfg.LLMAPIKey())
	}
	if cfg.MemoryBackend != BackendChromem || cfg.MaxEntries != 20 {
		t.Errorf("memory = %q/%d, expected chromem/20", cfg.MemoryBackend, cfg.MaxEntries)
	}
}

func TestValidateLLM(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		expectErr bool
	}{
		{name: "openai with key", cfg: Config{LLMProvider: ProviderOpenAI, OpenAIAPIKey: "k"}, expectErr: false},
		{name: "openai without key", cfg: Config{LLMProvider: ProviderOpenAI, AnthropicAPIKey: "k"}, expectErr: true},
		{name: "anthropic with key", cfg: Config{LLMProvider: ProviderAnthropic, AnthropicAPIKey: "k"}, expectErr: false},
		{name: "anthropic without key", cfg: Config{LLMProvider: ProviderAnthropic}, expectErr: true},
		{name: "unknown provider", cfg: Config{LLMProvider: "other", OpenAIAPIKey: "k"}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.ValidateLLM()
			if (err != nil) != tt.expectErr {
				t.Errorf("ValidateLLM() error = %v, expectErr %v", err, tt.expectErr)
			}
		})
	}
}

func TestResolveMemoryBackend(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		expected  string
		expectErr bool
	}{
		{name: "auto with pinecone key", cfg: Config{MemoryBackend: BackendAuto, PineconeAPIKey: "k"}, expected: BackendPinecone},
		{name: "auto without key", cfg: Config{MemoryBackend: BackendAuto}, expected: BackendMemory},
		{name: "empty means auto", cfg: Config{}, expected: BackendMemory},
		{name: "pinecone without key degrades", cfg: Config{MemoryBackend: BackendPinecone}, expected: BackendMemory},
		{name: "postgres with url", cfg: Config{MemoryBackend: BackendPostgres, DatabaseURL: "postgres://x"}, expected: BackendPostgres},
		{name: "postgres without url", cfg: Config{MemoryBackend: BackendPostgres}, expectErr: true},
		{name: "sqlite", cfg: Config{MemoryBackend: BackendSQLite}, expected: BackendSQLite},
		{name: "chromem", cfg: Config{MemoryBackend: BackendChromem}, expected: BackendChromem},
		{name: "unknown", cfg: Config{MemoryBackend: "redis"}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.cfg.ResolveMemoryBackend()
			if (err != nil) != tt.expectErr {
				t.Fatalf("ResolveMemoryBackend() error = %v, expectErr %v", err, tt.expectErr)
			}
			if result != tt.expected {
				t.Errorf("ResolveMemoryBackend() = %q, expected %q", result, tt.expected)
			}
		})
	}
}
