// Package app builds the long-lived components once at startup and hands them
// to the HTTP, CLI and MCP surfaces.
package app

import (
	"fmt"
	"io"
	"log"

	"toolfinder/config"
	"toolfinder/db"
	"toolfinder/services"
	"toolfinder/services/catalog"
	"toolfinder/services/classifier"
	"toolfinder/services/memory"
)

const (
	Name    = "toolfinder"
	Version = "1.0.0"
)

type App struct {
	Config     *config.Config
	Catalog    *catalog.Catalog
	Classifier *classifier.Classifier
	Memory     *memory.Gateway
	Analytics  *services.AnalyticsService
	Tools      *services.ToolService
	Chat       *services.ChatService

	closers []io.Closer
}

// New wires the application. A missing language model credential is an
// error; memory falls back to process storage instead.
func New(cfg *config.Config) (*App, error) {
	log.Printf("[INFO] Starting application setup")

	if err := cfg.ValidateLLM(); err != nil {
		return nil, err
	}

	completer, err := NewCompleter(cfg)
	if err != nil {
		return nil, err
	}

	a := &App{Config: cfg}

	store, err := a.newMemoryStore(cfg)
	if err != nil {
		return nil, err
	}

	a.build(catalog.MustLoad(), completer, store)
	log.Printf("[INFO] Application ready: llm=%s, memory=%s", cfg.LLMProvider, store.Provider())
	return a, nil
}

// NewWithParts wires the application from prebuilt parts. A nil completer
// means every analysis uses the keyword fallback.
func NewWithParts(cfg *config.Config, completer classifier.Completer, store memory.Store) *App {
	a := &App{Config: cfg}
	a.build(catalog.MustLoad(), completer, store)
	return a
}

func (a *App) build(tools *catalog.Catalog, completer classifier.Completer, store memory.Store) {
	seed := int64(0)
	contextLimit := 0
	if a.Config != nil {
		seed = a.Config.ResponseSeed
		contextLimit = a.Config.ContextLimit
	}

	a.Catalog = tools
	a.Classifier = classifier.NewClassifier(tools, classifier.NewAnalyzer(completer), classifier.NewComposerFromSeed(seed))
	a.Memory = memory.NewGateway(store, contextLimit)
	a.Analytics = services.NewAnalyticsService()
	a.Tools = services.NewToolService(tools)
	a.Chat = services.NewChatService(a.Classifier, a.Memory, a.Analytics)
}

// NewCompleter returns the language model client for the configured provider.
func NewCompleter(cfg *config.Config) (classifier.Completer, error) {
	switch cfg.LLMProvider {
	case config.ProviderAnthropic:
		return classifier.NewAnthropicCompleter(cfg.AnthropicAPIKey, cfg.Temperature, cfg.MaxTokens), nil
	case config.ProviderOpenAI:
		completer, err := classifier.NewOpenAICompleter(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.Temperature, cfg.MaxTokens)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize language model: %w", err)
		}
		return completer, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.LLMProvider)
	}
}

func (a *App) newMemoryStore(cfg *config.Config) (memory.Store, error) {
	backend, err := cfg.ResolveMemoryBackend()
	if err != nil {
		return nil, err
	}

	switch backend {
	case config.BackendPinecone:
		embed, err := a.newEmbedFunc(cfg)
		if err != nil {
			return nil, err
		}
		store, err := memory.NewPineconeStore(cfg.PineconeAPIKey, cfg.PineconeIndexName, cfg.PineconeNamespace, embed, cfg.MaxEntries)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Pinecone memory: %w", err)
		}
		return store, nil

	case config.BackendChromem:
		embed, err := a.newEmbedFunc(cfg)
		if err != nil {
			return nil, err
		}
		store, err := memory.NewChromemStore(cfg.ChromemPath, embed, cfg.MaxEntries)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize chromem memory: %w", err)
		}
		return store, nil

	case config.BackendPostgres:
		repo, err := db.NewPostgresMemoryRepository(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize memory database: %w", err)
		}
		a.closers = append(a.closers, repo)
		return memory.NewSQLStore(repo, "postgres", cfg.MaxEntries), nil

	case config.BackendSQLite:
		repo, err := db.NewSQLiteMemoryRepository(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize memory database: %w", err)
		}
		a.closers = append(a.closers, repo)
		return memory.NewSQLStore(repo, "sqlite", cfg.MaxEntries), nil

	default:
		return memory.NewLocalStore(cfg.MaxEntries), nil
	}
}

// Embeddings always come from OpenAI, whichever provider does the analysis.
func (a *App) newEmbedFunc(cfg *config.Config) (memory.EmbedFunc, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required for %s memory embeddings", cfg.MemoryBackend)
	}
	embedder, err := memory.NewOpenAIEmbedder(cfg.OpenAIAPIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize embeddings: %w", err)
	}
	return memory.EmbedderFunc(embedder), nil
}

// HasLanguageModel reports whether a language model client is configured.
func (a *App) HasLanguageModel() bool {
	return a.Classifier.HasLanguageModel()
}

func (a *App) Close() error {
	var firstErr error
	for _, closer := range a.closers {
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
