package classifier

import (
	"context"
	"fmt"
	"log"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Completer sends one system + user prompt pair to a language model and
// returns the raw text of the reply.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

type LangchainCompleter struct {
	llm         llms.Model
	temperature float64
	maxTokens   int
}

func NewLangchainCompleter(llm llms.Model, temperature float64, maxTokens int) *LangchainCompleter {
	return &LangchainCompleter{
		llm:         llm,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

// NewOpenAICompleter builds a completer backed by the OpenAI chat API.
func NewOpenAICompleter(apiKey, model string, temperature float64, maxTokens int) (*LangchainCompleter, error) {
	llm, err := openai.New(
		openai.WithModel(model),
		openai.WithToken(apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	return NewLangchainCompleter(llm, temperature, maxTokens), nil
}

func (c *LangchainCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, system),
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}

	resp, err := c.llm.GenerateContent(ctx, messages,
		llms.WithTemperature(c.temperature),
		llms.WithMaxTokens(c.maxTokens))
	if err != nil {
		return "", fmt.Errorf("failed to generate analysis: %w", err)
	}

	if len(resp.Choices) == 0 {
		log.Printf("[ERROR] No choices in LLM analysis response")
		return "", fmt.Errorf("no choices in LLM analysis response")
	}

	return resp.Choices[0].Content, nil
}
