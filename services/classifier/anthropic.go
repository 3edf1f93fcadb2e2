package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"toolfinder/models"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/invopop/jsonschema"
)

const recordAnalysisTool = "record_analysis"

// AnthropicCompleter asks Claude to call a single tool whose input schema is
// the analysis shape, and returns that tool input as JSON text.
type AnthropicCompleter struct {
	client      *anthropic.Client
	temperature float64
	maxTokens   int64
}

func NewAnthropicCompleter(apiKey string, temperature float64, maxTokens int) *AnthropicCompleter {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	return &AnthropicCompleter{
		client:      &client,
		temperature: temperature,
		maxTokens:   int64(maxTokens),
	}
}

func (c *AnthropicCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	response, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.ModelClaude4Sonnet20250514,
		MaxTokens:   c.maxTokens,
		Temperature: anthropic.Float(c.temperature),
		System:      []anthropic.TextBlockParam{{Text: system}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
		Tools: []anthropic.ToolUnionParam{
			{
				OfTool: &anthropic.ToolParam{
					Name:        recordAnalysisTool,
					Description: anthropic.String("Record the structured analysis of the teacher's request"),
					InputSchema: analysisSchema(),
				},
			},
		},
		ToolChoice: anthropic.ToolChoiceUnionParam{
			OfTool: &anthropic.ToolChoiceToolParam{Name: recordAnalysisTool},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to call Anthropic API: %w", err)
	}

	text := ""
	for _, block := range response.Content {
		switch block := block.AsAny().(type) {
		case anthropic.ToolUseBlock:
			if block.Name != recordAnalysisTool {
				continue
			}
			input, err := json.Marshal(block.Input)
			if err != nil {
				return "", fmt.Errorf("failed to marshal tool input: %w", err)
			}
			return string(input), nil
		case anthropic.TextBlock:
			text += block.Text
		}
	}

	// No tool call; the analyzer still tries to find JSON in the text.
	log.Printf("[WARN] Anthropic response contained no %s tool call", recordAnalysisTool)
	return text, nil
}

func analysisSchema() anthropic.ToolInputSchemaParam {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	schema := reflector.Reflect(models.SemanticAnalysis{})

	return anthropic.ToolInputSchemaParam{
		Properties: schema.Properties,
		Required:   schema.Required,
	}
}
