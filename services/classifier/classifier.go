// Package classifier maps a teacher's free-text request onto catalog tools:
// preprocess, analyze (language model or keyword fallback), match, score and
// compose a reply.
package classifier

import (
	"context"
	"log"

	"toolfinder/models"
)

type Classifier struct {
	source   ToolSource
	analyzer *Analyzer
	composer *Composer
}

func NewClassifier(source ToolSource, analyzer *Analyzer, composer *Composer) *Classifier {
	return &Classifier{
		source:   source,
		analyzer: analyzer,
		composer: composer,
	}
}

// Classify never fails. When the language model is unusable the returned
// AnalysisResult is degraded and the intent comes from the keyword rules.
func (c *Classifier) Classify(ctx context.Context, query string, userCtx *models.UserContext) (models.IntentResult, AnalysisResult) {
	log.Printf("[INFO] Starting intent classification")

	cleaned := Preprocess(query)
	analysis := c.analyzer.Analyze(ctx, cleaned, userCtx)

	primary, secondary := Match(c.source, analysis.Analysis)
	confidence := Score(analysis.Analysis, primary, secondary)
	response := c.composer.Compose(primary, secondary, analysis.Analysis, userCtx)

	log.Printf("[INFO] Intent classification completed: type=%s, primary=%d, secondary=%d, confidence=%.2f",
		analysis.Analysis.Type(), len(primary), len(secondary), confidence)

	return models.IntentResult{
		PrimaryTools:      primary,
		SecondaryTools:    secondary,
		ConfidenceScore:   confidence,
		Reasoning:         analysis.Analysis.Reasoning,
		QueryType:         analysis.Analysis.Type(),
		SuggestedResponse: response,
	}, analysis
}

// HasLanguageModel reports whether analyses can reach a language model.
func (c *Classifier) HasLanguageModel() bool {
	return c.analyzer.completer != nil
}
