package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"

	"toolfinder/models"
)

// Greedy on purpose: from the first '{' to the last '}' of the reply.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// AnalysisResult always carries a usable analysis. Status is degraded when the
// analysis came from the keyword fallback, and Err holds the reason.
type AnalysisResult struct {
	Analysis models.SemanticAnalysis
	Status   models.ResultStatus
	Err      error
}

type Analyzer struct {
	completer Completer
}

// NewAnalyzer returns an analyzer. A nil completer makes every analysis use
// the keyword fallback.
func NewAnalyzer(completer Completer) *Analyzer {
	return &Analyzer{completer: completer}
}

func (a *Analyzer) Analyze(ctx context.Context, query string, userCtx *models.UserContext) AnalysisResult {
	log.Printf("[INFO] Starting semantic analysis for query: %q", query)

	if a.completer == nil {
		return degraded(query, fmt.Errorf("no language model configured"))
	}

	prompt := BuildAnalysisPrompt(query, userCtx)
	reply, err := a.completer.Complete(ctx, analysisSystemPrompt, prompt)
	if err != nil {
		log.Printf("[ERROR] Failed to get semantic analysis: %v", err)
		return degraded(query, fmt.Errorf("failed to get semantic analysis: %w", err))
	}

	analysis, err := parseAnalysis(reply)
	if err != nil {
		log.Printf("[ERROR] Failed to parse semantic analysis: %v", err)
		return degraded(query, err)
	}

	log.Printf("[INFO] Semantic analysis completed: type=%s, confidence=%.2f", analysis.Type(), analysis.Confidence())
	return AnalysisResult{Analysis: analysis, Status: models.StatusSuccess}
}

func parseAnalysis(reply string) (models.SemanticAnalysis, error) {
	var analysis models.SemanticAnalysis

	match := jsonObjectPattern.FindString(reply)
	if match == "" {
		return analysis, fmt.Errorf("no JSON object in analysis response")
	}

	if err := json.Unmarshal([]byte(match), &analysis); err != nil {
		return analysis, fmt.Errorf("failed to decode analysis JSON: %w", err)
	}

	return analysis, nil
}

func degraded(query string, err error) AnalysisResult {
	log.Printf("[WARN] Using keyword fallback analysis")
	return AnalysisResult{
		Analysis: FallbackAnalysis(query),
		Status:   models.StatusDegraded,
		Err:      err,
	}
}
