package classifier

import "toolfinder/models"

// Score adjusts the analysis confidence by how many tools matched and clamps
// the result to [0, 1].
func Score(analysis models.SemanticAnalysis, primary, secondary []models.ToolRecord) float64 {
	score := analysis.Confidence()

	switch {
	case len(primary) == 1:
		score += 0.2
	case len(primary) > 1 && len(primary) <= 3:
		score += 0.1
	case len(primary) == 0:
		score -= 0.3
	}

	if len(secondary) > 0 {
		score += 0.05
	}

	return max(0.0, min(1.0, score))
}
