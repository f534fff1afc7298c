// Package scoring aggregates the component scores into the final match
// percentage.
package scoring

import "github.com/fmuoria/resume-analyzer/internal/ats"

// Weights for the overall blend. Semantic similarity dominates, skill
// coverage pulls the score toward explicit requirements.
const (
	similarityWeight = 0.6
	coverageWeight   = 0.4
)

// OverallScore blends semantic similarity and skill coverage, both in
// [0, 1], into a percentage rounded to two decimals.
func OverallScore(similarity, coverage float64) float64 {
	return ats.Round2((similarityWeight*similarity + coverageWeight*coverage) * 100)
}
