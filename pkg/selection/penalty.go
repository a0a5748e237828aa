package selection

import (
	"cmp"
	"slices"

	"github.com/aretw0/arbor/pkg/domain"
)

// DefaultStepUpPenalty is the base of the harmonic step-up penalty.
const DefaultStepUpPenalty = 0.2

// ContextPenalty favors activations close to the current position.
type ContextPenalty struct {
	stepUpPenalty float64
}

// NewContextPenalty creates the strategy with a fixed penalty base.
func NewContextPenalty(stepUpPenalty float64) ContextPenalty {
	return ContextPenalty{stepUpPenalty: stepUpPenalty}
}

// StepUpPenalty returns the configured base.
func (s ContextPenalty) StepUpPenalty() float64 {
	return s.stepUpPenalty
}

// Penalty returns 1 - Σ_{k<diffLevel} base/(k+1). It is not clamped.
func (s ContextPenalty) Penalty(diffLevel int) float64 {
	p := 1.0
	for k := 0; k < diffLevel; k++ {
		p -= s.stepUpPenalty / float64(k+1)
	}
	return p
}

// Rank drops activations without a target, scores the rest as
// confidence * Penalty(Distance) and sorts them best-first, stable.
func (s ContextPenalty) Rank(current domain.Path, activations []domain.Activation) []domain.ScoredActivation {
	current = current.Resolve(".")

	ranked := make([]domain.ScoredActivation, 0, len(activations))
	for _, a := range activations {
		if !a.HasTarget() {
			continue
		}
		d := Distance(a.TargetPath(), current)
		p := s.Penalty(d)
		ranked = append(ranked, domain.ScoredActivation{
			Activation: a,
			Distance:   d,
			Penalty:    p,
			Score:      a.Confidence * p,
		})
	}

	sortByScore(ranked)
	return ranked
}

func sortByScore(ranked []domain.ScoredActivation) {
	slices.SortStableFunc(ranked, func(a, b domain.ScoredActivation) int {
		return cmp.Compare(b.Score, a.Score)
	})
}
