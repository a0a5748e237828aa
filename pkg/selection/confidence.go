package selection

import "github.com/aretw0/arbor/pkg/domain"

// ByConfidence ranks activations by their raw confidence.
// Distance is reported for diagnostics but never applied, and activations
// without a target are kept.
type ByConfidence struct{}

func (ByConfidence) Rank(current domain.Path, activations []domain.Activation) []domain.ScoredActivation {
	ranked := make([]domain.ScoredActivation, 0, len(activations))
	for _, a := range activations {
		scored := domain.ScoredActivation{
			Activation: a,
			Penalty:    1,
			Score:      a.Confidence,
		}
		if a.HasTarget() {
			scored.Distance = Distance(a.TargetPath(), current)
		}
		ranked = append(ranked, scored)
	}

	sortByScore(ranked)
	return ranked
}
