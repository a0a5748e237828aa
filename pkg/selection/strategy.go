package selection

import (
	"fmt"

	"github.com/aretw0/arbor/pkg/domain"
)

// Strategy orders activations best-first relative to the current position.
// Implementations must be free of side effects and must not mutate their input.
type Strategy interface {
	Rank(current domain.Path, activations []domain.Activation) []domain.ScoredActivation
}

// Strategy names accepted by New.
const (
	StrategyContextPenalty = "penalty"
	StrategyConfidence     = "confidence"
)

// New builds a strategy by name.
func New(name string, stepUpPenalty float64) (Strategy, error) {
	switch name {
	case "", StrategyContextPenalty:
		return NewContextPenalty(stepUpPenalty), nil
	case StrategyConfidence:
		return ByConfidence{}, nil
	}
	return nil, fmt.Errorf("unknown selection strategy %q", name)
}

// SelectBest ranks the activations and returns the best one.
// It fails with domain.ErrNoActivation when nothing can be ranked.
func SelectBest(s Strategy, current domain.Path, activations []domain.Activation) (domain.Activation, error) {
	best, _, err := selectBest(s, current, activations)
	return best.Activation, err
}

func selectBest(s Strategy, current domain.Path, activations []domain.Activation) (domain.ScoredActivation, []domain.ScoredActivation, error) {
	if len(activations) == 0 {
		return domain.ScoredActivation{}, nil, domain.ErrNoActivation
	}
	ranked := s.Rank(current, activations)
	if len(ranked) == 0 {
		return domain.ScoredActivation{}, nil, fmt.Errorf("%w: none of %d activations has a target state", domain.ErrNoActivation, len(activations))
	}
	return ranked[0], ranked, nil
}

// Distance counts the trailing components of current beyond the longest
// prefix it shares with target. The depth of target past that prefix is ignored.
func Distance(target, current domain.Path) int {
	return current.Len() - current.CommonPrefixLen(target)
}
