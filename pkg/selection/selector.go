package selection

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/domain"
)

// DefaultTopN is the number of ranked activations reported to hooks.
const DefaultTopN = 5

// Selector picks the winning activation of a turn.
type Selector struct {
	strategy Strategy
	hooks    []domain.LifecycleHooks
	topN     int
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures the Selector.
type Option func(*Selector)

// WithStrategy replaces the default ContextPenalty strategy.
func WithStrategy(s Strategy) Option {
	return func(sel *Selector) {
		sel.strategy = s
	}
}

// WithLifecycleHooks registers observability hooks. It may be used more than once.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(sel *Selector) {
		sel.hooks = append(sel.hooks, hooks)
	}
}

// WithTopN sets how many ranked activations are reported to hooks.
// A negative value reports the whole ranking.
func WithTopN(n int) Option {
	return func(sel *Selector) {
		sel.topN = n
	}
}

// WithLogger configures a logger for the Selector.
func WithLogger(logger *slog.Logger) Option {
	return func(sel *Selector) {
		sel.logger = logger
	}
}

// NewSelector creates a Selector. Without options it ranks with
// NewContextPenalty(DefaultStepUpPenalty) and reports the top DefaultTopN.
func NewSelector(opts ...Option) *Selector {
	sel := &Selector{
		strategy: NewContextPenalty(DefaultStepUpPenalty),
		topN:     DefaultTopN,
		logger:   logging.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(sel)
	}
	if sel.logger == nil {
		sel.logger = logging.NewNop()
	}
	return sel
}

// Strategy returns the ranking strategy in use.
func (s *Selector) Strategy() Strategy {
	return s.strategy
}

// Rank orders the activations for the dialog's position without selecting.
func (s *Selector) Rank(dialog domain.DialogContext, activations []domain.Activation) []domain.ScoredActivation {
	return s.strategy.Rank(dialog.Position().Resolve("."), activations)
}

// Select returns the best activation for the dialog's current position.
// It fails with domain.ErrNoActivation when activations is empty or nothing can be ranked.
func (s *Selector) Select(ctx context.Context, dialog domain.DialogContext, activations []domain.Activation) (domain.Activation, error) {
	position := dialog.Position().Resolve(".")

	winner, ranked, err := selectBest(s.strategy, position, activations)
	if err != nil {
		s.logger.Debug("no activation selected",
			"position", position.String(),
			"candidates", len(activations),
			"err", err,
		)
		return domain.Activation{}, err
	}

	s.logger.Debug("activation selected",
		"position", position.String(),
		"activator", winner.Activation.Activator,
		"target", winner.Activation.Target,
		"score", winner.Score,
		"candidates", len(activations),
	)

	if len(s.hooks) > 0 {
		s.emitSelect(ctx, position, activations, ranked, winner)
	}

	return winner.Activation, nil
}

func (s *Selector) emitSelect(ctx context.Context, position domain.Path, activations []domain.Activation, ranked []domain.ScoredActivation, winner domain.ScoredActivation) {
	top := ranked
	if s.topN >= 0 && len(top) > s.topN {
		top = top[:s.topN]
	}

	ev := &domain.SelectionEvent{
		EventBase: domain.EventBase{
			Timestamp: s.now(),
			Type:      domain.EventSelect,
		},
		Position:   position.String(),
		Candidates: len(activations),
		Excluded:   len(activations) - len(ranked),
		Top:        append([]domain.ScoredActivation(nil), top...),
		Winner:     winner,
	}

	for _, h := range s.hooks {
		if h.OnSelect != nil {
			h.OnSelect(ctx, ev)
		}
	}
}
