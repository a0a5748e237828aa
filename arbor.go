package arbor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/activator"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/selection"
)

// Version is the current release of the engine.
const Version = "0.1.0"

// Engine is the high-level entry point for the Arbor library.
// It combines an activator registry with a selector and runs one turn per call.
type Engine struct {
	registry   *activator.Registry
	activators []activator.Activator
	strategy   selection.Strategy
	hooks      []domain.LifecycleHooks
	topN       int
	logger     *slog.Logger
	selector   *selection.Selector
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = append(e.hooks, hooks)
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStrategy sets the ranking strategy (default: context penalty with base 0.2).
func WithStrategy(s selection.Strategy) Option {
	return func(e *Engine) {
		e.strategy = s
	}
}

// WithStepUpPenalty uses the context penalty strategy with a custom base.
func WithStepUpPenalty(base float64) Option {
	return func(e *Engine) {
		e.strategy = selection.NewContextPenalty(base)
	}
}

// WithTopN sets how many ranked candidates are reported to hooks.
func WithTopN(n int) Option {
	return func(e *Engine) {
		e.topN = n
	}
}

// WithRegistry injects a prepared registry (e.g. built from a scenario file).
func WithRegistry(r *activator.Registry) Option {
	return func(e *Engine) {
		e.registry = r
	}
}

// WithActivators registers activators in the given order.
func WithActivators(activators ...activator.Activator) Option {
	return func(e *Engine) {
		e.activators = append(e.activators, activators...)
	}
}

// New initializes a new Arbor Engine.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{
		topN: selection.DefaultTopN,
	}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	if eng.registry == nil {
		eng.registry = activator.NewRegistry()
	}
	if eng.strategy == nil {
		eng.strategy = selection.NewContextPenalty(selection.DefaultStepUpPenalty)
	}

	for _, a := range eng.activators {
		if err := eng.registry.Register(a); err != nil {
			return nil, fmt.Errorf("failed to register activator: %w", err)
		}
	}

	selOpts := []selection.Option{
		selection.WithStrategy(eng.strategy),
		selection.WithTopN(eng.topN),
		selection.WithLogger(eng.logger),
	}
	for _, h := range eng.hooks {
		selOpts = append(selOpts, selection.WithLifecycleHooks(h))
	}
	eng.selector = selection.NewSelector(selOpts...)

	return eng, nil
}

// Registry returns the activator registry used by the engine.
func (e *Engine) Registry() *activator.Registry {
	return e.registry
}

// Candidates collects the activations produced for a request, in registration order.
func (e *Engine) Candidates(req domain.Request) []domain.Activation {
	return e.registry.Collect(req)
}

// Rank orders candidates for the dialog's position without selecting one.
func (e *Engine) Rank(dialog domain.DialogContext, activations []domain.Activation) []domain.ScoredActivation {
	return e.selector.Rank(dialog, activations)
}

// Select returns the best of the supplied candidates.
func (e *Engine) Select(ctx context.Context, dialog domain.DialogContext, activations []domain.Activation) (domain.Activation, error) {
	return e.selector.Select(ctx, dialog, activations)
}

// Activate runs a whole turn: collect candidates for the request, then select the winner.
// It fails with domain.ErrNoActivation when no activator fires.
func (e *Engine) Activate(ctx context.Context, dialog domain.DialogContext, req domain.Request) (domain.Activation, error) {
	candidates := e.Candidates(req)
	if len(candidates) == 0 {
		e.logger.Debug("no activator fired", "position", dialog.CurrentState, "query", req.Query, "event", req.Event)
		return domain.Activation{}, fmt.Errorf("%w for request at %s", domain.ErrNoActivation, dialog.Position())
	}
	return e.Select(ctx, dialog, candidates)
}
