package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/arbor/pkg/domain"
)

// LogHooks logs the winner of each selection at Info level and the ranked
// top-N candidates at Debug level.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSelect: func(ctx context.Context, ev *domain.SelectionEvent) {
			logger.InfoContext(ctx, "activation_selected",
				"position", ev.Position,
				"activator", ev.Winner.Activation.Activator,
				"target", ev.Winner.Activation.Target,
				"score", ev.Winner.Score,
				"candidates", ev.Candidates,
				"excluded", ev.Excluded,
			)
			for rank, s := range ev.Top {
				logger.DebugContext(ctx, "activation_candidate",
					"rank", rank+1,
					"activator", s.Activation.Activator,
					"target", s.Activation.Target,
					"confidence", s.Activation.Confidence,
					"distance", s.Distance,
					"score", s.Score,
				)
			}
		},
	}
}
