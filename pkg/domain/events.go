package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventSelect EventType = "select"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// SelectionEvent summarizes one selection call.
type SelectionEvent struct {
	EventBase
	Position   string             `json:"position"`
	Candidates int                `json:"candidates"` // Activations supplied by the caller
	Excluded   int                `json:"excluded"`   // Activations dropped by the strategy (no target)
	Top        []ScoredActivation `json:"top"`        // Best-first, truncated to the selector's top-N
	Winner     ScoredActivation   `json:"winner"`
}

// LifecycleHooks defines callbacks for selection observability.
type LifecycleHooks struct {
	OnSelect func(context.Context, *SelectionEvent)
}
