package domain

// Context kinds, one per activator family.
const (
	ContextRegex    = "regex"
	ContextEvent    = "event"
	ContextCatchAll = "catchall"
)

// ActivatorContext holds the data an activator captured while matching.
// The set of implementations is fixed: RegexContext, EventContext and CatchAllContext.
type ActivatorContext interface {
	Kind() string
}

// RegexContext holds the groups captured by a pattern match.
// Groups[0] is the whole matched text.
type RegexContext struct {
	Groups []string          `json:"groups"`
	Named  map[string]string `json:"named,omitempty"`
}

func (RegexContext) Kind() string { return ContextRegex }

// Group returns the positional capture i, or "" when i is out of range.
func (c RegexContext) Group(i int) string {
	if i < 0 || i >= len(c.Groups) {
		return ""
	}
	return c.Groups[i]
}

// Value returns the named capture and whether it was present.
func (c RegexContext) Value(name string) (string, bool) {
	v, ok := c.Named[name]
	return v, ok
}

// EventContext records the event that fired.
type EventContext struct {
	Event string `json:"event"`
}

func (EventContext) Kind() string { return ContextEvent }

// CatchAllContext records the query that fell through to a catch-all rule.
type CatchAllContext struct {
	Query string `json:"query"`
}

func (CatchAllContext) Kind() string { return ContextCatchAll }

// Activation is a candidate transition produced by an activator.
// It is created once when a rule fires and is never mutated afterwards.
type Activation struct {
	// Activator is the name of the activator that produced this candidate.
	Activator string `json:"activator,omitempty"`

	// Target is the absolute path of the state to activate.
	// An empty Target means the activation cannot be positioned in the tree.
	Target string `json:"target,omitempty"`

	// Confidence is the matcher-assigned score in [0,1].
	Confidence float64 `json:"confidence"`

	Context ActivatorContext `json:"context,omitempty"`
}

// HasTarget reports whether the activation points to a state.
func (a Activation) HasTarget() bool {
	return a.Target != ""
}

// TargetPath parses the target state. It is the root path when no target is set.
func (a Activation) TargetPath() Path {
	return ParsePath(a.Target)
}

// ScoredActivation is an Activation annotated by a ranking strategy.
type ScoredActivation struct {
	Activation Activation `json:"activation"`

	// Distance is the number of components of the current position that must
	// be ascended to reach the nearest common ancestor with the target.
	Distance int `json:"distance"`

	// Penalty is the multiplicative factor derived from Distance.
	Penalty float64 `json:"penalty"`

	// Score is the adjusted score used for ordering.
	Score float64 `json:"score"`
}
