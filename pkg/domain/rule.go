package domain

// Rule pairs a textual pattern with the state to activate when it matches.
// Rules are evaluated in declaration order.
type Rule struct {
	Pattern string `json:"pattern" yaml:"pattern" mapstructure:"pattern"`
	Target  string `json:"target" yaml:"target" mapstructure:"target"`
}

// EventRule pairs an event name with the state to activate when it is raised.
type EventRule struct {
	Event  string `json:"event" yaml:"event" mapstructure:"event"`
	Target string `json:"target" yaml:"target" mapstructure:"target"`
}
