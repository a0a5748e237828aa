package domain

// Request is the input of a single conversational turn.
// A request carries either a textual query typed by the user or a named event
// raised by the channel (e.g. "start", "timeout").
type Request struct {
	ClientID string `json:"client_id,omitempty" yaml:"client_id,omitempty"`
	Query    string `json:"query,omitempty" yaml:"query,omitempty"`
	Event    string `json:"event,omitempty" yaml:"event,omitempty"`
}

// HasQuery reports whether the request carries a non-empty textual query.
func (r Request) HasQuery() bool {
	return r.Query != ""
}

// HasEvent reports whether the request carries a named event.
func (r Request) HasEvent() bool {
	return r.Event != ""
}

// DialogContext is the caller-owned view of the conversation position.
// The engine reads it once per turn and never mutates it.
type DialogContext struct {
	CurrentState string `json:"current_state" yaml:"current_state"`
}

// Position parses the current state into a Path.
func (d DialogContext) Position() Path {
	return ParsePath(d.CurrentState)
}
