/*
Package arbor is a dialogue activation engine for conversational agents.

Given the user's input for a turn and the conversation's current position in a
hierarchical state tree (e.g. /main/weather/city), Arbor asks every registered
activator for a candidate transition and picks exactly one winner. Candidates
are ranked by their confidence scaled by a penalty that grows with the number of
states the conversation would have to step up to reach them, so rules close to
the current position win over distant ones with the same confidence.

# Concept

Arbor is a pure decision function. It does not execute the winning rule's side
effects, it performs no network I/O and it does not persist conversation state.
The host owns the dialog position and feeds it in on every turn.

# Key Features

  - Full-string, case-insensitive pattern rules with positional and named captures.
  - Eager rule compilation: invalid patterns fail at setup time, never mid-conversation.
  - Stable ranking: equal scores keep the order in which activators produced them.
  - Observability through lifecycle hooks (slog, Prometheus).

# Usage

	greet, err := activator.NewRegex("greet", []domain.Rule{
		{Pattern: "hi|hello.*", Target: "/main/hello"},
		{Pattern: `(?<city>\w+) weather`, Target: "/main/weather"},
	})
	if err != nil {
		log.Fatal(err)
	}
	fallback, _ := activator.NewCatchAll("fallback", "/main/fallback", activator.DefaultCatchAllConfidence)

	eng, err := arbor.New(arbor.WithActivators(greet, fallback))
	if err != nil {
		log.Fatal(err)
	}

	winner, err := eng.Activate(ctx, domain.DialogContext{CurrentState: "/main"}, domain.Request{Query: "paris weather"})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(winner.Target) // /main/weather
*/
package arbor
