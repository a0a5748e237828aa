/*
Package activator turns a turn's Request into candidate Activations.

An Activator decides whether it participates in a turn (CanHandle) and, when it
does, tries its rules in declaration order and returns at most one Activation.
Ranking candidates coming from different activators is not done here; see
package selection.

# Activators

  - Regex: full-string, case-insensitive pattern rules with positional and named captures.
  - Event: exact event-name rules for requests without a textual query.
  - CatchAll: a low-confidence fallback that fires for every textual query.

Rule sets are compiled eagerly by the constructors, so an invalid pattern is a
configuration error reported at setup time and never on the match path.
*/
package activator
