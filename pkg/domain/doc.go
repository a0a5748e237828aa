/*
Package domain contains the core domain models of the Arbor activation engine.

It defines the positions of a conversation in the hierarchical state tree, the
requests an activator inspects, and the activations (candidates) produced when a
rule fires. This package is kept pure and free of I/O, following the same
Hexagonal Architecture principles as the rest of the engine.

# Key Entities

  - Path: An ordered sequence of named components (e.g. /main/weather/city).
  - Request: The user input for a single turn (a textual query or an event).
  - Activation: A proposed transition carrying a target state, a confidence and captured data.
  - ActivatorContext: The data captured by the activator that produced an Activation.
  - ScoredActivation: An Activation annotated with its distance-adjusted score.
*/
package domain
