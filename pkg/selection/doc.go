/*
Package selection ranks candidate activations and picks the winner of a turn.

A Strategy orders activations best-first. ContextPenalty, the default, scales each
activation's confidence by a penalty that grows with the number of states the
conversation would have to step up from its current position:

	penalty(d) = 1 - Σ_{k=0}^{d-1} base/(k+1)

With the default base of 0.2, penalty(1) = 0.8, penalty(2) = 0.7 and
penalty(3) ≈ 0.633. The penalty is not clamped: past d = 82 it becomes negative
and inverts the sign of the adjusted score.

Sorting is stable, so activations with equal scores keep the order in which the
activators produced them.

The Selector wraps a Strategy, returns the head of the ranking and reports the
top-N entries to the registered lifecycle hooks.
*/
package selection
