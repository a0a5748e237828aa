/*
Package observability provides lifecycle hooks for monitoring the Arbor engine.

LogHooks reports every selection, with its top-ranked candidates, to a
structured logger. Metrics exposes the same events as Prometheus collectors.
Both are plain domain.LifecycleHooks values and can be combined freely.
*/
package observability
