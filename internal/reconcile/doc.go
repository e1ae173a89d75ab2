// Package reconcile implements the reconciliation engine for a single
// virtual network resource: it validates the desired definition, reads the
// current state from the controller, classifies the required action and
// executes it, then reports a structured outcome.
//
// A pass is strictly sequential and synchronous with no internal
// concurrency, and every failure is terminal for the invocation. Callers
// running concurrent passes against the same project/network must serialize
// them externally.
package reconcile
