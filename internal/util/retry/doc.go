// Package retry provides exponential backoff for transient controller API
// failures. It is used by the REST client only; the reconciliation engine
// itself never retries a failed pass.
package retry
