// Package config defines the desired network definition accepted from the
// caller, its YAML loading, defaults, and validation.
//
// A Config is an immutable snapshot of the requested attributes for a single
// virtual network: identity (project, network), the IPv4/IPv6 subnet blocks,
// the route target, and the desired lifecycle state. Validation is purely
// local and never consults the controller.
package config
