// Package vnc provides the client for the network-virtualization
// controller's REST API.
package vnc

import (
	"context"
)

// Controller is the collaborator interface the reconciliation engine uses to
// talk to the remote controller. The session handle is threaded explicitly
// through every call; there is no ambient global state.
//
// Implementations own their call timeout and retry policy and surface hard
// failures synchronously. The engine above never retries.
type Controller interface {
	// ReadNetwork returns the virtual network with the given identity.
	// A missing network is reported as ErrNotFound, not as a plain error.
	ReadNetwork(ctx context.Context, id Identity) (*VirtualNetwork, error)

	// ReadIpam returns the IPAM with the given identity, or ErrNotFound.
	ReadIpam(ctx context.Context, id Identity) (*NetworkIpam, error)

	// CreateIpam creates the IPAM and returns it with its controller-assigned
	// UUID filled in.
	CreateIpam(ctx context.Context, ipam *NetworkIpam) (*NetworkIpam, error)

	// CreateNetwork creates the virtual network in a single call.
	CreateNetwork(ctx context.Context, vn *VirtualNetwork) error

	// DeleteNetwork deletes the network by its controller UUID.
	// Deleting a network that no longer exists is not an error.
	DeleteNetwork(ctx context.Context, uuid string) error

	// UpdateNetwork updates an existing network in place.
	UpdateNetwork(ctx context.Context, vn *VirtualNetwork) error
}
