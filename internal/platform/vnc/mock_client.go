package vnc

import (
	"context"

	"github.com/google/uuid"
)

// MockController is a func-field mock implementation of Controller.
// Unset funcs fall back to benign defaults: reads report not-found and
// mutations succeed. Calls records the method names in invocation order so
// tests can assert on operation sequencing.
type MockController struct {
	ReadNetworkFunc   func(ctx context.Context, id Identity) (*VirtualNetwork, error)
	ReadIpamFunc      func(ctx context.Context, id Identity) (*NetworkIpam, error)
	CreateIpamFunc    func(ctx context.Context, ipam *NetworkIpam) (*NetworkIpam, error)
	CreateNetworkFunc func(ctx context.Context, vn *VirtualNetwork) error
	DeleteNetworkFunc func(ctx context.Context, uuid string) error
	UpdateNetworkFunc func(ctx context.Context, vn *VirtualNetwork) error

	Calls []string
}

// Ensure interface compliance
var _ Controller = (*MockController)(nil)

func (m *MockController) record(method string) {
	m.Calls = append(m.Calls, method)
}

// ReadNetwork mocks reading a virtual network.
func (m *MockController) ReadNetwork(ctx context.Context, id Identity) (*VirtualNetwork, error) {
	m.record("ReadNetwork")
	if m.ReadNetworkFunc != nil {
		return m.ReadNetworkFunc(ctx, id)
	}
	return nil, ErrNotFound
}

// ReadIpam mocks reading an IPAM.
func (m *MockController) ReadIpam(ctx context.Context, id Identity) (*NetworkIpam, error) {
	m.record("ReadIpam")
	if m.ReadIpamFunc != nil {
		return m.ReadIpamFunc(ctx, id)
	}
	return nil, ErrNotFound
}

// CreateIpam mocks IPAM creation.
func (m *MockController) CreateIpam(ctx context.Context, ipam *NetworkIpam) (*NetworkIpam, error) {
	m.record("CreateIpam")
	if m.CreateIpamFunc != nil {
		return m.CreateIpamFunc(ctx, ipam)
	}
	created := *ipam
	created.UUID = uuid.NewString()
	return &created, nil
}

// CreateNetwork mocks network creation.
func (m *MockController) CreateNetwork(ctx context.Context, vn *VirtualNetwork) error {
	m.record("CreateNetwork")
	if m.CreateNetworkFunc != nil {
		return m.CreateNetworkFunc(ctx, vn)
	}
	return nil
}

// DeleteNetwork mocks network deletion.
func (m *MockController) DeleteNetwork(ctx context.Context, id string) error {
	m.record("DeleteNetwork")
	if m.DeleteNetworkFunc != nil {
		return m.DeleteNetworkFunc(ctx, id)
	}
	return nil
}

// UpdateNetwork mocks network update.
func (m *MockController) UpdateNetwork(ctx context.Context, vn *VirtualNetwork) error {
	m.record("UpdateNetwork")
	if m.UpdateNetworkFunc != nil {
		return m.UpdateNetworkFunc(ctx, vn)
	}
	return nil
}
