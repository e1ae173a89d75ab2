package reconcile

import (
	"context"
	"strings"

	"github.com/vnetops/vnetctl/internal/config"
	"github.com/vnetops/vnetctl/internal/platform/vnc"
)

// CurrentState is the remote resource normalized into the same attribute
// shape as the desired definition. Found is a tri-state stand-in: a network
// can be absent, or present with empty sub-resources, and both are valid.
// The zero value is "not found".
type CurrentState struct {
	Found       bool
	UUID        string
	IPv4        config.Subnet
	IPv6        config.Subnet
	RouteTarget string
}

// ReadState fetches the network from the controller and normalizes it.
// A missing network yields Found=false with all fields empty; any other read
// failure aborts the pass as a read error.
//
// Only the first subnet of each address family is retained. Multiple subnets
// per family are not supported and later ones are silently dropped.
func ReadState(ctx context.Context, c vnc.Controller, id vnc.Identity) (*CurrentState, error) {
	vn, err := c.ReadNetwork(ctx, id)
	if vnc.IsNotFound(err) {
		return &CurrentState{}, nil
	}
	if err != nil {
		return nil, &Error{Kind: KindRead, Identity: id, Err: err}
	}

	st := &CurrentState{Found: true, UUID: vn.UUID}

	if rts := vn.RouteTargets(); len(rts) > 0 {
		st.RouteTarget = vnc.UnqualifyRouteTarget(rts[0])
	}

	for _, ref := range vn.IpamRefs {
		for _, sn := range ref.Attr.IpamSubnets {
			sub := subnetFromIpam(sn)
			switch {
			case strings.Contains(sn.Subnet.IPPrefix, ":"):
				if st.IPv6.Empty() {
					st.IPv6 = sub
				}
			case strings.Contains(sn.Subnet.IPPrefix, "."):
				if st.IPv4.Empty() {
					st.IPv4 = sub
				}
			}
		}
	}

	return st, nil
}

// subnetFromIpam flattens a controller subnet into the attribute shape used
// for diffing. Only the first allocation pool is recorded.
func subnetFromIpam(sn vnc.IpamSubnet) config.Subnet {
	sub := config.Subnet{
		Prefix:  sn.Subnet.IPPrefix,
		Length:  sn.Subnet.IPPrefixLen,
		Gateway: sn.DefaultGateway,
		DNS:     sn.DNSServerAddress,
	}
	if len(sn.AllocationPools) > 0 {
		sub.PoolStart = sn.AllocationPools[0].Start
		sub.PoolEnd = sn.AllocationPools[0].End
	}
	return sub
}
