package vnc

import "strings"

// Identity is the three-part hierarchical name of a controller resource.
type Identity struct {
	Domain  string
	Project string
	Name    string
}

// FQName returns the fully qualified name as the controller expects it.
func (id Identity) FQName() []string {
	return []string{id.Domain, id.Project, id.Name}
}

func (id Identity) String() string {
	return strings.Join(id.FQName(), ":")
}

// SubnetPrefix is an address prefix and mask length pair.
type SubnetPrefix struct {
	IPPrefix    string `json:"ip_prefix"`
	IPPrefixLen int    `json:"ip_prefix_len"`
}

// AllocationPool is a contiguous address range within a subnet reserved for
// dynamic assignment.
type AllocationPool struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// IpamSubnet describes one subnet attached to a network through its IPAM
// reference.
type IpamSubnet struct {
	Subnet           SubnetPrefix     `json:"subnet"`
	DefaultGateway   string           `json:"default_gateway,omitempty"`
	DNSServerAddress string           `json:"dns_server_address,omitempty"`
	AllocationPools  []AllocationPool `json:"allocation_pools,omitempty"`
}

// IpamRefAttr carries the subnet definitions of an IPAM reference.
type IpamRefAttr struct {
	IpamSubnets []IpamSubnet `json:"ipam_subnets"`
}

// IpamRef links a network to an IPAM and holds its subnet definitions.
type IpamRef struct {
	To   []string    `json:"to"`
	Attr IpamRefAttr `json:"attr"`
}

// RouteTargetList is the set of routing-policy tags attached to a network.
type RouteTargetList struct {
	RouteTarget []string `json:"route_target,omitempty"`
}

// VirtualNetwork is the controller's representation of a network resource.
type VirtualNetwork struct {
	UUID            string           `json:"uuid,omitempty"`
	FQName          []string         `json:"fq_name"`
	DisplayName     string           `json:"display_name,omitempty"`
	RouteTargetList *RouteTargetList `json:"route_target_list,omitempty"`
	IpamRefs        []IpamRef        `json:"network_ipam_refs,omitempty"`
}

// RouteTargets returns the network's route targets, or nil when none are set.
func (vn *VirtualNetwork) RouteTargets() []string {
	if vn.RouteTargetList == nil {
		return nil
	}
	return vn.RouteTargetList.RouteTarget
}

// NetworkIpam is the project-scoped IPAM container shared by the networks in
// a project.
type NetworkIpam struct {
	UUID   string   `json:"uuid,omitempty"`
	FQName []string `json:"fq_name"`
}

// routeTargetPrefix is the protocol prefix the controller requires on route
// target names.
const routeTargetPrefix = "target:"

// QualifyRouteTarget prepends the controller's protocol prefix to a bare
// route target such as "65412:12". Empty input stays empty.
func QualifyRouteTarget(rt string) string {
	if rt == "" {
		return ""
	}
	return routeTargetPrefix + rt
}

// UnqualifyRouteTarget strips the protocol prefix from a controller route
// target name.
func UnqualifyRouteTarget(rt string) string {
	return strings.TrimPrefix(rt, routeTargetPrefix)
}
