package config

// Lifecycle states for a virtual network definition.
const (
	StateInitial  = "initial"
	StateInactive = "inactive"
	StateActive   = "active"
)

// DefaultDomain is used when the connection block does not name a domain.
const DefaultDomain = "default-domain"

// defaultTimeoutSeconds bounds a single controller API call.
const defaultTimeoutSeconds = 30

// Connection holds the controller session parameters. They are passed
// through opaquely to the controller client and never interpreted by the
// reconciliation engine.
type Connection struct {
	Endpoint       string `yaml:"endpoint" json:"endpoint"`
	Username       string `yaml:"username,omitempty" json:"username,omitempty"`
	Password       string `yaml:"password,omitempty" json:"-"`
	Token          string `yaml:"token,omitempty" json:"-"`
	Domain         string `yaml:"domain,omitempty" json:"domain,omitempty"`
	Insecure       bool   `yaml:"insecure,omitempty" json:"insecure,omitempty"`
	TimeoutSeconds int    `yaml:"timeout_seconds,omitempty" json:"timeout_seconds,omitempty"`
}

// Subnet describes one address family of a network definition. All fields
// are optional; an all-empty Subnet means the family is not configured.
type Subnet struct {
	// Prefix is the subnet address, e.g. "192.168.178.0". A host address
	// inside the subnet is accepted and kept verbatim.
	Prefix string `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	// Length is the prefix length in bits. Zero means unset.
	Length int `yaml:"length,omitempty" json:"length,omitempty"`
	// PoolStart and PoolEnd bound the allocation pool for dynamic
	// address assignment.
	PoolStart string `yaml:"pool_start,omitempty" json:"pool_start,omitempty"`
	PoolEnd   string `yaml:"pool_end,omitempty" json:"pool_end,omitempty"`
	Gateway   string `yaml:"gateway,omitempty" json:"gateway,omitempty"`
	DNS       string `yaml:"dns,omitempty" json:"dns,omitempty"`
}

// Empty reports whether no field of the subnet block is set.
func (s Subnet) Empty() bool {
	return s == Subnet{}
}

// Config is the desired definition of a single virtual network. It is
// constructed once per invocation and never mutated by the engine.
type Config struct {
	Connection Connection `yaml:"connection" json:"connection"`

	Project string `yaml:"project" json:"project"`
	Network string `yaml:"network" json:"network"`

	// State is the desired lifecycle state: initial, inactive or active.
	State string `yaml:"state,omitempty" json:"state"`

	IPv4 Subnet `yaml:"ipv4,omitempty" json:"ipv4"`
	IPv6 Subnet `yaml:"ipv6,omitempty" json:"ipv6"`

	// RouteTarget is the BGP-style routing-policy tag, e.g. "65412:12",
	// without the controller's protocol prefix.
	RouteTarget string `yaml:"route_target,omitempty" json:"route_target,omitempty"`
}

// ApplyDefaults fills unset fields with their defaults.
func (c *Config) ApplyDefaults() {
	if c.State == "" {
		c.State = StateActive
	}
	if c.Connection.Domain == "" {
		c.Connection.Domain = DefaultDomain
	}
	if c.Connection.TimeoutSeconds == 0 {
		c.Connection.TimeoutSeconds = defaultTimeoutSeconds
	}
}
