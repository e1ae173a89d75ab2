package config

import (
	"fmt"
	"net/netip"
)

// Validate checks the definition for internal consistency. It is pure: no
// remote state is consulted and nothing is mutated.
//
// For each address family, if any field of the block is set then the
// prefix/length pair must parse as a CIDR, every supplied address must lie
// inside it, and the allocation pool must be ordered.
func (c *Config) Validate() error {
	if c.Project == "" {
		return fmt.Errorf("project is required")
	}
	if c.Network == "" {
		return fmt.Errorf("network is required")
	}

	switch c.State {
	case StateInitial, StateInactive, StateActive:
	default:
		return fmt.Errorf("invalid state %q: must be one of initial, inactive, active", c.State)
	}

	if err := c.IPv4.validate("ipv4"); err != nil {
		return err
	}
	if err := c.IPv6.validate("ipv6"); err != nil {
		return err
	}

	return nil
}

// validate checks one address family block. family is used for error
// messages only.
func (s Subnet) validate(family string) error {
	if s.Empty() {
		return nil
	}

	if s.Prefix == "" || s.Length == 0 {
		return fmt.Errorf("%s: prefix and length are required when any %s field is set", family, family)
	}

	prefix, err := netip.ParsePrefix(fmt.Sprintf("%s/%d", s.Prefix, s.Length))
	if err != nil {
		return fmt.Errorf("%s: invalid subnet %s/%d: %w", family, s.Prefix, s.Length, err)
	}
	// The prefix may be given as a host address inside the subnet; membership
	// checks run against the masked network.
	network := prefix.Masked()

	addrs := []struct {
		name  string
		value string
	}{
		{"gateway", s.Gateway},
		{"dns", s.DNS},
		{"pool_start", s.PoolStart},
		{"pool_end", s.PoolEnd},
	}
	for _, a := range addrs {
		if a.value == "" {
			continue
		}
		addr, err := netip.ParseAddr(a.value)
		if err != nil {
			return fmt.Errorf("%s: invalid %s address %q: %w", family, a.name, a.value, err)
		}
		if !network.Contains(addr) {
			return fmt.Errorf("%s: %s %s is not within subnet %s", family, a.name, a.value, network)
		}
	}

	if s.PoolStart != "" && s.PoolEnd != "" {
		start, _ := netip.ParseAddr(s.PoolStart)
		end, _ := netip.ParseAddr(s.PoolEnd)
		if start.Compare(end) > 0 {
			return fmt.Errorf("%s: allocation pool start %s is after end %s", family, s.PoolStart, s.PoolEnd)
		}
	}

	return nil
}
