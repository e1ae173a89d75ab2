package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{
		Project: "tenant",
		Network: "ext",
		IPv4: Subnet{
			Prefix:    "192.168.178.1",
			Length:    24,
			PoolStart: "192.168.178.128",
			PoolEnd:   "192.168.178.250",
		},
		RouteTarget: "65412:12",
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidate_RequiredFields(t *testing.T) {
	cfg := validConfig()
	cfg.Project = ""
	assert.ErrorContains(t, cfg.Validate(), "project is required")

	cfg = validConfig()
	cfg.Network = ""
	assert.ErrorContains(t, cfg.Validate(), "network is required")
}

func TestValidate_InvalidState(t *testing.T) {
	cfg := validConfig()
	cfg.State = "deployed"
	assert.ErrorContains(t, cfg.Validate(), "invalid state")
}

func TestValidate_InvalidCIDR(t *testing.T) {
	cfg := validConfig()
	cfg.IPv4.Length = 33
	assert.ErrorContains(t, cfg.Validate(), "invalid subnet")

	cfg = validConfig()
	cfg.IPv4.Prefix = "not-an-address"
	assert.ErrorContains(t, cfg.Validate(), "invalid subnet")
}

func TestValidate_PrefixWithoutLength(t *testing.T) {
	cfg := validConfig()
	cfg.IPv4.Length = 0
	assert.ErrorContains(t, cfg.Validate(), "prefix and length are required")
}

func TestValidate_AddressOutsideSubnet(t *testing.T) {
	cfg := validConfig()
	cfg.IPv4.Gateway = "10.0.0.1"
	assert.ErrorContains(t, cfg.Validate(), "gateway 10.0.0.1 is not within subnet")

	cfg = validConfig()
	cfg.IPv4.DNS = "8.8.8.8"
	assert.ErrorContains(t, cfg.Validate(), "dns 8.8.8.8 is not within subnet")
}

func TestValidate_FamilyMismatch(t *testing.T) {
	// An IPv6 address in the IPv4 block is never a member of the subnet.
	cfg := validConfig()
	cfg.IPv4.Gateway = "fd00::1"
	assert.ErrorContains(t, cfg.Validate(), "not within subnet")
}

func TestValidate_PoolStartAfterEnd(t *testing.T) {
	cfg := validConfig()
	cfg.IPv4.PoolStart = "192.168.178.250"
	cfg.IPv4.PoolEnd = "192.168.178.128"
	assert.ErrorContains(t, cfg.Validate(), "start 192.168.178.250 is after end")
}

func TestValidate_IPv6(t *testing.T) {
	cfg := validConfig()
	cfg.IPv6 = Subnet{
		Prefix:    "fd00:10::",
		Length:    64,
		Gateway:   "fd00:10::1",
		DNS:       "fd00:10::2",
		PoolStart: "fd00:10::100",
		PoolEnd:   "fd00:10::200",
	}
	require.NoError(t, cfg.Validate())

	cfg.IPv6.PoolStart = "fd00:10::300"
	assert.ErrorContains(t, cfg.Validate(), "is after end")
}

func TestValidate_EmptySubnetBlocksAllowed(t *testing.T) {
	cfg := &Config{Project: "tenant", Network: "bare"}
	cfg.ApplyDefaults()
	require.NoError(t, cfg.Validate())
}

func TestSubnet_Empty(t *testing.T) {
	assert.True(t, Subnet{}.Empty())
	assert.False(t, Subnet{Prefix: "10.0.0.0"}.Empty())
	assert.False(t, Subnet{Length: 24}.Empty())
}
