package reconcile

import (
	"github.com/vnetops/vnetctl/internal/config"
)

// Diff classifies the action needed to converge current to target. It is a
// pure function of its inputs.
//
// Subnet differences are checked before the route target: a topology change
// forces a redeploy regardless of route target equality, while a route
// target change alone is an in-place update. This ordering is part of the
// engine's contract.
func Diff(current *CurrentState, target *config.Config) Action {
	active := target.State == config.StateActive

	switch {
	case !current.Found && active:
		return ActionCreate
	case current.Found && !active:
		return ActionDelete
	case !current.Found:
		// Already absent, desired absent.
		return ActionNone
	}

	if current.IPv4 != target.IPv4 || current.IPv6 != target.IPv6 {
		return ActionRedeploy
	}
	if current.RouteTarget != target.RouteTarget {
		return ActionUpdate
	}
	return ActionNone
}
