package reconcile

import (
	"github.com/vnetops/vnetctl/internal/config"
)

// Outcome describes what one reconciliation pass did (or, in dry-run mode,
// would do). It is built for reporting only and never feeds back into
// decision logic.
type Outcome struct {
	Network string `json:"network"`
	Project string `json:"project"`
	State   string `json:"state"`
	Changed bool   `json:"changed"`
	Action  string `json:"action"`

	IPv4        config.Subnet `json:"ipv4"`
	IPv6        config.Subnet `json:"ipv6"`
	RouteTarget string        `json:"route_target,omitempty"`
}

// buildOutcome assembles the pass report. Reported attribute values reflect
// what the resource looks like after the pass: the target values when the
// pass creates or reshapes the resource, the pre-existing values when it
// deletes it or leaves it alone. changed is false in dry-run mode even when
// an action was selected.
func buildOutcome(cfg *config.Config, current *CurrentState, action Action, changed bool) *Outcome {
	out := &Outcome{
		Network: cfg.Network,
		Project: cfg.Project,
		State:   cfg.State,
		Changed: changed,
		Action:  action.String(),
	}

	switch action {
	case ActionNone, ActionDelete:
		out.IPv4 = current.IPv4
		out.IPv6 = current.IPv6
		out.RouteTarget = current.RouteTarget
	default:
		out.IPv4 = cfg.IPv4
		out.IPv6 = cfg.IPv6
		out.RouteTarget = cfg.RouteTarget
	}

	return out
}
