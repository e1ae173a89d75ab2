package reconcile

// Action is the remediation a reconciliation pass decided on. Exactly one
// action is selected per pass.
type Action int

const (
	// ActionNone means the resource already matches the desired state.
	ActionNone Action = iota
	// ActionCreate creates the network from scratch.
	ActionCreate
	// ActionDelete removes the network.
	ActionDelete
	// ActionUpdate changes the route target in place, leaving subnets alone.
	ActionUpdate
	// ActionRedeploy deletes and recreates the network because its subnet
	// topology changed. The controller cannot migrate subnets in place.
	ActionRedeploy
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionCreate:
		return "create"
	case ActionDelete:
		return "delete"
	case ActionUpdate:
		return "update"
	case ActionRedeploy:
		return "redeploy"
	default:
		return "unknown"
	}
}
