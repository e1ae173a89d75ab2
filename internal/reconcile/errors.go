package reconcile

import (
	"errors"
	"fmt"

	"github.com/vnetops/vnetctl/internal/platform/vnc"
)

// Kind classifies a reconciliation failure. All kinds are terminal for the
// current invocation; nothing is retried by the engine.
type Kind int

const (
	// KindInvalidConfig is a bad desired definition, detected before any
	// remote call. Nothing has been mutated.
	KindInvalidConfig Kind = iota
	// KindConnection means no session with the controller could be
	// established. No work has been done.
	KindConnection
	// KindRead is a remote read failure other than not-found. The pass
	// aborts before any mutation.
	KindRead
	// KindRemoteOperation is a create/update/delete failure. The resource
	// may be left in an intermediate state during a redeploy.
	KindRemoteOperation
)

func (k Kind) String() string {
	switch k {
	case KindInvalidConfig:
		return "invalid-config"
	case KindConnection:
		return "connection"
	case KindRead:
		return "read"
	case KindRemoteOperation:
		return "remote-operation"
	default:
		return "unknown"
	}
}

// Error is a terminal reconciliation failure carrying enough context for the
// caller to decide on retry or escalation: the kind, the attempted action and
// the resource identity.
type Error struct {
	Kind     Kind
	Action   Action
	Identity vnc.Identity
	Err      error
}

func (e *Error) Error() string {
	if e.Kind == KindRemoteOperation {
		return fmt.Sprintf("%s error during %s of %s: %v", e.Kind, e.Action, e.Identity, e.Err)
	}
	if (e.Identity != vnc.Identity{}) {
		return fmt.Sprintf("%s error for %s: %v", e.Kind, e.Identity, e.Err)
	}
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a reconciliation error of the given kind.
func IsKind(err error, kind Kind) bool {
	var rerr *Error
	return errors.As(err, &rerr) && rerr.Kind == kind
}
