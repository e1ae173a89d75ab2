package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/vnetops/vnetctl/internal/config"
	"github.com/vnetops/vnetctl/internal/platform/vnc"
	"github.com/vnetops/vnetctl/internal/util/naming"
)

// Reconciler converges a single virtual network resource to its desired
// definition. The controller session is passed in explicitly and reused for
// every call of a pass.
type Reconciler struct {
	client        vnc.Controller
	dryRun        bool
	enableMetrics bool
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithDryRun makes every pass stop short of remote mutations. Validation,
// state read and diffing still run, so the reported action is accurate.
func WithDryRun(dryRun bool) Option {
	return func(r *Reconciler) {
		r.dryRun = dryRun
	}
}

// WithMetrics enables prometheus metrics recording, intended for watch mode.
func WithMetrics() Option {
	return func(r *Reconciler) {
		r.enableMetrics = true
	}
}

// New creates a Reconciler using the given controller session.
func New(client vnc.Controller, opts ...Option) *Reconciler {
	r := &Reconciler{client: client}
	for _, opt := range opts {
		opt(r)
	}
	if r.enableMetrics {
		r.client = &instrumentedController{next: r.client}
	}
	return r
}

// Reconcile runs one pass: validate, read, diff, act, report. Exactly one
// logical network (project+name) is touched. Concurrent invocations against
// the same network must be serialized by the caller.
func (r *Reconciler) Reconcile(ctx context.Context, cfg *config.Config) (*Outcome, error) {
	start := time.Now()
	outcome, err := r.reconcile(ctx, cfg)
	r.recordPass(cfg, outcome, err, time.Since(start).Seconds())
	return outcome, err
}

func (r *Reconciler) reconcile(ctx context.Context, cfg *config.Config) (*Outcome, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &Error{Kind: KindInvalidConfig, Err: err}
	}

	id := r.networkIdentity(cfg)

	current, err := ReadState(ctx, r.client, id)
	if err != nil {
		return nil, err
	}

	action := Diff(current, cfg)
	log.Printf("Reconciling network %s: action %s", id, action)

	if r.dryRun {
		return buildOutcome(cfg, current, action, false), nil
	}

	switch action {
	case ActionNone:
	case ActionCreate:
		err = r.create(ctx, id, cfg)
	case ActionDelete:
		err = r.delete(ctx, current.UUID)
	case ActionUpdate:
		err = r.update(ctx, current.UUID, id, cfg)
	case ActionRedeploy:
		err = r.redeploy(ctx, id, current.UUID, cfg)
	}
	if err != nil {
		var rerr *Error
		if errors.As(err, &rerr) {
			return nil, err
		}
		return nil, &Error{Kind: KindRemoteOperation, Action: action, Identity: id, Err: err}
	}

	return buildOutcome(cfg, current, action, action != ActionNone), nil
}

// networkIdentity derives the controller identity of the network. The
// controller-local name is namespaced by project to enforce at most one
// network per logical key.
func (r *Reconciler) networkIdentity(cfg *config.Config) vnc.Identity {
	return vnc.Identity{
		Domain:  cfg.Connection.Domain,
		Project: cfg.Project,
		Name:    naming.Network(cfg.Project, cfg.Network),
	}
}

// create builds the network definition and issues a single create call.
// The project IPAM is created first if absent; it is shared across the
// project's networks and never deleted by this engine.
func (r *Reconciler) create(ctx context.Context, id vnc.Identity, cfg *config.Config) error {
	ipam, err := r.ensureIpam(ctx, cfg)
	if err != nil {
		return err
	}

	vn := &vnc.VirtualNetwork{
		FQName:      id.FQName(),
		DisplayName: cfg.Network,
	}

	var subnets []vnc.IpamSubnet
	for _, sub := range []config.Subnet{cfg.IPv4, cfg.IPv6} {
		if sub.Empty() {
			continue
		}
		subnets = append(subnets, ipamSubnet(sub))
	}
	if len(subnets) > 0 {
		vn.IpamRefs = []vnc.IpamRef{{
			To:   ipam.FQName,
			Attr: vnc.IpamRefAttr{IpamSubnets: subnets},
		}}
	}

	if cfg.RouteTarget != "" {
		vn.RouteTargetList = &vnc.RouteTargetList{
			RouteTarget: []string{vnc.QualifyRouteTarget(cfg.RouteTarget)},
		}
	}

	return r.client.CreateNetwork(ctx, vn)
}

// ensureIpam reads the project-scoped IPAM and creates it if absent.
func (r *Reconciler) ensureIpam(ctx context.Context, cfg *config.Config) (*vnc.NetworkIpam, error) {
	id := vnc.Identity{
		Domain:  cfg.Connection.Domain,
		Project: cfg.Project,
		Name:    naming.Ipam(cfg.Project),
	}

	ipam, err := r.client.ReadIpam(ctx, id)
	if vnc.IsNotFound(err) {
		log.Printf("Creating ipam %s", id)
		return r.client.CreateIpam(ctx, &vnc.NetworkIpam{FQName: id.FQName()})
	}
	if err != nil {
		// A failed read is a read error even when it happens on the way
		// into a create; nothing has been mutated yet.
		return nil, &Error{Kind: KindRead, Identity: id, Err: err}
	}
	return ipam, nil
}

func (r *Reconciler) delete(ctx context.Context, uuid string) error {
	return r.client.DeleteNetwork(ctx, uuid)
}

// update sets only the route target. Subnets are never touched in place.
func (r *Reconciler) update(ctx context.Context, uuid string, id vnc.Identity, cfg *config.Config) error {
	rtl := &vnc.RouteTargetList{}
	if cfg.RouteTarget != "" {
		rtl.RouteTarget = []string{vnc.QualifyRouteTarget(cfg.RouteTarget)}
	}
	return r.client.UpdateNetwork(ctx, &vnc.VirtualNetwork{
		UUID:            uuid,
		FQName:          id.FQName(),
		RouteTargetList: rtl,
	})
}

// redeploy deletes the network and recreates it from the target definition.
// The two calls are not atomic: a failure in between leaves the resource
// absent, and the next pass converges from not-found via create.
func (r *Reconciler) redeploy(ctx context.Context, id vnc.Identity, uuid string, cfg *config.Config) error {
	log.Printf("Redeploying network %s (delete then create)", id)
	if err := r.delete(ctx, uuid); err != nil {
		return fmt.Errorf("redeploy delete: %w", err)
	}
	if err := r.create(ctx, id, cfg); err != nil {
		return fmt.Errorf("redeploy create: %w", err)
	}
	return nil
}

// ipamSubnet expands one configured address family into the controller's
// subnet definition, attaching pool, gateway and DNS only when supplied.
func ipamSubnet(sub config.Subnet) vnc.IpamSubnet {
	sn := vnc.IpamSubnet{
		Subnet: vnc.SubnetPrefix{
			IPPrefix:    sub.Prefix,
			IPPrefixLen: sub.Length,
		},
		DefaultGateway:   sub.Gateway,
		DNSServerAddress: sub.DNS,
	}
	if sub.PoolStart != "" || sub.PoolEnd != "" {
		sn.AllocationPools = []vnc.AllocationPool{{Start: sub.PoolStart, End: sub.PoolEnd}}
	}
	return sn
}
