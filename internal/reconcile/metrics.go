package reconcile

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnetops/vnetctl/internal/config"
	"github.com/vnetops/vnetctl/internal/platform/vnc"
)

var (
	reconcileTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vnetctl",
			Subsystem: "reconcile",
			Name:      "passes_total",
			Help:      "Total number of reconciliation passes by action and result",
		},
		[]string{"network", "action", "result"},
	)

	reconcileDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "vnetctl",
			Subsystem: "reconcile",
			Name:      "duration_seconds",
			Help:      "Duration of a reconciliation pass in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~10s
		},
		[]string{"network"},
	)

	apiCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vnetctl",
			Subsystem: "controller",
			Name:      "api_calls_total",
			Help:      "Total number of controller API calls by operation and result",
		},
		[]string{"operation", "result"},
	)
)

func init() {
	prometheus.MustRegister(reconcileTotal, reconcileDuration, apiCalls)
}

// recordPass records one pass when metrics are enabled (watch mode).
func (r *Reconciler) recordPass(cfg *config.Config, outcome *Outcome, err error, seconds float64) {
	if !r.enableMetrics {
		return
	}

	network := networkLabel(cfg)
	action := "unknown"
	result := "success"
	if outcome != nil {
		action = outcome.Action
	}
	if err != nil {
		result = "error"
	}

	reconcileTotal.WithLabelValues(network, action, result).Inc()
	reconcileDuration.WithLabelValues(network).Observe(seconds)
}

func networkLabel(cfg *config.Config) string {
	return cfg.Project + "/" + cfg.Network
}

// instrumentedController counts every controller call. It wraps the session
// only when metrics are enabled, so one-shot invocations pay nothing.
type instrumentedController struct {
	next vnc.Controller
}

func recordCall(operation string, err error) {
	result := "success"
	if err != nil && !vnc.IsNotFound(err) {
		result = "error"
	}
	apiCalls.WithLabelValues(operation, result).Inc()
}

func (c *instrumentedController) ReadNetwork(ctx context.Context, id vnc.Identity) (*vnc.VirtualNetwork, error) {
	vn, err := c.next.ReadNetwork(ctx, id)
	recordCall("ReadNetwork", err)
	return vn, err
}

func (c *instrumentedController) ReadIpam(ctx context.Context, id vnc.Identity) (*vnc.NetworkIpam, error) {
	ipam, err := c.next.ReadIpam(ctx, id)
	recordCall("ReadIpam", err)
	return ipam, err
}

func (c *instrumentedController) CreateIpam(ctx context.Context, def *vnc.NetworkIpam) (*vnc.NetworkIpam, error) {
	ipam, err := c.next.CreateIpam(ctx, def)
	recordCall("CreateIpam", err)
	return ipam, err
}

func (c *instrumentedController) CreateNetwork(ctx context.Context, def *vnc.VirtualNetwork) error {
	err := c.next.CreateNetwork(ctx, def)
	recordCall("CreateNetwork", err)
	return err
}

func (c *instrumentedController) DeleteNetwork(ctx context.Context, uuid string) error {
	err := c.next.DeleteNetwork(ctx, uuid)
	recordCall("DeleteNetwork", err)
	return err
}

func (c *instrumentedController) UpdateNetwork(ctx context.Context, def *vnc.VirtualNetwork) error {
	err := c.next.UpdateNetwork(ctx, def)
	recordCall("UpdateNetwork", err)
	return err
}
