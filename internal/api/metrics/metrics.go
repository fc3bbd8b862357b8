// Package metrics defines and registers the custom Prometheus metrics for
// the admin panel API. It is the single source of truth for metric names,
// labels, and help strings; metrics register with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "adminpanel"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// AccountOpsTotal counts account management operations.
// Labels:
//   - op: "list", "create", "update", "delete", "reset_password"
//   - result: "success" or "failure"
var AccountOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "account_ops_total",
		Help:      "Total number of account management operations, by operation and result.",
	},
	[]string{"op", "result"},
)

// AuditQueueDepth tracks the number of audit events waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
