// Package metrics defines and registers the custom Prometheus metrics for the
// marketplace API. It is the single source of truth for metric names, labels
// and help strings.
//
// Metrics are registered with the default registry on package init through
// promauto; HTTP request metrics come from echoprometheus in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// ── Moderation metrics ────────────────────────────────────────────────────────

// AdminActionsTotal counts moderation mutations.
// Labels:
//   - action: "delete_user" or "change_role"
//   - outcome: "ok", "denied", "not_found", "invalid" or "error"
var AdminActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_actions_total",
		Help:      "Total number of moderation actions, by action and outcome.",
	},
	[]string{"action", "outcome"},
)

// AuditWriteFailuresTotal counts mutations that succeeded but whose audit
// entry could not be appended.
var AuditWriteFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_write_failures_total",
		Help:      "Total number of audit log entries that failed to persist after the mutation was applied.",
	},
)

// ── Alert metrics ─────────────────────────────────────────────────────────────

// AlertsDeliveredTotal counts alerts persisted for their recipient.
// Label:
//   - type: "price", "visit" or "listing"
var AlertsDeliveredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_delivered_total",
		Help:      "Total number of alerts persisted, by alert type.",
	},
	[]string{"type"},
)

// AlertsDroppedTotal counts alerts lost because the queue was full or the
// write failed.
// Labels:
//   - type: "price", "visit" or "listing"
//   - reason: "queue_full" or "write_failed"
var AlertsDroppedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_dropped_total",
		Help:      "Total number of alerts dropped before being persisted.",
	},
	[]string{"type", "reason"},
)

// AlertsQueueDepth tracks pending alert batches per dispatcher worker.
var AlertsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "alerts_queue_depth",
		Help:      "Current number of alert batches pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── Listing & visit metrics ───────────────────────────────────────────────────

// ListingsCreatedTotal counts newly created listings.
// Label:
//   - type: "rent" or "sale"
var ListingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listings_created_total",
		Help:      "Total number of listings created, by listing type.",
	},
	[]string{"type"},
)

// VisitStatusChangesTotal counts visit request decisions.
// Label:
//   - status: "approved" or "rejected"
var VisitStatusChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "visit_status_changes_total",
		Help:      "Total number of visit requests decided, by resulting status.",
	},
	[]string{"status"},
)

// ── Insights metrics ──────────────────────────────────────────────────────────

// InsightsCacheTotal counts insights cache lookups.
// Label:
//   - result: "hit", "miss" or "error"
var InsightsCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "insights_cache_total",
		Help:      "Total number of insights cache lookups, labelled by result.",
	},
	[]string{"result"},
)

// InsightsComputeDuration measures how long a full insights aggregation takes.
var InsightsComputeDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "insights_compute_duration_seconds",
		Help:      "Duration of insights aggregation over listings and visit requests.",
		Buckets:   prometheus.DefBuckets,
	},
)
