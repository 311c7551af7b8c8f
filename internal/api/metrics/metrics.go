// Package metrics defines and registers all custom Prometheus metrics for the
// scheduling backend. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry via
// promauto at package init; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gevp"

// BookingsCreatedTotal counts successfully created bookings.
// Label:
//   - resource: "event" (one-off reservation) or "schedule" (weekly slot)
var BookingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created, by resource type.",
	},
	[]string{"resource"},
)

// BookingConflictsTotal counts create/update attempts rejected because the
// proposed time range overlapped an existing booking in the same partition.
var BookingConflictsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_conflicts_total",
		Help:      "Total number of booking attempts rejected due to slot overlap.",
	},
	[]string{"resource"},
)

// AvailabilityChecksTotal counts explicit availability queries.
// Labels:
//   - resource: "event" or "schedule"
//   - result: "free" or "occupied"
var AvailabilityChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "availability_checks_total",
		Help:      "Total number of availability checks, by resource and result.",
	},
	[]string{"resource", "result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "bad_password" or "unknown_user"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ActivityRecordedTotal counts audit-trail entries written by the activity
// pipeline, by action (e.g. "event.created").
var ActivityRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_recorded_total",
		Help:      "Total number of activity records persisted, by action.",
	},
	[]string{"action"},
)
