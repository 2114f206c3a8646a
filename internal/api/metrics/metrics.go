// Package metrics defines and registers all custom Prometheus metrics for the
// property portal API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "property_portal"

// RegistrationsTotal counts successful account registrations.
// Label:
//   - role: "user", "agent", or "admin"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful user registrations, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// PropertiesCreatedTotal counts newly created listings.
// Label:
//   - status: "available", "sold", or "rented"
var PropertiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "properties_created_total",
		Help:      "Total number of property listings created, by initial status.",
	},
	[]string{"status"},
)

// PropertyMutationsTotal counts update and delete operations that reached the
// service layer.
// Labels:
//   - operation: "update" or "delete"
//   - result: "success", "forbidden", "not_found", or "error" for anything else
var PropertyMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "property_mutations_total",
		Help:      "Total number of property update/delete operations, by outcome.",
	},
	[]string{"operation", "result"},
)

// SearchesTotal counts public search requests.
var SearchesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total number of property search requests.",
	},
)

// StatsCacheTotal counts stats cache lookups.
// Label:
//   - result: "hit" (served from Redis) or "miss" (aggregated from storage)
var StatsCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stats_cache_total",
		Help:      "Total number of stats cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
