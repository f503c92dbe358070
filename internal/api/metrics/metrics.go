// Package metrics defines and registers all custom Prometheus metrics for
// the Pllumaj Results API. It is the single source of truth for metric
// names, labels, and help strings. Metrics self-register with the default
// registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pllumaj"

// OffersCreatedTotal counts offers successfully created by experts.
var OffersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "offers_created_total",
		Help:      "Total number of offers created.",
	},
)

// OfferResponsesTotal counts client responses to offers.
// Label:
//   - status: the resulting offer status ("ACCEPTED" or "DECLINED")
var OfferResponsesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "offer_responses_total",
		Help:      "Total number of offer responses, by resulting status.",
	},
	[]string{"status"},
)

// NotificationsPublishedTotal counts successful realtime publishes.
// Label:
//   - event: the event name ("offer:created", "offer:updated")
var NotificationsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_published_total",
		Help:      "Total number of realtime notifications published, by event.",
	},
	[]string{"event"},
)

// NotificationErrorsTotal counts failed realtime publishes. Failures are
// swallowed by the request path, so this counter is the only place they
// become visible besides the log.
var NotificationErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_errors_total",
		Help:      "Total number of realtime notification publish failures, by event.",
	},
	[]string{"event"},
)

// NeedsCreatedTotal counts needs posted by clients.
var NeedsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "needs_created_total",
		Help:      "Total number of needs created.",
	},
)
